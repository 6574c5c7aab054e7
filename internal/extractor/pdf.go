// Package extractor reads the plain text out of an in-memory PDF resume.
package extractor

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/gcbaptista/resume-match-scorer/internal/errors"
)

// Document is the extracted content of a PDF, one entry per page in page order
type Document struct {
	Pages []string
}

// Text returns the concatenation of every page's text in page order
func (d *Document) Text() string {
	return strings.Join(d.Pages, "")
}

// PageCount returns the number of pages in the PDF
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// ExtractText returns the concatenated text of every page. A structurally valid
// PDF without any text layer yields "".
func ExtractText(pdfBytes []byte) (string, error) {
	doc, err := Extract(pdfBytes)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// Extract parses pdfBytes and extracts each page's text.
// Any parse failure, including a panic inside the PDF reader, is returned as an ExtractionError.
func Extract(pdfBytes []byte) (doc *Document, err error) {
	if len(pdfBytes) == 0 {
		return nil, errors.NewExtractionError(stdErrors.New("empty document"))
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = errors.NewExtractionError(fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, errors.NewExtractionError(err)
	}

	totalPages := reader.NumPage()
	doc = &Document{Pages: make([]string, 0, totalPages)}

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, errors.NewPageExtractionError(pageIndex, err)
		}
		doc.Pages = append(doc.Pages, text)
	}

	return doc, nil
}
