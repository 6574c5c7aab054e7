// Package testing provides utilities and helpers for testing the match scorer.
package testing

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/resume-match-scorer/config"
	"github.com/gcbaptista/resume-match-scorer/internal/matcher"
	"github.com/gcbaptista/resume-match-scorer/model"
)

// Sample texts shared by package tests
const (
	SampleResume = "Experienced software engineer skilled in Python and cloud infrastructure"
	SampleJob    = "Looking for a software engineer with Python and cloud experience"
)

// pdfEscaper escapes characters that are special inside a PDF literal string
var pdfEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// BuildPDF creates a minimal single-font PDF with one page per argument.
// An empty page string produces a page that draws a line but carries no text.
func BuildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	offsets := make([]int, 0)

	writeObject := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObject("<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		writeObject(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))

		content := "0 0 m 100 100 l S"
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", pdfEscaper.Replace(text))
		}
		writeObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

// DefaultSettings returns scorer settings with defaults applied
func DefaultSettings() config.ScorerSettings {
	settings := config.ScorerSettings{}
	settings.ApplyDefaults()
	return settings
}

// CreateTestMatcher creates a matcher backed by the default settings and English stopwords
func CreateTestMatcher(t *testing.T) *matcher.Service {
	t.Helper()

	svc, err := matcher.NewService(DefaultSettings())
	require.NoError(t, err)
	return svc
}

// AnalyzeSample runs the sample resume/job pair through svc
func AnalyzeSample(t *testing.T, svc *matcher.Service) *model.MatchResult {
	t.Helper()

	result, err := svc.Analyze(SampleResume, SampleJob)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}
