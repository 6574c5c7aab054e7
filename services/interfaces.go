package services

import (
	"github.com/gcbaptista/resume-match-scorer/internal/metrics"
	"github.com/gcbaptista/resume-match-scorer/model"
)

// Extractor turns an uploaded resume PDF into text
type Extractor interface {
	// ExtractText returns the concatenated text of every page, in page order
	ExtractText(pdfBytes []byte) (string, error)
	// Extract returns the text together with page-level details
	Extract(pdfBytes []byte) (*model.ExtractionResult, error)
}

// Analyzer scores a resume against a job description
type Analyzer interface {
	Analyze(resumeText, jobText string) (*model.MatchResult, error)
	AnalyzePDF(pdfBytes []byte, jobText string) (*model.MatchResult, error)
}

// Matcher is the core surface consumed by the presentation layer
type Matcher interface {
	Extractor
	Analyzer
	Metrics() metrics.AnalysisMetricsData
}
