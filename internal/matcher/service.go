// Package matcher wires extraction, normalization, vectorization and scoring
// into the two operations the presentation layer calls: reading a resume PDF
// and analyzing a resume against a job description.
package matcher

import (
	stdErrors "errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gcbaptista/resume-match-scorer/config"
	"github.com/gcbaptista/resume-match-scorer/internal/errors"
	"github.com/gcbaptista/resume-match-scorer/internal/extractor"
	"github.com/gcbaptista/resume-match-scorer/internal/metrics"
	"github.com/gcbaptista/resume-match-scorer/internal/similarity"
	"github.com/gcbaptista/resume-match-scorer/internal/tokenizer"
	"github.com/gcbaptista/resume-match-scorer/internal/vectorizer"
	"github.com/gcbaptista/resume-match-scorer/model"
)

// Field names used in input errors
const (
	FieldResume         = "resume"
	FieldJobDescription = "job_description"
)

// Service runs the analysis pipeline. Apart from the metrics counters it holds
// only read-only state, so one Service can serve concurrent requests.
type Service struct {
	settings   config.ScorerSettings
	normalizer *tokenizer.Normalizer
	metrics    *metrics.AnalysisMetrics
}

// NewService creates a Service. Defaults are applied to settings before validation.
// When settings.Stopwords is empty the English stopword list is used.
func NewService(settings config.ScorerSettings) (*Service, error) {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, errors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	normalizer := tokenizer.DefaultNormalizer()
	if len(settings.Stopwords) > 0 {
		normalizer = tokenizer.NewNormalizer(tokenizer.NewStopwordSet(settings.Stopwords...))
	}

	return NewServiceWithNormalizer(settings, normalizer), nil
}

// NewServiceWithNormalizer creates a Service using the given normalizer.
// settings are used as given.
func NewServiceWithNormalizer(settings config.ScorerSettings, normalizer *tokenizer.Normalizer) *Service {
	return &Service{
		settings:   settings,
		normalizer: normalizer,
		metrics:    metrics.NewAnalysisMetrics(),
	}
}

// Settings returns the settings the service runs with
func (s *Service) Settings() config.ScorerSettings {
	return s.settings
}

// Metrics returns a snapshot of the analysis counters
func (s *Service) Metrics() metrics.AnalysisMetricsData {
	return s.metrics.GetMetrics()
}

// ExtractText returns the concatenated page text of a resume PDF
func (s *Service) ExtractText(pdfBytes []byte) (string, error) {
	if err := s.checkPDFSize(pdfBytes); err != nil {
		return "", err
	}
	return extractor.ExtractText(pdfBytes)
}

// Extract reads a resume PDF and reports its text and page count
func (s *Service) Extract(pdfBytes []byte) (*model.ExtractionResult, error) {
	if err := s.checkPDFSize(pdfBytes); err != nil {
		return nil, err
	}

	doc, err := extractor.Extract(pdfBytes)
	if err != nil {
		return nil, err
	}

	text := doc.Text()
	return &model.ExtractionResult{
		Text:      text,
		PageCount: doc.PageCount(),
		Chars:     utf8.RuneCountInString(text),
	}, nil
}

// AnalyzePDF extracts the resume text from pdfBytes and analyzes it against jobText.
// A PDF without extractable text is rejected instead of scored.
func (s *Service) AnalyzePDF(pdfBytes []byte, jobText string) (*model.MatchResult, error) {
	start := time.Now()
	s.metrics.RecordStarted()

	if len(pdfBytes) == 0 {
		return nil, s.fail(errors.NewMissingInputError(FieldResume))
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, s.fail(errors.NewMissingInputError(FieldJobDescription))
	}

	resumeText, err := s.ExtractText(pdfBytes)
	if err != nil {
		return nil, s.fail(err)
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, s.fail(errors.NewExtractionError(errors.ErrNoExtractableText))
	}

	return s.analyze(start, resumeText, jobText)
}

// Analyze scores resumeText against jobText.
// Vocabulary and IDF are fitted on this pair only.
func (s *Service) Analyze(resumeText, jobText string) (*model.MatchResult, error) {
	start := time.Now()
	s.metrics.RecordStarted()
	return s.analyze(start, resumeText, jobText)
}

func (s *Service) analyze(start time.Time, resumeText, jobText string) (*model.MatchResult, error) {
	if err := s.validateText(FieldResume, resumeText); err != nil {
		return nil, s.fail(err)
	}
	if err := s.validateText(FieldJobDescription, jobText); err != nil {
		return nil, s.fail(err)
	}

	analysisID := uuid.New().String()

	resumeNormalized := s.normalizer.Normalize(resumeText)
	jobNormalized := s.normalizer.Normalize(jobText)

	tfidf, err := vectorizer.Fit(resumeNormalized, jobNormalized, vectorizer.Options{
		MinTermLength: s.settings.MinTermLength,
	})
	if err != nil {
		log.Printf("Warning: analysis %s could not be scored: %v", analysisID, err)
		return nil, s.fail(err)
	}

	score := similarity.ToPercentage(similarity.Cosine(tfidf.Resume(), tfidf.Job()))
	band := similarity.BandFor(score)

	result := &model.MatchResult{
		AnalysisID:       analysisID,
		Score:            score,
		Band:             string(band),
		Label:            band.Label(),
		Color:            band.Color(),
		Verdict:          band.Verdict(),
		MatchingKeywords: matchingKeywords(tfidf.Resume(), tfidf.Job(), s.settings.MatchingKeywordsLimit),
		MissingKeywords:  missingKeywords(tfidf.Resume(), tfidf.Job(), s.settings.MissingKeywordsLimit),
		ResumeTerms:      tfidf.ResumeTermCount(),
		JobTerms:         tfidf.JobTermCount(),
	}

	took := time.Since(start)
	result.Took = took.Milliseconds()
	s.metrics.RecordCompleted(result.Band, took)

	log.Printf("Analysis %s completed: band=%s resume_terms=%d job_terms=%d took=%v",
		analysisID, result.Band, result.ResumeTerms, result.JobTerms, took)

	return result, nil
}

func (s *Service) validateText(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewMissingInputError(field)
	}
	if s.settings.MaxTextChars > 0 {
		if chars := utf8.RuneCountInString(text); chars > s.settings.MaxTextChars {
			return errors.NewInputTooLargeError(field, int64(s.settings.MaxTextChars), int64(chars))
		}
	}
	return nil
}

func (s *Service) checkPDFSize(pdfBytes []byte) error {
	if s.settings.MaxPDFBytes > 0 && int64(len(pdfBytes)) > s.settings.MaxPDFBytes {
		return errors.NewInputTooLargeError(FieldResume, s.settings.MaxPDFBytes, int64(len(pdfBytes)))
	}
	return nil
}

// fail records err against the metrics and returns it unchanged
func (s *Service) fail(err error) error {
	s.metrics.RecordFailed(failureKind(err))
	return err
}

func failureKind(err error) metrics.FailureKind {
	switch {
	case stdErrors.Is(err, errors.ErrExtraction):
		return metrics.FailureExtraction
	case stdErrors.Is(err, errors.ErrScoring):
		return metrics.FailureScoring
	case stdErrors.Is(err, errors.ErrMissingInput):
		return metrics.FailureMissingInput
	case stdErrors.Is(err, errors.ErrInputTooLarge):
		return metrics.FailureInputTooLarge
	default:
		return metrics.FailureInternal
	}
}

// String describes the service configuration for startup logs
func (s *Service) String() string {
	return fmt.Sprintf("matcher(max_pdf_bytes=%d, max_text_chars=%d, min_term_length=%d)",
		s.settings.MaxPDFBytes, s.settings.MaxTextChars, s.settings.MinTermLength)
}
