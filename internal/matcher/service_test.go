package matcher_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/resume-match-scorer/config"
	internalErrors "github.com/gcbaptista/resume-match-scorer/internal/errors"
	"github.com/gcbaptista/resume-match-scorer/internal/matcher"
	"github.com/gcbaptista/resume-match-scorer/internal/metrics"
	testutil "github.com/gcbaptista/resume-match-scorer/internal/testing"
	"github.com/gcbaptista/resume-match-scorer/internal/tokenizer"
)

func TestAnalyze_EndToEnd(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)
	result := testutil.AnalyzeSample(t, svc)

	// 4 shared terms (software, engineer, python, cloud); 3 resume-only and 2 job-only terms
	assert.Equal(t, 45.03, result.Score)
	assert.Greater(t, result.Score, 40.0)
	assert.Equal(t, "moderate", result.Band)
	assert.Equal(t, "moderate match", result.Label)
	assert.Equal(t, 7, result.ResumeTerms)
	assert.Equal(t, 6, result.JobTerms)
	assert.NotEmpty(t, result.AnalysisID)

	matching := make([]string, 0, len(result.MatchingKeywords))
	for _, kw := range result.MatchingKeywords {
		matching = append(matching, kw.Term)
	}
	assert.ElementsMatch(t, []string{"software", "engineer", "python", "cloud"}, matching)

	missing := make([]string, 0, len(result.MissingKeywords))
	for _, kw := range result.MissingKeywords {
		missing = append(missing, kw.Term)
	}
	// Equal weights are ordered alphabetically
	assert.Equal(t, []string{"experience", "looking"}, missing)
}

func TestAnalyze_Properties(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)

	t.Run("identical texts score 100", func(t *testing.T) {
		result, err := svc.Analyze(testutil.SampleResume, testutil.SampleResume)
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, "excellent", result.Band)
		assert.Empty(t, result.MissingKeywords)
	})

	t.Run("disjoint vocabularies score 0", func(t *testing.T) {
		result, err := svc.Analyze("apple banana", "xylophone zebra")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, "low", result.Band)
		assert.Empty(t, result.MatchingKeywords)
	})

	t.Run("symmetric", func(t *testing.T) {
		forward, err := svc.Analyze(testutil.SampleResume, testutil.SampleJob)
		require.NoError(t, err)
		backward, err := svc.Analyze(testutil.SampleJob, testutil.SampleResume)
		require.NoError(t, err)
		assert.Equal(t, forward.Score, backward.Score)
	})

	t.Run("unicode whitespace separates words", func(t *testing.T) {
		result, err := svc.Analyze("Senior\u00a0Python\u2003developer", "senior python developer")
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, 3, result.ResumeTerms)
	})

	t.Run("fresh analysis ids", func(t *testing.T) {
		first := testutil.AnalyzeSample(t, svc)
		second := testutil.AnalyzeSample(t, svc)
		assert.NotEqual(t, first.AnalysisID, second.AnalysisID)
		assert.Equal(t, first.Score, second.Score)
	})
}

func TestAnalyze_EmptyAfterNormalization(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)

	t.Run("both empty is a scoring error", func(t *testing.T) {
		result, err := svc.Analyze("the and of 123", "!!! 42 ???")
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrScoring))
		assert.Equal(t, "Insufficient content to compare.", internalErrors.UserMessage(err))
	})

	t.Run("one empty scores zero", func(t *testing.T) {
		result, err := svc.Analyze("the and of 123", "golang kubernetes")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, "low", result.Band)
		assert.Len(t, result.MissingKeywords, 2)
	})
}

func TestAnalyze_InputValidation(t *testing.T) {
	settings := testutil.DefaultSettings()
	settings.MaxTextChars = 20
	svc, err := matcher.NewService(settings)
	require.NoError(t, err)

	tests := []struct {
		name     string
		resume   string
		job      string
		sentinel error
		field    string
	}{
		{"missing resume", "", "golang", internalErrors.ErrMissingInput, matcher.FieldResume},
		{"blank resume", "  \n\t", "golang", internalErrors.ErrMissingInput, matcher.FieldResume},
		{"missing job", "golang", "", internalErrors.ErrMissingInput, matcher.FieldJobDescription},
		{"resume too large", strings.Repeat("a", 21), "golang", internalErrors.ErrInputTooLarge, matcher.FieldResume},
		{"job too large", "golang", strings.Repeat("é", 21), internalErrors.ErrInputTooLarge, matcher.FieldJobDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Analyze(tt.resume, tt.job)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "unexpected error %v", err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestAnalyzePDF(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)

	t.Run("valid PDF", func(t *testing.T) {
		result, err := svc.AnalyzePDF(testutil.BuildPDF(testutil.SampleResume), testutil.SampleJob)
		require.NoError(t, err)
		assert.Greater(t, result.Score, 40.0)
		assert.Contains(t, []string{"moderate", "excellent"}, result.Band)
	})

	t.Run("multi page PDF", func(t *testing.T) {
		result, err := svc.AnalyzePDF(testutil.BuildPDF("Software engineer ", "Python cloud"), "software engineer python cloud")
		require.NoError(t, err)
		assert.Greater(t, result.Score, 0.0)
	})

	t.Run("not a PDF", func(t *testing.T) {
		result, err := svc.AnalyzePDF([]byte("plain text resume"), testutil.SampleJob)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, internalErrors.ErrExtraction))
		assert.Equal(t, "Could not read resume.", internalErrors.UserMessage(err))
	})

	t.Run("PDF without text", func(t *testing.T) {
		result, err := svc.AnalyzePDF(testutil.BuildPDF(""), testutil.SampleJob)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, internalErrors.ErrExtraction))
		assert.True(t, errors.Is(err, internalErrors.ErrNoExtractableText))
	})

	t.Run("missing PDF", func(t *testing.T) {
		_, err := svc.AnalyzePDF(nil, testutil.SampleJob)
		assert.True(t, errors.Is(err, internalErrors.ErrMissingInput))
	})

	t.Run("missing job description", func(t *testing.T) {
		_, err := svc.AnalyzePDF(testutil.BuildPDF(testutil.SampleResume), "   ")
		assert.True(t, errors.Is(err, internalErrors.ErrMissingInput))
		assert.Equal(t, "Please paste the job description.", internalErrors.UserMessage(err))
	})
}

func TestExtract_SizeCap(t *testing.T) {
	pdfBytes := testutil.BuildPDF(testutil.SampleResume)

	settings := testutil.DefaultSettings()
	settings.MaxPDFBytes = int64(len(pdfBytes) - 1)
	svc, err := matcher.NewService(settings)
	require.NoError(t, err)

	_, err = svc.ExtractText(pdfBytes)
	assert.True(t, errors.Is(err, internalErrors.ErrInputTooLarge))

	_, err = svc.AnalyzePDF(pdfBytes, testutil.SampleJob)
	assert.True(t, errors.Is(err, internalErrors.ErrInputTooLarge))
}

func TestExtract_Result(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)

	extraction, err := svc.Extract(testutil.BuildPDF("page one", "page two"))
	require.NoError(t, err)
	assert.Equal(t, 2, extraction.PageCount)
	assert.Contains(t, extraction.Text, "page one")
	assert.Equal(t, len([]rune(extraction.Text)), extraction.Chars)
}

func TestNewService(t *testing.T) {
	t.Run("invalid settings", func(t *testing.T) {
		_, err := matcher.NewService(config.ScorerSettings{MinTermLength: -1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrInvalidInput))
	})

	t.Run("custom stopwords", func(t *testing.T) {
		svc, err := matcher.NewService(config.ScorerSettings{Stopwords: []string{"python"}})
		require.NoError(t, err)

		result, err := svc.Analyze("python the", "python the")
		require.NoError(t, err)
		// "the" survives with the custom list and "python" is dropped
		assert.Equal(t, 1, result.ResumeTerms)
		assert.Equal(t, "the", result.MatchingKeywords[0].Term)
	})

	t.Run("min term length", func(t *testing.T) {
		svc, err := matcher.NewService(config.ScorerSettings{MinTermLength: 2})
		require.NoError(t, err)

		// "r" is dropped from the vocabulary, leaving two disjoint documents
		result, err := svc.Analyze("r programming", "r statistics")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Score)
	})

	t.Run("injected normalizer", func(t *testing.T) {
		svc := matcher.NewServiceWithNormalizer(testutil.DefaultSettings(), tokenizer.NewNormalizer(tokenizer.NewStopwordSet()))
		result, err := svc.Analyze("the go", "the rust")
		require.NoError(t, err)
		assert.Greater(t, result.Score, 0.0)
	})
}

func TestMetrics(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)

	testutil.AnalyzeSample(t, svc)
	_, _ = svc.Analyze("", testutil.SampleJob)
	_, _ = svc.AnalyzePDF([]byte("nope"), testutil.SampleJob)
	_, _ = svc.Analyze("123", "456")

	data := svc.Metrics()
	assert.Equal(t, int64(4), data.AnalysesStarted)
	assert.Equal(t, int64(1), data.AnalysesCompleted)
	assert.Equal(t, int64(3), data.AnalysesFailed)
	assert.Equal(t, int64(1), data.CompletedByBand["moderate"])
	assert.Equal(t, int64(1), data.FailedByKind[metrics.FailureMissingInput])
	assert.Equal(t, int64(1), data.FailedByKind[metrics.FailureExtraction])
	assert.Equal(t, int64(1), data.FailedByKind[metrics.FailureScoring])
}

func TestAnalyze_Concurrent(t *testing.T) {
	svc := testutil.CreateTestMatcher(t)
	expected := testutil.AnalyzeSample(t, svc).Score

	var wg sync.WaitGroup
	scores := make([]float64, 20)
	for i := range scores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.Analyze(testutil.SampleResume, testutil.SampleJob)
			if err == nil {
				scores[i] = result.Score
			}
		}(i)
	}
	wg.Wait()

	for i, score := range scores {
		assert.Equal(t, expected, score, "goroutine %d", i)
	}
}
