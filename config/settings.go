// Package config provides configuration structures for the match scorer.
// It defines scoring limits, server options and their defaults.
package config

import (
	"fmt"
)

// Default limits. A resume and a job description are a few pages each, so these caps
// keep a single analysis well under a second.
const (
	DefaultMaxPDFBytes          int64 = 10 << 20 // 10 MiB
	DefaultMaxTextChars               = 200_000
	DefaultMinTermLength              = 1
	DefaultMissingKeywordsLimit       = 20
	DefaultMatchingKeywordsLimit      = 20
)

// ScorerSettings contains the options of the analysis pipeline.
type ScorerSettings struct {
	MaxPDFBytes           int64    `json:"max_pdf_bytes"`           // Uploaded PDFs larger than this are rejected
	MaxTextChars          int      `json:"max_text_chars"`          // Resume or job text longer than this (in characters) is rejected
	MinTermLength         int      `json:"min_term_length"`         // Terms shorter than this are left out of the vocabulary (2 reproduces \b\w\w+\b)
	MissingKeywordsLimit  int      `json:"missing_keywords_limit"`  // Maximum number of missing job keywords reported
	MatchingKeywordsLimit int      `json:"matching_keywords_limit"` // Maximum number of shared keywords reported
	Stopwords             []string `json:"stopwords,omitempty"`     // Optional replacement for the English stopword list
}

// ApplyDefaults applies default values to the scorer settings
func (settings *ScorerSettings) ApplyDefaults() {
	if settings.MaxPDFBytes == 0 {
		settings.MaxPDFBytes = DefaultMaxPDFBytes
	}
	if settings.MaxTextChars == 0 {
		settings.MaxTextChars = DefaultMaxTextChars
	}
	if settings.MinTermLength == 0 {
		settings.MinTermLength = DefaultMinTermLength
	}
	if settings.MissingKeywordsLimit == 0 {
		settings.MissingKeywordsLimit = DefaultMissingKeywordsLimit
	}
	if settings.MatchingKeywordsLimit == 0 {
		settings.MatchingKeywordsLimit = DefaultMatchingKeywordsLimit
	}
}

// Validate returns one message per invalid setting
func (settings *ScorerSettings) Validate() []string {
	var errors []string

	if settings.MaxPDFBytes < 0 {
		errors = append(errors, fmt.Sprintf("max_pdf_bytes must not be negative, got %d", settings.MaxPDFBytes))
	}
	if settings.MaxTextChars < 0 {
		errors = append(errors, fmt.Sprintf("max_text_chars must not be negative, got %d", settings.MaxTextChars))
	}
	if settings.MinTermLength < 0 {
		errors = append(errors, fmt.Sprintf("min_term_length must not be negative, got %d", settings.MinTermLength))
	}
	if settings.MissingKeywordsLimit < 0 {
		errors = append(errors, fmt.Sprintf("missing_keywords_limit must not be negative, got %d", settings.MissingKeywordsLimit))
	}
	if settings.MatchingKeywordsLimit < 0 {
		errors = append(errors, fmt.Sprintf("matching_keywords_limit must not be negative, got %d", settings.MatchingKeywordsLimit))
	}

	for _, word := range settings.Stopwords {
		if word == "" {
			errors = append(errors, "Stopword cannot be empty")
			break
		}
	}

	return errors
}

// ServerSettings contains the options of the HTTP surface
type ServerSettings struct {
	Port            string `json:"port"`
	GinMode         string `json:"gin_mode"`          // "debug", "release" or "test"
	MaxRequestBytes int64  `json:"max_request_bytes"` // Upper bound on any request body
}

// ApplyDefaults applies default values to the server settings
func (settings *ServerSettings) ApplyDefaults(scorer ScorerSettings) {
	if settings.Port == "" {
		settings.Port = "8080"
	}
	if settings.GinMode == "" {
		settings.GinMode = "release"
	}
	// Leave room for multipart overhead and the job description field
	if minimum := scorer.MaxPDFBytes + int64(scorer.MaxTextChars)*4 + 1<<20; settings.MaxRequestBytes < minimum {
		settings.MaxRequestBytes = minimum
	}
}
