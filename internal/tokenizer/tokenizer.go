// Package tokenizer turns raw resume and job description text into the
// normalized, stopword-free form that the vectorizer consumes.
package tokenizer

import (
	"regexp"
	"strings"
)

// unicodeSpace is the whitespace class used for cleaning. RE2's \s is ASCII only,
// so NBSP, \v and the other Unicode separators are listed explicitly.
const unicodeSpace = `\s\v\x{85}\x{1c}-\x{1f}\p{Z}`

// nonLetterRegex matches every character that is neither an ASCII letter nor whitespace.
// Matches are deleted, not replaced with a space, so "C++11" becomes "c" and "e-mail" becomes "email".
var nonLetterRegex = regexp.MustCompile(`[^a-zA-Z` + unicodeSpace + `]`)

// whitespaceRegex matches runs of whitespace
var whitespaceRegex = regexp.MustCompile(`[` + unicodeSpace + `]+`)

// contractionSplits are the fused forms the Penn Treebank word tokenizer breaks in two
var contractionSplits = map[string][]string{
	"cannot": {"can", "not"},
	"gimme":  {"gim", "me"},
	"gonna":  {"gon", "na"},
	"gotta":  {"got", "ta"},
	"lemme":  {"lem", "me"},
	"wanna":  {"wan", "na"},
}

// Normalizer cleans text and removes stopwords. It holds no mutable state
// and is safe for concurrent use.
type Normalizer struct {
	stopwords StopwordSet
}

// NewNormalizer creates a normalizer that drops the given stopwords
func NewNormalizer(stopwords StopwordSet) *Normalizer {
	return &Normalizer{stopwords: stopwords}
}

// DefaultNormalizer creates a normalizer backed by the English stopword list
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(EnglishStopwords())
}

// Clean lowercases text, deletes non-letters and collapses whitespace.
func Clean(text string) string {
	// 1. Lowercase
	lowerText := strings.ToLower(text)

	// 2. Delete anything that is not a letter or whitespace
	lettersOnly := nonLetterRegex.ReplaceAllString(lowerText, "")

	// 3. Collapse whitespace and trim
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(lettersOnly, " "))
}

// Normalize cleans text, tokenizes it and removes stopwords.
// The result holds only lowercase ASCII letters separated by single spaces.
func (n *Normalizer) Normalize(text string) string {
	tokens := Tokenize(Clean(text))

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !n.stopwords.Contains(token) {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, " ")
}

// Tokenize splits text into whitespace-delimited words.
// Fused forms such as "cannot" and "gonna" are split into their two parts.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if parts, ok := contractionSplits[field]; ok {
			tokens = append(tokens, parts...)
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
