// Package vectorizer builds TF-IDF vectors over a corpus made of exactly two
// normalized documents: a resume and a job description. Vocabulary and IDF
// are recomputed on every Fit and never shared between calls.
package vectorizer

import (
	"math"
	"sort"

	"github.com/gcbaptista/resume-match-scorer/internal/errors"
	"github.com/gcbaptista/resume-match-scorer/internal/tokenizer"
)

// corpusSize is the number of documents every model is fitted on
const corpusSize = 2

const (
	resumeDoc = 0
	jobDoc    = 1
)

// TermVector maps a vocabulary term to its non-negative TF-IDF weight.
// Terms with zero weight are absent.
type TermVector map[string]float64

// Options controls which terms enter the vocabulary
type Options struct {
	MinTermLength int // Terms shorter than this are ignored. 2 mirrors the \b\w\w+\b token pattern.
}

// Model is a TF-IDF fit over one (resume, job) pair
type Model struct {
	vocabulary []string
	idf        map[string]float64
	counts     [corpusSize]map[string]int
	vectors    [corpusSize]TermVector
}

// Fit builds the vocabulary, IDF weights and L2-normalized vectors for the two documents.
// TF is the raw term count; IDF = ln((1+n)/(1+df)) + 1 with n = 2.
// It returns a ScoringError when neither document contributes a single term.
func Fit(resume, job string, opts Options) (*Model, error) {
	m := &Model{idf: make(map[string]float64)}

	docs := [corpusSize]string{resumeDoc: resume, jobDoc: job}
	for i, doc := range docs {
		m.counts[i] = countTerms(doc, opts.MinTermLength)
	}

	// Document frequency over the two-document corpus
	docFreq := make(map[string]int)
	for _, counts := range m.counts {
		for term := range counts {
			docFreq[term]++
		}
	}

	if len(docFreq) == 0 {
		return nil, errors.NewScoringError(errors.NoComparableContent)
	}

	m.vocabulary = make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		m.vocabulary = append(m.vocabulary, term)
		m.idf[term] = calculateIDF(df)
	}
	sort.Strings(m.vocabulary)

	for i, counts := range m.counts {
		m.vectors[i] = m.weigh(counts)
	}

	return m, nil
}

// calculateIDF calculates the smoothed inverse document frequency
// IDF = ln((1 + N) / (1 + df)) + 1 where N = corpus size, df = documents containing term
func calculateIDF(docFreq int) float64 {
	return math.Log(float64(1+corpusSize)/float64(1+docFreq)) + 1
}

// countTerms returns raw term counts for a normalized document
func countTerms(doc string, minTermLength int) map[string]int {
	counts := make(map[string]int)
	for _, term := range tokenizer.Tokenize(doc) {
		if len(term) < minTermLength {
			continue
		}
		counts[term]++
	}
	return counts
}

// weigh turns raw counts into an L2-normalized TF-IDF vector
func (m *Model) weigh(counts map[string]int) TermVector {
	vector := make(TermVector, len(counts))
	if len(counts) == 0 {
		return vector
	}

	var sumSquares float64
	for term, count := range counts {
		weight := float64(count) * m.idf[term]
		vector[term] = weight
		sumSquares += weight * weight
	}

	norm := math.Sqrt(sumSquares)
	for term := range vector {
		vector[term] /= norm
	}
	return vector
}

// Vocabulary returns the sorted set of distinct terms across both documents
func (m *Model) Vocabulary() []string {
	out := make([]string, len(m.vocabulary))
	copy(out, m.vocabulary)
	return out
}

// IDF returns the inverse document frequency of term and whether it is in the vocabulary
func (m *Model) IDF(term string) (float64, bool) {
	idf, ok := m.idf[term]
	return idf, ok
}

// Resume returns the resume's TF-IDF vector
func (m *Model) Resume() TermVector {
	return m.vectors[resumeDoc]
}

// Job returns the job description's TF-IDF vector
func (m *Model) Job() TermVector {
	return m.vectors[jobDoc]
}

// ResumeTermCount returns the number of distinct terms in the resume
func (m *Model) ResumeTermCount() int {
	return len(m.counts[resumeDoc])
}

// JobTermCount returns the number of distinct terms in the job description
func (m *Model) JobTermCount() int {
	return len(m.counts[jobDoc])
}
