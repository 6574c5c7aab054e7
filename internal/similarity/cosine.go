// Package similarity scores two TF-IDF vectors and maps the score to a band.
package similarity

import (
	"math"

	"github.com/gcbaptista/resume-match-scorer/internal/vectorizer"
)

// Cosine computes the cosine similarity of two sparse non-negative vectors.
// The result is in [0, 1], and 0 when either vector has zero norm.
func Cosine(a, b vectorizer.TermVector) float64 {
	// Iterate the smaller vector for the dot product
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var dot float64
	for term, weight := range small {
		if other, ok := large[term]; ok {
			dot += weight * other
		}
	}

	normA, normB := norm(a), norm(b)
	if normA == 0 || normB == 0 || dot == 0 {
		return 0
	}

	cos := dot / (normA * normB)
	// Floating point error can push identical vectors slightly above 1
	return math.Max(0, math.Min(1, cos))
}

func norm(v vectorizer.TermVector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// ToPercentage scales a cosine similarity to 0-100 rounded to 2 decimal places.
func ToPercentage(cos float64) float64 {
	return math.Round(cos*100*100) / 100
}
