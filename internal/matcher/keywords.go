package matcher

import (
	"sort"

	"github.com/gcbaptista/resume-match-scorer/internal/vectorizer"
	"github.com/gcbaptista/resume-match-scorer/model"
)

// matchingKeywords returns terms present in both vectors, weighted by their
// contribution to the dot product, strongest first.
func matchingKeywords(resume, job vectorizer.TermVector, limit int) []model.Keyword {
	keywords := make([]model.Keyword, 0)
	for term, jobWeight := range job {
		if resumeWeight, ok := resume[term]; ok {
			keywords = append(keywords, model.Keyword{Term: term, Weight: resumeWeight * jobWeight})
		}
	}
	return rankKeywords(keywords, limit)
}

// missingKeywords returns job terms the resume lacks, weighted by their job weight, strongest first.
func missingKeywords(resume, job vectorizer.TermVector, limit int) []model.Keyword {
	keywords := make([]model.Keyword, 0)
	for term, jobWeight := range job {
		if _, ok := resume[term]; !ok {
			keywords = append(keywords, model.Keyword{Term: term, Weight: jobWeight})
		}
	}
	return rankKeywords(keywords, limit)
}

// rankKeywords sorts by weight descending, then term ascending, and truncates to limit (0 = no limit)
func rankKeywords(keywords []model.Keyword, limit int) []model.Keyword {
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Weight != keywords[j].Weight {
			return keywords[i].Weight > keywords[j].Weight
		}
		return keywords[i].Term < keywords[j].Term
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
