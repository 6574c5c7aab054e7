package model

// Keyword is a vocabulary term with its TF-IDF weight in the document it is reported for
type Keyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// MatchResult is the outcome of comparing one resume with one job description.
// It is never stored; it only lives for the duration of a request.
type MatchResult struct {
	AnalysisID       string    `json:"analysis_id"`       // unique UUID for this analysis
	Score            float64   `json:"score"`             // cosine similarity scaled to 0-100, rounded to 2 decimals
	Band             string    `json:"band"`              // "low", "moderate" or "excellent"
	Label            string    `json:"label"`             // e.g. "moderate match"
	Color            string    `json:"color"`             // gauge fill colour for the band
	Verdict          string    `json:"verdict"`           // guidance shown with the score
	MatchingKeywords []Keyword `json:"matching_keywords"` // terms present in both documents, strongest first
	MissingKeywords  []Keyword `json:"missing_keywords"`  // job terms absent from the resume, strongest first
	ResumeTerms      int       `json:"resume_terms"`      // distinct terms in the normalized resume
	JobTerms         int       `json:"job_terms"`         // distinct terms in the normalized job description
	Took             int64     `json:"took"`              // milliseconds
}

// ExtractionResult is the outcome of reading a resume PDF
type ExtractionResult struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	Chars     int    `json:"chars"`
}
