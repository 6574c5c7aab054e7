package similarity

// Band is the textual category a score falls into
type Band string

const (
	BandLow       Band = "low"
	BandModerate  Band = "moderate"
	BandExcellent Band = "excellent"
)

// Band thresholds. Each band includes its lower bound and excludes its upper bound.
const (
	ModerateThreshold  = 40.0
	ExcellentThreshold = 70.0
)

// BandFor returns the band for a 0-100 score
func BandFor(score float64) Band {
	switch {
	case score < ModerateThreshold:
		return BandLow
	case score < ExcellentThreshold:
		return BandModerate
	default:
		return BandExcellent
	}
}

// Label returns the human-readable band label, e.g. "moderate match"
func (b Band) Label() string {
	return string(b) + " match"
}

// Color returns the gauge fill colour used when rendering the score
func (b Band) Color() string {
	switch b {
	case BandLow:
		return "#ff4b4b"
	case BandModerate:
		return "#ffa726"
	default:
		return "#0f9d58"
	}
}

// Verdict returns the guidance shown next to the score
func (b Band) Verdict() string {
	switch b {
	case BandLow:
		return "Low match. Consider tailoring your resume."
	case BandModerate:
		return "Good match. Some improvements possible."
	default:
		return "Excellent match. Strong alignment!"
	}
}
