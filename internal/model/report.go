package model

import "time"

// Report is the classification result for one transcript.
type Report struct {
	Source      string        `json:"source,omitempty"` // transcript file path, if any
	Format      string        `json:"format"`           // ingestion format used
	Correction  string        `json:"correction"`       // correction strategy applied
	TokenCount  int           `json:"token_count"`
	UniqueTerms int           `json:"unique_terms"`
	ScoredAt    time.Time     `json:"scored_at"`
	Scores      CategoryScore `json:"scores"`
}

// TopCategory returns the highest-scoring category, or "" for a report with
// no categories. Ties break alphabetically so the result is deterministic.
func (r *Report) TopCategory() string {
	best := ""
	var bestScore float64
	found := false
	for cat, s := range r.Scores {
		if !found || s > bestScore || (s == bestScore && cat < best) {
			best = cat
			bestScore = s
			found = true
		}
	}
	return best
}
