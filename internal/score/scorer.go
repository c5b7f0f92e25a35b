// Package score aggregates token-level relevance into category scores.
package score

import (
	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/relevance"
	"github.com/callsift/callsift/internal/transcript"
)

// neutralConfidence stands in for tokens without recognition confidence.
const neutralConfidence = 1.0

// Scorer computes category scores for a transcript against a relevance
// table.
//
// For every category c in the table:
//
//	score(c) = sum over tokens t of relevance(t.term, c) * confidence(t)
//	           * uniqueTermCount / correction
//
// The unique-term multiplier rewards a broad vocabulary of relevant terms
// over one term repeated; the correction divisor normalizes across
// transcripts of different lengths. Scoring is a pure function of its
// inputs: it either returns a complete mapping over every table category or
// fails without partial results.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score scores the transcript against the table with the given correction.
func (s *Scorer) Score(t *transcript.Transcript, table *relevance.Table, corr Correction) (model.CategoryScore, error) {
	factor, err := corr.Factor(t)
	if err != nil {
		return nil, err
	}

	cats := table.Categories()
	scores := make(model.CategoryScore, len(cats))
	for _, cat := range cats {
		scores[cat] = 0
	}

	// An empty transcript contributes nothing to any category; returning
	// the zero mapping avoids a 0/0 under the wordcount correction.
	if t.TokenCount() == 0 {
		return scores, nil
	}

	for _, tok := range t.Tokens() {
		if !table.HasTerm(tok.Term) {
			continue
		}
		conf := neutralConfidence
		if tok.Confidence != nil {
			conf = *tok.Confidence
		}
		for _, cat := range cats {
			if rel := table.RelevanceOf(tok.Term, cat); rel != 0 {
				scores[cat] += rel * conf
			}
		}
	}

	unique := float64(t.UniqueTermCount())
	for cat := range scores {
		scores[cat] = scores[cat] * unique / factor
	}
	return scores, nil
}
