package model

// Token is one recognized word from a transcript. Timing and confidence are
// optional: plain-text sources carry neither, lattice sources carry both.
// Tokens are value objects and are never mutated after ingestion.
type Token struct {
	Term       string   `json:"term"`
	Start      *float64 `json:"start,omitempty"`      // seconds from start of recording
	End        *float64 `json:"end,omitempty"`        // seconds from start of recording
	Confidence *float64 `json:"confidence,omitempty"` // recognition confidence in [0,1]
	Speaker    string   `json:"speaker,omitempty"`
}

// NewToken creates a bare token with only the term set.
func NewToken(term string) Token {
	return Token{Term: term}
}

// TimedToken creates a token with timing and confidence populated.
func TimedToken(term string, start, end, confidence float64) Token {
	return Token{
		Term:       term,
		Start:      &start,
		End:        &end,
		Confidence: &confidence,
	}
}

// ColumnMapping maps the logical tabular-transcript columns onto the physical
// column names of a particular export. Empty fields fall back to the logical
// names themselves (word, t0, tx, conf, spk).
type ColumnMapping struct {
	Word       string `yaml:"word" json:"word"`
	Start      string `yaml:"t0" json:"t0"`
	End        string `yaml:"tx" json:"tx"`
	Confidence string `yaml:"conf" json:"conf"`
	Speaker    string `yaml:"spk" json:"spk"`
}

// DefaultColumnMapping returns the logical column names used when a mapping
// field is left unconfigured.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Word:       "word",
		Start:      "t0",
		End:        "tx",
		Confidence: "conf",
		Speaker:    "spk",
	}
}

// WithDefaults fills unset fields with the logical column names.
func (m ColumnMapping) WithDefaults() ColumnMapping {
	def := DefaultColumnMapping()
	if m.Word == "" {
		m.Word = def.Word
	}
	if m.Start == "" {
		m.Start = def.Start
	}
	if m.End == "" {
		m.End = def.End
	}
	if m.Confidence == "" {
		m.Confidence = def.Confidence
	}
	if m.Speaker == "" {
		m.Speaker = def.Speaker
	}
	return m
}

// CategoryScore maps each category of a relevance table to its score for one
// transcript. Scores are unbounded in sign and magnitude; they are not
// probabilities.
type CategoryScore map[string]float64
