package ingest

import (
	"strings"

	"github.com/callsift/callsift/internal/model"
)

// PlainText parses whitespace-separated word dumps. Every word becomes a
// token with only the term set; there is no timing or confidence to carry.
type PlainText struct{}

// NewPlainText creates the plain-text adapter.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Name returns the format identifier.
func (p *PlainText) Name() string {
	return FormatPlainText
}

// Parse splits the input on whitespace, preserving textual order.
func (p *PlainText) Parse(input string) ([]model.Token, error) {
	words := strings.Fields(input)
	tokens := make([]model.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, model.NewToken(w))
	}
	return tokens, nil
}
