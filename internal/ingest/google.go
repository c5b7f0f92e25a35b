package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/callsift/callsift/internal/model"
)

// Google parses Google Speech-to-Text recognize responses.
//
// The response is JSON: results → ranked alternatives → word entries with
// protobuf duration strings ("1.300s"). Alternatives are ordered best first
// by the API, so the adapter takes the first alternative of each result and
// emits its words in order, which is exactly one token per recognized slot.
// A word without its own confidence inherits the alternative confidence.
type Google struct{}

// NewGoogle creates the Google Speech-to-Text adapter.
func NewGoogle() *Google {
	return &Google{}
}

// Name returns the format identifier.
func (g *Google) Name() string {
	return FormatGoogle
}

type googleResponse struct {
	Results []googleResult `json:"results"`
}

type googleResult struct {
	Alternatives []googleAlternative `json:"alternatives"`
}

type googleAlternative struct {
	Transcript string       `json:"transcript"`
	Confidence *float64     `json:"confidence"`
	Words      []googleWord `json:"words"`
}

type googleWord struct {
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Word       string   `json:"word"`
	Confidence *float64 `json:"confidence"`
	SpeakerTag int      `json:"speakerTag"`
}

// Parse decodes the response and flattens the top-ranked hypotheses.
func (g *Google) Parse(input string) ([]model.Token, error) {
	var resp googleResponse
	if err := json.Unmarshal([]byte(input), &resp); err != nil {
		return nil, &model.FormatError{Format: FormatGoogle, Reason: "invalid JSON: " + err.Error()}
	}

	var tokens []model.Token
	for ri, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		alt := result.Alternatives[0]
		for wi, word := range alt.Words {
			tok := model.NewToken(word.Word)

			start, err := parseProtoDuration(word.StartTime)
			if err != nil {
				return nil, &model.FormatError{Format: FormatGoogle, Reason: fmt.Sprintf("result %d word %d startTime: %v", ri, wi, err)}
			}
			end, err := parseProtoDuration(word.EndTime)
			if err != nil {
				return nil, &model.FormatError{Format: FormatGoogle, Reason: fmt.Sprintf("result %d word %d endTime: %v", ri, wi, err)}
			}
			tok.Start = start
			tok.End = end

			switch {
			case word.Confidence != nil:
				tok.Confidence = word.Confidence
			case alt.Confidence != nil:
				tok.Confidence = alt.Confidence
			}
			if word.SpeakerTag > 0 {
				tok.Speaker = strconv.Itoa(word.SpeakerTag)
			}

			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// parseProtoDuration converts a protobuf JSON duration ("1.300s") to seconds.
// Empty strings stay absent rather than becoming zero.
func parseProtoDuration(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	trimmed := strings.TrimSuffix(s, "s")
	if trimmed == s {
		return nil, fmt.Errorf("duration %q is missing the 's' suffix", s)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("duration %q: %w", s, err)
	}
	return &v, nil
}
