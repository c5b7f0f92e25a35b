package ingest

import (
	"bufio"
	"sort"
	"strconv"
	"strings"

	"github.com/callsift/callsift/internal/model"
)

// Nuance parses word-lattice dumps from the Nuance Transcription Engine.
//
// The dump is line oriented. Lines starting with '#' are headers or comments
// and blank lines are ignored. Every other line is one hypothesis:
//
//	slot <index> <start-secs> <end-secs> <word> <confidence> [<channel>]
//
// Several lines may share a slot index; those are competing hypotheses for
// the same time slot. The adapter keeps the highest-confidence hypothesis per
// slot (first one wins on ties) and emits slots in index order, so the output
// carries exactly one token per slot in temporal order.
type Nuance struct{}

// NewNuance creates the Nuance lattice adapter.
func NewNuance() *Nuance {
	return &Nuance{}
}

// Name returns the format identifier.
func (n *Nuance) Name() string {
	return FormatNuance
}

type nuanceHypothesis struct {
	token model.Token
	conf  float64
}

// Parse reads the lattice and selects the best hypothesis per slot.
func (n *Nuance) Parse(input string) ([]model.Token, error) {
	best := make(map[int]nuanceHypothesis)

	scanner := bufio.NewScanner(strings.NewReader(input))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 6 || fields[0] != "slot" {
			return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: "expected: slot <index> <start> <end> <word> <confidence>"}
		}

		slot, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: "slot index: " + err.Error()}
		}
		start, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: "start time: " + err.Error()}
		}
		end, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: "end time: " + err.Error()}
		}
		conf, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: "confidence: " + err.Error()}
		}

		tok := model.TimedToken(fields[4], start, end, conf)
		if len(fields) > 6 {
			tok.Speaker = fields[6]
		}

		if current, seen := best[slot]; !seen || conf > current.conf {
			best[slot] = nuanceHypothesis{token: tok, conf: conf}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &model.FormatError{Format: FormatNuance, Line: line, Reason: err.Error()}
	}

	slots := make([]int, 0, len(best))
	for slot := range best {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	tokens := make([]model.Token, 0, len(slots))
	for _, slot := range slots {
		tokens = append(tokens, best[slot].token)
	}
	return tokens, nil
}
