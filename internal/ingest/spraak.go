package ingest

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/callsift/callsift/internal/model"
)

// Spraak parses SPRaak recognizer segmentation output.
//
// Header lines start with '.' (metadata keys) and '#' marks comments; both
// are ignored. Hypotheses for one time slot form a block; blocks are
// separated by lines containing only "---". Each hypothesis line is:
//
//	<start-secs> <end-secs> <word> <score>
//
// The highest-scoring hypothesis of each block is kept (first wins on ties)
// and blocks are emitted in file order, which is temporal order for SPRaak
// segmentations. A separator with no preceding hypotheses is malformed.
type Spraak struct{}

// NewSpraak creates the SPRaak lattice adapter.
func NewSpraak() *Spraak {
	return &Spraak{}
}

// Name returns the format identifier.
func (s *Spraak) Name() string {
	return FormatSpraak
}

// Parse reads the segmentation blocks and selects the best hypothesis each.
func (s *Spraak) Parse(input string) ([]model.Token, error) {
	var tokens []model.Token

	var blockBest *model.Token
	var blockScore float64

	scanner := bufio.NewScanner(strings.NewReader(input))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ".") {
			continue
		}
		if text == "---" {
			if blockBest == nil {
				return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: "time slot block has no hypotheses"}
			}
			tokens = append(tokens, *blockBest)
			blockBest = nil
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: "expected: <start> <end> <word> <score>"}
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: "start time: " + err.Error()}
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: "end time: " + err.Error()}
		}
		score, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: "score: " + err.Error()}
		}

		if blockBest == nil || score > blockScore {
			tok := model.TimedToken(fields[2], start, end, score)
			blockBest = &tok
			blockScore = score
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &model.FormatError{Format: FormatSpraak, Line: line, Reason: err.Error()}
	}

	// Trailing block without a closing separator.
	if blockBest != nil {
		tokens = append(tokens, *blockBest)
	}
	return tokens, nil
}
