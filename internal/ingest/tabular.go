package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/callsift/callsift/internal/model"
)

// Tabular parses delimited-text transcript exports. Rows map to tokens via a
// ColumnMapping; physical columns not covered by the mapping are ignored, and
// unmapped optional columns leave the token field absent. Only the word
// column is required.
type Tabular struct {
	columns model.ColumnMapping
	comma   rune
}

// NewTabular creates a tabular adapter. A zero comma means ','.
func NewTabular(columns model.ColumnMapping, comma rune) *Tabular {
	if comma == 0 {
		comma = ','
	}
	return &Tabular{columns: columns.WithDefaults(), comma: comma}
}

// Name returns the format identifier.
func (t *Tabular) Name() string {
	return FormatTabular
}

// Parse reads the header row, resolves the column mapping against it and
// converts each following row into one token, in row order.
func (t *Tabular) Parse(input string) ([]model.Token, error) {
	r := csv.NewReader(strings.NewReader(input))
	r.Comma = t.comma
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &model.MissingColumnError{Column: t.columns.Word}
	}
	if err != nil {
		return nil, &model.FormatError{Format: FormatTabular, Line: 1, Reason: err.Error()}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	wordIdx, ok := cols[t.columns.Word]
	if !ok {
		return nil, &model.MissingColumnError{Column: t.columns.Word}
	}
	startIdx, hasStart := cols[t.columns.Start]
	endIdx, hasEnd := cols[t.columns.End]
	confIdx, hasConf := cols[t.columns.Confidence]
	spkIdx, hasSpk := cols[t.columns.Speaker]

	var tokens []model.Token
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, &model.FormatError{Format: FormatTabular, Line: line, Reason: err.Error()}
		}

		tok := model.NewToken(strings.TrimSpace(record[wordIdx]))
		if hasStart {
			if tok.Start, err = optionalFloat(record, startIdx); err != nil {
				return nil, &model.FormatError{Format: FormatTabular, Line: line, Reason: fmt.Sprintf("column %q: %v", t.columns.Start, err)}
			}
		}
		if hasEnd {
			if tok.End, err = optionalFloat(record, endIdx); err != nil {
				return nil, &model.FormatError{Format: FormatTabular, Line: line, Reason: fmt.Sprintf("column %q: %v", t.columns.End, err)}
			}
		}
		if hasConf {
			if tok.Confidence, err = optionalFloat(record, confIdx); err != nil {
				return nil, &model.FormatError{Format: FormatTabular, Line: line, Reason: fmt.Sprintf("column %q: %v", t.columns.Confidence, err)}
			}
		}
		if hasSpk && spkIdx < len(record) {
			tok.Speaker = strings.TrimSpace(record[spkIdx])
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// optionalFloat parses a cell into an optional float. Empty cells stay absent.
func optionalFloat(record []string, idx int) (*float64, error) {
	if idx >= len(record) {
		return nil, nil
	}
	cell := strings.TrimSpace(record[idx])
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
