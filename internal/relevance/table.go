// Package relevance holds the word→category relevance weights used as the
// ground truth for scoring, loaded once from a workbook or delimited table
// and immutable afterwards so concurrent scoring runs can share one copy.
package relevance

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/callsift/callsift/internal/model"
	"github.com/xuri/excelize/v2"
)

// Required columns of a relevance table source.
const (
	ColumnWord  = "word"
	ColumnCat   = "cat"
	ColumnScore = "score"
)

// Row is one (term, category, weight) triple.
type Row struct {
	Term      string
	Category  string
	Relevance float64
}

// Table is an immutable relevance table. Lookup is by exact, case-sensitive
// term match; no normalization happens on load.
type Table struct {
	rows       []Row
	index      map[string]map[string]float64 // term → category → weight
	categories []string                      // distinct categories, sorted
}

// New builds a table from rows. Empty or unknown categories are tolerated:
// they simply contribute nothing at scoring time.
func New(rows []Row) *Table {
	t := &Table{
		rows:  rows,
		index: make(map[string]map[string]float64, len(rows)),
	}
	cats := make(map[string]struct{})
	for _, row := range rows {
		byCat := t.index[row.Term]
		if byCat == nil {
			byCat = make(map[string]float64)
			t.index[row.Term] = byCat
		}
		byCat[row.Category] = row.Relevance
		cats[row.Category] = struct{}{}
	}
	t.categories = make([]string, 0, len(cats))
	for cat := range cats {
		t.categories = append(t.categories, cat)
	}
	sort.Strings(t.categories)
	return t
}

// Load reads a relevance table file. An .xlsx extension selects workbook
// parsing; anything else is read as delimited text with the given comma
// (0 means ','). The three required columns are word, cat and score; a
// missing one fails with a *model.SchemaError naming it.
func Load(path string, comma rune) (*Table, error) {
	var records [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err = readWorkbook(path)
	} else {
		records, err = readDelimited(path, comma)
	}
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// readWorkbook reads the first sheet of an xlsx workbook.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// readDelimited reads a delimited text table.
func readDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	if comma != 0 {
		r.Comma = comma
	}
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	return records, nil
}

// fromRecords converts header+rows into a table, validating the schema.
func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, &model.SchemaError{Column: ColumnWord}
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColumnWord, ColumnCat, ColumnScore} {
		if _, ok := cols[required]; !ok {
			return nil, &model.SchemaError{Column: required}
		}
	}
	wordIdx, catIdx, scoreIdx := cols[ColumnWord], cols[ColumnCat], cols[ColumnScore]

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) <= wordIdx || len(record) <= catIdx || len(record) <= scoreIdx {
			return nil, &model.FormatError{Format: "table", Line: line, Reason: "row has fewer cells than the header"}
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(record[scoreIdx]), 64)
		if err != nil {
			return nil, &model.FormatError{Format: "table", Line: line, Reason: "score: " + err.Error()}
		}
		rows = append(rows, Row{
			Term:      record[wordIdx],
			Category:  strings.TrimSpace(record[catIdx]),
			Relevance: weight,
		})
	}
	return New(rows), nil
}

// RelevanceOf returns the weight of a term for a category, or 0 when no row
// matches. Absence is not an error.
func (t *Table) RelevanceOf(term, category string) float64 {
	return t.index[term][category]
}

// HasTerm reports whether any row carries the term (exact, case-sensitive).
func (t *Table) HasTerm(term string) bool {
	_, ok := t.index[term]
	return ok
}

// Categories returns every distinct category in the table, sorted, including
// the empty category if present in the source. The slice is a fresh copy;
// callers cannot reach the table's internals through it.
func (t *Table) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table rows in load order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// TermsIn returns the terms of every row in a category, in load order,
// duplicates included.
func (t *Table) TermsIn(category string) []string {
	var terms []string
	for _, row := range t.rows {
		if row.Category == category {
			terms = append(terms, row.Term)
		}
	}
	return terms
}
