package relevance

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ExportOptions filters which categories get a wordlist file.
type ExportOptions struct {
	UseCats  []string // when non-empty, only these categories are exported
	SkipCats []string // categories to leave out
}

// ExportWordlists writes one term-list file per non-empty category into dir,
// appending only terms the file does not already contain. Weights are
// ignored here; the files feed word-cloud style UIs that only need the term
// sets. Repeated exports of the same table are no-ops.
func ExportWordlists(t *Table, dir string, opts ExportOptions) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create wordlist dir: %w", err)
	}

	use := toSet(opts.UseCats)
	skip := toSet(opts.SkipCats)

	for _, cat := range t.Categories() {
		if cat == "" {
			continue
		}
		if len(use) > 0 {
			if _, ok := use[cat]; !ok {
				continue
			}
		}
		if _, ok := skip[cat]; ok {
			continue
		}
		if err := exportCategory(t, cat, dir); err != nil {
			return fmt.Errorf("category %q: %w", cat, err)
		}
	}
	return nil
}

func exportCategory(t *Table, cat, dir string) error {
	path := filepath.Join(dir, WordlistFilename(cat))

	existing, err := readTermSet(path)
	if err != nil {
		return err
	}

	var fresh []string
	seen := make(map[string]struct{})
	for _, raw := range t.TermsIn(cat) {
		term := NormalizeTerm(raw)
		if term == "" {
			continue
		}
		if _, ok := existing[term]; ok {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		fresh = append(fresh, term)
	}
	if len(fresh) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, term := range fresh {
		if _, err := w.WriteString(term + "\n"); err != nil {
			return fmt.Errorf("write wordlist: %w", err)
		}
	}
	return w.Flush()
}

// WordlistFilename returns the file name for a category's wordlist:
// capitalized category plus .txt.
func WordlistFilename(cat string) string {
	if cat == "" {
		return ".txt"
	}
	r, size := utf8.DecodeRuneInString(cat)
	return strings.ToUpper(string(r)) + cat[size:] + ".txt"
}

// NormalizeTerm canonicalizes a term for wordlist files: NFKC-normalized,
// lowercased, inner spaces become underscores (ngram convention) and leading
// or trailing underscores are stripped.
func NormalizeTerm(term string) string {
	term = norm.NFKC.String(term)
	term = strings.ToLower(strings.TrimSpace(term))
	term = strings.ReplaceAll(term, " ", "_")
	return strings.Trim(term, "_")
}

// readTermSet reads the terms already present in a wordlist file. A missing
// file is an empty set.
func readTermSet(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	terms := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			terms[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan wordlist: %w", err)
	}
	return terms, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
