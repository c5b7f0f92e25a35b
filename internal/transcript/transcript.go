package transcript

import (
	"fmt"
	"os"

	"github.com/callsift/callsift/internal/ingest"
	"github.com/callsift/callsift/internal/model"
)

// Transcript owns the ordered token sequence recognized from one recorded
// conversation. Tokens are populated by exactly one adapter invocation per
// ingestion; re-ingesting fully replaces the previous sequence.
//
// A transcript is either file-backed (location set) or text-backed. Audio
// handling, directory conventions and other file bookkeeping live with the
// callers; the transcript only knows its own source.
type Transcript struct {
	location string
	text     string // raw source text, kept after a file read or explicit construction
	hasText  bool
	tokens   []model.Token
	scores   model.CategoryScore // last classification, informational only
}

// New creates a file-backed transcript. Nothing is read until Ingest.
func New(location string) *Transcript {
	return &Transcript{location: location}
}

// FromText creates a text-backed transcript with no source location. Only
// formats that can parse the given text directly apply to it.
func FromText(text string) *Transcript {
	return &Transcript{text: text, hasText: true}
}

// FromTokens creates a transcript directly from an already-built token
// sequence, bypassing ingestion.
func FromTokens(tokens []model.Token) *Transcript {
	t := &Transcript{}
	t.tokens = append(t.tokens, tokens...)
	return t
}

// Location returns the source path, or a *model.NoLocationError for
// text-backed transcripts.
func (t *Transcript) Location() (string, error) {
	if t.location == "" {
		return "", &model.NoLocationError{Op: "location"}
	}
	return t.location, nil
}

// Ingest parses the transcript source with the adapter for the given format
// and replaces the token sequence. The source mode decides where the raw
// input comes from:
//
//   - SourceExplicitText: the text argument
//   - SourceFileContents: the transcript's own location (kept as preloaded
//     text afterwards)
//   - SourcePreloadedText: text retained from construction or an earlier
//     file read
func (t *Transcript) Ingest(format string, mode ingest.SourceMode, text string, opts ingest.Options) error {
	adapter, err := ingest.ForFormat(format, opts)
	if err != nil {
		return err
	}

	input, err := t.resolveSource(mode, text)
	if err != nil {
		return err
	}

	tokens, err := adapter.Parse(input)
	if err != nil {
		return fmt.Errorf("parse %s: %w", adapter.Name(), err)
	}

	t.tokens = tokens
	t.scores = nil
	return nil
}

// IngestFile is the common case: parse the transcript's own file.
func (t *Transcript) IngestFile(format string, opts ingest.Options) error {
	return t.Ingest(format, ingest.SourceFileContents, "", opts)
}

// IngestFileAt parses an externally supplied file instead of the
// transcript's own location. Used by tabular exports that live next to, not
// at, the recording path.
func (t *Transcript) IngestFileAt(format, path string, opts ingest.Options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return t.Ingest(format, ingest.SourceExplicitText, string(raw), opts)
}

func (t *Transcript) resolveSource(mode ingest.SourceMode, text string) (string, error) {
	switch mode {
	case ingest.SourceExplicitText:
		return text, nil
	case ingest.SourceFileContents:
		if t.location == "" {
			return "", &model.NoLocationError{Op: "read source"}
		}
		raw, err := os.ReadFile(t.location)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", t.location, err)
		}
		t.text = string(raw)
		t.hasText = true
		return t.text, nil
	case ingest.SourcePreloadedText:
		if !t.hasText {
			return "", fmt.Errorf("no preloaded text: ingest from file or explicit text first")
		}
		return t.text, nil
	default:
		return "", fmt.Errorf("unknown source mode %q", mode)
	}
}

// Tokens returns the token sequence in ingestion order. The returned slice
// is shared; callers must not modify it.
func (t *Transcript) Tokens() []model.Token {
	return t.tokens
}

// TokenCount returns the total number of tokens, duplicates included.
func (t *Transcript) TokenCount() int {
	return len(t.tokens)
}

// UniqueTermCount returns the number of distinct terms, case-sensitive. It is
// computed from the current tokens on every call so re-ingestion can never
// leave it stale.
func (t *Transcript) UniqueTermCount() int {
	seen := make(map[string]struct{}, len(t.tokens))
	for _, tok := range t.tokens {
		seen[tok.Term] = struct{}{}
	}
	return len(seen)
}

// Duration returns the elapsed time in seconds from the first timed token's
// start to the last timed token's end. Transcripts without any timing fail
// with a *model.MissingTimingError.
func (t *Transcript) Duration() (float64, error) {
	var first, last *float64
	for i := range t.tokens {
		if first == nil && t.tokens[i].Start != nil {
			first = t.tokens[i].Start
		}
		if t.tokens[i].End != nil {
			last = t.tokens[i].End
		}
	}
	if first == nil || last == nil {
		return 0, &model.MissingTimingError{}
	}
	return *last - *first, nil
}

// SetScores records a classification result on the transcript for later
// inspection. Scoring itself never depends on this.
func (t *Transcript) SetScores(scores model.CategoryScore) {
	t.scores = scores
}

// LastScores returns the scores recorded by SetScores, or nil.
func (t *Transcript) LastScores() model.CategoryScore {
	return t.scores
}
