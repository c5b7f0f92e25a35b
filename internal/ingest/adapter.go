package ingest

import (
	"github.com/callsift/callsift/internal/model"
)

// Format identifiers accepted by ForFormat.
const (
	FormatPlainText = "txt"
	FormatTabular   = "csv"
	FormatNuance    = "nuance"
	FormatGoogle    = "google"
	FormatSpraak    = "spraak"
)

// SourceMode tells the caller of an adapter where the raw input comes from.
// Adapter selection never sniffs content; both format and source mode are
// explicit caller choices.
type SourceMode string

const (
	// SourceExplicitText parses caller-supplied text.
	SourceExplicitText SourceMode = "explicitText"
	// SourceFileContents reads the transcript's source location.
	SourceFileContents SourceMode = "fileContents"
	// SourcePreloadedText reuses text loaded by an earlier file read.
	SourcePreloadedText SourceMode = "preloadedText"
)

// Valid reports whether m is one of the three defined source modes.
func (m SourceMode) Valid() bool {
	switch m {
	case SourceExplicitText, SourceFileContents, SourcePreloadedText:
		return true
	}
	return false
}

// Adapter parses one source format into an ordered token sequence.
type Adapter interface {
	// Name returns the format identifier this adapter handles.
	Name() string

	// Parse converts raw input into tokens in recognition order. Malformed
	// input fails with a *model.FormatError naming the offending line.
	Parse(input string) ([]model.Token, error)
}

// Options carries per-ingestion configuration. Only the tabular adapter
// reads it today; the lattice adapters have fixed grammars.
type Options struct {
	Columns model.ColumnMapping // tabular column mapping
	Comma   rune                // tabular delimiter; 0 means comma
}

// ForFormat returns the adapter for a format identifier. The mapping is a
// total function of the identifier: unknown names fail with
// *model.UnsupportedFormatError, never a fallback guess.
func ForFormat(format string, opts Options) (Adapter, error) {
	switch format {
	case FormatPlainText:
		return NewPlainText(), nil
	case FormatTabular:
		return NewTabular(opts.Columns, opts.Comma), nil
	case FormatNuance:
		return NewNuance(), nil
	case FormatGoogle:
		return NewGoogle(), nil
	case FormatSpraak:
		return NewSpraak(), nil
	default:
		return nil, &model.UnsupportedFormatError{Format: format}
	}
}

// Formats lists the supported format identifiers.
func Formats() []string {
	return []string{FormatPlainText, FormatTabular, FormatNuance, FormatGoogle, FormatSpraak}
}
