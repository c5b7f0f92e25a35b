package model

import "fmt"

// FormatError reports malformed input for a named ingestion format.
type FormatError struct {
	Format string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Reason)
}

// MissingColumnError reports that the configured word column is absent from a
// tabular transcript source.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("tabular source is missing column %q", e.Column)
}

// SchemaError reports a required column missing from a relevance table file.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("relevance table is missing required column %q", e.Column)
}

// UnsupportedFormatError reports a request for an unknown format identifier.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported transcript format %q", e.Format)
}

// MissingTimingError reports that a correction strategy needs token timing the
// transcript does not carry.
type MissingTimingError struct {
	Strategy string
}

func (e *MissingTimingError) Error() string {
	if e.Strategy == "" {
		return "transcript has no token timing"
	}
	return fmt.Sprintf("correction %q needs token timing the transcript does not have", e.Strategy)
}

// InvalidDurationError reports a transcript duration on which the correction
// strategy is undefined.
type InvalidDurationError struct {
	Strategy string
	Duration float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("correction %q is undefined for duration %.3fs", e.Strategy, e.Duration)
}

// NoLocationError reports a file-based operation invoked on a transcript that
// was built from raw text and has no source location.
type NoLocationError struct {
	Op string
}

func (e *NoLocationError) Error() string {
	return fmt.Sprintf("%s: transcript has no source location", e.Op)
}
