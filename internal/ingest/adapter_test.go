package ingest

import (
	"errors"
	"testing"

	"github.com/callsift/callsift/internal/model"
)

func TestForFormat_AllFormats(t *testing.T) {
	for _, format := range Formats() {
		adapter, err := ForFormat(format, Options{})
		if err != nil {
			t.Errorf("Format %q: expected an adapter, got error %v", format, err)
			continue
		}
		if adapter.Name() != format {
			t.Errorf("Format %q: adapter names itself %q", format, adapter.Name())
		}
	}
}

func TestForFormat_Unknown(t *testing.T) {
	_, err := ForFormat("unknownformat", Options{})
	var unsupported *model.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Format != "unknownformat" {
		t.Errorf("Expected the error to carry the requested format, got %q", unsupported.Format)
	}
}

func TestSourceMode_Valid(t *testing.T) {
	for _, mode := range []SourceMode{SourceExplicitText, SourceFileContents, SourcePreloadedText} {
		if !mode.Valid() {
			t.Errorf("Expected mode %q to be valid", mode)
		}
	}
	if SourceMode("guess").Valid() {
		t.Error("Expected an unknown mode to be invalid")
	}
}
