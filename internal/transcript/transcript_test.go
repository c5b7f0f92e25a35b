package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/callsift/callsift/internal/ingest"
	"github.com/callsift/callsift/internal/model"
)

func TestTranscript_IngestFromText(t *testing.T) {
	tr := FromText("loan loan refund")

	err := tr.Ingest(ingest.FormatPlainText, ingest.SourcePreloadedText, "", ingest.Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tr.TokenCount() != 3 {
		t.Errorf("Expected 3 tokens, got %d", tr.TokenCount())
	}
	if tr.UniqueTermCount() != 2 {
		t.Errorf("Expected 2 unique terms, got %d", tr.UniqueTermCount())
	}
}

func TestTranscript_UniqueTermCount_CaseSensitive(t *testing.T) {
	tr := FromTokens([]model.Token{
		model.NewToken("Loan"),
		model.NewToken("loan"),
		model.NewToken("loan"),
	})

	if got := tr.UniqueTermCount(); got != 2 {
		t.Errorf("Expected 2 case-sensitive unique terms, got %d", got)
	}
}

func TestTranscript_ReingestReplaces(t *testing.T) {
	tr := FromText("een twee drie")
	if err := tr.Ingest(ingest.FormatPlainText, ingest.SourcePreloadedText, "", ingest.Options{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tr.TokenCount() != 3 {
		t.Fatalf("Expected 3 tokens, got %d", tr.TokenCount())
	}

	// Explicit text re-ingestion must fully replace, never append
	if err := tr.Ingest(ingest.FormatPlainText, ingest.SourceExplicitText, "vier", ingest.Options{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tr.TokenCount() != 1 {
		t.Errorf("Expected re-ingestion to replace tokens, got %d", tr.TokenCount())
	}
	if tr.UniqueTermCount() != 1 {
		t.Errorf("Expected unique count to follow the current tokens, got %d", tr.UniqueTermCount())
	}
}

func TestTranscript_IngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "call.txt")
	if err := os.WriteFile(path, []byte("hallo met de bank"), 0644); err != nil {
		t.Fatal(err)
	}

	tr := New(path)
	if err := tr.IngestFile(ingest.FormatPlainText, ingest.Options{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tr.TokenCount() != 4 {
		t.Errorf("Expected 4 tokens, got %d", tr.TokenCount())
	}

	// The file contents stay preloaded for later re-parses
	if err := tr.Ingest(ingest.FormatPlainText, ingest.SourcePreloadedText, "", ingest.Options{}); err != nil {
		t.Fatalf("Expected preloaded re-ingest to work, got %v", err)
	}
}

func TestTranscript_IngestFileAt(t *testing.T) {
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "call-words.csv")
	export := "word,t0,tx,conf,spk\n" +
		"hallo,0.0,0.4,0.9,1\n" +
		"bank,0.4,0.9,0.8,1\n"
	if err := os.WriteFile(exportPath, []byte(export), 0644); err != nil {
		t.Fatal(err)
	}

	// The transcript's own location is a recording, not the export; it must
	// never be read.
	tr := New(filepath.Join(dir, "call.wav"))
	if err := tr.IngestFileAt(ingest.FormatTabular, exportPath, ingest.Options{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tr.TokenCount() != 2 {
		t.Errorf("Expected 2 tokens, got %d", tr.TokenCount())
	}
	if loc, err := tr.Location(); err != nil || loc != filepath.Join(dir, "call.wav") {
		t.Errorf("Expected the location to stay the recording path, got %q (%v)", loc, err)
	}

	d, err := tr.Duration()
	if err != nil {
		t.Fatalf("Expected timing from the export, got %v", err)
	}
	if d != 0.9 {
		t.Errorf("Expected duration 0.9, got %v", d)
	}
}

func TestTranscript_NoLocation(t *testing.T) {
	tr := FromText("alleen tekst")

	err := tr.Ingest(ingest.FormatPlainText, ingest.SourceFileContents, "", ingest.Options{})
	var noLoc *model.NoLocationError
	if !errors.As(err, &noLoc) {
		t.Fatalf("Expected NoLocationError, got %v", err)
	}

	if _, err := tr.Location(); !errors.As(err, &noLoc) {
		t.Errorf("Expected Location to fail for a text-backed transcript, got %v", err)
	}
}

func TestTranscript_UnknownFormat(t *testing.T) {
	tr := FromText("x")
	err := tr.Ingest("unknownformat", ingest.SourcePreloadedText, "", ingest.Options{})
	var unsupported *model.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedFormatError, got %v", err)
	}
}

func TestTranscript_Duration(t *testing.T) {
	tr := FromTokens([]model.Token{
		model.TimedToken("goede", 0.5, 1.0, 0.9),
		model.TimedToken("morgen", 1.0, 1.8, 0.8),
		model.TimedToken("mevrouw", 1.8, 3.0, 0.7),
	})

	d, err := tr.Duration()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d != 2.5 {
		t.Errorf("Expected duration 2.5, got %v", d)
	}
}

func TestTranscript_Duration_NoTiming(t *testing.T) {
	tr := FromTokens([]model.Token{model.NewToken("loan")})

	_, err := tr.Duration()
	var missing *model.MissingTimingError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingTimingError, got %v", err)
	}
}

func TestTranscript_Scores(t *testing.T) {
	tr := FromTokens(nil)
	if tr.LastScores() != nil {
		t.Error("Expected no scores before classification")
	}
	tr.SetScores(model.CategoryScore{"billing": 1.5})
	if tr.LastScores()["billing"] != 1.5 {
		t.Error("Expected recorded scores to round-trip")
	}
}
