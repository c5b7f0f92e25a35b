package worker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/callsift/callsift/internal/pipeline"
)

type fakeClassifier struct{}

func (fakeClassifier) ClassifyFile(ctx context.Context, path string) (*pipeline.ClassifyResult, error) {
	return &pipeline.ClassifyResult{Path: path}, nil
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "calls.txt")
	contents := `# morning batch
/data/calls/a.csv

/data/calls/b.csv
/data/calls/a.csv
`
	if err := os.WriteFile(listPath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected comments, blanks and duplicates skipped, got %v", paths)
	}
	if paths[0] != "/data/calls/a.csv" || paths[1] != "/data/calls/b.csv" {
		t.Errorf("Expected first-seen order preserved, got %v", paths)
	}
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	processor := NewBatchProcessor(fakeClassifier{}, 3, 0, 0)

	paths := []string{"a.txt", "b.txt", "c.txt", "d.txt"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}

	var got []string
	for _, result := range results {
		if result.Error != nil {
			t.Errorf("%s: expected no error, got %v", result.Path, result.Error)
		}
		got = append(got, result.Path)
	}
	sort.Strings(got)
	for i, want := range paths {
		if got[i] != want {
			t.Errorf("Expected every path classified, got %v", got)
			break
		}
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(fakeClassifier{}, 2, 0, 0)
	results := processor.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for no paths, got %d", len(results))
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(0, 5)
	if limiter != nil {
		t.Fatal("Expected a non-positive rate to disable the limiter")
	}
	// nil limiter must be safe to use
	if err := limiter.Wait(context.Background()); err != nil {
		t.Errorf("Expected nil limiter Wait to pass, got %v", err)
	}
	if !limiter.Allow() {
		t.Error("Expected nil limiter to always allow")
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if !limiter.Allow() {
		t.Error("Expected the first event within burst to be allowed")
	}
	if limiter.Allow() {
		t.Error("Expected the burst to be exhausted")
	}
}
