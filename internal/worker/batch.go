package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/pipeline"
)

// Classifier classifies a single transcript file.
type Classifier interface {
	ClassifyFile(ctx context.Context, path string) (*pipeline.ClassifyResult, error)
}

// ClassifyJob classifies one transcript path.
type ClassifyJob struct {
	Path       string
	Classifier Classifier
	Limiter    *Limiter
}

// Execute runs the classification, honoring the rate limiter.
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx); err != nil {
		return &ClassifyResult{Path: j.Path, Error: err}
	}
	result, err := j.Classifier.ClassifyFile(ctx, j.Path)
	if err != nil {
		return &ClassifyResult{Path: j.Path, Error: err}
	}
	return &ClassifyResult{Path: j.Path, Report: result.Report}
}

// ClassifyResult is the outcome of one classify job.
type ClassifyResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *ClassifyResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies many transcript files concurrently.
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(classifier Classifier, concurrency int, filesPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
		limiter:     NewLimiter(filesPerSecond, burst),
	}
}

// ProcessPaths classifies the given transcript paths concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ClassifyResult {
	if len(paths) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so result draining below keeps the
	// workers from backing up on large batches.
	go func() {
		for _, path := range paths {
			pool.Submit(&ClassifyJob{
				Path:       path,
				Classifier: b.classifier,
				Limiter:    b.limiter,
			})
		}
		pool.Close()
	}()

	results := pool.Wait()
	out := make([]*ClassifyResult, len(results))
	for i, result := range results {
		out[i] = result.(*ClassifyResult)
	}
	return out
}

// ProcessFile reads transcript paths from a list file and classifies them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*ClassifyResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads transcript paths from a file, one per line. Blank
// lines and '#' comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
