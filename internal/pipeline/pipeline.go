// Package pipeline wires ingestion, table loading and scoring into the
// classify flow the CLI drives.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/callsift/callsift/internal/cache"
	"github.com/callsift/callsift/internal/ingest"
	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/relevance"
	"github.com/callsift/callsift/internal/score"
	"github.com/callsift/callsift/internal/transcript"
)

// Pipeline orchestrates the complete classify process.
type Pipeline struct {
	loader   *relevance.Loader
	scorer   *score.Scorer
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}
	return &Pipeline{
		loader:   relevance.NewLoader(c, cfg.Cache.TTL, delimiterRune(cfg.Table.Delimiter)),
		scorer:   score.NewScorer(),
		renderer: NewRenderer(),
		config:   cfg,
	}
}

// ClassifyResult pairs a report with the transcript path it came from.
type ClassifyResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// ClassifyFile ingests one transcript file and scores it against the
// configured relevance table.
func (p *Pipeline) ClassifyFile(ctx context.Context, path string) (*ClassifyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tr := transcript.New(path)
	opts := ingest.Options{
		Columns: p.config.Ingest.Columns,
		Comma:   delimiterRune(p.config.Ingest.Delimiter),
	}
	// Some recognizer setups write the tabular export next to, not at, the
	// recording path; a configured override reads that file instead.
	var err error
	if p.config.Ingest.TabularPath != "" {
		err = tr.IngestFileAt(p.config.Ingest.Format, p.config.Ingest.TabularPath, opts)
	} else {
		err = tr.IngestFile(p.config.Ingest.Format, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	report, err := p.classify(ctx, tr, path)
	if err != nil {
		return nil, err
	}
	return &ClassifyResult{Path: path, Report: report}, nil
}

// ClassifyText scores raw transcript text with the configured format.
func (p *Pipeline) ClassifyText(ctx context.Context, text string) (*ClassifyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tr := transcript.FromText(text)
	opts := ingest.Options{
		Columns: p.config.Ingest.Columns,
		Comma:   delimiterRune(p.config.Ingest.Delimiter),
	}
	if err := tr.Ingest(p.config.Ingest.Format, ingest.SourcePreloadedText, "", opts); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	report, err := p.classify(ctx, tr, "")
	if err != nil {
		return nil, err
	}
	return &ClassifyResult{Report: report}, nil
}

func (p *Pipeline) classify(ctx context.Context, tr *transcript.Transcript, source string) (*model.Report, error) {
	table, err := p.loader.Load(p.config.Table.Path)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}

	corr, err := score.ForName(p.config.Scoring.Correction)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores, err := p.scorer.Score(tr, table, corr)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	tr.SetScores(scores)

	return &model.Report{
		Source:      source,
		Format:      p.config.Ingest.Format,
		Correction:  corr.Name(),
		TokenCount:  tr.TokenCount(),
		UniqueTerms: tr.UniqueTermCount(),
		ScoredAt:    time.Now().UTC(),
		Scores:      scores,
	}, nil
}

// RenderReport writes the report to the configured outputs and prints the
// stdout summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	p.renderer.RenderSummary(report)
	return nil
}

// delimiterRune converts a one-character config string to a rune, defaulting
// to comma.
func delimiterRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}
