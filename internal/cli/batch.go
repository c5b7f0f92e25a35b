package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/callsift/callsift/internal/pipeline"
	"github.com/callsift/callsift/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency    int
	outputDir      string
	batchTimeout   time.Duration
	filesPerSecond float64
	burstSize      int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Classify many transcripts from a list file in parallel",
	Long: `Batch processes many transcripts concurrently:
- Read transcript paths from the list file (one per line)
- Classify them in parallel with a configurable worker count
- The relevance table is loaded once and shared read-only
- Write one JSON report per transcript

Example:
  callsift batch calls.txt --table relevance.xlsx --format nuance
  callsift batch calls.txt --table relevance.csv --format csv --concurrency 10 --output-dir ./reports
  callsift batch calls.txt --table relevance.csv --files-per-second 50`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./callsift-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&filesPerSecond, "files-per-second", 0, "throttle transcript ingestion (0 = unthrottled)")
	batchCmd.Flags().IntVar(&burstSize, "burst", 5, "rate limiter burst size")

	// Shared classify flags
	batchCmd.Flags().StringVar(&tablePath, "table", "", "relevance table file (.xlsx or delimited text)")
	batchCmd.Flags().StringVar(&format, "format", "txt", "transcript format (txt, csv, nuance, google, spraak)")
	batchCmd.Flags().StringVar(&correction, "correction", "duration", "correction strategy (duration, logduration, wordcount, none)")
	batchCmd.Flags().StringVar(&delimiter, "delimiter", ",", "tabular transcript delimiter")
	batchCmd.Flags().StringVar(&tableDelimiter, "table-delimiter", ",", "delimited-text table delimiter")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable table cache (force fresh load)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := classifyConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimit.FilesPerSecond = filesPerSecond
	cfg.RateLimit.BurstSize = burstSize

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  callsift Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  List file:    %s\n", listFile)
	fmt.Fprintf(os.Stderr, "  Table:        %s\n", cfg.Table.Path)
	fmt.Fprintf(os.Stderr, "  Format:       %s\n", cfg.Ingest.Format)
	fmt.Fprintf(os.Stderr, "  Correction:   %s\n", cfg.Scoring.Correction)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency, filesPerSecond, burstSize)

	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++
		jsonPath := filepath.Join(outputDir, reportFilename(result.Path))
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (top: %s)\n", result.Path, result.Report.TopCategory())
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d transcripts\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// reportFilename derives a report file name from a transcript path.
func reportFilename(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if len(base) > 100 {
		base = base[:100]
	}
	return base + ".json"
}
