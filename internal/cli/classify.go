package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/callsift/callsift/internal/model"
	"github.com/callsift/callsift/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	tablePath      string
	format         string
	correction     string
	outJSON        string
	tabularPath    string
	delimiter      string
	tableDelimiter string
	colWord        string
	colStart       string
	colEnd         string
	colConf        string
	colSpeaker     string
	noCache        bool
	classifyTO     time.Duration
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <transcript-file>",
	Short: "Score one transcript against the relevance table",
	Long: `Classify ingests a single transcript file in the named format, scores
it against the relevance table and prints per-category scores.

The relevance table is a .xlsx workbook or delimited-text file with
columns word, cat and score. Correction normalizes scores across
transcripts of different lengths: duration, logduration, wordcount or
none.

Example:
  callsift classify call-0182.csv --table relevance.xlsx --format csv
  callsift classify call-0182.lat --table relevance.csv --format nuance --correction logduration
  callsift classify notes.txt --table relevance.csv --format txt --correction wordcount --json scores.json`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&tablePath, "table", "", "relevance table file (.xlsx or delimited text)")
	classifyCmd.Flags().StringVar(&format, "format", "txt", "transcript format (txt, csv, nuance, google, spraak)")
	classifyCmd.Flags().StringVar(&correction, "correction", "duration", "correction strategy (duration, logduration, wordcount, none)")
	classifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	classifyCmd.Flags().StringVar(&tabularPath, "tabular-path", "", "tabular export to read instead of the transcript path (csv format only)")
	classifyCmd.Flags().StringVar(&delimiter, "delimiter", ",", "tabular transcript delimiter")
	classifyCmd.Flags().StringVar(&tableDelimiter, "table-delimiter", ",", "delimited-text table delimiter")
	classifyCmd.Flags().StringVar(&colWord, "col-word", "", "tabular column holding the word (default: word)")
	classifyCmd.Flags().StringVar(&colStart, "col-t0", "", "tabular column holding the start time (default: t0)")
	classifyCmd.Flags().StringVar(&colEnd, "col-tx", "", "tabular column holding the end time (default: tx)")
	classifyCmd.Flags().StringVar(&colConf, "col-conf", "", "tabular column holding the confidence (default: conf)")
	classifyCmd.Flags().StringVar(&colSpeaker, "col-spk", "", "tabular column holding the speaker (default: spk)")
	classifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable table cache (force fresh load)")
	classifyCmd.Flags().DurationVar(&classifyTO, "timeout", time.Minute, "overall classify timeout")

	_ = viper.BindPFlag("table.path", classifyCmd.Flags().Lookup("table"))
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), classifyTO)
	defer cancel()

	cfg, err := classifyConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Classifying: %s\n", path)
		fmt.Fprintf(os.Stderr, "Table:       %s\n", cfg.Table.Path)
		fmt.Fprintf(os.Stderr, "Format:      %s\n", cfg.Ingest.Format)
		fmt.Fprintf(os.Stderr, "Correction:  %s\n", cfg.Scoring.Correction)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	result, err := p.ClassifyFile(ctx, path)
	if err != nil {
		return err
	}

	return p.RenderReport(result.Report, cfg.Output.JSON, verbose)
}

// classifyConfig builds the effective config from defaults, config file and
// flags.
func classifyConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("table.path"); v != "" {
		cfg.Table.Path = v
	}
	if tablePath != "" {
		cfg.Table.Path = tablePath
	}
	if cfg.Table.Path == "" {
		return nil, fmt.Errorf("no relevance table: pass --table or set table.path in the config")
	}

	cfg.Table.Delimiter = tableDelimiter
	cfg.Ingest.Format = format
	cfg.Ingest.Delimiter = delimiter
	cfg.Ingest.Columns = model.ColumnMapping{
		Word:       colWord,
		Start:      colStart,
		End:        colEnd,
		Confidence: colConf,
		Speaker:    colSpeaker,
	}.WithDefaults()
	cfg.Ingest.TabularPath = tabularPath
	cfg.Scoring.Correction = correction
	cfg.Cache.Enabled = !noCache
	cfg.Output.JSON = outJSON
	if cfg.Output.JSON == "" {
		cfg.Output.JSON = viper.GetString("output.json")
	}
	cfg.Output.Verbose = verbose

	return cfg, nil
}
