package cli

import (
	"fmt"
	"os"

	"github.com/callsift/callsift/internal/relevance"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	wordlistDir   string
	useCats       []string
	skipCats      []string
	wordlistComma string
)

// wordlistCmd represents the wordlist command
var wordlistCmd = &cobra.Command{
	Use:   "wordlist <table-file>",
	Short: "Export per-category wordlist files from a relevance table",
	Long: `Wordlist writes one plain-text term list per category in the relevance
table, for word-cloud style UIs. Terms are lowercased, spaces become
underscores, and terms already present in a list file are not appended
again, so repeated exports are idempotent.

Example:
  callsift wordlist relevance.xlsx --wordlist-dir ./wordlists
  callsift wordlist relevance.csv --use-cats billing,retention
  callsift wordlist relevance.csv --skip-cats test`,
	Args: cobra.ExactArgs(1),
	RunE: runWordlist,
}

func init() {
	rootCmd.AddCommand(wordlistCmd)

	wordlistCmd.Flags().StringVar(&wordlistDir, "wordlist-dir", "./wordlists", "directory to place wordlist files in")
	wordlistCmd.Flags().StringSliceVar(&useCats, "use-cats", nil, "only export these categories")
	wordlistCmd.Flags().StringSliceVar(&skipCats, "skip-cats", nil, "categories to skip")
	wordlistCmd.Flags().StringVar(&wordlistComma, "table-delimiter", ",", "delimited-text table delimiter")
}

func runWordlist(cmd *cobra.Command, args []string) error {
	tableFile := args[0]

	comma := ','
	for _, r := range wordlistComma {
		comma = r
		break
	}

	table, err := relevance.Load(tableFile, comma)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	dir, opts := wordlistSettings(cmd.Flags().Changed("wordlist-dir"))

	if verbose {
		fmt.Fprintf(os.Stderr, "Table:      %s (%d rows)\n", tableFile, table.Len())
		fmt.Fprintf(os.Stderr, "Categories: %d\n", len(table.Categories()))
		fmt.Fprintf(os.Stderr, "Output dir: %s\n", dir)
		fmt.Fprintln(os.Stderr)
	}

	if err := relevance.ExportWordlists(table, dir, opts); err != nil {
		return err
	}

	fmt.Printf("✓ Exported wordlists to %s\n", dir)
	return nil
}

// wordlistSettings resolves the export directory and category filters from
// flags first, then the wordlist section of the config file.
func wordlistSettings(dirFlagSet bool) (string, relevance.ExportOptions) {
	dir := wordlistDir
	if !dirFlagSet {
		if v := viper.GetString("wordlist.dir"); v != "" {
			dir = v
		}
	}
	opts := relevance.ExportOptions{UseCats: useCats, SkipCats: skipCats}
	if len(opts.UseCats) == 0 {
		opts.UseCats = viper.GetStringSlice("wordlist.use_cats")
	}
	if len(opts.SkipCats) == 0 {
		opts.SkipCats = viper.GetStringSlice("wordlist.skip_cats")
	}
	return dir, opts
}
