package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/callsift/callsift/internal/model"
)

// Renderer writes classification reports.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a human-readable summary to stdout, categories sorted
// by descending score (name breaks ties).
func (r *Renderer) RenderSummary(report *model.Report) {
	if report.Source != "" {
		fmt.Printf("Source:      %s\n", report.Source)
	}
	fmt.Printf("Format:      %s\n", report.Format)
	fmt.Printf("Correction:  %s\n", report.Correction)
	fmt.Printf("Tokens:      %d (%d unique)\n", report.TokenCount, report.UniqueTerms)
	fmt.Println()

	cats := make([]string, 0, len(report.Scores))
	for cat := range report.Scores {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		si, sj := report.Scores[cats[i]], report.Scores[cats[j]]
		if si != sj {
			return si > sj
		}
		return cats[i] < cats[j]
	})

	for _, cat := range cats {
		name := cat
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Printf("  %-24s %12.4f\n", name, report.Scores[cat])
	}
}
