// ABOUTME: CLI command to show the loaded index composition
// ABOUTME: Reads the stats and config artifacts, no embedding calls
package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ramadvisor/cfarag/internal/config"
	"github.com/ramadvisor/cfarag/internal/index"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge index statistics",
		Long: `Show the loaded index composition: segment count, category
distribution, keyword vocabulary size and build metadata.

Examples:
  cfarag stats
  cfarag stats --format json`,
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	artifacts, err := index.Load(cfg.DataDir, cfg.ArtifactPrefix)
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]any{
			"stats":  artifacts.Stats,
			"config": artifacts.Config,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:     %s\n", artifacts.Config.SourceFile)
	fmt.Fprintf(out, "Model:      %s (%d dimensions)\n", artifacts.Config.ModelName, artifacts.Config.EmbeddingDim)
	fmt.Fprintf(out, "Built:      %s (build %s)\n", artifacts.Config.GeneratedAt, artifacts.Config.BuildID)
	fmt.Fprintf(out, "Segments:   %d (avg %.0f chars)\n", artifacts.Stats.TotalChunks, artifacts.Stats.AverageChunkLength)
	fmt.Fprintf(out, "Keywords:   %d distinct\n", artifacts.Stats.TotalKeywords)
	fmt.Fprintln(out)

	categories := make([]string, 0, len(artifacts.Stats.CategoriesDistribution))
	for name := range artifacts.Stats.CategoriesDistribution {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\tSEGMENTS\n")
	fmt.Fprintf(w, "--------\t--------\n")
	for _, name := range categories {
		fmt.Fprintf(w, "%s\t%d\n", name, artifacts.Stats.CategoriesDistribution[name])
	}
	w.Flush()

	return nil
}
