// ABOUTME: CLI command to build the knowledge index from extractor output
// ABOUTME: Runs the full pipeline: ingest, chunk, embed, write artifacts
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ramadvisor/cfarag/internal/config"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/pipeline"
)

var (
	buildSource       string
	buildEnrichFrench bool
	buildWindowChunks bool
)

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the knowledge index",
		Long: `Build the knowledge index from extracted course text.

Reads the extractor output (a JSON page array or a plain text file),
chunks it into segments, generates OpenAI embeddings and writes the
four index artifacts. The swap is all-or-nothing: a failed build
leaves a previous index untouched.

Examples:
  cfarag build --source data/course_pages.json
  cfarag build --source course.txt --enrich-french`,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&buildSource, "source", "data/course_pages.json", "Extractor output file (.json page array or plain text)")
	cmd.Flags().BoolVar(&buildEnrichFrench, "enrich-french", false, "Add French keyword equivalents to the posting list")
	cmd.Flags().BoolVar(&buildWindowChunks, "window-chunks", false, "Use fixed character windows instead of sentence-aware chunking")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required to build the index")
	}

	embedder, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		Model:      cfg.EmbeddingModel,
		Dimension:  cfg.EmbeddingDim,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("initializing embedding client: %w", err)
	}

	started := time.Now()
	result, err := pipeline.NewGenerator(cfg, embedder).Build(cmd.Context(), pipeline.BuildOptions{
		SourcePath:   buildSource,
		WindowChunks: buildWindowChunks,
		EnrichFrench: buildEnrichFrench,
	})
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d segments from %d pages in %s\n",
			result.Segments, result.Pages, time.Since(started).Round(time.Millisecond))
		fmt.Fprintf(cmd.OutOrStdout(), "Build %s (%d-dim embeddings) written to %s\n",
			result.BuildID, result.Dimension, cfg.DataDir)
	}
	return nil
}
