// ABOUTME: CLI command to query the knowledge index
// ABOUTME: Semantic search when OpenAI is configured, keyword fallback otherwise
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ramadvisor/cfarag/internal/config"
	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/search"
	"github.com/ramadvisor/cfarag/internal/translate"
)

var (
	searchLimit     int
	searchThreshold float64
	searchProfile   string
	searchKeywords  bool
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the knowledge index",
		Long: `Search the knowledge index with a French or English query.

French queries are translated to English retrieval terms before
embedding. Without an OpenAI key (or with --keywords) the search
falls back to the keyword posting lists.

Examples:
  cfarag search "comment diversifier mon portefeuille"
  cfarag search --limit 10 --profile conservative "retirement planning"
  cfarag search --keywords "allocation risque"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", 0.3, "Minimum combined score to keep a result")
	cmd.Flags().StringVar(&searchProfile, "profile", "", "Client risk profile: conservative, balanced, aggressive")
	cmd.Flags().BoolVar(&searchKeywords, "keywords", false, "Keyword-only search, no embedding call")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	artifacts, err := index.Load(cfg.DataDir, cfg.ArtifactPrefix)
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}
	searcher := search.New(artifacts)

	query := args[0]
	translated := translate.Translate(query)
	if verbose && translated != query {
		fmt.Fprintf(cmd.OutOrStdout(), "Translated query: %s\n", translated)
	}

	if searchKeywords || cfg.OpenAIKey == "" {
		return runKeywordSearch(cmd, searcher, query)
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

	vectors, err := embedder.EmbedBatch(cmd.Context(), []string{translated})
	if err != nil {
		return fmt.Errorf("embedding query: %w", err)
	}

	opts := search.DefaultOptions()
	opts.TopK = searchLimit
	opts.Threshold = searchThreshold
	opts.RiskProfile = searchProfile

	hits, err := searcher.SearchEnhanced(vectors[0], translated, opts)
	if err != nil {
		return fmt.Errorf("searching index: %w", err)
	}

	if len(hits) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No passages found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tCATEGORY\tREASON\tPASSAGE\n")
	fmt.Fprintf(w, "-----\t--------\t------\t-------\n")
	for _, hit := range hits {
		category := hit.Segment.Category()
		if category == "" {
			category = "(none)"
		}
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n",
			hit.Score,
			truncate(category, 22),
			truncate(hit.Reason, 40),
			truncate(hit.Segment.Text, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(hits))
	}
	return nil
}

// runKeywordSearch serves the posting-list fallback path.
func runKeywordSearch(cmd *cobra.Command, searcher *search.Searcher, query string) error {
	keywords := translate.ExpandKeywords(query)
	ids := searcher.SearchKeywords(keywords)
	if len(ids) > searchLimit {
		ids = ids[:searchLimit]
	}

	if len(ids) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No passages found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		segments := make([]any, 0, len(ids))
		for _, id := range ids {
			segments = append(segments, searcher.Segment(id))
		}
		jsonData, err := json.MarshalIndent(segments, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tCATEGORY\tPASSAGE\n")
	fmt.Fprintf(w, "--\t--------\t-------\n")
	for _, id := range ids {
		seg := searcher.Segment(id)
		category := seg.Category()
		if category == "" {
			category = "(none)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", seg.ID, truncate(category, 22), truncate(seg.Text, 70))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s) by keyword\n", len(ids))
	}
	return nil
}
