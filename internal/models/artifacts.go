// ABOUTME: Persisted artifact records for the static knowledge index
// ABOUTME: Defines the embedding config, posting list and stats schemas
package models

import "fmt"

// IndexConfig describes one build of the index. It is written alongside the
// segment sequence and validated on load; a config whose counts or dimension
// disagree with the segments is treated as a corrupt artifact set.
type IndexConfig struct {
	ModelName    string   `json:"model_name"`
	EmbeddingDim int      `json:"embedding_dim"`
	TotalChunks  int      `json:"total_chunks"`
	SourceFile   string   `json:"source_file"`
	GeneratedAt  string   `json:"generated_at"`
	BuildID      string   `json:"build_id"`
	Categories   []string `json:"categories"`
}

// Validate checks the required fields are present and coherent.
func (c *IndexConfig) Validate() error {
	if c.ModelName == "" {
		return fmt.Errorf("config missing model_name")
	}
	if c.EmbeddingDim <= 0 {
		return fmt.Errorf("config embedding_dim must be positive, got %d", c.EmbeddingDim)
	}
	if c.TotalChunks < 0 {
		return fmt.Errorf("config total_chunks must be non-negative, got %d", c.TotalChunks)
	}
	if c.SourceFile == "" {
		return fmt.Errorf("config missing source_file")
	}
	return nil
}

// PostingList maps a keyword to the ordered set of segment ids containing it.
// It is derived purely from segment keywords and must be regenerable from the
// segment sequence.
type PostingList map[string][]int

// IndexStats is the operator-facing summary artifact. It is derived, never
// consumed by search.
type IndexStats struct {
	TotalChunks            int            `json:"total_chunks"`
	CategoriesDistribution map[string]int `json:"categories_distribution"`
	AverageChunkLength     float64        `json:"average_chunk_length"`
	TotalKeywords          int            `json:"total_keywords"`
}
