// ABOUTME: Artifact file naming and derived posting list / stats construction
// ABOUTME: Postings and stats are pure functions of the segment sequence
package index

import (
	"path/filepath"

	"github.com/ramadvisor/cfarag/internal/models"
)

// Artifact file suffixes; full names are <prefix> + suffix.
const (
	EmbeddingsSuffix  = "_knowledge_embeddings.json"
	ConfigSuffix      = "_embedding_config.json"
	SearchIndexSuffix = "_search_index.json"
	StatsSuffix       = "_stats.json"
)

// uncategorizedLabel buckets segments with no topic category in the stats.
const uncategorizedLabel = "Uncategorized"

// ArtifactPaths returns the four artifact paths for a prefix inside dir, in
// write order.
func ArtifactPaths(dir, prefix string) []string {
	return []string{
		filepath.Join(dir, prefix+EmbeddingsSuffix),
		filepath.Join(dir, prefix+ConfigSuffix),
		filepath.Join(dir, prefix+SearchIndexSuffix),
		filepath.Join(dir, prefix+StatsSuffix),
	}
}

// BuildPostings derives the keyword posting list from the segment sequence.
// Ids appear in ascending order because segments are walked in order.
func BuildPostings(segments []models.Segment) models.PostingList {
	postings := make(models.PostingList)
	for _, seg := range segments {
		for _, kw := range seg.Keywords {
			postings[kw] = append(postings[kw], seg.ID)
		}
	}
	return postings
}

// BuildStats derives the operator-facing summary from the segment sequence.
func BuildStats(segments []models.Segment, postings models.PostingList) models.IndexStats {
	stats := models.IndexStats{
		TotalChunks:            len(segments),
		CategoriesDistribution: make(map[string]int),
		TotalKeywords:          len(postings),
	}

	totalLen := 0
	for _, seg := range segments {
		totalLen += len(seg.Text)
		cat := seg.Category()
		if cat == "" {
			cat = uncategorizedLabel
		}
		stats.CategoriesDistribution[cat]++
	}
	if len(segments) > 0 {
		stats.AverageChunkLength = float64(totalLen) / float64(len(segments))
	}
	return stats
}
