// ABOUTME: Similarity search over the loaded index snapshot
// ABOUTME: Exhaustive dot-product scan; keyword posting-list path as cheap fallback
package search

import (
	"fmt"
	"sort"

	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/models"
)

// Searcher serves queries against one immutable index snapshot. It holds no
// mutable state, so one Searcher is safe for concurrent queries.
type Searcher struct {
	artifacts *index.Artifacts
}

// New creates a Searcher over a loaded artifact set.
func New(a *index.Artifacts) *Searcher {
	return &Searcher{artifacts: a}
}

// Segment returns the indexed segment with the given id.
func (s *Searcher) Segment(id int) *models.Segment {
	return &s.artifacts.Segments[id]
}

// Count returns the number of indexed segments.
func (s *Searcher) Count() int {
	return len(s.artifacts.Segments)
}

// Search ranks every indexed segment by dot product against the query
// vector, which equals cosine similarity because both sides are
// unit-normalized. Results come back in non-increasing score order with ties
// broken by ascending segment id.
func (s *Searcher) Search(queryVector []float64, topK int) ([]models.SearchResult, error) {
	if len(queryVector) != s.artifacts.Config.EmbeddingDim {
		return nil, fmt.Errorf("query vector dimension %d, index dimension %d", len(queryVector), s.artifacts.Config.EmbeddingDim)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	results := make([]models.SearchResult, len(s.artifacts.Segments))
	for i := range s.artifacts.Segments {
		results[i] = models.SearchResult{
			SegmentID: s.artifacts.Segments[i].ID,
			Score:     dot(queryVector, s.artifacts.Segments[i].Embedding),
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].SegmentID < results[j].SegmentID
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// SearchKeywords unions the posting lists for every keyword present in the
// index and returns the candidate segment ids in ascending order, unranked.
// Used as a pre-filter or as the fallback when no embedding call is
// available.
func (s *Searcher) SearchKeywords(keywords []string) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, kw := range keywords {
		for _, id := range s.artifacts.Postings[kw] {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
