// ABOUTME: Boosted retrieval path combining cosine score with lexical signals
// ABOUTME: Keyword, direct-match, category and risk-profile boosts with a floor threshold
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ramadvisor/cfarag/internal/models"
)

// Risk profiles recognized by the boosted scorer.
const (
	ProfileConservative = "conservative"
	ProfileBalanced     = "balanced"
	ProfileAggressive   = "aggressive"
)

// Options tune the boosted retrieval path.
type Options struct {
	TopK           int
	Threshold      float64 // minimum combined score to keep a result
	KeywordBoost   float64 // per matched segment keyword found in the query
	TextMatchBoost float64 // when the segment text contains the whole query
	RiskProfile    string  // optional client risk profile
}

// DefaultOptions returns the thresholds used by the advice generator.
func DefaultOptions() Options {
	return Options{
		TopK:           5,
		Threshold:      0.3,
		KeywordBoost:   0.1,
		TextMatchBoost: 0.15,
	}
}

// ScoredSegment is one boosted retrieval hit with a human-readable
// explanation of why it ranked.
type ScoredSegment struct {
	Segment *models.Segment
	Score   float64
	Reason  string
}

// profileAffinity maps each risk profile to text markers that earn a boost.
var profileAffinity = map[string][]string{
	ProfileConservative: {"conservative", "prudent"},
	ProfileBalanced:     {"balanced", "moderate"},
	ProfileAggressive:   {"aggressive", "growth"},
}

// SearchEnhanced ranks segments by cosine similarity plus lexical boosts:
// query keywords appearing in the segment's keyword set, the segment text
// containing the whole query, category affinity with query terms, and risk
// profile affinity with the segment text. Results below the threshold are
// dropped.
func (s *Searcher) SearchEnhanced(queryVector []float64, query string, opts Options) ([]ScoredSegment, error) {
	if len(queryVector) != s.artifacts.Config.EmbeddingDim {
		return nil, fmt.Errorf("query vector dimension %d, index dimension %d", len(queryVector), s.artifacts.Config.EmbeddingDim)
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultOptions().TopK
	}

	queryLower := strings.ToLower(query)

	var hits []ScoredSegment
	for i := range s.artifacts.Segments {
		seg := &s.artifacts.Segments[i]

		score := dot(queryVector, seg.Embedding)

		matches := 0
		for _, kw := range seg.Keywords {
			if strings.Contains(queryLower, strings.ToLower(kw)) {
				matches++
			}
		}
		score += float64(matches) * opts.KeywordBoost

		textLower := strings.ToLower(seg.Text)
		if queryLower != "" && strings.Contains(textLower, queryLower) {
			score += opts.TextMatchBoost
		}

		score += categoryBoost(seg.Category(), queryLower, opts.RiskProfile)
		score += profileBoost(textLower, opts.RiskProfile)

		if score >= opts.Threshold {
			hits = append(hits, ScoredSegment{
				Segment: seg,
				Score:   score,
				Reason:  relevanceReason(seg, score, matches),
			})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Segment.ID < hits[j].Segment.ID
	})

	if len(hits) > opts.TopK {
		hits = hits[:opts.TopK]
	}
	return hits, nil
}

func categoryBoost(category, queryLower, profile string) float64 {
	switch category {
	case "Asset Allocation":
		if strings.Contains(queryLower, "allocation") || strings.Contains(queryLower, "portfolio") {
			return 0.2
		}
	case "Risk Management":
		if strings.Contains(queryLower, "risk") || profile == ProfileConservative {
			return 0.15
		}
	case "Investment Strategy":
		if strings.Contains(queryLower, "strategy") || strings.Contains(queryLower, "investment") {
			return 0.1
		}
	}
	return 0
}

func profileBoost(textLower, profile string) float64 {
	for _, marker := range profileAffinity[profile] {
		if strings.Contains(textLower, marker) {
			return 0.1
		}
	}
	return 0
}

func relevanceReason(seg *models.Segment, score float64, keywordMatches int) string {
	var reasons []string

	switch {
	case score > 0.7:
		reasons = append(reasons, "strong semantic match")
	case score > 0.5:
		reasons = append(reasons, "good semantic match")
	case score > 0.3:
		reasons = append(reasons, "moderate match")
	}

	switch {
	case keywordMatches > 2:
		reasons = append(reasons, fmt.Sprintf("%d matching keywords", keywordMatches))
	case keywordMatches > 0:
		reasons = append(reasons, fmt.Sprintf("%d matching keyword", keywordMatches))
	}

	if cat := seg.Category(); cat != "" {
		reasons = append(reasons, "category: "+cat)
	}

	if len(reasons) == 0 {
		return "general match"
	}
	return strings.Join(reasons, ", ")
}
