// ABOUTME: Segment is the unit of retrieval, a bounded span of course text
// ABOUTME: Carries page provenance, topic category, keywords and its embedding
package models

// Segment represents one retrievable fragment of the knowledge document.
// IDs are assigned by running position in the final sequence and are stable
// for a given build. Optional fields are pointers so the persisted JSON
// carries explicit nulls rather than silently defaulting.
type Segment struct {
	ID            int       `json:"id"`
	Text          string    `json:"text"`
	SourceFile    string    `json:"source_file"`
	PageNumber    *int      `json:"page_number"`
	ChunkIndex    int       `json:"chunk_index"`
	TopicCategory *string   `json:"topic_category"`
	Keywords      []string  `json:"relevance_keywords"`
	Embedding     []float64 `json:"embedding"`
}

// HasEmbedding reports whether the segment has been through the embedding phase.
func (s *Segment) HasEmbedding() bool {
	return len(s.Embedding) > 0
}

// HasKeyword reports whether kw is in the segment's keyword set.
func (s *Segment) HasKeyword(kw string) bool {
	for _, k := range s.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Page returns the page number or 0 when the segment has no page provenance.
func (s *Segment) Page() int {
	if s.PageNumber == nil {
		return 0
	}
	return *s.PageNumber
}

// Category returns the topic category or "" when uncategorized.
func (s *Segment) Category() string {
	if s.TopicCategory == nil {
		return ""
	}
	return *s.TopicCategory
}

// SearchResult pairs a segment id with its similarity score.
type SearchResult struct {
	SegmentID int     `json:"segment_id"`
	Score     float64 `json:"score"`
}
