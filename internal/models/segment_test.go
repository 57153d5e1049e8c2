// ABOUTME: Tests for the Segment record and its helpers
// ABOUTME: Pins the persisted JSON field names and explicit-null semantics
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSegment_Helpers(t *testing.T) {
	page := 4
	cat := "Risk Management"
	seg := Segment{
		ID:            7,
		Text:          "Volatility is not the only dimension of risk.",
		PageNumber:    &page,
		TopicCategory: &cat,
		Keywords:      []string{"risk", "volatility"},
		Embedding:     []float64{0.1, 0.2},
	}

	if !seg.HasEmbedding() {
		t.Error("HasEmbedding() = false for embedded segment")
	}
	if !seg.HasKeyword("risk") {
		t.Error("HasKeyword(risk) = false")
	}
	if seg.HasKeyword("alpha") {
		t.Error("HasKeyword(alpha) = true for absent keyword")
	}
	if seg.Page() != 4 {
		t.Errorf("Page() = %d, want 4", seg.Page())
	}
	if seg.Category() != "Risk Management" {
		t.Errorf("Category() = %q", seg.Category())
	}
}

func TestSegment_ZeroValueHelpers(t *testing.T) {
	var seg Segment

	if seg.HasEmbedding() {
		t.Error("HasEmbedding() = true for zero segment")
	}
	if seg.Page() != 0 {
		t.Errorf("Page() = %d, want 0 without provenance", seg.Page())
	}
	if seg.Category() != "" {
		t.Errorf("Category() = %q, want empty", seg.Category())
	}
}

func TestSegment_JSONFieldNames(t *testing.T) {
	seg := Segment{
		ID:        0,
		Text:      "t",
		Keywords:  []string{"portfolio"},
		Embedding: []float64{1},
	}

	data, err := json.Marshal(seg)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, field := range []string{
		`"id"`, `"text"`, `"source_file"`, `"page_number"`,
		`"chunk_index"`, `"topic_category"`, `"relevance_keywords"`, `"embedding"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("marshaled segment missing field %s: %s", field, out)
		}
	}

	// Optional fields serialize as explicit nulls, not omitted.
	if !strings.Contains(out, `"page_number":null`) {
		t.Errorf("page_number should be an explicit null: %s", out)
	}
	if !strings.Contains(out, `"topic_category":null`) {
		t.Errorf("topic_category should be an explicit null: %s", out)
	}
}

func TestIndexConfig_Validate(t *testing.T) {
	valid := IndexConfig{
		ModelName:    "text-embedding-3-small",
		EmbeddingDim: 1536,
		TotalChunks:  10,
		SourceFile:   "course.pdf",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v for valid config", err)
	}

	tests := []struct {
		name   string
		mutate func(*IndexConfig)
	}{
		{"missing model", func(c *IndexConfig) { c.ModelName = "" }},
		{"zero dimension", func(c *IndexConfig) { c.EmbeddingDim = 0 }},
		{"negative chunks", func(c *IndexConfig) { c.TotalChunks = -1 }},
		{"missing source", func(c *IndexConfig) { c.SourceFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
