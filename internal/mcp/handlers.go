// ABOUTME: MCP tool handler implementations for the knowledge server
// ABOUTME: Serves one immutable index snapshot loaded at startup
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/search"
	"github.com/ramadvisor/cfarag/internal/translate"
)

// Handlers contains the handler functions for all knowledge tools.
type Handlers struct {
	artifacts *index.Artifacts
	searcher  *search.Searcher
	embedder  llm.Embedder // nil means keyword-only retrieval
}

// SearchKnowledge handles the search_knowledge tool.
func (h *Handlers) SearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", 5)
	if maxResults <= 0 {
		maxResults = 5
	}
	riskProfile := request.GetString("risk_profile", "")

	translated := translate.Translate(query)

	if h.embedder == nil {
		return h.keywordSearch(query, translated, maxResults)
	}

	vectors, err := h.embedder.EmbedBatch(ctx, []string{translated})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("embedding query failed: %v", err)), nil
	}

	opts := search.DefaultOptions()
	opts.TopK = maxResults
	opts.RiskProfile = riskProfile

	hits, err := h.searcher.SearchEnhanced(vectors[0], translated, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(hits))
	for _, hit := range hits {
		results = append(results, map[string]interface{}{
			"segment_id": hit.Segment.ID,
			"text":       hit.Segment.Text,
			"score":      hit.Score,
			"category":   hit.Segment.Category(),
			"keywords":   hit.Segment.Keywords,
			"reason":     hit.Reason,
		})
	}

	response := map[string]interface{}{
		"query":             query,
		"translated_query":  translated,
		"results":           results,
		"knowledge_context": search.FormatForPrompt(hits, 4000),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// keywordSearch serves search_knowledge without an embedder: posting-list
// union over the expanded query keywords, unranked.
func (h *Handlers) keywordSearch(query, translated string, maxResults int) (*mcp.CallToolResult, error) {
	keywords := translate.ExpandKeywords(query)
	ids := h.searcher.SearchKeywords(keywords)
	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}

	results := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		seg := h.searcher.Segment(id)
		results = append(results, map[string]interface{}{
			"segment_id": seg.ID,
			"text":       seg.Text,
			"category":   seg.Category(),
			"keywords":   seg.Keywords,
			"reason":     "keyword match",
		})
	}

	response := map[string]interface{}{
		"query":            query,
		"translated_query": translated,
		"mode":             "keyword",
		"results":          results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// TranslateQuery handles the translate_query tool.
func (h *Handlers) TranslateQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	response := map[string]interface{}{
		"query":      query,
		"translated": translate.Translate(query),
		"keywords":   translate.ExpandKeywords(query),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// KnowledgeStats handles the knowledge_stats tool.
func (h *Handlers) KnowledgeStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"total_chunks":            h.artifacts.Stats.TotalChunks,
		"categories_distribution": h.artifacts.Stats.CategoriesDistribution,
		"average_chunk_length":    h.artifacts.Stats.AverageChunkLength,
		"total_keywords":          h.artifacts.Stats.TotalKeywords,
		"model_name":              h.artifacts.Config.ModelName,
		"embedding_dim":           h.artifacts.Config.EmbeddingDim,
		"source_file":             h.artifacts.Config.SourceFile,
		"generated_at":            h.artifacts.Config.GeneratedAt,
		"build_id":                h.artifacts.Config.BuildID,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
