// ABOUTME: MCP tool definitions and registration for the knowledge server
// ABOUTME: Exposes retrieval, translation and index stats over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/search"
)

// RegisterTools registers all knowledge tools with the server. The embedder
// may be nil, in which case search_knowledge falls back to keyword retrieval.
func RegisterTools(server *mcpserver.MCPServer, artifacts *index.Artifacts, embedder llm.Embedder) *Handlers {
	handlers := &Handlers{
		artifacts: artifacts,
		searcher:  search.New(artifacts),
		embedder:  embedder,
	}

	// 1. search_knowledge - retrieve course passages for a query
	server.AddTool(mcp.Tool{
		Name:        "search_knowledge",
		Description: "Search the CFA course knowledge index. Accepts French or English queries; French queries are translated before embedding.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query in French or English",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of passages to return (default: 5)",
					"default":     5,
				},
				"risk_profile": map[string]interface{}{
					"type":        "string",
					"description": "Optional client risk profile: conservative, balanced or aggressive",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchKnowledge)

	// 2. translate_query - French to English query translation
	server.AddTool(mcp.Tool{
		Name:        "translate_query",
		Description: "Translate a French financial query to English retrieval terms and list the keywords it expands to.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "French query to translate",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.TranslateQuery)

	// 3. knowledge_stats - index composition summary
	server.AddTool(mcp.Tool{
		Name:        "knowledge_stats",
		Description: "Get the loaded knowledge index statistics: segment count, category distribution and build metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.KnowledgeStats)

	return handlers
}
