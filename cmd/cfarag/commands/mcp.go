// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Serves the knowledge index to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ramadvisor/cfarag/internal/config"
	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Serves the knowledge index over MCP (Model Context Protocol) on
stdio: search_knowledge, translate_query and knowledge_stats. The
index is loaded once at startup and served read-only.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by the agent host)
  cfarag mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "cfarag": {
  #       "command": "cfarag",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	artifacts, err := index.Load(cfg.DataDir, cfg.ArtifactPrefix)
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	// Embedder is optional; without a key, search runs keyword-only.
	var embedder llm.Embedder
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - search_knowledge will run keyword-only")
	} else {
		client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:     cfg.OpenAIKey,
			Model:      cfg.EmbeddingModel,
			Dimension:  cfg.EmbeddingDim,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize OpenAI client: %v", err)
		} else {
			embedder = client
			if verbose {
				log.Println("OpenAI embedding client initialized")
			}
		}
	}

	server := mcpserver.NewMCPServer(
		"CFA Knowledge Index",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, artifacts, embedder)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Printf("MCP server starting on stdio (%d segments loaded)...", len(artifacts.Segments))
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
