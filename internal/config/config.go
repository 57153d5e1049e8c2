// ABOUTME: Centralized configuration for the knowledge index pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for index building and querying
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	EmbeddingDim   int
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Chunking settings
	ChunkSize      int
	ChunkOverlap   int
	MinChunkLength int
	BatchSize      int

	// Artifact settings
	DataDir        string
	ArtifactPrefix string
	SourceName     string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel: getEnv("CFARAG_EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDim:   getEnvInt("CFARAG_EMBEDDING_DIM", 1536),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ChunkSize:      getEnvInt("CFARAG_CHUNK_SIZE", 450),
		ChunkOverlap:   getEnvInt("CFARAG_CHUNK_OVERLAP", 80),
		MinChunkLength: getEnvInt("CFARAG_MIN_CHUNK_LENGTH", 50),
		BatchSize:      getEnvInt("CFARAG_BATCH_SIZE", 8),
		DataDir:        getEnv("CFARAG_DATA_DIR", "data"),
		ArtifactPrefix: getEnv("CFARAG_ARTIFACT_PREFIX", "cfa"),
		SourceName:     getEnv("CFARAG_SOURCE_NAME", "course.pdf"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CFARAG_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CFARAG_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.MinChunkLength < 0 {
		return fmt.Errorf("CFARAG_MIN_CHUNK_LENGTH must be non-negative, got %d", c.MinChunkLength)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("CFARAG_BATCH_SIZE must be positive, got %d", c.BatchSize)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ArtifactPrefix == "" {
		return fmt.Errorf("CFARAG_ARTIFACT_PREFIX must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
