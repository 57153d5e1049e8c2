// ABOUTME: OpenAI client for batch embedding generation with retry logic
// ABOUTME: Uses text-embedding-3-small by default, vectors L2-normalized for cosine search
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ramadvisor/cfarag/internal/util"
)

const (
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
	// DefaultEmbeddingDim is the output dimension of the default model
	DefaultEmbeddingDim = 1536
)

// ClientConfig holds configuration for the OpenAI embedding client
type ClientConfig struct {
	APIKey     string
	Model      string
	Dimension  int
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		Model:      DefaultEmbeddingModel,
		Dimension:  DefaultEmbeddingDim,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client     *openai.Client
	model      string
	dimension  int
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient creates an embedding client with default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates an embedding client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIClient{
		client:     openai.NewClient(config.APIKey),
		model:      config.Model,
		dimension:  config.Dimension,
		timeout:    config.Timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// ModelName returns the embedding model identifier
func (c *OpenAIClient) ModelName() string { return c.model }

// Dimension returns the declared output dimension of the model
func (c *OpenAIClient) Dimension() int { return c.dimension }

// EmbedBatch embeds one batch of texts in a single API call, retrying
// transient failures with exponential backoff. Returned vectors are
// L2-normalized and in the same order as the input texts.
func (c *OpenAIClient) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: openai.EmbeddingModel(c.model),
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d texts", attempt+1, len(resp.Data), len(texts))
			continue
		}

		vectors := make([][]float64, len(resp.Data))
		for i, d := range resp.Data {
			vec := make([]float64, len(d.Embedding))
			for j, v := range d.Embedding {
				vec[j] = float64(v)
			}
			Normalize(vec)
			vectors[i] = vec
		}
		return vectors, nil
	}

	return nil, fmt.Errorf("failed to embed batch after %d attempts: %w", c.maxRetries+1, lastErr)
}
