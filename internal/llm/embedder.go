// ABOUTME: Embedder contract consumed by the index pipeline
// ABOUTME: Implementations map text batches to fixed-length unit vectors
package llm

import (
	"context"
	"math"
)

// Embedder converts a batch of texts into fixed-length L2-normalized vectors.
// The pipeline calls it once per batch, strictly in source order.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	ModelName() string
	Dimension() int
}

// Normalize scales vec to unit L2 norm in place so that dot product equals
// cosine similarity. A zero vector is left unchanged.
func Normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
