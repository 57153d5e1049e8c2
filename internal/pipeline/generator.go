// ABOUTME: Orchestrates the offline index build from extractor output to artifacts
// ABOUTME: Ingest, chunk, categorize, embed in sequential batches, then write
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ramadvisor/cfarag/internal/chunker"
	"github.com/ramadvisor/cfarag/internal/config"
	"github.com/ramadvisor/cfarag/internal/index"
	"github.com/ramadvisor/cfarag/internal/ingest"
	"github.com/ramadvisor/cfarag/internal/knowledge"
	"github.com/ramadvisor/cfarag/internal/llm"
	"github.com/ramadvisor/cfarag/internal/models"
)

// BatchError reports a failed embedding batch. The whole build aborts; an
// index with some segments embedded and others not is never persisted.
type BatchError struct {
	Batch int
	Total int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("embedding batch %d/%d failed: %v", e.Batch, e.Total, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// BuildOptions control one index build.
type BuildOptions struct {
	// SourcePath is the extractor output (see ingest.LoadPages).
	SourcePath string
	// WindowChunks selects the character-window chunker instead of the
	// sentence-aware one used for academic pages.
	WindowChunks bool
	// EnrichFrench adds French keyword equivalents to each segment so the
	// posting list serves bilingual lookups.
	EnrichFrench bool
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	BuildID   string
	Pages     int
	Segments  int
	Dimension int
}

// Generator runs the build pipeline. It is a single-threaded batch process;
// embedding batches are issued strictly in source order.
type Generator struct {
	cfg      *config.Config
	embedder llm.Embedder
}

// NewGenerator creates a Generator using the given embedder.
func NewGenerator(cfg *config.Config, embedder llm.Embedder) *Generator {
	return &Generator{cfg: cfg, embedder: embedder}
}

// Build runs the full pipeline and swaps the artifact set into place. Any
// failure aborts the build without touching a previously written set.
func (g *Generator) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	pages, err := ingest.LoadPages(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	segments := g.segmentPages(pages, opts)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: chunking produced no segments", ingest.ErrEmptyExtraction)
	}
	log.Printf("[Pipeline] %d pages chunked into %d segments", len(pages), len(segments))

	if err := g.embedSegments(ctx, segments); err != nil {
		return nil, err
	}

	buildID := uuid.New().String()
	cfg := models.IndexConfig{
		ModelName:    g.embedder.ModelName(),
		EmbeddingDim: g.embedder.Dimension(),
		TotalChunks:  len(segments),
		SourceFile:   g.cfg.SourceName,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		BuildID:      buildID,
		Categories:   knowledge.CategoryNames(),
	}

	writer := index.NewWriter(g.cfg.DataDir, g.cfg.ArtifactPrefix)
	if err := writer.Write(segments, cfg); err != nil {
		return nil, err
	}

	return &BuildResult{
		BuildID:   buildID,
		Pages:     len(pages),
		Segments:  len(segments),
		Dimension: g.embedder.Dimension(),
	}, nil
}

// segmentPages chunks each page and enriches the segments with category and
// keywords. Ids are the running position in the final sequence; chunk_index
// restarts per page. Chunks below the configured minimum length are dropped.
func (g *Generator) segmentPages(pages []ingest.Page, opts BuildOptions) []models.Segment {
	var segments []models.Segment
	for _, page := range pages {
		var chunks []string
		if opts.WindowChunks {
			chunks = chunker.Chunk(page.Text, g.cfg.ChunkSize, g.cfg.ChunkOverlap)
		} else {
			chunks = chunker.ChunkSentences(page.Text, g.cfg.ChunkSize)
		}

		chunkIndex := 0
		for _, text := range chunks {
			if len(text) < g.cfg.MinChunkLength {
				continue
			}
			keywords := knowledge.ExtractKeywords(text)
			if opts.EnrichFrench {
				keywords = knowledge.EnrichKeywordsFrench(text, keywords)
			}
			if keywords == nil {
				keywords = []string{}
			}
			segments = append(segments, models.Segment{
				ID:            len(segments),
				Text:          text,
				SourceFile:    g.cfg.SourceName,
				PageNumber:    page.PageNumber,
				ChunkIndex:    chunkIndex,
				TopicCategory: knowledge.Categorize(text),
				Keywords:      keywords,
			})
			chunkIndex++
		}
	}
	return segments
}

// embedSegments runs the batched embedding phase, attaching vectors in
// original segment order.
func (g *Generator) embedSegments(ctx context.Context, segments []models.Segment) error {
	total := (len(segments) + g.cfg.BatchSize - 1) / g.cfg.BatchSize

	for start, batch := 0, 1; start < len(segments); start, batch = start+g.cfg.BatchSize, batch+1 {
		end := start + g.cfg.BatchSize
		if end > len(segments) {
			end = len(segments)
		}

		texts := make([]string, 0, end-start)
		for _, seg := range segments[start:end] {
			texts = append(texts, seg.Text)
		}

		log.Printf("[Pipeline] embedding batch %d/%d (%d segments)", batch, total, len(texts))
		vectors, err := g.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return &BatchError{Batch: batch, Total: total, Err: err}
		}
		if len(vectors) != len(texts) {
			return &BatchError{Batch: batch, Total: total, Err: fmt.Errorf("got %d vectors for %d texts", len(vectors), len(texts))}
		}

		for i, vec := range vectors {
			llm.Normalize(vec)
			segments[start+i].Embedding = vec
		}
	}
	return nil
}
