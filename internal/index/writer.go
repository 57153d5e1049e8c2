// ABOUTME: Serializes the segment sequence into the four index artifacts
// ABOUTME: Writes to temp files first so a half-written index is never visible
package index

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ramadvisor/cfarag/internal/models"
)

// Writer persists a complete artifact set for one build. Rerunning with
// identical input produces identical segment ordering and ids.
type Writer struct {
	dir    string
	prefix string
}

// NewWriter creates a writer for the given output directory and artifact
// prefix.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix}
}

// Write validates the segment sequence against the config, derives the
// posting list and stats, and swaps the full artifact set into place. Either
// all four files are replaced or none are; a previously valid set stays
// servable if anything fails.
func (w *Writer) Write(segments []models.Segment, cfg models.IndexConfig) error {
	if err := validateForWrite(segments, &cfg); err != nil {
		return fmt.Errorf("refusing to write index: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating artifact directory: %w", err)
	}

	postings := BuildPostings(segments)
	stats := BuildStats(segments, postings)

	payloads := []any{segments, cfg, postings, stats}
	finals := ArtifactPaths(w.dir, w.prefix)
	suffix := ".tmp-" + uuid.New().String()

	temps := make([]string, len(finals))
	for i, final := range finals {
		temps[i] = final + suffix
		if err := writeJSON(temps[i], payloads[i]); err != nil {
			removeAll(temps[:i+1])
			return err
		}
	}

	for i, final := range finals {
		if err := os.Rename(temps[i], final); err != nil {
			removeAll(temps[i:])
			return fmt.Errorf("swapping %s into place: %w", filepath.Base(final), err)
		}
	}

	log.Printf("[Index] wrote %d segments, %d keywords to %s", len(segments), len(postings), w.dir)
	return nil
}

// validateForWrite enforces the persistence invariants before anything
// touches disk: sequential ids, uniform embedding dimension, no segment
// without an embedding, coherent config counts.
func validateForWrite(segments []models.Segment, cfg *models.IndexConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.TotalChunks != len(segments) {
		return fmt.Errorf("config total_chunks %d does not match %d segments", cfg.TotalChunks, len(segments))
	}
	for i := range segments {
		seg := &segments[i]
		if seg.ID != i {
			return fmt.Errorf("segment at position %d has id %d", i, seg.ID)
		}
		if !seg.HasEmbedding() {
			return fmt.Errorf("segment %d has no embedding", seg.ID)
		}
		if len(seg.Embedding) != cfg.EmbeddingDim {
			return fmt.Errorf("segment %d embedding dimension %d, want %d", seg.ID, len(seg.Embedding), cfg.EmbeddingDim)
		}
		if seg.Keywords == nil {
			// keep the persisted keyword set an explicit empty array
			seg.Keywords = []string{}
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
