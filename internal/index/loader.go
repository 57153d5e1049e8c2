// ABOUTME: Loads and validates the persisted index artifacts at query time
// ABOUTME: Missing or incoherent artifacts surface as typed errors, never empty results
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ramadvisor/cfarag/internal/models"
)

// ArtifactError reports a missing, unparsable or invalid index artifact.
// Query paths must surface it to the caller so "no index available" is never
// conflated with "no matches found".
type ArtifactError struct {
	File string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("index artifact %s: %v", e.File, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// Artifacts is the fully-loaded, immutable index snapshot. It is safe for
// concurrent readers; nothing mutates it after Load returns.
type Artifacts struct {
	Segments []models.Segment
	Config   models.IndexConfig
	Postings models.PostingList
	Stats    models.IndexStats
}

// Load reads the four artifacts for prefix from dir and validates them
// against each other. Any failure returns an *ArtifactError.
func Load(dir, prefix string) (*Artifacts, error) {
	paths := ArtifactPaths(dir, prefix)

	a := &Artifacts{}
	if err := readJSON(paths[0], &a.Segments); err != nil {
		return nil, err
	}
	if err := readJSON(paths[1], &a.Config); err != nil {
		return nil, err
	}
	if err := readJSON(paths[2], &a.Postings); err != nil {
		return nil, err
	}
	if err := readJSON(paths[3], &a.Stats); err != nil {
		return nil, err
	}

	if err := a.validate(); err != nil {
		return nil, &ArtifactError{File: prefix + "*", Err: err}
	}
	return a, nil
}

// validate cross-checks the loaded artifact set: schema fields, sequential
// ids, uniform embedding dimension, and posting-list soundness in both
// directions.
func (a *Artifacts) validate() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Config.TotalChunks != len(a.Segments) {
		return fmt.Errorf("config total_chunks %d, found %d segments", a.Config.TotalChunks, len(a.Segments))
	}

	for i := range a.Segments {
		seg := &a.Segments[i]
		if seg.ID != i {
			return fmt.Errorf("segment at position %d has id %d", i, seg.ID)
		}
		if len(seg.Embedding) != a.Config.EmbeddingDim {
			return fmt.Errorf("segment %d embedding dimension %d, want %d", seg.ID, len(seg.Embedding), a.Config.EmbeddingDim)
		}
	}

	for kw, ids := range a.Postings {
		for _, id := range ids {
			if id < 0 || id >= len(a.Segments) {
				return fmt.Errorf("posting list for %q references unknown segment %d", kw, id)
			}
			if !a.Segments[id].HasKeyword(kw) {
				return fmt.Errorf("posting list for %q references segment %d which lacks the keyword", kw, id)
			}
		}
	}
	for i := range a.Segments {
		seg := &a.Segments[i]
		for _, kw := range seg.Keywords {
			if !containsID(a.Postings[kw], seg.ID) {
				return fmt.Errorf("segment %d keyword %q missing from posting list", seg.ID, kw)
			}
		}
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactError{File: filepath.Base(path), Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ArtifactError{File: filepath.Base(path), Err: err}
	}
	return nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
