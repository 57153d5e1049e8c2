// ABOUTME: Loads extractor output and cleans academic text before chunking
// ABOUTME: PDF extraction itself is an external collaborator; this consumes its pages
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MinPageLength filters out extracted pages with too little usable content.
const MinPageLength = 100

var (
	// ErrSourceNotFound means the input document is missing or unreadable.
	// Fatal: the build aborts before any chunking happens.
	ErrSourceNotFound = errors.New("source document not found")

	// ErrEmptyExtraction means extraction yielded zero usable pages.
	// Fatal: the build aborts with no output files written.
	ErrEmptyExtraction = errors.New("no usable pages extracted")
)

// Page is one unit of extractor output: raw text plus optional page
// provenance.
type Page struct {
	Text       string `json:"text"`
	PageNumber *int   `json:"page_number"`
}

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	pageHeader      = regexp.MustCompile(`Page \d+`)
	chapterHeader   = regexp.MustCompile(`Chapter \d+`)
	formulaFragment = regexp.MustCompile(`\b[A-Z]\s*=\s*[A-Z]\s*[+\-*/]\s*[A-Z]\b`)
	sentenceGap     = regexp.MustCompile(`([.!?])\s*([A-Z])`)
)

// LoadPages reads the text extractor's output. A .json file holds an array of
// Page records; any other extension is treated as a single plain-text page
// with no page provenance. Pages are cleaned and pages below MinPageLength
// are discarded.
func LoadPages(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	var pages []Page
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &pages); err != nil {
			return nil, fmt.Errorf("parsing extractor output %s: %w", path, err)
		}
	} else {
		pages = []Page{{Text: string(data)}}
	}

	var usable []Page
	for _, p := range pages {
		cleaned := CleanAcademicText(p.Text)
		if len(cleaned) <= MinPageLength {
			continue
		}
		usable = append(usable, Page{Text: cleaned, PageNumber: p.PageNumber})
	}

	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyExtraction, path)
	}

	log.Printf("[Ingest] %s: %d usable pages of %d extracted", filepath.Base(path), len(usable), len(pages))
	return usable, nil
}

// CleanAcademicText normalizes extracted course text: collapses whitespace,
// strips page and chapter headers, publisher boilerplate and isolated formula
// fragments, and restores spacing at sentence boundaries.
func CleanAcademicText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = pageHeader.ReplaceAllString(text, "")
	text = chapterHeader.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "CFA Institute", "")
	text = formulaFragment.ReplaceAllString(text, "")
	text = sentenceGap.ReplaceAllString(text, "$1 $2")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
