// ABOUTME: Tests for extractor-output loading and academic text cleanup
// ABOUTME: Covers JSON and plain-text inputs plus the fatal error cases
package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPages_MissingFile(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadPages_JSONPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")
	long := strings.Repeat("Asset allocation is the core discipline of private wealth management. ", 4)
	content := `[
		{"text": ` + quote(long) + `, "page_number": 1},
		{"text": "too short", "page_number": 2},
		{"text": ` + quote(long) + `, "page_number": 3}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := LoadPages(path)
	if err != nil {
		t.Fatalf("LoadPages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2 (short page filtered)", len(pages))
	}
	if pages[0].PageNumber == nil || *pages[0].PageNumber != 1 {
		t.Errorf("first page number = %v, want 1", pages[0].PageNumber)
	}
	if pages[1].PageNumber == nil || *pages[1].PageNumber != 3 {
		t.Errorf("second page number = %v, want 3", pages[1].PageNumber)
	}
}

func TestLoadPages_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.txt")
	long := strings.Repeat("Portfolio diversification reduces unsystematic risk for the client. ", 4)
	if err := os.WriteFile(path, []byte(long), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := LoadPages(path)
	if err != nil {
		t.Fatalf("LoadPages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if pages[0].PageNumber != nil {
		t.Errorf("plain text page should have no page number, got %v", *pages[0].PageNumber)
	}
}

func TestLoadPages_EmptyExtraction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")
	if err := os.WriteFile(path, []byte(`[{"text": "tiny", "page_number": 1}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPages(path)
	if !errors.Is(err, ErrEmptyExtraction) {
		t.Errorf("err = %v, want ErrEmptyExtraction", err)
	}
}

func TestLoadPages_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPages(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCleanAcademicText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace",
			in:   "asset   allocation\n\nmatters",
			want: "asset allocation matters",
		},
		{
			name: "strips page headers",
			in:   "Page 12 risk management Page 13",
			want: "risk management",
		},
		{
			name: "strips chapter headers and boilerplate",
			in:   "Chapter 3 CFA Institute wealth transfer",
			want: "wealth transfer",
		},
		{
			name: "removes isolated formula fragments",
			in:   "the relation R = A + B holds",
			want: "the relation holds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAcademicText(tt.in); got != tt.want {
				t.Errorf("CleanAcademicText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
