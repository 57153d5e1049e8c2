// ABOUTME: Tests for French-to-English query translation
// ABOUTME: Covers phrase precedence, pass-through, stop words and keyword expansion
package translate

import (
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{
			name:     "retirement portfolio scenario",
			query:    "portefeuille diversifié pour ma retraite",
			contains: []string{"portfolio", "diversified", "retirement"},
			excludes: []string{"pour", "portefeuille"},
		},
		{
			name:     "phrase applied before tokens",
			query:    "allocation d'actifs équilibrée avec horizon long terme",
			contains: []string{"asset allocation", "horizon"},
			excludes: []string{"actifs", "avec"},
		},
		{
			name:     "risk management expression",
			query:    "optimiser mon patrimoine avec gestion des risques",
			contains: []string{"wealth", "risk management"},
			excludes: []string{"avec"},
		},
		{
			name:     "unknown tokens pass through",
			query:    "xylophone portefeuille zzz aaa bbb",
			contains: []string{"xylophone", "portfolio", "zzz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.query)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Translate(%q) = %q, missing %q", tt.query, got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if containsToken(got, unwanted) {
					t.Errorf("Translate(%q) = %q, should not contain token %q", tt.query, got, unwanted)
				}
			}
		})
	}
}

func TestTranslate_IdempotentOnEnglish(t *testing.T) {
	// An already-English query with no French tokens and no French stop
	// words comes back unchanged.
	query := "diversified retirement income strategy with moderate growth"
	got := Translate(query)
	if got != query {
		t.Errorf("Translate(%q) = %q, want unchanged", query, got)
	}
}

func TestTranslate_ShortQueryGetsContextTerms(t *testing.T) {
	got := Translate("retraite")
	if !strings.Contains(got, "retirement") {
		t.Fatalf("Translate = %q, missing retirement", got)
	}
	// One token remains after translation, so context terms are appended.
	for _, ctx := range contextTerms[:2] {
		if !containsToken(got, ctx) {
			t.Errorf("Translate = %q, missing context term %q", got, ctx)
		}
	}
}

func TestTranslate_EmptyQuery(t *testing.T) {
	if got := Translate("   "); got != "" {
		t.Errorf("Translate(blank) = %q, want empty", got)
	}
}

func TestTranslate_PunctuationStrippedForLookup(t *testing.T) {
	got := Translate("quel rendement attendre de mon portefeuille, avec quels risques ?")
	for _, want := range []string{"yield", "portfolio", "risks"} {
		if !strings.Contains(got, want) {
			t.Errorf("Translate = %q, missing %q", got, want)
		}
	}
}

func TestExpandKeywords(t *testing.T) {
	got := ExpandKeywords("portefeuille diversifié pour ma retraite")

	// Mixes source and target language tokens, all longer than 3 chars.
	for _, want := range []string{"portefeuille", "diversifié", "retraite", "portfolio", "diversified", "retirement"} {
		if !containsString(got, want) {
			t.Errorf("ExpandKeywords missing %q: %v", want, got)
		}
	}
	for _, kw := range got {
		if len([]rune(kw)) <= 3 {
			t.Errorf("keyword %q is too short", kw)
		}
	}
}

func TestExpandKeywords_Deduplicates(t *testing.T) {
	got := ExpandKeywords("diversification diversification")
	count := 0
	for _, kw := range got {
		if kw == "diversification" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("diversification appears %d times, want 1", count)
	}
}

func containsToken(s, token string) bool {
	for _, f := range strings.Fields(s) {
		if f == token {
			return true
		}
	}
	return false
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
