// ABOUTME: Tests for topic categorization and keyword extraction
// ABOUTME: Verifies scoring, deterministic tie-breaks and the keyword cap
package knowledge

import (
	"reflect"
	"strings"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // "" means nil expected
	}{
		{
			name: "asset allocation dominates",
			text: "Strategic asset allocation drives portfolio diversification across asset classes.",
			want: "Asset Allocation",
		},
		{
			name: "risk management dominates",
			text: "Downside risk and volatility must match the client's risk tolerance and risk capacity.",
			want: "Risk Management",
		},
		{
			name: "tax planning",
			text: "After-tax returns depend on tax-efficient placement and careful tax planning.",
			want: "Tax Planning",
		},
		{
			name: "no match yields nil",
			text: "The quick brown fox jumps over the lazy dog.",
			want: "",
		},
		{
			name: "empty text yields nil",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Categorize() = %q, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Categorize() = nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("Categorize() = %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestCategorize_TieBreakFirstDeclared(t *testing.T) {
	// "portfolio" scores Asset Allocation once, "strategy" scores Investment
	// Strategy once; the earlier-declared category must win the tie.
	got := Categorize("A portfolio strategy.")
	if got == nil || *got != "Asset Allocation" {
		t.Errorf("tie-break: got %v, want Asset Allocation", got)
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	text := "Portfolio diversification and risk management strategy for client objectives."
	first := Categorize(text)
	for i := 0; i < 20; i++ {
		if got := Categorize(text); got == nil || *got != *first {
			t.Fatalf("run %d: got %v, want %q", i, got, *first)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "The portfolio allocation balances risk and return for the client."
	got := ExtractKeywords(text)
	want := []string{"portfolio", "allocation", "risk", "return", "client"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywords_CapAtMax(t *testing.T) {
	// A text containing the whole vocabulary must truncate to the cap.
	text := strings.Join(FinancialTerms, " ")
	got := ExtractKeywords(text)
	if len(got) != MaxKeywordsPerSegment {
		t.Errorf("got %d keywords, want %d", len(got), MaxKeywordsPerSegment)
	}
	// Vocabulary-declared order, truncated.
	if !reflect.DeepEqual(got, FinancialTerms[:MaxKeywordsPerSegment]) {
		t.Errorf("keyword order = %v, want vocabulary prefix", got)
	}
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	if got := ExtractKeywords("nothing relevant here"); got != nil {
		t.Errorf("ExtractKeywords() = %v, want nil", got)
	}
}

func TestEnrichKeywordsFrench(t *testing.T) {
	text := "Wealth management requires sound asset allocation."
	keywords := []string{"wealth", "management", "allocation"}
	got := EnrichKeywordsFrench(text, keywords)

	for _, want := range []string{"wealth", "patrimoine", "gestion", "allocation d'actifs", "gestion de patrimoine"} {
		found := false
		for _, kw := range got {
			if kw == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("enriched keywords missing %q: %v", want, got)
		}
	}
}

func TestEnrichKeywordsFrench_Dedup(t *testing.T) {
	got := EnrichKeywordsFrench("diversification everywhere", []string{"diversification", "diversification"})
	seen := make(map[string]int)
	for _, kw := range got {
		seen[kw]++
		if seen[kw] > 1 {
			t.Errorf("keyword %q duplicated", kw)
		}
	}
}

func TestCountOccurrences_Overlapping(t *testing.T) {
	if got := countOccurrences("aaaa", "aa"); got != 3 {
		t.Errorf("overlapping count = %d, want 3", got)
	}
}
