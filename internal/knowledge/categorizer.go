// ABOUTME: Assigns topic categories and extracts domain keywords from segments
// ABOUTME: Pure dictionary scans against the static CFA vocabulary
package knowledge

import "strings"

// Categorize scores each topic category by counting keyword occurrences in
// the text and returns the category with the strictly highest score, or nil
// if no keyword matches at all. Categories are scored in declaration order,
// so the first-declared category wins ties.
func Categorize(text string) *string {
	lower := strings.ToLower(text)

	best := ""
	bestScore := 0
	for _, cat := range TopicCategories {
		score := 0
		for _, kw := range cat.Keywords {
			score += countOccurrences(lower, kw)
		}
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}
	if bestScore == 0 {
		return nil
	}
	return &best
}

// ExtractKeywords returns every vocabulary term present in the text as a
// case-insensitive substring, in vocabulary order, capped at
// MaxKeywordsPerSegment.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, term := range FinancialTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
			if len(found) == MaxKeywordsPerSegment {
				break
			}
		}
	}
	return found
}

// EnrichKeywordsFrench appends French equivalents for English phrases found
// in the text and for the already-extracted keywords, deduplicated and in
// deterministic order. Used when the posting list must serve French keyword
// lookups directly.
func EnrichKeywordsFrench(text string, keywords []string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool, len(keywords))
	enriched := make([]string, 0, len(keywords)*2)
	add := func(kw string) {
		if kw != "" && !seen[kw] {
			seen[kw] = true
			enriched = append(enriched, kw)
		}
	}

	for _, kw := range keywords {
		add(kw)
	}
	for _, p := range frenchPhrases {
		if strings.Contains(lower, p.English) {
			add(p.French)
		}
	}
	for _, kw := range keywords {
		add(frenchTerms[kw])
	}
	return enriched
}

// countOccurrences counts case-insensitive substring occurrences, overlapping
// matches counted independently. The haystack must already be lower-cased.
func countOccurrences(lower, needle string) int {
	if needle == "" {
		return 0
	}
	count := 0
	for i := 0; i+len(needle) <= len(lower); {
		j := strings.Index(lower[i:], needle)
		if j < 0 {
			break
		}
		count++
		i += j + 1
	}
	return count
}
