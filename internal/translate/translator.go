// ABOUTME: Best-effort French-to-English query translation for retrieval
// ABOUTME: Phrase pass, token pass, stop-word cleanup, contextual fallback
package translate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Translate maps a French advisory query into the English vocabulary the
// index was built on. Multi-word expressions are substituted first, then
// individual tokens; tokens with no dictionary entry pass through unchanged.
// French stop words are removed afterwards, and very short queries get a few
// domain context terms appended so the vector search keeps enough signal.
func Translate(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	for _, expr := range expressions {
		if strings.Contains(q, expr.French) {
			q = strings.ReplaceAll(q, expr.French, expr.English)
		}
	}

	var translated []string
	for _, word := range strings.Fields(q) {
		clean := stripPunct(word)
		if en, ok := financialTerms[clean]; ok {
			translated = append(translated, en)
		} else {
			translated = append(translated, word)
		}
	}

	var kept []string
	for _, word := range translated {
		if !stopWords[word] {
			kept = append(kept, word)
		}
	}
	if len(kept) <= minTokensBeforeFallback {
		kept = append(kept, contextTerms[:2]...)
	}

	return strings.Join(kept, " ")
}

// ExpandKeywords returns the deduplicated union of words longer than three
// characters from the raw query and from its translation. The result
// deliberately mixes French and English tokens, since the posting list may
// contain either.
func ExpandKeywords(query string) []string {
	seen := make(map[string]bool)
	var keywords []string
	collect := func(text string) {
		for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
			if utf8.RuneCountInString(w) > 3 && !seen[w] {
				seen[w] = true
				keywords = append(keywords, w)
			}
		}
	}

	collect(query)
	collect(Translate(query))
	return keywords
}

// stripPunct removes non-alphanumeric runes for dictionary lookup.
func stripPunct(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, word)
}
