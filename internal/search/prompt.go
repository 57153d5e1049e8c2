// ABOUTME: Formats retrieved passages for LLM prompt augmentation
// ABOUTME: The LLM call that turns passages into advice lives outside this module
package search

import (
	"fmt"
	"strings"
)

const promptHeader = "RELEVANT COURSE KNOWLEDGE:\n\n"

// FormatForPrompt assembles the retrieved passages into a length-capped block
// suitable for prepending to an advice-generation prompt. Each passage is
// tagged with its topic category; the last passage is truncated rather than
// dropped when it nearly fits.
func FormatForPrompt(hits []ScoredSegment, maxLength int) string {
	if len(hits) == 0 {
		return "No specific course knowledge found for this query."
	}

	var b strings.Builder
	b.WriteString(promptHeader)

	for _, hit := range hits {
		tag := hit.Segment.Category()
		if tag == "" {
			tag = "General"
		}
		passage := fmt.Sprintf("[%s] %s\n\n", tag, hit.Segment.Text)

		if b.Len()+len(passage) <= maxLength {
			b.WriteString(passage)
			continue
		}

		remaining := maxLength - b.Len()
		if remaining > 100 {
			cut := remaining - 50
			if cut > len(passage) {
				cut = len(passage)
			}
			b.WriteString(passage[:cut])
			b.WriteString("...")
		}
		break
	}

	return strings.TrimSpace(b.String())
}
