// ABOUTME: Splits raw page text into bounded, overlapping segments
// ABOUTME: Window chunker snaps to sentence/word boundaries; sentence chunker never splits mid-sentence
package chunker

import (
	"regexp"
	"strings"
)

// MinSegmentLength is the minimum character length for a produced segment.
// Shorter fragments carry too little signal for embedding and are dropped.
const MinSegmentLength = 50

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Chunk splits text into windows of at most size characters with the given
// overlap. Each window tries to end at the last sentence terminator past the
// window midpoint, then at the last whitespace past the midpoint, then cuts
// at the raw window length. The cursor advances to end-overlap; when that
// would not move it forward it advances to end instead, so the walk always
// terminates.
func Chunk(text string, size, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end > len(text) {
			end = len(text)
		}

		if end < len(text) {
			mid := start + size/2
			if p := strings.LastIndexAny(text[start:end], ".!?"); p >= 0 && start+p > mid {
				end = start + p + 1
			} else if p := strings.LastIndexAny(text[start:end], " \t\n"); p >= 0 && start+p > mid {
				end = start + p
			}
		}

		chunk := strings.TrimSpace(text[start:end])
		if len(chunk) >= MinSegmentLength {
			chunks = append(chunks, chunk)
		}

		if end == len(text) {
			break
		}
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// ChunkSentences splits text into chunks of roughly size characters without
// ever cutting inside a sentence. Sentences accumulate into a buffer; when the
// next sentence would overflow the target size the buffer is closed and the
// next chunk is seeded with the closed chunk's last two sentences. A single
// sentence longer than size is kept whole. This is the policy used for long
// academic-style pages.
func ChunkSentences(text string, size int) []string {
	if len(text) <= size {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []string
	current := ""
	for _, sentence := range sentences {
		if current != "" && len(current)+len(sentence) > size {
			chunks = append(chunks, strings.TrimSpace(current))
			current = overlapTail(current) + ". " + sentence
			continue
		}
		if current == "" {
			current = sentence
		} else {
			current += ". " + sentence
		}
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	kept := chunks[:0]
	for _, c := range chunks {
		if len(c) >= MinSegmentLength {
			kept = append(kept, c)
		}
	}
	return kept
}

// splitSentences splits on runs of sentence terminators, dropping empties.
func splitSentences(text string) []string {
	parts := sentenceSplitter.Split(text, -1)
	var sentences []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// overlapTail returns the last two sentences of a closed chunk, used to seed
// the next chunk so context carries across the boundary.
func overlapTail(chunk string) string {
	parts := strings.Split(chunk, ". ")
	if len(parts) <= 2 {
		return chunk
	}
	return strings.Join(parts[len(parts)-2:], ". ")
}
