package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinSentenceLength is the default character floor for SplitSentences.
const DefaultMinSentenceLength = 20

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on runs of sentence-terminal punctuation and
// returns the trimmed fragments whose length in characters is strictly
// greater than minLen. Negative floors are treated as zero.
func SplitSentences(text string, minLen int) []string {
	if minLen < 0 {
		minLen = 0
	}
	parts := sentenceBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= minLen {
			continue
		}
		out = append(out, part)
	}
	return out
}
