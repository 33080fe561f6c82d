package overlap

import (
	"cmp"
	"slices"
	"strings"
)

// Side selects one document of a matched pair.
type Side int

const (
	SideA Side = iota
	SideB
)

// SentencesFor returns the matched sentences of one side in match order.
func SentencesFor(matches []SentenceMatch, side Side) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if side == SideA {
			out = append(out, m.SentenceA)
		} else {
			out = append(out, m.SentenceB)
		}
	}
	return out
}

// Highlight wraps every occurrence of each sentence in text with open and
// close. Sentences are applied in order to the progressively marked text, so
// a sentence that contains an earlier one ends up with nested markers.
// Sentences that do not occur verbatim are skipped, and a repeated sentence
// is applied once.
func Highlight(text string, sentences []string, open, close string) string {
	seen := make(map[string]struct{}, len(sentences))
	for _, sentence := range sentences {
		if sentence == "" {
			continue
		}
		if _, ok := seen[sentence]; ok {
			continue
		}
		seen[sentence] = struct{}{}
		if !strings.Contains(text, sentence) {
			continue
		}
		text = strings.ReplaceAll(text, sentence, open+sentence+close)
	}
	return text
}

// Span is a half-open byte range [Start, End) of a document's text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Spans locates every occurrence of each sentence in text and returns the
// covered ranges sorted and merged so that no two spans overlap or touch.
func Spans(text string, sentences []string) []Span {
	var spans []Span
	for _, sentence := range sentences {
		if sentence == "" {
			continue
		}
		offset := 0
		for {
			idx := strings.Index(text[offset:], sentence)
			if idx < 0 {
				break
			}
			start := offset + idx
			spans = append(spans, Span{Start: start, End: start + len(sentence)})
			offset = start + len(sentence)
		}
	}
	if len(spans) == 0 {
		return []Span{}
	}

	slices.SortFunc(spans, func(a, b Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// RenderSpans wraps each span of text with open and close. Spans must be
// sorted and disjoint, as returned by Spans; out-of-range spans are ignored.
func RenderSpans(text string, spans []Span, open, close string) string {
	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(open)+len(close)))
	cursor := 0
	for _, s := range spans {
		if s.Start < cursor || s.End > len(text) || s.Start >= s.End {
			continue
		}
		b.WriteString(text[cursor:s.Start])
		b.WriteString(open)
		b.WriteString(text[s.Start:s.End])
		b.WriteString(close)
		cursor = s.End
	}
	b.WriteString(text[cursor:])
	return b.String()
}
