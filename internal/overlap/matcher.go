package overlap

import (
	"cmp"
	"slices"

	"github.com/ayanbhoumick/Plagiarism/internal/textutil"
)

// Unlimited disables the MaxResults cap.
const Unlimited = -1

// MatchOptions tunes MatchSentences. Start from DefaultMatchOptions; zero
// MinLength and MaxResults take their defaults.
type MatchOptions struct {
	// Threshold is the minimum similarity kept. Zero keeps every scored
	// pair; a negative value selects the default 0.65.
	Threshold float64
	// MinLength is the exclusive sentence length floor in characters.
	// Default 20; negative disables the floor.
	MinLength int
	// MaxResults caps the returned matches. Default 50; Unlimited disables.
	MaxResults int
}

// DefaultMatchOptions returns the standard thresholds.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		Threshold:  0.65,
		MinLength:  textutil.DefaultMinSentenceLength,
		MaxResults: 50,
	}
}

func (o MatchOptions) normalized() MatchOptions {
	d := DefaultMatchOptions()
	if o.Threshold < 0 {
		o.Threshold = d.Threshold
	}
	switch {
	case o.MinLength == 0:
		o.MinLength = d.MinLength
	case o.MinLength < 0:
		o.MinLength = 0
	}
	switch {
	case o.MaxResults == 0:
		o.MaxResults = d.MaxResults
	case o.MaxResults < 0:
		o.MaxResults = Unlimited
	}
	return o
}

// MatchSentences finds sentences of textA and textB that are near-identical.
// Both sides are split into sentences and vectorized together in a space
// private to this call. Every pair scoring at least opts.Threshold is kept,
// ordered by similarity descending with ties in discovery order, then capped
// at opts.MaxResults.
//
// Internal failures never propagate: the report carries no matches and Err
// describes the failure.
func MatchSentences(textA, textB string, opts MatchOptions) MatchReport {
	opts = opts.normalized()

	sentsA := textutil.SplitSentences(textA, opts.MinLength)
	sentsB := textutil.SplitSentences(textB, opts.MinLength)
	report := MatchReport{
		Matches:    []SentenceMatch{},
		SentencesA: len(sentsA),
		SentencesB: len(sentsB),
	}
	if len(sentsA) == 0 || len(sentsB) == 0 {
		return report
	}

	_, vectors, err := textutil.Vectorize(slices.Concat(sentsA, sentsB))
	if err != nil {
		report.Err = err
		return report
	}
	vecA, vecB := vectors[:len(sentsA)], vectors[len(sentsA):]

	var matches []SentenceMatch
	for i, va := range vecA {
		for j, vb := range vecB {
			sim, err := textutil.Cosine(va, vb)
			if err != nil {
				report.Err = err
				return report
			}
			if sim < opts.Threshold {
				continue
			}
			matches = append(matches, SentenceMatch{
				SentenceA:  sentsA[i],
				SentenceB:  sentsB[j],
				IndexA:     i,
				IndexB:     j,
				Similarity: sim,
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b SentenceMatch) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})
	report.Total = len(matches)
	if opts.MaxResults != Unlimited && len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}
	if matches != nil {
		report.Matches = matches
	}
	return report
}
