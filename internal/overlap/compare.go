package overlap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ayanbhoumick/Plagiarism/internal/services"
	"github.com/ayanbhoumick/Plagiarism/internal/textutil"
)

// ErrInsufficientDocuments reports a comparison request with fewer than two
// documents.
var ErrInsufficientDocuments = errors.New("at least two documents are required")

const component = "overlap"

// CompareOptions tunes Compare. The zero value scores sequentially with
// DefaultRiskPolicy.
type CompareOptions struct {
	Policy  RiskPolicy
	Workers int
}

// Compare scores every unordered pair of docs and returns the results in
// (i, j) order with i < j. All documents share one vector space. Sentence
// evidence is not computed here; see MatchSentences.
//
// On error the returned slice is nil.
func Compare(ctx context.Context, docs []Document, opts CompareOptions) ([]ComparisonResult, error) {
	if len(docs) < 2 {
		return nil, services.Wrap(services.ErrValidation, component, "compare",
			fmt.Sprintf("got %d document(s)", len(docs)), ErrInsufficientDocuments)
	}
	policy := opts.Policy.orDefault()
	if err := policy.Validate(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "compare", "invalid risk policy", err)
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	_, vectors, err := textutil.Vectorize(texts)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "vectorize", "no document contains usable words", err)
	}

	pairs := pairIndexes(len(docs))
	results := make([]ComparisonResult, len(pairs))
	score := func(slot int) error {
		i, j := pairs[slot][0], pairs[slot][1]
		sim, err := textutil.Cosine(vectors[i], vectors[j])
		if err != nil {
			return services.Wrap(services.ErrInternal, component, "score",
				fmt.Sprintf("pair %d:%d", i, j), err)
		}
		results[slot] = ComparisonResult{
			DocA:   docs[i].Name,
			DocB:   docs[j].Name,
			IndexA: i,
			IndexB: j,
			Score:  sim,
			Risk:   policy.Classify(sim),
			TextA:  docs[i].Text,
			TextB:  docs[j].Text,
		}
		return nil
	}

	if opts.Workers <= 1 {
		for slot := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := score(slot); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for slot := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return score(slot)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// PairCount returns the number of unordered pairs among n documents.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

func pairIndexes(n int) [][2]int {
	pairs := make([][2]int, 0, PairCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
