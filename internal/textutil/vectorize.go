package textutil

import (
	"errors"
	"maps"
	"math"
	"slices"
)

// ErrEmptyVocabulary reports that none of the inputs produced a usable token.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// VectorSpace maps vocabulary terms to vector columns for a single
// vectorization call.
type VectorSpace struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Vector is a dense TF-IDF weight vector aligned with one VectorSpace.
type Vector []float64

// Dim returns the number of columns (vocabulary size).
func (s *VectorSpace) Dim() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// Terms returns the vocabulary in column order.
func (s *VectorSpace) Terms() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.terms)
}

// Column returns the column index for term.
func (s *VectorSpace) Column(term string) (int, bool) {
	if s == nil {
		return 0, false
	}
	col, ok := s.index[term]
	return col, ok
}

// IDF returns the inverse document frequency weight for term.
func (s *VectorSpace) IDF(term string) (float64, bool) {
	col, ok := s.Column(term)
	if !ok {
		return 0, false
	}
	return s.idf[col], true
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Vectorize builds a vector space over docs and returns one vector per
// document in input order. Term frequency is the term count divided by the
// document's token count; it is multiplied by the smoothed IDF from Corpus.
// Columns follow the sorted vocabulary, so identical inputs always produce
// identical output.
func Vectorize(docs []string) (*VectorSpace, []Vector, error) {
	tokenized := make([][]string, len(docs))
	corpus := NewCorpus()
	for i, doc := range docs {
		tokenized[i] = Tokenize(doc)
		corpus.Add(tokenized[i])
	}

	idf := corpus.IDF()
	if len(idf) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	terms := slices.Sorted(maps.Keys(idf))
	space := &VectorSpace{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	for col, term := range terms {
		space.index[term] = col
		space.idf[col] = idf[term]
	}

	vectors := make([]Vector, len(tokenized))
	for i, tokens := range tokenized {
		vec := make(Vector, len(terms))
		if len(tokens) > 0 {
			for _, token := range tokens {
				vec[space.index[token]]++
			}
			total := float64(len(tokens))
			for col, count := range vec {
				if count == 0 {
					continue
				}
				vec[col] = count / total * space.idf[col]
			}
		}
		vectors[i] = vec
	}
	return space, vectors, nil
}
