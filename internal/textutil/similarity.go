package textutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch reports vectors that come from different spaces.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Cosine computes the cosine similarity between two vectors of the same space.
// Returns 0 if either vector has zero norm. The result is clamped to [0, 1]
// and is exactly symmetric in its arguments.
func Cosine(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 || dot == 0 {
		return 0, nil
	}
	score := dot / math.Sqrt(na*nb)
	return min(max(score, 0), 1), nil
}
