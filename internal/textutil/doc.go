// Package textutil provides the lexical primitives behind overlap detection:
// tokenization, TF-IDF vectorization, cosine similarity and sentence
// segmentation.
//
// The primary use cases are:
//   - Building a fresh VectorSpace over the documents (or sentences) of one
//     comparison and projecting each input onto it
//   - Computing cosine similarity between vectors of the same space
//   - Splitting raw text into trimmed sentences above a length floor
//
// Tokenization applies NFKC normalization and Unicode case folding, splits on
// any rune that is not a letter, digit, mark or underscore, and drops tokens
// shorter than two runes. A VectorSpace is never reused between calls;
// vectors from different calls are not comparable.
package textutil
