// Package overlap scores lexical overlap between submitted documents and
// collects the sentence-level evidence behind each score.
//
// Compare vectorizes every document into one shared TF-IDF space, scores each
// unordered pair with cosine similarity and attaches a risk tier. Sentence
// evidence is computed lazily with MatchSentences for the pairs a caller
// selects, using a fresh vector space built from that pair's sentences only.
// Highlight and RenderSpans mark matched sentences inside the original text.
//
// Engine binds these functions to configuration and a logger. It holds no
// mutable state and is safe for concurrent use.
//
// Configuration dependencies:
//   - analysis.match_threshold, analysis.min_sentence_length, analysis.max_matches
//   - analysis.workers bounds concurrent pair scoring
//   - risk.moderate_above, risk.critical_above
package overlap
