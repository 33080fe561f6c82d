package overlap

// Document is one named submission.
type Document struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// ComparisonResult is the score for one unordered document pair. IndexA is
// always less than IndexB.
type ComparisonResult struct {
	DocA   string    `json:"doc_a"`
	DocB   string    `json:"doc_b"`
	IndexA int       `json:"index_a"`
	IndexB int       `json:"index_b"`
	Score  float64   `json:"score"`
	Risk   RiskLevel `json:"risk"`
	TextA  string    `json:"-"`
	TextB  string    `json:"-"`
}

// SentenceMatch pairs a sentence of document A with a near-identical sentence
// of document B. IndexA and IndexB are positions in each document's sentence
// list.
type SentenceMatch struct {
	SentenceA  string  `json:"sentence_a"`
	SentenceB  string  `json:"sentence_b"`
	IndexA     int     `json:"index_a"`
	IndexB     int     `json:"index_b"`
	Similarity float64 `json:"similarity"`
}

// MatchReport is the outcome of sentence matching for one pair.
type MatchReport struct {
	Matches []SentenceMatch `json:"matches"`
	// Total counts matches at or above the threshold before the result cap.
	Total      int `json:"total"`
	SentencesA int `json:"sentences_a"`
	SentencesB int `json:"sentences_b"`
	// Err records why matching produced no evidence. It is never returned
	// to callers as a failure.
	Err error `json:"-"`
}

// Truncated reports whether the result cap dropped matches.
func (r MatchReport) Truncated() bool {
	return r.Total > len(r.Matches)
}
