package overlap

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ayanbhoumick/Plagiarism/internal/services"
	"github.com/ayanbhoumick/Plagiarism/internal/textutil"
)

func TestCompareRequiresTwoDocuments(t *testing.T) {
	for _, docs := range [][]Document{nil, {{Name: "only.txt", Text: "single submission text"}}} {
		results, err := Compare(context.Background(), docs, CompareOptions{})
		if !errors.Is(err, ErrInsufficientDocuments) {
			t.Fatalf("expected ErrInsufficientDocuments, got %v", err)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("expected validation marker, got %v", err)
		}
		if results != nil {
			t.Fatalf("expected nil results, got %v", results)
		}
	}
}

func TestCompareEmptyVocabulary(t *testing.T) {
	docs := []Document{{Name: "a", Text: ""}, {Name: "b", Text: "  ... !!! "}}
	_, err := Compare(context.Background(), docs, CompareOptions{})
	if !errors.Is(err, textutil.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
	if !services.Recoverable(err) {
		t.Fatalf("expected recoverable error, got %v", err)
	}
}

func TestCompareRejectsInvalidPolicy(t *testing.T) {
	docs := []Document{{Name: "a", Text: essayPhotosynthesis}, {Name: "b", Text: essayRomanRoads}}
	_, err := Compare(context.Background(), docs, CompareOptions{Policy: RiskPolicy{ModerateAbove: 0.9, CriticalAbove: 0.1}})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCompareThreeDocumentsCanonicalOrder(t *testing.T) {
	docs := []Document{
		{Name: "alice.txt", Text: essayPhotosynthesis},
		{Name: "bob.txt", Text: essayPhotosynthesisCopied},
		{Name: "carol.txt", Text: essayRomanRoads},
	}
	results, err := Compare(context.Background(), docs, CompareOptions{})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for k, r := range results {
		if r.IndexA != want[k][0] || r.IndexB != want[k][1] {
			t.Fatalf("result %d covers (%d,%d), want %v", k, r.IndexA, r.IndexB, want[k])
		}
		if r.DocA != docs[r.IndexA].Name || r.DocB != docs[r.IndexB].Name {
			t.Fatalf("result %d names %s/%s", k, r.DocA, r.DocB)
		}
		if r.TextA != docs[r.IndexA].Text || r.TextB != docs[r.IndexB].Text {
			t.Fatalf("result %d does not carry raw texts", k)
		}
		if r.Score < 0 || r.Score > 1 {
			t.Fatalf("score out of range: %v", r.Score)
		}
		if r.Risk != ClassifyRisk(r.Score) {
			t.Fatalf("risk %s does not match score %v", r.Risk, r.Score)
		}
	}
	if results[0].Score <= results[1].Score || results[0].Score <= results[2].Score {
		t.Fatalf("copied pair should score highest: %+v", results)
	}
}

func TestComparePairCount(t *testing.T) {
	for n := 2; n <= 6; n++ {
		docs := make([]Document, n)
		for i := range docs {
			docs[i] = Document{Name: fmt.Sprintf("doc%d", i), Text: fmt.Sprintf("shared words plus marker%d", i)}
		}
		results, err := Compare(context.Background(), docs, CompareOptions{})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(results) != n*(n-1)/2 || len(results) != PairCount(n) {
			t.Fatalf("n=%d: got %d results", n, len(results))
		}
		seen := map[[2]int]bool{}
		prev := [2]int{-1, -1}
		for _, r := range results {
			key := [2]int{r.IndexA, r.IndexB}
			if r.IndexA >= r.IndexB || seen[key] {
				t.Fatalf("n=%d: bad pair %v", n, key)
			}
			if key[0] < prev[0] || (key[0] == prev[0] && key[1] <= prev[1]) {
				t.Fatalf("n=%d: pair %v out of order after %v", n, key, prev)
			}
			seen[key] = true
			prev = key
		}
	}
}

func TestCompareSymmetricScores(t *testing.T) {
	forward := []Document{{Name: "a", Text: essayPhotosynthesis}, {Name: "b", Text: essayPhotosynthesisCopied}}
	reverse := []Document{forward[1], forward[0]}

	fr, err := Compare(context.Background(), forward, CompareOptions{})
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	rr, err := Compare(context.Background(), reverse, CompareOptions{})
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if fr[0].Score != rr[0].Score {
		t.Fatalf("asymmetric: %v vs %v", fr[0].Score, rr[0].Score)
	}
}

func TestCompareIdenticalDocuments(t *testing.T) {
	docs := []Document{{Name: "a", Text: "The cat sat on the mat."}, {Name: "b", Text: "The cat sat on the mat."}}
	results, err := Compare(context.Background(), docs, CompareOptions{})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if results[0].Score != 1.0 || results[0].Risk != RiskCritical {
		t.Fatalf("got score %v risk %s", results[0].Score, results[0].Risk)
	}
}

func TestCompareDisjointDocuments(t *testing.T) {
	docs := []Document{
		{Name: "a", Text: "Volcanic eruptions reshape mountain landscapes dramatically."},
		{Name: "b", Text: "Jazz musicians improvise melodies during late evening sessions."},
	}
	results, err := Compare(context.Background(), docs, CompareOptions{})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if results[0].Score != 0 || results[0].Risk != RiskLow {
		t.Fatalf("got score %v risk %s", results[0].Score, results[0].Risk)
	}
	report := MatchSentences(docs[0].Text, docs[1].Text, DefaultMatchOptions())
	if len(report.Matches) != 0 || report.Err != nil {
		t.Fatalf("expected no matches, got %+v", report)
	}
}

func TestCompareWorkersMatchSequential(t *testing.T) {
	docs := []Document{
		{Name: "a", Text: essayPhotosynthesis},
		{Name: "b", Text: essayPhotosynthesisCopied},
		{Name: "c", Text: essayRomanRoads},
		{Name: "d", Text: essayRomanRoads + " " + essayPhotosynthesis},
		{Name: "e", Text: "Completely unrelated notes about baking sourdough bread."},
	}
	sequential, err := Compare(context.Background(), docs, CompareOptions{Workers: 1})
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	parallel, err := Compare(context.Background(), docs, CompareOptions{Workers: 4})
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if len(parallel) != len(sequential) {
		t.Fatalf("length mismatch %d vs %d", len(parallel), len(sequential))
	}
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, sequential[i], parallel[i])
		}
	}
}

func TestCompareCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docs := []Document{{Name: "a", Text: essayPhotosynthesis}, {Name: "b", Text: essayRomanRoads}}
	for _, workers := range []int{1, 3} {
		results, err := Compare(ctx, docs, CompareOptions{Workers: workers})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
		if results != nil {
			t.Fatalf("workers=%d: expected nil results", workers)
		}
	}
}
