package usecase

import (
	"fmt"
	"math"
	"testing"

	"github.com/claimsight/claimsight/internal/core/domain"
)

func TestJaccardExactOverlap(t *testing.T) {
	a := tokenSet("the quick brown fox")
	b := tokenSet("the quick red fox")
	// Intersection {the, quick, fox}, union {the, quick, brown, red, fox}.
	if got := jaccard(a, b); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("expected 0.6, got %v", got)
	}
}

func TestJaccardEmptySets(t *testing.T) {
	if got := jaccard(tokenSet(""), tokenSet("anything")); got != 0 {
		t.Fatalf("expected 0 for empty set, got %v", got)
	}
	if got := jaccard(tokenSet("word"), tokenSet("")); got != 0 {
		t.Fatalf("expected 0 for empty set, got %v", got)
	}
}

func TestTokenSetIsCaseInsensitive(t *testing.T) {
	if got := jaccard(tokenSet("Invoice Amount"), tokenSet("invoice amount")); got != 1 {
		t.Fatalf("expected identical sets, got %v", got)
	}
}

func TestTopSimilarFiltersAndRanks(t *testing.T) {
	corpus := []domain.Document{
		{ID: "a", Filename: "a.txt", DocType: "Invoice", TextExcerpt: "alpha beta gamma"},
		{ID: "b", Filename: "b.txt", DocType: "Letter", TextExcerpt: "alpha beta gamma delta"},
		{ID: "c", Filename: "c.txt", DocType: "Invoice", TextExcerpt: "unrelated words entirely"},
	}

	got := topSimilar("alpha beta gamma delta", corpus, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 similar docs, got %d", len(got))
	}
	if got[0].DocumentID != "b" || got[0].Similarity != 1 {
		t.Fatalf("expected exact match first, got %+v", got[0])
	}
	if got[1].DocumentID != "a" {
		t.Fatalf("expected partial match second, got %+v", got[1])
	}
	if math.Abs(got[1].Similarity-0.75) > 1e-9 {
		t.Fatalf("expected similarity 0.75, got %v", got[1].Similarity)
	}
}

func TestTopSimilarCapsAtLimit(t *testing.T) {
	corpus := make([]domain.Document, 5)
	for i := range corpus {
		corpus[i] = domain.Document{
			ID:          fmt.Sprintf("doc-%d", i),
			TextExcerpt: "alpha beta",
		}
	}

	got := topSimilar("alpha beta", corpus, 3)
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
}

func TestTopSimilarTieKeepsRetrievalOrder(t *testing.T) {
	corpus := []domain.Document{
		{ID: "first", TextExcerpt: "alpha beta"},
		{ID: "second", TextExcerpt: "alpha beta"},
	}

	got := topSimilar("alpha beta", corpus, 3)
	if len(got) != 2 || got[0].DocumentID != "first" || got[1].DocumentID != "second" {
		t.Fatalf("expected stable retrieval order on ties, got %+v", got)
	}
}

func TestTopSimilarEmptyCorpus(t *testing.T) {
	got := topSimilar("anything", nil, 3)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
