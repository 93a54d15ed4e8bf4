package usecase

import (
	"sort"
	"strings"
	"sync"

	"github.com/claimsight/claimsight/internal/core/domain"
)

const defaultSimilarityLimit = 3

// tokenSet lower-cases and whitespace-tokenizes text into a word set.
func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// jaccard is intersection over union of two token sets; zero when either set
// is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	intersection := 0
	for token := range small {
		if _, ok := large[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// topSimilar ranks the tenant corpus snapshot against the current text.
// Scores are computed concurrently per stored document into indexed slots so
// the stable descending sort still observes retrieval order on ties.
// Zero-similarity documents never appear; at most limit entries return.
func topSimilar(currentText string, corpus []domain.Document, limit int) []domain.SimilarDocument {
	if limit <= 0 {
		limit = defaultSimilarityLimit
	}
	if len(corpus) == 0 {
		return []domain.SimilarDocument{}
	}

	current := tokenSet(currentText)
	scores := make([]float64, len(corpus))

	var wg sync.WaitGroup
	for i := range corpus {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scores[i] = jaccard(current, tokenSet(corpus[i].TextExcerpt))
		}(i)
	}
	wg.Wait()

	out := make([]domain.SimilarDocument, 0, limit)
	for i, doc := range corpus {
		if scores[i] <= 0 {
			continue
		}
		out = append(out, domain.SimilarDocument{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			DocType:    doc.DocType,
			Similarity: scores[i],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
