package usecase

import (
	"strings"
	"sync"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/rules"
)

// keywordClassification is the output of the keyword engine: the winning
// type, the keywords that hit, and the hit ratio in [0,1].
type keywordClassification struct {
	DocType string
	Matched []string
	Score   float64
}

// classifyKeywords scores every category by keyword overlap against the
// lower-cased text. The strictly greatest score wins; exact ties resolve to
// the earlier category, which is why the table is an ordered slice. When no
// keyword hits at all the result is "Other" at score zero.
func classifyKeywords(lowered string, categories []rules.Category) keywordClassification {
	best := keywordClassification{DocType: domain.DocTypeOther, Matched: []string{}}
	for _, cat := range categories {
		var hits []string
		for _, kw := range cat.Keywords {
			if strings.Contains(lowered, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) == 0 || len(cat.Keywords) == 0 {
			continue
		}
		score := float64(len(hits)) / float64(len(cat.Keywords))
		if score > best.Score {
			best = keywordClassification{DocType: cat.DocType, Matched: hits, Score: score}
		}
	}
	return best
}

const (
	pageOtherConfidence = 0.4
	pageBaseConfidence  = 0.6
	pageScoreWeight     = 0.4
)

// classifyPages runs the keyword engine over each page independently. Pages
// carry no cross-dependencies, so the fan-out is one goroutine per page
// writing into its own slot.
func classifyPages(pages []string, categories []rules.Category) []domain.PageClassification {
	out := make([]domain.PageClassification, len(pages))

	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			cls := classifyKeywords(strings.ToLower(page), categories)
			confidence := pageOtherConfidence
			if cls.DocType != domain.DocTypeOther {
				confidence = pageBaseConfidence + cls.Score*pageScoreWeight
			}
			out[i] = domain.PageClassification{
				Page:       i + 1,
				DocType:    cls.DocType,
				Confidence: clamp01(confidence),
			}
		}(i, page)
	}
	wg.Wait()

	return out
}
