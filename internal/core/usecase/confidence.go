package usecase

import (
	"math"
	"strings"

	"github.com/claimsight/claimsight/internal/core/domain"
)

// Calibration constants carried over verbatim from the original scoring
// model. Do not re-derive: downstream consumers depend on the exact values
// until a learned replacement ships.
const (
	layoutEmptyScore     = 0.2
	layoutBaseScore      = 0.3
	layoutBillingBonus   = 0.3
	layoutLongLineBonus  = 0.2
	layoutMultiPageBonus = 0.1
	layoutLongLineMean   = 60
	layoutMultiPageCount = 3
	semanticKnownScore   = 0.85
	semanticOtherScore   = 0.4
	fusionWeightSemantic = 0.4
	fusionWeightKeyword  = 0.35
	fusionWeightLayout   = 0.25
)

// layoutScore estimates type-confidence from surface text statistics alone.
func layoutScore(text string, pageCount int) float64 {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return layoutEmptyScore
	}

	score := layoutBaseScore

	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "invoice") || strings.Contains(lowered, "bill") {
		score += layoutBillingBonus
	}

	total := 0
	for _, line := range lines {
		total += len(line)
	}
	if float64(total)/float64(len(lines)) > layoutLongLineMean {
		score += layoutLongLineBonus
	}

	if pageCount > layoutMultiPageCount {
		score += layoutMultiPageBonus
	}

	return clamp01(score)
}

// semanticScore stands in for a future learned model. Any replacement must
// keep the predicted-type → confidence-in-[0,1] contract.
func semanticScore(docType string) float64 {
	if docType == domain.DocTypeOther {
		return semanticOtherScore
	}
	return semanticKnownScore
}

// combineConfidence fuses the three engine scores. The type decision is
// never revisited here; only the confidence moves.
func combineConfidence(keyword, semantic, layout float64) float64 {
	return clamp01(fusionWeightSemantic*semantic + fusionWeightKeyword*keyword + fusionWeightLayout*layout)
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
