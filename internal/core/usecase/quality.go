package usecase

import "unicode/utf8"

const (
	qualityShortText  = 300
	qualityMediumText = 2000

	qualityShortScore  = 50
	qualityMediumScore = 80
	qualityLongScore   = 90

	qualityNonPDFPenalty   = 5
	qualityNonASCIIPenalty = 10
)

// qualityScore rates how analysis-ready the extracted text is, on [0,100].
// Length bands count characters, not bytes. Longer text scores higher;
// non-PDF sources and non-ASCII noise (beyond newlines and tabs) each cost a
// fixed penalty.
func qualityScore(text string, fromPDF bool) int {
	chars := utf8.RuneCountInString(text)

	var score int
	switch {
	case chars < qualityShortText:
		score = qualityShortScore
	case chars < qualityMediumText:
		score = qualityMediumScore
	default:
		score = qualityLongScore
	}

	if !fromPDF {
		score -= qualityNonPDFPenalty
	}
	if hasNonASCII(text) {
		score -= qualityNonASCIIPenalty
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func hasNonASCII(text string) bool {
	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if r > 126 {
			return true
		}
	}
	return false
}
