package usecase

import (
	"fmt"
	"strings"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/rules"
)

const (
	claimAmountVeryHigh = 500000.0
	claimAmountHigh     = 200000.0

	claimRiskHighThreshold   = 60.0
	claimRiskMediumThreshold = 30.0
)

// ClaimScoringUseCase applies the rule-based claim risk score. The rules are
// additive with a [0,100] clamp; every input yields a score.
type ClaimScoringUseCase struct {
	table *rules.Table
}

func NewClaimScoringUseCase(table *rules.Table) *ClaimScoringUseCase {
	return &ClaimScoringUseCase{table: table}
}

func (uc *ClaimScoringUseCase) Score(claim domain.ClaimInput) domain.ClaimRiskScore {
	score := 0.0
	var reasons []string

	switch {
	case claim.Amount > claimAmountVeryHigh:
		score += 40
		reasons = append(reasons, "Claim amount is very high.")
	case claim.Amount > claimAmountHigh:
		score += 25
		reasons = append(reasons, "Claim amount is high.")
	}

	switch {
	case claim.PreviousClaimsCount > 3:
		score += 25
		reasons = append(reasons, "Customer has many previous claims.")
	case claim.PreviousClaimsCount > 1:
		score += 10
		reasons = append(reasons, "Customer has some previous claims.")
	}

	lowered := strings.ToLower(claim.Description)
	var hits []string
	for _, word := range uc.table.ClaimScoring.SuspiciousWords {
		if strings.Contains(lowered, word) {
			hits = append(hits, word)
		}
	}
	if len(hits) > 0 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("Suspicious keywords found: %s", strings.Join(hits, ", ")))
	}

	if claim.IsThirdParty {
		score += 10
		reasons = append(reasons, "Third-party claim.")
	}

	if score > 100 {
		score = 100
	}

	riskLevel := "Low"
	switch {
	case score >= claimRiskHighThreshold:
		riskLevel = "High"
	case score >= claimRiskMediumThreshold:
		riskLevel = "Medium"
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No obvious fraud indicators detected.")
	}

	return domain.ClaimRiskScore{
		ClaimID:   claim.ClaimID,
		RiskLevel: riskLevel,
		Score:     score,
		Reasons:   reasons,
	}
}
