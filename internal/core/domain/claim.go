package domain

// ClaimInput is the payload for rule-based claim risk scoring.
type ClaimInput struct {
	ClaimID             string  `json:"claim_id"`
	Amount              float64 `json:"amount"`
	Description         string  `json:"description"`
	IsThirdParty        bool    `json:"is_third_party"`
	PreviousClaimsCount int     `json:"previous_claims_count"`
}

type ClaimRiskScore struct {
	ClaimID   string   `json:"claim_id"`
	RiskLevel string   `json:"risk_level"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}
