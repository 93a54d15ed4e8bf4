package ports

import (
	"context"

	"github.com/claimsight/claimsight/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for the synchronous analysis pipeline.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, tenantID, filename, contentType string, data []byte) (*domain.AnalysisResult, error)
}

// PolicySummarizer produces a first-N-words digest of an uploaded policy document.
type PolicySummarizer interface {
	Summarize(ctx context.Context, filename, contentType string, data []byte) (*domain.PolicySummary, error)
}

// ClaimScorer applies the rule-based claim risk score. It is total: every
// input yields a score.
type ClaimScorer interface {
	Score(claim domain.ClaimInput) domain.ClaimRiskScore
}
