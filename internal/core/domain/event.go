package domain

import "time"

// AnalyzedEvent is published after a document has been analyzed and
// persisted. Consumers use it for audit logging; delivery is best-effort.
type AnalyzedEvent struct {
	DocumentID   string    `json:"document_id"`
	TenantID     string    `json:"tenant_id"`
	DocType      string    `json:"doc_type"`
	Confidence   float64   `json:"confidence"`
	FraudSignals int       `json:"fraud_signals"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}
