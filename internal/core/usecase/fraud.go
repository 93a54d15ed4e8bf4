package usecase

import (
	"fmt"
	"strings"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/rules"
)

const suspiciousLanguageLabel = "Suspicious language"

// detectFraudSignals applies the heuristic fraud rules. Rule A scans for
// suspicious wording and emits at most one medium signal naming every matched
// word. Rule B checks the type's required fields and emits one high signal
// per missing field, in declaration order. Rule A signals always precede
// Rule B signals.
func detectFraudSignals(docType, lowered string, fields []domain.ExtractionField, table *rules.Table) []domain.FraudSignal {
	var signals []domain.FraudSignal

	var matched []string
	for _, word := range table.Fraud.SuspiciousWords {
		if strings.Contains(lowered, word) {
			matched = append(matched, word)
		}
	}
	if len(matched) > 0 {
		signals = append(signals, domain.FraudSignal{
			Label:       suspiciousLanguageLabel,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("Suspicious words found in document text: %s", strings.Join(matched, ", ")),
		})
	}

	byName := make(map[string]domain.ExtractionField, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	for _, required := range table.RequiredFor(docType) {
		field, ok := byName[required]
		if ok && field.Value != nil && *field.Value != "" {
			continue
		}
		signals = append(signals, domain.FraudSignal{
			Label:       fmt.Sprintf("Missing %s", required),
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("Mandatory field %q was not found in a document classified as %s.", required, docType),
		})
	}

	return signals
}
