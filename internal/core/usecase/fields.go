package usecase

import (
	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/rules"
)

const (
	absentFieldConfidence = 0.4
	noteFieldConfidence   = 0.3
	noteFieldName         = "Note"
	noteFieldValue        = "No specific structured fields extracted."
)

// extractFields applies the type-specific field rules against the raw text.
// Absence of a match is a normal low-confidence outcome: a searched-but-absent
// field keeps its slot with a nil value at confidence 0.4. Types without a
// field table yield the single placeholder Note field.
func extractFields(docType, text string, table *rules.Table) []domain.ExtractionField {
	fieldRules := table.FieldsFor(docType)
	if len(fieldRules) == 0 {
		note := noteFieldValue
		return []domain.ExtractionField{{
			Name:       noteFieldName,
			Value:      &note,
			Confidence: noteFieldConfidence,
		}}
	}

	out := make([]domain.ExtractionField, 0, len(fieldRules))
	for i := range fieldRules {
		rule := &fieldRules[i]
		value := rule.Extract(text)
		if value == "" {
			out = append(out, domain.ExtractionField{
				Name:       rule.Name,
				Confidence: absentFieldConfidence,
			})
			continue
		}
		out = append(out, domain.ExtractionField{
			Name:       rule.Name,
			Value:      &value,
			Confidence: rule.Confidence,
		})
	}
	return out
}
