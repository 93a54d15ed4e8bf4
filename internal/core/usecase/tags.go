package usecase

import (
	"sort"
	"strings"

	"github.com/claimsight/claimsight/internal/core/domain"
)

// generateTags derives categorical tags from the final type, the extracted
// fields, and the fraud signals. The result is a set rendered in ascending
// lexical order.
func generateTags(docType string, fields []domain.ExtractionField, signals []domain.FraudSignal) []string {
	set := map[string]struct{}{
		strings.ReplaceAll(strings.ToLower(docType), " ", "-"): {},
	}

	for _, f := range fields {
		if f.Value == nil || *f.Value == "" {
			continue
		}
		if strings.Contains(f.Name, "Amount") {
			set["amount-detected"] = struct{}{}
		}
		if f.Name == "Claim Number" {
			set["claim-identified"] = struct{}{}
		}
	}

	if len(signals) > 0 {
		set["fraud-review"] = struct{}{}
	}
	if docType == "Invoice" {
		set["finance"] = struct{}{}
	}
	if docType == "Claim Form" {
		set["claims"] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// buildHighlights collects the phrases worth surfacing to a reviewer: the
// matched keywords first, then every non-empty extracted value except the
// placeholder Note. First occurrence wins; later duplicates are dropped.
func buildHighlights(keywords []string, fields []domain.ExtractionField) []string {
	seen := make(map[string]struct{}, len(keywords)+len(fields))
	out := make([]string, 0, len(keywords)+len(fields))

	add := func(phrase string) {
		if phrase == "" {
			return
		}
		if _, dup := seen[phrase]; dup {
			return
		}
		seen[phrase] = struct{}{}
		out = append(out, phrase)
	}

	for _, kw := range keywords {
		add(kw)
	}
	for _, f := range fields {
		if f.Name == noteFieldName || f.Value == nil {
			continue
		}
		add(*f.Value)
	}
	return out
}
