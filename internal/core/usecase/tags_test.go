package usecase

import (
	"reflect"
	"testing"

	"github.com/claimsight/claimsight/internal/core/domain"
)

func TestGenerateTagsInvoiceWithAmount(t *testing.T) {
	amount := "1500.00"
	fields := []domain.ExtractionField{
		{Name: "Amount", Value: &amount, Confidence: 0.9},
	}
	signals := []domain.FraudSignal{
		{Label: "Missing Invoice Number", Severity: domain.SeverityHigh},
	}

	got := generateTags("Invoice", fields, signals)
	want := []string{"amount-detected", "finance", "fraud-review", "invoice"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateTagsClaimForm(t *testing.T) {
	number := "CLM-1"
	fields := []domain.ExtractionField{
		{Name: "Claim Number", Value: &number, Confidence: 0.9},
	}

	got := generateTags("Claim Form", fields, nil)
	want := []string{"claim-form", "claim-identified", "claims"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateTagsOtherIsJustTypeTag(t *testing.T) {
	got := generateTags(domain.DocTypeOther, nil, nil)
	want := []string{"other"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildHighlightsKeywordsThenValuesDeduped(t *testing.T) {
	value := "INV-1"
	dup := "invoice"
	note := noteFieldValue
	fields := []domain.ExtractionField{
		{Name: "Invoice Number", Value: &value},
		{Name: "Source", Value: &dup},
		{Name: "Missing", Value: nil},
		{Name: noteFieldName, Value: &note},
	}

	got := buildHighlights([]string{"invoice", "amount due"}, fields)
	want := []string{"invoice", "amount due", "INV-1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
