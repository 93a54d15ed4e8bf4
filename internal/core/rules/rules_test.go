package rules

import "testing"

func TestLoadCompilesEmbeddedTables(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantOrder := []string{"Claim Form", "Inspection Report", "Invoice", "Policy Document", "Letter"}
	if len(table.Categories) != len(wantOrder) {
		t.Fatalf("expected %d categories, got %d", len(wantOrder), len(table.Categories))
	}
	for i, want := range wantOrder {
		if table.Categories[i].DocType != want {
			t.Fatalf("category %d: expected %q, got %q", i, want, table.Categories[i].DocType)
		}
	}

	if len(table.Fraud.SuspiciousWords) == 0 {
		t.Fatalf("expected fraud suspicious words")
	}
	if len(table.ClaimScoring.SuspiciousWords) == 0 {
		t.Fatalf("expected claim scoring suspicious words")
	}
}

func TestFieldsForReturnsOrderedRules(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	fields := table.FieldsFor("Invoice")
	if len(fields) != 3 {
		t.Fatalf("expected 3 invoice field rules, got %d", len(fields))
	}
	if fields[0].Name != "Invoice Number" || fields[1].Name != "Amount" || fields[2].Name != "Invoice Date" {
		t.Fatalf("unexpected invoice field order: %q, %q, %q", fields[0].Name, fields[1].Name, fields[2].Name)
	}

	if got := table.FieldsFor("Letter"); got != nil {
		t.Fatalf("expected nil rules for Letter, got %v", got)
	}
}

func TestRequiredForDeclarationOrder(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	required := table.RequiredFor("Claim Form")
	if len(required) != 2 || required[0] != "Claim Number" || required[1] != "Policy Number" {
		t.Fatalf("unexpected required fields: %v", required)
	}
	if got := table.RequiredFor("Letter"); got != nil {
		t.Fatalf("expected no required fields for Letter, got %v", got)
	}
}

func TestFieldRuleExtract(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	invoice := table.FieldsFor("Invoice")
	byName := map[string]*FieldRule{}
	for i := range invoice {
		byName[invoice[i].Name] = &invoice[i]
	}

	cases := []struct {
		field string
		text  string
		want  string
	}{
		{"Invoice Number", "Invoice No: INV-2024-007\nAmount Due: 1500.00", "INV-2024-007"},
		{"Invoice Number", "bill no. 42/A issued today", "42/A"},
		{"Amount", "Amount Due: 1500.00", "1500.00"},
		{"Amount", "Grand Total Rs. 12,500.50", "12,500.50"},
		{"Invoice Date", "Invoice Date: 12/04/2024", "12/04/2024"},
		{"Invoice Number", "no identifiers here", ""},
	}
	for _, tc := range cases {
		rule, ok := byName[tc.field]
		if !ok {
			t.Fatalf("missing rule %q", tc.field)
		}
		if got := rule.Extract(tc.text); got != tc.want {
			t.Fatalf("%s.Extract(%q) = %q, want %q", tc.field, tc.text, got, tc.want)
		}
	}
}

func TestExtractMatchesLabelCaseInsensitively(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	claim := table.FieldsFor("Claim Form")
	if claim[0].Name != "Claim Number" {
		t.Fatalf("expected Claim Number first, got %q", claim[0].Name)
	}
	if got := claim[0].Extract("CLAIM NUMBER: CLM/88/2026"); got != "CLM/88/2026" {
		t.Fatalf("expected CLM/88/2026, got %q", got)
	}
}
