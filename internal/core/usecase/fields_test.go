package usecase

import (
	"testing"
)

func TestExtractFieldsInvoice(t *testing.T) {
	table := loadTable(t)

	text := "Invoice No: INV-2024-007\nAmount Due: 1500.00\nSome trailing content."
	fields := extractFields("Invoice", text, table)
	if len(fields) != 3 {
		t.Fatalf("expected 3 invoice fields, got %d", len(fields))
	}

	if fields[0].Name != "Invoice Number" || fields[0].Value == nil || *fields[0].Value != "INV-2024-007" {
		t.Fatalf("unexpected invoice number field: %+v", fields[0])
	}
	if fields[0].Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", fields[0].Confidence)
	}

	if fields[1].Name != "Amount" || fields[1].Value == nil || *fields[1].Value != "1500.00" {
		t.Fatalf("unexpected amount field: %+v", fields[1])
	}

	// Invoice Date is absent: nil value at the fixed low confidence.
	if fields[2].Name != "Invoice Date" || fields[2].Value != nil {
		t.Fatalf("expected absent invoice date, got %+v", fields[2])
	}
	if fields[2].Confidence != absentFieldConfidence {
		t.Fatalf("expected absent confidence %v, got %v", absentFieldConfidence, fields[2].Confidence)
	}
}

func TestExtractFieldsTypeWithoutTableYieldsNote(t *testing.T) {
	table := loadTable(t)

	fields := extractFields("Letter", "Dear sir, regards.", table)
	if len(fields) != 1 {
		t.Fatalf("expected single note field, got %d", len(fields))
	}
	note := fields[0]
	if note.Name != noteFieldName || note.Value == nil || *note.Value != noteFieldValue {
		t.Fatalf("unexpected note field: %+v", note)
	}
	if note.Confidence != noteFieldConfidence {
		t.Fatalf("expected note confidence %v, got %v", noteFieldConfidence, note.Confidence)
	}
}

func TestExtractFieldsClaimForm(t *testing.T) {
	table := loadTable(t)

	text := "Claim Number: CLM-555\nPolicy No: POL-12\nLoss Date: 01/02/2026"
	fields := extractFields("Claim Form", text, table)
	if len(fields) != 3 {
		t.Fatalf("expected 3 claim fields, got %d", len(fields))
	}
	for i, want := range []string{"CLM-555", "POL-12", "01/02/2026"} {
		if fields[i].Value == nil || *fields[i].Value != want {
			t.Fatalf("field %d: expected %q, got %+v", i, want, fields[i])
		}
	}
}
