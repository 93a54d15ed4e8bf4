// Package export renders an AnalysisResult as an XLSX workbook for
// reviewers who work outside the API.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/claimsight/claimsight/internal/core/domain"
)

const (
	sheetSummary = "Summary"
	sheetFields  = "Fields"
	sheetFraud   = "Fraud Signals"
	sheetSimilar = "Similar Documents"
	defaultSheet = "Sheet1"
)

// BuildAnalysisWorkbook returns XLSX bytes for one analysis.
func BuildAnalysisWorkbook(result *domain.AnalysisResult, filename string) ([]byte, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, result, filename); err != nil {
		return nil, err
	}
	if err := writeFieldsSheet(f, result.ExtractedFields); err != nil {
		return nil, err
	}
	if err := writeFraudSheet(f, result.FraudSignals); err != nil {
		return nil, err
	}
	if err := writeSimilarSheet(f, result.SimilarDocs); err != nil {
		return nil, err
	}

	// Drop the default sheet and make Summary active.
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(sheetSummary)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, result *domain.AnalysisResult, filename string) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	rows := [][]any{
		{"Filename", filename},
		{"Document ID", result.DocumentID},
		{"Document Type", result.DocType},
		{"Confidence", result.Confidence},
		{"Keyword Engine", result.Breakdown.Keyword},
		{"Semantic Engine", result.Breakdown.Semantic},
		{"Layout Engine", result.Breakdown.Layout},
		{"Quality Score", result.QualityScore},
		{"Tags", strings.Join(result.Tags, ", ")},
		{"Keywords Matched", strings.Join(result.KeywordsMatched, ", ")},
		{"Highlight Phrases", strings.Join(result.HighlightPhrases, ", ")},
	}
	for i, row := range rows {
		if err := writeRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetSummary, "A", "A", 22)
}

func writeFieldsSheet(f *excelize.File, fields []domain.ExtractionField) error {
	if _, err := f.NewSheet(sheetFields); err != nil {
		return err
	}
	if err := writeRow(f, sheetFields, 1, []any{"Field", "Value", "Confidence"}); err != nil {
		return err
	}
	for i, field := range fields {
		value := ""
		if field.Value != nil {
			value = *field.Value
		}
		if err := writeRow(f, sheetFields, i+2, []any{field.Name, value, field.Confidence}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetFields, "A", "B", 28)
}

func writeFraudSheet(f *excelize.File, signals []domain.FraudSignal) error {
	if _, err := f.NewSheet(sheetFraud); err != nil {
		return err
	}
	if err := writeRow(f, sheetFraud, 1, []any{"Label", "Severity", "Description"}); err != nil {
		return err
	}
	for i, signal := range signals {
		if err := writeRow(f, sheetFraud, i+2, []any{signal.Label, string(signal.Severity), signal.Description}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetFraud, "C", "C", 60)
}

func writeSimilarSheet(f *excelize.File, docs []domain.SimilarDocument) error {
	if _, err := f.NewSheet(sheetSimilar); err != nil {
		return err
	}
	if err := writeRow(f, sheetSimilar, 1, []any{"Document ID", "Filename", "Type", "Similarity"}); err != nil {
		return err
	}
	for i, doc := range docs {
		if err := writeRow(f, sheetSimilar, i+2, []any{doc.DocumentID, doc.Filename, doc.DocType, doc.Similarity}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSimilar, "A", "B", 36)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
