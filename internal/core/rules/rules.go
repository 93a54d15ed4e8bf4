// Package rules holds the static classification, extraction, and fraud rule
// tables. The tables are data, not code: they are parsed from an embedded
// YAML document exactly once at startup and are immutable afterwards.
// Ordering is significant throughout: category order breaks classification
// ties and field order drives output order, so everything stays in slices,
// never maps.
package rules

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

type ValueShape string

const (
	ShapeIdentifier ValueShape = "identifier"
	ShapeAmount     ValueShape = "amount"
	ShapeDate       ValueShape = "date"
	ShapeName       ValueShape = "name"
)

var shapePatterns = map[ValueShape]string{
	ShapeIdentifier: `([A-Za-z0-9][A-Za-z0-9/-]*)`,
	ShapeAmount:     `(?:(?:rs\.?|inr|usd|eur|\$|€|£)\s*)?([0-9][0-9,]*(?:\.[0-9]+)?)`,
	ShapeDate:       `([0-9]{1,4}[/-][0-9]{1,2}[/-][0-9]{1,4})`,
	ShapeName:       `([A-Za-z][A-Za-z.'-]*(?:[ \t]+[A-Za-z][A-Za-z.'-]*){0,3})`,
}

type Category struct {
	DocType  string   `yaml:"doc_type"`
	Keywords []string `yaml:"keywords"`
}

// FieldRule matches one labelled value in the raw text. The compiled pattern
// accepts any label variant, an optional delimiter, and a shaped value token.
type FieldRule struct {
	Name       string     `yaml:"name"`
	Labels     []string   `yaml:"labels"`
	Shape      ValueShape `yaml:"shape"`
	Confidence float64    `yaml:"confidence"`

	pattern *regexp.Regexp
}

// Extract returns the first value in text matching this rule, or "" when
// absent.
func (r *FieldRule) Extract(text string) string {
	m := r.pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

type TypeFields struct {
	DocType string      `yaml:"doc_type"`
	Fields  []FieldRule `yaml:"fields"`
}

type RequiredFields struct {
	DocType string   `yaml:"doc_type"`
	Fields  []string `yaml:"fields"`
}

type FraudRules struct {
	SuspiciousWords []string         `yaml:"suspicious_words"`
	RequiredFields  []RequiredFields `yaml:"required_fields"`
}

type ClaimScoringRules struct {
	SuspiciousWords []string `yaml:"suspicious_words"`
}

type Table struct {
	Categories   []Category        `yaml:"categories"`
	Fields       []TypeFields      `yaml:"fields"`
	Fraud        FraudRules        `yaml:"fraud"`
	ClaimScoring ClaimScoringRules `yaml:"claim_scoring"`
}

// Load parses and compiles the embedded rule tables.
func Load() (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(rulesYAML, &t); err != nil {
		return nil, fmt.Errorf("parse rules yaml: %w", err)
	}
	if len(t.Categories) == 0 {
		return nil, fmt.Errorf("rules yaml defines no categories")
	}

	for ti := range t.Fields {
		for fi := range t.Fields[ti].Fields {
			rule := &t.Fields[ti].Fields[fi]
			pattern, err := compileFieldPattern(rule)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", rule.Name, err)
			}
			rule.pattern = pattern
		}
	}
	return &t, nil
}

// FieldsFor returns the ordered field rules for a document type, nil when the
// type has no table.
func (t *Table) FieldsFor(docType string) []FieldRule {
	for _, tf := range t.Fields {
		if tf.DocType == docType {
			return tf.Fields
		}
	}
	return nil
}

// RequiredFor returns the required field names for a document type in
// declaration order.
func (t *Table) RequiredFor(docType string) []string {
	for _, rf := range t.Fraud.RequiredFields {
		if rf.DocType == docType {
			return rf.Fields
		}
	}
	return nil
}

func compileFieldPattern(rule *FieldRule) (*regexp.Regexp, error) {
	if len(rule.Labels) == 0 {
		return nil, fmt.Errorf("no label variants")
	}
	valuePattern, ok := shapePatterns[rule.Shape]
	if !ok {
		return nil, fmt.Errorf("unknown value shape %q", rule.Shape)
	}

	alts := make([]string, 0, len(rule.Labels))
	for _, label := range rule.Labels {
		alt := regexp.QuoteMeta(strings.ToLower(label))
		alt = strings.ReplaceAll(alt, ` `, `\s+`)
		alts = append(alts, alt)
	}

	expr := `(?i)\b(?:` + strings.Join(alts, "|") + `)\b\.?\s*[:#-]?\s*` + valuePattern
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	return pattern, nil
}
