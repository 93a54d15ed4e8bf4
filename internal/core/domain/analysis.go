package domain

// DocTypeOther is the fallback classification when no keyword table matches.
const DocTypeOther = "Other"

type FraudSeverity string

const (
	SeverityLow    FraudSeverity = "low"
	SeverityMedium FraudSeverity = "medium"
	SeverityHigh   FraudSeverity = "high"
)

// ExtractionField is one structured field pulled from the document text.
// Value is nil when the field was searched for but not found; Confidence is
// always set.
type ExtractionField struct {
	Name       string  `json:"name"`
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

type FraudSignal struct {
	Label       string        `json:"label"`
	Severity    FraudSeverity `json:"severity"`
	Description string        `json:"description"`
}

// PageClassification maps a 1-based page number to its predicted type.
type PageClassification struct {
	Page       int     `json:"page"`
	DocType    string  `json:"doc_type"`
	Confidence float64 `json:"confidence"`
}

// SimilarDocument is a previously stored document from the same tenant with
// strictly positive token-set overlap.
type SimilarDocument struct {
	DocumentID string  `json:"document_id"`
	Filename   string  `json:"filename"`
	DocType    string  `json:"doc_type"`
	Similarity float64 `json:"similarity"`
}

// EngineBreakdown holds the three independent confidence contributions and
// their fused final value.
type EngineBreakdown struct {
	Keyword  float64 `json:"keyword_engine"`
	Semantic float64 `json:"semantic_engine"`
	Layout   float64 `json:"layout_engine"`
	Final    float64 `json:"final_confidence"`
}

// AnalysisResult aggregates everything the pipeline derives from one upload.
// It is returned to the caller; only the Document excerpt is persisted.
type AnalysisResult struct {
	DocumentID       string               `json:"document_id"`
	DocType          string               `json:"doc_type"`
	Confidence       float64              `json:"confidence"`
	KeywordsMatched  []string             `json:"keywords_matched"`
	Breakdown        EngineBreakdown      `json:"engine_breakdown"`
	ExtractedFields  []ExtractionField    `json:"extracted_fields"`
	FraudSignals     []FraudSignal        `json:"fraud_signals"`
	Tags             []string             `json:"tags"`
	QualityScore     int                  `json:"quality_score"`
	SimilarDocs      []SimilarDocument    `json:"similar_docs"`
	PageMap          []PageClassification `json:"page_map"`
	HighlightPhrases []string             `json:"highlight_phrases"`
}

// PolicySummary is the first-N-words digest of an uploaded policy document.
type PolicySummary struct {
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
}
