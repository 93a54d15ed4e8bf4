package usecase

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/ports"
	"github.com/claimsight/claimsight/internal/core/rules"
)

// AnalyzeConfig carries the per-deployment knobs of the pipeline.
type AnalyzeConfig struct {
	SimilarityLimit int
	ExcerptMaxChars int
}

func (c AnalyzeConfig) normalize() AnalyzeConfig {
	if c.SimilarityLimit <= 0 {
		c.SimilarityLimit = defaultSimilarityLimit
	}
	if c.ExcerptMaxChars <= 0 {
		c.ExcerptMaxChars = domain.ExcerptMaxChars
	}
	return c
}

// AnalyzeDocumentUseCase runs the full synchronous analysis pipeline over one
// uploaded document: extraction, classification, score fusion, field
// extraction, fraud rules, quality, tags, per-page map, and the tenant-scoped
// similarity search. Persistence and event publishing are best-effort side
// effects; the computed result is returned even when they fail.
type AnalyzeDocumentUseCase struct {
	extractor ports.TextExtractor
	store     ports.DocumentStore
	queue     ports.MessageQueue
	table     *rules.Table
	logger    *slog.Logger
	cfg       AnalyzeConfig
}

func NewAnalyzeDocumentUseCase(
	extractor ports.TextExtractor,
	store ports.DocumentStore,
	queue ports.MessageQueue,
	table *rules.Table,
	logger *slog.Logger,
	cfg AnalyzeConfig,
) *AnalyzeDocumentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeDocumentUseCase{
		extractor: extractor,
		store:     store,
		queue:     queue,
		table:     table,
		logger:    logger,
		cfg:       cfg.normalize(),
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(
	ctx context.Context,
	tenantID, filename, contentType string,
	data []byte,
) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze document", errors.New("tenant id is required"))
	}
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrEmptyInput, "analyze document", errors.New("zero-byte upload"))
	}

	fromPDF := IsPDFUpload(contentType, filename)
	pages, err := uc.extractor.Pages(ctx, data, fromPDF)
	if err != nil {
		return nil, err
	}

	fullText := strings.Join(pages, "\n")
	if strings.TrimSpace(fullText) == "" {
		return nil, domain.WrapError(domain.ErrNoTextExtracted, "analyze document", errors.New("extraction yielded only whitespace"))
	}

	// Corpus snapshot for the similarity scan; a read failure degrades to an
	// empty similar-document list instead of failing the analysis.
	corpus, err := uc.store.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Warn("corpus_read_failed", "tenant_id", tenantID, "error", err)
		corpus = nil
	}

	lowered := strings.ToLower(fullText)

	cls := classifyKeywords(lowered, uc.table.Categories)
	layout := layoutScore(fullText, len(pages))
	semantic := semanticScore(cls.DocType)
	final := combineConfidence(cls.Score, semantic, layout)

	fields := extractFields(cls.DocType, fullText, uc.table)
	signals := detectFraudSignals(cls.DocType, lowered, fields, uc.table)

	result := &domain.AnalysisResult{
		DocType:         cls.DocType,
		Confidence:      round3(final),
		KeywordsMatched: cls.Matched,
		Breakdown: domain.EngineBreakdown{
			Keyword:  round3(cls.Score),
			Semantic: round3(semantic),
			Layout:   round3(layout),
			Final:    round3(final),
		},
		ExtractedFields:  fields,
		FraudSignals:     signals,
		Tags:             generateTags(cls.DocType, fields, signals),
		QualityScore:     qualityScore(fullText, fromPDF),
		SimilarDocs:      topSimilar(fullText, corpus, uc.cfg.SimilarityLimit),
		PageMap:          classifyPages(pages, uc.table.Categories),
		HighlightPhrases: buildHighlights(cls.Matched, fields),
	}

	result.DocumentID = uc.persist(ctx, tenantID, filename, fullText, result)
	return result, nil
}

// persist saves the analyzed document and publishes the analyzed event. Both
// are best-effort: failure is logged and the analysis still returns.
func (uc *AnalyzeDocumentUseCase) persist(
	ctx context.Context,
	tenantID, filename, fullText string,
	result *domain.AnalysisResult,
) string {
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Filename:    filename,
		DocType:     result.DocType,
		TextExcerpt: domain.Truncate(fullText, uc.cfg.ExcerptMaxChars),
		CreatedAt:   now,
	}

	if err := uc.store.Save(ctx, doc); err != nil {
		uc.logger.Warn("document_persist_failed", "tenant_id", tenantID, "filename", filename, "error", err)
		return ""
	}

	if uc.queue != nil {
		event := domain.AnalyzedEvent{
			DocumentID:   doc.ID,
			TenantID:     tenantID,
			DocType:      result.DocType,
			Confidence:   result.Confidence,
			FraudSignals: len(result.FraudSignals),
			AnalyzedAt:   now,
		}
		if err := uc.queue.PublishDocumentAnalyzed(ctx, event); err != nil {
			uc.logger.Warn("analyzed_event_publish_failed", "document_id", doc.ID, "error", err)
		}
	}

	return doc.ID
}

// IsPDFUpload derives the format hint from the declared content type or the
// filename suffix.
func IsPDFUpload(contentType, filename string) bool {
	if strings.EqualFold(strings.TrimSpace(contentType), "application/pdf") {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
