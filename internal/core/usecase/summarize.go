package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/core/ports"
)

const defaultSummaryMaxWords = 200

// PolicySummaryUseCase produces a naive first-N-words digest of an uploaded
// policy document. The truncation baseline is deliberate; a model-backed
// summarizer can replace it behind the same contract.
type PolicySummaryUseCase struct {
	extractor ports.TextExtractor
	maxWords  int
}

func NewPolicySummaryUseCase(extractor ports.TextExtractor, maxWords int) *PolicySummaryUseCase {
	if maxWords <= 0 {
		maxWords = defaultSummaryMaxWords
	}
	return &PolicySummaryUseCase{extractor: extractor, maxWords: maxWords}
}

func (uc *PolicySummaryUseCase) Summarize(
	ctx context.Context,
	filename, contentType string,
	data []byte,
) (*domain.PolicySummary, error) {
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrEmptyInput, "summarize policy", errors.New("zero-byte upload"))
	}

	pages, err := uc.extractor.Pages(ctx, data, IsPDFUpload(contentType, filename))
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return nil, domain.WrapError(domain.ErrNoTextExtracted, "summarize policy", errors.New("extraction yielded only whitespace"))
	}

	words := strings.Fields(text)
	summary := text
	if len(words) > uc.maxWords {
		summary = strings.Join(words[:uc.maxWords], " ")
	}

	return &domain.PolicySummary{
		Summary:   summary,
		WordCount: len(strings.Fields(summary)),
	}, nil
}
