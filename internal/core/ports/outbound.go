package ports

import (
	"context"

	"github.com/claimsight/claimsight/internal/core/domain"
)

// TextExtractor turns raw upload bytes into an ordered sequence of per-page
// text. pdf selects the PDF path; otherwise the bytes must decode as text.
type TextExtractor interface {
	Pages(ctx context.Context, data []byte, pdf bool) ([]string, error)
}

// DocumentStore persists analyzed documents and reads the tenant-scoped
// corpus. Every read is filtered to one tenant; nothing may cross tenants.
type DocumentStore interface {
	Save(ctx context.Context, doc *domain.Document) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Document, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Document, error)
}

// MessageQueue publishes/consumes analysis-completed events.
type MessageQueue interface {
	PublishDocumentAnalyzed(ctx context.Context, event domain.AnalyzedEvent) error
	SubscribeDocumentAnalyzed(ctx context.Context, handler func(context.Context, domain.AnalyzedEvent) error) error
}
