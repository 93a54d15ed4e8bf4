package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/claimsight/claimsight/internal/core/domain"
	"github.com/claimsight/claimsight/internal/infrastructure/resilience"
)

// DocumentRepository persists analyzed documents. Rows are append-only and
// every read carries the tenant filter.
type DocumentRepository struct {
	db       *sql.DB
	executor *resilience.Executor
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// NewDocumentRepositoryWithExecutor routes inserts and corpus reads through
// the retry/breaker executor.
func NewDocumentRepositoryWithExecutor(db *sql.DB, executor *resilience.Executor) *DocumentRepository {
	return &DocumentRepository{db: db, executor: executor}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082901)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	tenant_id TEXT NOT NULL,
	filename TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	text_excerpt TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_tenant ON documents(tenant_id, created_at);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	call := func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO documents (id, tenant_id, filename, doc_type, text_excerpt, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`,
			doc.ID, doc.TenantID, doc.Filename, doc.DocType, doc.TextExcerpt, doc.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}
		return nil
	}

	if r.executor != nil {
		return r.executor.Execute(ctx, "postgres.save", call, classifyPostgresError)
	}
	return call(ctx)
}

// ListByTenant returns the tenant's corpus in insertion order. The ordering
// is load-bearing: similarity ties resolve by scan order.
func (r *DocumentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Document, error) {
	var docs []domain.Document

	call := func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, `
SELECT id, tenant_id, filename, doc_type, text_excerpt, created_at
FROM documents
WHERE tenant_id = $1
ORDER BY created_at ASC, id ASC
`, tenantID)
		if err != nil {
			return fmt.Errorf("query documents by tenant: %w", err)
		}
		defer rows.Close()

		docs = docs[:0]
		for rows.Next() {
			var doc domain.Document
			if err := rows.Scan(&doc.ID, &doc.TenantID, &doc.Filename, &doc.DocType, &doc.TextExcerpt, &doc.CreatedAt); err != nil {
				return fmt.Errorf("scan document: %w", err)
			}
			docs = append(docs, doc)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate documents: %w", err)
		}
		return nil
	}

	if r.executor != nil {
		if err := r.executor.Execute(ctx, "postgres.list_by_tenant", call, classifyPostgresError); err != nil {
			return nil, err
		}
		return docs, nil
	}
	if err := call(ctx); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, tenant_id, filename, doc_type, text_excerpt, created_at
FROM documents
WHERE tenant_id = $1 AND id = $2
`, tenantID, id)

	var doc domain.Document
	err := row.Scan(&doc.ID, &doc.TenantID, &doc.Filename, &doc.DocType, &doc.TextExcerpt, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", err)
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &doc, nil
}
