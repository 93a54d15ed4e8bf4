package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/claimsight/claimsight/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*DocumentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &DocumentRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestSaveInsertsDocument(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", "tenant-a", "invoice.pdf", "Invoice", "excerpt", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &domain.Document{
		ID:          "doc-1",
		TenantID:    "tenant-a",
		Filename:    "invoice.pdf",
		DocType:     "Invoice",
		TextExcerpt: "excerpt",
		CreatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListByTenantScansRowsInOrder(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "filename", "doc_type", "text_excerpt", "created_at"}).
		AddRow("doc-1", "tenant-a", "a.txt", "Letter", "first", now).
		AddRow("doc-2", "tenant-a", "b.txt", "Invoice", "second", now.Add(time.Minute))

	mock.ExpectQuery("SELECT id, tenant_id, filename, doc_type, text_excerpt, created_at").
		WithArgs("tenant-a").
		WillReturnRows(rows)

	docs, err := repo.ListByTenant(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("ListByTenant() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "doc-1" || docs[1].ID != "doc-2" {
		t.Fatalf("unexpected order: %q, %q", docs[0].ID, docs[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, tenant_id, filename, doc_type, text_excerpt, created_at").
		WithArgs("tenant-a", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "tenant-a", "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDIsTenantScoped(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "filename", "doc_type", "text_excerpt", "created_at"}).
		AddRow("doc-1", "tenant-a", "a.txt", "Letter", "text", now)

	mock.ExpectQuery("SELECT id, tenant_id, filename, doc_type, text_excerpt, created_at").
		WithArgs("tenant-a", "doc-1").
		WillReturnRows(rows)

	doc, err := repo.GetByID(context.Background(), "tenant-a", "doc-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if doc.TenantID != "tenant-a" {
		t.Fatalf("expected tenant-a, got %q", doc.TenantID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
