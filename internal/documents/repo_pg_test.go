package documents

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var docCols = []string{"id", "user_id", "title", "job_description_text", "generated_content", "created_at", "updated_at"}

func newMock(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &PGRepo{DB: conn}, mock
}

func TestPGRepoCreateStoresNullTitle(t *testing.T) {
	repo, mock := newMock(t)
	doc := New("user-1", nil, "JD", "content")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tailored_documents")).
		WithArgs(doc.ID, "user-1", sql.NullString{}, "JD", "content", doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDScopesByOwner(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND id = $2")).
		WithArgs("user-1", "doc-1").
		WillReturnRows(sqlmock.NewRows(docCols).AddRow("doc-1", "user-1", "Go role", "JD", "body", now, now))

	doc, err := repo.GetByID(context.Background(), "user-1", "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Title == nil || *doc.Title != "Go role" {
		t.Fatalf("unexpected title %v", doc.Title)
	}
	if doc.Content != "body" || doc.JobDescription != "JD" {
		t.Fatalf("unexpected document %+v", doc)
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND id = $2")).
		WithArgs("user-2", "doc-1").
		WillReturnRows(sqlmock.NewRows(docCols))
	if _, err := repo.GetByID(context.Background(), "user-2", "doc-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListClampsAndOrders(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs("user-1", 100, 0).
		WillReturnRows(sqlmock.NewRows(docCols).
			AddRow("b", "user-1", nil, "JD", "two", now, now).
			AddRow("a", "user-1", nil, "JD", "one", now.Add(-time.Hour), now))

	docs, err := repo.ListByUser(context.Background(), "user-1", 1000, -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "b" || docs[1].Title != nil {
		t.Fatalf("unexpected docs %+v", docs)
	}
}

func TestPGRepoUpdateReturnsRow(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	title := "New"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tailored_documents")).
		WithArgs(sql.NullString{String: "New", Valid: true}, "edited", sqlmock.AnyArg(), "user-1", "doc-1").
		WillReturnRows(sqlmock.NewRows(docCols).AddRow("doc-1", "user-1", "New", "JD", "edited", now, now))

	doc, err := repo.Update(context.Background(), "user-1", "doc-1", &title, "edited")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if doc.Content != "edited" {
		t.Fatalf("unexpected content %q", doc.Content)
	}
}

func TestPGRepoDeleteMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tailored_documents WHERE user_id = $1 AND id = $2")).
		WithArgs("user-1", "nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
