package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB db.DBTX
}

const documentColumns = `id, user_id, title, job_description_text, generated_content, created_at, updated_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO tailored_documents (` + documentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		nullableString(doc.Title),
		doc.JobDescription,
		doc.Content,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// GetByID fetches a document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM tailored_documents
WHERE user_id = $1 AND id = $2`
	return scanDocument(r.DB.QueryRowContext(ctx, query, userID, id))
}

// ListByUser lists documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM tailored_documents
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Update replaces title and content and bumps updated_at.
func (r *PGRepo) Update(ctx context.Context, userID, id string, title *string, content string) (Document, error) {
	const query = `
UPDATE tailored_documents
SET title = $1, generated_content = $2, updated_at = $3
WHERE user_id = $4 AND id = $5
RETURNING ` + documentColumns
	return scanDocument(r.DB.QueryRowContext(ctx, query, nullableString(title), content, time.Now().UTC(), userID, id))
}

// Delete removes a document.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tailored_documents WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every document of a user.
func (r *PGRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tailored_documents WHERE user_id = $1`, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var title sql.NullString
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&title,
		&doc.JobDescription,
		&doc.Content,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if title.Valid {
		t := title.String
		doc.Title = &t
	}
	return doc, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
