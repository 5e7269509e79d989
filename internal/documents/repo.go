package documents

import "context"

// Repo defines persistence operations for tailored documents. Every lookup is
// scoped by owner; a document owned by another user is reported as ErrNotFound.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, id string) (Document, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error)
	Update(ctx context.Context, userID, id string, title *string, content string) (Document, error)
	Delete(ctx context.Context, userID, id string) error
}
