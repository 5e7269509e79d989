// Package account erases a user and everything they own.
package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/db"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/internal/users"
)

type Service struct {
	// DB, when set, makes deletion transactional across all tables.
	DB        *sql.DB
	Documents documents.Repo
	Profiles  profiles.Repo
	Users     users.Repo
	Store     object.ObjectStore
}

type userDataEraser interface {
	DeleteAllByUser(ctx context.Context, userID string) error
}

// Delete removes the user's documents, profile bundle and user row, then
// the uploaded files.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return users.ErrNotFound
	}

	var err error
	if s.DB != nil {
		err = deleteWithTx(ctx, s.DB, userID)
	} else {
		err = s.deleteSequential(ctx, userID)
	}
	if err != nil {
		return err
	}

	if s.Store != nil {
		if err := s.Store.DeleteUser(ctx, userID); err != nil {
			telemetry.Error("account.files_delete_failed", map[string]any{"user_id": userID, "error": err})
		}
	}
	telemetry.Info("account.deleted", map[string]any{"user_id": userID})
	return nil
}

func deleteWithTx(ctx context.Context, database *sql.DB, userID string) error {
	return db.WithTx(ctx, database, func(ctx context.Context, tx db.DBTX) error {
		if err := (&documents.PGRepo{DB: tx}).DeleteAllByUser(ctx, userID); err != nil {
			return err
		}
		if err := profiles.DeleteAll(ctx, tx, userID); err != nil {
			return err
		}
		return (&users.PGRepo{DB: tx}).Delete(ctx, userID)
	})
}

func (s *Service) deleteSequential(ctx context.Context, userID string) error {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	for _, repo := range []any{s.Documents, s.Profiles} {
		eraser, ok := repo.(userDataEraser)
		if !ok {
			return errors.New("repo does not support account deletion")
		}
		if err := eraser.DeleteAllByUser(ctx, userID); err != nil {
			return err
		}
	}
	return s.Users.Delete(ctx, userID)
}
