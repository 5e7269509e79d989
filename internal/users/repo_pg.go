package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/db"
)

const uniqueViolation = "23505"

// PGRepo stores users in Postgres. DB may be a transaction.
type PGRepo struct {
	DB db.DBTX
}

const userColumns = `id, email, password_hash, full_name, picture_url, google_sub, email_verified, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, password_hash, full_name, picture_url, email_verified, created_at, updated_at)
VALUES ($1, lower($2), $3, $4, $5, $6, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.PasswordHash),
		nullableString(user.FullName),
		nullableString(user.PictureURL),
		user.EmailVerified,
	)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) LinkGoogle(ctx context.Context, user User) (User, error) {
	const update = `
UPDATE users SET
  google_sub = $1,
  email_verified = TRUE,
  full_name = COALESCE(full_name, $3),
  picture_url = $4,
  updated_at = now()
WHERE google_sub = $1 OR lower(email) = lower($2)
RETURNING ` + userColumns
	linked, err := scanUser(r.DB.QueryRowContext(ctx, update,
		user.GoogleSub, user.Email, nullableString(user.FullName), nullableString(user.PictureURL)))
	if err == nil || !errors.Is(err, ErrNotFound) {
		return linked, err
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	const insert = `
INSERT INTO users (id, email, full_name, picture_url, google_sub, email_verified, created_at, updated_at)
VALUES ($1, lower($2), $3, $4, $5, TRUE, now(), now())
RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, insert,
		user.ID, user.Email, nullableString(user.FullName), nullableString(user.PictureURL), user.GoogleSub))
}

func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) SaveToken(ctx context.Context, token VerificationToken) error {
	const query = `
INSERT INTO verification_tokens (token, user_id, expires_at, created_at)
VALUES ($1, $2, $3, now())`
	_, err := r.DB.ExecContext(ctx, query, token.Token, token.UserID, token.ExpiresAt)
	return err
}

func (r *PGRepo) ConsumeToken(ctx context.Context, token string, now time.Time) (string, error) {
	const consume = `
DELETE FROM verification_tokens
WHERE token = $1
RETURNING user_id, expires_at`
	var userID string
	var expiresAt time.Time
	err := r.DB.QueryRowContext(ctx, consume, token).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !now.Before(expiresAt) {
		return "", ErrInvalidToken
	}
	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET email_verified = TRUE, updated_at = now() WHERE id = $1`, userID); err != nil {
		return "", err
	}
	return userID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var user User
	var passwordHash, fullName, pictureURL, googleSub sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.Email,
		&passwordHash,
		&fullName,
		&pictureURL,
		&googleSub,
		&user.EmailVerified,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.PasswordHash = passwordHash.String
	user.FullName = fullName.String
	user.PictureURL = pictureURL.String
	user.GoogleSub = googleSub.String
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = user.CreatedAt
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
