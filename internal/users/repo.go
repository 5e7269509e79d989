package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired verification link")
	ErrInvalidInput       = errors.New("invalid input")
)

type Repo interface {
	// Create inserts a new user. Emails are compared case-insensitively.
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// LinkGoogle attaches a Google identity to the user owning the email,
	// creating the user when none exists, and returns the stored row.
	LinkGoogle(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, userID string) error

	SaveToken(ctx context.Context, token VerificationToken) error
	// ConsumeToken deletes the token and marks its user verified. Missing or
	// expired tokens yield ErrInvalidToken.
	ConsumeToken(ctx context.Context, token string, now time.Time) (string, error)
}
