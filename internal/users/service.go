package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLen = 72
	MaxNameLen     = 200
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	Repo Repo
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// SignupInput is the credentials signup payload.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup creates a password account and a verification token for it.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, VerificationToken, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	switch {
	case !emailPattern.MatchString(email) || len(email) > 254:
		return User{}, VerificationToken{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	case len(in.Password) < MinPasswordLen:
		return User{}, VerificationToken{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	case len(in.Password) > MaxPasswordLen:
		return User{}, VerificationToken{}, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordLen)
	case len([]rune(name)) > MaxNameLen:
		return User{}, VerificationToken{}, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, VerificationToken{}, err
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, VerificationToken{}, err
	}

	token := VerificationToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(VerificationTTL),
	}
	if err := s.Repo.SaveToken(ctx, token); err != nil {
		return User{}, VerificationToken{}, err
	}
	created, err := s.Repo.GetByID(ctx, user.ID)
	if err != nil {
		return User{}, VerificationToken{}, err
	}
	return created, token, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if user.PasswordHash == "" {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Verify consumes a verification token.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	return s.Repo.ConsumeToken(ctx, token, s.now())
}

// UpsertFromGoogle links a Google identity to a local user.
func (s *Service) UpsertFromGoogle(ctx context.Context, sub, email, name, picture string) (User, error) {
	if strings.TrimSpace(sub) == "" || strings.TrimSpace(email) == "" {
		return User{}, fmt.Errorf("%w: google subject and email are required", ErrInvalidInput)
	}
	return s.Repo.LinkGoogle(ctx, User{
		ID:         uuid.NewString(),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		FullName:   strings.TrimSpace(name),
		PictureURL: strings.TrimSpace(picture),
		GoogleSub:  sub,
	})
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
