package users

import (
	"context"
	"strings"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[string]User
	tokens map[string]VerificationToken
	now    func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:  make(map[string]User),
		tokens: make(map[string]VerificationToken),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmailLocked(user.Email); ok {
		return ErrEmailTaken
	}
	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmailLocked(email)
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) LinkGoogle(ctx context.Context, user User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, existing := range r.users {
		if existing.GoogleSub == user.GoogleSub || strings.EqualFold(existing.Email, user.Email) {
			existing.GoogleSub = user.GoogleSub
			existing.EmailVerified = true
			if existing.FullName == "" {
				existing.FullName = user.FullName
			}
			existing.PictureURL = user.PictureURL
			existing.UpdatedAt = now
			r.users[id] = existing
			return existing, nil
		}
	}
	user.EmailVerified = true
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return ErrNotFound
	}
	delete(r.users, userID)
	for key, tok := range r.tokens {
		if tok.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *MemoryRepo) SaveToken(ctx context.Context, token VerificationToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[token.UserID]; !ok {
		return ErrNotFound
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *MemoryRepo) ConsumeToken(ctx context.Context, token string, now time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, ok := r.tokens[token]
	if !ok {
		return "", ErrInvalidToken
	}
	delete(r.tokens, token)
	if !now.Before(tok.ExpiresAt) {
		return "", ErrInvalidToken
	}
	user, ok := r.users[tok.UserID]
	if !ok {
		return "", ErrInvalidToken
	}
	user.EmailVerified = true
	user.UpdatedAt = r.now()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *MemoryRepo) byEmailLocked(email string) (User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}
