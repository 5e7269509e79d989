package profiles

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the user has not onboarded yet.
	ErrNotFound = errors.New("profile not found")

	// ErrAlreadyOnboarded is returned when onboarding a user who has a profile.
	ErrAlreadyOnboarded = errors.New("profile already exists")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError lists every schema violation of a submitted profile.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
