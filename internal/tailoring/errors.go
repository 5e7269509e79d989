package tailoring

import (
	"fmt"

	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/llm"
)

var (
	// ErrConfiguration means no provider credential is set; no call was made.
	ErrConfiguration = fmt.Errorf("tailoring: %w", llm.ErrNotConfigured)

	// ErrGeneration means the provider failed or returned nothing usable.
	ErrGeneration = fmt.Errorf("tailoring: %w", llm.ErrGeneration)

	// ErrProfileRequired is returned when the user has not onboarded yet.
	ErrProfileRequired = fmt.Errorf("%w: complete your profile before tailoring a resume", documents.ErrInvalidInput)
)
