package extraction

import (
	"fmt"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
)

// MinTextLen is the shortest pasted resume accepted for import.
const MinTextLen = 50

var (
	// ErrConfiguration means no provider credential is set; no call was made.
	ErrConfiguration = fmt.Errorf("extraction: %w", llm.ErrNotConfigured)

	// ErrGeneration means the provider failed or returned nothing.
	ErrGeneration = fmt.Errorf("extraction: %w", llm.ErrGeneration)

	// ErrParse means the response was not a JSON object.
	ErrParse = fmt.Errorf("extraction: %w", llm.ErrParse)

	// ErrTooShort rejects imports below MinTextLen characters.
	ErrTooShort = fmt.Errorf("%w: resume text must be at least %d characters", profiles.ErrInvalidInput, MinTextLen)

	// ErrUnsupportedFile rejects uploads that are not PDF, DOCX or plain text.
	ErrUnsupportedFile = fmt.Errorf("%w: upload a PDF, DOCX or plain text file", profiles.ErrInvalidInput)
)
