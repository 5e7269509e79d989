package llm

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when the provider credential is absent.
	// Callers check Configured before issuing any request.
	ErrNotConfigured = errors.New("llm provider credential not configured")

	// ErrGeneration marks a provider failure or an empty completion.
	ErrGeneration = errors.New("generation failed")

	// ErrParse marks a completion that could not be decoded as expected.
	ErrParse = errors.New("could not parse model response")
)

// Request is a single completion request.
type Request struct {
	Prompt string
	// JSON asks the provider for a JSON-only response.
	JSON bool
	// Temperature overrides the provider default when set.
	Temperature *float32
}

// Client abstracts generative text providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Configured reports whether a credential is present.
	Configured() bool
}

// Temperature is a helper for Request.Temperature.
func Temperature(v float32) *float32 {
	return &v
}

// PlaceholderClient stands in when no provider is wired.
type PlaceholderClient struct {
	// Setting names the env var an operator must set, for error messages.
	Setting string
}

// Complete always returns ErrNotConfigured.
func (p PlaceholderClient) Complete(context.Context, Request) (string, error) {
	if p.Setting != "" {
		return "", errors.Join(ErrNotConfigured, errors.New(p.Setting+" is not set"))
	}
	return "", ErrNotConfigured
}

// Configured is always false.
func (PlaceholderClient) Configured() bool { return false }
