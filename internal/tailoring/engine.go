// Package tailoring rewrites a user's canonical resume text against a job
// description using the configured generative model.
package tailoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/metrics"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
)

// Engine issues one completion per tailoring request. It does not retry.
type Engine struct {
	Client llm.Client
}

// NewEngine constructs an Engine.
func NewEngine(client llm.Client) *Engine {
	return &Engine{Client: client}
}

// Tailor returns the tailored resume text, trimmed.
func (e *Engine) Tailor(ctx context.Context, resumeText, jobDescription string) (out string, err error) {
	if e.Client == nil || !e.Client.Configured() {
		return "", ErrConfiguration
	}

	done := metrics.Start(metrics.OpTailor)
	defer func() { done(err) }()

	raw, err := e.Client.Complete(ctx, llm.Request{Prompt: llm.TailorPrompt(resumeText, jobDescription)})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", ErrConfiguration
		}
		telemetry.Error("tailor.provider_error", map[string]any{"error": err})
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	out = strings.TrimSpace(raw)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return out, nil
}
