// Package extraction turns free-form resume text into the structured
// profile using the generative model in JSON mode.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/metrics"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
	"github.com/Saubhagya1707/crying-tailor/resume/normalize"
)

const temperature = 0.1

var (
	fenceOpen  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// Engine issues one JSON-mode completion per request. It does not retry.
type Engine struct {
	Client llm.Client
}

// NewEngine constructs an Engine.
func NewEngine(client llm.Client) *Engine {
	return &Engine{Client: client}
}

// Extract parses rawText into a normalized resume. Callers enforce
// MinTextLen.
func (e *Engine) Extract(ctx context.Context, rawText string) (out model.Resume, err error) {
	if e.Client == nil || !e.Client.Configured() {
		return model.Resume{}, ErrConfiguration
	}

	done := metrics.Start(metrics.OpExtract)
	defer func() { done(err) }()

	raw, err := e.Client.Complete(ctx, llm.Request{
		Prompt:      llm.ExtractPrompt(rawText),
		JSON:        true,
		Temperature: llm.Temperature(temperature),
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return model.Resume{}, ErrConfiguration
		}
		telemetry.Error("extract.provider_error", map[string]any{"error": err})
		return model.Resume{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	body := StripFences(raw)
	if body == "" {
		return model.Resume{}, fmt.Errorf("%w: empty response", ErrGeneration)
	}

	decoded, err := decodeObject(body)
	if err != nil {
		telemetry.Warn("extract.parse_failed", map[string]any{"error": err, "chars": len(body)})
		return model.Resume{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return normalize.Resume(decoded), nil
}

// StripFences removes a surrounding ``` or ```json code fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func decodeObject(body string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return obj, nil
}
