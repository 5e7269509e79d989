package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
)

const defaultModel = "gemini-2.0-flash"

// Client implements llm.Client on the Gemini API.
type Client struct {
	model  string
	client *genai.Client
}

// Options tunes client construction. BaseURL is used by tests.
type Options struct {
	BaseURL string
}

// NewClient constructs a Gemini client. An empty key yields a client that
// reports itself unconfigured and never dials out.
func NewClient(ctx context.Context, apiKey, model string, opts Options) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	c := &Client{model: model}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return c, nil
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c != nil && c.client != nil
}

// Complete issues a single generateContent call.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not set", llm.ErrNotConfigured)
	}
	cfg := &genai.GenerateContentConfig{Temperature: req.Temperature}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	fields := map[string]any{"provider": "gemini", "model": c.model, "json": req.JSON}
	if u := resp.UsageMetadata; u != nil {
		fields["prompt_tokens"] = u.PromptTokenCount
		fields["completion_tokens"] = u.CandidatesTokenCount
		fields["total_tokens"] = u.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)

	return resp.Text(), nil
}

var _ llm.Client = (*Client)(nil)
