// Package render turns tailored resume text into a downloadable PDF.
package render

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
)

// ErrExport wraps any failure to produce a PDF.
var ErrExport = errors.New("export failed")

// ErrEmptyContent is returned when there is nothing to render.
var ErrEmptyContent = errors.New("content is required")

// Renderer produces PDF bytes for a tailored document.
type Renderer interface {
	Render(ctx context.Context, title, content string) ([]byte, error)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)

// FileName derives the attachment name from a document title.
func FileName(title string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "tailored-resume"
	}
	return slug + ".pdf"
}

// Fallback tries Primary and, on failure, Secondary.
type Fallback struct {
	Primary   Renderer
	Secondary Renderer
}

// Render implements Renderer.
func (f Fallback) Render(ctx context.Context, title, content string) ([]byte, error) {
	if f.Primary == nil {
		return f.Secondary.Render(ctx, title, content)
	}
	out, err := f.Primary.Render(ctx, title, content)
	if err == nil || f.Secondary == nil || errors.Is(err, ErrEmptyContent) {
		return out, err
	}
	telemetry.Warn("export.fallback", map[string]any{"error": err})
	return f.Secondary.Render(ctx, title, content)
}

func exportErr(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExport, stage, err)
}
