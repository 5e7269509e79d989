package render

import (
	"bytes"
	"context"
	_ "embed"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/resume.css
var resumeCSS string

// 16mm in inches.
const chromeMargin = 0.63

// ChromeRenderer converts the document to HTML with goldmark and prints it
// through headless Chrome.
type ChromeRenderer struct {
	// ExecPath overrides the Chrome binary; empty uses the chromedp lookup.
	ExecPath string
	Timeout  time.Duration
}

// NewChromeRenderer returns a renderer using the given Chrome binary.
func NewChromeRenderer(execPath string) *ChromeRenderer {
	return &ChromeRenderer{ExecPath: strings.TrimSpace(execPath), Timeout: 60 * time.Second}
}

var markdown = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps()))

// HTML builds the standalone page Chrome prints.
func HTML(title, content string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(content), &body); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<!doctype html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(strings.TrimSpace(title)))
	b.WriteString("</title><style>")
	b.WriteString(resumeCSS)
	b.WriteString("</style></head><body>")
	b.Write(body.Bytes())
	b.WriteString("</body></html>")
	return b.String(), nil
}

// Render implements Renderer.
func (r *ChromeRenderer) Render(ctx context.Context, title, content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	doc, err := HTML(title, content)
	if err != nil {
		return nil, exportErr("markdown", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "tailor-")
	if err != nil {
		return nil, exportErr("chrome", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(doc), 0o600); err != nil {
		return nil, exportErr("chrome", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27 x 11.69 in
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(chromeMargin).
				WithMarginBottom(chromeMargin).
				WithMarginLeft(chromeMargin).
				WithMarginRight(chromeMargin).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, exportErr("chrome", err)
	}
	return pdfBuf, nil
}

var _ Renderer = (*ChromeRenderer)(nil)
