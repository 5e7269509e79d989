package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays out a document natively with fpdf. It needs no external
// process and is the default renderer.
type PDFRenderer struct{}

// NewPDFRenderer returns the native renderer.
func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// Render implements Renderer.
func (r *PDFRenderer) Render(ctx context.Context, title, content string) (out []byte, err error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return nil, exportErr("pdf", err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, exportErr("pdf", fmt.Errorf("panic: %v", rec))
		}
	}()

	layout := Parse(content)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(strings.TrimSpace(title), true)
	pdf.SetCreator("crying-tailor", true)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	w.header(layout.Header)
	for _, sec := range layout.Sections {
		w.section(sec)
	}

	if err := pdf.Error(); err != nil {
		return nil, exportErr("pdf", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exportErr("pdf", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) use(name string) TextStyle {
	st := StyleMap[name]
	fontStyle := ""
	if st.Bold {
		fontStyle = "B"
	}
	w.pdf.SetFont("Helvetica", fontStyle, st.Size)
	w.pdf.SetTextColor(st.Color[0], st.Color[1], st.Color[2])
	return st
}

func (w *pdfWriter) text(style, s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	st := w.use(style)
	if st.Uppercase {
		s = strings.ToUpper(s)
	}
	w.pdf.MultiCell(0, st.LineHeight, w.tr(s), "", "L", false)
}

func (w *pdfWriter) header(h Header) {
	w.text("name", h.Name)
	if h.Contact != "" {
		w.pdf.Ln(1)
		w.text("contact", h.Contact)
	}
	if h.Summary != "" {
		w.pdf.Ln(2)
		w.text("summary", h.Summary)
	}
}

func (w *pdfWriter) section(sec Section) {
	w.pdf.Ln(5)
	w.text("sectionHeading", sec.Title)

	left, _, right, _ := w.pdf.GetMargins()
	pageW, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY() + 0.5
	w.pdf.SetDrawColor(ruleColor[0], ruleColor[1], ruleColor[2])
	w.pdf.SetLineWidth(0.2)
	w.pdf.Line(left, y, pageW-right, y)
	w.pdf.SetY(y + 2)

	for i, b := range sec.Blocks {
		if i > 0 {
			w.pdf.Ln(1.5)
		}
		switch b.Kind {
		case BlockBullets:
			w.bullets(b.Items, left)
		default:
			w.text("paragraph", b.Text)
		}
	}
}

func (w *pdfWriter) bullets(items []string, left float64) {
	for _, item := range items {
		st := w.use("bullet")
		w.pdf.SetX(left + bulletIndent)
		w.pdf.CellFormat(bulletIndent, st.LineHeight, w.tr("•"), "", 0, "L", false, 0, "")
		w.pdf.MultiCell(0, st.LineHeight, w.tr(item), "", "L", false)
		w.pdf.SetX(left)
	}
}

var _ Renderer = (*PDFRenderer)(nil)
