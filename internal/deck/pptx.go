package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("pptx").Funcs(template.FuncMap{"xml": escapeXML}).ParseFS(templateFS, "templates/*.tmpl"),
)

// Package parts rendered once per deck, in zip order.
var packageParts = []struct {
	path     string
	template string
}{
	{"[Content_Types].xml", "content_types.xml.tmpl"},
	{"_rels/.rels", "rels.xml.tmpl"},
	{"docProps/core.xml", "core.xml.tmpl"},
	{"docProps/app.xml", "app.xml.tmpl"},
	{"ppt/presentation.xml", "presentation.xml.tmpl"},
	{"ppt/_rels/presentation.xml.rels", "presentation.xml.rels.tmpl"},
	{"ppt/slideMasters/slideMaster1.xml", "slide_master.xml.tmpl"},
	{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "slide_master.xml.rels.tmpl"},
	{"ppt/slideLayouts/slideLayout1.xml", "slide_layout.xml.tmpl"},
	{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "slide_layout.xml.rels.tmpl"},
	{"ppt/theme/theme1.xml", "theme.xml.tmpl"},
}

type pptxDeck struct {
	Title       string
	Style       Style
	FontSize    int // hundredths of a point
	Top         int64
	SlideWidth  int64
	SlideHeight int64
	TitleHeight int64
	Slides      []pptxSlide
}

type pptxSlide struct {
	Number int
	ID     int
	RelID  string
	Lines  []string
}

type slideView struct {
	Deck  *pptxDeck
	Slide pptxSlide
}

// PPTXWriter renders chunks as a PowerPoint deck, one slide per chunk.
type PPTXWriter struct{}

func NewPPTXWriter() *PPTXWriter {
	return &PPTXWriter{}
}

func (PPTXWriter) Ext() string { return ".pptx" }

// WriteFile renders the deck to path, replacing any existing file.
func (p PPTXWriter) WriteFile(ctx context.Context, path string, chunks []string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create deck: %w", err)
	}

	if err := p.Write(ctx, f, chunks, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write renders the deck as a zip package to w.
func (PPTXWriter) Write(ctx context.Context, w io.Writer, chunks []string, opts Options) error {
	if err := opts.Style.Validate(); err != nil {
		return fmt.Errorf("deck style: %w", err)
	}

	d := newPPTXDeck(chunks, opts)
	zw := zip.NewWriter(w)

	for _, part := range packageParts {
		if err := writePart(zw, part.path, part.template, d); err != nil {
			return err
		}
	}

	for _, s := range d.Slides {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := slideView{Deck: d, Slide: s}
		if err := writePart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", s.Number), "slide.xml.tmpl", view); err != nil {
			return err
		}
		if err := writePart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.Number), "slide.xml.rels.tmpl", view); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close deck archive: %w", err)
	}

	return nil
}

func newPPTXDeck(chunks []string, opts Options) *pptxDeck {
	d := &pptxDeck{
		Title:       opts.Title,
		Style:       opts.Style,
		FontSize:    opts.Style.FontSize * 100,
		Top:         TopOffset(opts.GroupSize),
		SlideWidth:  SlideWidth,
		SlideHeight: SlideHeight,
		TitleHeight: TitleHeight,
		Slides:      make([]pptxSlide, len(chunks)),
	}

	for i, chunk := range chunks {
		d.Slides[i] = pptxSlide{
			Number: i + 1,
			ID:     256 + i, // slide ids below 256 are reserved
			RelID:  fmt.Sprintf("rId%d", i+3),
			Lines:  strings.Split(chunk, "\n"),
		}
	}

	return d
}

func writePart(zw *zip.Writer, path, name string, data interface{}) error {
	f, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("add %s: %w", path, err)
	}
	if err := templates.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

func escapeXML(s string) (string, error) {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}
