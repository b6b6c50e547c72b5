package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	sheetFontSize  = 13
	sheetTitleSize = 16
	sheetColor     = "000000"
)

// DocxWriter renders chunks as a printable lyric sheet: the title, then
// each slide's lines with a blank paragraph between slides.
type DocxWriter struct{}

func NewDocxWriter() *DocxWriter {
	return &DocxWriter{}
}

func (DocxWriter) Ext() string { return ".docx" }

func (DocxWriter) WriteFile(ctx context.Context, path string, chunks []string, opts Options) error {
	if err := opts.Style.Validate(); err != nil {
		return fmt.Errorf("sheet style: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	if opts.Title != "" {
		addRun(doc.AddParagraph(""), opts.Title, opts.Style.FontName, sheetTitleSize, true)
	}

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			doc.AddParagraph("")
		}
		for _, line := range strings.Split(chunk, "\n") {
			addRun(doc.AddParagraph(""), line, opts.Style.FontName, sheetFontSize, false)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save lyric sheet: %w", err)
	}

	return nil
}

func addRun(p *docx.Paragraph, text, font string, size uint64, bold bool) {
	run := p.AddText(text).Font(font).Size(size).Color(sheetColor)
	if bold {
		run.Bold(true)
	}
}
