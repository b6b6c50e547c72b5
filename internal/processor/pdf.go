package processor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
)

// exportPDF converts a rendered deck to PDF with a headless office suite.
// The PDF lands next to the deck.
func (p *implProcessor) exportPDF(ctx context.Context, log logger.Logger, deckPath string) (string, error) {
	outDir := filepath.Dir(deckPath)

	// Isolated profile per conversion; concurrent instances sharing one block each other
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	profileDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "office-*")
	if err != nil {
		return "", fmt.Errorf("create office profile dir: %w", err)
	}
	defer os.RemoveAll(profileDir)

	absProfile, err := filepath.Abs(profileDir)
	if err != nil {
		return "", fmt.Errorf("resolve office profile dir: %w", err)
	}

	log.Info(ctx, "Exporting PDF with %s: %s", p.cfg.Office.BinaryPath, deckPath)

	// --headless: no UI
	// --convert-to pdf: output filter picked from the extension
	// --outdir: write beside the deck, keeping the base name
	args := []string{
		"-env:UserInstallation=" + fileURL(absProfile),
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		deckPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Office.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("office convert: %w", err)
	}

	pdfPath := strings.TrimSuffix(deckPath, filepath.Ext(deckPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("pdf not produced: %w", err)
	}

	log.Info(ctx, "PDF exported: %s", pdfPath)
	return pdfPath, nil
}

func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
