package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const maxBaseName = 200

var (
	invalidFileRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
	multiSpace       = regexp.MustCompile(`\s+`)
)

// Renderer writes a rendered document for a chunk sequence to a path.
type Renderer interface {
	WriteFile(ctx context.Context, path string, chunks []string, opts Options) error
	Ext() string
}

// SanitizeBaseName turns a user-supplied name into a safe file base name.
func SanitizeBaseName(name string) string {
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = strings.TrimSpace(clean)
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if runes := []rune(clean); len(runes) > maxBaseName {
		clean = strings.TrimSpace(string(runes[:maxBaseName]))
	}

	return clean
}

// SaveFile renders into dir/<baseName><ext>. The document is written to a
// temp file first so a failed render never leaves a partial output behind.
func SaveFile(ctx context.Context, r Renderer, dir, baseName string, chunks []string, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	finalPath := filepath.Join(dir, SanitizeBaseName(baseName)+r.Ext())

	tmp, err := os.CreateTemp(dir, ".lyricdeck-*"+r.Ext())
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := r.WriteFile(ctx, tmpPath, chunks, opts); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("move %s into place: %w", filepath.Base(finalPath), err)
	}

	return finalPath, nil
}
