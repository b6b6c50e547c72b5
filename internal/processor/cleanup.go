package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
)

// moveToArchived moves a converted lyric file from the inbox to the archived folder.
// An existing archive entry with the same name is kept; the new one gets a timestamp suffix.
func (p *implProcessor) moveToArchived(ctx context.Context, log logger.Logger, lyricPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	filename := filepath.Base(lyricPath)
	destPath := filepath.Join(p.cfg.Paths.Archived, filename)
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(filename)
		stamp := time.Now().Format("20060102-150405")
		destPath = filepath.Join(p.cfg.Paths.Archived, strings.TrimSuffix(filename, ext)+"-"+stamp+ext)
	}

	log.Info(ctx, "Archiving lyrics: %s -> %s", lyricPath, destPath)

	if err := os.Rename(lyricPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}

// isLyricFile checks if the file has a supported lyric extension
func isLyricFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
