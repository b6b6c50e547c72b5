package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Process orchestrates the conversion of one lyric file
func (p *implProcessor) Process(ctx context.Context, lyricPath string) error {
	startTime := time.Now()
	jobID := uuid.New().String()
	log := p.logger.With("job", jobID[:8])

	log.Info(ctx, "Starting lyric conversion: %s", lyricPath)

	// Step 1: Read the lyrics
	data, err := os.ReadFile(lyricPath)
	if err != nil {
		return fmt.Errorf("read lyrics: %w", err)
	}
	text := NormalizeNewlines(string(data))

	// Step 2: Apply a per-file group size, if the file names one
	groupSize, text, err := parseDirective(text, p.cfg.Deck.GroupSize)
	if err != nil {
		return fmt.Errorf("read directive: %w", err)
	}

	// Step 3: Chunk and render (deck is named after the lyric file)
	filename := filepath.Base(lyricPath)
	res, err := p.convert(ctx, log, Request{
		Text:       text,
		Name:       strings.TrimSuffix(filename, filepath.Ext(filename)),
		GroupSize:  groupSize,
		FontSize:   p.cfg.Deck.FontSize,
		OutputDir:  p.cfg.Paths.Output,
		LyricSheet: p.cfg.Deck.LyricSheet,
		PDF:        p.cfg.Deck.PDF,
	})
	if err != nil {
		return err
	}

	// Step 4: Move the source out of the inbox
	if err := p.moveToArchived(ctx, log, lyricPath); err != nil {
		log.Warn(ctx, "Failed to move lyrics to archived folder: %v", err)
	}

	log.Info(ctx, "Conversion completed: %s -> %s (%d slides, %s)",
		filename, res.Deck, len(res.Chunks), time.Since(startTime))

	return nil
}

// NormalizeNewlines turns CRLF and lone CR line endings into LF
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
