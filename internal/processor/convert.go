package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lyric-deck/internal/deck"
	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
	"github.com/nguyentantai21042004/lyric-deck/internal/lyrics"
)

// Convert chunks the request text and renders the deck plus any optional outputs
func (p *implProcessor) Convert(ctx context.Context, req Request) (Result, error) {
	return p.convert(ctx, p.logger, req)
}

func (p *implProcessor) convert(ctx context.Context, log logger.Logger, req Request) (Result, error) {
	chunks, err := lyrics.Chunk(req.Text, req.GroupSize)
	if err != nil {
		return Result{}, fmt.Errorf("chunk lyrics: %w", err)
	}
	log.Debug(ctx, "Split lyrics into %d slides of up to %d lines", len(chunks), req.GroupSize)

	opts := deck.Options{
		Style:     p.style(req.FontSize),
		GroupSize: req.GroupSize,
		Title:     req.Name,
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = p.cfg.Paths.Output
	}

	deckPath, err := deck.SaveFile(ctx, p.deck, outDir, req.Name, chunks, opts)
	if err != nil {
		return Result{}, fmt.Errorf("render deck: %w", err)
	}
	log.Info(ctx, "Deck written: %s (%d slides)", deckPath, len(chunks))

	res := Result{Chunks: chunks, Deck: deckPath}

	if req.LyricSheet {
		sheetPath, err := deck.SaveFile(ctx, p.sheet, outDir, req.Name, chunks, opts)
		if err != nil {
			log.Warn(ctx, "Failed to write lyric sheet: %v", err)
		} else {
			log.Info(ctx, "Lyric sheet written: %s", sheetPath)
			res.Sheet = sheetPath
		}
	}

	if req.PDF {
		pdfPath, err := p.exportPDF(ctx, log, deckPath)
		if err != nil {
			log.Warn(ctx, "Failed to export PDF: %v", err)
		} else {
			res.PDF = pdfPath
		}
	}

	return res, nil
}

func (p *implProcessor) style(fontSize int) deck.Style {
	return deck.Style{
		FontName:        p.cfg.Deck.FontName,
		FontSize:        fontSize,
		Bold:            true,
		TextColor:       p.cfg.Deck.TextColor,
		BackgroundColor: p.cfg.Deck.BackgroundColor,
	}
}
