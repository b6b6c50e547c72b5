package processor

import (
	"github.com/nguyentantai21042004/lyric-deck/internal/config"
	"github.com/nguyentantai21042004/lyric-deck/internal/deck"
	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
	"github.com/nguyentantai21042004/lyric-deck/pkg/executor"
)

// Extensions lists the file types treated as lyric input
var Extensions = []string{".txt", ".lyrics"}

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	deck     deck.Renderer
	sheet    deck.Renderer
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		deck:     deck.NewPPTXWriter(),
		sheet:    deck.NewDocxWriter(),
	}
}
