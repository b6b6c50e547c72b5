package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/lyric-deck/internal/config"
	"github.com/nguyentantai21042004/lyric-deck/internal/processor"
	"github.com/nguyentantai21042004/lyric-deck/internal/watcher"
	"github.com/nguyentantai21042004/lyric-deck/pkg/executor"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Convert every lyric file dropped into the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, a)
		},
	}
}

func runWatch(ctx context.Context, a *app) error {
	cfg, log := a.cfg, a.log

	log.Info(ctx, "========================================")
	log.Info(ctx, "Lyric Deck Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Conversions: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Lines per slide: %d, font: %s %dpt", cfg.Deck.GroupSize, cfg.Deck.FontName, cfg.Deck.FontSize)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	proc := processor.New(cfg, executor.New(), log)

	// Convert whatever arrived while we were not running
	if err := proc.ProcessAll(ctx, cfg.Paths.Input); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("convert pending files: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Input, processor.Extensions, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Lyric Deck Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	err = w.Start(ctx)

	log.Info(ctx, "Lyric Deck Pipeline stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
