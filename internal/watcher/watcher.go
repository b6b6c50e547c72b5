package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
)

type implWatcher struct {
	inputDir      string
	extensions    []string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start watches the inbox until ctx is cancelled, then waits for running
// conversions to finish
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing conversions to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if err := w.handleEvent(ctx, event); err != nil {
				w.wg.Wait()
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handleEvent dispatches newly created lyric files; it only fails when ctx ends
func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) error {
	if !event.Has(fsnotify.Create) {
		return nil
	}
	if !w.isLyricFile(event.Name) {
		w.logger.Debug(ctx, "Ignoring non-lyric file: %s", event.Name)
		return nil
	}

	w.logger.Info(ctx, "New lyrics detected: %s", event.Name)

	// Give the writer time to finish
	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	// Blocks while maxConcurrent conversions are running
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func(filePath string) {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		if err := w.handler(ctx, filePath); err != nil {
			w.logger.Error(ctx, "Failed to convert %s: %v", filePath, err)
		}
	}(event.Name)

	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isLyricFile checks if the file has a supported lyric extension and is not hidden
func (w *implWatcher) isLyricFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}

	return false
}
