package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ProcessAll converts the lyric files already waiting in dir, at most
// performance.max_concurrent at a time. Per-file failures are logged and
// counted; only cancellation is returned as an error.
func (p *implProcessor) ProcessAll(ctx context.Context, dir string) error {
	files, err := discoverLyricFiles(dir)
	if err != nil {
		return fmt.Errorf("discover lyric files: %w", err)
	}

	if len(files) == 0 {
		p.logger.Debug(ctx, "No pending lyric files in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d pending lyric files", len(files))

	sem := newSemaphore(max(p.cfg.Performance.MaxConcurrent, 1))
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		failCount int
	)

	for _, path := range files {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return err
		}

		p.logger.Debug(ctx, "Queued %s (%d running)", filepath.Base(path), sem.inUse())

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to convert %s: %v", path, err)
				mu.Lock()
				failCount++
				mu.Unlock()
			}
		}(path)
	}

	wg.Wait()

	p.logger.Info(ctx, "Pending files done: %d converted, %d failed", len(files)-failCount, failCount)
	return ctx.Err()
}

func discoverLyricFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isLyricFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
