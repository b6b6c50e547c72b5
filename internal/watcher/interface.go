package watcher

import "context"

// Watcher monitors the lyric inbox folder
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler converts one newly arrived lyric file
type EventHandler func(ctx context.Context, filePath string) error
