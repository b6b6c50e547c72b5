package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type field struct {
	key   string
	value interface{}
}

type implLogger struct {
	logger *log.Logger
	json   *slog.Logger
	level  string
	fields []field
}

// New creates a new text Logger writing to stdout
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger in "text" or "json" format writing to w
func NewWithFormat(level, format string, w io.Writer) Logger {
	l := &implLogger{level: strings.ToLower(level)}

	if strings.ToLower(format) == "json" {
		// Level filtering happens in shouldLog, so the handler accepts everything
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
		l.json = slog.New(h)
	} else {
		l.logger = log.New(w, "", log.LstdFlags)
	}

	return l
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) With(key string, value interface{}) Logger {
	fields := make([]field, len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)

	return &implLogger{
		logger: l.logger,
		json:   l.json,
		level:  l.level,
		fields: append(fields, field{key: key, value: value}),
	}
}

func (l *implLogger) write(ctx context.Context, level string, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := fmt.Sprintf(msg, args...)

	if l.json != nil {
		attrs := make([]any, 0, len(l.fields)*2)
		for _, f := range l.fields {
			attrs = append(attrs, f.key, f.value)
		}
		l.json.Log(ctx, slogLevel(level), text, attrs...)
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.ToUpper(level))
	b.WriteString("] ")
	for _, f := range l.fields {
		fmt.Fprintf(&b, "%s=%v ", f.key, f.value)
	}
	b.WriteString(text)
	l.logger.Print(b.String())
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
