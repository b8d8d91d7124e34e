// Package logging configures the process-wide slog logger
// Logging is off unless debug is requested; output never reaches stdout/stderr
// because both front-ends own the display
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultDir = "logs"
	FileName   = "chainburst.log"

	// MaxSize triggers rotation of the previous session's log on startup
	MaxSize = 10 * 1024 * 1024
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Setup installs the default logger
// With debug off every record is discarded and the returned file is nil
// With debug on records go to <dir>/chainburst.log, caller closes the file
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		slog.SetDefault(slog.New(nopHandler{}))
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
	slog.Info("logging started", "pid", os.Getpid())
	return f, nil
}

// rotate moves an oversized log aside with a timestamp suffix
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
