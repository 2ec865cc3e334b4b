// Package logging installs the process-wide structured logger. Records go to
// a rotating file so that they never interfere with the terminal board.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pointage/internal/osutil"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options configures the logger.
type Options struct {
	// Path is the log file. An empty path discards all records.
	Path  string
	Debug bool
}

// New returns a text logger writing to a rotating file at opts.Path. The
// returned closer releases the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	if opts.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})

	return slog.New(h), w, nil
}

// Setup creates a logger with New and makes it the default.
func Setup(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
