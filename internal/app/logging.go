package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/five82/marquee/internal/config"
)

// newLogger opens the log file named by cfg. The terminal belongs to the
// TUI, so records only ever go to the file. Every record carries the
// session id of this run.
func newLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()})
	logger := slog.New(handler).With("session", uuid.NewString())
	return logger, f.Close, nil
}
