package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// logPath is under $XDG_STATE_HOME, or the temp dir when it is not set.
func logPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "monogrid", "monogrid.log")
}

func setupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})))
	return f, nil
}
