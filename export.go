package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// exportTXT writes the whole drawing to filename, one row per line with
// trailing spaces trimmed.
func (m *model) exportTXT(filename string) error {
	text, err := m.engine.Export()
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintln(file, strings.TrimRight(line, " ")); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

func (m *model) exportPNG(filename string) error {
	return m.engine.PNG(filename)
}

func withExtension(name, ext string) string {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

func (m *model) runExport() {
	var ext string
	var export func(string) error
	switch m.fileOp {
	case FileOpSavePNG:
		ext, export = ".png", m.exportPNG
	default:
		ext, export = ".txt", m.exportTXT
	}
	path, err := m.config.GetSavePath(withExtension(m.filename, ext))
	if err == nil {
		err = export(path)
	}
	if err != nil {
		slog.Error("export", "path", path, "err", err)
		m.setStatus("", fmt.Sprintf("Export failed: %v", err))
		return
	}
	slog.Info("exported", "path", path)
	m.setStatus("Saved "+path, "")
}

func (m *model) copyToClipboard() {
	text, err := m.engine.Export()
	if err == nil {
		err = clipboard.WriteAll(text)
	}
	if err != nil {
		slog.Error("copy to clipboard", "err", err)
		m.setStatus("", fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.setStatus("Copied drawing to clipboard", "")
}
