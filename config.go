package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/schedule"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

const defaultConfigPath = "~/.config/monogrid/config.toml"

type Config struct {
	SaveDirectory    string       `toml:"save_directory"`
	Confirmations    bool         `toml:"confirmations"`
	ReloadDebounceMS int          `toml:"reload_debounce_ms"`
	Render           RenderConfig `toml:"render"`
	Style            StyleConfig  `toml:"style"`
}

type RenderConfig struct {
	// DragThrottleMS limits how often a mouse drag repaints the board.
	DragThrottleMS int `toml:"drag_throttle_ms"`
}

// StyleConfig holds the style of newly created shapes. Names refer to the
// stroke, fill and anchor tables of the shape package.
type StyleConfig struct {
	Stroke  string `toml:"stroke"`
	Fill    string `toml:"fill"`
	Dash    []int  `toml:"dash"`
	Rounded bool   `toml:"rounded"`
	Line    string `toml:"line"`
	Start   string `toml:"start"`
	End     string `toml:"end"`
}

func defaultConfig() *Config {
	return &Config{
		Confirmations:    true,
		ReloadDebounceMS: 200,
		Render:           RenderConfig{DragThrottleMS: 16},
		Style: StyleConfig{
			Stroke: "single",
			Fill:   "none",
			Line:   "single",
			End:    "arrow",
		},
	}
}

// loadConfig reads the TOML file at path over the defaults. A missing file
// is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	path, err := homedir.Expand(path)
	if err != nil {
		return config, fmt.Errorf("expand config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	if config.SaveDirectory != "" {
		dir, err := homedir.Expand(config.SaveDirectory)
		if err != nil {
			return config, fmt.Errorf("expand save_directory: %w", err)
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		config.SaveDirectory = dir
	}
	return config, nil
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func millis(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }

func (s StyleConfig) dash() shape.DashPattern {
	d := shape.Solid
	if len(s.Dash) > 0 {
		d.Dash = max(s.Dash[0], 1)
	}
	if len(s.Dash) > 1 {
		d.Gap = max(s.Dash[1], 0)
	}
	return d
}

func (s StyleConfig) RectangleExtra() shape.RectangleExtra {
	e := shape.DefaultRectangleExtra()
	if st, ok := shape.StrokeStyles[s.Stroke]; ok {
		e.Stroke = st
	} else if s.Stroke == "none" {
		e.Border = false
	}
	if f, ok := shape.FillChars[s.Fill]; ok {
		e.Fill = f
	}
	e.Dash = s.dash()
	e.Rounded = s.Rounded
	return e
}

func (s StyleConfig) LineExtra() shape.LineExtra {
	e := shape.DefaultLineExtra()
	if st, ok := shape.StrokeStyles[s.Line]; ok {
		e.Style = st
	} else if s.Line == "none" {
		e.Stroke = false
	}
	e.Start = shape.AnchorChars[s.Start]
	e.End = shape.AnchorChars[s.End]
	e.Dash = s.dash()
	e.Rounded = s.Rounded
	return e
}

func (s StyleConfig) TextExtra() shape.TextExtra {
	e := shape.PlainTextExtra()
	if f, ok := shape.FillChars[s.Fill]; ok && f != bitmap.Transparent {
		e.Bound.Fill = f
	}
	return e
}

// watchConfig reloads the config file whenever it changes and notifies
// subscribers with the new value. Bursts of writes are coalesced.
func watchConfig(path string, d time.Duration, n *schedule.Notifier[*Config]) (func(), error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	// Editors replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	reload := schedule.Debounce(d)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				reload.Do(func() {
					config, err := loadConfig(path)
					if err != nil {
						slog.Error("reload config", "path", path, "err", err)
						return
					}
					slog.Info("config reloaded", "path", path)
					n.Notify(config)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher", "err", err)
			}
		}
	}()

	return func() {
		reload.Cancel()
		watcher.Close()
	}, nil
}
