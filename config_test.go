package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanchauict/MonoSketch-sub002/schedule"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigMissing(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	path := filepath.Join(home, "config.toml")
	writeConfig(t, path, `
save_directory = "~/sketches"
confirmations = false

[render]
drag_throttle_ms = 5

[style]
stroke = "double"
fill = "light"
dash = [2, 1]
end = "diamond"
`)

	config, err := loadConfig("~/config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sketches"), config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 5, config.Render.DragThrottleMS)
	assert.Equal(t, 200, config.ReloadDebounceMS, "unset keys keep their default")

	rect := config.Style.RectangleExtra()
	assert.Equal(t, shape.DoubleStroke, rect.Stroke)
	assert.True(t, rect.Border)
	assert.Equal(t, '░', rect.Fill)
	assert.Equal(t, shape.DashPattern{Dash: 2, Gap: 1}, rect.Dash)

	line := config.Style.LineExtra()
	assert.Equal(t, shape.AnchorChars["diamond"], line.End)
	assert.True(t, line.Start.IsZero())
	assert.Equal(t, shape.SingleStroke, line.Style, "unknown line style keeps the default")

	path, err = config.GetSavePath("out.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sketches", "out.txt"), path)
	assert.DirExists(t, filepath.Join(home, "sketches"))
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "confirmations = [")
	config, err := loadConfig(path)
	require.Error(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestStyleNone(t *testing.T) {
	s := StyleConfig{Stroke: "none", Line: "none"}
	assert.False(t, s.RectangleExtra().Border)
	assert.False(t, s.LineExtra().Stroke)
	assert.Equal(t, shape.Solid, s.LineExtra().Dash)
}

func TestWatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "confirmations = true\n")

	n := &schedule.Notifier[*Config]{}
	got := make(chan *Config, 8)
	n.Subscribe(func(c *Config) { got <- c })

	stop, err := watchConfig(path, 20*time.Millisecond, n)
	require.NoError(t, err)
	defer stop()

	writeConfig(t, path, "confirmations = false\n")
	select {
	case c := <-got:
		assert.False(t, c.Confirmations)
	case <-time.After(2 * time.Second):
		t.Fatal("config was not reloaded")
	}
}
