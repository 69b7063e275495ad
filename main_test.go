package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func plainLineExtra() shape.LineExtra {
	return shape.LineExtra{Stroke: true, Style: shape.SingleStroke, Dash: shape.Solid}
}

func newTestModel() model {
	config := defaultConfig()
	config.Confirmations = false
	m := initialModel(config)
	m.width, m.height = 40, 12
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	switch v := next.(type) {
	case model:
		return v
	case *model:
		return *v
	}
	t.Fatalf("unexpected model %T", next)
	return m
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func repeat(key string, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = key
	}
	return keys
}

func TestCreateAndResizeRectangle(t *testing.T) {
	m := press(t, newTestModel(), "b")
	require.Equal(t, ModeResize, m.mode)
	id := m.selected
	require.NotEqual(t, shape.RootID, id)

	m = press(t, m, "l", "L", "j", "enter")
	assert.Equal(t, ModeNormal, m.mode)
	s, ok := m.engine.Shapes.Get(id)
	require.True(t, ok)
	assert.Equal(t, geo.ByLTWH(0, 0, 11, 4), s.Bound())

	assert.Equal(t, strings.Join([]string{
		"┌─────────┐",
		"│         │",
		"│         │",
		"└─────────┘",
	}, "\n"), m.engine.Text(s.Bound()))
}

func TestResizeCancel(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter")
	m = press(t, m, "r", "l", "l", "esc")
	s, _ := m.engine.Shapes.Get(m.selected)
	assert.Equal(t, geo.ByLTWH(0, 0, newRectWidth, newRectHeight), s.Bound())
}

func TestLineFollowsMovedRectangle(t *testing.T) {
	m := press(t, newTestModel(), "b")
	rect := m.selected
	m = press(t, m, "enter", "esc")

	m = press(t, m, repeat("l", newRectWidth)...)
	m = press(t, m, "j", "a")
	require.Equal(t, ModeLine, m.mode)
	line := m.selected
	target, ok := m.engine.Connectors.Target(line, shape.AnchorStart)
	require.True(t, ok, "the start is next to the rectangle")
	assert.Equal(t, rect, target)

	m = press(t, m, repeat("l", 6)...)
	m = press(t, m, "a", "esc")
	ls, _ := m.engine.Shapes.Get(line)
	assert.Equal(t, geo.DirPt(geo.Horizontal, 14, 1), ls.Line().End())
	assert.False(t, m.engine.Connectors.HasConnector(line, shape.AnchorEnd))

	m.cursorX, m.cursorY = 0, 0
	m = press(t, m, "m", "j", "j", "enter")
	rs, _ := m.engine.Shapes.Get(rect)
	assert.Equal(t, geo.ByLTWH(0, 2, newRectWidth, newRectHeight), rs.Bound())
	assert.Equal(t, geo.DirPt(geo.Horizontal, 8, 3), ls.Line().Start())
	assert.Equal(t, 2, m.cursorY)
}

func TestTextInput(t *testing.T) {
	m := press(t, newTestModel(), "t", "h", "x", "backspace", "i", "enter")
	assert.Equal(t, ModeNormal, m.mode)
	s, ok := m.engine.Shapes.Get(m.selected)
	require.True(t, ok)
	assert.Equal(t, "hi", s.Text().Text())
	assert.Equal(t, geo.ByLTWH(0, 0, 2, 1), s.Bound())
	assert.Equal(t, "hi", m.engine.Text(s.Bound()))

	before := m.engine.Shapes.Len()
	m.selected = shape.RootID
	m.cursorY = 3
	m = press(t, m, "t", "x", "esc")
	assert.Equal(t, before, m.engine.Shapes.Len(), "cancelled text is removed")

	m.cursorY = 0
	m = press(t, m, "e", "!", "esc")
	s, _ = m.engine.Shapes.Get(s.ID())
	assert.Equal(t, "hi", s.Text().Text(), "cancel restores the text")
}

func TestDeleteConfirmation(t *testing.T) {
	m := newTestModel()
	m.config.Confirmations = true
	m = press(t, m, "b", "enter")
	id := m.selected

	m = press(t, m, "d")
	require.Equal(t, ModeConfirm, m.mode)
	m = press(t, m, "n")
	_, ok := m.engine.Shapes.Get(id)
	assert.True(t, ok)

	m = press(t, m, "d", "y")
	_, ok = m.engine.Shapes.Get(id)
	assert.False(t, ok)
	assert.Equal(t, shape.RootID, m.selected)
}

func TestCycleBorder(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter", "B")
	s, _ := m.engine.Shapes.Get(m.selected)
	extra, _ := s.RectangleExtra()
	assert.Equal(t, shape.BoldStroke, extra.Stroke)

	m = press(t, m, "B", "B")
	extra, _ = s.RectangleExtra()
	assert.True(t, extra.Rounded)
	m = press(t, m, "B")
	extra, _ = s.RectangleExtra()
	assert.False(t, extra.Border)
}

func TestMouseDrag(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter", "esc")

	m = update(t, m, tea.MouseMsg{X: 1, Y: 0, Type: tea.MouseLeft})
	require.NotNil(t, m.drag)
	m = update(t, m, tea.MouseMsg{X: 3, Y: 1, Type: tea.MouseMotion})
	m = update(t, m, dragMsg{})
	s, _ := m.engine.Shapes.Get(m.selected)
	assert.Equal(t, geo.Pt(2, 1), s.Bound().Position)

	m = update(t, m, tea.MouseMsg{X: 4, Y: 2, Type: tea.MouseRelease})
	assert.Nil(t, m.drag)
	assert.Equal(t, geo.Pt(3, 2), s.Bound().Position)

	m = update(t, m, tea.MouseMsg{X: 30, Y: 8, Type: tea.MouseLeft})
	assert.Equal(t, shape.RootID, m.selected)
}

func TestMouseDragLineEdge(t *testing.T) {
	m := newTestModel()
	id, err := m.engine.Shapes.AddLine(geo.DirPt(geo.Horizontal, 2, 2), geo.DirPt(geo.Horizontal, 12, 2), plainLineExtra(), shape.RootID)
	require.NoError(t, err)

	m = update(t, m, tea.MouseMsg{X: 6, Y: 2, Type: tea.MouseLeft})
	require.NotNil(t, m.drag)
	assert.True(t, m.drag.onEdge)
	m = update(t, m, tea.MouseMsg{X: 7, Y: 5, Type: tea.MouseMotion})
	m = update(t, m, dragMsg{})
	m = update(t, m, tea.MouseMsg{X: 7, Y: 5, Type: tea.MouseRelease})

	s, _ := m.engine.Shapes.Get(id)
	l := s.Line()
	assert.Equal(t, geo.DirPt(geo.Horizontal, 2, 2), l.Start())
	assert.Equal(t, geo.DirPt(geo.Horizontal, 12, 2), l.End())
	assert.Equal(t, []geo.Point{{Left: 2, Top: 2}, {Left: 2, Top: 5}, {Left: 12, Top: 5}, {Left: 12, Top: 2}}, l.JointPoints())
}

func TestMouseBoxSelection(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter", "esc")
	first := m.selected
	second, err := m.engine.Shapes.AddRectangle(geo.ByLTWH(20, 5, 4, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)

	m = update(t, m, tea.MouseMsg{X: 30, Y: 9, Type: tea.MouseLeft})
	require.NotNil(t, m.drag)
	m = update(t, m, tea.MouseMsg{X: 22, Y: 6, Type: tea.MouseMotion})
	assert.Equal(t, []shape.ID{second}, m.boxed)
	m = update(t, m, tea.MouseMsg{X: 5, Y: 1, Type: tea.MouseRelease})
	assert.Equal(t, []shape.ID{first, second}, m.boxed)
	assert.Equal(t, second, m.selected, "the topmost shape is the primary selection")

	m = press(t, m, "d")
	assert.Zero(t, m.engine.Shapes.Len())
	assert.Empty(t, m.boxed)
}

func TestStatusTimeout(t *testing.T) {
	m := newTestModel()
	m.setStatus("saved", "")
	stale := m.statusSeq
	m.setStatus("saved again", "")

	m = update(t, m, clearStatusMsg{stale})
	assert.Equal(t, "saved again", m.successMessage)
	m = update(t, m, clearStatusMsg{m.statusSeq})
	assert.Empty(t, m.successMessage)
}

func TestView(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter", "esc")
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, m.height)
	assert.Contains(t, lines[len(lines)-1], "NORMAL")

	m = press(t, m, "?")
	assert.True(t, strings.HasPrefix(m.View(), "monogrid help"))
	m = press(t, m, "x")
	assert.False(t, m.help)
}

func TestExportTXT(t *testing.T) {
	m := press(t, newTestModel(), "b", "enter", "esc")
	m.config.SaveDirectory = t.TempDir()
	m = press(t, m, "s", "o", "u", "t", "enter")
	assert.Empty(t, m.errorMessage)

	data, err := os.ReadFile(filepath.Join(m.config.SaveDirectory, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "┌──────┐\n│      │\n└──────┘\n", string(data))
}

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "a\r\nb\tc\x07\n\n", "a\nb    c"},
		{"rtf", "{\\rtf1\\ansi{\\fonttbl\\f0 Helvetica;}\\f0 Hello\\par World}", "Hello\nWorld"},
		{"html", "<html><body><div>x &amp; y</div></body></html>", "x & y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanClipboardText(tt.in))
		})
	}
	assert.Equal(t, geo.Size{Width: 4, Height: 2}, textSize("ab\nabcd"))
}
