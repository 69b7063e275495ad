package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuanchauict/MonoSketch-sub002/board"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141"))
	errorStyle    = statusStyle.Copy().Foreground(lipgloss.Color("#F87171"))
	successStyle  = statusStyle.Copy().Foreground(lipgloss.Color("#34D399"))
)

func highlightStyle(h board.Highlight) (lipgloss.Style, bool) {
	switch h {
	case board.HighlightSelected:
		return selectedStyle, true
	case board.HighlightTextEditing:
		return editingStyle, true
	}
	return lipgloss.Style{}, false
}

// renderRow writes one board row, styling runs of highlighted cells.
func renderRow(out *strings.Builder, b *board.MonoBoard, left, top, width, cursor int) {
	var run []rune
	runHighlight := board.HighlightNone
	flush := func() {
		if len(run) == 0 {
			return
		}
		if st, ok := highlightStyle(runHighlight); ok {
			out.WriteString(st.Render(string(run)))
		} else {
			out.WriteString(string(run))
		}
		run = run[:0]
	}

	for col := 0; col < width; col++ {
		px := b.Get(left+col, top)
		r := ' '
		if !px.IsTransparent() {
			r = px.Visual
		}
		if col == cursor {
			flush()
			out.WriteString(cursorStyle.Render(string(r)))
			continue
		}
		if px.Highlight != runHighlight {
			flush()
			runHighlight = px.Highlight
		}
		run = append(run, r)
	}
	flush()
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	window := m.window()
	m.redraw()

	var out strings.Builder
	showCursor := m.mode != ModeFileInput && m.mode != ModeTextInput
	for row := 0; row < window.Height(); row++ {
		cursor := -1
		if showCursor && row == m.cursorY {
			cursor = m.cursorX
		}
		renderRow(&out, m.engine.Board(), window.Left(), window.Top()+row, window.Width(), cursor)
		out.WriteString("\n")
	}
	out.WriteString(m.statusLine())
	return out.String()
}

func (m model) statusLine() string {
	style := statusStyle
	var line string
	p := m.worldCoords()
	switch {
	case m.errorMessage != "":
		style, line = errorStyle, m.errorMessage
	case m.successMessage != "":
		style, line = successStyle, m.successMessage
	case m.mode == ModeConfirm && m.confirmAction == ConfirmQuit:
		line = "Quit? (y/n)"
	case m.mode == ModeConfirm:
		line = "Delete selected shape? (y/n)"
	case m.mode == ModeFileInput:
		kind := "text"
		if m.fileOp == FileOpSavePNG {
			kind = "PNG"
		}
		line = fmt.Sprintf("Export %s as: %s█", kind, m.filename)
	case m.mode == ModeTextInput:
		r := []rune(strings.ReplaceAll(m.textInputText, "\n", "⏎"))
		pos := min(m.textInputCursorPos, len(r))
		line = fmt.Sprintf("TEXT: %s█%s  (Enter: done, Alt+Enter: new line, Esc: cancel)", string(r[:pos]), string(r[pos:]))
	default:
		line = fmt.Sprintf("%s  %d,%d", m.mode, p.Left, p.Top)
		if m.zPanMode {
			line += "  PAN"
		}
		if s, ok := m.engine.Shapes.Get(m.selected); ok && m.selected != shape.RootID {
			b := s.Bound()
			line += fmt.Sprintf("  %s #%d %dx%d", strings.ToLower(s.Kind().String()), s.ID(), b.Width(), b.Height())
		}
		line += "  ? help"
	}
	if m.width > 0 {
		style = style.Width(m.width).MaxWidth(m.width)
	}
	return style.Render(line)
}

var helpLines = []string{
	"monogrid help",
	"=============",
	"",
	"Navigation:",
	"  h/←/j/↓/k/↑/l/→  Move cursor (Shift: 2x)",
	"  z                Toggle pan mode, direction keys then move the view",
	"  mouse wheel      Scroll the view",
	"",
	"Shapes:",
	"  b                New rectangle at cursor, then resize",
	"  t                New text at cursor",
	"  e                Edit text under cursor",
	"  a                Draw a line from cursor; a/Enter finishes at cursor",
	"  m / r            Move / resize shape; Enter confirms, Esc cancels",
	"  d / x            Delete shape",
	"  [ ] { }          Backward / forward / to back / to front",
	"  B                Cycle rectangle border style",
	"  click, drag      Select and move a shape, a line end or a line edge",
	"  drag on empty    Select every shape the box touches",
	"",
	"Lines connect to a rectangle or text when an end is dropped next to it",
	"and follow it when it moves.",
	"",
	"Files and clipboard:",
	"  s / S            Export text / PNG",
	"  y / p            Copy drawing / paste text",
	"",
	"  ?                Toggle this help",
	"  q / Ctrl+C       Quit",
}

func (m model) helpView() string {
	lines := helpLines
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}
