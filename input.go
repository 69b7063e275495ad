package main

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// startText edits s, or a new plain text at the cursor when s is nil.
func (m *model) startText(s *shape.Shape) {
	if s == nil {
		bound := geo.Rect{Position: m.worldCoords(), Size: geo.Size{Width: 1, Height: 1}}
		id, err := m.engine.Shapes.AddText(bound, "", m.config.Style.TextExtra(), shape.RootID)
		if err != nil {
			m.setStatus("", err.Error())
			return
		}
		m.selectShape(id)
		m.newText = true
		m.originalText = ""
	} else {
		m.selectShape(s.ID())
		m.newText = false
		m.originalText = s.Text().Text()
	}
	m.textInputText = m.originalText
	m.textInputCursorPos = len([]rune(m.textInputText))
	m.mode = ModeTextInput
}

// setText updates the edited shape. A new text grows to fit its lines; an
// existing one keeps its bound and wraps.
func (m *model) setText(text string) {
	m.textInputText = text
	m.engine.Shapes.SetText(m.selected, text)
	if !m.newText {
		return
	}
	if s, ok := m.engine.Shapes.Get(m.selected); ok {
		m.engine.SetBound(m.selected, geo.Rect{Position: s.Bound().Position, Size: textSize(text)}, false)
	}
}

func (m model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := []rune(m.textInputText)
	pos := min(m.textInputCursorPos, len(r))
	insert := func(rs ...rune) {
		r = slices.Insert(r, pos, rs...)
		pos += len(rs)
	}

	switch msg.Type {
	case tea.KeyEscape:
		if m.newText {
			m.deleteSelected()
		} else {
			m.setText(m.originalText)
		}
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		if msg.Alt {
			insert('\n')
			break
		}
		if m.newText && strings.TrimSpace(m.textInputText) == "" {
			m.deleteSelected()
		}
		m.mode = ModeNormal
		return m, nil
	case tea.KeyBackspace:
		if pos > 0 {
			r = slices.Delete(r, pos-1, pos)
			pos--
		}
	case tea.KeyDelete:
		if pos < len(r) {
			r = slices.Delete(r, pos, pos+1)
		}
	case tea.KeyLeft:
		pos = max(pos-1, 0)
	case tea.KeyRight:
		pos = min(pos+1, len(r))
	case tea.KeyRunes, tea.KeySpace:
		insert(msg.Runes...)
	default:
		return m, nil
	}
	m.textInputCursorPos = pos
	m.setText(string(r))
	return m, nil
}
