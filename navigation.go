package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func isDirectionKey(key string) bool {
	_, ok := keyOffset(key, 1)
	return ok
}

func keyOffset(key string, speed int) (geo.Point, bool) {
	switch key {
	case "h", "left", "H", "shift+left":
		return geo.Pt(-speed, 0), true
	case "l", "right", "L", "shift+right":
		return geo.Pt(speed, 0), true
	case "k", "up", "K", "shift+up":
		return geo.Pt(0, -speed), true
	case "j", "down", "J", "shift+down":
		return geo.Pt(0, speed), true
	}
	return geo.Point{}, false
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m model) handleNavigation(key string) (tea.Model, tea.Cmd) {
	d, _ := keyOffset(key, m.getMoveSpeed(key))
	switch {
	case m.zPanMode:
		m.panX += d.Left
		m.panY += d.Top
	case m.mode == ModeMove:
		m.moveSelected(d)
	case m.mode == ModeResize:
		m.resizeSelected(d)
	default:
		m.cursorX += d.Left
		m.cursorY += d.Top
		m.ensureCursorInBounds()
		if m.mode == ModeLine {
			m.dragLineEnd(false)
		}
	}
	return m, nil
}

// moveSelected moves the selected shape and the cursor with it. The
// final position is confirmed when the mode ends.
func (m *model) moveSelected(d geo.Point) {
	s, ok := m.selectedShape()
	if !ok {
		return
	}
	m.engine.SetBound(s.ID(), s.Bound().Translate(d.Left, d.Top), false)
	m.cursorX += d.Left
	m.cursorY += d.Top
	m.ensureCursorInBounds()
}

func (m *model) resizeSelected(d geo.Point) {
	s, ok := m.selectedShape()
	if !ok || s.Kind() == shape.KindLine {
		return
	}
	b := s.Bound()
	size := geo.Size{
		Width:  max(b.Width()+d.Left, 1),
		Height: max(b.Height()+d.Top, 1),
	}
	m.engine.SetBound(s.ID(), geo.Rect{Position: b.Position, Size: size}, false)
}

func (m *model) dragLineEnd(confirmed bool) {
	s, ok := m.selectedShape()
	if !ok || s.Kind() != shape.KindLine {
		return
	}
	p := m.worldCoords()
	dir := m.lineStart.Direction
	if d, ok := m.engine.Searcher.EdgeDirection(p); ok {
		dir = d
	}
	u := shape.AnchorUpdate{Anchor: shape.AnchorEnd, Point: geo.DirectedPoint{Direction: dir, Point: p}}
	m.engine.MoveAnchor(s.ID(), u, confirmed)
}

func (m *model) ensureCursorInBounds() {
	m.cursorX = min(max(m.cursorX, 0), max(m.width-1, 0))
	m.cursorY = min(max(m.cursorY, 0), max(m.canvasHeight()-1, 0))
}
