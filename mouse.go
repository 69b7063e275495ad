package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func anchorAt(l *shape.Line, p geo.Point) (shape.Anchor, bool) {
	switch p {
	case l.Start().Point:
		return shape.AnchorStart, true
	case l.End().Point:
		return shape.AnchorEnd, true
	}
	return 0, false
}

// Live drag updates are throttled; the release confirms the final position.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	p := m.worldAt(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseWheelUp:
		m.panY--
	case tea.MouseWheelDown:
		m.panY++
	case tea.MouseLeft:
		if msg.Y >= m.canvasHeight() {
			return m, nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y
		s, ok := m.shapeAt(p)
		if !ok {
			m.selectShape(shape.RootID)
			m.drag = &drag{box: true, from: p, to: p}
			return m, nil
		}
		m.selectShape(s.ID())
		d := &drag{id: s.ID(), from: p, to: p, bound: s.Bound()}
		if s.Kind() == shape.KindLine {
			d.anchor, d.onAnchor = anchorAt(s.Line(), p)
			if !d.onAnchor {
				if e, ok := s.Line().EdgeAt(p); ok {
					d.edgeID, d.onEdge = e.ID, true
				}
			}
		}
		m.drag = d
	case tea.MouseMotion:
		if m.drag == nil {
			return m, nil
		}
		m.drag.to = p
		if m.drag.box {
			m.selectBox(geo.BoundOf(m.drag.from, p))
			return m, nil
		}
		msgs := m.msgs
		m.dragging.Do(func() { msgs.Notify(dragMsg{}) })
	case tea.MouseRelease:
		if m.drag == nil {
			return m, nil
		}
		m.drag.to = p
		m.dragging.Cancel()
		m.applyDrag(true)
		m.drag = nil
	}
	return m, nil
}

func (m *model) applyDrag(confirmed bool) {
	d := m.drag
	switch {
	case d == nil:
	case d.box:
		if d.from != d.to {
			m.selectBox(geo.BoundOf(d.from, d.to))
		}
	case d.onEdge:
		m.engine.MoveEdge(d.id, d.edgeID, d.to, confirmed)
	case d.onAnchor:
		s, ok := m.engine.Shapes.Get(d.id)
		if !ok || s.Kind() != shape.KindLine {
			return
		}
		dir := s.Line().Direction(d.anchor)
		if e, ok := m.engineEdgeDirection(d.to); ok {
			dir = e
		}
		u := shape.AnchorUpdate{Anchor: d.anchor, Point: geo.DirectedPoint{Direction: dir, Point: d.to}}
		m.engine.MoveAnchor(d.id, u, confirmed)
	default:
		offset := d.to.Sub(d.from)
		m.engine.SetBound(d.id, d.bound.Translate(offset.Left, offset.Top), confirmed)
	}
}
