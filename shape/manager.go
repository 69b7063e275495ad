package shape

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

var (
	ErrNotFound = errors.New("shape: not found")
	ErrNotGroup = errors.New("shape: parent is not a group")
)

// Manager owns the shape arena. Every mutation gives the shape a new
// version from a single monotonic counter and propagates it to every
// ancestor group.
type Manager struct {
	shapes  map[ID]*Shape
	nextID  ID
	version int
	edgeID  int
}

func NewManager() *Manager {
	m := &Manager{shapes: map[ID]*Shape{}, nextID: RootID + 1}
	m.shapes[RootID] = &Shape{id: RootID, kind: KindGroup, parent: RootID, group: &group{}}
	return m
}

func (m *Manager) Root() *Shape { return m.shapes[RootID] }

func (m *Manager) Get(id ID) (*Shape, bool) {
	s, ok := m.shapes[id]
	return s, ok
}

func (m *Manager) Len() int { return len(m.shapes) - 1 }

func (m *Manager) nextEdgeID() int {
	m.edgeID++
	return m.edgeID
}

func (m *Manager) add(s *Shape, parent ID) (ID, error) {
	p, ok := m.shapes[parent]
	if !ok {
		return 0, fmt.Errorf("%w: parent %d", ErrNotFound, parent)
	}
	if p.kind != KindGroup {
		return 0, fmt.Errorf("%w: %d", ErrNotGroup, parent)
	}
	s.id = m.nextID
	s.parent = parent
	m.nextID++
	m.shapes[s.id] = s
	p.group.children = append(p.group.children, s.id)
	m.bump(s.id)
	return s.id, nil
}

func (m *Manager) AddRectangle(bound geo.Rect, extra RectangleExtra, parent ID) (ID, error) {
	return m.add(&Shape{kind: KindRectangle, bound: bound, rect: &extra}, parent)
}

func (m *Manager) AddText(bound geo.Rect, text string, extra TextExtra, parent ID) (ID, error) {
	return m.add(&Shape{kind: KindText, bound: bound, text: &Text{text: text, extra: extra}}, parent)
}

func (m *Manager) AddLine(start, end geo.DirectedPoint, extra LineExtra, parent ID) (ID, error) {
	return m.add(&Shape{kind: KindLine, line: newLine(start, end, extra, m.nextEdgeID)}, parent)
}

func (m *Manager) AddGroup(parent ID) (ID, error) {
	return m.add(&Shape{kind: KindGroup, group: &group{}}, parent)
}

// Remove deletes a shape with all its descendants and returns the removed
// ids. The root cannot be removed.
func (m *Manager) Remove(id ID) []ID {
	s, ok := m.shapes[id]
	if !ok || id == RootID {
		return nil
	}
	if p, ok := m.shapes[s.parent]; ok {
		p.group.children = slices.DeleteFunc(p.group.children, func(c ID) bool { return c == id })
		m.bump(p.id)
	}
	var removed []ID
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cs := m.shapes[cur]
		removed = append(removed, cur)
		delete(m.shapes, cur)
		if cs.group != nil {
			stack = append(stack, cs.group.children...)
		}
	}
	return removed
}

// Children returns the direct children of a group, bottom first.
func (m *Manager) Children(id ID) []ID {
	s, ok := m.shapes[id]
	if !ok || s.group == nil {
		return nil
	}
	return slices.Clone(s.group.children)
}

// Shapes returns every non-group shape in paint order, bottom first.
func (m *Manager) Shapes() []*Shape {
	var out []*Shape
	m.walk(RootID, func(s *Shape) {
		if s.kind != KindGroup {
			out = append(out, s)
		}
	})
	return out
}

func (m *Manager) walk(id ID, fn func(*Shape)) {
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := m.shapes[cur]
		fn(s)
		if s.group != nil {
			for i := len(s.group.children) - 1; i >= 0; i-- {
				stack = append(stack, s.group.children[i])
			}
		}
	}
}

// bump walks parent ids up to the root.
func (m *Manager) bump(id ID) {
	for {
		s, ok := m.shapes[id]
		if !ok {
			return
		}
		m.version++
		s.version = m.version
		if id == RootID {
			return
		}
		id = s.parent
	}
}

// SetBound moves or resizes a shape. A line is translated so that its
// bound starts at the new position; its size is kept.
func (m *Manager) SetBound(id ID, bound geo.Rect) bool {
	s, ok := m.shapes[id]
	if !ok {
		return false
	}
	switch s.kind {
	case KindRectangle, KindText:
		if s.bound == bound {
			return false
		}
		s.bound = bound
	case KindLine:
		offset := bound.Position.Sub(s.line.Bound().Position)
		if offset == (geo.Point{}) {
			return false
		}
		s.line.translate(offset)
	default:
		return false
	}
	m.bump(id)
	return true
}

func (m *Manager) SetRectangleExtra(id ID, extra RectangleExtra) bool {
	s, ok := m.shapes[id]
	if !ok || s.rect == nil || *s.rect == extra {
		return false
	}
	*s.rect = extra
	m.bump(id)
	return true
}

func (m *Manager) SetTextExtra(id ID, extra TextExtra) bool {
	s, ok := m.shapes[id]
	if !ok || s.text == nil || s.text.extra == extra {
		return false
	}
	s.text.extra = extra
	s.text.lines = nil
	m.bump(id)
	return true
}

func (m *Manager) SetText(id ID, text string) bool {
	s, ok := m.shapes[id]
	if !ok || s.text == nil || s.text.text == text {
		return false
	}
	s.text.text = text
	s.text.lines = nil
	m.bump(id)
	return true
}

func (m *Manager) SetTextEditing(id ID, editing bool) bool {
	s, ok := m.shapes[id]
	if !ok || s.text == nil || s.text.editing == editing {
		return false
	}
	s.text.editing = editing
	m.bump(id)
	return true
}

func (m *Manager) SetLineExtra(id ID, extra LineExtra) bool {
	s, ok := m.shapes[id]
	if !ok || s.line == nil || s.line.extra == extra {
		return false
	}
	s.line.extra = extra
	m.bump(id)
	return true
}

// MoveAnchor moves one end of a line. reduce merges colinear joint points
// and is meant for confirmed edits; live drags skip it.
func (m *Manager) MoveAnchor(id ID, u AnchorUpdate, reduce, justMoveAnchor bool) bool {
	s, ok := m.shapes[id]
	if !ok || s.line == nil {
		return false
	}
	updated := s.line.moveAnchorPoint(u, reduce, justMoveAnchor)
	m.bump(id)
	return updated
}

func (m *Manager) MoveEdge(id ID, edgeID int, p geo.Point, reduce bool) bool {
	s, ok := m.shapes[id]
	if !ok || s.line == nil {
		return false
	}
	if !s.line.moveEdge(edgeID, p, reduce) {
		return false
	}
	m.bump(id)
	return true
}

type ReorderOp int

const (
	ReorderFront ReorderOp = iota
	ReorderBack
	ReorderForward
	ReorderBackward
)

// Reorder changes the z-order of a shape among its siblings.
func (m *Manager) Reorder(id ID, op ReorderOp) bool {
	s, ok := m.shapes[id]
	if !ok || id == RootID {
		return false
	}
	p := m.shapes[s.parent]
	children := p.group.children
	i := slices.Index(children, id)
	if i < 0 {
		return false
	}
	j := i
	switch op {
	case ReorderFront:
		j = len(children) - 1
	case ReorderBack:
		j = 0
	case ReorderForward:
		j = min(i+1, len(children)-1)
	case ReorderBackward:
		j = max(i-1, 0)
	}
	if i == j {
		return false
	}
	children = slices.Delete(children, i, i+1)
	p.group.children = slices.Insert(children, j, id)
	m.bump(p.id)
	return true
}
