package connector

import (
	"cmp"
	"slices"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// Key names one end of a line. A line end has at most one connector.
type Key struct {
	Line   shape.ID
	Anchor shape.Anchor
}

func (c Connector) Key() Key { return Key{c.Line, c.Anchor} }

type binding struct {
	connector Connector
	target    shape.ID
}

// Registry is a two-way index between connectors and the shapes they are
// attached to.
type Registry struct {
	byKey    map[Key]binding
	byTarget map[shape.ID]map[Key]struct{}
}

func NewRegistry() *Registry {
	return &Registry{byKey: map[Key]binding{}, byTarget: map[shape.ID]map[Key]struct{}{}}
}

// Add attaches c to target, replacing any connector of the same line end.
func (r *Registry) Add(c Connector, target shape.ID) {
	k := c.Key()
	r.Remove(k.Line, k.Anchor)
	r.byKey[k] = binding{connector: c, target: target}
	keys, ok := r.byTarget[target]
	if !ok {
		keys = map[Key]struct{}{}
		r.byTarget[target] = keys
	}
	keys[k] = struct{}{}
}

// Connect attaches the given end of line to target if the end is around
// one of target's edges.
func (r *Registry) Connect(line *shape.Shape, a shape.Anchor, target *shape.Shape) bool {
	if line.Kind() != shape.KindLine || line.ID() == target.ID() {
		return false
	}
	c, ok := New(line.ID(), a, line.Line().AnchorPoint(a), target.Bound())
	if !ok {
		return false
	}
	r.Add(c, target.ID())
	return true
}

func (r *Registry) Remove(line shape.ID, a shape.Anchor) {
	k := Key{line, a}
	b, ok := r.byKey[k]
	if !ok {
		return
	}
	delete(r.byKey, k)
	keys := r.byTarget[b.target]
	delete(keys, k)
	if len(keys) == 0 {
		delete(r.byTarget, b.target)
	}
}

func (r *Registry) HasConnector(line shape.ID, a shape.Anchor) bool {
	_, ok := r.byKey[Key{line, a}]
	return ok
}

// Target returns the shape the line end is attached to.
func (r *Registry) Target(line shape.ID, a shape.Anchor) (shape.ID, bool) {
	b, ok := r.byKey[Key{line, a}]
	return b.target, ok
}

// Connectors returns the connectors attached to target ordered by line id
// then anchor.
func (r *Registry) Connectors(target shape.ID) []Connector {
	keys := r.byTarget[target]
	out := make([]Connector, 0, len(keys))
	for k := range keys {
		out = append(out, r.byKey[k].connector)
	}
	slices.SortFunc(out, func(a, b Connector) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Anchor, b.Anchor))
	})
	return out
}

// RemoveShape drops every connector attached to id and, when id is a line,
// the connectors of its own ends.
func (r *Registry) RemoveShape(id shape.ID) {
	for k := range r.byTarget[id] {
		delete(r.byKey, k)
	}
	delete(r.byTarget, id)
	r.Remove(id, shape.AnchorStart)
	r.Remove(id, shape.AnchorEnd)
}

func (r *Registry) Len() int { return len(r.byKey) }

// LineMover is the part of the shape manager rebinding needs.
type LineMover interface {
	Get(id shape.ID) (*shape.Shape, bool)
	MoveAnchor(id shape.ID, u shape.AnchorUpdate, reduce, justMoveAnchor bool) bool
}

// Rebind moves the connected ends of every line attached to target so they
// follow target to newBound. Lines are reduced only when confirmed is set,
// which callers use for the final update of a drag. It returns the ids of
// the lines it moved.
func Rebind(shapes LineMover, reg *Registry, target shape.ID, newBound geo.Rect, confirmed bool) []shape.ID {
	var moved []shape.ID
	for _, c := range reg.Connectors(target) {
		s, ok := shapes.Get(c.Line)
		if !ok || s.Kind() != shape.KindLine {
			continue
		}
		u := shape.AnchorUpdate{
			Anchor: c.Anchor,
			Point:  c.PointInBound(s.Line().Direction(c.Anchor), newBound),
		}
		shapes.MoveAnchor(c.Line, u, confirmed, true)
		if len(moved) == 0 || moved[len(moved)-1] != c.Line {
			moved = append(moved, c.Line)
		}
	}
	return moved
}
