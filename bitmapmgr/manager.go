// Package bitmapmgr rasterises shapes into bitmaps and caches the result
// per shape version.
package bitmapmgr

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

type cached struct {
	version int
	bm      *bitmap.Bitmap
}

// Manager memoises shape bitmaps. A cached bitmap is reused only while the
// shape's version is unchanged. It is not safe for concurrent use.
type Manager struct {
	cache map[shape.ID]cached
}

func New() *Manager {
	return &Manager{cache: map[shape.ID]cached{}}
}

// Bitmap returns the bitmap of s, or nil for shapes that are never drawn
// (groups).
func (m *Manager) Bitmap(s *shape.Shape) *bitmap.Bitmap {
	if s == nil {
		return nil
	}
	if c, ok := m.cache[s.ID()]; ok && c.version == s.Version() {
		return c.bm
	}
	bm := create(s)
	if bm == nil {
		delete(m.cache, s.ID())
		return nil
	}
	m.cache[s.ID()] = cached{version: s.Version(), bm: bm}
	return bm
}

func (m *Manager) Remove(id shape.ID) {
	delete(m.cache, id)
}

func (m *Manager) Len() int { return len(m.cache) }

func create(s *shape.Shape) *bitmap.Bitmap {
	switch s.Kind() {
	case shape.KindRectangle:
		extra, _ := s.RectangleExtra()
		return Rectangle(s.Bound().Size, extra)
	case shape.KindText:
		t := s.Text()
		return Text(s.Bound().Size, t.Lines(s.Bound().Width()), t.Extra(), t.IsEditing())
	case shape.KindLine:
		return Line(s.Line().ReducedJointPoints(), s.Line().Extra())
	default:
		// Groups change with every child edit and have nothing of their own
		// to draw.
		return nil
	}
}

type pointChar struct {
	left, top int
	char      rune
}

// run returns the cells strictly between from and to, walking from from.
func run(from, to int) []int {
	if from-to <= 1 && to-from <= 1 {
		return nil
	}
	step := 1
	if from > to {
		step = -1
	}
	out := make([]int, 0, max(from-to, to-from)-1)
	for i := from + step; i != to; i += step {
		out = append(out, i)
	}
	return out
}

func horizontalRun(from, to, top int, char rune) []pointChar {
	cols := run(from, to)
	out := make([]pointChar, len(cols))
	for i, c := range cols {
		out[i] = pointChar{c, top, char}
	}
	return out
}

func verticalRun(left, from, to int, char rune) []pointChar {
	rows := run(from, to)
	out := make([]pointChar, len(rows))
	for i, r := range rows {
		out[i] = pointChar{left, r, char}
	}
	return out
}

// putStroke writes chars in order, dropping the visual of cells that fall
// in a dash gap. The direction layer keeps the stroke so gaps still join
// crossings.
func putStroke(b *builder, chars []pointChar, dash shape.DashPattern) {
	for i, pc := range chars {
		visual := pc.char
		if dash.IsGap(i) {
			visual = ' '
		}
		b.put(pc.top, pc.left, visual, pc.char)
	}
}

// builder offsets writes into a bitmap.Builder whose origin is (left, top).
type builder struct {
	*bitmap.Builder
	left, top int
}

func (b *builder) put(top, left int, visual, direction rune) {
	b.Put(top-b.top, left-b.left, visual, direction)
}
