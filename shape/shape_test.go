package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

func TestManagerVersionPropagation(t *testing.T) {
	m := NewManager()
	g, err := m.AddGroup(RootID)
	require.NoError(t, err)
	r, err := m.AddRectangle(geo.ByLTWH(0, 0, 4, 4), DefaultRectangleExtra(), g)
	require.NoError(t, err)

	rect, _ := m.Get(r)
	grp, _ := m.Get(g)
	before := []int{rect.Version(), grp.Version(), m.Root().Version()}

	assert.True(t, m.SetBound(r, geo.ByLTWH(1, 1, 4, 4)))
	after := []int{rect.Version(), grp.Version(), m.Root().Version()}
	for i := range before {
		assert.Greater(t, after[i], before[i])
	}
	assert.Less(t, after[0], after[1])
	assert.Less(t, after[1], after[2])

	v := rect.Version()
	assert.False(t, m.SetBound(r, geo.ByLTWH(1, 1, 4, 4)), "same bound is not a change")
	assert.Equal(t, v, rect.Version())
}

func TestManagerAddErrors(t *testing.T) {
	m := NewManager()
	_, err := m.AddGroup(42)
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := m.AddRectangle(geo.ByLTWH(0, 0, 2, 2), DefaultRectangleExtra(), RootID)
	require.NoError(t, err)
	_, err = m.AddText(geo.ByLTWH(0, 0, 2, 2), "x", DefaultTextExtra(), r)
	assert.ErrorIs(t, err, ErrNotGroup)
}

func TestManagerPaintOrderAndRemove(t *testing.T) {
	m := NewManager()
	a, _ := m.AddRectangle(geo.ByLTWH(0, 0, 2, 2), DefaultRectangleExtra(), RootID)
	g, _ := m.AddGroup(RootID)
	b, _ := m.AddRectangle(geo.ByLTWH(0, 0, 2, 2), DefaultRectangleExtra(), g)
	c, _ := m.AddText(geo.ByLTWH(0, 0, 2, 2), "c", DefaultTextExtra(), g)
	d, _ := m.AddLine(geo.DirPt(geo.Horizontal, 0, 0), geo.DirPt(geo.Horizontal, 5, 0), DefaultLineExtra(), RootID)

	ids := func() []ID {
		var out []ID
		for _, s := range m.Shapes() {
			out = append(out, s.ID())
		}
		return out
	}
	assert.Equal(t, []ID{a, b, c, d}, ids())

	assert.True(t, m.Reorder(a, ReorderFront))
	assert.Equal(t, []ID{b, c, d, a}, ids())
	assert.False(t, m.Reorder(a, ReorderForward))
	assert.True(t, m.Reorder(c, ReorderBack))
	assert.Equal(t, []ID{c, b, d, a}, ids())

	removed := m.Remove(g)
	assert.ElementsMatch(t, []ID{g, b, c}, removed)
	_, ok := m.Get(b)
	assert.False(t, ok)
	assert.Equal(t, []ID{d, a}, m.Children(RootID))
	assert.Equal(t, 2, m.Len())
	assert.Nil(t, m.Remove(RootID))
}

func TestLineRouting(t *testing.T) {
	m := NewManager()
	id, _ := m.AddLine(geo.DirPt(geo.Horizontal, 0, 0), geo.DirPt(geo.Vertical, 10, 10), DefaultLineExtra(), RootID)
	s, _ := m.Get(id)
	l := s.Line()

	assert.Equal(t, []geo.Point{{Left: 0, Top: 0}, {Left: 10, Top: 0}, {Left: 10, Top: 10}}, l.JointPoints())
	assert.Equal(t, geo.ByLTWH(0, 0, 11, 11), s.Bound())
	assert.Len(t, l.Edges(), 2)
	assert.True(t, s.Contains(geo.Pt(5, 0)))
	assert.True(t, s.Contains(geo.Pt(10, 5)))
	assert.False(t, s.Contains(geo.Pt(5, 5)))
	assert.True(t, s.IsOverlapped(geo.ByLTWH(9, 4, 3, 3)))
	assert.False(t, s.IsOverlapped(geo.ByLTWH(2, 2, 3, 3)))

	m.MoveAnchor(id, AnchorUpdate{AnchorEnd, geo.DirPt(geo.Vertical, 20, 5)}, true, false)
	assert.Equal(t, []geo.Point{{Left: 0, Top: 0}, {Left: 20, Top: 0}, {Left: 20, Top: 5}}, l.JointPoints())
	assert.False(t, l.IsBodyConfirmed())
}

func TestLineMoveEdgeThenAnchor(t *testing.T) {
	m := NewManager()
	id, _ := m.AddLine(geo.DirPt(geo.Horizontal, 0, 0), geo.DirPt(geo.Horizontal, 10, 0), DefaultLineExtra(), RootID)
	s, _ := m.Get(id)
	l := s.Line()
	require.Len(t, l.Edges(), 1)
	edgeID := l.Edges()[0].ID

	assert.True(t, m.MoveEdge(id, edgeID, geo.Pt(5, 3), false))
	assert.Equal(t, []geo.Point{{Left: 0, Top: 0}, {Left: 0, Top: 3}, {Left: 10, Top: 3}, {Left: 10, Top: 0}}, l.JointPoints())
	assert.True(t, l.IsBodyConfirmed())
	require.Len(t, l.Edges(), 3)
	assert.Equal(t, edgeID, l.Edges()[1].ID, "the dragged edge keeps its id")
	assert.False(t, m.MoveEdge(id, 12345, geo.Pt(0, 0), false))

	m.MoveAnchor(id, AnchorUpdate{AnchorEnd, geo.DirPt(geo.Horizontal, 14, 0)}, true, true)
	assert.Equal(t, []geo.Point{{Left: 0, Top: 0}, {Left: 0, Top: 3}, {Left: 14, Top: 3}, {Left: 14, Top: 0}}, l.JointPoints())

	m.MoveAnchor(id, AnchorUpdate{AnchorEnd, geo.DirPt(geo.Horizontal, 20, 5)}, true, false)
	assert.Equal(t, []geo.Point{{Left: 0, Top: 0}, {Left: 0, Top: 3}, {Left: 14, Top: 3}, {Left: 14, Top: 5}, {Left: 20, Top: 5}}, l.JointPoints())
	assert.Equal(t, geo.DirPt(geo.Horizontal, 20, 5), l.End())
	assert.Equal(t, geo.Horizontal, l.Direction(AnchorEnd))
}

func TestLineEdgeAt(t *testing.T) {
	m := NewManager()
	id, _ := m.AddLine(geo.DirPt(geo.Horizontal, 0, 0), geo.DirPt(geo.Horizontal, 10, 0), DefaultLineExtra(), RootID)
	s, _ := m.Get(id)
	edgeID := s.Line().Edges()[0].ID
	require.True(t, m.MoveEdge(id, edgeID, geo.Pt(5, 3), false))

	e, ok := s.Line().EdgeAt(geo.Pt(7, 3))
	require.True(t, ok)
	assert.Equal(t, edgeID, e.ID)
	e, ok = s.Line().EdgeAt(geo.Pt(0, 2))
	require.True(t, ok)
	assert.False(t, e.IsHorizontal())
	_, ok = s.Line().EdgeAt(geo.Pt(5, 1))
	assert.False(t, ok)
}

func TestLineTranslate(t *testing.T) {
	m := NewManager()
	id, _ := m.AddLine(geo.DirPt(geo.Horizontal, 0, 0), geo.DirPt(geo.Vertical, 4, 4), DefaultLineExtra(), RootID)
	s, _ := m.Get(id)
	edgeID := s.Line().Edges()[0].ID
	require.True(t, m.MoveEdge(id, edgeID, geo.Pt(0, 2), true))

	assert.True(t, m.SetBound(id, geo.ByLTWH(10, 20, 1, 1)))
	assert.Equal(t, geo.Pt(10, 20), s.Bound().Position)
	assert.Equal(t, geo.DirPt(geo.Horizontal, 10, 20), s.Line().Start())
	for _, p := range s.Line().JointPoints() {
		assert.GreaterOrEqual(t, p.Left, 10)
		assert.GreaterOrEqual(t, p.Top, 20)
	}
}

func TestTextLines(t *testing.T) {
	m := NewManager()
	id, _ := m.AddText(geo.ByLTWH(0, 0, 7, 5), "hello world foo", PlainTextExtra(), RootID)
	s, _ := m.Get(id)
	assert.Equal(t, []string{"hello", "world", "foo"}, s.Text().Lines(s.Bound().Width()))

	m.SetText(id, "abcdefghij")
	m.SetTextExtra(id, DefaultTextExtra())
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, s.Text().Lines(6))
	assert.Equal(t, geo.ByLTWH(1, 1, 4, 3), s.Text().ContentBound(geo.ByLTWH(0, 0, 6, 5)))
	assert.Equal(t, []string{"a", "b"}, wrapText("ab", 1))
}

func TestDashPattern(t *testing.T) {
	gaps := func(d DashPattern) []bool {
		var out []bool
		for i := 0; i < 6; i++ {
			out = append(out, d.IsGap(i))
		}
		return out
	}
	assert.Equal(t, []bool{false, false, true, false, false, true}, gaps(DashPattern{Dash: 2, Gap: 1}))
	assert.Equal(t, []bool{true, false, false, true, false, false}, gaps(DashPattern{Dash: 2, Gap: 1, Offset: -1}))
	assert.Equal(t, make([]bool, 6), gaps(Solid))
}

func TestRectangleExtraStroke(t *testing.T) {
	e := DefaultRectangleExtra()
	e.Rounded = true
	style, ok := e.StrokeStyle()
	require.True(t, ok)
	assert.Equal(t, RoundedStroke, style)

	e.Border = false
	_, ok = e.StrokeStyle()
	assert.False(t, ok)
	assert.Equal(t, NoStroke, LineExtra{}.StrokeStyle())
}
