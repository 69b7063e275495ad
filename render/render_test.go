package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanchauict/MonoSketch-sub002/board"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

var plainLine = shape.LineExtra{Stroke: true, Style: shape.SingleStroke, Dash: shape.Solid}

func rows(r ...string) string { return strings.Join(r, "\n") }

// crossed builds a 5x3 rectangle with a vertical line running through its
// top border.
func crossed(t *testing.T) (*Engine, shape.ID, shape.ID) {
	t.Helper()
	e := New()
	rect, err := e.Shapes.AddRectangle(geo.ByLTWH(0, 0, 5, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)
	line, err := e.Shapes.AddLine(geo.DirPt(geo.Vertical, 2, -2), geo.DirPt(geo.Vertical, 2, 1), plainLine, shape.RootID)
	require.NoError(t, err)
	return e, rect, line
}

func TestEngineText(t *testing.T) {
	e, _, _ := crossed(t)
	assert.Equal(t, rows(
		"  │  ",
		"  │  ",
		"┌─┼─┐",
		"│ │ │",
		"└───┘",
	), e.Text(geo.ByLTWH(0, -2, 5, 5)))

	assert.Equal(t, rows(
		"│ │",
		"└──",
	), e.Text(geo.ByLTWH(0, 1, 3, 2)))
}

func TestEngineArrowOnBorder(t *testing.T) {
	e := New()
	_, err := e.Shapes.AddRectangle(geo.ByLTWH(0, 0, 5, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)
	_, err = e.Shapes.AddLine(geo.DirPt(geo.Horizontal, 9, 1), geo.DirPt(geo.Horizontal, 4, 1), shape.DefaultLineExtra(), shape.RootID)
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌───┐     ",
		"│   ◀─────",
		"└───┘     ",
	), e.Text(geo.ByLTWH(0, 0, 10, 3)))
}

func TestEngineExport(t *testing.T) {
	_, err := New().Export()
	require.ErrorIs(t, err, ErrEmptyBoard)

	e, _, _ := crossed(t)
	bound, ok := e.ContentBound()
	require.True(t, ok)
	assert.Equal(t, geo.ByLTWH(0, -2, 5, 5), bound)

	out, err := e.Export()
	require.NoError(t, err)
	assert.Equal(t, e.Text(bound), out)
}

func TestEngineDrawRegistersShapes(t *testing.T) {
	e, rect, line := crossed(t)
	// Outside the window, so registered but not drawn.
	hidden, err := e.Shapes.AddRectangle(geo.ByLTWH(8, 8, 3, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)

	e.Draw(geo.ByLTWH(0, 0, 5, 3), map[shape.ID]board.Highlight{rect: board.HighlightSelected})

	ids := func(p geo.Point) []shape.ID {
		var out []shape.ID
		for _, s := range e.Searcher.Shapes(p) {
			out = append(out, s.ID())
		}
		return out
	}
	assert.Equal(t, []shape.ID{rect, line}, ids(geo.Pt(2, 0)))
	assert.Equal(t, []shape.ID{rect}, ids(geo.Pt(0, 1)))
	assert.Empty(t, ids(geo.Pt(1, 1)))
	assert.Equal(t, []shape.ID{hidden}, ids(geo.Pt(8, 8)))

	assert.Equal(t, board.HighlightSelected, e.Board().Get(0, 0).Highlight)
	assert.Equal(t, board.HighlightNone, e.Board().Get(2, 1).Highlight)
	assert.True(t, e.Board().Get(8, 8).IsTransparent(), "outside the window")
}

func TestEnginePartialDrawKeepsZOrder(t *testing.T) {
	e := New()
	wide, err := e.Shapes.AddRectangle(geo.ByLTWH(0, 0, 40, 5), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)
	top, err := e.Shapes.AddRectangle(geo.ByLTWH(34, 0, 4, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)

	ids := func() []shape.ID {
		var out []shape.ID
		for _, s := range e.Searcher.Shapes(geo.Pt(35, 0)) {
			out = append(out, s.ID())
		}
		return out
	}

	e.Draw(geo.ByLTWH(0, 0, 48, 16), nil)
	assert.Equal(t, []shape.ID{wide, top}, ids())

	for range 3 {
		e.Draw(geo.ByLTWH(0, 0, 10, 10), nil)
	}
	assert.Equal(t, []shape.ID{wide, top}, ids(), "redraws do not duplicate owners")

	e.Shapes.Reorder(top, shape.ReorderBack)
	e.Draw(geo.ByLTWH(0, 0, 10, 10), nil)
	assert.Equal(t, []shape.ID{top, wide}, ids())
}

func TestEngineRemove(t *testing.T) {
	e := New()
	group, err := e.Shapes.AddGroup(shape.RootID)
	require.NoError(t, err)
	rect, err := e.Shapes.AddRectangle(geo.ByLTWH(10, 0, 5, 5), shape.DefaultRectangleExtra(), group)
	require.NoError(t, err)
	line, err := e.Shapes.AddLine(geo.DirPt(geo.Horizontal, 0, 2), geo.DirPt(geo.Horizontal, 9, 2), plainLine, shape.RootID)
	require.NoError(t, err)

	target, ok := e.Connect(line, shape.AnchorEnd)
	require.True(t, ok)
	assert.Equal(t, rect, target)
	e.Draw(geo.ByLTWH(0, 0, 20, 10), nil)
	require.Equal(t, 2, e.Bitmaps.Len())

	assert.ElementsMatch(t, []shape.ID{group, rect}, e.Remove(group))
	assert.False(t, e.Connectors.HasConnector(line, shape.AnchorEnd))
	assert.Equal(t, 1, e.Bitmaps.Len())

	e.Draw(geo.ByLTWH(0, 0, 20, 10), nil)
	assert.Empty(t, e.Searcher.Shapes(geo.Pt(10, 0)))

	e.Remove(line)
	assert.Zero(t, e.Connectors.Len())
	assert.Zero(t, e.Bitmaps.Len())
}

func TestEngineSetBoundDragsLines(t *testing.T) {
	e := New()
	rect, err := e.Shapes.AddRectangle(geo.ByLTWH(10, 0, 5, 5), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)
	line, err := e.Shapes.AddLine(geo.DirPt(geo.Horizontal, 0, 2), geo.DirPt(geo.Horizontal, 9, 2), plainLine, shape.RootID)
	require.NoError(t, err)
	_, ok := e.Connect(line, shape.AnchorEnd)
	require.True(t, ok)

	moved := e.SetBound(rect, geo.ByLTWH(20, 4, 5, 5), true)
	assert.Equal(t, []shape.ID{line}, moved)
	ls, _ := e.Shapes.Get(line)
	assert.Equal(t, geo.DirPt(geo.Horizontal, 19, 6), ls.Line().End())

	// Moving the line itself lets go of the rectangle.
	e.SetBound(line, ls.Bound().Translate(0, 10), true)
	assert.False(t, e.Connectors.HasConnector(line, shape.AnchorEnd))
	assert.Empty(t, e.SetBound(rect, geo.ByLTWH(0, 0, 5, 5), true))
}

func TestEngineMoveAnchorConnects(t *testing.T) {
	e := New()
	rect, err := e.Shapes.AddRectangle(geo.ByLTWH(10, 0, 5, 5), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)
	line, err := e.Shapes.AddLine(geo.DirPt(geo.Horizontal, 0, 20), geo.DirPt(geo.Horizontal, 3, 20), plainLine, shape.RootID)
	require.NoError(t, err)

	end := shape.AnchorUpdate{Anchor: shape.AnchorEnd, Point: geo.DirPt(geo.Horizontal, 9, 3)}
	e.MoveAnchor(line, end, false)
	assert.False(t, e.Connectors.HasConnector(line, shape.AnchorEnd), "live drags do not connect")

	e.MoveAnchor(line, end, true)
	target, ok := e.Connectors.Target(line, shape.AnchorEnd)
	require.True(t, ok)
	assert.Equal(t, rect, target)

	end.Point = geo.DirPt(geo.Horizontal, 40, 40)
	e.MoveAnchor(line, end, true)
	assert.False(t, e.Connectors.HasConnector(line, shape.AnchorEnd))

	assert.False(t, e.MoveAnchor(rect, end, true))
}

func TestEngineImage(t *testing.T) {
	_, err := New().Image(geo.Rect{})
	require.ErrorIs(t, err, ErrEmptyBoard)

	e := New()
	_, err = e.Shapes.AddRectangle(geo.ByLTWH(0, 0, 3, 3), shape.DefaultRectangleExtra(), shape.RootID)
	require.NoError(t, err)

	img, err := e.Image(geo.ByLTWH(0, 0, 3, 3))
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, int(3*CellWidth), b.Dx())
	assert.Equal(t, int(3*CellHeight), b.Dy())

	inked := false
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if g := color.GrayModel.Convert(img.At(x, y)).(color.Gray); g.Y < 0x80 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "border glyphs are drawn")
}

func TestEnginePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.ErrorIs(t, New().PNG(path), ErrEmptyBoard)

	e, _, _ := crossed(t)
	require.NoError(t, e.PNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
