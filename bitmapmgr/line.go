package bitmapmgr

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// Line draws the polyline through points. The bitmap covers the bound of
// the points; its top-left cell is the bound's position.
func Line(points []geo.Point, extra shape.LineExtra) *bitmap.Bitmap {
	bound := geo.BoundOf(points...)
	b := &builder{
		Builder: bitmap.NewBuilder(bound.Width(), bound.Height()),
		left:    bound.Left(),
		top:     bound.Top(),
	}
	if len(points) < 2 {
		return b.Build()
	}

	putStroke(b, lineChars(points, extra.StrokeStyle()), extra.Dash)

	last := len(points) - 1
	if !extra.Start.IsZero() {
		putAnchor(b, points[0], points[1], extra.Start)
	}
	if !extra.End.IsZero() {
		putAnchor(b, points[last], points[last-1], extra.End)
	}
	return b.Build()
}

func isHorizontal(p0, p1 geo.Point) bool { return p0.Top == p1.Top }

// lineChars lists the cells of the polyline in drawing order: the first
// point, each segment with the joint ending it, then the last point.
func lineChars(points []geo.Point, st shape.StrokeStyle) []pointChar {
	straight := func(p0, p1 geo.Point) rune {
		if isHorizontal(p0, p1) {
			return st.Horizontal
		}
		return st.Vertical
	}
	segment := func(p0, p1 geo.Point) []pointChar {
		if isHorizontal(p0, p1) {
			return horizontalRun(p0.Left, p1.Left, p0.Top, st.Horizontal)
		}
		return verticalRun(p0.Left, p0.Top, p1.Top, st.Vertical)
	}

	first, last := points[0], points[len(points)-1]
	chars := []pointChar{{first.Left, first.Top, straight(first, points[1])}}
	for i := 1; i < len(points)-1; i++ {
		p0, p1, p2 := points[i-1], points[i], points[i+1]
		chars = append(chars, segment(p0, p1)...)
		chars = append(chars, pointChar{p1.Left, p1.Top, joint(st, p0, p1, p2)})
	}
	prev := points[len(points)-2]
	chars = append(chars, segment(prev, last)...)
	chars = append(chars, pointChar{last.Left, last.Top, straight(last, prev)})
	return chars
}

// joint is the char at p1 between segments p0-p1 and p1-p2.
func joint(st shape.StrokeStyle, p0, p1, p2 geo.Point) rune {
	h0, h1 := isHorizontal(p0, p1), isHorizontal(p1, p2)
	if h0 == h1 {
		if h0 {
			return st.Horizontal
		}
		return st.Vertical
	}
	left := p0.Left < p1.Left || p2.Left < p1.Left
	upper := p0.Top < p1.Top || p2.Top < p1.Top
	switch {
	case left && upper:
		return st.BottomRight
	case left:
		return st.TopRight
	case upper:
		return st.BottomLeft
	default:
		return st.TopLeft
	}
}

// putAnchor draws the head at anchor facing away from prev. The direction
// layer keeps the stroke under the head.
func putAnchor(b *builder, anchor, prev geo.Point, ac shape.AnchorChar) {
	var c rune
	switch {
	case isHorizontal(anchor, prev) && anchor.Left < prev.Left:
		c = ac.Left
	case isHorizontal(anchor, prev):
		c = ac.Right
	case anchor.Top < prev.Top:
		c = ac.Top
	default:
		c = ac.Bottom
	}
	b.put(anchor.Top, anchor.Left, c, bitmap.Transparent)
}
