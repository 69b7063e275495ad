// Package connector glues line ends to the shapes they touch and moves
// them along when those shapes are resized or moved.
package connector

import (
	"math"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// maxDistance is how far outside a box edge an anchor may sit and still
// connect to it.
const maxDistance = 1

type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideTop:
		return "TOP"
	case SideRight:
		return "RIGHT"
	default:
		return "BOTTOM"
	}
}

func isAround(v, lower, upper int) bool {
	return v >= lower-maxDistance && v <= upper+maxDistance
}

// Around reports which edge of box the anchor is on. At a corner the
// anchor's direction decides: a horizontal anchor keeps to the left or
// right edge, a vertical one to the top or bottom edge.
func Around(anchor geo.DirectedPoint, box geo.Rect) (Side, bool) {
	l, t := anchor.Left(), anchor.Top()
	left := isAround(l, box.Left(), box.Left()) && isAround(t, box.Top(), box.Bottom())
	right := isAround(l, box.Right(), box.Right()) && isAround(t, box.Top(), box.Bottom())
	top := isAround(t, box.Top(), box.Top()) && isAround(l, box.Left(), box.Right())
	bottom := isAround(t, box.Bottom(), box.Bottom()) && isAround(l, box.Left(), box.Right())
	horizontal := anchor.Direction == geo.Horizontal

	switch {
	case left:
		switch {
		case top && !horizontal:
			return SideTop, true
		case bottom && !horizontal:
			return SideBottom, true
		}
		return SideLeft, true
	case top:
		if right && horizontal {
			return SideRight, true
		}
		return SideTop, true
	case right:
		if bottom && !horizontal {
			return SideBottom, true
		}
		return SideRight, true
	case bottom:
		return SideBottom, true
	}
	return 0, false
}

// Connector keeps one end of a line at a position relative to a box:
// ratio along each axis of the box plus a cell offset outside it.
type Connector struct {
	Line   shape.ID
	Anchor shape.Anchor
	Ratio  geo.PointF
	Offset geo.Point
}

// New computes the connector of a line end at anchor against box. ok is
// false when the anchor is not around any edge of the box.
func New(line shape.ID, a shape.Anchor, anchor geo.DirectedPoint, box geo.Rect) (Connector, bool) {
	side, ok := Around(anchor, box)
	if !ok {
		return Connector{}, false
	}
	return Connector{
		Line:   line,
		Anchor: a,
		Ratio:  ratio(side, anchor.Point, box),
		Offset: offset(side, anchor.Point, box),
	}, true
}

func ratio(side Side, p geo.Point, box geo.Rect) geo.PointF {
	l := clamp01(float64(p.Left-box.Left()) / float64(max(box.Width()-1, 1)))
	t := clamp01(float64(p.Top-box.Top()) / float64(max(box.Height()-1, 1)))
	switch side {
	case SideLeft:
		return geo.PointF{Left: 0, Top: t}
	case SideTop:
		return geo.PointF{Left: l, Top: 0}
	case SideRight:
		return geo.PointF{Left: 1, Top: t}
	default:
		return geo.PointF{Left: l, Top: 1}
	}
}

func clamp01(v float64) float64 { return min(max(v, 0), 1) }

func offsetToRange(v, lower, upper int) int {
	switch {
	case v < lower:
		return v - lower
	case v > upper:
		return v - upper
	}
	return 0
}

func offset(side Side, p geo.Point, box geo.Rect) geo.Point {
	switch side {
	case SideLeft:
		return geo.Pt(p.Left-box.Left(), offsetToRange(p.Top, box.Top(), box.Bottom()))
	case SideTop:
		return geo.Pt(offsetToRange(p.Left, box.Left(), box.Right()), p.Top-box.Top())
	case SideRight:
		return geo.Pt(p.Left-box.Right(), offsetToRange(p.Top, box.Top(), box.Bottom()))
	default:
		return geo.Pt(offsetToRange(p.Left, box.Left(), box.Right()), p.Top-box.Bottom())
	}
}

// PointInBound is where the connected line end sits for box.
func (c Connector) PointInBound(d geo.Direction, box geo.Rect) geo.DirectedPoint {
	left := math.Floor(float64(box.Left()) + float64(box.Width()-1)*c.Ratio.Left + float64(c.Offset.Left))
	top := math.Floor(float64(box.Top()) + float64(box.Height()-1)*c.Ratio.Top + float64(c.Offset.Top))
	return geo.DirPt(d, int(left), int(top))
}
