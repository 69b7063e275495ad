// Package route converts directed anchors into orthogonal polylines.
//
// A line travels along the declared axis when it leaves an anchor. Two
// anchors which are not on one straight line get a right-angle corner
// between them, and two anchors with the same direction get an extra
// anchor half way so the line bends twice instead of going diagonal.
package route

import "github.com/tuanchauict/MonoSketch-sub002/geo"

// CreateJointPoints routes anchors into a reduced list of joint points.
func CreateJointPoints(anchors []geo.DirectedPoint) []geo.Point {
	mains := expandAnchors(anchors)
	if len(mains) == 0 {
		return nil
	}
	points := []geo.Point{mains[0].Point}
	prev := mains[0]
	for _, next := range mains[1:] {
		if !sameStraightLine(prev.Point, next.Point) {
			if prev.Direction == geo.Horizontal {
				points = append(points, geo.Pt(next.Left(), prev.Top()))
			} else {
				points = append(points, geo.Pt(prev.Left(), next.Top()))
			}
		}
		points = append(points, next.Point)
		prev = next
	}
	return Reduce(points)
}

func expandAnchors(anchors []geo.DirectedPoint) []geo.DirectedPoint {
	if len(anchors) == 0 {
		return nil
	}
	out := []geo.DirectedPoint{anchors[0]}
	for _, next := range anchors[1:] {
		prev := out[len(out)-1]
		if prev.Direction == next.Direction && !sameStraightLine(prev.Point, next.Point) {
			out = append(out, geo.DirectedPoint{
				Direction: prev.Direction.Perpendicular(),
				Point:     geo.Pt((prev.Left()+next.Left())/2, (prev.Top()+next.Top())/2),
			})
		}
		out = append(out, next)
	}
	return out
}

func sameStraightLine(a, b geo.Point) bool {
	return a.Left == b.Left || a.Top == b.Top
}

// Reduce merges runs of colinear points until nothing changes. The first and
// last points are kept as they are.
func Reduce(points []geo.Point) []geo.Point {
	out := reduceOnce(points)
	for {
		next := reduceOnce(out)
		if len(next) == len(out) {
			return next
		}
		out = next
	}
}

func reduceOnce(points []geo.Point) []geo.Point {
	if len(points) == 0 {
		return []geo.Point{}
	}
	list := make([]geo.Point, 0, len(points))
	for _, p := range points[1:] {
		n := len(list)
		if n >= 2 && IsOnStraightLine(list[n-2], list[n-1], p, true) {
			list[n-1] = p
		} else {
			list = append(list, p)
		}
	}
	if len(list) >= 2 && IsOnStraightLine(points[0], list[0], list[1], true) {
		list[0] = points[0]
		return list
	}
	return append([]geo.Point{points[0]}, list...)
}

// IsOnStraightLine reports whether three points share a row or a column.
// With ordered, p2 must also lie between p1 and p3.
func IsOnStraightLine(p1, p2, p3 geo.Point, ordered bool) bool {
	sameColumn := p1.Left == p2.Left && p2.Left == p3.Left
	sameRow := p1.Top == p2.Top && p2.Top == p3.Top
	if !ordered {
		return sameColumn || sameRow
	}
	return sameColumn && between(p1.Top, p2.Top, p3.Top) ||
		sameRow && between(p1.Left, p2.Left, p3.Left)
}

func between(a, b, c int) bool {
	return a <= b && b <= c || c <= b && b <= a
}

// Edge is a straight segment between two consecutive joint points.
type Edge struct {
	ID    int
	Start geo.Point
	End   geo.Point
}

func (e Edge) IsHorizontal() bool {
	return e.Start.Top == e.End.Top
}

func (e Edge) Middle() geo.PointF {
	return geo.PointF{
		Left: float64(e.Start.Left+e.End.Left) / 2,
		Top:  float64(e.Start.Top+e.End.Top) / 2,
	}
}

// Translate moves the edge across its axis so that it passes through p.
func (e Edge) Translate(p geo.Point) Edge {
	if e.IsHorizontal() {
		e.Start.Top, e.End.Top = p.Top, p.Top
	} else {
		e.Start.Left, e.End.Left = p.Left, p.Left
	}
	return e
}

func (e Edge) Contains(p geo.Point) bool {
	return IsOnStraightLine(e.Start, p, e.End, true)
}

// CreateEdges pairs consecutive points. Edge ids come from nextID.
func CreateEdges(points []geo.Point, nextID func() int) []Edge {
	if len(points) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		edges = append(edges, Edge{ID: nextID(), Start: points[i], End: points[i+1]})
	}
	return edges
}
