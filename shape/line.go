package shape

import (
	"slices"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/route"
)

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

func (a Anchor) String() string {
	if a == AnchorStart {
		return "START"
	}
	return "END"
}

type AnchorUpdate struct {
	Anchor Anchor
	Point  geo.DirectedPoint
}

// Line connects two directed anchors with orthogonal edges.
//
// Until one of its edges is moved the body is routed from the two anchors.
// Moving an edge confirms the body: later anchor moves only bend the ends.
type Line struct {
	start, end geo.DirectedPoint
	joints     []geo.Point
	confirmed  []geo.Point
	edges      []route.Edge
	extra      LineExtra
	nextEdgeID func() int
}

func newLine(start, end geo.DirectedPoint, extra LineExtra, nextEdgeID func() int) *Line {
	l := &Line{start: start, end: end, extra: extra, nextEdgeID: nextEdgeID}
	l.joints = route.CreateJointPoints([]geo.DirectedPoint{start, end})
	l.edges = route.CreateEdges(l.joints, nextEdgeID)
	return l
}

func (l *Line) Start() geo.DirectedPoint { return l.start }
func (l *Line) End() geo.DirectedPoint   { return l.end }
func (l *Line) Extra() LineExtra         { return l.extra }

func (l *Line) AnchorPoint(a Anchor) geo.DirectedPoint {
	if a == AnchorStart {
		return l.start
	}
	return l.end
}

func (l *Line) Direction(a Anchor) geo.Direction {
	return l.AnchorPoint(a).Direction
}

func (l *Line) JointPoints() []geo.Point {
	return slices.Clone(l.joints)
}

func (l *Line) ReducedJointPoints() []geo.Point {
	return route.Reduce(l.joints)
}

func (l *Line) Edges() []route.Edge {
	return slices.Clone(l.edges)
}

// EdgeAt returns the first edge passing through p.
func (l *Line) EdgeAt(p geo.Point) (route.Edge, bool) {
	for _, e := range l.edges {
		if e.Contains(p) {
			return e, true
		}
	}
	return route.Edge{}, false
}

// IsBodyConfirmed reports whether an edge of the line was ever moved.
func (l *Line) IsBodyConfirmed() bool {
	return len(l.confirmed) > 0
}

func (l *Line) Bound() geo.Rect {
	return geo.BoundOf(l.ReducedJointPoints()...)
}

func (l *Line) Contains(p geo.Point) bool {
	for _, e := range l.edges {
		if e.Contains(p) {
			return true
		}
	}
	return false
}

func (l *Line) IsOverlapped(rect geo.Rect) bool {
	for _, e := range l.edges {
		if geo.BoundOf(e.Start, e.End).IsOverlapped(rect) {
			return true
		}
	}
	return false
}

// moveAnchorPoint moves one end of the line.
//
// An unconfirmed body, or one with only two joint points, is routed again
// from the anchors. Otherwise with justMoveAnchor the point next to the
// anchor slides along so its edge keeps its axis, and without it a corner
// is inserted when the anchor leaves the line of its edge.
func (l *Line) moveAnchorPoint(u AnchorUpdate, reduce, justMoveAnchor bool) bool {
	if u.Anchor == AnchorStart {
		l.start = u.Point
	} else {
		l.end = u.Point
	}

	edited := len(l.confirmed) > 0
	var joints []geo.Point
	switch {
	case !edited || len(l.confirmed) == 2:
		joints = route.CreateJointPoints([]geo.DirectedPoint{l.start, l.end})
	case justMoveAnchor:
		joints = slices.Clone(l.confirmed)
		anchorIdx, affectedIdx := 0, 1
		if u.Anchor == AnchorEnd {
			anchorIdx, affectedIdx = len(joints)-1, len(joints)-2
		}
		p := u.Point.Point
		if joints[anchorIdx].Left == joints[affectedIdx].Left {
			joints[affectedIdx].Left = p.Left
		} else {
			joints[affectedIdx].Top = p.Top
		}
		joints[anchorIdx] = p
	default:
		joints = slices.Clone(l.confirmed)
		corner, ok := cornerPoint(joints, u)
		anchorIdx, cornerIdx := 0, 1
		if u.Anchor == AnchorEnd {
			anchorIdx, cornerIdx = len(joints)-1, len(joints)-1
		}
		joints[anchorIdx] = u.Point.Point
		if ok {
			joints = slices.Insert(joints, cornerIdx, corner)
		}
	}

	updated := !slices.Equal(joints, l.joints)
	if reduce {
		joints = route.Reduce(joints)
	}
	l.joints = joints
	if reduce && edited {
		l.confirmed = l.joints
	}
	l.edges = route.CreateEdges(l.joints, l.nextEdgeID)
	return updated
}

// cornerPoint is the joint point needed to reach u with a right angle from
// the edge ending at the anchor.
func cornerPoint(joints []geo.Point, u AnchorUpdate) (geo.Point, bool) {
	anchorIdx, prevIdx := 0, 1
	if u.Anchor == AnchorEnd {
		anchorIdx, prevIdx = len(joints)-1, len(joints)-2
	}
	anchor, prev, p := joints[anchorIdx], joints[prevIdx], u.Point.Point
	if route.IsOnStraightLine(anchor, prev, p, false) {
		return geo.Point{}, false
	}
	if anchor.Top == prev.Top {
		return geo.Pt(p.Left, anchor.Top), true
	}
	return geo.Pt(anchor.Left, p.Top), true
}

// moveEdge translates an edge so it passes through p. The anchors stay; the
// first and last edges get a new edge to keep them attached.
func (l *Line) moveEdge(edgeID int, p geo.Point, reduce bool) bool {
	idx := slices.IndexFunc(l.edges, func(e route.Edge) bool { return e.ID == edgeID })
	if idx < 0 {
		return false
	}
	edge := l.edges[idx]
	moved := edge.Translate(p)
	if !reduce && edge == moved {
		return false
	}

	joints := slices.Clone(l.joints)
	last := len(l.edges) - 1
	switch {
	case idx == 0 && idx == last:
		joints = slices.Insert(joints, 1, moved.Start, moved.End)
	case idx == 0:
		joints = slices.Insert(joints, 1, moved.Start)
		joints[2] = moved.End
	case idx == last:
		i := len(joints) - 2
		joints[i] = moved.Start
		joints = slices.Insert(joints, i+1, moved.End)
	default:
		joints[idx] = moved.Start
		joints[idx+1] = moved.End
	}

	updated := !slices.Equal(joints, l.joints)
	if reduce {
		joints = route.Reduce(joints)
	}
	l.joints = joints
	l.confirmed = joints

	edges := route.CreateEdges(joints, l.nextEdgeID)
	if !reduce {
		keep := idx
		if idx == 0 {
			keep = 1
		}
		if keep < len(edges) {
			edges[keep].ID = edge.ID
		}
	}
	l.edges = edges
	return updated
}

func (l *Line) translate(offset geo.Point) {
	l.start.Point = l.start.Point.Add(offset)
	l.end.Point = l.end.Point.Add(offset)
	l.joints = shifted(l.joints, offset)
	if len(l.confirmed) > 0 {
		l.confirmed = shifted(l.confirmed, offset)
	}
	edges := make([]route.Edge, len(l.edges))
	for i, e := range l.edges {
		edges[i] = route.Edge{ID: e.ID, Start: e.Start.Add(offset), End: e.End.Add(offset)}
	}
	l.edges = edges
}

func shifted(points []geo.Point, offset geo.Point) []geo.Point {
	out := make([]geo.Point, len(points))
	for i, p := range points {
		out[i] = p.Add(offset)
	}
	return out
}
