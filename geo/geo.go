// Package geo holds the value types shared by the board, bitmaps and
// shapes. Everything here is copied by value.
package geo

type Point struct {
	Left int `json:"l"`
	Top  int `json:"t"`
}

func Pt(left, top int) Point {
	return Point{Left: left, Top: top}
}

func (p Point) Row() int    { return p.Top }
func (p Point) Column() int { return p.Left }

func (p Point) Add(o Point) Point {
	return Point{Left: p.Left + o.Left, Top: p.Top + o.Top}
}

func (p Point) Sub(o Point) Point {
	return Point{Left: p.Left - o.Left, Top: p.Top - o.Top}
}

type PointF struct {
	Left float64 `json:"l"`
	Top  float64 `json:"t"`
}

type Size struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Rect is an inclusive cell rectangle: Right is Left+Width-1.
type Rect struct {
	Position Point `json:"p"`
	Size     Size  `json:"s"`
}

func ByLTWH(left, top, width, height int) Rect {
	return Rect{Position: Point{left, top}, Size: Size{width, height}}
}

// ByLTRB accepts the corners in any order.
func ByLTRB(left, top, right, bottom int) Rect {
	l, r := min(left, right), max(left, right)
	t, b := min(top, bottom), max(top, bottom)
	return ByLTWH(l, t, r-l+1, b-t+1)
}

// BoundOf returns the smallest rect containing every point. The zero Rect
// is returned for no points.
func BoundOf(points ...Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	l, t := points[0].Left, points[0].Top
	r, b := l, t
	for _, p := range points[1:] {
		l = min(l, p.Left)
		r = max(r, p.Left)
		t = min(t, p.Top)
		b = max(b, p.Top)
	}
	return ByLTRB(l, t, r, b)
}

func (r Rect) Left() int   { return r.Position.Left }
func (r Rect) Top() int    { return r.Position.Top }
func (r Rect) Right() int  { return r.Position.Left + r.Size.Width - 1 }
func (r Rect) Bottom() int { return r.Position.Top + r.Size.Height - 1 }
func (r Rect) Width() int  { return r.Size.Width }
func (r Rect) Height() int { return r.Size.Height }

func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

func (r Rect) Contains(p Point) bool {
	return p.Left >= r.Left() && p.Left <= r.Right() &&
		p.Top >= r.Top() && p.Top <= r.Bottom()
}

func (r Rect) IsOverlapped(o Rect) bool {
	_, ok := r.Overlap(o)
	return ok
}

// Overlap returns the intersection of r and o.
func (r Rect) Overlap(o Rect) (Rect, bool) {
	if r.IsEmpty() || o.IsEmpty() {
		return Rect{}, false
	}
	l := max(r.Left(), o.Left())
	t := max(r.Top(), o.Top())
	rr := min(r.Right(), o.Right())
	b := min(r.Bottom(), o.Bottom())
	if l > rr || t > b {
		return Rect{}, false
	}
	return ByLTRB(l, t, rr, b), true
}

func (r Rect) Translate(dLeft, dTop int) Rect {
	r.Position = r.Position.Add(Point{dLeft, dTop})
	return r
}

func (r Rect) WithPosition(p Point) Rect {
	r.Position = p
	return r
}

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	if d == Horizontal {
		return "HORIZONTAL"
	}
	return "VERTICAL"
}

// DirectedPoint is a line anchor together with the axis the line travels
// along when it leaves the point.
type DirectedPoint struct {
	Direction Direction `json:"d"`
	Point     Point     `json:"p"`
}

func DirPt(d Direction, left, top int) DirectedPoint {
	return DirectedPoint{Direction: d, Point: Point{left, top}}
}

func (p DirectedPoint) Left() int { return p.Point.Left }
func (p DirectedPoint) Top() int  { return p.Point.Top }
