package search

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

type ShapeSource interface {
	Get(id shape.ID) (*shape.Shape, bool)
}

type BitmapSource interface {
	Bitmap(s *shape.Shape) *bitmap.Bitmap
}

// Searcher finds drawn shapes by board position. A shape is found only
// after it has been registered, which the renderer does while drawing.
type Searcher struct {
	shapes    ShapeSource
	bitmaps   BitmapSource
	addresses *Addresses
	owners    *Owners
}

func NewSearcher(shapes ShapeSource, bitmaps BitmapSource) *Searcher {
	return &Searcher{
		shapes:    shapes,
		bitmaps:   bitmaps,
		addresses: NewAddresses(bitmaps),
		owners:    NewOwners(),
	}
}

// Register records the zones s occupies. Shapes must be registered in paint
// order.
func (s *Searcher) Register(sh *shape.Shape) {
	s.owners.Register(sh.ID(), s.addresses.Of(sh))
}

func (s *Searcher) Clear(rect geo.Rect) {
	s.owners.Clear(rect)
}

// Reset drops every registration. The cached zones of each shape are kept.
func (s *Searcher) Reset() {
	s.owners.Reset()
}

// Remove forgets the cached zones of a deleted shape. Its zone ownership
// goes with the next Clear.
func (s *Searcher) Remove(id shape.ID) {
	s.addresses.Remove(id)
}

func (s *Searcher) resolve(ids []shape.ID) []*shape.Shape {
	out := make([]*shape.Shape, 0, len(ids))
	for _, id := range ids {
		if sh, ok := s.shapes.Get(id); ok && !sh.IsGroup() {
			out = append(out, sh)
		}
	}
	return out
}

// Shapes returns the shapes with a visible or selectable cell at p, lowest
// first.
func (s *Searcher) Shapes(p geo.Point) []*shape.Shape {
	var out []*shape.Shape
	for _, sh := range s.resolve(s.owners.PotentialOwners(p)) {
		bm := s.bitmaps.Bitmap(sh)
		if bm == nil {
			continue
		}
		local := p.Sub(sh.Bound().Position)
		if !bitmap.IsTransparent(bm.Visual(local.Top, local.Left)) {
			out = append(out, sh)
		}
	}
	return out
}

// AllShapesInZone returns the registered shapes overlapping rect.
func (s *Searcher) AllShapesInZone(rect geo.Rect) []*shape.Shape {
	var out []*shape.Shape
	for _, sh := range s.resolve(s.owners.AllPotentialOwnersInZone(rect)) {
		if sh.IsOverlapped(rect) {
			out = append(out, sh)
		}
	}
	return out
}

// EdgeDirection reports the direction a line should leave p when p lies on
// the border of a rectangle or text: vertical on the left and right
// edges, horizontal on the top and bottom ones.
func (s *Searcher) EdgeDirection(p geo.Point) (geo.Direction, bool) {
	for _, sh := range s.resolve(s.owners.PotentialOwners(p)) {
		if k := sh.Kind(); k != shape.KindRectangle && k != shape.KindText {
			continue
		}
		b := sh.Bound()
		if !b.Contains(p) {
			continue
		}
		switch {
		case p.Left == b.Left() || p.Left == b.Right():
			return geo.Vertical, true
		case p.Top == b.Top() || p.Top == b.Bottom():
			return geo.Horizontal, true
		}
	}
	return 0, false
}
