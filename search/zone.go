// Package search indexes drawn shapes by 16x16 zones so hit-testing only
// looks at shapes near the cursor.
package search

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

const zoneShift = 4

// ZoneAddress identifies one zone. It is a plain comparable value so
// addresses built from the same coordinates are equal map keys.
type ZoneAddress struct {
	Row, Column int
}

// AddressIndex quantises a board coordinate. The arithmetic shift floors,
// so negative coordinates land in negative zones.
func AddressIndex(n int) int { return n >> zoneShift }

func ToAddress(row, column int) ZoneAddress {
	return ZoneAddress{AddressIndex(row), AddressIndex(column)}
}

// Addresses caches the zones a shape's bitmap touches, keyed by shape id and
// valid while the shape version is unchanged.
type Addresses struct {
	bitmaps BitmapSource
	cache   map[shape.ID]zoneSet
}

type zoneSet struct {
	version int
	zones   map[ZoneAddress]struct{}
}

func NewAddresses(bitmaps BitmapSource) *Addresses {
	return &Addresses{bitmaps: bitmaps, cache: map[shape.ID]zoneSet{}}
}

// Of returns the set of zones holding a non-transparent cell of s on either
// layer. A shape without a bitmap is evicted and touches no zone.
func (a *Addresses) Of(s *shape.Shape) map[ZoneAddress]struct{} {
	if c, ok := a.cache[s.ID()]; ok && c.version == s.Version() {
		return c.zones
	}
	bm := a.bitmaps.Bitmap(s)
	if bm == nil {
		delete(a.cache, s.ID())
		return nil
	}
	zones := zonesOf(s.Bound().Position, bm)
	a.cache[s.ID()] = zoneSet{version: s.Version(), zones: zones}
	return zones
}

func (a *Addresses) Remove(id shape.ID) {
	delete(a.cache, id)
}

func zonesOf(position geo.Point, bm *bitmap.Bitmap) map[ZoneAddress]struct{} {
	zones := map[ZoneAddress]struct{}{}
	for r, row := range bm.Rows() {
		for _, cell := range row.All() {
			zones[ToAddress(position.Top+r, position.Left+cell.Index)] = struct{}{}
		}
	}
	return zones
}

// Owners maps each zone to its owners in registration order, which is the
// paint order.
type Owners struct {
	zones map[ZoneAddress][]shape.ID
}

func NewOwners() *Owners {
	return &Owners{zones: map[ZoneAddress][]shape.ID{}}
}

// Register appends owner to every zone in addresses.
func (o *Owners) Register(owner shape.ID, addresses map[ZoneAddress]struct{}) {
	for a := range addresses {
		o.zones[a] = append(o.zones[a], owner)
	}
}

// Reset forgets every zone.
func (o *Owners) Reset() {
	clear(o.zones)
}

// Clear empties every zone rect overlaps.
func (o *Owners) Clear(rect geo.Rect) {
	if rect.IsEmpty() {
		return
	}
	from := ToAddress(rect.Top(), rect.Left())
	to := ToAddress(rect.Bottom(), rect.Right())
	for r := from.Row; r <= to.Row; r++ {
		for c := from.Column; c <= to.Column; c++ {
			a := ZoneAddress{r, c}
			if owners, ok := o.zones[a]; ok {
				o.zones[a] = owners[:0]
			}
		}
	}
}

// PotentialOwners returns the owners of the zone holding p.
func (o *Owners) PotentialOwners(p geo.Point) []shape.ID {
	owners := o.zones[ToAddress(p.Top, p.Left)]
	out := make([]shape.ID, len(owners))
	copy(out, owners)
	return out
}

// AllPotentialOwnersInZone returns each owner of the zones rect touches
// once, in order of first appearance.
func (o *Owners) AllPotentialOwnersInZone(rect geo.Rect) []shape.ID {
	if rect.IsEmpty() {
		return nil
	}
	from := ToAddress(rect.Top(), rect.Left())
	to := ToAddress(rect.Bottom(), rect.Right())
	seen := map[shape.ID]bool{}
	var out []shape.ID
	for r := from.Row; r <= to.Row; r++ {
		for c := from.Column; c <= to.Column; c++ {
			for _, id := range o.zones[ZoneAddress{r, c}] {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
	}
	return out
}
