// Package board composites bitmaps onto an unbounded character board.
//
// A MonoBoard is tiled with fixed-size PainterBoards which are allocated
// the first time a write touches them, so negative coordinates and sparse
// drawings cost nothing until used.
package board

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

var DefaultUnitSize = geo.Size{Width: 16, Height: 16}

type address struct {
	row, col int
}

type MonoBoard struct {
	unit     geo.Size
	boards   map[address]*PainterBoard
	window   geo.Rect
	windowed bool
}

func NewMonoBoard(unit geo.Size) *MonoBoard {
	if unit.Width <= 0 || unit.Height <= 0 {
		unit = DefaultUnitSize
	}
	return &MonoBoard{unit: unit, boards: map[address]*PainterBoard{}}
}

func (b *MonoBoard) BoardCount() int { return len(b.boards) }

// ClearAndSetWindow limits later writes to window and clears the boards
// it covers.
func (b *MonoBoard) ClearAndSetWindow(window geo.Rect) {
	b.window = window
	b.windowed = true
	for _, pb := range b.boards {
		if pb.bound.IsOverlapped(window) {
			pb.Clear()
		}
	}
}

// floorDiv rounds towards negative infinity.
func floorDiv(x, d int) int {
	q := x / d
	if x%d != 0 && x < 0 {
		q--
	}
	return q
}

func (b *MonoBoard) addressOf(left, top int) address {
	return address{row: floorDiv(top, b.unit.Height), col: floorDiv(left, b.unit.Width)}
}

func (b *MonoBoard) boardBound(a address) geo.Rect {
	return geo.ByLTWH(a.col*b.unit.Width, a.row*b.unit.Height, b.unit.Width, b.unit.Height)
}

// clip cuts rect to the window, if one is set.
func (b *MonoBoard) clip(rect geo.Rect) (geo.Rect, bool) {
	if b.windowed {
		return rect.Overlap(b.window)
	}
	return rect, !rect.IsEmpty()
}

// boardsFor returns the boards covering rect, creating missing ones. Boards
// entirely outside the window are skipped.
func (b *MonoBoard) boardsFor(rect geo.Rect) []*PainterBoard {
	rect, ok := b.clip(rect)
	if !ok {
		return nil
	}
	from := b.addressOf(rect.Left(), rect.Top())
	to := b.addressOf(rect.Right(), rect.Bottom())
	var out []*PainterBoard
	for row := from.row; row <= to.row; row++ {
		for col := from.col; col <= to.col; col++ {
			a := address{row, col}
			pb, ok := b.boards[a]
			if !ok {
				pb = NewPainterBoard(b.boardBound(a))
				b.boards[a] = pb
			}
			out = append(out, pb)
		}
	}
	return out
}

func (b *MonoBoard) pixelAt(left, top int) *Pixel {
	pb, ok := b.boards[b.addressOf(left, top)]
	if !ok {
		return nil
	}
	return pb.pixelAt(left, top)
}

// Fill composites bm at position and resolves line crossings against what
// is already on the board.
func (b *MonoBoard) Fill(position geo.Point, bm *bitmap.Bitmap, h Highlight) {
	if bm == nil || bm.IsEmpty() {
		return
	}
	var crosses []CrossPoint
	for _, pb := range b.boardsFor(geo.Rect{Position: position, Size: bm.Size()}) {
		crosses = append(crosses, pb.FillBitmap(position, bm, h)...)
	}
	for _, cp := range crosses {
		b.resolve(cp, h)
	}
}

func (b *MonoBoard) resolve(cp CrossPoint, h Highlight) {
	px := b.pixelAt(cp.Left, cp.Top)
	if px == nil {
		return
	}
	lowerNeighbors := [4]rune{
		b.Get(cp.Left-1, cp.Top).Direction,
		b.Get(cp.Left+1, cp.Top).Direction,
		b.Get(cp.Left, cp.Top-1).Direction,
		b.Get(cp.Left, cp.Top+1).Direction,
	}
	if r, ok := Merge(cp.Direction, cp.Neighbors, px.Direction, lowerNeighbors); ok {
		px.set(r, r, h)
		return
	}
	// No glyph for the combination: the upper char wins unmerged.
	px.set(cp.Visual, cp.Direction, h)
}

func (b *MonoBoard) FillRect(rect geo.Rect, char rune, h Highlight) {
	rect, ok := b.clip(rect)
	if !ok {
		return
	}
	for _, pb := range b.boardsFor(rect) {
		pb.FillRect(rect, char, h)
	}
}

func (b *MonoBoard) Set(left, top int, char rune, h Highlight) {
	b.FillRect(geo.ByLTWH(left, top, 1, 1), char, h)
}

// Get returns the pixel at (left, top). Unallocated cells are transparent.
func (b *MonoBoard) Get(left, top int) Pixel {
	if px := b.pixelAt(left, top); px != nil {
		return *px
	}
	return Pixel{}
}

// StringInBound renders rect as newline separated rows with transparent
// cells as spaces.
func (b *MonoBoard) StringInBound(rect geo.Rect) string {
	painter := NewPainterBoard(rect)
	for _, pb := range b.boards {
		painter.FillBoard(pb)
	}
	return painter.String()
}

// Bound is the area covered by allocated boards.
func (b *MonoBoard) Bound() geo.Rect {
	var corners []geo.Point
	for _, pb := range b.boards {
		corners = append(corners, pb.bound.Position, geo.Pt(pb.bound.Right(), pb.bound.Bottom()))
	}
	return geo.BoundOf(corners...)
}

func (b *MonoBoard) String() string {
	if len(b.boards) == 0 {
		return ""
	}
	return b.StringInBound(b.Bound())
}
