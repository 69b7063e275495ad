package board

import (
	"strings"

	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

// CrossPoint is a cell where an incoming line meets a line already on the
// board. Neighbors holds the direction chars of the incoming bitmap around
// the cell, in Left, Right, Top, Bottom order.
type CrossPoint struct {
	Left, Top int
	Visual    rune
	Direction rune
	Neighbors [4]rune
}

// PainterBoard is a dense board over a fixed bound.
type PainterBoard struct {
	bound  geo.Rect
	matrix [][]Pixel
}

func NewPainterBoard(bound geo.Rect) *PainterBoard {
	w, h := max(bound.Width(), 0), max(bound.Height(), 0)
	b := &PainterBoard{bound: bound, matrix: make([][]Pixel, h)}
	for i := range b.matrix {
		b.matrix[i] = make([]Pixel, w)
	}
	return b
}

func (b *PainterBoard) Bound() geo.Rect { return b.bound }

func (b *PainterBoard) Clear() {
	for _, row := range b.matrix {
		clear(row)
	}
}

func (b *PainterBoard) pixelAt(left, top int) *Pixel {
	if !b.bound.Contains(geo.Pt(left, top)) {
		return nil
	}
	return &b.matrix[top-b.bound.Top()][left-b.bound.Left()]
}

func (b *PainterBoard) Get(left, top int) (Pixel, bool) {
	px := b.pixelAt(left, top)
	if px == nil {
		return Pixel{}, false
	}
	return *px, true
}

func (b *PainterBoard) Set(left, top int, char rune, h Highlight) {
	if px := b.pixelAt(left, top); px != nil {
		px.set(char, char, h)
	}
}

// FillRect writes char over the part of rect inside the board.
func (b *PainterBoard) FillRect(rect geo.Rect, char rune, h Highlight) {
	overlap, ok := b.bound.Overlap(rect)
	if !ok {
		return
	}
	for top := overlap.Top(); top <= overlap.Bottom(); top++ {
		row := b.matrix[top-b.bound.Top()]
		for left := overlap.Left(); left <= overlap.Right(); left++ {
			row[left-b.bound.Left()].set(char, char, h)
		}
	}
}

// FillBoard copies the visible pixels of other.
func (b *PainterBoard) FillBoard(other *PainterBoard) {
	overlap, ok := b.bound.Overlap(other.bound)
	if !ok {
		return
	}
	for top := overlap.Top(); top <= overlap.Bottom(); top++ {
		for left := overlap.Left(); left <= overlap.Right(); left++ {
			src := other.pixelAt(left, top)
			if !src.IsTransparent() {
				*b.pixelAt(left, top) = *src
			}
		}
	}
}

// FillBitmap composites bm with its top-left cell at position. Cells where
// two connectable line chars meet are not written; they are returned for
// the caller to resolve with the neighbouring boards in view.
func (b *PainterBoard) FillBitmap(position geo.Point, bm *bitmap.Bitmap, h Highlight) []CrossPoint {
	if bm == nil || bm.IsEmpty() {
		return nil
	}
	area := geo.Rect{Position: position, Size: bm.Size()}
	overlap, ok := b.bound.Overlap(area)
	if !ok {
		return nil
	}
	var crosses []CrossPoint
	for top := overlap.Top(); top <= overlap.Bottom(); top++ {
		r := top - position.Top
		cells := bm.Row(r).Cells(overlap.Left()-position.Left, overlap.Right()-position.Left+1)
		for _, cell := range cells {
			left := position.Left + cell.Index
			px := b.pixelAt(left, top)
			v, d := cell.Visual, cell.Direction
			switch {
			case v == bitmap.Transparent:
				continue
			case v == bitmap.HalfTransparent:
				if px.Visual == bitmap.Transparent {
					px.Visual = v
					px.Highlight = h
				}
				if d != bitmap.Transparent && bitmap.Applicable(px.Direction, d) {
					px.Direction = d
				}
			case !px.IsTransparent() && px.Visual != v && IsConnectable(v) && IsConnectable(px.Direction) && IsConnectable(d):
				crosses = append(crosses, CrossPoint{
					Left:      left,
					Top:       top,
					Visual:    v,
					Direction: d,
					Neighbors: [4]rune{
						bm.Direction(r, cell.Index-1),
						bm.Direction(r, cell.Index+1),
						bm.Direction(r-1, cell.Index),
						bm.Direction(r+1, cell.Index),
					},
				})
			default:
				px.Visual = v
				if d != bitmap.Transparent {
					px.Direction = d
				}
				px.Highlight = h
			}
		}
	}
	return crosses
}

func (b *PainterBoard) String() string {
	lines := make([]string, len(b.matrix))
	var sb strings.Builder
	for i, row := range b.matrix {
		sb.Reset()
		for _, px := range row {
			sb.WriteString(px.String())
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
