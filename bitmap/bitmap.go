// Package bitmap implements MonoBitmap, the immutable two-layer character
// grid produced by drawables, and the builder used to produce it.
package bitmap

import (
	"sort"
	"strings"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

// Cell is a non-transparent cell of a row.
type Cell struct {
	Index     int
	Visual    rune
	Direction rune
}

// Row is a sparse row. Only cells which are non-transparent on at least one
// layer are kept, sorted by index.
type Row struct {
	size  int
	cells []Cell
}

func newRow(visual, direction []rune) Row {
	row := Row{size: len(visual)}
	for i := range visual {
		if visual[i] != Transparent || direction[i] != Transparent {
			row.cells = append(row.cells, Cell{Index: i, Visual: visual[i], Direction: direction[i]})
		}
	}
	return row
}

func (r Row) Size() int { return r.size }

// lowerBound is the position of the first cell with Index >= index.
func (r Row) lowerBound(index int) int {
	return sort.Search(len(r.cells), func(i int) bool { return r.cells[i].Index >= index })
}

func (r Row) cell(index int) (Cell, bool) {
	i := r.lowerBound(index)
	if i < len(r.cells) && r.cells[i].Index == index {
		return r.cells[i], true
	}
	return Cell{}, false
}

func (r Row) Visual(index int) rune {
	c, _ := r.cell(index)
	return c.Visual
}

func (r Row) Direction(index int) rune {
	c, _ := r.cell(index)
	return c.Direction
}

// Cells returns the cells with from <= Index < to. The slice aliases the row.
func (r Row) Cells(from, to int) []Cell {
	if from >= to {
		return nil
	}
	start := r.lowerBound(from)
	end := start + sort.Search(len(r.cells)-start, func(i int) bool { return r.cells[start+i].Index >= to })
	return r.cells[start:end:end]
}

// All returns every kept cell in index order.
func (r Row) All() []Cell {
	return r.cells[:len(r.cells):len(r.cells)]
}

func (r Row) String() string {
	var sb strings.Builder
	next := 0
	for _, c := range r.cells {
		sb.WriteString(strings.Repeat(" ", c.Index-next))
		sb.WriteRune(printable(c.Visual))
		next = c.Index + 1
	}
	sb.WriteString(strings.Repeat(" ", r.size-next))
	return sb.String()
}

func printable(r rune) rune {
	if IsInvisible(r) {
		return ' '
	}
	return r
}

// Bitmap is the immutable output of a Drawable.
type Bitmap struct {
	width int
	rows  []Row
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return len(b.rows) }

func (b *Bitmap) Size() geo.Size {
	return geo.Size{Width: b.width, Height: len(b.rows)}
}

func (b *Bitmap) IsEmpty() bool {
	return b.width == 0 || len(b.rows) == 0
}

// Row returns the row at index, or an empty row out of range.
func (b *Bitmap) Row(index int) Row {
	if index < 0 || index >= len(b.rows) {
		return Row{}
	}
	return b.rows[index]
}

func (b *Bitmap) Rows() []Row {
	return b.rows
}

func (b *Bitmap) Visual(row, column int) rune {
	return b.Row(row).Visual(column)
}

func (b *Bitmap) Direction(row, column int) rune {
	return b.Row(row).Direction(column)
}

func (b *Bitmap) String() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Builder is the mutable grid a bitmap is drawn into.
type Builder struct {
	width, height int
	visual        [][]rune
	direction     [][]rune
}

func NewBuilder(width, height int) *Builder {
	width, height = max(width, 0), max(height, 0)
	b := &Builder{
		width:     width,
		height:    height,
		visual:    make([][]rune, height),
		direction: make([][]rune, height),
	}
	for i := 0; i < height; i++ {
		b.visual[i] = make([]rune, width)
		b.direction[i] = make([]rune, width)
	}
	return b
}

func (b *Builder) Width() int  { return b.width }
func (b *Builder) Height() int { return b.height }

func (b *Builder) inBounds(row, column int) bool {
	return row >= 0 && row < b.height && column >= 0 && column < b.width
}

// Put writes one cell. Out-of-range writes are dropped and a transparent
// direction leaves the direction layer untouched.
func (b *Builder) Put(row, column int, visual, direction rune) {
	if !b.inBounds(row, column) {
		return
	}
	b.visual[row][column] = visual
	if direction != Transparent {
		b.direction[row][column] = direction
	}
}

// PutChar writes char on both layers.
func (b *Builder) PutChar(row, column int, char rune) {
	b.Put(row, column, char, char)
}

func (b *Builder) FillAll(char rune) {
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			b.visual[r][c] = char
			b.direction[r][c] = char
		}
	}
}

// Fill composites bm with its top-left cell at (row, column).
func (b *Builder) Fill(row, column int, bm *Bitmap) {
	if bm == nil {
		return
	}
	for r, bmRow := range bm.rows {
		rr := row + r
		if rr < 0 || rr >= b.height {
			continue
		}
		for _, cell := range bmRow.Cells(-column, b.width-column) {
			cc := column + cell.Index
			if cell.Visual != Transparent && Applicable(b.visual[rr][cc], cell.Visual) {
				b.visual[rr][cc] = cell.Visual
			}
			if cell.Direction != Transparent && Applicable(b.direction[rr][cc], cell.Direction) {
				b.direction[rr][cc] = cell.Direction
			}
		}
	}
}

func (b *Builder) Build() *Bitmap {
	bm := &Bitmap{width: b.width, rows: make([]Row, b.height)}
	for i := 0; i < b.height; i++ {
		bm.rows[i] = newRow(b.visual[i], b.direction[i])
	}
	if b.height == 0 {
		bm.width = 0
	}
	return bm
}
