package bitmap

import (
	"errors"
	"fmt"
	"strings"
)

// Drawable turns a configuration and a target size into a bitmap. It must be
// deterministic: the bitmap cache relies on it.
type Drawable interface {
	ToBitmap(width, height int) *Bitmap
}

// CharDrawable fills every cell with one char.
type CharDrawable struct {
	Char rune
}

func (d CharDrawable) ToBitmap(width, height int) *Bitmap {
	b := NewBuilder(width, height)
	b.FillAll(d.Char)
	return b.Build()
}

var ErrPatternSize = errors.New("bitmap: pattern size does not match chars")

// Pattern is the fixed grid stretched by a NinePatch.
type Pattern struct {
	width, height int
	chars         []rune
}

func NewPattern(width, height int, chars []rune) (Pattern, error) {
	if width < 0 || height < 0 || len(chars) < width*height {
		return Pattern{}, fmt.Errorf("%w: %dx%d with %d chars", ErrPatternSize, width, height, len(chars))
	}
	return Pattern{width: width, height: height, chars: chars}, nil
}

// PatternFromText builds a pattern from newline separated rows. Short rows
// are padded with transparent cells and transparentChar maps to Transparent.
func PatternFromText(text string, transparentChar rune) Pattern {
	lines := strings.Split(text, "\n")
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}
	chars := make([]rune, 0, width*len(rows))
	for _, row := range rows {
		for c := 0; c < width; c++ {
			ch := Transparent
			if c < len(row) && row[c] != transparentChar {
				ch = row[c]
			}
			chars = append(chars, ch)
		}
	}
	return Pattern{width: width, height: len(rows), chars: chars}
}

func (p Pattern) Width() int  { return p.width }
func (p Pattern) Height() int { return p.height }

func (p Pattern) Char(row, column int) rune {
	if row < 0 || row >= p.height || column < 0 || column >= p.width {
		return Transparent
	}
	return p.chars[row*p.width+column]
}

// RangeMode selects how a RepeatableRange grows.
type RangeMode int

const (
	// Scale stretches the range: "01" -> "0011".
	Scale RangeMode = iota
	// Repeat tiles the range: "01" -> "0101".
	Repeat
)

// RepeatableRange is the part of a pattern axis that grows with the target
// size. Indexes outside it keep their pattern position.
type RepeatableRange struct {
	Mode  RangeMode
	Start int
	End   int // inclusive
	set   bool
}

func newRange(mode RangeMode, start, end int) RepeatableRange {
	return RepeatableRange{
		Mode:  mode,
		Start: max(0, min(start, end)),
		End:   max(start, end),
		set:   true,
	}
}

func ScaleRange(start, endInclusive int) RepeatableRange {
	return newRange(Scale, start, endInclusive)
}

func RepeatRange(start, endInclusive int) RepeatableRange {
	return newRange(Repeat, start, endInclusive)
}

// Indexes maps each of size target indexes onto a pattern index.
func (r RepeatableRange) Indexes(size, patternSize int) []int {
	out := make([]int, max(size, 0))
	if patternSize <= 0 {
		return out
	}
	end := min(patternSize-1, r.End)
	start := min(r.Start, end)
	rangeSize := end - start + 1
	right := size - (patternSize - end)
	for i := range out {
		switch {
		case i < start:
			out[i] = i
		case i > right:
			out[i] = end + i - right
		case r.Mode == Repeat:
			out[i] = start + (i-start)%rangeSize
		default:
			out[i] = start + (i-start)*rangeSize/(right-start+1)
		}
	}
	return out
}

// NinePatch stretches a pattern along both axes while its corners and
// borders stay undistorted.
type NinePatch struct {
	Pattern    Pattern
	Horizontal RepeatableRange
	Vertical   RepeatableRange
}

// NewNinePatch uses a full-axis Scale for a zero range.
func NewNinePatch(p Pattern, horizontal, vertical RepeatableRange) *NinePatch {
	if !horizontal.set {
		horizontal = ScaleRange(0, p.width-1)
	}
	if !vertical.set {
		vertical = ScaleRange(0, p.height-1)
	}
	return &NinePatch{Pattern: p, Horizontal: horizontal, Vertical: vertical}
}

func (n *NinePatch) ToBitmap(width, height int) *Bitmap {
	b := NewBuilder(width, height)
	rows := n.Vertical.Indexes(b.Height(), n.Pattern.height)
	cols := n.Horizontal.Indexes(b.Width(), n.Pattern.width)
	for r, pr := range rows {
		for c, pc := range cols {
			b.PutChar(r, c, n.Pattern.Char(pr, pc))
		}
	}
	return b.Build()
}
