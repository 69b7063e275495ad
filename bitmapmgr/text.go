package bitmapmgr

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// Text draws the background rectangle of a text box with lines laid out
// inside it. While editing the text itself is left to the editor.
func Text(size geo.Size, lines []string, extra shape.TextExtra, editing bool) *bitmap.Bitmap {
	b := bitmap.NewBuilder(size.Width, size.Height)
	if !(size.Width == 1 && size.Height == 1 && editing) {
		b.Fill(0, 0, Rectangle(size, extra.Bound))
	}
	if !editing {
		fillText(b, lines, size, extra)
	}
	return b.Build()
}

func fillText(b *bitmap.Builder, lines []string, size geo.Size, extra shape.TextExtra) {
	offset := 0
	if extra.HasBorder() {
		offset = 1
	}
	maxWidth := size.Width - 2*offset
	maxHeight := max(size.Height-2*offset, 0)

	row0 := offset
	if len(lines) <= maxHeight {
		switch extra.Align.Vertical {
		case shape.AlignMiddle:
			row0 += (maxHeight - len(lines)) / 2
		case shape.AlignBottom:
			row0 += maxHeight - len(lines)
		}
	}

	for i, line := range lines[:min(len(lines), maxHeight)] {
		chars := []rune(line)
		col0 := offset
		switch extra.Align.Horizontal {
		case shape.AlignCenter:
			col0 += (maxWidth - len(chars)) / 2
		case shape.AlignRight:
			col0 += maxWidth - len(chars)
		}
		for j, c := range chars {
			switch c {
			case ' ':
			case bitmap.NBSP:
				// Drawn as an opaque blank.
				b.Put(row0+i, col0+j, ' ', bitmap.Transparent)
			default:
				b.PutChar(row0+i, col0+j, c)
			}
		}
	}
}
