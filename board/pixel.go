package board

import "github.com/tuanchauict/MonoSketch-sub002/bitmap"

type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightSelected
	HighlightTextEditing
)

// Pixel is one board cell.
type Pixel struct {
	Visual    rune
	Direction rune
	Highlight Highlight
}

// IsTransparent reports whether the pixel renders as empty. A
// half-transparent pixel is still selectable.
func (p Pixel) IsTransparent() bool {
	return bitmap.IsInvisible(p.Visual)
}

func (p *Pixel) set(visual, direction rune, h Highlight) {
	p.Visual = visual
	p.Direction = direction
	p.Highlight = h
}

func (p Pixel) String() string {
	if p.IsTransparent() {
		return " "
	}
	return string(p.Visual)
}
