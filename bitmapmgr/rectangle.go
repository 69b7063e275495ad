package bitmapmgr

import (
	"github.com/tuanchauict/MonoSketch-sub002/bitmap"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

// DotChar is drawn for a 1x1 rectangle.
const DotChar = '▫'

// Rectangle draws a rectangle of the given size. A rectangle with neither
// fill nor border still gets a half-transparent border so it stays
// selectable.
func Rectangle(size geo.Size, extra shape.RectangleExtra) *bitmap.Bitmap {
	b := &builder{Builder: bitmap.NewBuilder(size.Width, size.Height)}
	stroke, hasStroke := extra.StrokeStyle()

	if !extra.HasFill() && !hasStroke {
		drawBorder(b, size, shape.NoStroke, shape.Solid)
		return b.Build()
	}
	if extra.HasFill() {
		b.Fill(0, 0, bitmap.CharDrawable{Char: extra.Fill}.ToBitmap(size.Width, size.Height))
	}
	if hasStroke && (!extra.HasFill() || size.Width > 1 && size.Height > 1) {
		drawBorder(b, size, stroke, extra.Dash)
	}
	return b.Build()
}

// borderRange repeats the middle cell of a 3x3 border pattern and clamps to
// the single cell of a 1-cell pattern.
var borderRange = bitmap.RepeatRange(1, 1)

func drawBorder(b *builder, size geo.Size, st shape.StrokeStyle, dash shape.DashPattern) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if dash.IsSolid() || size.Width == 1 && size.Height == 1 {
		b.Fill(0, 0, borderPatch(size, st).ToBitmap(size.Width, size.Height))
		return
	}
	right, bottom := size.Width-1, size.Height-1

	var chars []pointChar
	switch {
	case size.Width == 1:
		chars = verticalRun(0, -1, bottom+1, st.Vertical)
	case size.Height == 1:
		chars = horizontalRun(-1, right+1, 0, st.Horizontal)
	default:
		// Clockwise from the top-left corner.
		chars = append(chars, pointChar{0, 0, st.TopLeft})
		chars = append(chars, horizontalRun(0, right, 0, st.Horizontal)...)
		chars = append(chars, pointChar{right, 0, st.TopRight})
		chars = append(chars, verticalRun(right, 0, bottom, st.Vertical)...)
		chars = append(chars, pointChar{right, bottom, st.BottomRight})
		chars = append(chars, horizontalRun(right, 0, bottom, st.Horizontal)...)
		chars = append(chars, pointChar{0, bottom, st.BottomLeft})
		chars = append(chars, verticalRun(0, bottom, 0, st.Vertical)...)
	}
	putStroke(b, chars, dash)
}

// borderPatch is the solid border of st as a nine-patch for size.
func borderPatch(size geo.Size, st shape.StrokeStyle) *bitmap.NinePatch {
	chars := []rune{
		st.TopLeft, st.Horizontal, st.TopRight,
		st.Vertical, bitmap.Transparent, st.Vertical,
		st.BottomLeft, st.Horizontal, st.BottomRight,
	}
	width, height := 3, 3
	switch {
	case size.Width == 1 && size.Height == 1:
		chars, width, height = []rune{DotChar}, 1, 1
	case size.Width == 1:
		chars, width, height = []rune{st.Vertical}, 1, 1
	case size.Height == 1:
		chars, width, height = []rune{st.Horizontal}, 1, 1
	}
	p, err := bitmap.NewPattern(width, height, chars)
	if err != nil {
		panic(err)
	}
	return bitmap.NewNinePatch(p, borderRange, borderRange)
}
