package shape

import "github.com/tuanchauict/MonoSketch-sub002/bitmap"

// StrokeStyle is the set of chars used to draw straight strokes. Corner
// names follow their position on a rectangle border.
type StrokeStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomRight rune
	BottomLeft  rune
}

var (
	// NoStroke keeps a border selectable without drawing it.
	NoStroke = StrokeStyle{
		bitmap.HalfTransparent, bitmap.HalfTransparent, bitmap.HalfTransparent,
		bitmap.HalfTransparent, bitmap.HalfTransparent, bitmap.HalfTransparent,
	}
	SingleStroke  = StrokeStyle{'─', '│', '┌', '┐', '┘', '└'}
	BoldStroke    = StrokeStyle{'━', '┃', '┏', '┓', '┛', '┗'}
	DoubleStroke  = StrokeStyle{'═', '║', '╔', '╗', '╝', '╚'}
	RoundedStroke = StrokeStyle{'─', '│', '╭', '╮', '╯', '╰'}
)

var StrokeStyles = map[string]StrokeStyle{
	"single":  SingleStroke,
	"bold":    BoldStroke,
	"double":  DoubleStroke,
	"rounded": RoundedStroke,
}

// DashPattern splits a stroke into Dash drawn cells followed by Gap empty
// cells, shifted by Offset.
type DashPattern struct {
	Dash   int
	Gap    int
	Offset int
}

var Solid = DashPattern{Dash: 1}

func (d DashPattern) IsSolid() bool { return d.Gap <= 0 }

func (d DashPattern) IsGap(index int) bool {
	dash, gap := max(d.Dash, 1), max(d.Gap, 0)
	if gap == 0 {
		return false
	}
	total := dash + gap
	offset := (d.Offset%total + total) % total
	return (index+offset)%total >= dash
}

var FillChars = map[string]rune{
	"none":   bitmap.Transparent,
	"space":  ' ',
	"solid":  '█',
	"medium": '▒',
	"light":  '░',
	"check":  '▚',
}

type RectangleExtra struct {
	// Fill is Transparent when the rectangle is not filled.
	Fill    rune
	Border  bool
	Stroke  StrokeStyle
	Dash    DashPattern
	Rounded bool
}

func DefaultRectangleExtra() RectangleExtra {
	return RectangleExtra{Fill: bitmap.Transparent, Border: true, Stroke: SingleStroke, Dash: Solid}
}

// StrokeStyle returns the border style, with rounded corners applied to the
// single stroke.
func (e RectangleExtra) StrokeStyle() (StrokeStyle, bool) {
	if !e.Border {
		return StrokeStyle{}, false
	}
	if e.Rounded && e.Stroke == SingleStroke {
		return RoundedStroke, true
	}
	return e.Stroke, true
}

func (e RectangleExtra) HasFill() bool {
	return e.Fill != bitmap.Transparent
}

type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

type TextAlign struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

type TextExtra struct {
	Bound RectangleExtra
	Align TextAlign
}

func DefaultTextExtra() TextExtra {
	return TextExtra{Bound: DefaultRectangleExtra(), Align: TextAlign{AlignCenter, AlignMiddle}}
}

// PlainTextExtra is a text without border or fill.
func PlainTextExtra() TextExtra {
	bound := DefaultRectangleExtra()
	bound.Border = false
	return TextExtra{Bound: bound, Align: TextAlign{AlignLeft, AlignTop}}
}

func (e TextExtra) HasBorder() bool { return e.Bound.Border }

// AnchorChar is the head drawn at a line end, picked by the direction the
// line leaves the anchor. The zero value draws no head.
type AnchorChar struct {
	Left, Right, Top, Bottom rune
}

func UniformAnchor(r rune) AnchorChar {
	return AnchorChar{r, r, r, r}
}

func (a AnchorChar) IsZero() bool { return a == AnchorChar{} }

var AnchorChars = map[string]AnchorChar{
	"arrow":         {'◀', '▶', '▲', '▼'},
	"triangle":      {'◁', '▷', '△', '▽'},
	"square":        UniformAnchor('■'),
	"square-empty":  UniformAnchor('□'),
	"diamond":       UniformAnchor('◆'),
	"diamond-empty": UniformAnchor('◇'),
	"circle":        UniformAnchor('○'),
	"target":        UniformAnchor('◎'),
	"dot":           UniformAnchor('●'),
	"tee":           {'├', '┤', '┬', '┴'},
	"tee-bold":      {'┣', '┫', '┳', '┻'},
	"tee-double":    {'╠', '╣', '╦', '╩'},
}

type LineExtra struct {
	Stroke  bool
	Style   StrokeStyle
	Start   AnchorChar
	End     AnchorChar
	Dash    DashPattern
	Rounded bool
}

func DefaultLineExtra() LineExtra {
	return LineExtra{Stroke: true, Style: SingleStroke, End: AnchorChars["arrow"], Dash: Solid}
}

func (e LineExtra) StrokeStyle() StrokeStyle {
	switch {
	case !e.Stroke:
		return NoStroke
	case e.Rounded && e.Style == SingleStroke:
		return RoundedStroke
	default:
		return e.Style
	}
}
