package board

// Mask records which sides of a cell a line leaves from. Each of the three
// line styles owns four bits: single in bits 0-3, bold in 4-7 and double in
// 8-11.
type Mask uint16

const (
	MaskLeft Mask = 1 << iota
	MaskRight
	MaskTop
	MaskBottom
)

const (
	styleSingle = 0
	styleBold   = 4
	styleDouble = 8

	sideBits Mask = 0b1111
)

// sidesOf folds the styles of m into a single 4-bit side set.
func sidesOf(m Mask) Mask {
	return (m | m>>styleBold | m>>styleDouble) & sideBits
}

func allStyles(sides Mask) Mask {
	sides &= sideBits
	return sides | sides<<styleBold | sides<<styleDouble
}

// ExcludeMask keeps, in every style, only the sides m does not use. It is
// applied to the lower glyph so a side never ends up with two styles.
func ExcludeMask(m Mask) Mask {
	return allStyles(^sidesOf(m))
}

var (
	charMasks  = map[rune]Mask{}
	maskGlyphs = map[Mask]rune{}
)

type glyph struct {
	char  rune
	sides [3]Mask // single, bold, double
}

func init() {
	pure := []struct {
		sides Mask
		chars [3]rune
	}{
		{MaskLeft | MaskRight, [3]rune{'─', '━', '═'}},
		{MaskTop | MaskBottom, [3]rune{'│', '┃', '║'}},
		{MaskRight | MaskBottom, [3]rune{'┌', '┏', '╔'}},
		{MaskLeft | MaskBottom, [3]rune{'┐', '┓', '╗'}},
		{MaskRight | MaskTop, [3]rune{'└', '┗', '╚'}},
		{MaskLeft | MaskTop, [3]rune{'┘', '┛', '╝'}},
		{MaskLeft | MaskRight | MaskBottom, [3]rune{'┬', '┳', '╦'}},
		{MaskLeft | MaskRight | MaskTop, [3]rune{'┴', '┻', '╩'}},
		{MaskTop | MaskBottom | MaskRight, [3]rune{'├', '┣', '╠'}},
		{MaskTop | MaskBottom | MaskLeft, [3]rune{'┤', '┫', '╣'}},
		{MaskLeft | MaskRight | MaskTop | MaskBottom, [3]rune{'┼', '╋', '╬'}},
	}
	for _, p := range pure {
		for i, c := range p.chars {
			var g glyph
			g.char = c
			g.sides[i] = p.sides
			register(g)
		}
	}

	const (
		l, r, t, b = MaskLeft, MaskRight, MaskTop, MaskBottom
	)
	mixed := []glyph{
		{'╪', [3]Mask{t | b, 0, l | r}},
		{'╫', [3]Mask{l | r, 0, t | b}},
		{'╞', [3]Mask{t | b, 0, r}},
		{'╟', [3]Mask{r, 0, t | b}},
		{'╡', [3]Mask{t | b, 0, l}},
		{'╢', [3]Mask{l, 0, t | b}},
		{'╤', [3]Mask{b, 0, l | r}},
		{'╥', [3]Mask{l | r, 0, b}},
		{'╧', [3]Mask{t, 0, l | r}},
		{'╨', [3]Mask{l | r, 0, t}},
		{'╒', [3]Mask{b, 0, r}},
		{'╓', [3]Mask{r, 0, b}},
		{'╕', [3]Mask{b, 0, l}},
		{'╖', [3]Mask{l, 0, b}},
		{'╘', [3]Mask{t, 0, r}},
		{'╙', [3]Mask{r, 0, t}},
		{'╛', [3]Mask{t, 0, l}},
		{'╜', [3]Mask{l, 0, t}},
		{'┿', [3]Mask{t | b, l | r, 0}},
		{'╂', [3]Mask{l | r, t | b, 0}},
		{'┝', [3]Mask{t | b, r, 0}},
		{'┠', [3]Mask{r, t | b, 0}},
		{'┥', [3]Mask{t | b, l, 0}},
		{'┨', [3]Mask{l, t | b, 0}},
		{'┯', [3]Mask{b, l | r, 0}},
		{'┰', [3]Mask{l | r, b, 0}},
		{'┷', [3]Mask{t, l | r, 0}},
		{'┸', [3]Mask{l | r, t, 0}},
	}
	for _, g := range mixed {
		register(g)
	}

	aliases := map[rune]rune{
		'-': '─',
		'|': '│',
		'+': '┼',
		'╭': '┌',
		'╮': '┐',
		'╰': '└',
		'╯': '┘',
	}
	for alias, c := range aliases {
		charMasks[alias] = charMasks[c]
	}
}

func register(g glyph) {
	m := g.sides[0]<<styleSingle | g.sides[1]<<styleBold | g.sides[2]<<styleDouble
	charMasks[g.char] = m
	maskGlyphs[m] = g.char
}

// CharMask returns the sides a box-drawing char connects to, or 0.
func CharMask(r rune) Mask {
	return charMasks[r]
}

func IsConnectable(r rune) bool {
	return charMasks[r] != 0
}

// Glyph looks up the char drawing exactly the sides of m.
func Glyph(m Mask) (rune, bool) {
	r, ok := maskGlyphs[m]
	return r, ok
}

var opposite = [4]Mask{MaskRight, MaskLeft, MaskBottom, MaskTop}

// Merge resolves the glyph of a cell where upper is drawn over lower. The
// neighbours are direction chars around the cell in Left, Right, Top,
// Bottom order; a side is kept only if a neighbour connects back to it.
// ok is false when the combination has no glyph and the caller must fall
// back to upper.
func Merge(upper rune, upperNeighbors [4]rune, lower rune, lowerNeighbors [4]rune) (rune, bool) {
	um, lm := CharMask(upper), CharMask(lower)
	if um == 0 || lm == 0 {
		return 0, false
	}
	merged := um | lm&ExcludeMask(um)

	var connected Mask
	for i, side := range [4]Mask{MaskLeft, MaskRight, MaskTop, MaskBottom} {
		if sidesOf(CharMask(upperNeighbors[i]))&opposite[i] != 0 ||
			sidesOf(CharMask(lowerNeighbors[i]))&opposite[i] != 0 {
			connected |= side
		}
	}
	merged &= allStyles(connected)
	if merged == 0 {
		return 0, false
	}
	return Glyph(merged)
}
