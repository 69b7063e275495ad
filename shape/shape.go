// Package shape holds the shape tree of a diagram. Shapes live in an arena
// owned by a Manager and refer to each other by ID.
package shape

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
)

type ID int

// RootID is the group every shape descends from.
const RootID ID = 0

type Kind int

const (
	KindRectangle Kind = iota
	KindText
	KindLine
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	case KindLine:
		return "line"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Shape is one node of the tree. Exactly one of the kind payloads is set.
type Shape struct {
	id      ID
	kind    Kind
	parent  ID
	version int
	bound   geo.Rect

	rect  *RectangleExtra
	text  *Text
	line  *Line
	group *group
}

func (s *Shape) ID() ID        { return s.id }
func (s *Shape) Kind() Kind    { return s.kind }
func (s *Shape) Parent() ID    { return s.parent }
func (s *Shape) Version() int  { return s.version }
func (s *Shape) IsGroup() bool { return s.kind == KindGroup }

// Bound of a line is derived from its joint points. A group has no bound of
// its own.
func (s *Shape) Bound() geo.Rect {
	if s.kind == KindLine {
		return s.line.Bound()
	}
	return s.bound
}

func (s *Shape) RectangleExtra() (RectangleExtra, bool) {
	if s.rect == nil {
		return RectangleExtra{}, false
	}
	return *s.rect, true
}

func (s *Shape) Text() *Text { return s.text }
func (s *Shape) Line() *Line { return s.line }

func (s *Shape) Contains(p geo.Point) bool {
	switch s.kind {
	case KindRectangle, KindText:
		return s.bound.Contains(p)
	case KindLine:
		return s.line.Contains(p)
	default:
		return false
	}
}

func (s *Shape) IsOverlapped(rect geo.Rect) bool {
	switch s.kind {
	case KindRectangle, KindText:
		return s.bound.IsOverlapped(rect)
	case KindLine:
		return s.line.IsOverlapped(rect)
	default:
		return false
	}
}

type group struct {
	children []ID
}

// Text is a text box. Its text is wrapped to the content width.
type Text struct {
	text    string
	extra   TextExtra
	editing bool

	lines      []string
	linesWidth int
}

func (t *Text) Text() string     { return t.text }
func (t *Text) Extra() TextExtra { return t.extra }
func (t *Text) IsEditing() bool  { return t.editing }

// ContentBound is the part of bound the text is laid out in.
func (t *Text) ContentBound(bound geo.Rect) geo.Rect {
	if t.extra.HasBorder() {
		return geo.ByLTWH(bound.Left()+1, bound.Top()+1, bound.Width()-2, bound.Height()-2)
	}
	return bound
}

// Lines returns the text wrapped for a bound of the given width.
func (t *Text) Lines(boundWidth int) []string {
	width := boundWidth
	if t.extra.HasBorder() {
		width -= 2
	}
	width = max(width, 1)
	if t.lines == nil || t.linesWidth != width {
		t.lines = wrapText(t.text, width)
		t.linesWidth = width
	}
	return t.lines
}

func wrapText(text string, width int) []string {
	if width == 1 {
		out := make([]string, 0, len(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		wrapped := wrap.String(wordwrap.String(line, width), width)
		for _, l := range strings.Split(wrapped, "\n") {
			out = append(out, strings.TrimRight(l, " "))
		}
	}
	return out
}
