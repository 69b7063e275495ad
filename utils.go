package main

import (
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/tuanchauict/MonoSketch-sub002/board"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/schedule"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func (m *model) worldCoords() geo.Point {
	return geo.Pt(m.cursorX+m.panX, m.cursorY+m.panY)
}

func (m *model) worldAt(x, y int) geo.Point {
	return geo.Pt(x+m.panX, y+m.panY)
}

// canvasHeight leaves room for the status line.
func (m *model) canvasHeight() int { return max(m.height-1, 1) }

func (m *model) window() geo.Rect {
	return geo.ByLTWH(m.panX, m.panY, max(m.width, 1), m.canvasHeight())
}

func (m *model) highlights() map[shape.ID]board.Highlight {
	if m.selected == shape.RootID {
		return nil
	}
	h := board.HighlightSelected
	if m.mode == ModeTextInput {
		h = board.HighlightTextEditing
	}
	out := map[shape.ID]board.Highlight{m.selected: h}
	for _, id := range m.boxed {
		out[id] = board.HighlightSelected
	}
	return out
}

func (m *model) selectShape(id shape.ID) {
	m.selected = id
	m.boxed = nil
}

// selectBox selects every shape overlapping rect, in paint order.
func (m *model) selectBox(rect geo.Rect) {
	m.redraw()
	m.selectShape(shape.RootID)
	inside := map[shape.ID]bool{}
	for _, s := range m.engine.Searcher.AllShapesInZone(rect) {
		inside[s.ID()] = true
	}
	for _, s := range m.engine.Shapes.Shapes() {
		if inside[s.ID()] {
			m.boxed = append(m.boxed, s.ID())
		}
	}
	if n := len(m.boxed); n > 0 {
		m.selected = m.boxed[n-1]
	}
}

func (m *model) redraw() {
	m.engine.Draw(m.window(), m.highlights())
}

func (m *model) shapeAt(p geo.Point) (*shape.Shape, bool) {
	m.redraw()
	shapes := m.engine.Searcher.Shapes(p)
	if len(shapes) == 0 {
		return nil, false
	}
	return shapes[len(shapes)-1], true
}

func (m *model) selectedShape() (*shape.Shape, bool) {
	if m.selected == shape.RootID {
		return nil, false
	}
	s, ok := m.engine.Shapes.Get(m.selected)
	if !ok {
		m.selectShape(shape.RootID)
	}
	return s, ok
}

// setStatus shows a message on the status line until it times out or is
// replaced.
func (m *model) setStatus(success, failure string) {
	m.successMessage = success
	m.errorMessage = failure
	if m.statusTask != nil {
		m.statusTask.Cancel()
	}
	m.statusSeq++
	seq, msgs := m.statusSeq, m.msgs
	m.statusTask = schedule.After(statusTimeout, func() { msgs.Notify(clearStatusMsg{seq}) })
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div"))
}

// stripRTF keeps the plain text of an RTF document. Control words are
// dropped except \par and \line, which end a line.
func stripRTF(rtf string) string {
	var out strings.Builder
	for i := 0; i < len(rtf); i++ {
		c := rtf[i]
		switch {
		case c == '{' && isRTFTable(rtf[i:]):
			i = skipGroup(rtf, i)
		case c == '{' || c == '}' || c == '\r' || c == '\n':
		case c == '\\' && i+1 < len(rtf):
			next := rtf[i+1]
			if next == '\\' || next == '{' || next == '}' {
				out.WriteByte(next)
				i++
				continue
			}
			j := i + 1
			for j < len(rtf) && (rtf[j] >= 'a' && rtf[j] <= 'z' || rtf[j] >= 'A' && rtf[j] <= 'Z') {
				j++
			}
			word := rtf[i+1 : j]
			for j < len(rtf) && (rtf[j] == '-' || rtf[j] >= '0' && rtf[j] <= '9') {
				j++
			}
			if j < len(rtf) && rtf[j] == ' ' {
				j++
			}
			if word == "par" || word == "line" {
				out.WriteByte('\n')
			}
			i = j - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

func isRTFTable(group string) bool {
	for _, p := range []string{"{\\fonttbl", "{\\colortbl", "{\\stylesheet", "{\\*"} {
		if strings.HasPrefix(group, p) {
			return true
		}
	}
	return false
}

// skipGroup returns the index of the brace closing the group opened at i.
func skipGroup(s string, i int) int {
	depth := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<", "&gt;", ">", "&amp;", "&", "&quot;", "\"", "&#39;", "'", "&nbsp;", " ",
)

func stripHTML(html string) string {
	var out strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	return htmlEntities.Replace(out.String())
}

// cleanClipboardText turns clipboard content into text a text shape can
// hold: plain lines without control characters or trailing blank lines.
func cleanClipboardText(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripHTML(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r >= ' ' && r != utf8.RuneError && r != 0x7f {
			return r
		}
		return -1
	}, text)
	return strings.TrimRight(text, "\n")
}

func textSize(text string) geo.Size {
	lines := strings.Split(text, "\n")
	width := 1
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	return geo.Size{Width: width, Height: len(lines)}
}
