// Package render composites a shape manager onto a board and keeps the
// zone index in step with what was drawn.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/tuanchauict/MonoSketch-sub002/bitmapmgr"
	"github.com/tuanchauict/MonoSketch-sub002/board"
	"github.com/tuanchauict/MonoSketch-sub002/connector"
	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/search"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

var ErrEmptyBoard = errors.New("nothing to export")

// Pixels per board cell in PNG output.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
	fontSize   = 12.0
)

type Engine struct {
	Shapes     *shape.Manager
	Bitmaps    *bitmapmgr.Manager
	Searcher   *search.Searcher
	Connectors *connector.Registry

	board *board.MonoBoard
}

func New() *Engine {
	shapes := shape.NewManager()
	bitmaps := bitmapmgr.New()
	return &Engine{
		Shapes:     shapes,
		Bitmaps:    bitmaps,
		Searcher:   search.NewSearcher(shapes, bitmaps),
		Connectors: connector.NewRegistry(),
		board:      board.NewMonoBoard(board.DefaultUnitSize),
	}
}

func (e *Engine) Board() *board.MonoBoard { return e.board }

// Draw repaints window from the shapes in paint order. Shapes listed in
// highlights are drawn with that highlight. The zone index is rebuilt from
// every shape, drawn or not, so hit tests outside window keep their order.
func (e *Engine) Draw(window geo.Rect, highlights map[shape.ID]board.Highlight) {
	e.board.ClearAndSetWindow(window)
	e.Searcher.Reset()
	for _, s := range e.Shapes.Shapes() {
		bm := e.Bitmaps.Bitmap(s)
		if bm == nil {
			continue
		}
		if !window.IsEmpty() && s.IsOverlapped(window) {
			e.board.Fill(s.Bound().Position, bm, highlights[s.ID()])
		}
		e.Searcher.Register(s)
	}
}

// Text draws window and returns it one line per row.
func (e *Engine) Text(window geo.Rect) string {
	e.Draw(window, nil)
	return e.board.StringInBound(window)
}

// ContentBound is the bound of every drawn shape.
func (e *Engine) ContentBound() (geo.Rect, bool) {
	var corners []geo.Point
	for _, s := range e.Shapes.Shapes() {
		b := s.Bound()
		if b.IsEmpty() {
			continue
		}
		corners = append(corners, b.Position, geo.Pt(b.Right(), b.Bottom()))
	}
	if len(corners) == 0 {
		return geo.Rect{}, false
	}
	return geo.BoundOf(corners...), true
}

// Export renders the whole drawing as text.
func (e *Engine) Export() (string, error) {
	bound, ok := e.ContentBound()
	if !ok {
		return "", ErrEmptyBoard
	}
	return e.Text(bound), nil
}

// Image rasterises window with a monospaced font, black on white.
func (e *Engine) Image(window geo.Rect) (image.Image, error) {
	if window.IsEmpty() {
		return nil, ErrEmptyBoard
	}
	e.Draw(window, nil)

	dc := gg.NewContext(int(float64(window.Width())*CellWidth), int(float64(window.Height())*CellHeight))
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for row := 0; row < window.Height(); row++ {
		for col := 0; col < window.Width(); col++ {
			px := e.board.Get(window.Left()+col, window.Top()+row)
			if px.IsTransparent() || px.Visual == ' ' {
				continue
			}
			x := float64(col) * CellWidth
			y := float64(row) * CellHeight
			dc.DrawStringAnchored(string(px.Visual), x+CellWidth/2, y+CellHeight/2, 0.5, 0.35)
		}
	}
	return dc.Image(), nil
}

// PNG writes the whole drawing to path.
func (e *Engine) PNG(path string) error {
	bound, ok := e.ContentBound()
	if !ok {
		return ErrEmptyBoard
	}
	img, err := e.Image(bound)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Remove deletes a shape with its descendants and everything derived from
// them.
func (e *Engine) Remove(id shape.ID) []shape.ID {
	removed := e.Shapes.Remove(id)
	for _, r := range removed {
		e.Bitmaps.Remove(r)
		e.Searcher.Remove(r)
		e.Connectors.RemoveShape(r)
		e.Connectors.Remove(r, shape.AnchorStart)
		e.Connectors.Remove(r, shape.AnchorEnd)
	}
	return removed
}

// SetBound moves or resizes a shape and drags the lines connected to it.
// A moved line lets go of whatever it was connected to. It returns the
// ids of the lines that followed.
func (e *Engine) SetBound(id shape.ID, bound geo.Rect, confirmed bool) []shape.ID {
	s, ok := e.Shapes.Get(id)
	if !ok {
		return nil
	}
	if s.Kind() == shape.KindLine {
		if e.Shapes.SetBound(id, bound) {
			e.Connectors.Remove(id, shape.AnchorStart)
			e.Connectors.Remove(id, shape.AnchorEnd)
		}
		return nil
	}
	if !e.Shapes.SetBound(id, bound) && !confirmed {
		return nil
	}
	return connector.Rebind(e.Shapes, e.Connectors, id, bound, confirmed)
}

// MoveAnchor moves one end of a line. A confirmed move connects the end
// to the topmost shape it lands around, or disconnects it.
func (e *Engine) MoveAnchor(id shape.ID, u shape.AnchorUpdate, confirmed bool) bool {
	if _, ok := e.Shapes.Get(id); !ok {
		return false
	}
	updated := e.Shapes.MoveAnchor(id, u, confirmed, false)
	if confirmed {
		e.Connect(id, u.Anchor)
	}
	return updated
}

// MoveEdge drags one edge of a line through p. The anchors and their
// connectors stay; a confirmed move also reduces the line.
func (e *Engine) MoveEdge(id shape.ID, edgeID int, p geo.Point, confirmed bool) bool {
	return e.Shapes.MoveEdge(id, edgeID, p, confirmed)
}

// Connect attaches the given end of a line to the topmost non-line shape
// it is around.
func (e *Engine) Connect(id shape.ID, a shape.Anchor) (shape.ID, bool) {
	line, ok := e.Shapes.Get(id)
	if !ok || line.Kind() != shape.KindLine {
		return 0, false
	}
	e.Connectors.Remove(id, a)
	shapes := e.Shapes.Shapes()
	for _, s := range slices.Backward(shapes) {
		if s.Kind() == shape.KindLine {
			continue
		}
		if e.Connectors.Connect(line, a, s) {
			return s.ID(), true
		}
	}
	return 0, false
}
