package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/render"
	"github.com/tuanchauict/MonoSketch-sub002/schedule"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

type model struct {
	width    int
	height   int
	cursorX  int
	cursorY  int
	panX     int
	panY     int
	zPanMode bool

	engine *render.Engine
	config *Config
	mode   Mode
	help   bool

	// selected is shape.RootID when nothing is selected.
	selected      shape.ID
	originalBound geo.Rect
	lineStart     geo.DirectedPoint

	// boxed holds the shapes of a box selection, selected being the topmost.
	boxed []shape.ID

	textInputText      string
	textInputCursorPos int
	originalText       string
	newText            bool

	filename      string
	fileOp        FileOperation
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string
	statusSeq      int
	statusTask     *schedule.Task

	drag     *drag
	dragging *schedule.Throttler

	// msgs carries messages from timers back into the program.
	msgs *schedule.Notifier[tea.Msg]
}

// drag is a mouse drag in progress.
type drag struct {
	id     shape.ID
	from   geo.Point
	to     geo.Point
	bound  geo.Rect
	anchor shape.Anchor
	edgeID int

	// onAnchor and onEdge are set when the drag moves a line end or a line
	// edge instead of the whole shape. box is a selection box on empty
	// canvas.
	onAnchor bool
	onEdge   bool
	box      bool
}

type clearStatusMsg struct{ seq int }

type dragMsg struct{}

type configMsg struct{ config *Config }
