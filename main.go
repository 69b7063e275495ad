package main

import (
	"log"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuanchauict/MonoSketch-sub002/geo"
	"github.com/tuanchauict/MonoSketch-sub002/render"
	"github.com/tuanchauict/MonoSketch-sub002/schedule"
	"github.com/tuanchauict/MonoSketch-sub002/shape"
)

func main() {
	logs, err := setupLogging(logPath())
	if err != nil {
		log.Fatal(err)
	}
	defer logs.Close()

	config, err := loadConfig(defaultConfigPath)
	if err != nil {
		slog.Warn("load config", "err", err)
	}

	m := initialModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.msgs.Subscribe(p.Send)

	configs := &schedule.Notifier[*Config]{}
	configs.Subscribe(func(c *Config) { p.Send(configMsg{c}) })
	if stop, err := watchConfig(defaultConfigPath, millis(config.ReloadDebounceMS), configs); err != nil {
		slog.Info("config reload disabled", "err", err)
	} else {
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	return model{
		engine:   render.New(),
		config:   config,
		mode:     ModeNormal,
		selected: shape.RootID,
		dragging: schedule.Throttle(millis(config.Render.DragThrottleMS)),
		msgs:     &schedule.Notifier[tea.Msg]{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.successMessage = ""
			m.errorMessage = ""
		}
		return m, nil

	case configMsg:
		m.config = msg.config
		m.dragging.Cancel()
		m.dragging = schedule.Throttle(millis(m.config.Render.DragThrottleMS))
		m.setStatus("Config reloaded", "")
		return m, nil

	case dragMsg:
		m.applyDrag(false)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch m.mode {
		case ModeConfirm:
			return m.handleConfirm(msg)
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeTextInput:
			return m.handleTextInput(msg)
		case ModeMove, ModeResize, ModeLine:
			return m.handleEdit(msg)
		default:
			return m.handleNormal(msg)
		}
	}
	return m, nil
}

func (m model) handleNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.zPanMode = false
		m.selectShape(shape.RootID)
		return m, nil
	}

	key := msg.String()
	if isDirectionKey(key) {
		return m.handleNavigation(key)
	}

	switch key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
	case "?":
		m.help = true
	case "z":
		m.zPanMode = !m.zPanMode
	case "enter", " ":
		m.selectShape(shape.RootID)
		if s, ok := m.shapeAt(m.worldCoords()); ok {
			m.selectShape(s.ID())
		}
	case "b":
		m.addRectangle()
	case "t":
		m.startText(nil)
	case "e":
		if s, ok := m.target(); ok && s.Kind() == shape.KindText {
			m.startText(s)
		}
	case "a":
		m.startLine()
	case "m":
		if s, ok := m.target(); ok {
			m.startEdit(s, ModeMove)
		}
	case "r":
		if s, ok := m.target(); ok && s.Kind() != shape.KindLine {
			m.startEdit(s, ModeResize)
		}
	case "d", "x":
		s, ok := m.target()
		if !ok {
			return m, nil
		}
		m.selected = s.ID()
		if !m.config.Confirmations {
			m.deleteSelected()
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
	case "]", "[", "}", "{":
		if s, ok := m.target(); ok {
			m.engine.Shapes.Reorder(s.ID(), reorderOps[key])
		}
	case "B":
		m.cycleBorder()
	case "s", "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveTXT
		if key == "S" {
			m.fileOp = FileOpSavePNG
		}
	case "y":
		m.copyToClipboard()
	case "p":
		m.paste()
	}
	return m, nil
}

var reorderOps = map[string]shape.ReorderOp{
	"]": shape.ReorderForward,
	"[": shape.ReorderBackward,
	"}": shape.ReorderFront,
	"{": shape.ReorderBack,
}

func (m *model) target() (*shape.Shape, bool) {
	if s, ok := m.selectedShape(); ok {
		return s, true
	}
	return m.shapeAt(m.worldCoords())
}

func (m *model) addRectangle() {
	bound := geo.Rect{Position: m.worldCoords(), Size: geo.Size{Width: newRectWidth, Height: newRectHeight}}
	id, err := m.engine.Shapes.AddRectangle(bound, m.config.Style.RectangleExtra(), shape.RootID)
	if err != nil {
		m.setStatus("", err.Error())
		return
	}
	s, _ := m.engine.Shapes.Get(id)
	m.startEdit(s, ModeResize)
}

func (m *model) startEdit(s *shape.Shape, mode Mode) {
	m.selectShape(s.ID())
	m.originalBound = s.Bound()
	m.mode = mode
}

func (m *model) startLine() {
	p := m.worldCoords()
	dir := geo.Horizontal
	if d, ok := m.engineEdgeDirection(p); ok {
		dir = d
	}
	start := geo.DirectedPoint{Direction: dir, Point: p}
	end := start
	if dir == geo.Horizontal {
		end.Point.Left++
	} else {
		end.Point.Top++
	}
	id, err := m.engine.Shapes.AddLine(start, end, m.config.Style.LineExtra(), shape.RootID)
	if err != nil {
		m.setStatus("", err.Error())
		return
	}
	m.engine.Connect(id, shape.AnchorStart)
	m.selectShape(id)
	m.lineStart = start
	m.mode = ModeLine
}

func (m *model) engineEdgeDirection(p geo.Point) (geo.Direction, bool) {
	m.redraw()
	return m.engine.Searcher.EdgeDirection(p)
}

func (m *model) deleteSelected() {
	if m.selected == shape.RootID {
		return
	}
	removed := m.engine.Remove(m.selected)
	for _, id := range m.boxed {
		if id != m.selected {
			removed = append(removed, m.engine.Remove(id)...)
		}
	}
	slog.Info("deleted shapes", "ids", removed)
	m.selectShape(shape.RootID)
}

var borderCycle = []string{"single", "bold", "double", "rounded", "none"}

func (m *model) cycleBorder() {
	s, ok := m.selectedShape()
	if !ok {
		return
	}
	extra, ok := s.RectangleExtra()
	if !ok {
		return
	}
	current := "none"
	if st, ok := extra.StrokeStyle(); ok {
		for name, style := range shape.StrokeStyles {
			if style == st && name != "rounded" {
				current = name
			}
		}
		if extra.Rounded {
			current = "rounded"
		}
	}
	next := borderCycle[(slices.Index(borderCycle, current)+1)%len(borderCycle)]
	extra.Border = next != "none"
	extra.Rounded = next == "rounded"
	if st, ok := shape.StrokeStyles[next]; ok {
		extra.Stroke = st
	}
	if next == "rounded" {
		extra.Stroke = shape.SingleStroke
	}
	m.engine.Shapes.SetRectangleExtra(s.ID(), extra)
}

func (m *model) paste() {
	text, err := readClipboardText()
	if err != nil {
		m.setStatus("", "Paste failed: "+err.Error())
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		return
	}
	bound := geo.Rect{Position: m.worldCoords(), Size: textSize(text)}
	id, err := m.engine.Shapes.AddText(bound, text, m.config.Style.TextExtra(), shape.RootID)
	if err != nil {
		m.setStatus("", err.Error())
		return
	}
	m.selectShape(id)
}

func (m model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if isDirectionKey(key) {
		return m.handleNavigation(key)
	}
	s, ok := m.selectedShape()
	if !ok {
		m.mode = ModeNormal
		return m, nil
	}
	switch {
	case msg.Type == tea.KeyEscape:
		if m.mode == ModeLine {
			m.deleteSelected()
		} else {
			m.engine.SetBound(s.ID(), m.originalBound, true)
		}
		m.mode = ModeNormal
	case key == "enter", m.mode == ModeMove && key == "m", m.mode == ModeResize && key == "r", m.mode == ModeLine && key == "a":
		if m.mode == ModeLine {
			m.dragLineEnd(true)
		} else {
			m.engine.SetBound(s.ID(), s.Bound(), true)
		}
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch msg.String() {
	case "y", "Y", "enter":
	default:
		return m, nil
	}
	switch m.confirmAction {
	case ConfirmQuit:
		return m, tea.Quit
	case ConfirmDelete:
		m.deleteSelected()
	}
	return m, nil
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
	case tea.KeyEnter:
		if m.filename != "" {
			m.runExport()
			m.mode = ModeNormal
		}
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}
