package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"osmbox/internal/config"
	"osmbox/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// Options seeds a viewer session.
type Options struct {
	Corners  []geom.Coordinate
	Presets  config.Presets
	LogFile  string
	LogLevel string
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Presets sidebar
	l       list.Model
	presets config.Presets

	// Data
	rect    geom.Rect
	hasRect bool
	probes  []geom.Coordinate

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHasGeo bool
	hover       geom.Coordinate

	// measurements table
	showTable bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "osmbox ready",
		presets:     opts.Presets,
	}
	if len(opts.Corners) >= 2 {
		m.setRect(opts.Corners[0], opts.Corners[1])
		m.probes = append(m.probes, opts.Corners[2:]...)
	} else {
		m.probes = append(m.probes, opts.Corners...)
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Presets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "One lat,lon or @preset per line: two corners, then probe points. Ctrl+S to apply; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshPresets()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) setRect(a, b geom.Coordinate) {
	m.rect = geom.NewRect(a, b)
	m.hasRect = true
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}

// layout returns the map area origin and size in cells.
func (m Model) layout() (originX, originY, w, h int) {
	if m.showSidebar {
		originX = sidebarWidth + 1
	}
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, m.width-originX)
	return originX, headerHeight, w, h
}
