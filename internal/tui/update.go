package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"osmbox/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		// While the preset list is filtering it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "ctrl+s":
				if err := m.applyPaste(m.ta.Value()); err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
			m.showTable = false
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshPresets()
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode: ctrl+s apply, esc cancel"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.inspectPopup = m.inspectText()
				m.status = "inspect"
			}
		case "c":
			m.probes = nil
			m.status = "probes cleared"
			if m.showTable {
				m.refreshTable()
			}
		case "enter":
			if m.showSidebar {
				m.addSelectedPreset()
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		originX, originY, w, h := m.layout()
		cx, cy := msg.X-originX, msg.Y-originY
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			m.hovering = true
			m.hoverCellX, m.hoverCellY = cx, cy
			m.hover, m.hoverHasGeo = m.cellToCoordinate(cx, cy, w, h)
		} else {
			m.hovering = false
			m.hoverHasGeo = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyPaste reads one coordinate per non-empty line: the first two are the
// rect corners and any further lines are probes. "@name" selects a preset.
func (m *Model) applyPaste(text string) error {
	var coords []geom.Coordinate
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := m.presets.Resolve(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		coords = append(coords, c)
	}
	if len(coords) < 2 {
		return errors.New("need two corner lines")
	}
	m.setRect(coords[0], coords[1])
	m.probes = coords[2:]
	m.status = fmt.Sprintf("rect %s  probes=%d", m.rect, len(m.probes))
	slog.Debug("rect updated", "rect", m.rect, "probes", len(m.probes))
	if m.showTable {
		m.refreshTable()
	}
	return nil
}
