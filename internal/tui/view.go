package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"osmbox/internal/geom"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" osmbox ─ bounding box viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	case m.inspectPopup != "":
		box := boxStyle.MaxWidth(mapWidth).Render(m.inspectPopup)
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(mapWidth, mapHeight))
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering && m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f%s  ", m.hover.Latitude, m.hover.Longitude, m.insideLabel(m.hover)))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab presets",
		"Enter add",
		"p paste",
		"a table",
		"i inspect",
		"c clear",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

// inspectText summarizes the current rect and probes.
func (m Model) inspectText() string {
	if !m.hasRect {
		return fmt.Sprintf("no rect\nprobes: %d", len(m.probes))
	}
	inside := 0
	for _, p := range m.probes {
		if m.rect.Contains(p) {
			inside++
		}
	}
	meta := []string{
		fmt.Sprintf("min: %s", m.rect.Min()),
		fmt.Sprintf("max: %s", m.rect.Max()),
		fmt.Sprintf("diagonal: %s m", formatMeters(m.rect.Min().Distance(m.rect.Max()))),
		fmt.Sprintf("probes: %d inside=%d", len(m.probes), inside),
		"map: " + m.rect.MapURL(),
	}
	return strings.Join(meta, "\n")
}

// insideLabel is " inside" or " outside" relative to the rect, or empty
// when no rect is set.
func (m Model) insideLabel(c geom.Coordinate) string {
	if !m.hasRect {
		return ""
	}
	if m.rect.Contains(c) {
		return " inside"
	}
	return " outside"
}
