package tui

import (
	"fmt"
	"log/slog"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"osmbox/internal/config"
)

type presetItem struct {
	preset config.Preset
}

func (p presetItem) Title() string       { return p.preset.Name }
func (p presetItem) Description() string { return p.preset.Coordinate().String() }
func (p presetItem) FilterValue() string { return p.preset.Name }

func (m *Model) refreshPresets() {
	items := make([]list.Item, 0, len(m.presets))
	for _, p := range m.presets {
		items = append(items, presetItem{preset: p})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(presetItem).Title() < items[j].(presetItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 && m.showSidebar {
		m.status = "no presets configured"
	}
}

// addSelectedPreset appends the highlighted preset as a probe point.
func (m *Model) addSelectedPreset() {
	it, ok := m.l.SelectedItem().(presetItem)
	if !ok {
		m.status = "no preset selected"
		return
	}
	c := it.preset.Coordinate()
	m.probes = append(m.probes, c)
	m.status = fmt.Sprintf("probe %s %s%s", it.preset.Name, c, m.insideLabel(c))
	slog.Debug("preset probe added", "preset", it.preset.Name, "point", c)
	if m.showTable {
		m.refreshTable()
	}
}
