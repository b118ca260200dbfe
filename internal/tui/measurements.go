package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the measurements table from the current probes.
func (m *Model) refreshTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "lat", Width: 11},
		{Title: "lon", Width: 11},
		{Title: "inside", Width: 7},
		{Title: "from prev (m)", Width: 14},
		{Title: "from min (m)", Width: 14},
	}
	rows := make([]table.Row, 0, len(m.probes))
	for i, p := range m.probes {
		prev := "-"
		if i > 0 {
			prev = formatMeters(m.probes[i-1].Distance(p))
		}
		inside, fromMin := "-", "-"
		if m.hasRect {
			inside = strconv.FormatBool(m.rect.Contains(p))
			fromMin = formatMeters(m.rect.Min().Distance(p))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			strconv.FormatFloat(p.Latitude, 'f', 5, 64),
			strconv.FormatFloat(p.Longitude, 'f', 5, 64),
			inside,
			prev,
			fromMin,
		})
	}
	// clear rows first so a shrinking column set never sees wider rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
