package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"osmbox/internal/config"
	"osmbox/internal/geom"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func unitRect() Model {
	return New(Options{Corners: []geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10)}})
}

func TestNewNormalizesCorners(t *testing.T) {
	m := New(Options{Corners: []geom.Coordinate{
		geom.NewCoordinate(30, 40),
		geom.NewCoordinate(10, 20),
		geom.NewCoordinate(15, 25),
	}})
	if !m.hasRect {
		t.Fatal("expected rect from corners")
	}
	if m.rect.Min() != geom.NewCoordinate(10, 20) || m.rect.Max() != geom.NewCoordinate(30, 40) {
		t.Fatalf("rect = %v", m.rect)
	}
	if len(m.probes) != 1 || m.probes[0] != geom.NewCoordinate(15, 25) {
		t.Fatalf("probes = %v", m.probes)
	}
}

func TestViewEmptyBeforeResize(t *testing.T) {
	if v := unitRect().View(); v != "" {
		t.Fatalf("expected empty view before size is known, got %q", v)
	}
}

func TestFrameWorldWhenEmpty(t *testing.T) {
	if f := New(Options{}).frame(); f != worldFrame {
		t.Fatalf("frame = %v, want world", f)
	}
}

func TestCellToCoordinateCenter(t *testing.T) {
	m := unitRect()
	c, ok := m.cellToCoordinate(20, 10, 41, 21)
	if !ok {
		t.Fatal("expected coordinate")
	}
	if math.Abs(c.Latitude-5) > 1e-9 || math.Abs(c.Longitude-5) > 1e-9 {
		t.Fatalf("center cell = %v, want {lat: 5.0, lon: 5.0}", c)
	}

	// top-left cell is the padded frame corner, outside the rect
	c, _ = m.cellToCoordinate(0, 0, 41, 21)
	if math.Abs(c.Latitude-11) > 1e-9 || math.Abs(c.Longitude+1) > 1e-9 {
		t.Fatalf("corner cell = %v, want {lat: 11.0, lon: -1.0}", c)
	}
	if m.rect.Contains(c) {
		t.Fatal("padded corner must be outside the rect")
	}
}

func TestMouseHoverReportsInside(t *testing.T) {
	m := step(t, unitRect(), tea.WindowSizeMsg{Width: 41, Height: 24})
	m = step(t, m, tea.MouseMsg{X: 20, Y: 11, Action: tea.MouseActionMotion})
	if !m.hovering || !m.hoverHasGeo {
		t.Fatal("expected hover over map")
	}
	if !m.rect.Contains(m.hover) {
		t.Fatalf("hover %v should be inside %v", m.hover, m.rect)
	}
	if !strings.Contains(m.View(), "inside") {
		t.Fatalf("expected inside marker in footer:\n%s", m.View())
	}

	// header row is not part of the map
	m = step(t, m, tea.MouseMsg{X: 20, Y: 0, Action: tea.MouseActionMotion})
	if m.hovering {
		t.Fatal("hover over header should not count")
	}
}

func TestPasteAppliesRectAndProbes(t *testing.T) {
	m := New(Options{Presets: []config.Preset{{Name: "home", Latitude: 12, Longitude: 22}}})
	m = step(t, m, key("p"))
	if !m.pasteMode {
		t.Fatal("expected paste mode")
	}
	m.ta.SetValue("30,40\n10,20\n\n15,25\n@home")
	m = step(t, m, key("ctrl+s"))

	if m.pasteMode {
		t.Fatalf("paste mode should close, status=%q", m.status)
	}
	if m.rect != geom.NewRect(geom.NewCoordinate(10, 20), geom.NewCoordinate(30, 40)) {
		t.Fatalf("rect = %v", m.rect)
	}
	want := []geom.Coordinate{geom.NewCoordinate(15, 25), geom.NewCoordinate(12, 22)}
	if len(m.probes) != len(want) || m.probes[0] != want[0] || m.probes[1] != want[1] {
		t.Fatalf("probes = %v, want %v", m.probes, want)
	}
}

func TestPasteTypedLines(t *testing.T) {
	m := step(t, New(Options{}), key("p"))
	for i, line := range []string{"30,40", "10,20", "15,25"} {
		if i > 0 {
			m = step(t, m, key("enter"))
			if !m.pasteMode {
				t.Fatalf("enter after line %d closed paste mode, status=%q", i, m.status)
			}
		}
		m = step(t, m, key(line))
	}
	if got := m.ta.Value(); got != "30,40\n10,20\n15,25" {
		t.Fatalf("textarea = %q", got)
	}
	m = step(t, m, key("ctrl+s"))

	if m.pasteMode {
		t.Fatalf("ctrl+s should apply, status=%q", m.status)
	}
	if m.rect != geom.NewRect(geom.NewCoordinate(10, 20), geom.NewCoordinate(30, 40)) {
		t.Fatalf("rect = %v", m.rect)
	}
	if len(m.probes) != 1 || m.probes[0] != geom.NewCoordinate(15, 25) {
		t.Fatalf("probes = %v", m.probes)
	}
}

func TestPasteErrors(t *testing.T) {
	cases := map[string]string{
		"10,20":           "need two corner lines",
		"10,20\nnorth":    "line 2",
		"10,20\n@nowhere": `unknown preset "nowhere"`,
	}
	for input, want := range cases {
		m := step(t, unitRect(), key("p"))
		m.ta.SetValue(input)
		m = step(t, m, key("ctrl+s"))
		if !m.pasteMode {
			t.Errorf("%q: paste mode should stay open on error", input)
		}
		if !strings.Contains(m.status, want) {
			t.Errorf("%q: status = %q, want %q", input, m.status, want)
		}
	}
}

func TestPasteEscCancels(t *testing.T) {
	m := step(t, unitRect(), key("p"))
	m.ta.SetValue("1,1\n2,2")
	m = step(t, m, key("esc"))
	if m.pasteMode {
		t.Fatal("esc should leave paste mode")
	}
	if m.rect.Max() != geom.NewCoordinate(10, 10) {
		t.Fatalf("rect changed on cancel: %v", m.rect)
	}
}

func TestInspectPopup(t *testing.T) {
	m := New(Options{Corners: []geom.Coordinate{geom.NewCoordinate(10, 20), geom.NewCoordinate(30, 40)}})
	m.probes = []geom.Coordinate{geom.NewCoordinate(20, 30), geom.NewCoordinate(10, 30)}
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = step(t, m, key("i"))

	for _, want := range []string{"bbox=20.0,10.0,40.0,30.0", "probes: 2 inside=1", "min: {lat: 10.0, lon: 20.0}"} {
		if !strings.Contains(m.inspectPopup, want) {
			t.Errorf("popup missing %q:\n%s", want, m.inspectPopup)
		}
	}
	if !strings.Contains(m.View(), "bbox=20.0,10.0,40.0,30.0") {
		t.Errorf("view should show the popup:\n%s", m.View())
	}

	m = step(t, m, key("i"))
	if m.inspectPopup != "" {
		t.Fatal("second i should close the popup")
	}
}

func TestMeasurementsTable(t *testing.T) {
	m := unitRect()
	m.probes = []geom.Coordinate{geom.NewCoordinate(5, 5), geom.NewCoordinate(0, 5)}
	m = step(t, m, key("a"))
	if !m.showTable {
		t.Fatal("expected table")
	}
	rows := m.tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][3] != "true" || rows[1][3] != "false" {
		t.Fatalf("inside column = %q, %q", rows[0][3], rows[1][3])
	}
	if rows[0][4] != "-" {
		t.Fatalf("first row has no previous probe, got %q", rows[0][4])
	}
	want := formatMeters(geom.NewCoordinate(5, 5).Distance(geom.NewCoordinate(0, 5)))
	if rows[1][4] != want {
		t.Fatalf("from prev = %q, want %q", rows[1][4], want)
	}

	m = step(t, m, key("c"))
	if len(m.probes) != 0 || len(m.tbl.Rows()) != 0 {
		t.Fatalf("clear should empty probes and table, got %d/%d", len(m.probes), len(m.tbl.Rows()))
	}
}

func TestPresetSidebarAddsProbe(t *testing.T) {
	m := New(Options{Presets: []config.Preset{
		{Name: "zeta", Latitude: 1, Longitude: 1},
		{Name: "alpha", Latitude: 5, Longitude: 5},
	}})
	m = step(t, m, key("tab"))
	if !m.showSidebar {
		t.Fatal("expected sidebar")
	}
	m = step(t, m, key("enter"))
	if len(m.probes) != 1 || m.probes[0] != geom.NewCoordinate(5, 5) {
		t.Fatalf("probes = %v, want sorted first preset alpha", m.probes)
	}
	if !strings.Contains(m.status, "alpha") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestZoomAndReset(t *testing.T) {
	m := step(t, unitRect(), key("+"))
	if m.zoom <= 1 {
		t.Fatalf("zoom = %v, want > 1", m.zoom)
	}
	m = step(t, m, key("left"))
	m = step(t, m, key("0"))
	if m.zoom != 1 || m.offsetX != 0 || m.offsetY != 0 {
		t.Fatalf("reset left zoom=%v offset=%d,%d", m.zoom, m.offsetX, m.offsetY)
	}
}

func TestQuit(t *testing.T) {
	_, cmd := unitRect().Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestRenderMapDrawsRect(t *testing.T) {
	out := unitRect().renderMap(20, 10)
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected rect outline on canvas")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}

	empty := New(Options{}).renderMap(20, 10)
	if strings.TrimSpace(empty) != "" {
		t.Fatalf("expected blank canvas, got %q", empty)
	}
}
