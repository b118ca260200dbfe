package tui

import (
	"math"
	"strings"

	"osmbox/internal/geom"
)

var worldFrame = geom.NewRect(geom.NewCoordinate(-90, -180), geom.NewCoordinate(90, 180))

// frame is the extent the canvas is fitted to: the rect and every probe,
// padded by a tenth of the span (at least 0.01 degrees) on each side.
func (m Model) frame() geom.Rect {
	var pts []geom.Coordinate
	if m.hasRect {
		pts = append(pts, m.rect.Min(), m.rect.Max())
	}
	pts = append(pts, m.probes...)
	if len(pts) == 0 {
		return worldFrame
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = geom.NewRect(lo, p).Min()
		hi = geom.NewRect(hi, p).Max()
	}
	padLat := math.Max((hi.Latitude-lo.Latitude)/10, 0.01)
	padLon := math.Max((hi.Longitude-lo.Longitude)/10, 0.01)
	return geom.NewRect(
		geom.NewCoordinate(lo.Latitude-padLat, lo.Longitude-padLon),
		geom.NewCoordinate(hi.Latitude+padLat, hi.Longitude+padLon),
	)
}

// cellToCoordinate converts a map cell back to lat/lon using the frame, zoom and pan.
func (m Model) cellToCoordinate(cx, cy, w, h int) (geom.Coordinate, bool) {
	if w <= 1 || h <= 1 {
		return geom.Coordinate{}, false
	}
	f := m.frame()
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := f.Min().Longitude + nx*(f.Max().Longitude-f.Min().Longitude)
	lat := f.Min().Latitude + ny*(f.Max().Latitude-f.Min().Latitude)
	return geom.NewCoordinate(lat, lon), true
}

// screenXYMicro maps a coordinate into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(c geom.Coordinate, w, h int) (int, int) {
	f := m.frame()
	ll := c.LonLat()
	nx := (ll[0] - f.Min().Longitude) / (f.Max().Longitude - f.Min().Longitude)
	ny := (ll[1] - f.Min().Latitude) / (f.Max().Latitude - f.Min().Latitude)
	// zoom around the center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)

	if m.hasRect {
		// the rect outline, corner to corner around all four edges
		corners := []geom.Coordinate{
			m.rect.Min(),
			geom.NewCoordinate(m.rect.Min().Latitude, m.rect.Max().Longitude),
			m.rect.Max(),
			geom.NewCoordinate(m.rect.Max().Latitude, m.rect.Min().Longitude),
		}
		for i := range corners {
			x0, y0 := m.screenXYMicro(corners[i], w, h)
			x1, y1 := m.screenXYMicro(corners[(i+1)%len(corners)], w, h)
			br.drawLineMicro(x0, y0, x1, y1)
		}
	}
	for _, p := range m.probes {
		br.markMicro(m.screenXYMicro(p, w, h))
	}

	lines := br.toLines()

	// hover marker replaces the hovered cell
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < len(lines) {
		r := []rune(lines[m.hoverCellY])
		if m.hoverCellX >= 0 && m.hoverCellX < len(r) {
			style := hoverStyle
			if m.hoverHasGeo && m.hasRect && m.rect.Contains(m.hover) {
				style = insideStyle
			}
			lines[m.hoverCellY] = string(r[:m.hoverCellX]) + style.Render("◯") + string(r[m.hoverCellX+1:])
		}
	}
	return strings.Join(lines, "\n")
}
