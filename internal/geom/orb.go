package geom

import "github.com/paulmach/orb"

// Point converts c to an orb.Point ([lon, lat]).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Bound converts r to an orb.Bound with the same corners.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: r.min.Point(), Max: r.max.Point()}
}
