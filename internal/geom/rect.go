package geom

import "math"

const osmMapEndpoint = "https://api.openstreetmap.org/api/0.6/map"

// Rect is an axis-aligned bounding box. Its corners are normalized at
// construction so that min <= max on both axes.
type Rect struct {
	min Coordinate
	max Coordinate
}

// NewRect builds a Rect from any two opposite corners, in any order.
func NewRect(a, b Coordinate) Rect {
	return Rect{
		min: Coordinate{
			Latitude:  math.Min(a.Latitude, b.Latitude),
			Longitude: math.Min(a.Longitude, b.Longitude),
		},
		max: Coordinate{
			Latitude:  math.Max(a.Latitude, b.Latitude),
			Longitude: math.Max(a.Longitude, b.Longitude),
		},
	}
}

// Min returns the south-west corner.
func (r Rect) Min() Coordinate { return r.min }

// Max returns the north-east corner.
func (r Rect) Max() Coordinate { return r.max }

// Contains reports whether p lies strictly inside r. Points on any edge,
// including the corners, are outside.
func (r Rect) Contains(p Coordinate) bool {
	latOK := r.min.Latitude < p.Latitude && r.max.Latitude > p.Latitude
	lonOK := r.min.Longitude < p.Longitude && r.max.Longitude > p.Longitude
	return latOK && lonOK
}

// MapURL returns the OpenStreetMap API 0.6 map query for r.
// bbox is west,south,east,north. No request is made.
func (r Rect) MapURL() string {
	return osmMapEndpoint + "?bbox=" +
		formatDegrees(r.min.Longitude) + "," +
		formatDegrees(r.min.Latitude) + "," +
		formatDegrees(r.max.Longitude) + "," +
		formatDegrees(r.max.Latitude)
}

func (r Rect) String() string {
	return "{min: " + r.min.String() + ", max: " + r.max.String() + "}"
}
