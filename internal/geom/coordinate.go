package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6_371_000.0

// ErrInvalidCoordinate is returned when a "lat,lon" argument cannot be read.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a point on the Earth's surface in decimal degrees.
// Values are not range checked.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

func NewCoordinate(latitude, longitude float64) Coordinate {
	return Coordinate{Latitude: latitude, Longitude: longitude}
}

// Distance returns the haversine great-circle distance to other, in meters.
func (c Coordinate) Distance(other Coordinate) float64 {
	lat1 := radians(c.Latitude)
	lat2 := radians(other.Latitude)
	dLat := lat2 - lat1
	dLon := radians(other.Longitude) - radians(c.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) * EarthRadiusMeters
}

// LonLat returns the point as an x/y pair, longitude first.
func (c Coordinate) LonLat() [2]float64 {
	return [2]float64{c.Longitude, c.Latitude}
}

func (c Coordinate) String() string {
	return "{lat: " + formatDegrees(c.Latitude) + ", lon: " + formatDegrees(c.Longitude) + "}"
}

// ParseCoordinate reads "lat,lon" (whitespace around either value is ignored).
func ParseCoordinate(s string) (Coordinate, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w %q: want lat,lon", ErrInvalidCoordinate, s)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w %q: latitude: %v", ErrInvalidCoordinate, s, err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w %q: longitude: %v", ErrInvalidCoordinate, s, err)
	}
	return NewCoordinate(la, lo), nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// formatDegrees prints the shortest round-trip decimal, keeping a ".0" on
// integral values so 20 renders as "20.0".
func formatDegrees(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
