package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestCoordinatePoint(t *testing.T) {
	p := NewCoordinate(43.263, -2.935).Point()
	if p.Lon() != -2.935 || p.Lat() != 43.263 {
		t.Fatalf("Point() = %v", p)
	}
}

func TestRectBound(t *testing.T) {
	b := NewRect(NewCoordinate(30, 40), NewCoordinate(10, 20)).Bound()
	want := orb.Bound{Min: orb.Point{20, 10}, Max: orb.Point{40, 30}}
	if !b.Equal(want) {
		t.Fatalf("Bound() = %v, want %v", b, want)
	}
	if b.Left() != 20 || b.Bottom() != 10 || b.Right() != 40 || b.Top() != 30 {
		t.Fatalf("unexpected bound edges: %v", b)
	}
}
