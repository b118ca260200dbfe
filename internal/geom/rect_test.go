package geom

import (
	"strings"
	"testing"
)

func TestNewRectNormalizes(t *testing.T) {
	for _, tc := range samplePairs {
		ab := NewRect(tc.a, tc.b)
		ba := NewRect(tc.b, tc.a)
		if ab != ba {
			t.Errorf("%s: NewRect(a,b)=%v NewRect(b,a)=%v", tc.name, ab, ba)
		}
		if ab.Min().Latitude > ab.Max().Latitude || ab.Min().Longitude > ab.Max().Longitude {
			t.Errorf("%s: corners not normalized: %v", tc.name, ab)
		}
	}
}

func TestNewRectMixedCorners(t *testing.T) {
	// north-west and south-east corners
	r := NewRect(NewCoordinate(30, 20), NewCoordinate(10, 40))
	if r.Min() != NewCoordinate(10, 20) {
		t.Fatalf("min = %v, want {lat: 10.0, lon: 20.0}", r.Min())
	}
	if r.Max() != NewCoordinate(30, 40) {
		t.Fatalf("max = %v, want {lat: 30.0, lon: 40.0}", r.Max())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(NewCoordinate(0, 0), NewCoordinate(10, 10))
	cases := []struct {
		name string
		p    Coordinate
		want bool
	}{
		{"interior", NewCoordinate(5, 5), true},
		{"south edge", NewCoordinate(0, 5), false},
		{"west edge", NewCoordinate(5, 0), false},
		{"north edge", NewCoordinate(10, 5), false},
		{"east edge", NewCoordinate(5, 10), false},
		{"min corner", NewCoordinate(0, 0), false},
		{"max corner", NewCoordinate(10, 10), false},
		{"outside south", NewCoordinate(-1, 5), false},
		{"outside east", NewCoordinate(5, 11), false},
		{"just inside", NewCoordinate(1e-9, 9.999999), true},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestDegenerateRect(t *testing.T) {
	c := NewCoordinate(43.263, -2.935)
	r := NewRect(c, c)
	if r.Min() != c || r.Max() != c {
		t.Fatalf("degenerate rect = %v, want min == max == %v", r, c)
	}
	probes := []Coordinate{c, NewCoordinate(43.263, -2.9), NewCoordinate(0, 0), NewCoordinate(43.2630001, -2.9349999)}
	for _, p := range probes {
		if r.Contains(p) {
			t.Errorf("degenerate rect must not contain %v", p)
		}
	}
}

func TestRectMapURL(t *testing.T) {
	r := NewRect(NewCoordinate(10, 20), NewCoordinate(30, 40))
	got := r.MapURL()
	if !strings.HasSuffix(got, "bbox=20.0,10.0,40.0,30.0") {
		t.Fatalf("MapURL() = %q, want suffix bbox=20.0,10.0,40.0,30.0", got)
	}
	want := "https://api.openstreetmap.org/api/0.6/map?bbox=20.0,10.0,40.0,30.0"
	if got != want {
		t.Fatalf("MapURL() = %q, want %q", got, want)
	}

	// corner order must not matter
	if swapped := NewRect(NewCoordinate(30, 40), NewCoordinate(10, 20)).MapURL(); swapped != want {
		t.Fatalf("swapped MapURL() = %q, want %q", swapped, want)
	}
}

func TestRectMapURLFractional(t *testing.T) {
	r := NewRect(NewCoordinate(43.2569, -2.9507), NewCoordinate(43.2701, -2.9204))
	want := "https://api.openstreetmap.org/api/0.6/map?bbox=-2.9507,43.2569,-2.9204,43.2701"
	if got := r.MapURL(); got != want {
		t.Fatalf("MapURL() = %q, want %q", got, want)
	}
}

func TestRectString(t *testing.T) {
	r := NewRect(NewCoordinate(10, 20), NewCoordinate(30, 40))
	want := "{min: {lat: 10.0, lon: 20.0}, max: {lat: 30.0, lon: 40.0}}"
	if got := r.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRectAsMapKey(t *testing.T) {
	a, b := NewCoordinate(1, 2), NewCoordinate(3, 4)
	seen := map[Rect]bool{NewRect(a, b): true}
	if !seen[NewRect(b, a)] {
		t.Fatal("expected normalized rects to share a map key")
	}
}
