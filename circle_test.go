package carve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircleAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5, 5)
	c := Circle{center, 5}
	if a := c.Area(); !approxEqual(a, 25*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}

	if w := c.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}

	cNegRadius := Circle{center, -5}
	if a := cNegRadius.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}

	if w := cNegRadius.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
}

func TestCircleContainsTolerance(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	f := func(pt Point, tolerance float64, want bool) {
		if got := c.ContainsTolerance(pt, tolerance); got != want {
			t.Errorf("ContainsTolerance(%s, %v) = %t, want %t", pt, tolerance, got, want)
		}
	}
	f(Pt(0, 0), 0, true)
	f(Pt(5, 0), 0, true)
	f(Pt(5.1, 0), 0, false)
	f(Pt(5.1, 0), 0.2, true)
	f(Pt(3, 4), 0, true)
	f(Pt(6, 0), 1e-9, false)
}

func TestCircleIntersect(t *testing.T) {
	// Unit circles one apart cross at two points, the first on the
	// positive perpendicular side of the center line.
	a := Circle{Pt(0, 0), 1}
	b := Circle{Pt(1, 0), 1}
	pts, n := a.Intersect(b)
	if n != 2 {
		t.Fatalf("got %d intersections, want 2", n)
	}
	h := math.Sqrt(3) / 2
	diff(t, pts[:n], []Point{Pt(0.5, h), Pt(0.5, -h)}, cmpopts.EquateApprox(0, 1e-9))

	// Externally tangent circles touch at one point.
	pts, n = a.Intersect(Circle{Pt(2, 0), 1})
	if n != 1 {
		t.Fatalf("got %d intersections, want 1", n)
	}
	assertNear(t, pts[0], Pt(1, 0), 1e-9)

	f := func(o Circle) {
		if _, n := a.Intersect(o); n != 0 {
			t.Errorf("got %d intersections with %v, want 0", n, o)
		}
	}
	f(Circle{Pt(5, 0), 1})    // separate
	f(Circle{Pt(0.1, 0), 10}) // nested
	f(Circle{Pt(0, 0), 1})    // concentric
	f(Circle{Pt(0, 0), 0.5})  // concentric, different radii
}
