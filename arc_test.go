package carve

import (
	"math"
	"testing"
)

func TestNewArcFromChord(t *testing.T) {
	const epsilon = 1e-9

	// Chord of 10 with a rise of 2 lies on a circle of radius 7.25.
	a, ok := NewArcFromChord(Pt(0, 0), Pt(10, 0), 2)
	if !ok {
		t.Fatal("expected a valid arc")
	}
	assertNear(t, a.Center, Pt(5, -5.25), epsilon)
	if a.Radius != 7.25 {
		t.Errorf("got radius %v, want 7.25", a.Radius)
	}
	if a.Clockwise {
		t.Error("positive sagitta should sweep anticlockwise")
	}
	assertNear(t, a.StartPoint(), Pt(0, 0), epsilon)
	assertNear(t, a.EndPoint(), Pt(10, 0), epsilon)

	// Flipping the sagitta mirrors the arc across the chord.
	b, ok := NewArcFromChord(Pt(0, 0), Pt(10, 0), -2)
	if !ok {
		t.Fatal("expected a valid arc")
	}
	assertNear(t, b.Center, Pt(5, 5.25), epsilon)
	if !b.Clockwise {
		t.Error("negative sagitta should sweep clockwise")
	}
	assertNear(t, b.StartPoint(), Pt(0, 0), epsilon)
	assertNear(t, b.EndPoint(), Pt(10, 0), epsilon)
}

func TestNewArcFromChordDegenerate(t *testing.T) {
	f := func(p0, p1 Point, sagitta float64) {
		if _, ok := NewArcFromChord(p0, p1, sagitta); ok {
			t.Errorf("expected no arc for chord %s-%s with sagitta %v", p0, p1, sagitta)
		}
	}
	f(Pt(1, 1), Pt(1, 1), 2)           // zero chord
	f(Pt(0, 0), Pt(1e-12, 0), 2)       // vanishing chord
	f(Pt(0, 0), Pt(10, 0), 0)          // flat arc
	f(Pt(0, 0), Pt(10, 0), math.NaN()) // bad sagitta
	f(Pt(0, 0), Pt(math.Inf(1), 0), 2) // bad endpoint
	f(Pt(math.NaN(), 0), Pt(10, 0), 2) // bad endpoint
}

func TestSagittaRadiusRoundTrip(t *testing.T) {
	f := func(chord, sagitta float64) {
		r := RadiusFromSagitta(chord, sagitta)
		if got := SagittaFromRadius(chord, r); got != sagitta {
			t.Errorf("chord %v sagitta %v: got %v after round trip", chord, sagitta, got)
		}
	}
	f(10, 2)
	f(10, 5) // semicircle
	f(10, 0.25)
	f(6, 1.5)
}

func TestChordCenterDistance(t *testing.T) {
	if got, want := ChordCenterDistance(10, 6), math.Sqrt(11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := ChordCenterDistance(10, 4); !math.IsNaN(got) {
		t.Errorf("got %v for an oversized chord, want NaN", got)
	}
}

func TestBulgeConversions(t *testing.T) {
	if got := SagittaFromBulge(10, -0.5); got != 2.5 {
		t.Errorf("got sagitta %v, want 2.5", got)
	}
	if got := SagittaFromBulge(10, 0.5); got != 2.5 {
		t.Errorf("got sagitta %v, want 2.5", got)
	}
	if got := BulgeFromSagitta(10, 2.5); got != 0.5 {
		t.Errorf("got bulge %v, want 0.5", got)
	}
	if got := BulgeFromSagitta(10, -2.5); got != -0.5 {
		t.Errorf("got bulge %v, want -0.5", got)
	}
}

func TestTriangleContains(t *testing.T) {
	a, b, c := Pt(0, 0), Pt(10, 0), Pt(5, 10)
	f := func(pt Point, want bool) {
		t.Helper()
		if got := TriangleContains(a, b, c, pt, 1e-9); got != want {
			t.Errorf("TriangleContains(%s) = %t, want %t", pt, got, want)
		}
		// Winding must not matter.
		if got := TriangleContains(c, b, a, pt, 1e-9); got != want {
			t.Errorf("TriangleContains(%s) reversed = %t, want %t", pt, got, want)
		}
	}
	f(Pt(5, 3), true)
	f(Pt(0, 0), true) // vertex
	f(Pt(5, 0), true) // on edge
	f(Pt(5, -1), false)
	f(Pt(11, 0), false)
	f(Pt(5, 11), false)
}
