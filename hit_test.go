package carve

import (
	"testing"
)

// At scale 10 the handle radius is 1.8 world units and the active handle
// radius 2.4, small against a leaf with a chord of 10.
const hitScale = 10.0

func TestHitTestVertex(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)

	diff(t, l.HitTest(Pt(0.5, 0), hitScale), Hit{Region: HitVertex, Index: 0})
	diff(t, l.HitTest(Pt(9.5, 0.3), hitScale), Hit{Region: HitVertex, Index: 1})

	// The vertex target is a circle: the corner of the would-be square
	// misses and falls through to the body.
	diff(t, l.HitTest(Pt(1.5, 1.5), hitScale), Hit{Region: HitBody, Index: -1})
}

func TestHitTestArcSquare(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	m := l.ArcMidpoints()[0]

	// The arc target is a square: its corner is farther than the radius
	// but still hits.
	diff(t, l.HitTest(Pt(m.X+1.7, m.Y+1.7), hitScale), Hit{Region: HitArc, Index: 0})
	diff(t, l.HitTest(Pt(m.X, m.Y-0.3), hitScale), Hit{Region: HitArc, Index: 0})

	// Just past the square on either axis misses the handle.
	if got := l.HitTest(Pt(m.X+1.9, m.Y), hitScale); got.Region == HitArc {
		t.Errorf("got %v outside the square, want no arc hit", got)
	}
}

func TestHitTestNearerHandleWins(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	m := l.ArcMidpoints()[0]

	// At scale 2 both the vertex and the arc handle cover these points;
	// the nearer one takes the hit.
	diff(t, l.HitTest(Pt(4, 2), 2), Hit{Region: HitArc, Index: 0})
	diff(t, l.HitTest(Pt(1, 1), 2), Hit{Region: HitVertex, Index: 0})

	// On an exact tie the vertex wins.
	tie := Pt(m.X/2, m.Y/2)
	diff(t, l.HitTest(tie, 2), Hit{Region: HitVertex, Index: 0})
}

func TestHitTestActiveHandleGrows(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	pt := Pt(2, 0) // 2 from vertex 0: outside 1.8, inside 2.4

	diff(t, l.HitTest(pt, hitScale), Hit{Region: HitBody, Index: -1})

	l.SetActiveHit(Hit{Region: HitVertex, Index: 0})
	diff(t, l.HitTest(pt, hitScale), Hit{Region: HitVertex, Index: 0})

	// Only the active handle grows.
	diff(t, l.HitTest(Pt(8, 0), hitScale), Hit{Region: HitBody, Index: -1})
}

func TestHitTestRotationHandle(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	hp := RotationHandlePos(l.Bounds(), hitScale)
	pt := Pt(hp.X+0.5, hp.Y+0.3)

	// The rotation handle only exists on selected shapes.
	diff(t, l.HitTest(pt, hitScale), NoHit)

	l.SetSelected(true)
	diff(t, l.HitTest(pt, hitScale), Hit{Region: HitRotationHandle, Index: -1})
}

func TestHitTestBodyAndMiss(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)

	diff(t, l.HitTest(Pt(5, 0), hitScale), Hit{Region: HitBody, Index: -1})
	diff(t, l.HitTest(Pt(50, 50), hitScale), NoHit)
}

func TestHitTestBadScale(t *testing.T) {
	l := NewLeaf(Pt(0, 0), Pt(10, 0), 6)

	// Non-positive scales fall back to 1.
	diff(t, l.HitTest(Pt(0, 0), 0), Hit{Region: HitVertex, Index: 0})
	diff(t, l.HitTest(Pt(0, 0), -5), Hit{Region: HitVertex, Index: 0})
}

func TestHitTestTriArc(t *testing.T) {
	tri := NewTriArc(Pt(0, 0), Pt(10, 0), Pt(5, 9), DefaultBulge, DefaultBulge, DefaultBulge)

	diff(t, tri.HitTest(Pt(0.3, 0.4), hitScale), Hit{Region: HitVertex, Index: 0})
	// The base edge dips to (5, 1).
	diff(t, tri.HitTest(Pt(5.5, 1.2), hitScale), Hit{Region: HitArc, Index: 0})
	diff(t, tri.HitTest(Pt(5, 6), hitScale), Hit{Region: HitBody, Index: -1})
	diff(t, tri.HitTest(Pt(20, 20), hitScale), NoHit)
}

func TestRotationHandlePos(t *testing.T) {
	diff(t, RotationHandlePos(Rect{0, 0, 10, 10}, 2), Pt(5, -15))
	diff(t, RotationHandlePos(Rect{0, 0, 10, 10}, 1), Pt(5, -30))
}
