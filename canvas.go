package carve

import (
	"math"
)

// Canvas is the drawing surface shapes render to. It mirrors the path-based
// contract of a 2D canvas context: build a path, then stroke or fill it.
// Implementations are expected to use the same y-down, increasing-angle
// convention as the geometry in this package.
type Canvas interface {
	BeginPath()
	MoveTo(pt Point)
	LineTo(pt Point)
	// Arc appends a circular arc around center from startAngle to endAngle.
	// With anticlockwise set the sweep runs in decreasing-angle direction.
	// If the path already has a current point, a connecting line to the arc
	// start is implied.
	Arc(center Point, radius, startAngle, endAngle float64, anticlockwise bool)
	ClosePath()
	Stroke()
	Fill()
}

// strokeArcs draws a closed outline made of consecutive arcs.
func strokeArcs(c Canvas, arcs []Arc) {
	if len(arcs) == 0 {
		return
	}
	c.BeginPath()
	start := arcs[0].StartPoint()
	c.MoveTo(start)
	for _, a := range arcs {
		c.Arc(a.Center, a.Radius, a.StartAngle, a.EndAngle, !a.Clockwise)
	}
	c.ClosePath()
	c.Stroke()
}

// DrawHandles paints the interaction handles of a selected shape: circles on
// vertices, squares on arc markers and the floating rotation handle. Handle
// sizes are given in screen pixels and divided by scale, so they stay a
// constant size on screen.
func DrawHandles(c Canvas, s Shape, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if s.degenerate() {
		return
	}

	active := s.ActiveHit()
	size := func(h Hit) float64 {
		if h == active {
			return ActiveHandleHitRadius / scale
		}
		return HandleHitRadius / scale
	}

	for i, v := range s.Vertices() {
		r := size(Hit{Region: HitVertex, Index: i})
		c.BeginPath()
		c.Arc(v, r, 0, 2*math.Pi, false)
		c.Stroke()
	}

	for i, m := range s.ArcMidpoints() {
		half := size(Hit{Region: HitArc, Index: i})
		c.BeginPath()
		c.MoveTo(Pt(m.X-half, m.Y-half))
		c.LineTo(Pt(m.X+half, m.Y-half))
		c.LineTo(Pt(m.X+half, m.Y+half))
		c.LineTo(Pt(m.X-half, m.Y+half))
		c.ClosePath()
		c.Stroke()
	}

	if s.Selected() {
		pos := RotationHandlePos(s.Bounds(), scale)
		r := size(Hit{Region: HitRotationHandle, Index: -1})
		c.BeginPath()
		c.Arc(pos, r, 0, 2*math.Pi, false)
		c.Stroke()
	}
}
