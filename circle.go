package carve

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// ContainsTolerance reports whether pt lies inside the circle, treating points
// within tolerance of the boundary as inside.
func (c Circle) ContainsTolerance(pt Point, tolerance float64) bool {
	return pt.Sub(c.Center).Hypot() <= c.Radius+tolerance
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// Intersect computes the intersection points of two circles.
//
// Returns zero points when the circles are separate, nested, or concentric,
// one point when they touch, and two points otherwise. With two points, the
// first lies on the positive side of the perpendicular of the center line.
func (c Circle) Intersect(o Circle) ([2]Point, int) {
	cc := o.Center.Sub(c.Center)
	d := cc.Hypot()
	if d == 0 {
		// Concentric circles either miss or coincide everywhere; neither
		// yields usable intersection points.
		return [2]Point{}, 0
	}
	r0 := math.Abs(c.Radius)
	r1 := math.Abs(o.Radius)
	if d > r0+r1 || d < math.Abs(r0-r1) {
		return [2]Point{}, 0
	}
	a := (d*d + r0*r0 - r1*r1) / (2 * d)
	h2 := r0*r0 - a*a
	u := cc.Div(d)
	base := c.Center.Translate(u.Mul(a))
	if h2 <= 0 {
		return [2]Point{base}, 1
	}
	off := u.Perp().Mul(math.Sqrt(h2))
	return [2]Point{
		base.Translate(off),
		base.Translate(off.Negate()),
	}, 2
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}
