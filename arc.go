package carve

import (
	"math"
)

const (
	// minChordLength is the shortest chord the arc constructions accept.
	// Chords below this are treated as degenerate and the construction
	// fails.
	minChordLength = 1e-9

	// minSagittaRatio bounds interactive arc heights away from zero, as a
	// fraction of the half chord. Flatter arcs would put the circle center
	// astronomically far away.
	minSagittaRatio = 0.001

	// containsTolerance widens containment tests by a hair so points on a
	// stroked boundary count as inside.
	containsTolerance = 1e-9
)

// Arc is a circular arc in renderer-ready form: a center, a radius and a pair
// of angles, plus the sweep direction between them.
//
// Angles follow the same convention as [Rotate]: measured from the positive x
// axis towards positive y, so in a y-down space increasing angles sweep
// visually clockwise. Clockwise reports that numerically increasing sweep.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// NewArcFromChord constructs the arc spanning the chord from p0 to p1 with the
// given sagitta (bulge height at the chord midpoint).
//
// The sagitta is measured along the perpendicular of the chord direction: a
// positive value bulges towards [Vec2.Perp] of p1−p0, a negative value towards
// the opposite side. The magnitude must not exceed half the chord length, so
// the result is never more than a semicircle.
//
// Construction fails for chords shorter than 1e-9, zero sagitta, and
// non-finite inputs.
func NewArcFromChord(p0, p1 Point, sagitta float64) (Arc, bool) {
	cv := p1.Sub(p0)
	chord := cv.Hypot()
	if chord < minChordLength || sagitta == 0 ||
		math.IsNaN(sagitta) || math.IsInf(sagitta, 0) || cv.IsNaN() || cv.IsInf() {
		return Arc{}, false
	}

	radius := RadiusFromSagitta(chord, sagitta)
	n := cv.Div(chord).Perp()
	mid := p0.Midpoint(p1)
	center := mid.Translate(n.Mul(sagitta - math.Copysign(radius, sagitta)))

	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: p0.Sub(center).Angle(),
		EndAngle:   p1.Sub(center).Angle(),
		Clockwise:  sagitta < 0,
	}, true
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

// EndPoint returns the point at EndAngle.
func (a Arc) EndPoint() Point {
	return pointOnCircle(a.Center, a.Radius, a.EndAngle)
}

// RadiusFromSagitta returns the radius of the circle through a chord of the
// given length whose arc rises sagitta above the chord midpoint.
//
// The sign of the sagitta does not matter. A zero sagitta yields +Inf.
func RadiusFromSagitta(chord, sagitta float64) float64 {
	h := math.Abs(sagitta)
	return (chord*chord/4 + h*h) / (2 * h)
}

// SagittaFromRadius returns the height of the minor arc over a chord of the
// given length on a circle of the given radius.
//
// Returns NaN when the chord does not fit the circle, that is when
// chord > 2*radius.
func SagittaFromRadius(chord, radius float64) float64 {
	return radius - ChordCenterDistance(chord, radius)
}

// ChordCenterDistance returns the distance from the circle center to a chord
// of the given length.
//
// Returns NaN when the chord does not fit the circle.
func ChordCenterDistance(chord, radius float64) float64 {
	half := chord / 2
	return math.Sqrt(radius*radius - half*half)
}

// SagittaFromBulge converts a bulge factor to an arc height. The bulge factor
// expresses the sagitta as a fraction of half the chord length, so a magnitude
// of 1 is a semicircle.
func SagittaFromBulge(chord, bulge float64) float64 {
	return math.Abs(bulge) * chord / 2
}

// BulgeFromSagitta converts an arc height over a chord to a bulge factor.
func BulgeFromSagitta(chord, sagitta float64) float64 {
	return 2 * sagitta / chord
}

// TriangleContains reports whether pt lies inside or on the triangle abc,
// using the sign of the cross product against each edge. The vertex winding
// does not matter.
func TriangleContains(a, b, c, pt Point, tolerance float64) bool {
	d0 := b.Sub(a).Cross(pt.Sub(a))
	d1 := c.Sub(b).Cross(pt.Sub(b))
	d2 := a.Sub(c).Cross(pt.Sub(c))

	hasNeg := d0 < -tolerance || d1 < -tolerance || d2 < -tolerance
	hasPos := d0 > tolerance || d1 > tolerance || d2 > tolerance
	return !(hasNeg && hasPos)
}
