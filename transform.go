package carve

// Axis selects the direction of a mirror line.
type Axis int

const (
	// AxisHorizontal mirrors across a horizontal line: y coordinates flip.
	AxisHorizontal Axis = iota
	// AxisVertical mirrors across a vertical line: x coordinates flip.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return "unknown"
}

// JiggleParams bounds the random perturbations of [JiggleShapes]. All three
// are maximum magnitudes; each application draws uniformly from ±bound.
type JiggleParams struct {
	// Position is the largest offset per axis, in millimeters.
	Position float64
	// Rotation is the largest rotation, in degrees.
	Rotation float64
	// Curvature is the largest relative change of each curvature measure.
	Curvature float64
}

// DefaultJiggleParams returns perturbation bounds subtle enough to suggest
// hand work without visibly deforming the pattern.
func DefaultJiggleParams() JiggleParams {
	return JiggleParams{
		Position:  0.5,
		Rotation:  2,
		Curvature: 0.05,
	}
}

// shapeCentroid returns the mean of the defining vertices.
func shapeCentroid(s Shape) Point {
	vs := s.Vertices()
	if len(vs) == 0 {
		return Point{}
	}
	var x, y float64
	for _, v := range vs {
		x += v.X
		y += v.Y
	}
	n := float64(len(vs))
	return Pt(x/n, y/n)
}

// rotateShape rotates the defining vertices about center. Curvature
// parameters stay untouched: rigid motions preserve chord lengths, so radii
// and bulge factors carry over as they are.
func rotateShape(s Shape, th float64, center Point) {
	aff := RotateAbout(th, center)
	vs := s.Vertices()
	for i, v := range vs {
		vs[i] = v.Transform(aff)
	}
	s.setVertices(vs)
}

// TranslateShapes moves every shape by delta.
func TranslateShapes(shapes []Shape, delta Vec2) {
	for _, s := range shapes {
		s.Translate(delta)
	}
}

// RotateShapes rotates every shape by th radians about center. Use
// [SelectionCenter] for the conventional group pivot, or [Centroid] to
// rotate a single shape in place.
func RotateShapes(shapes []Shape, th float64, center Point) {
	for _, s := range shapes {
		rotateShape(s, th, center)
	}
}

// Centroid returns the mean of a shape's defining vertices, the default
// pivot when rotating a single shape.
func Centroid(s Shape) Point {
	return shapeCentroid(s)
}

// MirrorShapes reflects every vertex of every shape across the axis line
// through center. Curvature parameters are left alone: a leaf is symmetric
// anyway, and a tri-arc re-derives its inward dip direction from the
// reflected winding, so the dips keep pointing into the shape.
func MirrorShapes(shapes []Shape, axis Axis, center Point) {
	for _, s := range shapes {
		vs := s.Vertices()
		for i, v := range vs {
			switch axis {
			case AxisHorizontal:
				vs[i].Y = center.Y - (v.Y - center.Y)
			case AxisVertical:
				vs[i].X = center.X - (v.X - center.X)
			}
		}
		s.setVertices(vs)
	}
}

// JiggleShapes perturbs every shape within the given bounds. A nil rng uses
// the package source; pass a seeded one for reproducible results.
func JiggleShapes(shapes []Shape, params JiggleParams, rng Rand) {
	rng = orDefaultRand(rng)
	for _, s := range shapes {
		s.Jiggle(params, rng)
	}
}

// ShapesBounds returns the union of all shape bounds. The second return is
// false for an empty slice.
func ShapesBounds(shapes []Shape) (Rect, bool) {
	if len(shapes) == 0 {
		return Rect{}, false
	}
	r := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		r = r.Union(s.Bounds())
	}
	return r, true
}

// SelectionCenter returns the center of the union bounds of the shapes, the
// pivot used for group rotation and mirroring.
func SelectionCenter(shapes []Shape) Point {
	r, ok := ShapesBounds(shapes)
	if !ok {
		return Point{}
	}
	return r.Center()
}
