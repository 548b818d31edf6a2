package carve

// Handle sizes in screen pixels. Hit testing happens in world space, so these
// are divided by the current scale before use. The enlarged radius applies
// only to the handle that is already active, making it harder to slip off
// mid-drag.
const (
	HandleHitRadius       = 18.0
	ActiveHandleHitRadius = 24.0

	// RotationHandleOffset is how far above the top of the bounds the
	// rotation handle floats, in screen pixels.
	RotationHandleOffset = 30.0
)

// HitRegion classifies which part of a shape a point landed on.
type HitRegion int

const (
	HitNone HitRegion = iota
	HitVertex
	HitArc
	HitBody
	HitRotationHandle
)

func (r HitRegion) String() string {
	switch r {
	case HitNone:
		return "none"
	case HitVertex:
		return "vertex"
	case HitArc:
		return "arc"
	case HitBody:
		return "body"
	case HitRotationHandle:
		return "rotation-handle"
	}
	return "unknown"
}

// Hit is the result of a hit test: the region and, for vertex and arc hits,
// the index of the handle. Regions without an index carry -1.
type Hit struct {
	Region HitRegion
	Index  int
}

// NoHit is the miss result.
var NoHit = Hit{Region: HitNone, Index: -1}

// RotationHandlePos returns the world position of the rotation handle for a
// shape with the given bounds at the given scale: centered above the bounds
// at a fixed screen distance.
func RotationHandlePos(bounds Rect, scale float64) Point {
	return Point{
		X: bounds.Center().X,
		Y: bounds.MinY() - RotationHandleOffset/scale,
	}
}

// hitTestShape classifies pt against a single shape. The order of precedence
// is vertex and arc handles first (nearer one wins, vertex on exact ties),
// then the rotation handle of selected shapes, then body containment.
//
// Degenerate shapes are unhittable.
func hitTestShape(s Shape, pt Point, scale float64) Hit {
	if scale <= 0 {
		scale = 1
	}
	if s.degenerate() {
		return NoHit
	}

	active := s.ActiveHit()
	handleRadius := func(h Hit) float64 {
		if h == active {
			return ActiveHandleHitRadius / scale
		}
		return HandleHitRadius / scale
	}

	bestVertex := NoHit
	bestVertexDist := 0.0
	for i, v := range s.Vertices() {
		h := Hit{Region: HitVertex, Index: i}
		d := pt.Distance(v)
		if d <= handleRadius(h) && (bestVertex == NoHit || d < bestVertexDist) {
			bestVertex = h
			bestVertexDist = d
		}
	}

	// Arc markers use a square target, but tie-breaking against vertex
	// hits compares center distances.
	bestArc := NoHit
	bestArcDist := 0.0
	for i, m := range s.ArcMidpoints() {
		h := Hit{Region: HitArc, Index: i}
		half := handleRadius(h)
		dx := pt.X - m.X
		dy := pt.Y - m.Y
		if dx < -half || dx > half || dy < -half || dy > half {
			continue
		}
		d := pt.Distance(m)
		if bestArc == NoHit || d < bestArcDist {
			bestArc = h
			bestArcDist = d
		}
	}

	switch {
	case bestVertex != NoHit && bestArc != NoHit:
		if bestVertexDist <= bestArcDist {
			return bestVertex
		}
		return bestArc
	case bestVertex != NoHit:
		return bestVertex
	case bestArc != NoHit:
		return bestArc
	}

	if s.Selected() {
		h := Hit{Region: HitRotationHandle, Index: -1}
		if pt.Distance(RotationHandlePos(s.Bounds(), scale)) <= handleRadius(h) {
			return h
		}
	}

	if s.Contains(pt) {
		return Hit{Region: HitBody, Index: -1}
	}
	return NoHit
}
