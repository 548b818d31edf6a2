package carve

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	// DefaultBulge is the edge curvature given to newly placed tri-arcs.
	DefaultBulge = -0.2

	// Edge bulge factors are negative (concave) and bounded away from both
	// the flat and the semicircular extreme.
	bulgeMin = -0.99
	bulgeMax = -0.01
)

// clampBulge forces a bulge factor into the valid concave range. Values on
// the convex side collapse to the shallowest dip.
func clampBulge(b float64) float64 {
	return math.Min(math.Max(b, bulgeMin), bulgeMax)
}

// TriArc is a triangle whose three edges dip inward: each edge is a circular
// arc bulging towards the centroid, with its depth controlled by a bulge
// factor (arc height as a fraction of the half chord).
//
// Edge i connects vertex i to vertex (i+1)%3.
type TriArc struct {
	shapeCore
	verts  [3]Point
	bulges [3]float64
}

var _ Shape = (*TriArc)(nil)

// NewTriArc returns a tri-arc with the given corners and edge bulge factors.
// The bulge factors are clamped into the valid range.
func NewTriArc(v0, v1, v2 Point, b0, b1, b2 float64) *TriArc {
	return &TriArc{
		shapeCore: newShapeCore(),
		verts:     [3]Point{v0, v1, v2},
		bulges:    [3]float64{clampBulge(b0), clampBulge(b1), clampBulge(b2)},
	}
}

func (t *TriArc) centroid() Point {
	return Point{
		X: (t.verts[0].X + t.verts[1].X + t.verts[2].X) / 3,
		Y: (t.verts[0].Y + t.verts[1].Y + t.verts[2].Y) / 3,
	}
}

// edgeFrame is the derived frame of one edge: its chord, the unit normal
// pointing towards the centroid, and the dip depth along that normal.
type edgeFrame struct {
	line    Line
	chord   float64
	mid     Point
	inward  Vec2
	sagitta float64
	flipped bool
}

func (t *TriArc) edge(i int) (edgeFrame, bool) {
	p0 := t.verts[i]
	p1 := t.verts[(i+1)%3]
	cv := p1.Sub(p0)
	d := cv.Hypot()
	if d < minChordLength {
		return edgeFrame{}, false
	}
	n := cv.Div(d).Perp()
	mid := p0.Midpoint(p1)
	flipped := false
	if n.Dot(t.centroid().Sub(mid)) < 0 {
		n = n.Negate()
		flipped = true
	}
	return edgeFrame{
		line:    Line{P0: p0, P1: p1},
		chord:   d,
		mid:     mid,
		inward:  n,
		sagitta: SagittaFromBulge(d, t.bulges[i]),
		flipped: flipped,
	}, true
}

func (t *TriArc) edgeArc(i int) (Arc, bool) {
	e, ok := t.edge(i)
	if !ok {
		return Arc{}, false
	}
	sag := e.sagitta
	if e.flipped {
		sag = -sag
	}
	return NewArcFromChord(e.line.P0, e.line.P1, sag)
}

func (t *TriArc) degenerate() bool {
	for i := range t.verts {
		if _, ok := t.edge(i); !ok {
			return true
		}
	}
	return false
}

func (t *TriArc) Type() ShapeType { return ShapeTriArc }

func (t *TriArc) Vertices() []Point {
	return []Point{t.verts[0], t.verts[1], t.verts[2]}
}

// MoveVertex repositions one corner. The bulge factors are per-edge fractions
// of the chord, so the dips rescale with the edges on their own.
func (t *TriArc) MoveVertex(i int, pt Point) {
	if i < 0 || i > 2 {
		return
	}
	t.verts[i] = pt
}

// ArcOffsets returns the three edge bulge factors.
func (t *TriArc) ArcOffsets() []float64 {
	return []float64{t.bulges[0], t.bulges[1], t.bulges[2]}
}

// ArcMidpoints returns the dip points of the three edge arcs, each at its
// edge midpoint displaced inward by the dip depth. Nil when degenerate.
func (t *TriArc) ArcMidpoints() []Point {
	if t.degenerate() {
		return nil
	}
	pts := make([]Point, 3)
	for i := range pts {
		e, _ := t.edge(i)
		pts[i] = e.mid.Translate(e.inward.Mul(e.sagitta))
	}
	return pts
}

// MoveArc sets the dip depth of edge i, measured along the inward normal.
// The implied bulge factor is clamped, so dragging past the limits or to the
// outside of the edge leaves a valid dip.
func (t *TriArc) MoveArc(i int, sagitta float64) {
	if i < 0 || i > 2 {
		return
	}
	e, ok := t.edge(i)
	if !ok {
		return
	}
	t.bulges[i] = clampBulge(-BulgeFromSagitta(e.chord, sagitta))
}

// SetArcMidpoint adjusts the dip of edge i so its marker tracks pt.
func (t *TriArc) SetArcMidpoint(i int, pt Point) {
	if i < 0 || i > 2 {
		return
	}
	e, ok := t.edge(i)
	if !ok {
		return
	}
	t.MoveArc(i, pt.Sub(e.mid).Dot(e.inward))
}

// Contains reports whether pt lies in the triangle spanned by the corners.
// The straight-edged triangle is used, not the dipped outline: the dips are
// shallow and the difference is not worth the cost on the hit path.
func (t *TriArc) Contains(pt Point) bool {
	return TriangleContains(t.verts[0], t.verts[1], t.verts[2], pt, containsTolerance)
}

// Bounds returns the box spanning the corners and the dip points.
func (t *TriArc) Bounds() Rect {
	r := NewRectFromPoints(t.verts[0], t.verts[1]).UnionPoint(t.verts[2])
	for _, m := range t.ArcMidpoints() {
		r = r.UnionPoint(m)
	}
	return r
}

func (t *TriArc) HitTest(pt Point, scale float64) Hit {
	return hitTestShape(t, pt, scale)
}

func (t *TriArc) Translate(v Vec2) {
	for i := range t.verts {
		t.verts[i] = t.verts[i].Translate(v)
	}
}

func (t *TriArc) setVertices(pts []Point) {
	if len(pts) < 3 {
		return
	}
	t.verts[0], t.verts[1], t.verts[2] = pts[0], pts[1], pts[2]
}

// Jiggle perturbs position, orientation and the edge dips by small random
// amounts. The dip change is a fraction of the whole valid bulge range, so
// shallow and deep dips wobble by the same absolute amount, and clamping
// keeps every dip valid.
func (t *TriArc) Jiggle(params JiggleParams, rng Rand) {
	rng = orDefaultRand(rng)
	t.Translate(Vec(Jitter(rng, params.Position), Jitter(rng, params.Position)))
	rotateShape(t, Jitter(rng, params.Rotation*math.Pi/180), shapeCentroid(t))
	for i := range t.bulges {
		t.bulges[i] = clampBulge(t.bulges[i] + Jitter(rng, params.Curvature)*(bulgeMax-bulgeMin))
	}
}

func (t *TriArc) Clone() Shape {
	c := *t
	return &c
}

func (t *TriArc) Draw(c Canvas) {
	if t.degenerate() {
		return
	}
	arcs := make([]Arc, 0, 3)
	for i := range t.verts {
		a, ok := t.edgeArc(i)
		if !ok {
			return
		}
		arcs = append(arcs, a)
	}
	strokeArcs(c, arcs)
}

type triArcJSON struct {
	ID         string    `json:"id"`
	Type       ShapeType `json:"type"`
	Selected   bool      `json:"selected"`
	Vertices   []Point   `json:"vertices"`
	Curvatures []float64 `json:"curvatures"`
}

func (t *TriArc) MarshalJSON() ([]byte, error) {
	return json.Marshal(triArcJSON{
		ID:         t.id,
		Type:       ShapeTriArc,
		Selected:   t.selected,
		Vertices:   t.Vertices(),
		Curvatures: t.ArcOffsets(),
	})
}

// UnmarshalJSON restores the tri-arc from either the tagged vertices form or
// the older v1/v2/v3 and bulgeFactors form. Absent fields keep their current
// values; curvatures are clamped on load and the active handle is reset.
func (t *TriArc) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID           *string   `json:"id"`
		Selected     *bool     `json:"selected"`
		Vertices     []Point   `json:"vertices"`
		Curvatures   []float64 `json:"curvatures"`
		V1           *Point    `json:"v1"`
		V2           *Point    `json:"v2"`
		V3           *Point    `json:"v3"`
		BulgeFactors []float64 `json:"bulgeFactors"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshal tri-arc: %w", err)
	}
	if aux.ID != nil && *aux.ID != "" {
		t.id = *aux.ID
	}
	if aux.Selected != nil {
		t.selected = *aux.Selected
	}
	if len(aux.Vertices) >= 3 {
		t.verts[0], t.verts[1], t.verts[2] = aux.Vertices[0], aux.Vertices[1], aux.Vertices[2]
	} else {
		if aux.V1 != nil {
			t.verts[0] = *aux.V1
		}
		if aux.V2 != nil {
			t.verts[1] = *aux.V2
		}
		if aux.V3 != nil {
			t.verts[2] = *aux.V3
		}
	}
	curvatures := aux.Curvatures
	if curvatures == nil {
		curvatures = aux.BulgeFactors
	}
	for i := 0; i < len(curvatures) && i < 3; i++ {
		t.bulges[i] = clampBulge(curvatures[i])
	}
	t.active = NoHit
	return nil
}
