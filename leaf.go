package carve

import (
	"encoding/json"
	"fmt"
	"math"
)

// defaultLeafSagittaRatio is the arc height over chord length ratio used when
// a leaf is created from two placement points, and as the fallback when a
// vertex drag starts from degenerate geometry.
const defaultLeafSagittaRatio = 0.25

// Leaf is the lens-shaped intersection of two circles of equal radius: two
// convex arcs spanning the same pair of vertices (the foci), bulging to
// opposite sides of the chord.
//
// The invariant chord ≤ 2*radius must hold for the circles to intersect.
// A leaf violating it is degenerate: it draws nothing and cannot be hit.
type Leaf struct {
	shapeCore
	foci   [2]Point
	radius float64
}

var _ Shape = (*Leaf)(nil)

// NewLeaf returns a leaf with the given foci and circle radius.
func NewLeaf(f0, f1 Point, radius float64) *Leaf {
	return &Leaf{
		shapeCore: newShapeCore(),
		foci:      [2]Point{f0, f1},
		radius:    radius,
	}
}

// NewLeafFromChord returns a leaf spanning the two points with the default
// proportions, arc height a quarter of the chord length.
func NewLeafFromChord(f0, f1 Point) *Leaf {
	d := f1.Sub(f0).Hypot()
	radius := 0.0
	if d >= minChordLength {
		radius = RadiusFromSagitta(d, defaultLeafSagittaRatio*d)
	}
	return NewLeaf(f0, f1, radius)
}

// leafGeom is the derived frame of a non-degenerate leaf. Markers and circle
// centers sit on the chord perpendicular through mid: the circle centers at
// ±offset, the marker points likewise, and the arc peaks at ±sagitta.
type leafGeom struct {
	chord   float64
	dir     Vec2
	norm    Vec2
	mid     Point
	offset  float64
	sagitta float64
}

func (l *Leaf) geom() (leafGeom, bool) {
	cv := l.foci[1].Sub(l.foci[0])
	d := cv.Hypot()
	if d < minChordLength || l.radius <= 0 || d > 2*l.radius {
		return leafGeom{}, false
	}
	dir := cv.Div(d)
	a := ChordCenterDistance(d, l.radius)
	return leafGeom{
		chord:   d,
		dir:     dir,
		norm:    dir.Perp(),
		mid:     l.foci[0].Midpoint(l.foci[1]),
		offset:  a,
		sagitta: l.radius - a,
	}, true
}

func (l *Leaf) degenerate() bool {
	_, ok := l.geom()
	return !ok
}

// circles returns the two generating circles. The first center lies on the
// negative normal side and generates the arc bulging positive, the second the
// mirror of that.
func (l *Leaf) circles() ([2]Circle, bool) {
	g, ok := l.geom()
	if !ok {
		return [2]Circle{}, false
	}
	off := g.norm.Mul(g.offset)
	return [2]Circle{
		{Center: g.mid.Translate(off.Negate()), Radius: l.radius},
		{Center: g.mid.Translate(off), Radius: l.radius},
	}, true
}

// arcs returns the outline as two arcs: focus 0 to focus 1 bulging to the
// positive normal side, then back bulging to the negative side.
func (l *Leaf) arcs() ([2]Arc, bool) {
	g, ok := l.geom()
	if !ok {
		return [2]Arc{}, false
	}
	a0, ok0 := NewArcFromChord(l.foci[0], l.foci[1], g.sagitta)
	a1, ok1 := NewArcFromChord(l.foci[1], l.foci[0], g.sagitta)
	if !ok0 || !ok1 {
		return [2]Arc{}, false
	}
	return [2]Arc{a0, a1}, true
}

func (l *Leaf) Type() ShapeType { return ShapeLeaf }

// Radius returns the shared radius of the two generating circles.
func (l *Leaf) Radius() float64 { return l.radius }

func (l *Leaf) Vertices() []Point {
	return []Point{l.foci[0], l.foci[1]}
}

// MoveVertex drags one focus. The leaf keeps its proportions: the arc height
// to chord length ratio is preserved and the radius re-derived for the new
// chord. Starting from degenerate geometry the default ratio is used.
func (l *Leaf) MoveVertex(i int, pt Point) {
	if i < 0 || i > 1 {
		return
	}
	ratio := defaultLeafSagittaRatio
	if g, ok := l.geom(); ok && g.sagitta > 0 {
		ratio = g.sagitta / g.chord
	}
	l.foci[i] = pt
	d := l.foci[1].Sub(l.foci[0]).Hypot()
	if d < minChordLength {
		return
	}
	l.radius = RadiusFromSagitta(d, ratio*d)
}

// ArcOffsets returns the signed arc heights of the two arcs over the chord,
// symmetric about it.
func (l *Leaf) ArcOffsets() []float64 {
	g, ok := l.geom()
	if !ok {
		return []float64{0, 0}
	}
	return []float64{g.sagitta, -g.sagitta}
}

// ArcMidpoints returns the marker points of the two arcs. They sit on the
// chord perpendicular at the distance of the circle centers, mirroring the
// center of the opposite generating circle. Nil when degenerate.
func (l *Leaf) ArcMidpoints() []Point {
	g, ok := l.geom()
	if !ok {
		return nil
	}
	off := g.norm.Mul(g.offset)
	return []Point{
		g.mid.Translate(off),
		g.mid.Translate(off.Negate()),
	}
}

// MoveArc sets the arc height of the outline. Which of the two arcs is named
// does not matter: the lens stays symmetric, so a single height governs both.
// The height is clamped to a small minimum fraction of the half chord and its
// sign is ignored.
func (l *Leaf) MoveArc(i int, sagitta float64) {
	if i < 0 || i > 1 {
		return
	}
	d := l.foci[1].Sub(l.foci[0]).Hypot()
	if d < minChordLength {
		return
	}
	h := math.Abs(sagitta)
	if minH := minSagittaRatio * d / 2; h < minH {
		h = minH
	}
	l.radius = RadiusFromSagitta(d, h)
}

// SetArcMidpoint drags the marker of arc i to track pt, adjusting the arc
// height to the projection of pt onto the chord perpendicular.
func (l *Leaf) SetArcMidpoint(i int, pt Point) {
	g, ok := l.geom()
	if !ok {
		return
	}
	l.MoveArc(i, pt.Sub(g.mid).Dot(g.norm))
}

// Contains reports whether pt lies in the lens, the intersection of both
// generating circles, with a small tolerance at the boundary.
func (l *Leaf) Contains(pt Point) bool {
	cs, ok := l.circles()
	if !ok {
		return false
	}
	return cs[0].ContainsTolerance(pt, containsTolerance) &&
		cs[1].ContainsTolerance(pt, containsTolerance)
}

// Bounds returns the box spanning the foci and the arc markers.
func (l *Leaf) Bounds() Rect {
	r := NewRectFromPoints(l.foci[0], l.foci[1])
	for _, m := range l.ArcMidpoints() {
		r = r.UnionPoint(m)
	}
	return r
}

func (l *Leaf) HitTest(pt Point, scale float64) Hit {
	return hitTestShape(l, pt, scale)
}

func (l *Leaf) Translate(v Vec2) {
	l.foci[0] = l.foci[0].Translate(v)
	l.foci[1] = l.foci[1].Translate(v)
}

func (l *Leaf) setVertices(pts []Point) {
	if len(pts) < 2 {
		return
	}
	l.foci[0], l.foci[1] = pts[0], pts[1]
}

// Jiggle perturbs position, orientation and curvature by small random
// amounts, for a hand-carved look. The radius is kept large enough for the
// foci distance, so a valid leaf never turns degenerate.
func (l *Leaf) Jiggle(params JiggleParams, rng Rand) {
	rng = orDefaultRand(rng)
	l.Translate(Vec(Jitter(rng, params.Position), Jitter(rng, params.Position)))
	rotateShape(l, Jitter(rng, params.Rotation*math.Pi/180), shapeCentroid(l))

	d := l.foci[1].Sub(l.foci[0]).Hypot()
	if d < minChordLength || l.radius <= 0 {
		return
	}
	r := l.radius + Jitter(rng, params.Curvature)*l.radius
	if r < d/2 {
		r = d / 2
	}
	l.radius = r
}

func (l *Leaf) Clone() Shape {
	c := *l
	return &c
}

func (l *Leaf) Draw(c Canvas) {
	arcs, ok := l.arcs()
	if !ok {
		return
	}
	strokeArcs(c, arcs[:])
}

type leafJSON struct {
	ID       string    `json:"id"`
	Type     ShapeType `json:"type"`
	Selected bool      `json:"selected"`
	Vertices []Point   `json:"vertices"`
	Radius   float64   `json:"radius"`
}

func (l *Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{
		ID:       l.id,
		Type:     ShapeLeaf,
		Selected: l.selected,
		Vertices: l.Vertices(),
		Radius:   l.radius,
	})
}

// UnmarshalJSON restores the leaf from either the tagged vertices form or the
// older focus1/focus2 form. Absent fields keep their current values; the
// active handle is reset.
func (l *Leaf) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID       *string  `json:"id"`
		Selected *bool    `json:"selected"`
		Vertices []Point  `json:"vertices"`
		Radius   *float64 `json:"radius"`
		Focus1   *Point   `json:"focus1"`
		Focus2   *Point   `json:"focus2"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshal leaf: %w", err)
	}
	if aux.ID != nil && *aux.ID != "" {
		l.id = *aux.ID
	}
	if aux.Selected != nil {
		l.selected = *aux.Selected
	}
	if len(aux.Vertices) >= 2 {
		l.foci[0], l.foci[1] = aux.Vertices[0], aux.Vertices[1]
	} else {
		if aux.Focus1 != nil {
			l.foci[0] = *aux.Focus1
		}
		if aux.Focus2 != nil {
			l.foci[1] = *aux.Focus2
		}
	}
	if aux.Radius != nil {
		l.radius = *aux.Radius
	}
	l.active = NoHit
	return nil
}
