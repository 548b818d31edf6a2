package carve

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ShapeType tags the concrete shape variant in serialized documents.
type ShapeType string

const (
	ShapeLeaf   ShapeType = "LEAF"
	ShapeTriArc ShapeType = "TRI_ARC"
)

// Valid reports whether t names a known shape variant.
func (t ShapeType) Valid() bool {
	switch t {
	case ShapeLeaf, ShapeTriArc:
		return true
	}
	return false
}

// RequiredPoints returns how many placement clicks the variant needs before a
// shape can be built, or 0 for unknown types.
func RequiredPoints(t ShapeType) int {
	switch t {
	case ShapeLeaf:
		return 2
	case ShapeTriArc:
		return 3
	}
	return 0
}

// ErrUnknownShapeType is returned by [ParseShape] for type tags it does not
// recognize.
var ErrUnknownShapeType = errors.New("unknown shape type")

// Shape is a closed, arc-bounded figure on the design plane.
//
// The geometry half exposes vertices, the per-edge arc handles and
// containment. The interaction half tracks selection, the hot handle and
// hit testing against a world point. All coordinates are world millimeters;
// scale converts screen-space handle sizes where needed.
//
// Mutating operations that would produce degenerate geometry leave the shape
// unchanged; they never panic and never return errors.
type Shape interface {
	ID() string
	Type() ShapeType

	Selected() bool
	SetSelected(bool)
	ActiveHit() Hit
	SetActiveHit(Hit)

	// Vertices returns a copy of the defining vertices: the two foci of a
	// Leaf, the three corners of a TriArc.
	Vertices() []Point
	// MoveVertex repositions one vertex. Out-of-range indices are ignored.
	MoveVertex(i int, pt Point)

	// ArcOffsets returns one signed curvature measure per edge.
	ArcOffsets() []float64
	// ArcMidpoints returns the draggable marker point of each edge arc.
	ArcMidpoints() []Point
	// MoveArc adjusts the curvature of edge i to the given arc height.
	MoveArc(i int, sagitta float64)
	// SetArcMidpoint adjusts the curvature of edge i so its marker tracks pt.
	SetArcMidpoint(i int, pt Point)

	Contains(pt Point) bool
	Bounds() Rect
	HitTest(pt Point, scale float64) Hit

	Translate(v Vec2)
	Jiggle(params JiggleParams, rng Rand)
	Clone() Shape

	Draw(c Canvas)

	json.Marshaler
	json.Unmarshaler

	// setVertices overwrites all vertices without re-deriving curvature.
	// Used by rigid transforms, which preserve chord lengths.
	setVertices(pts []Point)
	// degenerate reports whether the current parameters describe no valid
	// geometry, such as Leaf foci farther apart than the diameter.
	degenerate() bool
}

// shapeCore carries the identity and interaction state shared by all shape
// variants.
type shapeCore struct {
	id       string
	selected bool
	active   Hit
}

func newShapeCore() shapeCore {
	return shapeCore{
		id:     uuid.NewString(),
		active: NoHit,
	}
}

func (c *shapeCore) ID() string { return c.id }

func (c *shapeCore) Selected() bool { return c.selected }

func (c *shapeCore) SetSelected(s bool) { c.selected = s }

func (c *shapeCore) ActiveHit() Hit { return c.active }

func (c *shapeCore) SetActiveHit(h Hit) { c.active = h }

// ParseShape restores a shape from its JSON form. Both the current tagged
// form and the older named-field form (focus1/focus2, v1/v2/v3/bulgeFactors)
// are accepted; for the latter the variant is inferred from the fields
// present. Unknown or undeterminable types are a hard error.
func ParseShape(data []byte) (Shape, error) {
	var probe struct {
		Type         *ShapeType `json:"type"`
		Focus1       *Point     `json:"focus1"`
		V1           *Point     `json:"v1"`
		BulgeFactors []float64  `json:"bulgeFactors"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse shape: %w", err)
	}

	typ := ShapeType("")
	switch {
	case probe.Type != nil:
		typ = *probe.Type
	case probe.Focus1 != nil:
		typ = ShapeLeaf
	case probe.V1 != nil || len(probe.BulgeFactors) > 0:
		typ = ShapeTriArc
	}

	var s Shape
	switch typ {
	case ShapeLeaf:
		s = &Leaf{shapeCore: newShapeCore()}
	case ShapeTriArc:
		s = &TriArc{shapeCore: newShapeCore()}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeType, string(typ))
	}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

// NewShapeFromPoints builds a shape of the given type from placement clicks,
// filling in default curvature. It returns nil for unknown types and for too
// few points; extra points are ignored.
func NewShapeFromPoints(typ ShapeType, pts []Point) Shape {
	switch typ {
	case ShapeLeaf:
		if len(pts) < 2 {
			return nil
		}
		return NewLeafFromChord(pts[0], pts[1])
	case ShapeTriArc:
		if len(pts) < 3 {
			return nil
		}
		return NewTriArc(pts[0], pts[1], pts[2], DefaultBulge, DefaultBulge, DefaultBulge)
	}
	return nil
}

// NewShapeFromPlacement builds a shape of the given type from a two-point
// gesture. Types that need more than two points yield nil, as do unknown
// types.
func NewShapeFromPlacement(typ ShapeType, p1, p2 Point) Shape {
	return NewShapeFromPoints(typ, []Point{p1, p2})
}
