package carve

import (
	"slices"
)

// PlaceState names the placement machine states.
type PlaceState int

const (
	PlaceIdle PlaceState = iota
	PlacePoints
)

func (s PlaceState) String() string {
	switch s {
	case PlaceIdle:
		return "idle"
	case PlacePoints:
		return "placing-points"
	}
	return "unknown"
}

// Placer runs the click-by-click shape creation flow. Starting placement
// arms it for a shape type; each click buffers a point, and once the
// variant's count is reached the shape is built, added to the pattern and
// announced. The machine then goes back to collecting points, so a run of
// shapes can be placed without re-arming. Only Cancel leaves the flow.
type Placer struct {
	pattern *Pattern
	events  *Listeners

	state     PlaceState
	shapeType ShapeType
	required  int
	points    []Point
	cursor    Point
	hasCursor bool
}

// NewPlacer returns an idle placer adding shapes to pattern and reporting
// them to events, which may be nil.
func NewPlacer(pattern *Pattern, events *Listeners) *Placer {
	return &Placer{pattern: pattern, events: events}
}

// State returns the current machine state.
func (pl *Placer) State() PlaceState { return pl.state }

// Placing reports whether a placement flow is active.
func (pl *Placer) Placing() bool { return pl.state == PlacePoints }

// ShapeType returns the armed variant while placing, or the empty string.
func (pl *Placer) ShapeType() ShapeType { return pl.shapeType }

// Points returns a copy of the buffered click points.
func (pl *Placer) Points() []Point { return slices.Clone(pl.points) }

// Start arms placement for the given type, discarding any in-progress
// points. Unknown types leave the machine idle.
func (pl *Placer) Start(typ ShapeType) {
	pl.points = pl.points[:0]
	pl.hasCursor = false
	if n := RequiredPoints(typ); n > 0 {
		pl.shapeType = typ
		pl.required = n
		pl.state = PlacePoints
	} else {
		pl.shapeType = ""
		pl.required = 0
		pl.state = PlaceIdle
	}
}

// Click buffers a placement point. On the final point of the variant the
// shape is created, added to the pattern and announced, and the machine
// keeps collecting for the next shape.
func (pl *Placer) Click(pt Point) {
	if pl.state != PlacePoints {
		return
	}
	pl.points = append(pl.points, pt)
	if len(pl.points) < pl.required {
		return
	}
	s := NewShapeFromPoints(pl.shapeType, pl.points)
	pl.points = pl.points[:0]
	if s == nil {
		return
	}
	pl.pattern.Add(s)
	pl.events.Notify(Event{Kind: ShapeCreated, Shape: s})
}

// Hover records the live cursor position for preview drawing.
func (pl *Placer) Hover(pt Point) {
	if pl.state != PlacePoints {
		return
	}
	pl.cursor = pt
	pl.hasCursor = true
}

// Preview returns the guide segments for the current flow, one from each
// buffered point to the live cursor. Nil when nothing is buffered or the
// cursor is unknown.
func (pl *Placer) Preview() []Line {
	if pl.state != PlacePoints || !pl.hasCursor || len(pl.points) == 0 {
		return nil
	}
	segs := make([]Line, len(pl.points))
	for i, p := range pl.points {
		segs[i] = Ln(p, pl.cursor)
	}
	return segs
}

// DrawPreview strokes the preview segments.
func (pl *Placer) DrawPreview(c Canvas) {
	segs := pl.Preview()
	if len(segs) == 0 {
		return
	}
	c.BeginPath()
	for _, s := range segs {
		c.MoveTo(s.P0)
		c.LineTo(s.P1)
	}
	c.Stroke()
}

// Cancel leaves the placement flow, dropping buffered points.
func (pl *Placer) Cancel() {
	pl.state = PlaceIdle
	pl.shapeType = ""
	pl.required = 0
	pl.points = pl.points[:0]
	pl.hasCursor = false
}
