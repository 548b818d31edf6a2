package carve

import (
	"math"
	"slices"
)

// Mode names the manipulation modes of [Transformer].
type Mode int

const (
	ModeIdle Mode = iota
	ModeMove
	ModeRotate
	ModeMirror
	ModeJiggle
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMove:
		return "move"
	case ModeRotate:
		return "rotate"
	case ModeMirror:
		return "mirror"
	case ModeJiggle:
		return "jiggle"
	}
	return "unknown"
}

// Transformer tracks which manipulation mode is active and applies gestures
// to the current selection. Move and rotate are drag gestures bracketed by
// Begin and End; mirror and jiggle are immediate and apply in a single call.
type Transformer struct {
	events *Listeners

	mode      Mode
	dragging  bool
	shapes    []Shape
	pivot     Point
	lastAngle float64

	jiggle JiggleParams
	rng    Rand
}

// NewTransformer returns an idle transformer reporting changes to events,
// which may be nil. Jiggling uses [DefaultJiggleParams] and the package
// random source until overridden.
func NewTransformer(events *Listeners) *Transformer {
	return &Transformer{
		events: events,
		jiggle: DefaultJiggleParams(),
	}
}

// SetJiggleParams replaces the jiggle perturbation bounds.
func (t *Transformer) SetJiggleParams(p JiggleParams) { t.jiggle = p }

// SetRand sets the random source used for jiggling; nil restores the
// package default.
func (t *Transformer) SetRand(rng Rand) { t.rng = rng }

// Mode returns the active mode.
func (t *Transformer) Mode() Mode { return t.mode }

// Toggle switches to mode m, or back to idle when m is already active. Any
// drag in flight is abandoned. Returns the resulting mode.
func (t *Transformer) Toggle(m Mode) Mode {
	t.abortDrag()
	if t.mode == m {
		t.mode = ModeIdle
	} else {
		t.mode = m
	}
	return t.mode
}

func (t *Transformer) abortDrag() {
	t.dragging = false
	t.shapes = nil
}

// Transforming reports whether a drag gesture is in flight.
func (t *Transformer) Transforming() bool { return t.dragging }

// Begin starts a drag gesture over the given shapes. In rotate mode the
// gesture pivots about the selection center unless pivot overrides it, and
// start anchors the initial angle. Outside the drag modes, or with nothing
// to drag, Begin does nothing.
func (t *Transformer) Begin(shapes []Shape, start Point, pivot *Point) {
	if t.mode != ModeMove && t.mode != ModeRotate {
		return
	}
	if len(shapes) == 0 {
		return
	}
	t.shapes = slices.Clone(shapes)
	t.dragging = true
	if t.mode == ModeRotate {
		if pivot != nil {
			t.pivot = *pivot
		} else {
			t.pivot = SelectionCenter(shapes)
		}
		t.lastAngle = start.Sub(t.pivot).Angle()
	}
}

// Update applies drag progress: the world delta since the last update in
// move mode, the current cursor position in rotate mode. Calls while no
// gesture is in flight are ignored.
func (t *Transformer) Update(delta Vec2, current Point) {
	if !t.dragging {
		return
	}
	switch t.mode {
	case ModeMove:
		TranslateShapes(t.shapes, delta)
	case ModeRotate:
		a := current.Sub(t.pivot).Angle()
		RotateShapes(t.shapes, wrapAngle(a-t.lastAngle), t.pivot)
		t.lastAngle = a
	}
}

// End finishes the drag gesture and announces the modified shapes. Ignored
// while no gesture is in flight.
func (t *Transformer) End() {
	if !t.dragging {
		return
	}
	shapes := t.shapes
	t.abortDrag()
	t.events.Notify(Event{Kind: ShapesModified, Shapes: shapes})
}

// Mirror reflects the shapes across the axis line through their collective
// center and announces the change. Immediate, no drag phase.
func (t *Transformer) Mirror(shapes []Shape, axis Axis) {
	if len(shapes) == 0 {
		return
	}
	MirrorShapes(shapes, axis, SelectionCenter(shapes))
	t.events.Notify(Event{Kind: ShapesModified, Shapes: shapes})
}

// Jiggle perturbs the shapes with the configured parameters and announces
// the change. Immediate, no drag phase.
func (t *Transformer) Jiggle(shapes []Shape) {
	if len(shapes) == 0 {
		return
	}
	JiggleShapes(shapes, t.jiggle, t.rng)
	t.events.Notify(Event{Kind: ShapesModified, Shapes: shapes})
}

// wrapAngle maps an angle difference into (-π, π], correcting the jump when
// a rotate drag crosses the atan2 seam.
func wrapAngle(th float64) float64 {
	for th > math.Pi {
		th -= 2 * math.Pi
	}
	for th <= -math.Pi {
		th += 2 * math.Pi
	}
	return th
}
