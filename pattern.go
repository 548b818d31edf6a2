package carve

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Pattern is the flat, ordered collection of shapes in a design. Later
// shapes draw on top of earlier ones and win hit tests.
//
// A pattern is not safe for concurrent use; drive it from one goroutine.
type Pattern struct {
	shapes []Shape
	events *Listeners
}

// NewPattern returns an empty pattern reporting selection changes to events,
// which may be nil.
func NewPattern(events *Listeners) *Pattern {
	return &Pattern{events: events}
}

// Add appends a shape on top of the stack.
func (p *Pattern) Add(s Shape) {
	p.shapes = append(p.shapes, s)
}

// Remove deletes the shape with the given id, reporting whether it was
// present.
func (p *Pattern) Remove(id string) bool {
	for i, s := range p.shapes {
		if s.ID() == id {
			p.shapes = slices.Delete(p.shapes, i, i+1)
			return true
		}
	}
	return false
}

// RemoveSelected deletes every selected shape and returns how many went.
func (p *Pattern) RemoveSelected() int {
	n := len(p.shapes)
	p.shapes = slices.DeleteFunc(p.shapes, func(s Shape) bool {
		return s.Selected()
	})
	removed := n - len(p.shapes)
	if removed > 0 {
		p.notifySelection()
	}
	return removed
}

// Clear drops all shapes.
func (p *Pattern) Clear() {
	p.shapes = nil
}

// Shapes returns the shapes bottom-up. The slice is the pattern's own;
// treat it as read-only.
func (p *Pattern) Shapes() []Shape {
	return p.shapes
}

func (p *Pattern) Len() int {
	return len(p.shapes)
}

// ByID returns the shape with the given id, or nil.
func (p *Pattern) ByID(id string) Shape {
	for _, s := range p.shapes {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// HitTest finds the topmost shape hit by the world point at the given scale.
// Misses return nil and NoHit.
func (p *Pattern) HitTest(pt Point, scale float64) (Shape, Hit) {
	for i := len(p.shapes) - 1; i >= 0; i-- {
		if h := p.shapes[i].HitTest(pt, scale); h.Region != HitNone {
			return p.shapes[i], h
		}
	}
	return nil, NoHit
}

// Selected returns the selected shapes bottom-up.
func (p *Pattern) Selected() []Shape {
	var sel []Shape
	for _, s := range p.shapes {
		if s.Selected() {
			sel = append(sel, s)
		}
	}
	return sel
}

// Select sets the selection state of one shape.
func (p *Pattern) Select(s Shape, selected bool) {
	if s == nil || s.Selected() == selected {
		return
	}
	s.SetSelected(selected)
	p.notifySelection()
}

// SelectOnly makes s the only selected shape. Passing nil deselects all.
func (p *Pattern) SelectOnly(s Shape) {
	changed := false
	for _, o := range p.shapes {
		want := o == s
		if o.Selected() != want {
			o.SetSelected(want)
			changed = true
		}
	}
	if changed {
		p.notifySelection()
	}
}

// ToggleSelected flips the selection state of one shape.
func (p *Pattern) ToggleSelected(s Shape) {
	if s == nil {
		return
	}
	s.SetSelected(!s.Selected())
	p.notifySelection()
}

// ClearSelection deselects everything.
func (p *Pattern) ClearSelection() {
	p.SelectOnly(nil)
}

func (p *Pattern) notifySelection() {
	p.events.Notify(Event{Kind: SelectionChanged, Shapes: p.Selected()})
}

// Bounds returns the union of all shape bounds; false when empty.
func (p *Pattern) Bounds() (Rect, bool) {
	return ShapesBounds(p.shapes)
}

// Draw renders every shape bottom-up.
func (p *Pattern) Draw(c Canvas) {
	for _, s := range p.shapes {
		s.Draw(c)
	}
}

type patternJSON struct {
	Shapes []json.RawMessage `json:"shapes"`
}

func (p *Pattern) MarshalJSON() ([]byte, error) {
	msgs := make([]json.RawMessage, len(p.shapes))
	for i, s := range p.shapes {
		b, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		msgs[i] = b
	}
	return json.Marshal(patternJSON{Shapes: msgs})
}

// UnmarshalJSON replaces the pattern contents with the document's shapes. A
// malformed entry fails the whole load and leaves the pattern unchanged.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var aux patternJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshal pattern: %w", err)
	}
	shapes := make([]Shape, 0, len(aux.Shapes))
	for i, raw := range aux.Shapes {
		s, err := ParseShape(raw)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	p.shapes = shapes
	return nil
}
