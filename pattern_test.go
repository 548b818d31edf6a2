package carve

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPatternAddRemove(t *testing.T) {
	p := NewPattern(nil)
	a := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	b := NewTriArc(Pt(0, 0), Pt(10, 0), Pt(5, 9), -0.2, -0.2, -0.2)
	p.Add(a)
	p.Add(b)

	if p.Len() != 2 {
		t.Fatalf("got %d shapes, want 2", p.Len())
	}
	if got := p.ByID(a.ID()); got != Shape(a) {
		t.Errorf("ByID returned %v", got)
	}
	if p.ByID("nope") != nil {
		t.Error("expected nil for an unknown id")
	}

	if !p.Remove(a.ID()) {
		t.Error("expected Remove to find the shape")
	}
	if p.Remove(a.ID()) {
		t.Error("expected Remove to miss the second time")
	}
	if p.Len() != 1 {
		t.Errorf("got %d shapes, want 1", p.Len())
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("got %d shapes after Clear, want 0", p.Len())
	}
}

func TestPatternSelection(t *testing.T) {
	var ls Listeners
	changes := 0
	var last []Shape
	ls.Add(SelectionChanged, func(ev Event) {
		changes++
		last = ev.Shapes
	})

	p := NewPattern(&ls)
	a := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	b := NewLeaf(Pt(20, 0), Pt(30, 0), 6)
	p.Add(a)
	p.Add(b)

	p.SelectOnly(a)
	if changes != 1 {
		t.Fatalf("got %d change events, want 1", changes)
	}
	if len(last) != 1 || last[0] != Shape(a) {
		t.Errorf("got selection %v, want just the first shape", last)
	}

	// Selecting the already selected shape is not a change.
	p.SelectOnly(a)
	if changes != 1 {
		t.Errorf("got %d change events, want 1", changes)
	}

	p.ToggleSelected(b)
	if changes != 2 {
		t.Errorf("got %d change events, want 2", changes)
	}
	if len(last) != 2 {
		t.Errorf("got selection %v, want both shapes", last)
	}

	// Select drops one shape without touching the rest.
	p.Select(b, false)
	if changes != 3 {
		t.Errorf("got %d change events, want 3", changes)
	}
	if len(last) != 1 || last[0] != Shape(a) {
		t.Errorf("got selection %v, want just the first shape", last)
	}

	// Re-applying the same state, or selecting nil, is not a change.
	p.Select(b, false)
	p.Select(nil, true)
	if changes != 3 {
		t.Errorf("got %d change events, want 3", changes)
	}

	p.ClearSelection()
	if changes != 4 {
		t.Errorf("got %d change events, want 4", changes)
	}
	if len(p.Selected()) != 0 {
		t.Errorf("got %d selected shapes, want 0", len(p.Selected()))
	}

	// Clearing an empty selection stays quiet.
	p.ClearSelection()
	if changes != 4 {
		t.Errorf("got %d change events, want 4", changes)
	}
}

func TestPatternRemoveSelected(t *testing.T) {
	var ls Listeners
	changes := 0
	ls.Add(SelectionChanged, func(Event) { changes++ })

	p := NewPattern(&ls)
	a := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	b := NewLeaf(Pt(20, 0), Pt(30, 0), 6)
	c := NewLeaf(Pt(40, 0), Pt(50, 0), 6)
	p.Add(a)
	p.Add(b)
	p.Add(c)

	p.SelectOnly(a)
	p.ToggleSelected(c)

	if n := p.RemoveSelected(); n != 2 {
		t.Errorf("got %d removed, want 2", n)
	}
	if p.Len() != 1 {
		t.Errorf("got %d shapes, want 1", p.Len())
	}
	if p.ByID(b.ID()) == nil {
		t.Error("the unselected shape should survive")
	}

	// Nothing selected, nothing removed, no event.
	before := changes
	if n := p.RemoveSelected(); n != 0 {
		t.Errorf("got %d removed, want 0", n)
	}
	if changes != before {
		t.Errorf("got %d change events, want %d", changes, before)
	}
}

func TestPatternHitTestTopmost(t *testing.T) {
	p := NewPattern(nil)
	a := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	b := NewLeaf(Pt(2, 0), Pt(12, 0), 6)
	p.Add(a)
	p.Add(b)

	// Both lenses cover (5, 0); the later-added shape wins.
	s, h := p.HitTest(Pt(5, 0), 10)
	if s != Shape(b) {
		t.Errorf("got %v, want the topmost shape", s)
	}
	diff(t, h, Hit{Region: HitBody, Index: -1})

	// A point only the bottom shape covers falls through to it.
	s, _ = p.HitTest(Pt(0.5, 0.2), 10)
	if s != Shape(a) {
		t.Errorf("got %v, want the bottom shape", s)
	}

	s, h = p.HitTest(Pt(50, 50), 10)
	if s != nil {
		t.Errorf("got %v, want nil", s)
	}
	diff(t, h, NoHit)
}

func TestPatternJSONRoundTrip(t *testing.T) {
	p := NewPattern(nil)
	leaf := NewLeaf(Pt(1, 2), Pt(3, 4), 5)
	tri := NewTriArc(Pt(0, 0), Pt(10, 0), Pt(5, 9), -0.2, -0.3, -0.4)
	p.Add(leaf)
	p.Add(tri)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	q := NewPattern(nil)
	if err := json.Unmarshal(data, q); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 2 {
		t.Fatalf("got %d shapes, want 2", q.Len())
	}
	if got := q.Shapes()[0].Type(); got != ShapeLeaf {
		t.Errorf("got first shape %q, want %q", got, ShapeLeaf)
	}
	if q.ByID(tri.ID()) == nil {
		t.Error("ids should survive the round trip")
	}

	data2, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, string(data2), string(data))
}

func TestPatternJSONEmpty(t *testing.T) {
	data, err := json.Marshal(NewPattern(nil))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, string(data), `{"shapes":[]}`)
}

func TestPatternJSONMalformed(t *testing.T) {
	p := NewPattern(nil)
	keep := NewLeaf(Pt(0, 0), Pt(10, 0), 6)
	p.Add(keep)

	data := []byte(`{"shapes":[{"type":"LEAF","vertices":[{"x":0,"y":0},{"x":8,"y":0}],"radius":5},{"type":"BLOB"}]}`)
	err := json.Unmarshal(data, p)
	if err == nil {
		t.Fatal("expected an error for the malformed entry")
	}
	if !errors.Is(err, ErrUnknownShapeType) {
		t.Errorf("got %v, want ErrUnknownShapeType", err)
	}
	if !strings.Contains(err.Error(), "shape 1") {
		t.Errorf("error %q should name the failing entry", err)
	}

	// The failed load leaves the pattern as it was.
	if p.Len() != 1 || p.ByID(keep.ID()) == nil {
		t.Error("pattern should be unchanged after a failed load")
	}
}
