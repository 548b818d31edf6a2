package carve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recordingCanvas captures draw calls so tests can assert on what a shape
// painted without a real surface.
type recordingCanvas struct {
	ops  []string
	arcs []bool // anticlockwise flag of each Arc call, in order
}

func (c *recordingCanvas) BeginPath() { c.ops = append(c.ops, "begin") }

func (c *recordingCanvas) MoveTo(Point) { c.ops = append(c.ops, "move") }

func (c *recordingCanvas) LineTo(Point) { c.ops = append(c.ops, "line") }

func (c *recordingCanvas) ClosePath() { c.ops = append(c.ops, "close") }

func (c *recordingCanvas) Stroke() { c.ops = append(c.ops, "stroke") }

func (c *recordingCanvas) Fill() { c.ops = append(c.ops, "fill") }

func (c *recordingCanvas) Arc(center Point, radius, startAngle, endAngle float64, anticlockwise bool) {
	c.ops = append(c.ops, "arc")
	c.arcs = append(c.arcs, anticlockwise)
}

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o == op {
			n++
		}
	}
	return n
}
