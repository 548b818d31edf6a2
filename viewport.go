package carve

import (
	"math"
)

// Zoom limits for [Viewport]. At 0.05 a meter of stock fits a small window;
// past 50 individual arc handles would cover the screen.
const (
	MinZoom = 0.05
	MaxZoom = 50.0
)

// Viewport maps between world millimeters and screen pixels: a uniform
// scale followed by a screen-space offset. The scale it reports is the one
// hit testing expects.
type Viewport struct {
	scale  float64
	offset Vec2
}

// NewViewport returns a viewport at scale 1 with no offset.
func NewViewport() *Viewport {
	return &Viewport{scale: 1}
}

// Scale returns the current world-to-screen scale factor.
func (v *Viewport) Scale() float64 { return v.scale }

// SetScale sets the scale, clamped to the zoom limits. NaN is ignored.
func (v *Viewport) SetScale(s float64) {
	if math.IsNaN(s) {
		return
	}
	v.scale = min(max(s, MinZoom), MaxZoom)
}

// Offset returns the screen-space translation.
func (v *Viewport) Offset() Vec2 { return v.offset }

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(delta Vec2) {
	v.offset = v.offset.Add(delta)
}

// Transform returns the world-to-screen transform.
func (v *Viewport) Transform() Affine {
	return Scale(v.scale, v.scale).ThenTranslate(v.offset)
}

// ToScreen maps a world point to screen space.
func (v *Viewport) ToScreen(pt Point) Point {
	return pt.Transform(v.Transform())
}

// ToWorld maps a screen point to world space.
func (v *Viewport) ToWorld(pt Point) Point {
	return pt.Transform(v.Transform().Invert())
}

// ZoomAt multiplies the scale by factor while keeping the world point under
// the screen anchor fixed, so zooming happens around the cursor.
func (v *Viewport) ZoomAt(factor float64, anchor Point) {
	old := v.scale
	v.SetScale(v.scale * factor)
	f := v.scale / old
	v.offset = Vec2(anchor).Sub(Vec2(anchor).Sub(v.offset).Mul(f))
}

// VisibleWorldRect returns the world rectangle covering a screen viewport of
// the given pixel size.
func (v *Viewport) VisibleWorldRect(width, height float64) Rect {
	return v.Transform().Invert().TransformRectBoundingBox(Rect{X1: width, Y1: height})
}
