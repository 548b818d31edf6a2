// Package carve provides the design-surface core for chip carving patterns:
// geometric primitives, the carvable shape variants, and the interaction
// state machines that editors drive.
//
// # Shapes
//
// A pattern is a flat collection of closed shapes whose outlines are circular
// arcs. Two variants exist: [Leaf], the lens-shaped intersection of two equal
// circles, and [TriArc], a triangle whose three edges dip inward. Both
// implement [Shape], which couples the geometry (vertices, arc handles,
// containment, bounds) with interaction (hit testing, dragging of vertices and
// arcs) and JSON serialization.
//
// Shapes live in world coordinates, expressed in millimeters on a y-down
// plane. Screen-space concerns like handle sizes enter hit testing only
// through a scale factor; [Viewport] maps between the two spaces.
//
// # Geometry
//
// Arc geometry is built on the chord/sagitta parametrization: an edge between
// two vertices plus a bulge height determines a unique circular arc (see
// [NewArcFromChord]). Conversions between sagitta, radius and bulge factor are
// provided as free functions, [RadiusFromSagitta] and friends. Degenerate
// configurations, such as a Leaf whose foci are farther apart than its circle
// diameter allows, are never fatal: constructions report failure and
// interactive operations fall back to doing nothing for the frame.
//
// # Interaction
//
// [Placer] runs the click-by-click creation flow and stays armed after each
// finished shape so that several can be placed in a row. [Transformer] holds
// the active manipulation mode and applies move and rotate drags as well as
// the immediate mirror and jiggle operations to the current selection. Both
// report changes through [Listeners] so an embedding editor can repaint or
// persist without the core knowing about it.
//
// # Serialization
//
// Shapes marshal to a stable JSON form carrying id, type tag, vertices and
// per-variant curvature data. [ParseShape] restores a shape from either that
// form or the older named-field form that predates it.
package carve
