// Package geometry computes the drawable primitives of a dialogue wheel.
//
// # Overview
//
// [Build] is a pure function from an option list and a [wheel.Appearance] to
// a [Scene]: the sector angles, one path per extrusion layer and option, the
// leader lines, the label anchors, and the optional lighting filter. Nothing
// here knows about interaction or output formats; the sink package encodes a
// Scene and the widget package binds handlers to it.
//
// # Coordinates
//
// All points are in wheel coordinates: a square drawing area of side 2R with
// the center at (R, R) and y growing downward. Angles are measured clockwise
// from 12 o'clock, so a point at angle θ and distance ρ is
//
//	x = R + ρ·sin θ
//	y = R − ρ·cos θ
//
// The full frame adds [Margin] on both sides for the leader lines and labels:
// its width is 2R + 2·Margin and its height is 2R.
//
// # Extrusion
//
// A ring extrusion of E produces floor(E) additional layers under the top
// surface. Layers are emitted back to front, each shifted down by
// [LayerOffset] per depth step and filled with the option color darkened by
// [DarkenFactor]. Only the top layer (depth 0) is interactive and carries
// the lighting filter.
//
// # Hit testing
//
// [Scene.HitTest] maps a point back to the top-layer segment under it, which
// lets pointer input be resolved without a retained display tree:
//
//	scene := geometry.Build(opts, appearance)
//	if i := scene.HitTest(x, y); i >= 0 {
//		// segment i was hit
//	}
//
// [wheel.Appearance]: github.com/matzehuels/dialoguewheel/pkg/wheel.Appearance
package geometry
