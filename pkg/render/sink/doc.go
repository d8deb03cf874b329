// Package sink provides output format renderers for dialogue wheel scenes.
//
// # Overview
//
// A "sink" transforms a computed [geometry.Scene] into a final output
// format. This package provides renderers for:
//
//   - SVG: standalone vector document with hover and selection styling
//   - HTML: self-contained interactive page with a tilted 3D container
//   - JSON: scene export for external tools
//   - PNG: raster image (in-process, or via rsvg-convert)
//   - PDF: print-ready output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes the extrusion layers back to front, then the leader
// lines, then the labels. Top layers carry the "segment" class and a
// data-index; clickable ones also carry data-clickable. Disabled elements get
// the "disabled" class, which forces the configured opacity and saturation
// through CSS custom properties on the root element.
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithSelected(2),
//	    sink.WithClickScript(),
//	)
//
// A non-zero perspective angle is approximated by foreshortening the drawing
// vertically about the wheel center; [WithoutPerspective] disables this.
// [WithInlineStyles] replaces classes with presentation attributes, which is
// what the raster and PDF backends use.
//
// # HTML Output
//
// [RenderHTML] reproduces the live widget: a host element with perspective,
// a container rotated about the X axis, an inline SVG for the segments, and
// absolutely positioned label elements lifted slightly toward the viewer.
// Clicking an enabled segment dispatches an "option-selected" event with
// {index, option}, or posts to a server when [WithSelectEndpoint] is set.
//
// # PDF and PNG Output
//
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(scene)
//
// The builtin PNG rasterizer draws shapes only. [RasterRSVG] and
// [RenderPDF] require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [geometry.Scene]: github.com/matzehuels/dialoguewheel/pkg/render/geometry.Scene
package sink
