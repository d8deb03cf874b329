// Package render provides format conversion shared by the dialogue wheel
// renderers.
//
// # Overview
//
// Rendering happens in layers:
//
//   - [geometry] computes a scene from options and appearance
//   - [sink] encodes a scene as SVG, HTML, JSON, PNG, or PDF
//   - [nodelink] draws the selection state machine of an option list
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [Available] reports whether
// the tool is installed, so callers can fall back to the builtin rasterizer.
//
//	svg := sink.RenderSVG(scene, sink.WithInlineStyles())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [geometry]: github.com/matzehuels/dialoguewheel/pkg/render/geometry
// [sink]: github.com/matzehuels/dialoguewheel/pkg/render/sink
// [nodelink]: github.com/matzehuels/dialoguewheel/pkg/render/nodelink
package render
