// Package nodelink renders the selection state machine of a wheel as a
// node-link diagram.
//
// # Overview
//
// A wheel is always in one of the states Unselected or Selected(i). Clicking
// an enabled option j moves any state to Selected(j), including Selected(j)
// itself, which re-fires the notification. Disabled options have a state
// node but no incoming edge. This package draws that machine with Graphviz,
// which is useful for reviewing dialogue trees.
//
// # Usage
//
//	dot := nodelink.ToDOT(opts, nodelink.Options{Current: -1})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
