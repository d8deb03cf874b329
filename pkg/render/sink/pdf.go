package sink

import (
	"slices"

	"github.com/matzehuels/dialoguewheel/pkg/render"
	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the scene as PDF via SVG conversion.
// Conversion needs rsvg-convert on PATH.
func RenderPDF(s geometry.Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(s, append(slices.Clip(r.svgOpts), WithInlineStyles())...)
	return render.ToPDF(svg)
}
