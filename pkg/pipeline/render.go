package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/render/nodelink"
	"github.com/matzehuels/dialoguewheel/pkg/render/sink"
)

// Build computes the scene for a validated source.
func Build(src Source, opts Options) geometry.Scene {
	var buildOpts []geometry.BuildOption
	if opts.FilterID != "" {
		buildOpts = append(buildOpts, geometry.WithFilterID(opts.FilterID))
	}
	return geometry.Build(src.Options, src.Appearance, buildOpts...)
}

// RenderFormat encodes one format. The wheel view reads the scene; the
// state diagram view reads the option list only.
func RenderFormat(ctx context.Context, s geometry.Scene, src Source, opts Options, format string) ([]byte, error) {
	if opts.IsStates() {
		return renderStates(ctx, src, opts, format)
	}
	return renderWheel(s, src, opts, format)
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s geometry.Scene, src Source, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, s, src, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderWheel generates wheel outputs.
func renderWheel(s geometry.Scene, src Source, opts Options, format string) ([]byte, error) {
	selected := opts.selection(src.Options)
	svgOpts := buildSVGOptions(opts, selected)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(s, svgOpts...), nil
	case FormatHTML:
		htmlOpts := []sink.HTMLOption{
			sink.WithHTMLTitle(opts.Title),
			sink.WithHTMLSelected(selected),
			sink.WithHTMLOptions(src.Options),
		}
		if opts.Background != "" {
			htmlOpts = append(htmlOpts, sink.WithHTMLBackground(opts.Background))
		}
		return sink.RenderHTML(s, htmlOpts...)
	case FormatPNG:
		return sink.RenderPNG(s,
			sink.WithPNGSVGOptions(svgOpts...),
			sink.WithScale(opts.Scale),
			sink.WithRasterizer(sink.Rasterizer(opts.Rasterizer)),
		)
	case FormatPDF:
		return sink.RenderPDF(s, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(s,
			sink.WithJSONSelected(selected),
			sink.WithJSONSource(src.Options, src.Appearance),
		)
	}
	return nil, fmt.Errorf("unsupported wheel format: %s", format)
}

// buildSVGOptions builds SVG rendering options shared by SVG, PNG, and PDF.
func buildSVGOptions(opts Options, selected int) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithSelected(selected)}
	if opts.Inline {
		svgOpts = append(svgOpts, sink.WithInlineStyles())
	}
	if opts.Flat {
		svgOpts = append(svgOpts, sink.WithoutPerspective())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithClickScript())
	}
	return svgOpts
}

// renderStates generates state diagram outputs.
func renderStates(ctx context.Context, src Source, opts Options, format string) ([]byte, error) {
	dot := nodelink.ToDOT(src.Options, nodelink.Options{
		Detailed:      opts.Detailed,
		Current:       opts.selection(src.Options),
		HideTransfers: opts.HideTransfers,
	})

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported states format: %s", format)
}
