package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dialoguewheel/pkg/render"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// UnselectedID is the node id of the initial state.
const UnselectedID = "unselected"

// Options configures state diagram rendering.
type Options struct {
	// Detailed includes the option color and index in node labels.
	// When false, only the option text is shown.
	Detailed bool
	// Current highlights the state the widget is in: -1 for unselected.
	Current int
	// HideTransfers omits edges between different selected states, leaving
	// only the initial selections and the re-selection loops.
	HideTransfers bool
}

// StateID returns the node id of Selected(index).
func StateID(index int) string { return "selected_" + strconv.Itoa(index) }

// ToDOT converts the selection state machine of opts to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Every enabled option contributes a Selected(i) state reachable from every
// state, including itself. Disabled options are drawn dashed with no
// incoming edges since clicks on them never transition.
func ToDOT(opts []wheel.Option, o Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [%s];\n", UnselectedID, strings.Join(stateAttrs("Unselected", "", o.Current == -1), ", "))
	for i, opt := range opts {
		label := fmtLabel(i, opt, o.Detailed)
		attrs := stateAttrs(label, opt.Color, o.Current == i)
		if opt.Disabled {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey40")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", StateID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for j, target := range opts {
		if target.Disabled {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", UnselectedID, StateID(j), "click "+strconv.Itoa(j))
	}
	for i, from := range opts {
		if from.Disabled {
			continue
		}
		for j, target := range opts {
			if target.Disabled || (o.HideTransfers && i != j) {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", StateID(i), StateID(j), "click "+strconv.Itoa(j))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, opt wheel.Option, detailed bool) string {
	if !detailed {
		return opt.Text
	}
	parts := []string{fmt.Sprintf("index: %d", i)}
	if opt.Color != "" {
		parts = append(parts, "color: "+opt.Color)
	}
	if opt.Disabled {
		parts = append(parts, "disabled")
	}
	return opt.Text + "\n" + strings.Join(parts, "\n")
}

func stateAttrs(label, color string, current bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", color))
	}
	if current {
		attrs = append(attrs, "penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Conversion needs rsvg-convert on PATH.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Conversion needs rsvg-convert on PATH.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
