package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	selected    int
	inline      bool
	flat        bool
	background  string
	interactive bool
}

// WithSelected marks the top layer of index with the selected class.
func WithSelected(index int) SVGOption { return func(r *svgRenderer) { r.selected = index } }

// WithInlineStyles writes presentation attributes instead of relying on the
// stylesheet. Rasterizers without CSS support need this.
func WithInlineStyles() SVGOption { return func(r *svgRenderer) { r.inline = true } }

// WithoutPerspective draws the wheel face-on regardless of the tilt angle.
func WithoutPerspective() SVGOption { return func(r *svgRenderer) { r.flat = true } }

// WithBackground fills the frame with color before drawing.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithClickScript embeds a script that toggles the selected marker on click
// and dispatches an "option-selected" event from the root element.
func WithClickScript() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG encodes the scene as a standalone SVG document. Labels are drawn
// as text elements so the document has no HTML dependency.
func RenderSVG(s geometry.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))
	if !r.inline {
		fmt.Fprintf(&buf, ` style="--disabled-opacity: %s; --disabled-saturation: %s"`,
			num(s.DisabledOpacity), num(s.DisabledSaturation))
	}
	buf.WriteString(">\n")

	if !r.inline {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", wheelCSS)
	}
	if s.Filter != nil {
		buf.WriteString("  <defs>\n")
		writeFilter(&buf, s.Filter)
		buf.WriteString("  </defs>\n")
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
			num(s.Width), num(s.Height), escapeXML(r.background))
	}

	if r.inline {
		fmt.Fprintf(&buf, `  <g transform="%s">`+"\n", r.transform(s))
	} else {
		fmt.Fprintf(&buf, `  <g class="wheel-container" transform="%s">`+"\n", r.transform(s))
	}
	for _, l := range s.Layers {
		r.renderLayer(&buf, s, l)
	}
	for _, l := range s.Lines {
		r.renderLine(&buf, s, l)
	}
	for _, l := range s.Labels {
		r.renderLabel(&buf, s, l)
	}
	buf.WriteString("  </g>\n")

	if r.interactive {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", svgClickJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{selected: -1}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// transform shifts the drawing area past the left margin and, when tilted,
// foreshortens it vertically about the wheel center.
func (r svgRenderer) transform(s geometry.Scene) string {
	if r.flat || s.PerspectiveAngleX == 0 {
		return fmt.Sprintf("translate(%s 0)", num(geometry.Margin))
	}
	k := math.Cos(s.PerspectiveAngleX * math.Pi / 180)
	return fmt.Sprintf("translate(%s %s) scale(1 %s) translate(0 %s)",
		num(geometry.Margin), num(s.Center.Y), num(k), num(-s.Center.Y))
}

func (r svgRenderer) renderLayer(buf *bytes.Buffer, s geometry.Scene, l geometry.Layer) {
	fill := l.Fill
	buf.WriteString("    <path")
	if class := segmentClass(l, r.selected); class != "" && !r.inline {
		fmt.Fprintf(buf, ` class="%s"`, class)
	}
	if l.Top() {
		fmt.Fprintf(buf, ` data-index="%d"`, l.Index)
		if l.Clickable {
			buf.WriteString(` data-clickable="true"`)
		}
	}
	if r.inline {
		if l.Disabled {
			fill = Desaturate(fill, s.DisabledSaturation)
			fmt.Fprintf(buf, ` opacity="%s"`, num(s.DisabledOpacity))
		} else if l.Top() && l.Index == r.selected {
			fill = Brighten(fill, 1.4)
		}
	}
	fmt.Fprintf(buf, ` d="%s" fill="%s"`, l.Path, escapeXML(fill))
	if l.FilterRef != "" {
		fmt.Fprintf(buf, ` filter="%s"`, l.FilterRef)
	}
	buf.WriteString("/>\n")
}

func (r svgRenderer) renderLine(buf *bytes.Buffer, s geometry.Scene, l geometry.Line) {
	stroke := escapeXML(l.Stroke)
	if r.inline {
		attrs := ""
		if l.Disabled {
			stroke = escapeXML(Desaturate(l.Stroke, s.DisabledSaturation))
			attrs = fmt.Sprintf(` opacity="%s"`, num(s.DisabledOpacity))
		}
		fmt.Fprintf(buf, `    <path d="%s" stroke="%s" stroke-width="3" fill="none"%s/>`+"\n", l.Path, stroke, attrs)
		return
	}
	fmt.Fprintf(buf, `    <path class="%s" d="%s" stroke="%s"/>`+"\n", lineClass(l), l.Path, stroke)
}

func (r svgRenderer) renderLabel(buf *bytes.Buffer, s geometry.Scene, l geometry.Label) {
	anchor := "start"
	if !l.Side.ExtendsRight() {
		anchor = "end"
	}
	color := l.Color
	attrs := ""
	if r.inline {
		attrs = ` font-family="Arial, sans-serif" font-weight="bold"`
		if l.Disabled {
			color = Desaturate(color, s.DisabledSaturation)
			attrs += fmt.Sprintf(` opacity="%s"`, num(s.DisabledOpacity))
		}
	} else {
		attrs = fmt.Sprintf(` class="%s"`, labelClass(l))
	}
	fmt.Fprintf(buf, `    <text%s x="%s" y="%s" fill="%s" font-size="%s" text-anchor="%s" dominant-baseline="central">%s</text>`+"\n",
		attrs, num(l.X(s.DrawSize)), num(l.Top), escapeXML(color), num(l.FontSize), anchor, escapeXML(l.Text))
}

const svgClickJS = `
    (function() {
      var root = document.currentScript ? document.currentScript.ownerSVGElement : document.documentElement;
      root.querySelectorAll('.segment[data-clickable]').forEach(function(seg) {
        seg.addEventListener('click', function() {
          root.querySelectorAll('.segment').forEach(function(s) { s.classList.remove('selected'); });
          seg.classList.add('selected');
          root.dispatchEvent(new CustomEvent('option-selected', { detail: { index: Number(seg.dataset.index) }, bubbles: true, composed: true }));
        });
      });
    })();`
