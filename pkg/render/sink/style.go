package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
)

const wheelCSS = `
    .segment { cursor: pointer; transition: filter 0.2s ease; }
    .segment:hover { filter: brightness(1.2); }
    .segment.selected { filter: brightness(1.4); }
    .segment-line { stroke-width: 3px; pointer-events: none; fill: none; transition: opacity 0.2s ease, filter 0.2s ease; }
    .segment-label { font-family: Arial, sans-serif; font-weight: bold; pointer-events: none; white-space: nowrap; transition: opacity 0.2s ease, filter 0.2s ease; }
    .disabled { opacity: var(--disabled-opacity) !important; filter: saturate(var(--disabled-saturation)) !important; cursor: not-allowed; pointer-events: none; }
    .segment.disabled:hover { filter: saturate(var(--disabled-saturation)) !important; }`

// writeFilter emits the bevel lighting filter. The lighting and the inner
// shadow are both cut to the source alpha so nothing bleeds past the shape.
func writeFilter(buf *bytes.Buffer, f *geometry.Filter) {
	if f == nil {
		return
	}
	fmt.Fprintf(buf, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%" filterUnits="userSpaceOnUse" color-interpolation-filters="sRGB">`+"\n", escapeXML(f.ID))
	buf.WriteString(`      <feGaussianBlur in="SourceAlpha" stdDeviation="0.1" result="sourceAlphaForEffects"/>` + "\n")
	buf.WriteString(`      <feGaussianBlur in="sourceAlphaForEffects" stdDeviation="2" result="alphaBlurLight"/>` + "\n")
	fmt.Fprintf(buf, `      <feSpecularLighting in="alphaBlurLight" surfaceScale="%s" specularConstant="%s" specularExponent="%s" lighting-color="#ffffff" result="specOut">`+"\n",
		num(f.SurfaceScale), num(f.SpecularConstant), num(f.SpecularExponent))
	fmt.Fprintf(buf, `        <fePointLight x="%s" y="%s" z="%s"/>`+"\n", num(f.LightX), num(f.LightY), num(f.LightZ))
	buf.WriteString(`      </feSpecularLighting>` + "\n")
	buf.WriteString(`      <feComposite in="specOut" in2="sourceAlphaForEffects" operator="in" result="specOutCut"/>` + "\n")
	buf.WriteString(`      <feGaussianBlur in="sourceAlphaForEffects" stdDeviation="2.5" result="shadowBlur"/>` + "\n")
	buf.WriteString(`      <feOffset dx="1.5" dy="1.5" in="shadowBlur" result="shadowOffset"/>` + "\n")
	buf.WriteString(`      <feFlood flood-color="#000000" flood-opacity="0.5" result="shadowColor"/>` + "\n")
	buf.WriteString(`      <feComposite in="shadowColor" in2="shadowOffset" operator="in" result="shadowShape"/>` + "\n")
	buf.WriteString(`      <feComposite in="shadowShape" in2="sourceAlphaForEffects" operator="out" result="innerShadow"/>` + "\n")
	buf.WriteString(`      <feMerge>` + "\n")
	buf.WriteString(`        <feMergeNode in="innerShadow"/>` + "\n")
	buf.WriteString(`        <feMergeNode in="SourceGraphic"/>` + "\n")
	buf.WriteString(`        <feMergeNode in="specOutCut"/>` + "\n")
	buf.WriteString(`      </feMerge>` + "\n")
	buf.WriteString(`    </filter>` + "\n")
}

func segmentClass(l geometry.Layer, selected int) string {
	if !l.Top() {
		if l.Disabled {
			return "disabled"
		}
		return ""
	}
	class := "segment"
	if l.Disabled {
		class += " disabled"
	}
	if l.Index == selected {
		class += " selected"
	}
	return class
}

func lineClass(l geometry.Line) string {
	if l.Disabled {
		return "segment-line disabled"
	}
	return "segment-line"
}

func labelClass(l geometry.Label) string {
	class := "segment-label right-label"
	if !l.Side.ExtendsRight() {
		class = "segment-label left-label"
	}
	if l.Disabled {
		class += " disabled"
	}
	return class
}

// Desaturate moves hex toward its luminance gray. Amount 1 keeps the color,
// 0 yields gray. Unparseable input is returned unchanged.
func Desaturate(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	l := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	gray := colorful.Color{R: l, G: l, B: l}
	return gray.BlendRgb(c, amount).Clamped().Hex()
}

// Brighten scales hex by factor, clamping at white.
func Brighten(hex string, factor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return colorful.Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped().Hex()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
