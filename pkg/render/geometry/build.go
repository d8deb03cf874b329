package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// BuildOption configures a single [Build] call.
type BuildOption func(*builder)

type builder struct {
	filterID string
}

// WithFilterID sets the id of the lighting filter. Pages that embed several
// wheels give each a distinct id.
func WithFilterID(id string) BuildOption {
	return func(b *builder) {
		if id != "" {
			b.filterID = id
		}
	}
}

// Build computes the scene for opts under appearance a. The option slice is
// only read; every primitive copies what it needs. An empty list yields a
// correctly sized scene with no segments, lines, or labels.
func Build(opts []wheel.Option, a wheel.Appearance, buildOpts ...BuildOption) Scene {
	b := builder{filterID: DefaultFilterID}
	for _, opt := range buildOpts {
		opt(&b)
	}

	outer := a.OuterRadius()
	inner := a.InnerRadius()
	size := 2 * outer

	s := Scene{
		Width:              size + 2*Margin,
		Height:             size,
		DrawSize:           size,
		Center:             Point{X: outer, Y: outer},
		OuterRadius:        outer,
		InnerRadius:        inner,
		LayerCount:         a.Layers(),
		PerspectiveAngleX:  a.PerspectiveAngleX,
		FontSize:           BaseFontSize * a.FontSizeScale,
		LabelZ:             2,
		DisabledOpacity:    a.DisabledOpacity,
		DisabledSaturation: a.DisabledSaturation,
		Sectors:            []Sector{},
		Layers:             []Layer{},
		Lines:              []Line{},
		Labels:             []Label{},
	}

	if a.BevelEnabled() {
		s.LabelZ = 5
		s.Filter = &Filter{
			ID:               b.filterID,
			SpecularConstant: SpecularScale * a.BevelIntensity,
			SurfaceScale:     SurfaceScale * a.BevelIntensity,
			SpecularExponent: SpecularExponent,
			LightX:           s.Center.X * LightFraction,
			LightY:           s.Center.Y * LightFraction,
			LightZ:           LightZ,
		}
	}

	n := len(opts)
	if n == 0 {
		return s
	}

	s.Sectors = sectors(n)
	s.Layers = layers(s, opts)
	s.Lines, s.Labels = leaders(s, opts, a.DisableAffectsText)
	return s
}

func sectors(n int) []Sector {
	out := make([]Sector, n)
	for i := range out {
		start := float64(i) / float64(n) * 2 * math.Pi
		end := float64(i+1) / float64(n) * 2 * math.Pi
		out[i] = Sector{
			Index:    i,
			Start:    start,
			End:      end,
			Mid:      (start + end) / 2,
			LargeArc: end-start > math.Pi,
		}
	}
	return out
}

func layers(s Scene, opts []wheel.Option) []Layer {
	out := make([]Layer, 0, (s.LayerCount+1)*len(opts))
	for k := s.LayerCount; k >= 0; k-- {
		offsetY := float64(k) * LayerOffset
		for i, o := range opts {
			fill := o.Color
			if fill == "" {
				fill = DefaultColor
			}
			if k > 0 {
				fill = Darken(fill, DarkenFactor)
			}
			l := Layer{
				Index:    i,
				Depth:    k,
				OffsetY:  offsetY,
				Path:     wedgePath(s, s.Sectors[i], offsetY),
				Fill:     fill,
				Disabled: o.Disabled,
			}
			if k == 0 {
				l.Interactive = true
				l.Clickable = !o.Disabled
				if s.Filter != nil {
					l.FilterRef = s.Filter.Ref()
				}
			}
			out = append(out, l)
		}
	}
	return out
}

func leaders(s Scene, opts []wheel.Option, affectsText bool) ([]Line, []Label) {
	lines := make([]Line, 0, len(opts))
	labels := make([]Label, 0, len(opts))
	turnDist := s.OuterRadius + TurnPadding

	for i, o := range opts {
		mid := s.Sectors[i].Mid
		side := classify(math.Sin(mid))

		start := s.polar(s.OuterRadius, mid, 0)
		turn := s.polar(turnDist, mid, 0)
		end := Point{X: turn.X + HorizontalRun, Y: turn.Y}
		if !side.ExtendsRight() {
			end.X = turn.X - HorizontalRun
		}

		color := o.Color
		if color == "" {
			color = FallbackColor
		}
		dimmed := o.Disabled && affectsText

		lines = append(lines, Line{
			Index:    i,
			Start:    start,
			Turn:     turn,
			End:      end,
			Side:     side,
			Path:     polyline(start, turn, end),
			Stroke:   color,
			Disabled: dimmed,
		})

		lbl := Label{
			Index:    i,
			Text:     o.Text,
			Color:    color,
			Side:     side,
			Top:      end.Y,
			FontSize: s.FontSize,
			Disabled: dimmed,
		}
		if side.ExtendsRight() {
			lbl.Left = end.X + LabelPadding
		} else {
			lbl.Right = s.DrawSize - (end.X - LabelPadding)
		}
		labels = append(labels, lbl)
	}
	return lines, labels
}

func classify(sinMid float64) Side {
	switch {
	case sinMid > SideTolerance:
		return SideRight
	case sinMid < -SideTolerance:
		return SideLeft
	default:
		return SideVertical
	}
}

func (s Scene) polar(rho, theta, offsetY float64) Point {
	return Point{
		X: s.Center.X + rho*math.Sin(theta),
		Y: s.Center.Y - rho*math.Cos(theta) + offsetY,
	}
}

// wedgePath builds the annular sector outline: inner start, outer start,
// outer arc, inner end, inner arc back. A sector spanning the whole circle
// has coincident endpoints, so each arc is split at the opposite point.
func wedgePath(s Scene, sec Sector, offsetY float64) string {
	r, R := s.InnerRadius, s.OuterRadius
	large := "0"
	if sec.LargeArc {
		large = "1"
	}

	is, os := s.polar(r, sec.Start, offsetY), s.polar(R, sec.Start, offsetY)
	ie, oe := s.polar(r, sec.End, offsetY), s.polar(R, sec.End, offsetY)

	var sb strings.Builder
	sb.WriteString("M " + pt(is))
	sb.WriteString(" L " + pt(os))
	if sec.Span() >= 2*math.Pi {
		half := sec.Start + math.Pi
		om, im := s.polar(R, half, offsetY), s.polar(r, half, offsetY)
		sb.WriteString(" A " + num(R) + " " + num(R) + " 0 " + large + " 1 " + pt(om))
		sb.WriteString(" A " + num(R) + " " + num(R) + " 0 " + large + " 1 " + pt(oe))
		sb.WriteString(" L " + pt(ie))
		sb.WriteString(" A " + num(r) + " " + num(r) + " 0 " + large + " 0 " + pt(im))
		sb.WriteString(" A " + num(r) + " " + num(r) + " 0 " + large + " 0 " + pt(is))
	} else {
		sb.WriteString(" A " + num(R) + " " + num(R) + " 0 " + large + " 1 " + pt(oe))
		sb.WriteString(" L " + pt(ie))
		sb.WriteString(" A " + num(r) + " " + num(r) + " 0 " + large + " 0 " + pt(is))
	}
	sb.WriteString(" Z")
	return sb.String()
}

func polyline(pts ...Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		cmd := "L "
		if i == 0 {
			cmd = "M "
		}
		parts[i] = cmd + pt(p)
	}
	return strings.Join(parts, " ")
}

func pt(p Point) string { return num(p.X) + " " + num(p.Y) }

// num formats v with at most three decimals and no negative zero.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
