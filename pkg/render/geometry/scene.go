package geometry

import "math"

// Layout constants.
const (
	TurnPadding   = 15.0 // radial run of a leader line past the outer radius
	HorizontalRun = 50.0 // horizontal run of a leader line after the turn
	LabelPadding  = 10.0 // gap between a line end and its label
	Margin        = TurnPadding + HorizontalRun + LabelPadding

	LayerOffset   = 0.5 // vertical shift per extrusion layer
	DarkenFactor  = 0.7
	SideTolerance = 0.01
	BaseFontSize  = 14.0
)

// Lighting constants.
const (
	SpecularScale    = 0.75 // specular constant per unit of bevel intensity
	SurfaceScale     = 5.0  // surface relief per unit of bevel intensity
	SpecularExponent = 20.0
	LightZ           = 150.0
	LightFraction    = 0.5 // light x/y as a fraction of the center coordinates
)

// Colors.
const (
	DefaultColor   = "#3498db" // segment fill when an option has no color
	FallbackColor  = "#ffffff" // line and label color when an option has no color
	DarkenFallback = "#222222"
)

// DefaultFilterID is the lighting filter id used when no namespace is given.
const DefaultFilterID = "shinyBevelFilter"

// Point is a position in wheel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Side is the horizontal direction a leader line extends toward.
type Side int

const (
	SideRight Side = iota
	SideLeft
	SideVertical // mid-angle within SideTolerance of straight up or down
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideVertical:
		return "vertical"
	default:
		return "right"
	}
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a side name. Unknown names decode as right.
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left":
		*s = SideLeft
	case "vertical":
		*s = SideVertical
	default:
		*s = SideRight
	}
	return nil
}

// ExtendsRight reports whether lines on this side run rightward. Vertical
// lines route right.
func (s Side) ExtendsRight() bool { return s != SideLeft }

// Sector is the angular span of one option.
type Sector struct {
	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Mid      float64 `json:"mid"`
	LargeArc bool    `json:"large_arc"`
}

// Span returns End - Start.
func (s Sector) Span() float64 { return s.End - s.Start }

// Layer is one filled wedge of one option at one extrusion depth.
type Layer struct {
	Index       int     `json:"index"`
	Depth       int     `json:"depth"`
	OffsetY     float64 `json:"offset_y"`
	Path        string  `json:"path"`
	Fill        string  `json:"fill"`
	Interactive bool    `json:"interactive,omitempty"`
	Clickable   bool    `json:"clickable,omitempty"`
	Disabled    bool    `json:"disabled,omitempty"`
	FilterRef   string  `json:"filter,omitempty"`
}

// Top reports whether the layer is the visible top surface.
func (l Layer) Top() bool { return l.Depth == 0 }

// Line is the leader line of one option.
type Line struct {
	Index    int    `json:"index"`
	Start    Point  `json:"start"`
	Turn     Point  `json:"turn"`
	End      Point  `json:"end"`
	Side     Side   `json:"side"`
	Path     string `json:"path"`
	Stroke   string `json:"stroke"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Label is the text of one option. Right-extending labels are positioned by
// their left edge, left labels by their right edge measured from the right
// border of the drawing area. Top is the vertical center.
type Label struct {
	Index    int     `json:"index"`
	Text     string  `json:"text"`
	Color    string  `json:"color"`
	Side     Side    `json:"side"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left,omitempty"`
	Right    float64 `json:"right,omitempty"`
	FontSize float64 `json:"font_size"`
	Disabled bool    `json:"disabled,omitempty"`
}

// X returns the horizontal anchor of the label in wheel coordinates.
func (l Label) X(drawSize float64) float64 {
	if l.Side.ExtendsRight() {
		return l.Left
	}
	return drawSize - l.Right
}

// Filter holds the lighting parameters of the bevel effect.
type Filter struct {
	ID               string  `json:"id"`
	SpecularConstant float64 `json:"specular_constant"`
	SurfaceScale     float64 `json:"surface_scale"`
	SpecularExponent float64 `json:"specular_exponent"`
	LightX           float64 `json:"light_x"`
	LightY           float64 `json:"light_y"`
	LightZ           float64 `json:"light_z"`
}

// Ref returns the url() reference used by filtered shapes.
func (f Filter) Ref() string { return "url(#" + f.ID + ")" }

// Scene is the complete visual description of one render pass.
type Scene struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	DrawSize float64 `json:"draw_size"`
	Center   Point   `json:"center"`

	OuterRadius float64 `json:"outer_radius"`
	InnerRadius float64 `json:"inner_radius"`
	LayerCount  int     `json:"layer_count"`

	Sectors []Sector `json:"sectors"`
	Layers  []Layer  `json:"layers"`
	Lines   []Line   `json:"lines"`
	Labels  []Label  `json:"labels"`
	Filter  *Filter  `json:"filter,omitempty"`

	PerspectiveAngleX  float64 `json:"perspective_angle_x"`
	FontSize           float64 `json:"font_size"`
	LabelZ             float64 `json:"label_z"`
	DisabledOpacity    float64 `json:"disabled_opacity"`
	DisabledSaturation float64 `json:"disabled_saturation"`
}

// Empty reports whether the scene has no segments.
func (s Scene) Empty() bool { return len(s.Sectors) == 0 }

// TopLayer returns the depth-0 layer of option index.
func (s Scene) TopLayer(index int) (Layer, bool) {
	n := len(s.Sectors)
	if index < 0 || index >= n {
		return Layer{}, false
	}
	// Top layers are emitted last, in option order.
	l := s.Layers[len(s.Layers)-n+index]
	return l, l.Top() && l.Index == index
}

// HitTest returns the index of the top-layer segment containing (x, y), or
// -1 when the point lies outside the ring. Disabled segments are reported
// like any other; callers decide whether they react.
func (s Scene) HitTest(x, y float64) int {
	n := len(s.Sectors)
	if n == 0 {
		return -1
	}
	dx, dy := x-s.Center.X, y-s.Center.Y
	rho := math.Hypot(dx, dy)
	if rho > s.OuterRadius || rho < s.InnerRadius {
		return -1
	}
	theta := math.Atan2(dx, -dy)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	i := int(theta / (2 * math.Pi) * float64(n))
	return min(i, n-1)
}
