package wheel

import (
	"math"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
)

// Attribute names of the configuration surface, in the kebab-case form used
// by markup embeddings and the preview server.
const (
	AttrOptions            = "options"
	AttrWheelRadius        = "wheel-radius"
	AttrRingThickness      = "ring-thickness"
	AttrPerspectiveAngleX  = "perspective-angle-x"
	AttrFontSizeScale      = "font-size-scale"
	AttrBevelIntensity     = "bevel-intensity"
	AttrRingExtrusion      = "ring-extrusion"
	AttrDisabledOpacity    = "disabled-opacity"
	AttrDisabledSaturation = "disabled-saturation"
	AttrDisableAffectsText = "disable-affects-text"
)

// Attributes lists every observed attribute name in declaration order.
var Attributes = []string{
	AttrOptions,
	AttrWheelRadius,
	AttrRingThickness,
	AttrPerspectiveAngleX,
	AttrFontSizeScale,
	AttrBevelIntensity,
	AttrRingExtrusion,
	AttrDisabledOpacity,
	AttrDisabledSaturation,
	AttrDisableAffectsText,
}

// Range limits for clamped fields.
const (
	MaxBevelIntensity = 1.0
	MaxRingExtrusion  = 50.0
)

// Appearance is the numeric configuration of one wheel.
type Appearance struct {
	WheelRadius        float64 `json:"wheel_radius" toml:"wheel_radius" yaml:"wheel_radius"`
	RingThickness      float64 `json:"ring_thickness" toml:"ring_thickness" yaml:"ring_thickness"`
	PerspectiveAngleX  float64 `json:"perspective_angle_x" toml:"perspective_angle_x" yaml:"perspective_angle_x"`
	FontSizeScale      float64 `json:"font_size_scale" toml:"font_size_scale" yaml:"font_size_scale"`
	BevelIntensity     float64 `json:"bevel_intensity" toml:"bevel_intensity" yaml:"bevel_intensity"`
	RingExtrusion      float64 `json:"ring_extrusion" toml:"ring_extrusion" yaml:"ring_extrusion"`
	DisabledOpacity    float64 `json:"disabled_opacity" toml:"disabled_opacity" yaml:"disabled_opacity"`
	DisabledSaturation float64 `json:"disabled_saturation" toml:"disabled_saturation" yaml:"disabled_saturation"`
	DisableAffectsText bool    `json:"disable_affects_text" toml:"disable_affects_text" yaml:"disable_affects_text"`
}

// DefaultAppearance returns the appearance a freshly constructed widget uses.
func DefaultAppearance() Appearance {
	return Appearance{
		WheelRadius:        150,
		RingThickness:      60,
		PerspectiveAngleX:  0,
		FontSizeScale:      1,
		BevelIntensity:     0,
		RingExtrusion:      0,
		DisabledOpacity:    0.5,
		DisabledSaturation: 0.3,
		DisableAffectsText: true,
	}
}

// OuterRadius is the radius of the ring's outer edge.
func (a Appearance) OuterRadius() float64 { return a.WheelRadius }

// EffectiveThickness is the ring thickness limited to the wheel radius.
func (a Appearance) EffectiveThickness() float64 { return min(a.RingThickness, a.WheelRadius) }

// InnerRadius is the radius of the ring's inner edge; never negative.
func (a Appearance) InnerRadius() float64 {
	return max(0, a.OuterRadius()-a.EffectiveThickness())
}

// Layers returns the number of extrusion layers below the top surface.
func (a Appearance) Layers() int { return int(math.Floor(a.RingExtrusion)) }

// BevelEnabled reports whether the lighting filter is active.
func (a Appearance) BevelEnabled() bool { return a.BevelIntensity > 0 }

// Normalize applies every field rule and returns the stored form. Rejected
// fields fall back to the corresponding value of fallback; the first
// rejection is returned so callers can report it.
func (a Appearance) Normalize(fallback Appearance) (Appearance, error) {
	var first error
	keep := func(v float64, err error, prev float64) float64 {
		if err != nil {
			if first == nil {
				first = err
			}
			return prev
		}
		return v
	}

	out := a
	v, err := CheckWheelRadius(a.WheelRadius)
	out.WheelRadius = keep(v, err, fallback.WheelRadius)
	v, err = CheckRingThickness(a.RingThickness)
	out.RingThickness = keep(v, err, fallback.RingThickness)
	v, err = CheckPerspectiveAngleX(a.PerspectiveAngleX)
	out.PerspectiveAngleX = keep(v, err, fallback.PerspectiveAngleX)
	v, err = CheckFontSizeScale(a.FontSizeScale)
	out.FontSizeScale = keep(v, err, fallback.FontSizeScale)
	v, err = CheckBevelIntensity(a.BevelIntensity)
	out.BevelIntensity = keep(v, err, fallback.BevelIntensity)
	v, err = CheckRingExtrusion(a.RingExtrusion)
	out.RingExtrusion = keep(v, err, fallback.RingExtrusion)
	v, err = CheckDisabledOpacity(a.DisabledOpacity)
	out.DisabledOpacity = keep(v, err, fallback.DisabledOpacity)
	v, err = CheckDisabledSaturation(a.DisabledSaturation)
	out.DisabledSaturation = keep(v, err, fallback.DisabledSaturation)
	return out, first
}

// CheckWheelRadius rejects non-finite and non-positive radii.
func CheckWheelRadius(v float64) (float64, error) {
	if err := errors.ValidatePositive(AttrWheelRadius, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckRingThickness rejects non-finite and non-positive thickness. The value
// is stored as given; the renderer limits it to the radius.
func CheckRingThickness(v float64) (float64, error) {
	if err := errors.ValidatePositive(AttrRingThickness, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckPerspectiveAngleX accepts any finite angle in degrees.
func CheckPerspectiveAngleX(v float64) (float64, error) {
	if err := errors.ValidateFinite(AttrPerspectiveAngleX, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckFontSizeScale rejects non-finite and non-positive scales.
func CheckFontSizeScale(v float64) (float64, error) {
	if err := errors.ValidatePositive(AttrFontSizeScale, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckBevelIntensity clamps to [0, 1].
func CheckBevelIntensity(v float64) (float64, error) {
	return clamp(AttrBevelIntensity, v, 0, MaxBevelIntensity)
}

// CheckRingExtrusion clamps to [0, 50].
func CheckRingExtrusion(v float64) (float64, error) {
	return clamp(AttrRingExtrusion, v, 0, MaxRingExtrusion)
}

// CheckDisabledOpacity clamps to [0, 1].
func CheckDisabledOpacity(v float64) (float64, error) {
	return clamp(AttrDisabledOpacity, v, 0, 1)
}

// CheckDisabledSaturation clamps to [0, 1].
func CheckDisabledSaturation(v float64) (float64, error) {
	return clamp(AttrDisabledSaturation, v, 0, 1)
}

func clamp(name string, v, lo, hi float64) (float64, error) {
	if err := errors.ValidateFinite(name, v); err != nil {
		return 0, err
	}
	return max(lo, min(hi, v)), nil
}
