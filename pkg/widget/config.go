package widget

import (
	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// SetOptions replaces the option list with a copy of opts and re-renders.
// An invalid list is rejected and the previous one stays in place.
func (w *Widget) SetOptions(opts []wheel.Option) error {
	next := wheel.CloneOptions(opts)
	if err := wheel.ValidateOptions(next); err != nil {
		w.reject(wheel.AttrOptions, err)
		return err
	}
	w.replaceOptions(next)
	w.render()
	return nil
}

// SetOptionsJSON decodes a JSON array of options and applies it with
// SetOptions. Malformed input leaves the widget untouched.
func (w *Widget) SetOptionsJSON(data []byte) error {
	opts, err := decodeOptions(data)
	if err != nil {
		w.reject(wheel.AttrOptions, err)
		return err
	}
	w.replaceOptions(opts)
	w.render()
	return nil
}

// decodeOptions parses and validates a JSON option array.
func decodeOptions(data []byte) ([]wheel.Option, error) {
	var opts []wheel.Option
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "decode options")
	}
	opts = wheel.CloneOptions(opts)
	if err := wheel.ValidateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// replaceOptions stores next and drops a selection that no longer points
// at an enabled option. The caller renders.
func (w *Widget) replaceOptions(next []wheel.Option) {
	w.options = next
	if w.selected >= 0 && !wheel.Selectable(next, w.selected) {
		w.logger.Debug("selection cleared", "index", w.selected)
		w.selected = -1
	}
}

// Options returns a copy of the option list.
func (w *Widget) Options() []wheel.Option { return wheel.CloneOptions(w.options) }

// Appearance returns the stored appearance.
func (w *Widget) Appearance() wheel.Appearance { return w.appearance }

// SetAppearance applies every field of a. Rejected fields keep their
// current value; the first rejection is returned. The widget re-renders
// unless every field was rejected or nothing changed.
func (w *Widget) SetAppearance(a wheel.Appearance) error {
	next, err := a.Normalize(w.appearance)
	if err != nil {
		w.reject("appearance", err)
	}
	if next == w.appearance {
		return err
	}
	w.appearance = next
	w.render()
	return err
}

func (w *Widget) setFloat(field string, v float64, check func(float64) (float64, error), dst *float64) error {
	stored, err := check(v)
	if err != nil {
		w.reject(field, err)
		return err
	}
	*dst = stored
	w.render()
	return nil
}

// WheelRadius returns the outer radius.
func (w *Widget) WheelRadius() float64 { return w.appearance.WheelRadius }

// SetWheelRadius sets the outer radius. Non-positive values are rejected.
func (w *Widget) SetWheelRadius(v float64) error {
	return w.setFloat(wheel.AttrWheelRadius, v, wheel.CheckWheelRadius, &w.appearance.WheelRadius)
}

// RingThickness returns the stored ring thickness.
func (w *Widget) RingThickness() float64 { return w.appearance.RingThickness }

// SetRingThickness sets the ring thickness. Non-positive values are rejected.
func (w *Widget) SetRingThickness(v float64) error {
	return w.setFloat(wheel.AttrRingThickness, v, wheel.CheckRingThickness, &w.appearance.RingThickness)
}

// PerspectiveAngleX returns the tilt in degrees.
func (w *Widget) PerspectiveAngleX() float64 { return w.appearance.PerspectiveAngleX }

// SetPerspectiveAngleX sets the tilt in degrees.
func (w *Widget) SetPerspectiveAngleX(v float64) error {
	return w.setFloat(wheel.AttrPerspectiveAngleX, v, wheel.CheckPerspectiveAngleX, &w.appearance.PerspectiveAngleX)
}

// FontSizeScale returns the label font multiplier.
func (w *Widget) FontSizeScale() float64 { return w.appearance.FontSizeScale }

// SetFontSizeScale sets the label font multiplier. Non-positive values are
// rejected.
func (w *Widget) SetFontSizeScale(v float64) error {
	return w.setFloat(wheel.AttrFontSizeScale, v, wheel.CheckFontSizeScale, &w.appearance.FontSizeScale)
}

// BevelIntensity returns the lighting strength.
func (w *Widget) BevelIntensity() float64 { return w.appearance.BevelIntensity }

// SetBevelIntensity sets the lighting strength, clamped to [0, 1].
func (w *Widget) SetBevelIntensity(v float64) error {
	return w.setFloat(wheel.AttrBevelIntensity, v, wheel.CheckBevelIntensity, &w.appearance.BevelIntensity)
}

// RingExtrusion returns the extrusion depth.
func (w *Widget) RingExtrusion() float64 { return w.appearance.RingExtrusion }

// SetRingExtrusion sets the extrusion depth, clamped to [0, 50].
func (w *Widget) SetRingExtrusion(v float64) error {
	return w.setFloat(wheel.AttrRingExtrusion, v, wheel.CheckRingExtrusion, &w.appearance.RingExtrusion)
}

// DisabledOpacity returns the opacity of disabled elements.
func (w *Widget) DisabledOpacity() float64 { return w.appearance.DisabledOpacity }

// SetDisabledOpacity sets the opacity of disabled elements, clamped to [0, 1].
func (w *Widget) SetDisabledOpacity(v float64) error {
	return w.setFloat(wheel.AttrDisabledOpacity, v, wheel.CheckDisabledOpacity, &w.appearance.DisabledOpacity)
}

// DisabledSaturation returns the saturation of disabled elements.
func (w *Widget) DisabledSaturation() float64 { return w.appearance.DisabledSaturation }

// SetDisabledSaturation sets the saturation of disabled elements, clamped to
// [0, 1].
func (w *Widget) SetDisabledSaturation(v float64) error {
	return w.setFloat(wheel.AttrDisabledSaturation, v, wheel.CheckDisabledSaturation, &w.appearance.DisabledSaturation)
}

// DisableAffectsText reports whether disabled options also dim their line
// and label.
func (w *Widget) DisableAffectsText() bool { return w.appearance.DisableAffectsText }

// SetDisableAffectsText sets whether disabled options dim their line and
// label.
func (w *Widget) SetDisableAffectsText(v bool) error {
	w.appearance.DisableAffectsText = v
	w.render()
	return nil
}
