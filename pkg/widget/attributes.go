package widget

import (
	"strconv"

	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// SetAttribute applies a string-valued attribute by its kebab-case name.
// Numeric attributes must parse as floats; disable-affects-text is false
// only for the literal "false".
func (w *Widget) SetAttribute(name, value string) error {
	switch name {
	case wheel.AttrOptions:
		return w.SetOptionsJSON([]byte(value))
	case wheel.AttrDisableAffectsText:
		return w.SetDisableAffectsText(value != "false")
	}

	f, ok := floatFields(&w.appearance)[name]
	if !ok {
		err := errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", name)
		w.reject(name, err)
		return err
	}
	v, err := parseFloat(name, value)
	if err != nil {
		w.reject(name, err)
		return err
	}
	return w.setFloat(name, v, f.check, f.dst)
}

// SetAttributes applies several attributes as one change. Every value is
// checked before any is stored, so a single rejection leaves the widget
// untouched. A successful call renders once.
func (w *Widget) SetAttributes(attrs map[string]string) error {
	next := w.appearance
	var opts []wheel.Option
	fields := floatFields(&next)

	for name := range attrs {
		if _, ok := fields[name]; !ok && name != wheel.AttrOptions && name != wheel.AttrDisableAffectsText {
			err := errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", name)
			w.reject(name, err)
			return err
		}
	}

	for _, name := range wheel.Attributes {
		value, ok := attrs[name]
		if !ok {
			continue
		}
		switch name {
		case wheel.AttrOptions:
			decoded, err := decodeOptions([]byte(value))
			if err != nil {
				w.reject(name, err)
				return err
			}
			opts = decoded
		case wheel.AttrDisableAffectsText:
			next.DisableAffectsText = value != "false"
		default:
			f := fields[name]
			v, err := parseFloat(name, value)
			if err == nil {
				v, err = f.check(v)
			}
			if err != nil {
				w.reject(name, err)
				return err
			}
			*f.dst = v
		}
	}

	w.appearance = next
	if opts != nil {
		w.replaceOptions(opts)
	}
	w.render()
	return nil
}

// Attributes returns the current configuration in attribute form.
func (w *Widget) Attributes() map[string]string {
	opts, err := json.Marshal(wheel.CloneOptions(w.options))
	if err != nil {
		opts = []byte("[]")
	}
	a := w.appearance
	return map[string]string{
		wheel.AttrOptions:            string(opts),
		wheel.AttrWheelRadius:        formatFloat(a.WheelRadius),
		wheel.AttrRingThickness:      formatFloat(a.RingThickness),
		wheel.AttrPerspectiveAngleX:  formatFloat(a.PerspectiveAngleX),
		wheel.AttrFontSizeScale:      formatFloat(a.FontSizeScale),
		wheel.AttrBevelIntensity:     formatFloat(a.BevelIntensity),
		wheel.AttrRingExtrusion:      formatFloat(a.RingExtrusion),
		wheel.AttrDisabledOpacity:    formatFloat(a.DisabledOpacity),
		wheel.AttrDisabledSaturation: formatFloat(a.DisabledSaturation),
		wheel.AttrDisableAffectsText: strconv.FormatBool(a.DisableAffectsText),
	}
}

type floatField struct {
	check func(float64) (float64, error)
	dst   *float64
}

// floatFields maps numeric attribute names to their rule and storage in a.
func floatFields(a *wheel.Appearance) map[string]floatField {
	return map[string]floatField{
		wheel.AttrWheelRadius:        {wheel.CheckWheelRadius, &a.WheelRadius},
		wheel.AttrRingThickness:      {wheel.CheckRingThickness, &a.RingThickness},
		wheel.AttrPerspectiveAngleX:  {wheel.CheckPerspectiveAngleX, &a.PerspectiveAngleX},
		wheel.AttrFontSizeScale:      {wheel.CheckFontSizeScale, &a.FontSizeScale},
		wheel.AttrBevelIntensity:     {wheel.CheckBevelIntensity, &a.BevelIntensity},
		wheel.AttrRingExtrusion:      {wheel.CheckRingExtrusion, &a.RingExtrusion},
		wheel.AttrDisabledOpacity:    {wheel.CheckDisabledOpacity, &a.DisabledOpacity},
		wheel.AttrDisabledSaturation: {wheel.CheckDisabledSaturation, &a.DisabledSaturation},
	}
}

func parseFloat(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "%s: %q is not a number", name, value)
	}
	return v, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
