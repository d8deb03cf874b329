package errors

import (
	"math"
	"regexp"
)

// ValidateFinite rejects NaN and infinities. name is the kebab-case field
// name used in the diagnostic.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects non-finite values and values <= 0.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be > 0, got %v", name, v)
	}
	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates an option color. The empty string is allowed
// and means "use the renderer's default color".
func ValidateHexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "color must be #rgb or #rrggbb, got %q", color)
	}
	return nil
}
