package wheel

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
)

// Option is one selectable entry on the wheel.
type Option struct {
	Text     string `json:"text" yaml:"text" toml:"text"`
	Color    string `json:"color" yaml:"color" toml:"color"`
	Disabled bool   `json:"disabled" yaml:"disabled" toml:"disabled"`
}

// String renders the option for log output.
func (o Option) String() string {
	if o.Disabled {
		return fmt.Sprintf("%q (%s, disabled)", o.Text, o.Color)
	}
	return fmt.Sprintf("%q (%s)", o.Text, o.Color)
}

// CloneOptions returns an independent copy of opts. A nil input yields an
// empty, non-nil slice so renders never distinguish nil from empty.
func CloneOptions(opts []Option) []Option {
	if opts == nil {
		return []Option{}
	}
	return slices.Clone(opts)
}

// ValidateOptions checks every option's color. Text is free-form; encoders
// escape it. The returned error names the first offending index.
func ValidateOptions(opts []Option) error {
	for i, o := range opts {
		if err := errors.ValidateHexColor(o.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOptions, err, "option %d", i)
		}
	}
	return nil
}

// EnabledCount returns the number of options that can be selected.
func EnabledCount(opts []Option) int {
	n := 0
	for _, o := range opts {
		if !o.Disabled {
			n++
		}
	}
	return n
}

// Selectable reports whether index refers to an enabled option of opts.
func Selectable(opts []Option, index int) bool {
	return index >= 0 && index < len(opts) && !opts[index].Disabled
}
