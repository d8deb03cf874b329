// Package wheel defines the data model of the dialogue wheel: the ordered
// option list and the appearance configuration, together with the
// validation and clamping rules every setter of the widget applies.
//
// # Options
//
// An [Option] is one selectable entry. The slice order defines angular
// position: index 0 starts at 12 o'clock and the remaining options follow
// clockwise.
//
// # Appearance
//
// [Appearance] holds the numeric controls of the renderer. Each field has a
// Check function ([CheckWheelRadius], [CheckBevelIntensity], ...) that
// returns the value that would be stored, or a coded error when the input is
// rejected. Fields with a closed range are clamped; fields that must be
// positive are rejected:
//
//	r, err := wheel.CheckWheelRadius(-5)      // err: INVALID_CONFIG, r unused
//	o, _ := wheel.CheckDisabledOpacity(1.5)    // o == 1
//
// [Appearance.Normalize] applies every rule at once and is used when loading
// configuration files.
package wheel
