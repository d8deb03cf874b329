// Package io reads and writes wheel option lists and appearance files.
//
// # Option Files
//
// An option list is an ordered array of entries with text, color, and a
// disabled flag. Index 0 is drawn at the top of the wheel and the rest
// follow clockwise:
//
//	[
//	  {"text": "[Bribe] Here's 50 gold.", "color": "#2ecc71"},
//	  {"text": "[Attack!]", "color": "#c0392b", "disabled": true}
//	]
//
// The same list in YAML is a sequence of mappings. JSON and YAML files may
// also wrap the array in an object under "options". TOML has no top-level
// arrays, so TOML files always use a table array:
//
//	[[options]]
//	text = "[Bribe] Here's 50 gold."
//	color = "#2ecc71"
//
// # Fields
//
//   - text: label shown at the end of the leader line
//   - color: #rgb or #rrggbb; empty selects the default segment color
//   - disabled: the option is drawn dimmed and cannot be selected
//
// # Import
//
// Use [ImportOptions] to read a file (the decoder follows the extension) or
// [ReadOptions] to read from any io.Reader:
//
//	opts, err := io.ImportOptions("dialogue.yaml")
//
// Every entry is validated after decoding. Errors carry codes from
// [github.com/matzehuels/dialoguewheel/pkg/errors]: INVALID_FORMAT for input
// that does not decode, INVALID_OPTIONS for a bad entry, FILE_NOT_FOUND, and
// UNSUPPORTED for unknown extensions.
//
// # Appearance Files
//
// [ImportAppearance] reads a TOML table with the snake_case names of
// [wheel.Appearance]. Missing keys keep their defaults:
//
//	wheel_radius = 90
//	ring_extrusion = 35
//	bevel_intensity = 0.5
//
// # Export
//
// [ExportOptions] and [WriteOptions] write lists back in any format, and
// [WriteAppearance] writes an appearance table. Exported files re-import
// identically.
package io
