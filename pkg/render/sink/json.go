package sink

import (
	"github.com/goccy/go-json"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	selected   int
	options    []wheel.Option
	appearance *wheel.Appearance
}

// WithJSONSelected records the selected index in the output.
func WithJSONSelected(index int) JSONOption { return func(r *jsonRenderer) { r.selected = index } }

// WithJSONSource records the inputs the scene was built from, so consumers
// can rebuild it with [geometry.Build].
func WithJSONSource(opts []wheel.Option, a wheel.Appearance) JSONOption {
	return func(r *jsonRenderer) {
		r.options = wheel.CloneOptions(opts)
		r.appearance = &a
	}
}

type jsonOutput struct {
	Selected   int               `json:"selected"`
	Options    []wheel.Option    `json:"options,omitempty"`
	Appearance *wheel.Appearance `json:"appearance,omitempty"`
	Scene      geometry.Scene    `json:"scene"`
}

// RenderJSON exports the scene as a pretty-printed JSON document: frame
// size, sectors, every layer path, leader lines, labels, and lighting
// parameters. It does not modify s and is safe to call concurrently.
func RenderJSON(s geometry.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{selected: -1}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{
		Selected:   r.selected,
		Options:    r.options,
		Appearance: r.appearance,
		Scene:      s,
	}, "", "  ")
}
