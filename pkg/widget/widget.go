package widget

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dialoguewheel/pkg/observability"
	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// Option configures a Widget at construction.
type Option func(*config)

type config struct {
	logger     *log.Logger
	surface    Surface
	appearance wheel.Appearance
	options    []wheel.Option
	id         string
}

// WithLogger sets the logger for rejected input and render diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSurface sets where frames are presented.
func WithSurface(s Surface) Option {
	return func(c *config) {
		if s != nil {
			c.surface = s
		}
	}
}

// WithAppearance sets the initial appearance. Fields that fail validation
// keep their defaults.
func WithAppearance(a wheel.Appearance) Option {
	return func(c *config) { c.appearance = a }
}

// WithOptions sets the initial option list.
func WithOptions(opts []wheel.Option) Option {
	return func(c *config) { c.options = wheel.CloneOptions(opts) }
}

// WithID sets the instance id. It namespaces the lighting filter so several
// wheels can share one document.
func WithID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.id = id
		}
	}
}

// Selection is the payload of a selection notification.
type Selection struct {
	Index  int          `json:"index"`
	Option wheel.Option `json:"option"`
}

type subscriber struct {
	id int
	fn func(Selection)
}

// Widget is a dialogue wheel controller.
type Widget struct {
	id      string
	logger  *log.Logger
	surface Surface

	appearance wheel.Appearance
	options    []wheel.Option
	selected   int

	frame    Frame
	revision uint64
	builds   uint64

	subs   []subscriber
	nextID int
}

// New constructs a widget and presents its first frame.
func New(opts ...Option) *Widget {
	c := config{
		logger:     log.New(io.Discard),
		surface:    NullSurface{},
		appearance: wheel.DefaultAppearance(),
		options:    []wheel.Option{},
		id:         uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	w := &Widget{
		id:       c.id,
		logger:   c.logger.With("widget", c.id),
		surface:  c.surface,
		selected: -1,
	}

	a, err := c.appearance.Normalize(wheel.DefaultAppearance())
	if err != nil {
		w.reject("appearance", err)
	}
	w.appearance = a

	if err := wheel.ValidateOptions(c.options); err != nil {
		w.reject(wheel.AttrOptions, err)
		c.options = []wheel.Option{}
	}
	w.options = c.options

	w.render()
	return w
}

// ID returns the instance id.
func (w *Widget) ID() string { return w.id }

// FilterID returns the id of the lighting filter in this widget's scenes.
func (w *Widget) FilterID() string { return geometry.DefaultFilterID + "-" + w.id }

// Frame returns the last presented frame.
func (w *Widget) Frame() Frame { return w.frame }

// render rebuilds the scene and presents it with fresh handlers.
func (w *Widget) render() {
	start := time.Now()
	scene := geometry.Build(w.options, w.appearance, geometry.WithFilterID(w.FilterID()))

	handlers := make(map[int]func() bool, len(w.options))
	for _, l := range scene.Layers {
		if !l.Top() || !l.Clickable {
			continue
		}
		index := l.Index
		handlers[index] = func() bool { return w.Select(index) }
	}

	w.builds++
	w.frame = Frame{
		Scene:    scene,
		Options:  wheel.CloneOptions(w.options),
		Build:    w.builds,
		handlers: handlers,
	}
	w.present()

	elapsed := time.Since(start)
	w.logger.Debug("rendered", "segments", len(scene.Sectors), "layers", len(scene.Layers), "took", elapsed)
	observability.Widget().OnRender(w.id, len(scene.Sectors), len(scene.Layers), elapsed)
}

// present stamps the current selection on the frame and hands it to the
// surface.
func (w *Widget) present() {
	w.revision++
	w.frame.Selected = w.selected
	w.frame.Revision = w.revision
	w.surface.Present(w.frame)
}

func (w *Widget) reject(field string, err error) {
	w.logger.Warn("rejected update", "field", field, "err", err)
	observability.Widget().OnReject(w.id, field, err)
}
