package widget

import (
	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// Surface receives every frame a widget produces. Present replaces whatever
// the surface showed before.
type Surface interface {
	Present(Frame)
}

// SurfaceFunc adapts a function to a Surface.
type SurfaceFunc func(Frame)

// Present calls f(fr).
func (f SurfaceFunc) Present(fr Frame) { f(fr) }

// NullSurface discards frames.
type NullSurface struct{}

// Present does nothing.
func (NullSurface) Present(Frame) {}

// Frame is one presented state of a widget: the scene, the option list it was
// built from, the selected marker, and handlers bound to clickable segments.
type Frame struct {
	Scene    geometry.Scene
	Options  []wheel.Option
	Selected int
	// Revision increases by one with every presented frame.
	Revision uint64
	// Build increases with every scene rebuild. Frames that only move the
	// selected marker keep the build of the scene they show.
	Build uint64

	handlers map[int]func() bool
}

// Clickable reports whether segment index carries a click handler.
func (f Frame) Clickable(index int) bool {
	_, ok := f.handlers[index]
	return ok
}

// Click runs the handler bound to segment index. It returns false when the
// segment has none.
func (f Frame) Click(index int) bool {
	h, ok := f.handlers[index]
	if !ok {
		return false
	}
	return h()
}

// ClickAt hit-tests (x, y) in wheel coordinates and clicks the segment found.
func (f Frame) ClickAt(x, y float64) bool {
	i := f.Scene.HitTest(x, y)
	if i < 0 {
		return false
	}
	return f.Click(i)
}
