// Package widget implements the stateful dialogue wheel controller.
//
// # Overview
//
// A [Widget] owns three pieces of state: the [wheel.Appearance], the ordered
// option list, and the selected index. Every accepted change rebuilds the
// [geometry.Scene] from scratch and presents it on a [Surface] together with
// click handlers for the top-layer segments of enabled options.
//
// # Configuration
//
// Each appearance field has a typed setter and getter:
//
//	w := widget.New(widget.WithOptions(opts))
//	if err := w.SetWheelRadius(90); err != nil {
//	    // rejected; the previous radius is kept and nothing re-renders
//	}
//	w.SetDisabledOpacity(1.5) // clamped, stored as 1
//
// Setters that reject input return a coded error from
// [github.com/matzehuels/dialoguewheel/pkg/errors] and log a warning.
// Clamped fields never reject finite input. [Widget.SetAttribute] mirrors the
// same surface with kebab-case names and string values, which is how markup
// embeddings and the preview server drive a widget.
//
// # Selection
//
// [Widget.Select] is the selection action. It commits the new index, moves the
// selected marker on the surface, and only then notifies subscribers, all
// before it returns. Selecting a disabled or out-of-range index does nothing.
// Re-selecting the current index notifies again with the same payload.
//
//	unsubscribe := w.Subscribe(func(s widget.Selection) {
//	    fmt.Println("picked", s.Option.Text)
//	})
//	defer unsubscribe()
//
// [Widget.Click] dispatches through the handler bound to a segment, and
// [Widget.ClickAt] hit-tests a pointer position first. Disabled segments
// carry no handler.
//
// When the option list is replaced, a selection that still refers to an
// enabled option is kept; otherwise it resets to none.
//
// # Concurrency
//
// A Widget is synchronous and not safe for concurrent use. Callers that share
// one across goroutines serialize access themselves.
package widget
