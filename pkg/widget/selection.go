package widget

import (
	"slices"

	"github.com/matzehuels/dialoguewheel/pkg/observability"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// SelectedIndex returns the selected index, or -1.
func (w *Widget) SelectedIndex() int { return w.selected }

// SelectedOption returns a copy of the selected option.
func (w *Widget) SelectedOption() (wheel.Option, bool) {
	if !wheel.Selectable(w.options, w.selected) {
		return wheel.Option{}, false
	}
	return w.options[w.selected], true
}

// Select commits index as the selection and notifies subscribers. Disabled
// and out-of-range indices are ignored and return false.
func (w *Widget) Select(index int) bool {
	if !wheel.Selectable(w.options, index) {
		return false
	}
	w.selected = index
	w.present()

	opt := w.options[index]
	w.logger.Debug("selected", "index", index, "option", opt.Text)
	observability.Widget().OnSelect(w.id, index)

	// Subscribers may unsubscribe or select again while being notified.
	for _, s := range slices.Clone(w.subs) {
		s.fn(Selection{Index: index, Option: opt})
	}
	return true
}

// Click activates segment index through the handler bound in the current
// frame. Disabled segments have no handler.
func (w *Widget) Click(index int) bool { return w.frame.Click(index) }

// ClickAt activates the segment under (x, y) in wheel coordinates.
func (w *Widget) ClickAt(x, y float64) bool { return w.frame.ClickAt(x, y) }

// Subscribe registers fn for selection notifications. The returned function
// removes it again and may be called more than once.
func (w *Widget) Subscribe(fn func(Selection)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	w.nextID++
	id := w.nextID
	w.subs = append(w.subs, subscriber{id: id, fn: fn})
	return func() {
		w.subs = slices.DeleteFunc(w.subs, func(s subscriber) bool { return s.id == id })
	}
}
