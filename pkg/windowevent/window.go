package windowevent

import (
	"github.com/dmitrymomot/observer/core/observer"
)

// Window is a subject of window events.
//
// Window.Close reports a Closed event; use Destroy to close the underlying subject.
type Window struct {
	*observer.Subject[Event]
}

// NewWindow creates a window with no observers. Options are passed to the underlying subject.
func NewWindow(opts ...observer.Option) *Window {
	return &Window{Subject: observer.NewSubject[Event](opts...)}
}

// Open reports that the window opened.
func (w *Window) Open() error {
	return w.emit(Event{Type: Opened})
}

// Close reports that the window closed. Observers stay attached.
func (w *Window) Close() error {
	return w.emit(Event{Type: Closed})
}

// Resize reports the new window size.
func (w *Window) Resize(width, height int) error {
	return w.emit(Event{Type: Resized, Width: width, Height: height})
}

// SetFocus reports a focus change.
func (w *Window) SetFocus(focused bool) error {
	return w.emit(Event{Type: FocusChanged, HasFocus: focused})
}

// Minimize reports that the window was minimized.
func (w *Window) Minimize() error {
	return w.emit(Event{Type: Minimized})
}

// Destroy detaches every observer and closes the window for good.
// It is safe to call from an observer's Update.
func (w *Window) Destroy() {
	w.Subject.Close()
}

func (w *Window) emit(evt Event) error {
	evt.Source = w
	return w.Notify(evt)
}
