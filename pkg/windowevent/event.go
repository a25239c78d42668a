package windowevent

// EventType identifies what happened to a window.
type EventType int

const (
	Opened EventType = iota
	Closed
	Resized
	FocusChanged
	Minimized
)

// String returns the lowercase event name, used as a log attribute.
func (t EventType) String() string {
	switch t {
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	case Resized:
		return "resized"
	case FocusChanged:
		return "focus_changed"
	case Minimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Event is the message a Window broadcasts to its observers.
// Width and Height are set for Resized, HasFocus for FocusChanged.
type Event struct {
	Source   *Window
	Type     EventType
	Width    int
	Height   int
	HasFocus bool
}
