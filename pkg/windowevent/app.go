package windowevent

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/observer/core/logger"
	"github.com/dmitrymomot/observer/core/observer"
)

// App observes windows and writes one line per event.
type App struct {
	*observer.Observer[Event]

	out     io.Writer
	log     *slog.Logger
	obsOpts []observer.Option
}

// AppOption configures an App.
type AppOption func(*App)

// WithAppLogger logs every received event at debug level.
func WithAppLogger(log *slog.Logger) AppOption {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithObserverOptions passes options to the App's underlying observer.
func WithObserverOptions(opts ...observer.Option) AppOption {
	return func(a *App) {
		a.obsOpts = append(a.obsOpts, opts...)
	}
}

// NewApp creates an App writing to out. Attach it to a window with window.Attach(app.Observer).
func NewApp(out io.Writer, opts ...AppOption) *App {
	a := &App{
		out: out,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Observer = observer.NewObserver[Event](a, a.obsOpts...)

	return a
}

// Update implements observer.Receiver.
func (a *App) Update(evt Event) {
	a.log.Debug("window event received",
		logger.ObserverID(a.ID()),
		logger.Event(evt.Type.String()))

	var line string
	switch evt.Type {
	case Opened:
		line = "The window opened!"
	case Closed:
		line = "The window closed!"
	case Resized:
		line = fmt.Sprintf("The window resized to: (%d, %d)", evt.Width, evt.Height)
	case FocusChanged:
		state := "lost focus"
		if evt.HasFocus {
			state = "has focus"
		}
		line = "The window's focus changed and now it... " + state
	default:
		line = "Got a window message I couldn't handle!"
	}

	if _, err := fmt.Fprintln(a.out, line); err != nil {
		a.log.Warn("failed to write window event", logger.Error(err))
	}
}
