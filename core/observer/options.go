package observer

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Subject or an Observer.
type Option func(*options)

type options struct {
	id     string
	logger *slog.Logger
	strict bool
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.id == "" {
		o.id = uuid.New().String()
	}

	return o
}

// inherit returns the options a clone starts with: same logger and strictness, fresh ID.
func (o options) inherit() []Option {
	return []Option{WithLogger(o.logger), withStrict(o.strict)}
}

// WithLogger configures structured logging for relationship changes and deliveries.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithID overrides the generated UUID used to identify the instance in logs.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithStrict makes precondition violations panic with the matching sentinel error
// instead of returning it. Useful in tests and development builds.
//
// Example:
//
//	subject := observer.NewSubject[int](observer.WithStrict())
//	subject.Attach(nil) // panics: observer is nil
func WithStrict() Option {
	return withStrict(true)
}

func withStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
