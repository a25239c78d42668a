package observer

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/observer/core/logger"
)

// Receiver is the capability of receiving messages of type T.
// Implementations are wrapped by an Observer to take part in subject relationships.
type Receiver[T any] interface {
	// Update is called synchronously by Subject.Notify for every delivered message.
	Update(msg T)
}

// ReceiverFunc adapts an ordinary function to the Receiver interface.
type ReceiverFunc[T any] func(msg T)

// Update calls f(msg).
func (f ReceiverFunc[T]) Update(msg T) {
	f(msg)
}

// Observer tracks the subjects a Receiver is attached to, so that the relationships
// can be severed from the observer side.
//
// The zero value is not usable; create observers with NewObserver or NewObserverFunc.
// Observers are not safe for concurrent use.
type Observer[T any] struct {
	receiver Receiver[T]
	subjects []*Subject[T]
	closed   bool
	opts     options
}

// NewObserver creates an observer delivering messages to r.
//
// Example:
//
//	type App struct {
//	    *observer.Observer[WindowEvent]
//	}
//
//	app := &App{}
//	app.Observer = observer.NewObserver[WindowEvent](app)
func NewObserver[T any](r Receiver[T], opts ...Option) *Observer[T] {
	return &Observer[T]{
		receiver: r,
		opts:     newOptions(opts),
	}
}

// NewObserverFunc creates an observer calling fn for every message.
//
// Example:
//
//	o := observer.NewObserverFunc(func(msg int) {
//	    fmt.Println("received", msg)
//	})
func NewObserverFunc[T any](fn func(msg T), opts ...Option) *Observer[T] {
	return NewObserver[T](ReceiverFunc[T](fn), opts...)
}

// ID returns the identifier used for this observer in logs.
func (o *Observer[T]) ID() string {
	return o.opts.id
}

// Receiver returns the receiver messages are delivered to.
func (o *Observer[T]) Receiver() Receiver[T] {
	return o.receiver
}

// Subjects returns a snapshot of the subjects this observer is attached to.
// The order is unspecified.
func (o *Observer[T]) Subjects() []*Subject[T] {
	return slices.Clone(o.subjects)
}

// Len returns the number of subjects this observer is attached to.
func (o *Observer[T]) Len() int {
	return len(o.subjects)
}

// IsAttachedTo reports whether the observer is attached to s, including a pending attachment
// made while s was notifying.
func (o *Observer[T]) IsAttachedTo(s *Subject[T]) bool {
	return s != nil && slices.Contains(o.subjects, s)
}

// Closed reports whether Close has been called.
func (o *Observer[T]) Closed() bool {
	return o.closed
}

// Close detaches the observer from every subject it is attached to and marks it closed.
// A subject that is currently notifying skips the observer for the rest of that round.
// Closing an already closed observer is a no-op.
func (o *Observer[T]) Close() {
	if o.closed {
		return
	}

	n := len(o.subjects)
	o.detachAllSubjects()
	o.closed = true

	o.opts.logger.Debug("observer closed",
		logger.ObserverID(o.opts.id),
		logger.Count("subjects", n))
}

// Clone creates an observer for receiver r attached to every subject o is attached to.
// The source keeps its relationships.
func (o *Observer[T]) Clone(r Receiver[T], opts ...Option) *Observer[T] {
	clone := NewObserver(r, append(o.opts.inherit(), opts...)...)
	clone.attachAllSubjects(o.Subjects())
	return clone
}

// Move creates an observer for receiver r that takes over every relationship of o.
// The source is left with no subjects but stays usable.
func (o *Observer[T]) Move(r Receiver[T], opts ...Option) *Observer[T] {
	moved := NewObserver(r, append(o.opts.inherit(), opts...)...)
	moved.attachAllSubjects(o.subjects)
	o.detachAllSubjects()
	return moved
}

// CopyFrom replaces the relationships of o with those of src: o is first detached from all
// of its subjects, then attached to every subject src is attached to. Copying from itself
// is a no-op.
func (o *Observer[T]) CopyFrom(src *Observer[T]) error {
	if src == nil {
		return o.violation(ErrNilObserver, "copy observer")
	}
	if src == o {
		return nil
	}
	if o.closed {
		return o.violation(ErrObserverClosed, "copy observer")
	}

	o.detachAllSubjects()
	o.attachAllSubjects(src.Subjects())
	return nil
}

// MoveFrom replaces the relationships of o with those of src and leaves src with none.
// Moving from itself is a no-op.
func (o *Observer[T]) MoveFrom(src *Observer[T]) error {
	if src == nil {
		return o.violation(ErrNilObserver, "move observer")
	}
	if src == o {
		return nil
	}
	if o.closed {
		return o.violation(ErrObserverClosed, "move observer")
	}

	o.detachAllSubjects()
	o.attachAllSubjects(src.subjects)
	src.detachAllSubjects()
	return nil
}

// addSubject records s on the observer side only.
func (o *Observer[T]) addSubject(s *Subject[T]) {
	o.subjects = append(o.subjects, s)
}

// removeSubject forgets s on the observer side only.
func (o *Observer[T]) removeSubject(s *Subject[T]) {
	if i := slices.Index(o.subjects, s); i >= 0 {
		o.subjects = slices.Delete(o.subjects, i, i+1)
	}
}

// detachAllSubjects severs every relationship without touching the closed flag.
func (o *Observer[T]) detachAllSubjects() {
	for _, s := range o.subjects {
		s.removeObserver(o)
	}
	o.subjects = nil
}

// attachAllSubjects attaches o to every subject in subjects through the public protocol,
// so subjects that are notifying put o on their pending list.
func (o *Observer[T]) attachAllSubjects(subjects []*Subject[T]) {
	for _, s := range subjects {
		if err := s.Attach(o); err != nil {
			o.opts.logger.Warn("failed to attach observer to subject",
				logger.ObserverID(o.opts.id),
				logger.SubjectID(s.ID()),
				logger.Error(err))
		}
	}
}

func (o *Observer[T]) violation(err error, action string) error {
	return violation(o.opts, err, action, logger.ObserverID(o.opts.id))
}

// violation reports a broken precondition: logged and returned, or raised in strict mode.
func violation(opts options, err error, action string, attrs ...slog.Attr) error {
	if opts.strict {
		panic(err)
	}

	args := make([]any, 0, len(attrs)+2)
	args = append(args, logger.Action(action), logger.Error(err))
	for _, a := range attrs {
		args = append(args, a)
	}
	opts.logger.Warn("observer precondition violated", args...)

	return err
}
