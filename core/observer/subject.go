package observer

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/observer/core/logger"
)

// Subject broadcasts messages of type T to its attached observers, in attachment order.
//
// Relationship changes made from inside an observer's Update are safe: detached observers
// are tombstoned and skipped for the rest of the round, observers attached mid-round are
// held on a pending list and only receive later messages, and closing the subject stops
// the round immediately.
//
// The zero value is not usable; create subjects with NewSubject.
// Subjects are not safe for concurrent use.
type Subject[T any] struct {
	// observers is the delivery list. A nil slot is a tombstone left by a detach during notify.
	observers []*Observer[T]
	// pending holds observers attached during notify, activated once the round ends.
	pending   []*Observer[T]
	notifying bool
	// deleted points at the deletion flag of the Notify call in progress, if any.
	deleted *bool
	closed  bool
	opts    options
}

// NewSubject creates an empty subject.
//
// Example:
//
//	subject := observer.NewSubject[int](observer.WithLogger(log))
//	subject.Attach(observer.NewObserverFunc(func(n int) { fmt.Println(n) }))
//	subject.Notify(42)
func NewSubject[T any](opts ...Option) *Subject[T] {
	return &Subject[T]{
		opts: newOptions(opts),
	}
}

// ID returns the identifier used for this subject in logs.
func (s *Subject[T]) ID() string {
	return s.opts.id
}

// Observers returns a snapshot of the attached observers: active observers in delivery order,
// followed by observers pending activation.
func (s *Subject[T]) Observers() []*Observer[T] {
	out := make([]*Observer[T], 0, len(s.observers)+len(s.pending))
	for _, o := range s.observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return append(out, s.pending...)
}

// Len returns the number of attached observers, pending ones included.
func (s *Subject[T]) Len() int {
	n := len(s.pending)
	for _, o := range s.observers {
		if o != nil {
			n++
		}
	}
	return n
}

// IsAttached reports whether o is attached to the subject, pending or active.
func (s *Subject[T]) IsAttached(o *Observer[T]) bool {
	return o != nil && s.contains(o)
}

// Notifying reports whether a Notify call for this subject is in progress.
func (s *Subject[T]) Notifying() bool {
	return s.notifying
}

// Closed reports whether Close has been called.
func (s *Subject[T]) Closed() bool {
	return s.closed
}

// Attach relates o to the subject. An observer attached while the subject is notifying
// does not receive the message in flight, only subsequent ones.
//
// Returns ErrNilObserver, ErrAlreadyAttached, ErrSubjectClosed or ErrObserverClosed when
// the relationship cannot be established.
func (s *Subject[T]) Attach(o *Observer[T]) error {
	if o == nil {
		return s.violation(ErrNilObserver, "attach")
	}
	if s.closed {
		return s.violation(ErrSubjectClosed, "attach", logger.ObserverID(o.ID()))
	}
	if o.closed {
		return s.violation(ErrObserverClosed, "attach", logger.ObserverID(o.ID()))
	}
	if s.contains(o) {
		return s.violation(ErrAlreadyAttached, "attach", logger.ObserverID(o.ID()))
	}

	o.addSubject(s)
	s.addObserver(o)

	s.opts.logger.Debug("observer attached",
		logger.SubjectID(s.opts.id),
		logger.ObserverID(o.ID()),
		logger.Key("pending", s.notifying))

	return nil
}

// Detach removes the relationship between the subject and o. Detaching during notify
// stops delivery to o for the rest of the round; observers already visited are unaffected.
//
// Returns ErrNilObserver, ErrNotAttached or ErrSubjectClosed when there is nothing to detach.
func (s *Subject[T]) Detach(o *Observer[T]) error {
	if o == nil {
		return s.violation(ErrNilObserver, "detach")
	}
	if s.closed {
		return s.violation(ErrSubjectClosed, "detach", logger.ObserverID(o.ID()))
	}
	if !s.contains(o) {
		return s.violation(ErrNotAttached, "detach", logger.ObserverID(o.ID()))
	}

	o.removeSubject(s)
	s.removeObserver(o)

	s.opts.logger.Debug("observer detached",
		logger.SubjectID(s.opts.id),
		logger.ObserverID(o.ID()))

	return nil
}

// DetachAll detaches every observer, including those pending activation.
// During notify, observers not yet visited in the current round receive nothing more.
func (s *Subject[T]) DetachAll() {
	// Detach mutates s.observers, so walk a snapshot.
	snapshot := slices.Clone(s.observers)
	n := 0
	for _, o := range snapshot {
		if o == nil {
			continue
		}
		o.removeSubject(s)
		s.removeObserver(o)
		n++
	}

	for _, o := range s.pending {
		o.removeSubject(s)
		n++
	}
	s.pending = nil

	if n > 0 {
		s.opts.logger.Debug("all observers detached",
			logger.SubjectID(s.opts.id),
			logger.Count("observers", n))
	}
}

// Notify synchronously delivers msg to every attached observer in attachment order.
//
// Observers may attach, detach, detach all or close the subject from inside Update.
// If the subject is closed during the round, delivery stops right after the observer that
// closed it. A recursive Notify on the same subject delivers nothing and returns
// ErrRecursiveNotify. A panicking observer is recovered and reported in the returned error,
// wrapping ErrObserverPanicked, while delivery continues with the next observer.
func (s *Subject[T]) Notify(msg T) error {
	if s.closed {
		return s.violation(ErrSubjectClosed, "notify")
	}
	if s.notifying {
		return s.violation(ErrRecursiveNotify, "notify")
	}

	start := time.Now()
	deleted := false
	s.notifying = true
	s.deleted = &deleted

	var errs []error
	delivered := 0

	// Range by index: slots may turn nil, but the slice is never resized during the round.
	for i := range s.observers {
		if o := s.observers[i]; o != nil {
			if err := s.deliver(o, msg); err != nil {
				errs = append(errs, err)
			}
			delivered++
		}

		if deleted {
			// The subject was closed by the observer just visited; it has already
			// severed every relationship.
			return errors.Join(errs...)
		}
	}

	s.deleted = nil
	s.notifying = false

	pruned := len(s.observers)
	s.observers = slices.DeleteFunc(s.observers, func(o *Observer[T]) bool { return o == nil })
	pruned -= len(s.observers)

	activated := len(s.pending)
	s.observers = append(s.observers, s.pending...)
	s.pending = nil

	s.opts.logger.Debug("subject notified",
		logger.SubjectID(s.opts.id),
		logger.Count("delivered", delivered),
		logger.Count("pruned", pruned),
		logger.Count("activated", activated),
		logger.Errors(errs...),
		logger.Duration(time.Since(start)))

	return errors.Join(errs...)
}

// Close severs every relationship and marks the subject closed. When called from inside an
// observer's Update, the Notify call in progress stops after that observer returns.
// Closing an already closed subject is a no-op.
func (s *Subject[T]) Close() {
	if s.closed {
		return
	}

	if s.deleted != nil {
		*s.deleted = true
		s.deleted = nil
	}

	n := 0
	for _, o := range s.observers {
		if o != nil {
			o.removeSubject(s)
			n++
		}
	}
	for _, o := range s.pending {
		o.removeSubject(s)
		n++
	}

	s.observers = nil
	s.pending = nil
	s.notifying = false
	s.closed = true

	s.opts.logger.Debug("subject closed",
		logger.SubjectID(s.opts.id),
		logger.Count("observers", n))
}

// deliver calls o's receiver, converting a panic into an error.
func (s *Subject[T]) deliver(o *Observer[T], msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: observer %s: %v", ErrObserverPanicked, o.ID(), r)
			s.opts.logger.Error("observer panicked during notify",
				logger.SubjectID(s.opts.id),
				logger.ObserverID(o.ID()),
				logger.Key("panic", r))
		}
	}()

	o.receiver.Update(msg)
	return nil
}

func (s *Subject[T]) contains(o *Observer[T]) bool {
	return slices.Contains(s.observers, o) || slices.Contains(s.pending, o)
}

// addObserver records o on the subject side only.
func (s *Subject[T]) addObserver(o *Observer[T]) {
	if s.notifying {
		s.pending = append(s.pending, o)
		return
	}
	s.observers = append(s.observers, o)
}

// removeObserver forgets o on the subject side only. During notify an active observer
// is tombstoned instead of erased, keeping the slots being iterated stable.
func (s *Subject[T]) removeObserver(o *Observer[T]) {
	if !s.notifying {
		if i := slices.Index(s.observers, o); i >= 0 {
			s.observers = slices.Delete(s.observers, i, i+1)
		}
		return
	}

	if i := slices.Index(s.pending, o); i >= 0 {
		s.pending = slices.Delete(s.pending, i, i+1)
		return
	}

	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers[i] = nil
	}
}

func (s *Subject[T]) violation(err error, action string, attrs ...slog.Attr) error {
	return violation(s.opts, err, action, append([]slog.Attr{logger.SubjectID(s.opts.id)}, attrs...)...)
}
