package observer

import "errors"

var (
	// ErrNilObserver is returned when a nil observer is attached or detached.
	ErrNilObserver = errors.New("observer is nil")

	// ErrNilSubject is returned when a nil subject is used as a copy or move source.
	ErrNilSubject = errors.New("subject is nil")

	// ErrAlreadyAttached is returned when the observer is already related to the subject,
	// either as an active observer or as one pending activation.
	ErrAlreadyAttached = errors.New("observer already attached to subject")

	// ErrNotAttached is returned when detaching an observer that is not related to the subject.
	ErrNotAttached = errors.New("observer not attached to subject")

	// ErrRecursiveNotify is returned when Notify is called on a subject that is already notifying.
	ErrRecursiveNotify = errors.New("subject is already notifying")

	// ErrSubjectClosed is returned when operating on a subject after Close.
	ErrSubjectClosed = errors.New("subject is closed")

	// ErrObserverClosed is returned when attaching an observer after Close.
	ErrObserverClosed = errors.New("observer is closed")

	// ErrObserverPanicked wraps a panic recovered from an observer's Update.
	ErrObserverPanicked = errors.New("observer panicked")
)
