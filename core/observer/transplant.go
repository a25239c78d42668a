package observer

import "github.com/dmitrymomot/observer/core/logger"

// Clone creates a subject attached to every observer of s, active and pending, in the same
// order. The source keeps its relationships, so each observer ends up watching both.
func (s *Subject[T]) Clone(opts ...Option) *Subject[T] {
	clone := NewSubject[T](append(s.opts.inherit(), opts...)...)
	clone.attachFrom(s)
	return clone
}

// Move creates a subject that takes over every relationship of s. The source is left with
// no observers but stays usable for new attachments. Moving a subject that is notifying
// stops delivery to the observers not yet visited in that round.
func (s *Subject[T]) Move(opts ...Option) *Subject[T] {
	moved := NewSubject[T](append(s.opts.inherit(), opts...)...)
	moved.attachFrom(s)
	s.DetachAll()
	return moved
}

// CopyFrom detaches every observer of s, then attaches s to every observer of src.
// Copying from itself is a no-op.
//
// Example:
//
//	backup := observer.NewSubject[int]()
//	backup.CopyFrom(primary) // primary's observers now also observe backup
func (s *Subject[T]) CopyFrom(src *Subject[T]) error {
	if err := s.checkSource(src, "copy subject"); err != nil || src == s {
		return err
	}

	s.DetachAll()
	s.attachFrom(src)
	return nil
}

// MoveFrom detaches every observer of s, takes over every relationship of src and leaves
// src with none. Moving from itself is a no-op.
func (s *Subject[T]) MoveFrom(src *Subject[T]) error {
	if err := s.checkSource(src, "move subject"); err != nil || src == s {
		return err
	}

	s.DetachAll()
	s.attachFrom(src)
	src.DetachAll()
	return nil
}

func (s *Subject[T]) checkSource(src *Subject[T], action string) error {
	if src == nil {
		return s.violation(ErrNilSubject, action)
	}
	if s.closed {
		return s.violation(ErrSubjectClosed, action)
	}
	return nil
}

// attachFrom attaches s to the live observers of src followed by its pending ones.
// Tombstones left by a detach during src's notify are skipped.
func (s *Subject[T]) attachFrom(src *Subject[T]) {
	for _, o := range src.Observers() {
		if err := s.Attach(o); err != nil {
			s.opts.logger.Warn("failed to transplant observer",
				logger.SubjectID(s.opts.id),
				logger.ObserverID(o.ID()),
				logger.Error(err))
		}
	}
}
