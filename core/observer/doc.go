// Package observer provides a generic, reentrancy-safe subject/observer relationship.
//
// A Subject broadcasts messages of type T to the observers attached to it. Each Observer
// wraps a Receiver and remembers the subjects it is attached to, so either side can sever
// the relationship: closing a subject detaches all its observers, closing an observer
// detaches it from all its subjects.
//
// # Core Components
//
// Receiver is the capability of receiving a message. Implement it on your own type, or use
// ReceiverFunc / NewObserverFunc for plain functions.
//
// Observer holds the receiver and its subject list. Subjects deliver through it.
//
// Subject holds the ordered delivery list and drives Notify.
//
// # Basic Usage
//
//	type WindowEvent struct {
//		Width, Height int
//	}
//
//	window := observer.NewSubject[WindowEvent]()
//	defer window.Close()
//
//	app := observer.NewObserverFunc(func(evt WindowEvent) {
//		fmt.Printf("resized to %dx%d\n", evt.Width, evt.Height)
//	})
//	defer app.Close()
//
//	if err := window.Attach(app); err != nil {
//		return err
//	}
//
//	window.Notify(WindowEvent{Width: 128, Height: 96})
//
// # Changing Relationships During Notify
//
// Notify delivers synchronously, in attachment order. An observer's Update may change the
// subject it is being notified by:
//
//   - Detach (of itself or another observer): the detached observer is skipped for the rest
//     of the round; observers already visited are unaffected.
//   - DetachAll: every observer not yet visited receives nothing more this round.
//   - Attach: the new observer is held on a pending list and first receives the next message.
//   - Close: delivery stops right after the observer that closed the subject, and every
//     remaining relationship is severed.
//
// Detached slots are tombstoned and pruned, and pending observers are appended to the
// delivery list, once the round completes.
//
// A recursive Notify on the same subject is rejected with ErrRecursiveNotify.
//
// # Copying and Moving Relationships
//
// Clone and CopyFrom re-create every relationship of a source on a target, leaving the source
// untouched. Move and MoveFrom do the same and then detach everything from the source, which
// stays usable. CopyFrom and MoveFrom first detach the target's own relationships.
//
//	backup := window.Clone()   // app now observes both window and backup
//	moved := window.Move()     // app observes moved instead of window
//	other.CopyFrom(moved)      // other drops its observers and takes moved's
//
// Observers support the same operations; Clone and Move take the receiver for the new observer.
//
// # Error Handling
//
// Precondition violations return sentinel errors that can be checked with errors.Is:
//
//	err := window.Attach(app)
//	if errors.Is(err, observer.ErrAlreadyAttached) {
//		// app was already attached
//	}
//
// With WithStrict the same violations panic instead. A panicking Update is recovered and
// reported by Notify as an error wrapping ErrObserverPanicked.
//
// # Thread Safety
//
// Subjects and observers are not safe for concurrent use. Callers that share them across
// goroutines must serialize all calls externally.
package observer
