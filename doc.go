// Package observer is the index of a small library implementing the subject/observer
// relationship with safe handling of relationship changes made while a subject is notifying.
//
// # Package Organization
//
// The library is organized into three categories:
//
//   - Core: the relationship primitives and the ambient packages they use
//   - Utilities: clients built on the core
//   - Commands: runnable demos
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/observer/core/observer
//	go doc -all github.com/dmitrymomot/observer/pkg/windowevent
//
// # Core Packages
//
//	github.com/dmitrymomot/observer/core/observer   - Generic Subject and Observer with reentrancy-safe notify
//	github.com/dmitrymomot/observer/core/logger     - Structured logging built on slog
//	github.com/dmitrymomot/observer/core/config     - Type-safe environment variable loading
//
// # Utility Packages
//
//	github.com/dmitrymomot/observer/pkg/windowevent - Window subject and App observer for window lifecycle events
//
// # Commands
//
//	github.com/dmitrymomot/observer/cmd/windowevent - Replays a window lifecycle through the windowevent package
//
// # Architecture Patterns
//
//   - Generics for type-safe message delivery
//   - Functional options for configuration
//   - Sentinel errors checked with errors.Is
//   - Both sides of a relationship are kept in agreement at all times
//
// # Example Usage
//
//	import (
//		"fmt"
//
//		"github.com/dmitrymomot/observer/core/observer"
//	)
//
//	func main() {
//		prices := observer.NewSubject[float64]()
//		defer prices.Close()
//
//		ticker := observer.NewObserverFunc(func(p float64) {
//			fmt.Printf("price: %.2f\n", p)
//		})
//		defer ticker.Close()
//
//		if err := prices.Attach(ticker); err != nil {
//			panic(err)
//		}
//
//		prices.Notify(42.5)
//	}
package observer
