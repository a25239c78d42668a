// Package windowevent is a small client of the observer package: a Window subject that
// reports lifecycle changes and an App observer that prints them.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/observer/pkg/windowevent"
//
//	app := windowevent.NewApp(os.Stdout)
//	window := windowevent.NewWindow()
//	defer window.Destroy()
//
//	if err := window.Attach(app.Observer); err != nil {
//		return err
//	}
//
//	window.Open()
//	window.Resize(128, 96)
//	window.SetFocus(true)
//
// Output:
//
//	The window opened!
//	The window resized to: (128, 96)
//	The window's focus changed and now it... has focus
//
// Events the App has no line for, such as Minimized, are reported with a generic message.
package windowevent
