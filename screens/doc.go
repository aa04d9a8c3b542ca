// Package screens contains the concrete screens pushed on the app's stack.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (meal form, photo picker)
// - screen-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing and key registry ownership
// - low-level widget rendering primitives
package screens
