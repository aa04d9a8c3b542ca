// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the root model, screen stack routing and message contracts
// - the key registry and its default bindings
// - header, status bar and footer chrome
//
// Not allowed here:
// - concrete screen implementations (meal form, photo picker)
// - low-level widget rendering primitives
package core
