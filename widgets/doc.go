// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (star row, photo thumbnail, buttons, popup compositor)
// - geometry needed to hit-test what was drawn
//
// Not allowed here:
// - key handling, screen state transitions, or scope logic
package widgets
