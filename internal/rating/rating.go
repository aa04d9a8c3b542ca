// Package rating implements the star rating control: a row of tappable stars
// reflecting an integer rating, with per-star accessibility text.
//
// The control holds no rendering state of its own. Every configuration or
// value change re-derives the ordered list of Star descriptors, which a
// renderer maps onto whatever the host UI uses for interactive elements.
package rating

import (
	"errors"
	"fmt"
)

const (
	DefaultStarCount = 5

	resetHint = "Tap to reset the rating to zero."
)

// DefaultStarSize is the size of a single star in points.
var DefaultStarSize = Size{Width: 44, Height: 44}

var (
	ErrInvalidStarSize  = errors.New("star size must be positive")
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Size is a 2D extent in points.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Visual is the rendered state of a star.
type Visual int

const (
	VisualEmpty Visual = iota
	VisualFilled
	VisualHighlighted
)

func (v Visual) String() string {
	switch v {
	case VisualFilled:
		return "filled"
	case VisualHighlighted:
		return "highlighted"
	default:
		return "empty"
	}
}

// Star describes one element of the row.
type Star struct {
	Index       int
	Selected    bool
	Highlighted bool
	Label       string
	Hint        string // empty unless tapping this star clears the rating
	Value       string
}

// Visual folds the selected and highlighted flags into one state.
// A pressed star shows highlighted regardless of selection.
func (s Star) Visual() Visual {
	switch {
	case s.Highlighted:
		return VisualHighlighted
	case s.Selected:
		return VisualFilled
	default:
		return VisualEmpty
	}
}

// Control is the rating widget state. It is not safe for concurrent use;
// it lives on the UI update loop.
type Control struct {
	starCount int
	starSize  Size
	rating    int
	pressed   int // -1 when no star is held
	stars     []Star
	valueText string
}

type Option func(*Control)

func WithStarCount(n int) Option {
	return func(c *Control) { c.starCount = n }
}

// WithStarSize ignores non-positive sizes and keeps the default.
func WithStarSize(s Size) Option {
	return func(c *Control) {
		if s.valid() {
			c.starSize = s
		}
	}
}

func WithRating(r int) Option {
	return func(c *Control) { c.rating = r }
}

func New(opts ...Option) *Control {
	c := &Control{
		starCount: DefaultStarCount,
		starSize:  DefaultStarSize,
		pressed:   -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rating < 0 || c.rating > max(c.starCount, 0) {
		c.rating = 0
	}
	c.rebuild()
	return c
}

// Configure replaces the star count and size, rebuilding every element.
// The rating value is kept as is, even when it exceeds the new count.
func (c *Control) Configure(starCount int, starSize Size) error {
	if !starSize.valid() {
		return fmt.Errorf("configure %vx%v: %w", starSize.Width, starSize.Height, ErrInvalidStarSize)
	}
	c.starCount = starCount
	c.starSize = starSize
	c.rebuild()
	return nil
}

// SetStarCount rebuilds the row with n stars. A non-positive n leaves an
// empty row that ignores taps.
func (c *Control) SetStarCount(n int) {
	c.starCount = n
	c.rebuild()
}

func (c *Control) SetStarSize(s Size) error {
	if !s.valid() {
		return fmt.Errorf("set star size %vx%v: %w", s.Width, s.Height, ErrInvalidStarSize)
	}
	c.starSize = s
	c.rebuild()
	return nil
}

func (c *Control) SetRating(r int) error {
	if r < 0 || r > c.StarCount() {
		return fmt.Errorf("set rating %d of %d: %w", r, c.StarCount(), ErrRatingOutOfRange)
	}
	c.rating = r
	c.refresh()
	return nil
}

// HandleTap applies a tap on the star at index. Tapping the star that
// represents the current rating clears it.
func (c *Control) HandleTap(index int) {
	if index < 0 || index >= len(c.stars) {
		panic(fmt.Sprintf("rating: tap on star %d, control has %d stars", index, len(c.stars)))
	}
	candidate := index + 1
	if candidate == c.rating {
		c.rating = 0
	} else {
		c.rating = candidate
	}
	c.refresh()
}

// Press highlights the star at index until Release or CancelPress.
// Out of range indexes are ignored.
func (c *Control) Press(index int) {
	if index < 0 || index >= len(c.stars) {
		return
	}
	c.pressed = index
	c.refresh()
}

// Release ends a press. The tap only counts when the pointer is released over
// the star that was pressed.
func (c *Control) Release(index int) bool {
	pressed := c.pressed
	c.pressed = -1
	if pressed < 0 {
		return false
	}
	if pressed != index {
		c.refresh()
		return false
	}
	c.HandleTap(index)
	return true
}

func (c *Control) CancelPress() {
	if c.pressed < 0 {
		return
	}
	c.pressed = -1
	c.refresh()
}

func (c *Control) CurrentRating() int { return c.rating }

func (c *Control) StarSize() Size { return c.starSize }

// StarCount is the number of elements in the row, never negative.
func (c *Control) StarCount() int { return len(c.stars) }

// Pressed returns the held star index, or -1.
func (c *Control) Pressed() int { return c.pressed }

// Stars returns a copy of the current element descriptors.
func (c *Control) Stars() []Star {
	return append([]Star(nil), c.stars...)
}

// Star returns the descriptor at index.
func (c *Control) Star(index int) (Star, bool) {
	if index < 0 || index >= len(c.stars) {
		return Star{}, false
	}
	return c.stars[index], true
}

// ValueText is the accessibility value shared by every star.
func (c *Control) ValueText() string { return c.valueText }

func (c *Control) rebuild() {
	n := max(c.starCount, 0)
	c.stars = make([]Star, n)
	for i := range c.stars {
		c.stars[i] = Star{
			Index: i,
			Label: fmt.Sprintf("Set %d star rating", i+1),
		}
	}
	if c.pressed >= n {
		c.pressed = -1
	}
	c.refresh()
}

func (c *Control) refresh() {
	c.valueText = ValueString(c.rating)
	for i := range c.stars {
		s := &c.stars[i]
		s.Selected = i < c.rating
		s.Highlighted = i == c.pressed
		s.Hint = ""
		if i+1 == c.rating {
			s.Hint = resetHint
		}
		s.Value = c.valueText
	}
}

// ValueString describes a rating in words.
func ValueString(r int) string {
	switch r {
	case 0:
		return "No rating set."
	case 1:
		return "1 star set."
	default:
		return fmt.Sprintf("%d stars set.", r)
	}
}
