package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	popupMinWidth  = 24
	popupMinHeight = 8

	// border plus one column of padding on each side
	popupInsetX = 2
	popupInsetY = 1
)

// PopupFrame is the card a modal screen is drawn in, in body cells.
// X, Y, W and H include the border.
type PopupFrame struct {
	X, Y, W, H int
}

// PopupLayout sizes and centres the card for a width x height body. The card
// size depends only on the body, so input routing and rendering agree on it
// without rendering first.
func PopupLayout(width, height int) PopupFrame {
	if width <= 0 || height <= 0 {
		return PopupFrame{}
	}
	w := min(width, max(popupMinWidth, width*3/4))
	h := min(height, max(popupMinHeight, height-4))
	return PopupFrame{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// ContentSize is the room left for the modal's own view.
func (f PopupFrame) ContentSize() (width, height int) {
	return max(0, f.W-2*popupInsetX), max(0, f.H-2*popupInsetY)
}

// ContentOrigin is the body cell of the content's top-left corner.
func (f PopupFrame) ContentOrigin() (x, y int) {
	return f.X + popupInsetX, f.Y + popupInsetY
}

// Contains reports whether body cell (x, y) lies on the card, border included.
func (f PopupFrame) Contains(x, y int) bool {
	return x >= f.X && x < f.X+f.W && y >= f.Y && y < f.Y+f.H
}

// RenderPopup draws content in the card at f over base. Base cells outside the
// card stay visible on every row.
func RenderPopup(base, content string, f PopupFrame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := splitToLines(base, height)
	for i := range rows {
		rows[i] = padCells(rows[i], width)
	}
	if f.W <= 0 || f.H <= 0 {
		return strings.Join(rows, "\n")
	}

	cw, ch := f.ContentSize()
	body := splitToLines(content, ch)
	for i := range body {
		body[i] = ansiTruncate(body[i], cw)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFocus).
		Background(colorBase).
		Padding(0, popupInsetX-1).
		Width(f.W - 2).
		Height(f.H - 2).
		Render(strings.Join(body, "\n"))

	for i, line := range splitToLines(card, f.H) {
		y := f.Y + i
		if y < 0 || y >= height {
			continue
		}
		row := rows[y]
		rows[y] = ansiTruncate(row, f.X) + padCells(line, f.W) + ansi.Cut(row, f.X+f.W, width)
	}
	return strings.Join(rows, "\n")
}
