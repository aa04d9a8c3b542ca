package widgets

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodtracker/internal/photo"
)

const upperHalfBlock = "▀"

// Thumbnail draws a photo with half-block characters, two pixel rows per
// line. A nil photo renders the placeholder box. The first column is
// reserved for the focus bar.
type Thumbnail struct {
	Photo   *photo.Photo
	Focused bool
}

func (t Thumbnail) Render(width, height int) string {
	if width <= 1 || height <= 0 {
		return ""
	}
	return withFocusBar(t.content(width-1, height), t.Focused)
}

func (t Thumbnail) content(width, height int) string {
	img := t.Photo.Thumbnail(width, height*2)
	if img == nil {
		return t.placeholder(width, height)
	}
	b := img.Bounds()
	lines := make([]string, 0, height)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			st := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < b.Max.Y {
				st = st.Background(hexColor(img.At(x, y+1)))
			}
			sb.WriteString(st.Render(upperHalfBlock))
		}
		lines = append(lines, sb.String())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

func (t Thumbnail) placeholder(width, height int) string {
	fg := colorSubtext0
	if t.Focused {
		fg = colorFocus
	}
	text := lipgloss.NewStyle().Foreground(fg).Background(colorSurface0).Render("No photo")
	if height > 1 {
		text += "\n" + lipgloss.NewStyle().Foreground(colorOverlay0).Background(colorSurface0).Render("select to choose")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text,
		lipgloss.WithWhitespaceBackground(colorSurface0))
}

func withFocusBar(s string, focused bool) string {
	bar := " "
	if focused {
		bar = lipgloss.NewStyle().Foreground(colorFocus).Render("▌")
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = bar + line
	}
	return strings.Join(lines, "\n")
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
