package widgets

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	buttonStyle       = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	focusedButton     = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true)
)

// Label renders a field caption.
func Label(text string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

// Button renders "[ text ]"; its width is ButtonWidth(text).
func Button(text string, focused bool) string {
	st := buttonStyle
	if focused {
		st = focusedButton
	}
	return st.Render("[ " + text + " ]")
}

func ButtonWidth(text string) int {
	return lipgloss.Width("[ " + text + " ]")
}
