package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the widgets draw with.
const (
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorStarFilled  = colorYellow
	colorStarEmpty   = colorOverlay0
	colorStarPressed = colorPeach
	colorFocus       = colorLavender
)
