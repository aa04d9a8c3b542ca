package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func ansiTruncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}

// padCells truncates or pads s to exactly width cells.
func padCells(s string, width int) string {
	s = ansiTruncate(s, width)
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// splitToLines splits s into exactly height lines.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
