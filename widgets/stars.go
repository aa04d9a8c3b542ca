package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodtracker/internal/rating"
)

const (
	glyphFilled = "★"
	glyphEmpty  = "☆"
	starGap     = 1
)

// CellMetrics is how many points one terminal cell covers.
type CellMetrics struct {
	Width  float64
	Height float64
}

var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// Cells converts a point size to whole cells, at least one each way.
func (c CellMetrics) Cells(s rating.Size) (cols, rows int) {
	cw, ch := c.Width, c.Height
	if cw <= 0 {
		cw = DefaultCellMetrics.Width
	}
	if ch <= 0 {
		ch = DefaultCellMetrics.Height
	}
	cols = max(1, int(math.Round(s.Width/cw)))
	rows = max(1, int(math.Round(s.Height/ch)))
	return cols, rows
}

// StarRow draws the rating control's stars left to right.
type StarRow struct {
	Stars   []rating.Star
	Size    rating.Size
	Metrics CellMetrics
	Focus   int // keyboard cursor, -1 for none
}

func (r StarRow) cellSize() (int, int) {
	return r.Metrics.Cells(r.Size)
}

// Width is the number of columns the row occupies.
func (r StarRow) Width() int {
	if len(r.Stars) == 0 {
		return 0
	}
	cols, _ := r.cellSize()
	return len(r.Stars)*cols + (len(r.Stars)-1)*starGap
}

// Height is the number of lines the row occupies.
func (r StarRow) Height() int {
	_, rows := r.cellSize()
	return rows
}

// HitTest maps a cell relative to the row's top-left corner to a star index.
// Gaps between stars hit nothing.
func (r StarRow) HitTest(x, y int) (int, bool) {
	cols, rows := r.cellSize()
	if x < 0 || y < 0 || y >= rows {
		return -1, false
	}
	stride := cols + starGap
	i := x / stride
	if i >= len(r.Stars) || x%stride >= cols {
		return -1, false
	}
	return i, true
}

func (r StarRow) Render(width, height int) string {
	cols, rows := r.cellSize()
	var out string
	if len(r.Stars) == 0 {
		out = lipgloss.NewStyle().Foreground(colorSubtext0).Render("(no stars)")
	} else {
		mid := rows / 2
		gap := strings.Repeat(" ", starGap)
		lines := make([]string, rows)
		for y := 0; y < rows; y++ {
			parts := make([]string, len(r.Stars))
			for i, s := range r.Stars {
				parts[i] = starStyle(s, i == r.Focus).Render(starCell(s, cols, y == mid))
			}
			lines[y] = strings.Join(parts, gap)
		}
		out = strings.Join(lines, "\n")
	}
	if width > 0 {
		out = clipLines(out, width)
	}
	if height > 0 {
		rows = min(height, rows)
	}
	return strings.Join(splitToLines(out, rows), "\n")
}

func starCell(s rating.Star, cols int, withGlyph bool) string {
	if !withGlyph {
		return strings.Repeat(" ", cols)
	}
	glyph := glyphEmpty
	if s.Visual() != rating.VisualEmpty {
		glyph = glyphFilled
	}
	left := (cols - 1) / 2
	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", cols-1-left)
}

func starStyle(s rating.Star, focused bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch s.Visual() {
	case rating.VisualHighlighted:
		st = st.Foreground(colorStarPressed).Bold(true)
	case rating.VisualFilled:
		st = st.Foreground(colorStarFilled)
	default:
		st = st.Foreground(colorStarEmpty)
	}
	if focused {
		st = st.Background(colorSurface1)
	}
	return st
}

func clipLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = ansiTruncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
