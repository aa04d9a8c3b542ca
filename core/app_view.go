package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/foodtracker/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()

	var body string
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		if frame, ok := m.popupFrame(); ok {
			base := m.screens.Below().View(m.width, bodyHeight)
			body = widgets.RenderPopup(base, top.View(frame.ContentSize()), frame, m.width, bodyHeight)
		} else {
			body = top.View(m.width, bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// bodyHeight is what is left once the header, status and footer lines are drawn.
func (m Model) bodyHeight() int {
	return max(0, m.height-bodyTop-1)
}

// popupFrame returns the card the top screen is drawn in when it is modal and
// has a screen beneath it.
func (m Model) popupFrame() (widgets.PopupFrame, bool) {
	modal, ok := m.screens.Top().(ModalScreen)
	if !ok || !modal.Modal() || m.screens.Below() == nil {
		return widgets.PopupFrame{}, false
	}
	return widgets.PopupLayout(m.width, m.bodyHeight()), true
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.title)
	var right string
	if top := m.screens.Top(); top != nil {
		right = headerTitleStyle.Render(top.Title())
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
