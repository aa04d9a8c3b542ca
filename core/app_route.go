package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// bodyTop is the number of chrome lines (header and status bar) above the
// screen body. Mouse coordinates are shifted by it before routing.
const bodyTop = 2

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.routeToTop(msg)
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		return m.pop(nil)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		return m.routeMouse(msg)
	}
	return m.routeToTop(msg)
}

// routeMouse moves a mouse event into the top screen's frame: the body for a
// full screen, the card content for a modal. A press outside a modal's card
// sends it DismissMsg instead.
func (m Model) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	msg.Y -= bodyTop
	if msg.Y < 0 || msg.Y >= m.bodyHeight() {
		return m, nil
	}
	frame, ok := m.popupFrame()
	if !ok {
		return m.routeToTop(msg)
	}
	if !frame.Contains(msg.X, msg.Y) {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.routeToTop(DismissMsg{})
		}
		return m, nil
	}
	x, y := frame.ContentOrigin()
	msg.X -= x
	msg.Y -= y
	return m.routeToTop(msg)
}

func (m Model) routeToTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		return m.pop(cmd)
	}
	if next != nil {
		m.screens.Replace(next)
	}
	return m, cmd
}

// pop closes the top screen. Closing the last screen ends the program.
func (m Model) pop(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.screens.Pop()
	if m.screens.Len() == 0 {
		m.quitting = true
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}
