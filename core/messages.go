package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// DismissMsg is sent to a modal screen when the user clicks outside its card.
type DismissMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// PushScreenCmd pushes s and then runs its Init, in that order, so the
// screen is on top before its first message arrives.
func PushScreenCmd(s Screen) tea.Cmd {
	push := func() tea.Msg { return PushScreenMsg{Screen: s} }
	if init, ok := s.(ScreenInitializer); ok {
		return tea.Sequence(push, init.Init())
	}
	return push
}
