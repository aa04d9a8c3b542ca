package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenInitializer is implemented by screens that need a command when pushed.
type ScreenInitializer interface {
	Init() tea.Cmd
}

// ModalScreen screens render as a popup over the screen beneath them.
type ModalScreen interface {
	Modal() bool
}

type Model struct {
	title     string
	width     int
	height    int
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(title string, root Screen, keys *KeyRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	m := Model{
		title:  title,
		keys:   keys,
		status: "Ready",
		width:  100,
		height: 32,
	}
	m.screens.Push(root)
	return m
}

func (m Model) Init() tea.Cmd {
	if init, ok := m.screens.Top().(ScreenInitializer); ok {
		return init.Init()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Keys() *KeyRegistry {
	return m.keys
}

func (m Model) Top() Screen {
	return m.screens.Top()
}
