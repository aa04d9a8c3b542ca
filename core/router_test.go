package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/foodtracker/widgets"
)

type fakeScreen struct {
	title string
	hits  int
	mouse []tea.MouseMsg
	sizes []tea.WindowSizeMsg
	modal bool
}

func (s *fakeScreen) Title() string { return s.title }
func (s *fakeScreen) Scope() string { return "screen:test" }
func (s *fakeScreen) Modal() bool   { return s.modal }
func (s *fakeScreen) View(int, int) string {
	return "body of " + s.title
}

func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case DismissMsg:
		return s, nil, true
	case tea.KeyMsg:
		s.hits++
		if msg.String() == "esc" {
			return s, nil, true
		}
	case tea.MouseMsg:
		s.mouse = append(s.mouse, msg)
	case tea.WindowSizeMsg:
		s.sizes = append(s.sizes, msg)
	}
	return s, nil, false
}

func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func TestScreenStack(t *testing.T) {
	var s ScreenStack
	if s.Top() != nil || s.Below() != nil || s.Pop() != nil {
		t.Fatalf("empty stack should return nil")
	}
	a, b := &fakeScreen{title: "a"}, &fakeScreen{title: "b"}
	s.Push(a)
	s.Push(nil)
	s.Push(b)
	if s.Len() != 2 || s.Top() != b || s.Below() != a {
		t.Fatalf("unexpected stack state")
	}
	c := &fakeScreen{title: "c"}
	s.Replace(c)
	if s.Top() != c || s.Pop() != c || s.Top() != a {
		t.Fatalf("replace/pop mismatch")
	}
}

func TestOnlyTopScreenGetsKeys(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)
	picker := &fakeScreen{title: "picker"}
	m.PushScreen(picker)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if picker.hits != 1 || root.hits != 0 {
		t.Fatalf("hits root=%d picker=%d", root.hits, picker.hits)
	}
	if updated.screens.Len() != 2 {
		t.Fatalf("screen should remain open")
	}
}

func TestPopReturnsToScreenBelow(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)
	m.PushScreen(&fakeScreen{title: "picker"})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 1 || updated.Top() != root {
		t.Fatalf("expected root on top after pop")
	}
	if quits(cmd) {
		t.Fatalf("popping a child should not quit")
	}
}

func TestPoppingLastScreenQuits(t *testing.T) {
	m := NewModel("App", &fakeScreen{title: "root"}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !quits(cmd) {
		t.Fatalf("expected quit after last screen closes")
	}
	if next.(Model).View() != "" {
		t.Fatalf("quitting model should render nothing")
	}
}

func TestPushAndPopMessages(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)
	child := &fakeScreen{title: "child"}

	next, _ := m.Update(PushScreenMsg{Screen: child})
	m = next.(Model)
	if m.Top() != child || m.ActiveScope() != "screen:test" {
		t.Fatalf("expected child on top")
	}
	next, _ = m.Update(PopScreenMsg{})
	m = next.(Model)
	if m.Top() != root {
		t.Fatalf("expected root after PopScreenMsg")
	}
}

func TestMouseIsShiftedIntoBody(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)

	m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(root.mouse) != 0 {
		t.Fatalf("clicks on the header should be dropped")
	}
	m.Update(tea.MouseMsg{X: 3, Y: bodyTop + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(root.mouse) != 1 || root.mouse[0].Y != 4 || root.mouse[0].X != 3 {
		t.Fatalf("mouse = %+v", root.mouse)
	}
}

func TestMouseIsShiftedIntoModalCard(t *testing.T) {
	root := &fakeScreen{title: "root"}
	modal := &fakeScreen{title: "picker", modal: true}
	m := NewModel("App", root, nil)
	m.PushScreen(modal)

	// 100x32 leaves a 29 line body; the card is 75x25 at (12, 2)
	frame := widgets.PopupLayout(100, 29)
	require.Equal(t, widgets.PopupFrame{X: 12, Y: 2, W: 75, H: 25}, frame)

	next, _ := m.Update(tea.MouseMsg{X: 14 + 5, Y: bodyTop + 3 + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Len(t, modal.mouse, 1)
	require.Equal(t, 5, modal.mouse[0].X)
	require.Equal(t, 2, modal.mouse[0].Y)
	require.Empty(t, root.mouse)
	require.Equal(t, 2, m.screens.Len())
}

func TestClickOutsideModalDismissesIt(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)
	m.PushScreen(&fakeScreen{title: "picker", modal: true})

	next, _ := m.Update(tea.MouseMsg{X: 3, Y: bodyTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Equal(t, 2, m.screens.Len(), "release outside the card is ignored")

	next, cmd := m.Update(tea.MouseMsg{X: 3, Y: bodyTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Equal(t, 1, m.screens.Len())
	require.Equal(t, root, m.Top())
	require.False(t, quits(cmd))
	require.Empty(t, root.mouse)
}

func TestModalWithoutBaseFillsBody(t *testing.T) {
	only := &fakeScreen{title: "picker", modal: true}
	m := NewModel("App", only, nil)
	m.Update(tea.MouseMsg{X: 1, Y: bodyTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Len(t, only.mouse, 1)
	require.Equal(t, 1, only.mouse[0].X)
	require.Equal(t, 0, only.mouse[0].Y)
}

func TestWindowSizeReachesScreen(t *testing.T) {
	root := &fakeScreen{title: "root"}
	m := NewModel("App", root, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(root.sizes) != 1 {
		t.Fatalf("expected size msg to reach the screen")
	}
	view := next.(Model).View()
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Fatalf("view height = %d, want 24", got)
	}
}

func TestStatusMsg(t *testing.T) {
	m := NewModel("App", &fakeScreen{title: "root"}, nil)
	next, _ := m.Update(StatusMsg{Text: "load failed", IsErr: true})
	m = next.(Model)
	if !m.statusErr || !strings.Contains(ansi.Strip(RenderStatusBar(m)), "load failed") {
		t.Fatalf("expected error status")
	}
	m.SetStatus("")
	if !strings.Contains(ansi.Strip(RenderStatusBar(m)), "Ready") {
		t.Fatalf("empty status should read Ready")
	}
}

func TestViewShowsTitlesAndModal(t *testing.T) {
	root := &fakeScreen{title: "New Meal"}
	m := NewModel("FoodTracker", root, nil)
	m.PushScreen(&fakeScreen{title: "Choose Photo", modal: true})

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[0], "FoodTracker") || !strings.Contains(lines[0], "Choose Photo") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(view, "body of Choose Photo") {
		t.Fatalf("expected popup body in view")
	}
}

func TestFooterListsScopeBindings(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	m := NewModel("App", &fakeScreen{title: "root"}, keys)
	m.width = 200
	footer := ansi.Strip(RenderFooter(m))
	if !strings.Contains(footer, "No shortcuts") {
		t.Fatalf("screen:test has no bindings, got %q", footer)
	}

	keys.Register(KeyBinding{Keys: []string{"1", "2", "3"}, Action: "pick", Description: "pick n", Scopes: []string{"screen:*"}})
	footer = ansi.Strip(RenderFooter(m))
	if !strings.Contains(footer, "1-3 pick n") {
		t.Fatalf("footer = %q", footer)
	}
}
