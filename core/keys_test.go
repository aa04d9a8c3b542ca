package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+s"}, Action: "save", Scopes: []string{"form:*"}},
		{Keys: []string{"enter"}, Action: "end-editing", Scopes: []string{"form:name"}},
		{Keys: []string{"esc"}, Action: "close", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "save", "form:rating") {
		t.Fatalf("expected ctrl+s under form:*")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "save", "screen:photo-picker") {
		t.Fatalf("did not expect ctrl+s outside the form")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "end-editing", "form:photo") {
		t.Fatalf("enter should only end editing on the name field")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "close", "anything") {
		t.Fatalf("expected esc to match wildcard scope")
	}
}

func TestScopePrefixNeedsColon(t *testing.T) {
	if scopeMatch("formal", []string{"form*"}) {
		t.Fatalf("bare prefix patterns are not supported")
	}
	if !scopeMatch("form:save", []string{"form:*"}) {
		t.Fatalf("form:* should match form:save")
	}
}

func TestActionResolvesByScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	cases := []struct {
		msg   tea.KeyMsg
		scope string
		want  string
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, "form:name", "end-editing"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "form:photo", "pick-photo"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "form:rating", "star-tap"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "form:save", "activate"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "form:rating", "star-tap"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}}, "form:rating", "star-set"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "form:name", "cancel"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "screen:photo-picker", "close"},
	}
	for _, tc := range cases {
		got, ok := reg.Action(tc.msg, tc.scope)
		if !ok || got != tc.want {
			t.Fatalf("Action(%q, %s) = %q,%v want %q", tc.msg.String(), tc.scope, got, ok, tc.want)
		}
	}
	if _, ok := reg.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}}, "form:name"); ok {
		t.Fatalf("digits should type into the name field")
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"Save": {"f2"},
	})
	reg := NewKeyRegistry(bindings)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyF2}, "save", "form:name") {
		t.Fatalf("expected f2 to save after override")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "save", "form:name") {
		t.Fatalf("ctrl+s should be replaced by the override")
	}
	byAction := DefaultKeybindingsByAction(bindings)
	if got := byAction["save"]; len(got) != 1 || got[0] != "f2" {
		t.Fatalf("save keys = %v", got)
	}
}
