package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+s"}, Action: "save", Description: "save", Scopes: []string{"form:*"}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "cancel", Scopes: []string{"form:*"}},
		{Keys: []string{"tab"}, Action: "next-field", Description: "next", Scopes: []string{"form:*"}},
		{Keys: []string{"shift+tab"}, Action: "prev-field", Description: "prev", Scopes: []string{"form:*"}},
		{Keys: []string{"enter"}, Action: "end-editing", Description: "done", Scopes: []string{"form:name"}},
		{Keys: []string{"enter", "space"}, Action: "pick-photo", Description: "choose photo", Scopes: []string{"form:photo"}},
		{Keys: []string{"left", "h"}, Action: "star-prev", Description: "prev star", Scopes: []string{"form:rating"}},
		{Keys: []string{"right", "l"}, Action: "star-next", Description: "next star", Scopes: []string{"form:rating"}},
		{Keys: []string{"enter", "space"}, Action: "star-tap", Description: "rate", Scopes: []string{"form:rating"}},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Action: "star-set", Description: "tap star n", Scopes: []string{"form:rating"}},
		{Keys: []string{"enter", "space"}, Action: "activate", Description: "press", Scopes: []string{"form:save", "form:cancel"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:photo-picker"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:photo-picker"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Action names are matched case-insensitively since
// config loaders lowercase map keys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	overrides := make(map[string][]string, len(actionKeys))
	for action, keys := range actionKeys {
		overrides[strings.ToLower(strings.TrimSpace(action))] = keys
	}
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := overrides[strings.ToLower(b.Action)]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
