package input

import (
	"fmt"
	"sort"
	"strings"
)

// KeyMap resolves normalized key names to actions
// Key names are lowercase: single characters, or "space", "up", "down", "left", "right",
// "escape", "enter", "tab"
type KeyMap struct {
	bindings map[string]Action
}

// DefaultKeyMap returns the classic two-player layout
func DefaultKeyMap() *KeyMap {
	return &KeyMap{bindings: map[string]Action{
		"w":      ActionLeftUp,
		"s":      ActionLeftDown,
		"up":     ActionRightUp,
		"down":   ActionRightDown,
		"space":  ActionServe,
		"p":      ActionPause,
		"r":      ActionRestart,
		"q":      ActionQuit,
		"escape": ActionQuit,
		"f":      ActionFullscreen,
	}}
}

// NormalizeKey lowercases a key name and resolves aliases
func NormalizeKey(name string) string {
	if name == " " {
		return "space"
	}
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		return "escape"
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	case "return":
		return "enter"
	}
	return name
}

// Lookup returns the action bound to a key name
func (km *KeyMap) Lookup(key string) Action {
	return km.bindings[NormalizeKey(key)]
}

// Keys returns the keys bound to an action in sorted order
func (km *KeyMap) Keys(a Action) []string {
	var keys []string
	for k, act := range km.bindings {
		if act == a {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Apply overrides bindings from an action → keys table
// Every listed action loses its default keys; an unknown action, an empty key,
// or a key listed under two actions is an error and leaves the map unchanged
func (km *KeyMap) Apply(table map[string][]string) error {
	if len(table) == 0 {
		return nil
	}

	next := make(map[string]Action, len(km.bindings))
	overridden := make(map[Action]bool, len(table))
	assigned := make(map[string]string)

	// Resolve in sorted order for deterministic error messages
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		overridden[act] = true

		for _, raw := range table[name] {
			key := NormalizeKey(raw)
			if key == "" {
				return fmt.Errorf("keys.%s: empty key name", name)
			}
			if prev, dup := assigned[key]; dup {
				return fmt.Errorf("keys.%s: key %q already bound to %s", name, key, prev)
			}
			assigned[key] = name
			next[key] = act
		}
	}

	// Keep defaults for actions not overridden unless their key was taken
	for key, act := range km.bindings {
		if overridden[act] {
			continue
		}
		if _, taken := next[key]; taken {
			continue
		}
		next[key] = act
	}

	km.bindings = next
	return nil
}
