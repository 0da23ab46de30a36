package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want Action
	}{
		{"w", ActionLeftUp},
		{"S", ActionLeftDown},
		{"ArrowUp", ActionRightUp},
		{"down", ActionRightDown},
		{" ", ActionServe},
		{"p", ActionPause},
		{"r", ActionRestart},
		{"Esc", ActionQuit},
		{"f", ActionFullscreen},
		{"x", ActionNone},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.key); got != tt.want {
			t.Errorf("key %q: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestKeyMapApply(t *testing.T) {
	km := DefaultKeyMap()

	err := km.Apply(map[string][]string{
		"left_up":   {"e"},
		"left_down": {"d"},
		"quit":      {"x"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := km.Lookup("e"); got != ActionLeftUp {
		t.Errorf("Expected left_up on e, got %v", got)
	}
	if got := km.Lookup("w"); got != ActionNone {
		t.Errorf("Expected w unbound, got %v", got)
	}
	if got := km.Lookup("escape"); got != ActionNone {
		t.Errorf("Expected escape unbound after quit override, got %v", got)
	}
	if got := km.Lookup("up"); got != ActionRightUp {
		t.Errorf("Expected untouched default for up, got %v", got)
	}
	if keys := km.Keys(ActionQuit); len(keys) != 1 || keys[0] != "x" {
		t.Errorf("Expected quit on [x], got %v", keys)
	}
}

func TestKeyMapApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		table map[string][]string
		want  string
	}{
		{"Unknown action", map[string][]string{"jump": {"j"}}, "unknown action"},
		{"Duplicate key", map[string][]string{"serve": {"k"}, "pause": {"k"}}, "already bound"},
		{"Empty key", map[string][]string{"serve": {" "}}, ""},
		{"Blank key", map[string][]string{"serve": {""}}, "empty key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DefaultKeyMap()
			err := km.Apply(tt.table)
			if tt.want == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Expected error containing %q, got %v", tt.want, err)
			}
			if got := km.Lookup("w"); got != ActionLeftUp {
				t.Errorf("Expected map unchanged on error, got %v for w", got)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", name, err)
		}
		if a.String() != name {
			t.Errorf("Expected round trip %q, got %q", name, a.String())
		}
	}
	if _, err := ParseAction("fly"); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func TestTcellKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "w"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "escape"},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		if got := TcellKeyName(tt.ev); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
