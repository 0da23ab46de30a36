package input

import (
	"fmt"
	"sort"
)

// Action is a frontend-independent player command
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionServe
	ActionPause
	ActionRestart
	ActionQuit
	ActionFullscreen
)

// actionNames maps canonical config names to actions
var actionNames = map[string]Action{
	"left_up":    ActionLeftUp,
	"left_down":  ActionLeftDown,
	"right_up":   ActionRightUp,
	"right_down": ActionRightDown,
	"serve":      ActionServe,
	"pause":      ActionPause,
	"restart":    ActionRestart,
	"quit":       ActionQuit,
	"fullscreen": ActionFullscreen,
}

func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return "none"
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, error) {
	if a, ok := actionNames[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// ActionNames returns all canonical action names in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for name := range actionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPaddle reports whether the action moves a paddle
func (a Action) IsPaddle() bool {
	return a >= ActionLeftUp && a <= ActionRightDown
}
