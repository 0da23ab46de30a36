package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyEscape: "escape",
	tcell.KeyEnter:  "enter",
	tcell.KeyTab:    "tab",
}

// TcellKeyName normalizes a terminal key event to a KeyMap name
// Ctrl-C maps to "escape" so the terminal can always be left
func TcellKeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyCtrlC {
		return "escape"
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return tcellKeyNames[ev.Key()]
}
