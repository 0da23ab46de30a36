package render

import (
	"image/color"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal palette
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Court black
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // Entities and scores
	RgbNet        = tcell.NewRGBColor(200, 200, 200) // Slightly dimmed net
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBg   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbOverlay    = tcell.NewRGBColor(255, 165, 0)   // Orange prompts
	RgbWinner     = tcell.NewRGBColor(50, 255, 50)   // Bright green
)

// ColorMode selects the terminal color depth
type ColorMode int

const (
	ColorModeAuto ColorMode = iota
	ColorModeTrueColor
	ColorMode256
)

// ParseColorMode resolves a config value; unknown values fall back to auto
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return ColorModeAuto
	}
}

// Apply configures tcell before the screen is created
// 256 mode disables truecolor so tcell maps RGB values onto the palette
func (m ColorMode) Apply() {
	switch m {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Unsetenv("TCELL_TRUECOLOR")
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	}
}

// ToTcell converts an entity display color
func ToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
