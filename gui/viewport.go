package gui

import (
	"github.com/lixenwraith/vi-pong/pong"
)

// viewport maps court coordinates onto the screen image
// The court normally matches the window; the scale covers the tick before a resize lands
type viewport struct {
	sx, sy float64
}

func newViewport(court pong.Court, screenW, screenH float64) viewport {
	v := viewport{sx: 1, sy: 1}
	if court.Width > 0 {
		v.sx = screenW / court.Width
	}
	if court.Height > 0 {
		v.sy = screenH / court.Height
	}
	return v
}

func (v viewport) point(x, y float64) (float32, float32) {
	return float32(x * v.sx), float32(y * v.sy)
}

func (v viewport) w(d float64) float32 { return float32(d * v.sx) }
func (v viewport) h(d float64) float32 { return float32(d * v.sy) }
