// Package gui hosts the match in an ebiten window with keyboard, mouse and touch input
package gui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/pong"
)

const (
	scoreScale = 5
	nameScale  = 2
	textScale  = 2
)

var (
	colorBackground = color.RGBA{0, 0, 0, 0xff}
	colorPrompt     = color.RGBA{255, 165, 0, 0xff}
	colorWinner     = color.RGBA{50, 255, 50, 0xff}
)

// App implements ebiten.Game around an engine.Game
// ebiten runs Update at the fixed tick rate, so Update is the scheduler
type App struct {
	game   *engine.Game
	mapper *input.Mapper
	keymap *input.KeyMap
	face   *text.GoXFace

	width, height int

	touching bool
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID

	fullscreenPending bool
}

// NewApp wires a game to ebiten input
func NewApp(game *engine.Game, keymap *input.KeyMap) *App {
	return &App{
		game:   game,
		mapper: input.NewMapper(game, 0),
		keymap: keymap,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// RequestFullscreen asks for fullscreen; rejection is logged after the first frame
func (a *App) RequestFullscreen() {
	ebiten.SetFullscreen(true)
	a.fullscreenPending = true
}

// RequestLandscape asks for a landscape orientation lock
// Desktop windows have no orientation, so the request is only logged
func (a *App) RequestLandscape() {
	log.Printf("orientation lock not supported on this platform, ignoring")
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if a.fullscreenPending {
		a.fullscreenPending = false
		if !ebiten.IsFullscreen() {
			log.Printf("fullscreen request rejected, continuing windowed")
		}
	}

	if quit := a.handleKeys(time.Now()); quit {
		return ebiten.Termination
	}
	a.handlePointer()

	a.game.Tick()
	return nil
}

// handleKeys routes key presses; returns true on quit
func (a *App) handleKeys(now time.Time) bool {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		action := a.keymap.Lookup(k.String())
		if a.mapper.Press(action, now) {
			continue
		}
		switch action {
		case input.ActionServe:
			a.game.Serve()
		case input.ActionPause:
			a.game.TogglePause()
		case input.ActionRestart:
			a.restart()
		case input.ActionFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		case input.ActionQuit:
			return true
		}
	}

	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.mapper.Release(a.keymap.Lookup(k.String()))
	}
	return false
}

// handlePointer treats touches and the left mouse button as touch input
// A new press while serving starts the match
func (a *App) handlePointer() {
	w, h := float64(a.width), float64(a.height)
	if w <= 0 || h <= 0 {
		return
	}

	if a.game.Serving() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			a.game.Serve()
		}
	}

	active := false
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.mapper.Touch(float64(x), float64(y), w, h)
		active = true
	}
	if !active && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.mapper.Touch(float64(x), float64(y), w, h)
		active = true
	}

	if a.touching && !active {
		a.mapper.TouchEnd()
	}
	a.touching = active
}

// restart rebuilds the match and forgets held input
func (a *App) restart() {
	a.game.Restart()
	a.mapper.SetController(a.game)
	a.touching = false
	if a.width > 0 && a.height > 0 {
		a.game.Resize(float64(a.width), float64(a.height))
	}
}

// Layout implements ebiten.Game; the court follows the window size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game; it only reads the published snapshot
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	b := screen.Bounds()
	v := newViewport(snap.Court, float64(b.Dx()), float64(b.Dy()))

	screen.Fill(colorBackground)

	// Net
	for _, top := range snap.Net.Dashes(snap.Court.Height) {
		x, y := v.point(snap.Net.X, top)
		vector.DrawFilledRect(screen, x, y, v.w(snap.Net.Width), v.h(snap.Net.DashHeight), snap.Net.Color, false)
	}

	// Scores
	a.drawText(screen, fmt.Sprint(snap.Left.Score), snap.Court.Width/4, snap.Court.Height/5, scoreScale, color.White, v)
	a.drawText(screen, fmt.Sprint(snap.Right.Score), 3*snap.Court.Width/4, snap.Court.Height/5, scoreScale, color.White, v)

	// Paddles
	for _, p := range []pong.Paddle{snap.Left, snap.Right} {
		x, y := v.point(p.X, p.Y)
		vector.DrawFilledRect(screen, x, y, v.w(p.Width), v.h(p.Height), p.Color, false)
	}

	// Ball
	bx, by := v.point(snap.Ball.X, snap.Ball.Y)
	vector.DrawFilledCircle(screen, bx, by, v.w(snap.Ball.Radius), snap.Ball.Color, true)

	// Names
	nameY := snap.Court.Height - 10
	a.drawText(screen, snap.Left.Name, snap.Court.Width/4, nameY, nameScale, color.White, v)
	a.drawText(screen, snap.Right.Name, 3*snap.Court.Width/4, nameY, nameScale, color.White, v)

	// Overlays
	cx, cy := snap.Court.CenterX(), snap.Court.CenterY()
	switch {
	case snap.Phase == pong.PhaseOver:
		a.drawText(screen, snap.WinnerName+constants.WinSuffix, cx, cy-30, scoreScale-1, colorWinner, v)
		a.drawText(screen, constants.RestartPrompt, cx, cy+30, textScale, colorPrompt, v)
	case snap.Paused:
		a.drawText(screen, constants.PausedText, cx, cy, scoreScale-1, colorPrompt, v)
	case snap.Phase == pong.PhaseServing:
		a.drawText(screen, constants.ServePrompt, cx, cy+40, textScale, colorPrompt, v)
	}
}

// drawText draws s horizontally centered and baseline-anchored at court point (x, y)
func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, scale float64, clr color.Color, v viewport) {
	w, h := text.Measure(s, a.face, 0)
	sx, sy := v.point(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, a.face, op)
}
