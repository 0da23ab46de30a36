package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/pong"
)

const (
	ballRune   = '●'
	paddleRune = '█'
	netRune    = '¦'
)

// TerminalRenderer draws snapshots onto a tcell screen
// The court is stretched over every row except the status bar
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	debug  bool
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, debug bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h, debug: debug}
}

// Resize updates the cached screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// CourtRows returns the rows available to the court
func (r *TerminalRenderer) CourtRows() int {
	return max(r.height-constants.StatusBarHeight, 1)
}

// cellX maps a court x coordinate to a column
func (r *TerminalRenderer) cellX(x float64, court pong.Court) int {
	return int(math.Floor(x / court.Width * float64(r.width)))
}

// cellY maps a court y coordinate to a row
func (r *TerminalRenderer) cellY(y float64, court pong.Court) int {
	return int(math.Floor(y / court.Height * float64(r.CourtRows())))
}

// ScreenToCourt maps a cell to the court coordinates of its center
// ok is false for cells outside the court area
func (r *TerminalRenderer) ScreenToCourt(col, row int, court pong.Court) (x, y float64, ok bool) {
	rows := r.CourtRows()
	if col < 0 || col >= r.width || row < 0 || row >= rows {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) / float64(r.width) * court.Width
	y = (float64(row) + 0.5) / float64(rows) * court.Height
	return x, y, true
}

// RenderFrame draws a complete frame; it only reads the snapshot
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, status string) {
	r.width, r.height = r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)

	r.fill(bg)
	r.drawNet(snap, bg.Foreground(RgbNet))
	r.drawScores(snap, bg)
	r.drawPaddle(snap.Left, snap.Court)
	r.drawPaddle(snap.Right, snap.Court)
	r.drawBall(snap)
	r.drawNames(snap, bg)
	r.drawOverlay(snap, bg)
	r.drawStatusBar(snap, status)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.CourtRows(); y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.CourtRows() {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText centers text on column cx, clipped to the court area
func (r *TerminalRenderer) drawText(cx, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := cx - len(runes)/2
	for i, ch := range runes {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) drawNet(snap engine.Snapshot, style tcell.Style) {
	col := r.cellX(snap.Net.X, snap.Court)
	for _, top := range snap.Net.Dashes(snap.Court.Height) {
		r0 := r.cellY(top, snap.Court)
		r1 := r.cellY(top+snap.Net.DashHeight, snap.Court)
		for row := r0; row <= r1 && row < r.CourtRows(); row++ {
			r.set(col, row, netRune, style)
		}
	}
}

func (r *TerminalRenderer) drawScores(snap engine.Snapshot, style tcell.Style) {
	row := r.cellY(snap.Court.Height/5, snap.Court)
	r.drawText(r.cellX(snap.Court.Width/4, snap.Court), row, fmt.Sprint(snap.Left.Score), style.Bold(true))
	r.drawText(r.cellX(3*snap.Court.Width/4, snap.Court), row, fmt.Sprint(snap.Right.Score), style.Bold(true))
}

func (r *TerminalRenderer) drawPaddle(p pong.Paddle, court pong.Court) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(ToTcell(p.Color))
	col := min(r.cellX(p.X, court), r.width-1)
	top := r.cellY(p.Top(), court)
	// Exclusive bottom edge so a flush paddle does not spill into the next row
	bottom := int(math.Ceil(p.Bottom()/court.Height*float64(r.CourtRows()))) - 1
	for row := max(top, 0); row <= bottom && row < r.CourtRows(); row++ {
		r.set(col, row, paddleRune, style)
	}
}

func (r *TerminalRenderer) drawBall(snap engine.Snapshot) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(ToTcell(snap.Ball.Color))
	r.set(r.cellX(snap.Ball.X, snap.Court), r.cellY(snap.Ball.Y, snap.Court), ballRune, style)
}

func (r *TerminalRenderer) drawNames(snap engine.Snapshot, style tcell.Style) {
	row := r.CourtRows() - 1
	r.drawText(r.cellX(snap.Court.Width/4, snap.Court), row, snap.Left.Name, style)
	r.drawText(r.cellX(3*snap.Court.Width/4, snap.Court), row, snap.Right.Name, style)
}

func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot, style tcell.Style) {
	mid := r.CourtRows() / 2
	cx := r.width / 2
	prompt := style.Foreground(RgbOverlay)

	switch {
	case snap.Phase == pong.PhaseOver:
		r.drawText(cx, mid-1, snap.WinnerName+constants.WinSuffix, style.Foreground(RgbWinner).Bold(true))
		r.drawText(cx, mid+1, constants.RestartPrompt, prompt)
	case snap.Paused:
		r.drawText(cx, mid, constants.PausedText, prompt.Bold(true))
	case snap.Phase == pong.PhaseServing:
		r.drawText(cx, mid+2, constants.ServePrompt, prompt)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, status string) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	row := r.height - constants.StatusBarHeight
	if row < 0 {
		return
	}

	id := snap.MatchID
	if len(id) > constants.MatchIDDisplayLength {
		id = id[:constants.MatchIDDisplayLength]
	}
	line := fmt.Sprintf(" match %s  %s", id, snap.Phase)
	if snap.Paused {
		line += "  paused"
	}
	if r.debug && status != "" {
		line += "  " + status
	}

	runes := []rune(line)
	for x := 0; x < r.width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, row, ch, nil, style)
	}
}
