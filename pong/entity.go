package pong

import "image/color"

// Side identifies one half of the court and the paddle that defends it
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// White is the default entity color
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Court is the coordinate space shared by all entities
type Court struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal midpoint
func (c Court) CenterX() float64 { return c.Width / 2 }

// CenterY returns the vertical midpoint
func (c Court) CenterY() float64 { return c.Height / 2 }

// Ball is a circle moving at a fixed step per tick
// Speed is the authoritative magnitude; VX/VY are its decomposition after a paddle hit
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
	Color  color.RGBA
}

func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }
func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }

// Paddle is a vertical bar fixed horizontally to one side of the court
type Paddle struct {
	Side   Side
	Name   string
	X, Y   float64
	Width  float64
	Height float64
	DY     float64
	Score  int
	Color  color.RGBA
}

func (p *Paddle) Left() float64    { return p.X }
func (p *Paddle) Right() float64   { return p.X + p.Width }
func (p *Paddle) Top() float64     { return p.Y }
func (p *Paddle) Bottom() float64  { return p.Y + p.Height }
func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Net is the dashed center line, decorative only
type Net struct {
	X          float64
	Width      float64
	DashHeight float64
	DashPeriod float64
	Color      color.RGBA
}

// Dashes returns the top coordinate of every dash for a court of the given height
// The last dash starts at or before height, matching a loop of i <= height
func (n Net) Dashes(height float64) []float64 {
	if n.DashPeriod <= 0 {
		return nil
	}
	count := int(height/n.DashPeriod) + 1
	tops := make([]float64, 0, count)
	for y := 0.0; y <= height; y += n.DashPeriod {
		tops = append(tops, y)
	}
	return tops
}
