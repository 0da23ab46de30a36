package pong

import "math"

// Collides reports whether the ball's bounding square overlaps the paddle rectangle
// All four separating-axis tests must fail; touching edges do not count
func Collides(b *Ball, p *Paddle) bool {
	return p.Left() < b.Right() &&
		p.Right() > b.Left() &&
		p.Top() < b.Bottom() &&
		p.Bottom() > b.Top()
}

// HitOffset returns the normalized distance of the ball from the paddle center in [-1, 1]
// The overlap test bounds it geometrically; no clamp is applied
func HitOffset(b *Ball, p *Paddle) float64 {
	return (b.Y - p.CenterY()) / (p.Height / 2)
}

// deflect redirects the ball off a paddle using the hit offset, then increases speed
// direction is +1 to send the ball right, -1 to send it left
func deflect(b *Ball, p *Paddle, direction, maxAngle, increment float64) float64 {
	angle := maxAngle * HitOffset(b, p)
	b.VX = direction * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
	b.Speed += increment
	return angle
}
