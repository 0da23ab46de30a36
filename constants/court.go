package constants

import "math"

// Court Defaults (simulation units)
const (
	// CourtWidth is the default court width
	CourtWidth = 800.0

	// CourtHeight is the default court height
	CourtHeight = 400.0
)

// Ball Constants
const (
	// BallRadius is the ball radius, constant for the life of a match
	BallRadius = 10.0

	// BallInitialVX is the horizontal velocity of the opening serve
	BallInitialVX = 5.0

	// BallInitialVY is the vertical velocity of the opening serve
	BallInitialVY = 5.0

	// BallInitialSpeed is the speed restored on every ball reset
	BallInitialSpeed = 7.0

	// BallSpeedIncrement is added to the ball speed on each paddle contact
	BallSpeedIncrement = 0.2

	// MaxBounceAngle is the deflection angle for a hit on the very edge of a paddle
	MaxBounceAngle = math.Pi / 4
)

// Paddle Constants
const (
	PaddleWidth  = 10.0
	PaddleHeight = 100.0

	// PaddleSpeed is the magnitude of paddle velocity while a key or touch is held
	PaddleSpeed = 8.0
)

// Net Constants
const (
	NetWidth      = 2.0
	NetDashHeight = 10.0

	// NetDashPeriod is the vertical distance between the tops of consecutive dashes
	NetDashPeriod = 15.0
)
