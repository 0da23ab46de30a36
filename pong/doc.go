// Package pong implements the two-player Pong simulation step.
//
// A Match owns one ball, two paddles, a decorative net and the court bounds. Each call to Step
// advances the simulation by one fixed tick: integration, wall bounce, a collision test against the
// paddle on the ball's half of the court, angle-based deflection, scoring and the win check.
//
// The package performs no I/O, has no clock and is not safe for concurrent use. The engine package
// provides the scheduler that owns a Match and the snapshot handoff to renderers.
package pong
