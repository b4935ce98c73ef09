package pong

import "time"

const (
	TickRate = 60

	// TickDuration is the fixed step, in seconds, used for all integration.
	TickDuration float32 = 1.0 / TickRate

	// TickInterval is the wall-clock period hosts should tick at.
	TickInterval = time.Second / TickRate

	PaddleOffset   float32 = 800
	PaddleSpeed    float32 = 275
	LaunchSpeed    float32 = 150
	SpeedIncrement float32 = 25
)

var (
	Extents    = Vector{X: 1920, Y: 1080}
	BallSize   = Vector{X: 20, Y: 20}
	PaddleSize = Vector{X: 20, Y: 160}
)

// PaddleBound is the largest |y| a paddle centre may reach.
func PaddleBound() float32 {
	return Extents.Y/2 - PaddleSize.Y/2
}

// WallBound is the |y| past which the ball reflects off the top or bottom wall.
func WallBound() float32 {
	return Extents.Y/2 - BallSize.Y/2
}

// GoalBound is the |x| past which the ball counts as out.
func GoalBound() float32 {
	return Extents.X/2 - BallSize.X/2
}
