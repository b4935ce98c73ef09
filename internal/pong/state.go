package pong

type Vector struct {
	X float32
	Y float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Side identifies a player. Left is the zero value.
type Side bool

const (
	Left  Side = false
	Right Side = true
)

func (s Side) Opposite() Side {
	return !s
}

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Control is an abstract input identifier. The host decides which physical keys map to it.
type Control int

const (
	ControlNone Control = iota
	ControlLeftUp
	ControlLeftDown
	ControlRightUp
	ControlRightDown
	ControlExit
)

func (c Control) String() string {
	switch c {
	case ControlLeftUp:
		return "left_up"
	case ControlLeftDown:
		return "left_down"
	case ControlRightUp:
		return "right_up"
	case ControlRightDown:
		return "right_down"
	case ControlExit:
		return "exit"
	}
	return "none"
}

// Input answers whether a control is currently held.
type Input interface {
	Held(c Control) bool
}

type Ball struct {
	Pos Vector
	Vel Vector
}

type Paddle struct {
	Side  Side
	Score int
	Up    Control
	Down  Control
	Pos   Vector
}

// Goal records which side's boundary the ball crossed.
type Goal struct {
	Boundary Side
}

// Scorer is the side that gets the point for this goal.
func (g Goal) Scorer() Side {
	return g.Boundary.Opposite()
}

type ScoreChanged struct {
	Side  Side
	Score int
}

// Report is everything a tick hands back to the host.
type Report struct {
	Goals  []Goal
	Scores []ScoreChanged
	Exit   bool
}
