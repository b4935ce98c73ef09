package pong

import (
	"log/slog"

	"golang.org/x/exp/rand"
)

// Game owns the ball and both paddles and advances them one fixed tick at a time.
// It is not safe for concurrent use; the tick driver owns it.
type Game struct {
	Ball  Ball
	Left  Paddle
	Right Paddle
	Ticks uint64

	rng     *rand.Rand
	pending []Goal
}

// NewGame places the ball at the centre at rest and the paddles at their offsets.
// Call Serve to give the ball its first velocity.
func NewGame(src rand.Source) *Game {
	return &Game{
		Ball: Ball{},
		Left: Paddle{
			Side: Left,
			Up:   ControlLeftUp,
			Down: ControlLeftDown,
			Pos:  Vector{X: -PaddleOffset, Y: 0},
		},
		Right: Paddle{
			Side: Right,
			Up:   ControlRightUp,
			Down: ControlRightDown,
			Pos:  Vector{X: PaddleOffset, Y: 0},
		},
		rng: rand.New(src),
	}
}

// Serve launches the ball from wherever it is with a fresh random direction.
func (g *Game) Serve() {
	g.Ball.Vel = Vector{
		X: LaunchSpeed * g.randomSign(),
		Y: LaunchSpeed * g.randomSign(),
	}
}

func (g *Game) randomSign() float32 {
	return float32(g.rng.Intn(2)*2 - 1)
}

// Paddle returns the paddle playing on side s.
func (g *Game) Paddle(s Side) *Paddle {
	if s == Right {
		return &g.Right
	}
	return &g.Left
}

func (g *Game) paddles() [2]*Paddle {
	return [2]*Paddle{&g.Left, &g.Right}
}

// Tick runs one fixed step: movement, bounds and goal detection, collision, and
// then resolution of any goals raised along the way.
func (g *Game) Tick(in Input) Report {
	r := Report{Exit: held(in, ControlExit)}

	g.move(in)
	g.checkBounds()
	g.checkCollisions()
	r.Goals, r.Scores = g.resolveGoals()

	g.Ticks++
	return r
}

func held(in Input, c Control) bool {
	return in != nil && in.Held(c)
}

func (g *Game) move(in Input) {
	for _, p := range g.paddles() {
		var factor float32
		up, down := held(in, p.Up), held(in, p.Down)
		switch {
		case up && !down:
			factor = 1
		case down && !up:
			factor = -1
		}
		p.Pos.Y = clamp(p.Pos.Y+factor*PaddleSpeed*TickDuration, PaddleBound())
	}

	g.Ball.Pos = g.Ball.Pos.Add(g.Ball.Vel.Scale(TickDuration))
}

func (g *Game) checkBounds() {
	if abs(g.Ball.Pos.Y) > WallBound() {
		g.Ball.Vel.Y = -g.Ball.Vel.Y
	}

	if abs(g.Ball.Pos.X) > GoalBound() {
		goal := Goal{Boundary: Right}
		if g.Ball.Pos.X < 0 {
			goal.Boundary = Left
		}
		g.pending = append(g.pending, goal)
	}
}

// checkCollisions reflects and speeds up the ball for every paddle it overlaps.
// Shapes are not separated, so a ball that stays embedded reflects again next tick.
func (g *Game) checkCollisions() {
	for _, p := range g.paddles() {
		if !overlaps(g.Ball, *p) {
			continue
		}
		g.Ball.Vel.X = -g.Ball.Vel.X
		g.Ball.Vel.X += sign(g.Ball.Vel.X) * SpeedIncrement
		slog.Debug("paddle hit", slog.String("side", p.Side.String()), slog.Any("velocity", g.Ball.Vel))
	}
}

func overlaps(b Ball, p Paddle) bool {
	return abs(p.Pos.X-b.Pos.X) < 0.5*(BallSize.X+PaddleSize.X) &&
		abs(p.Pos.Y-b.Pos.Y) < 0.5*(BallSize.Y+PaddleSize.Y)
}

func (g *Game) resolveGoals() ([]Goal, []ScoreChanged) {
	goals := g.pending
	g.pending = nil

	var scores []ScoreChanged
	for _, goal := range goals {
		g.Ball.Pos = Vector{}
		g.Serve()

		for _, p := range g.paddles() {
			if p.Side == goal.Scorer() {
				p.Score++
			}
			scores = append(scores, ScoreChanged{Side: p.Side, Score: p.Score})
		}
		slog.Debug("goal", slog.String("boundary", goal.Boundary.String()), slog.Int("left", g.Left.Score), slog.Int("right", g.Right.Score))
	}

	return goals, scores
}

func clamp(v, bound float32) float32 {
	return max(-bound, min(v, bound))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
