package netwrk

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/pong"
)

var ErrMalformedFrame = errors.New("malformed frame")

// Frame is one tick's worth of state as seen by a renderer.
type Frame struct {
	Session    string
	Tick       uint64
	Ball       pong.Vector
	LeftY      float32
	LeftScore  int
	RightY     float32
	RightScore int
}

func FrameOf(session string, g *pong.Game) Frame {
	return Frame{
		Session:    session,
		Tick:       g.Ticks,
		Ball:       g.Ball.Pos,
		LeftY:      g.Left.Pos.Y,
		LeftScore:  g.Left.Score,
		RightY:     g.Right.Pos.Y,
		RightScore: g.Right.Score,
	}
}

// Field numbers of the Frame message.
const (
	fieldSession    protowire.Number = 1
	fieldTick       protowire.Number = 2
	fieldBallX      protowire.Number = 3
	fieldBallY      protowire.Number = 4
	fieldLeftY      protowire.Number = 5
	fieldLeftScore  protowire.Number = 6
	fieldRightY     protowire.Number = 7
	fieldRightScore protowire.Number = 8
)

func Marshal(f Frame) []byte {
	b := make([]byte, 0, 64+len(f.Session))
	b = protowire.AppendTag(b, fieldSession, protowire.BytesType)
	b = protowire.AppendString(b, f.Session)
	b = protowire.AppendTag(b, fieldTick, protowire.VarintType)
	b = protowire.AppendVarint(b, f.Tick)
	b = appendFloat(b, fieldBallX, f.Ball.X)
	b = appendFloat(b, fieldBallY, f.Ball.Y)
	b = appendFloat(b, fieldLeftY, f.LeftY)
	b = protowire.AppendTag(b, fieldLeftScore, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.LeftScore))
	b = appendFloat(b, fieldRightY, f.RightY)
	b = protowire.AppendTag(b, fieldRightScore, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.RightScore))
	return b
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

// Unmarshal decodes a Frame, skipping fields it does not know.
func Unmarshal(b []byte) (Frame, error) {
	var f Frame
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldSession && typ == protowire.BytesType:
			var s string
			s, n = protowire.ConsumeString(b)
			f.Session = s
		case num == fieldTick && typ == protowire.VarintType:
			f.Tick, n = protowire.ConsumeVarint(b)
		case num == fieldLeftScore && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			f.LeftScore = int(v)
		case num == fieldRightScore && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			f.RightScore = int(v)
		case typ == protowire.Fixed32Type && num >= fieldBallX && num <= fieldRightY:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			setFloat(&f, num, math.Float32frombits(v))
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return Frame{}, fmt.Errorf("%w: field %d: %v", ErrMalformedFrame, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return f, nil
}

func setFloat(f *Frame, num protowire.Number, v float32) {
	switch num {
	case fieldBallX:
		f.Ball.X = v
	case fieldBallY:
		f.Ball.Y = v
	case fieldLeftY:
		f.LeftY = v
	case fieldRightY:
		f.RightY = v
	}
}
