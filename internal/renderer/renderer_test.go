package renderer

import (
	"bytes"
	"strings"
	"testing"

	"termpong/internal/ansii"
	"termpong/internal/netwrk"
	"termpong/internal/pong"
)

func TestToCell(t *testing.T) {
	tests := []struct {
		name string
		in   pong.Vector
		want ansii.Cell
	}{
		{"centre", pong.Vector{}, ansii.Cell{X: 41, Y: 14}},
		{"top left", pong.Vector{X: -960, Y: 540}, ansii.Cell{X: 1, Y: 2}},
		{"bottom right clamps", pong.Vector{X: 960, Y: -540}, ansii.Cell{X: 80, Y: 25}},
		{"beyond the field clamps", pong.Vector{X: -5000, Y: 5000}, ansii.Cell{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCell(tt.in, 80, 25); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRender(t *testing.T) {
	f := netwrk.Frame{LeftScore: 3, RightScore: 1}

	var buf bytes.Buffer
	if err := Render(&buf, f, 80, 25); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, string(ansii.Screen.ClearScreen)) {
		t.Error("Expected the frame to start by clearing the screen")
	}
	if !strings.Contains(out, "3 : 1") {
		t.Error("Expected the score line in the frame")
	}
	ball := string(ansii.Screen.PlaceCursor(ansii.Cell{X: 41, Y: 14})) + ansii.Blocks.Block
	if !strings.Contains(out, ball) {
		t.Error("Expected the ball drawn at the centre cell")
	}
}
