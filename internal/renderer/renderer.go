package renderer

import (
	"fmt"
	"io"
	"strings"

	"termpong/internal/ansii"
	"termpong/internal/netwrk"
	"termpong/internal/pong"
)

// Row 1 holds the score line; the playfield takes the rest of the screen.
const fieldTop = 2

// ToCell maps a world position, origin at the centre with y up, onto the terminal grid.
func ToCell(v pong.Vector, width, height int) ansii.Cell {
	rows := height - fieldTop + 1
	x := int((v.X + pong.Extents.X/2) / pong.Extents.X * float32(width))
	y := int((pong.Extents.Y/2 - v.Y) / pong.Extents.Y * float32(rows))

	return ansii.Cell{
		X: clampInt(x+1, 1, width),
		Y: clampInt(y+fieldTop, fieldTop, height),
	}
}

// scaled returns how many cells a world length covers, never less than one.
func scaled(length, extent float32, cells int) int {
	return max(1, int(length/extent*float32(cells)))
}

// Compose draws a full screen for f into a string.
func Compose(f netwrk.Frame, width, height int) string {
	var builder = strings.Builder{}
	builder.WriteString(string(ansii.Screen.ClearScreen))

	score := fmt.Sprintf("%d : %d", f.LeftScore, f.RightScore)
	ansii.DrawText(&builder, ansii.Cell{X: max(1, (width-len(score))/2+1), Y: 1}, score, ansii.Styles.Bold)

	rows := height - fieldTop + 1
	paddleRows := scaled(pong.PaddleSize.Y, pong.Extents.Y, rows)
	paddleCols := scaled(pong.PaddleSize.X, pong.Extents.X, width)

	for _, p := range []pong.Vector{
		{X: -pong.PaddleOffset, Y: f.LeftY + pong.PaddleSize.Y/2},
		{X: pong.PaddleOffset, Y: f.RightY + pong.PaddleSize.Y/2},
	} {
		ansii.DrawRect(&builder, ToCell(p, width, height), paddleRows, paddleCols, ansii.Colors.Cyan)
	}

	ansii.DrawRect(&builder, ToCell(f.Ball, width, height), 1, 1, ansii.Colors.White)

	return builder.String()
}

// Render writes one frame to w.
func Render(w io.Writer, f netwrk.Frame, width, height int) error {
	_, err := io.WriteString(w, Compose(f, width, height))
	return err
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
