package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Cell is a 1-indexed terminal position.
type Cell struct {
	X int
	Y int
}

type style struct {
	Reset ANSI
	Plain ANSI
	Bold  ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
}

var (
	Styles = style{Bold: bold, Reset: reset, Plain: plain}
	Colors = color{Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█"}
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// GetTermSize reports the size of stdout, or 80x24 when stdout isn't a terminal.
func GetTermSize() (width int, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

func (s screen) PlaceCursor(c Cell) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", c.Y, c.X))
}

// DrawRect fills a `width` x `height` block of cells whose top left cell is `at`.
func DrawRect(builder *strings.Builder, at Cell, height int, width int, style ANSI) {
	builder.WriteString(string(style))
	for y := range height {
		builder.WriteString(string(Screen.PlaceCursor(Cell{X: at.X, Y: at.Y + y})))
		builder.WriteString(strings.Repeat(Blocks.Block, width))
	}
	builder.WriteString(string(Styles.Reset))
}

// DrawText writes s starting at `at`.
func DrawText(builder *strings.Builder, at Cell, s string, style ANSI) {
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(at)))
	builder.WriteString(s)
	builder.WriteString(string(Styles.Reset))
}
