package input

import (
	"fmt"
	"strings"

	"termpong/internal/pong"
)

const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEsc   = "esc"
	KeyCtrlC = "ctrl+c"
)

// Decode splits raw terminal bytes into key names. Printable keys are lower-cased,
// arrow escape sequences become "up", "down", "left" and "right".
func Decode(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 3:
			keys = append(keys, KeyCtrlC)
		case b == 27:
			// Esc char, possibly the start of an arrow key
			if i+2 < len(buf) && buf[i+1] == '[' {
				if k, ok := arrow(buf[i+2]); ok {
					keys = append(keys, k)
					i += 2
					continue
				}
			}
			keys = append(keys, KeyEsc)
		case b >= 'A' && b <= 'Z':
			keys = append(keys, string(rune(b+32)))
		case b > 32 && b < 127:
			keys = append(keys, string(rune(b)))
		}
	}
	return keys
}

func arrow(b byte) (string, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return "", false
}

// Bindings maps key names to the control they drive.
type Bindings map[string]pong.Control

func DefaultBindings() Bindings {
	return Bindings{
		"w":      pong.ControlLeftUp,
		"s":      pong.ControlLeftDown,
		KeyUp:    pong.ControlRightUp,
		KeyDown:  pong.ControlRightDown,
		"q":      pong.ControlExit,
		KeyEsc:   pong.ControlExit,
		KeyCtrlC: pong.ControlExit,
	}
}

// ParseControl is the inverse of pong.Control.String.
func ParseControl(name string) (pong.Control, error) {
	for _, c := range []pong.Control{pong.ControlLeftUp, pong.ControlLeftDown, pong.ControlRightUp, pong.ControlRightDown, pong.ControlExit} {
		if c.String() == strings.ToLower(name) {
			return c, nil
		}
	}
	return pong.ControlNone, fmt.Errorf("unknown control %q", name)
}

// Rebind starts from the defaults and moves each named control onto its configured key.
// Ctrl+C always exits so a bad config can't trap the terminal.
func Rebind(keys map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for name, key := range keys {
		c, err := ParseControl(name)
		if err != nil {
			return nil, err
		}
		for k, bound := range b {
			if bound == c && k != KeyCtrlC {
				delete(b, k)
			}
		}
		b[strings.ToLower(key)] = c
	}
	b[KeyCtrlC] = pong.ControlExit
	return b, nil
}
