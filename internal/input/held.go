package input

import (
	"log/slog"
	"sync"
	"time"

	"termpong/internal/pong"
)

// DefaultHoldWindow is how long a key press counts as held. Terminals only report
// presses, so a held key is one whose autorepeat keeps refreshing it.
const DefaultHoldWindow = 200 * time.Millisecond

// Held tracks which controls are currently held. Press is called from the key reader,
// Held from the tick loop.
type Held struct {
	mu       sync.Mutex
	bindings Bindings
	window   time.Duration
	now      func() time.Time
	pressed  map[pong.Control]time.Time
}

func NewHeld(bindings Bindings, window time.Duration) *Held {
	return &Held{
		bindings: bindings,
		window:   window,
		now:      time.Now,
		pressed:  map[pong.Control]time.Time{},
	}
}

// Feed decodes raw terminal bytes and presses every bound key found.
func (h *Held) Feed(buf []byte) {
	for _, k := range Decode(buf) {
		c, ok := h.bindings[k]
		if !ok {
			slog.Debug("unbound key", slog.String("key", k))
			continue
		}
		h.Press(c)
	}
}

// Press marks c as held and releases the opposite direction of the same paddle.
func (h *Held) Press(c pong.Control) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pressed[c] = h.now()
	if o := opposite(c); o != pong.ControlNone {
		delete(h.pressed, o)
	}
}

func (h *Held) Held(c pong.Control) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	at, ok := h.pressed[c]
	if !ok {
		return false
	}
	if h.now().Sub(at) >= h.window {
		delete(h.pressed, c)
		return false
	}
	return true
}

func opposite(c pong.Control) pong.Control {
	switch c {
	case pong.ControlLeftUp:
		return pong.ControlLeftDown
	case pong.ControlLeftDown:
		return pong.ControlLeftUp
	case pong.ControlRightUp:
		return pong.ControlRightDown
	case pong.ControlRightDown:
		return pong.ControlRightUp
	}
	return pong.ControlNone
}
