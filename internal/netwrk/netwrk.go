package netwrk

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

const writeTimeout = 50 * time.Millisecond

// Broadcaster streams frames to read-only spectators. Every match gets its own session id.
type Broadcaster struct {
	Session  string
	listener net.Listener
	viewers  sync.Map
}

// Listen starts accepting spectator connections on addr in the background.
func Listen(addr string) (*Broadcaster, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening for spectators on %s: %w", addr, err)
	}

	b := &Broadcaster{
		Session:  uuid.NewString(),
		listener: listener,
	}
	go b.accept()

	return b, nil
}

func (b *Broadcaster) Addr() net.Addr {
	return b.listener.Addr()
}

func (b *Broadcaster) accept() {
	for {
		conn, err := b.listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			slog.Debug("spectator accept failed", slog.Any("error", err))
			continue
		}

		id := uuid.NewString()
		b.viewers.Store(id, conn)
		slog.Debug("spectator connected", slog.String("viewer", id), slog.Any("remote", conn.RemoteAddr()))
	}
}

// Viewers returns the number of connected spectators.
func (b *Broadcaster) Viewers() int {
	n := 0
	b.viewers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Publish stamps f with the session id and sends it to every spectator.
// Spectators that can't keep up are dropped.
func (b *Broadcaster) Publish(f Frame) {
	f.Session = b.Session
	msg := delimit(Marshal(f))

	var disconnected []string
	b.viewers.Range(func(id, v any) bool {
		conn := v.(net.Conn)
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if _, err := conn.Write(msg); err != nil {
			slog.Debug("dropping spectator", slog.Any("viewer", id), slog.Any("error", err))
			disconnected = append(disconnected, id.(string))
		}
		return true
	})

	for _, id := range disconnected {
		if v, ok := b.viewers.LoadAndDelete(id); ok {
			v.(net.Conn).Close()
		}
	}
}

// Close stops accepting spectators and disconnects the ones already watching.
func (b *Broadcaster) Close() error {
	err := b.listener.Close()
	b.viewers.Range(func(id, v any) bool {
		v.(net.Conn).Close()
		b.viewers.Delete(id)
		return true
	})
	return err
}
