package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"termpong/internal/netwrk"
	"termpong/internal/renderer"
)

// SizeFunc reports the current terminal size.
type SizeFunc func() (width, height int)

// Watch renders every frame read from conn until the stream ends.
// A clean end of stream returns nil.
func Watch(conn io.Reader, out io.Writer, size SizeFunc) error {
	r := bufio.NewReader(conn)
	session := ""

	for {
		f, err := netwrk.ReadFrame(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading spectator stream: %w", err)
		}

		if f.Session != session {
			slog.Debug("watching session", slog.String("session", f.Session))
			session = f.Session
		}

		width, height := size()
		if err := renderer.Render(out, f, width, height); err != nil {
			return fmt.Errorf("rendering frame %d: %w", f.Tick, err)
		}
	}
}
