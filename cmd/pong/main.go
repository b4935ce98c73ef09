package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"termpong/internal/ansii"
	"termpong/internal/config"
	"termpong/internal/input"
	"termpong/internal/netwrk"
	"termpong/internal/pong"
	"termpong/internal/renderer"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLogging(config.Config)
	if err != nil {
		return err
	}
	defer closeLog()

	bindings, err := input.Rebind(config.Config.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	held := input.NewHeld(bindings, time.Duration(config.Config.HoldWindowMs)*time.Millisecond)

	seed := config.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	game := pong.NewGame(rand.NewSource(seed))
	game.Serve()

	var spectators *netwrk.Broadcaster
	session := ""
	if addr := config.Config.SpectateAddr; addr != "" {
		spectators, err = netwrk.Listen(addr)
		if err != nil {
			return err
		}
		defer spectators.Close()
		session = spectators.Session
		slog.Info("accepting spectators", slog.Any("addr", spectators.Addr()), slog.String("session", session))
	}

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("making terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.HideCursor))
	defer os.Stdout.WriteString(string(ansii.Screen.ClearScreen + ansii.Screen.ShowCursor))

	// Input handler
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				slog.Debug("stopped reading keys", slog.Any("error", err))
				return
			}
			held.Feed(buf[:n])
		}
	}()

	// Spectator writer, so a slow viewer never stalls a tick
	egress := make(chan netwrk.Frame, 1)
	defer close(egress)
	if spectators != nil {
		go func() {
			for f := range egress {
				spectators.Publish(f)
			}
		}()
	}

	ticker := time.NewTicker(pong.TickInterval)
	defer ticker.Stop()

	for range ticker.C {
		report := game.Tick(held)
		for _, s := range report.Scores {
			slog.Info("score", slog.String("player", s.Side.String()), slog.Int("score", s.Score))
		}

		frame := netwrk.FrameOf(session, game)
		width, height := ansii.GetTermSize()
		if err := renderer.Render(os.Stdout, frame, width, height); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}

		if spectators != nil {
			select {
			case egress <- frame:
			default:
			}
		}

		if report.Exit {
			slog.Info("exit requested", slog.Int("left", game.Left.Score), slog.Int("right", game.Right.Score))
			break
		}
	}

	return nil
}

// setupLogging points slog at the configured log file. The terminal belongs to the
// renderer while the game runs, so logs only go to stderr when no file is set.
func setupLogging(c config.Configuration) (func(), error) {
	slog.SetLogLoggerLevel(slog.Level(c.LogLevel))
	if c.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.Level(c.LogLevel)})))
	return func() { f.Close() }, nil
}
