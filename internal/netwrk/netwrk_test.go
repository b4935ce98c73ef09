package netwrk

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"golang.org/x/exp/rand"
	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/pong"
)

func sampleFrame() Frame {
	return Frame{
		Session:    "match",
		Tick:       1234,
		Ball:       pong.Vector{X: -12.5, Y: 300.25},
		LeftY:      -460,
		LeftScore:  3,
		RightY:     17.75,
		RightScore: 11,
	}
}

func TestFrameRoundTrip(t *testing.T) {
	want := sampleFrame()
	got, err := Unmarshal(Marshal(want))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer host")
	b = protowire.AppendTag(b, 100, protowire.VarintType)
	b = protowire.AppendVarint(b, 5)
	b = append(b, Marshal(sampleFrame())...)

	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != sampleFrame() {
		t.Errorf("Expected %+v, got %+v", sampleFrame(), got)
	}
}

func TestUnmarshalRejectsTruncated(t *testing.T) {
	b := Marshal(sampleFrame())
	if _, err := Unmarshal(b[:len(b)-2]); !errors.Is(err, ErrMalformedFrame) {
		t.Errorf("Expected ErrMalformedFrame, got %v", err)
	}
}

func TestFrameOf(t *testing.T) {
	g := pong.NewGame(rand.NewSource(1))
	g.Left.Score = 2
	g.Right.Pos.Y = 40
	g.Ball.Pos = pong.Vector{X: 5, Y: 6}
	g.Tick(nil)

	f := FrameOf("s", g)
	if f.Tick != 1 || f.LeftScore != 2 || f.RightY != 40 || f.Ball != g.Ball.Pos {
		t.Errorf("unexpected frame %+v", f)
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	first, second := sampleFrame(), sampleFrame()
	second.Tick++

	for _, f := range []Frame{first, second} {
		if err := WriteFrame(&buf, f); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}

	r := bufio.NewReader(&buf)
	for _, want := range []Frame{first, second} {
		got, err := ReadFrame(r)
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	}

	if _, err := ReadFrame(r); err != io.EOF {
		t.Errorf("Expected io.EOF at the end of the stream, got %v", err)
	}
}

func TestReadFrameRejectsOversize(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader(protowire.AppendVarint(nil, maxFrameSize+1)))
	if _, err := ReadFrame(r); !errors.Is(err, ErrMalformedFrame) {
		t.Errorf("Expected ErrMalformedFrame, got %v", err)
	}
}

func TestBroadcasterDeliversToSpectator(t *testing.T) {
	b, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer b.Close()

	conn, err := net.Dial("tcp", b.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for b.Viewers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("spectator never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	b.Publish(sampleFrame())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	got, err := ReadFrame(bufio.NewReader(conn))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}

	want := sampleFrame()
	want.Session = b.Session
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
