package client

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"termpong/internal/netwrk"
)

func fixedSize() (int, int) {
	return 80, 25
}

func TestWatchRendersEveryFrame(t *testing.T) {
	var stream bytes.Buffer
	for i, score := range []int{1, 2} {
		f := netwrk.Frame{Session: "s", Tick: uint64(i), LeftScore: score}
		if err := netwrk.WriteFrame(&stream, f); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}

	var out bytes.Buffer
	if err := Watch(&stream, &out, fixedSize); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	for _, want := range []string{"1 : 0", "2 : 0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in the output", want)
		}
	}
}

func TestWatchReportsBrokenStream(t *testing.T) {
	var stream bytes.Buffer
	netwrk.WriteFrame(&stream, netwrk.Frame{Tick: 1})
	b := stream.Bytes()

	err := Watch(bytes.NewReader(b[:len(b)-1]), &bytes.Buffer{}, fixedSize)
	if err == nil {
		t.Fatal("Expected an error for a truncated frame")
	}
	if errors.Is(err, netwrk.ErrMalformedFrame) {
		t.Errorf("Expected a read error rather than a decode error, got %v", err)
	}
}
