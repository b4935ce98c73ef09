package netwrk

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

const maxFrameSize = 4096

// WriteFrame writes f with a uvarint length prefix.
func WriteFrame(w io.Writer, f Frame) error {
	_, err := w.Write(delimit(Marshal(f)))
	return err
}

func delimit(msg []byte) []byte {
	b := protowire.AppendVarint(make([]byte, 0, len(msg)+2), uint64(len(msg)))
	return append(b, msg...)
}

// ReadFrame reads one length-prefixed frame. It returns io.EOF only on a clean stream end.
func ReadFrame(r *bufio.Reader) (Frame, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return Frame{}, err
	}
	if size > maxFrameSize {
		return Frame{}, fmt.Errorf("%w: frame of %d bytes", ErrMalformedFrame, size)
	}

	msg := make([]byte, size)
	if _, err := io.ReadFull(r, msg); err != nil {
		return Frame{}, fmt.Errorf("reading frame body: %w", err)
	}
	return Unmarshal(msg)
}
