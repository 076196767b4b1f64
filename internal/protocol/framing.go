package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxFrameSize bounds a single wire frame. A peer that sends more without a
// newline is not speaking the protocol; the connection must be closed.
const MaxFrameSize = 64 * 1024

// ErrFrameTooLarge reports a frame exceeding MaxFrameSize. Unlike a bad
// message body, this is unrecoverable: the stream position is lost.
var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

// NewFrameReader returns a reader sized so that ReadFrame can detect
// oversized frames. Pass its result to ReadFrame.
func NewFrameReader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, MaxFrameSize)
}

// ReadFrame reads one newline-delimited frame and returns its body without
// the delimiter. The returned slice is a copy and stays valid across
// subsequent reads. io.EOF is returned unwrapped so callers can detect a
// clean peer close.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadSlice('\n')
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return nil, ErrFrameTooLarge
		}
		if errors.Is(err, io.EOF) && len(line) == 0 {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading frame: %w", err)
	}

	body := make([]byte, len(line)-1)
	copy(body, line[:len(line)-1])
	return body, nil
}

// WriteFrame marshals v and writes it as one newline-terminated frame.
// encoding/json never emits raw newlines, so the delimiter stays unambiguous.
func WriteFrame(w io.Writer, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	body = append(body, '\n')
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
