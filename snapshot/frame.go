// Package snapshot holds the read-only per-tick view handed to renderers and out-of-process consumers
package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Player is one player's drawable state
type Player struct {
	Index     int     `msgpack:"i"`
	Name      string  `msgpack:"n"`
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Health    float64 `msgpack:"h"`
	MaxHealth float64 `msgpack:"mh"`
	Alive     bool    `msgpack:"a"`
}

// Frame is the committed state after a tick
type Frame struct {
	Tick    int64    `msgpack:"t"`
	MatchID string   `msgpack:"m"`
	Players []Player `msgpack:"p"`
}

// AliveCount returns the number of living players in the frame
func (f Frame) AliveCount() int {
	n := 0
	for _, p := range f.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy safe to hand across goroutines
func (f Frame) Clone() Frame {
	out := f
	out.Players = append([]Player(nil), f.Players...)
	return out
}

func Encode(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	return data, nil
}

func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}

// Stream writes consecutive frames to w as a msgpack sequence
type Stream struct {
	enc    *msgpack.Encoder
	frames int
}

func NewStream(w io.Writer) *Stream {
	return &Stream{enc: msgpack.NewEncoder(w)}
}

func (s *Stream) Write(f Frame) error {
	if err := s.enc.Encode(&f); err != nil {
		return fmt.Errorf("stream frame %d: %w", f.Tick, err)
	}
	s.frames++
	return nil
}

// Frames returns how many frames were written
func (s *Stream) Frames() int {
	return s.frames
}

// ReadAll decodes a frame sequence written by Stream, calling fn for each
func ReadAll(r io.Reader, fn func(Frame) error) error {
	dec := msgpack.NewDecoder(r)
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		if err := fn(f); err != nil {
			return err
		}
	}
}
