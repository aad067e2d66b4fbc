package synth

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Frame is one stereo sample pair (left, right).
type Frame [2]int16

// Buffer is an immutable block of 16-bit stereo PCM.
type Buffer struct {
	SampleRate int
	Frames     []Frame
}

// Len returns the number of frames.
func (b *Buffer) Len() int {
	return len(b.Frames)
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Frames)) * time.Second / time.Duration(b.SampleRate)
}

// Peak returns the largest absolute sample value as a fraction of full scale.
func (b *Buffer) Peak() float64 {
	peak := 0
	for _, f := range b.Frames {
		for _, s := range f {
			v := int(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}
	return float64(peak) / fullScale
}

// Bytes returns the buffer as interleaved signed 16-bit little-endian PCM,
// the layout oto and ebiten expect.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.Frames)*4)
	for i, f := range b.Frames {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(f[0]))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(f[1]))
	}
	return out
}

// Format describes the buffer for beep consumers.
func (b *Buffer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(b.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// Streamer returns a new seekable beep stream over the buffer. Each call gets
// an independent read position, so the same buffer can play concurrently.
func (b *Buffer) Streamer() beep.StreamSeeker {
	return &bufferStreamer{buf: b}
}

type bufferStreamer struct {
	buf *Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf.Frames) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf.Frames) {
		f := s.buf.Frames[s.pos]
		samples[n][0] = float64(f[0]) / fullScale
		samples[n][1] = float64(f[1]) / fullScale
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error    { return nil }
func (s *bufferStreamer) Len() int      { return len(s.buf.Frames) }
func (s *bufferStreamer) Position() int { return s.pos }

func (s *bufferStreamer) Seek(p int) error {
	if p < 0 || p > len(s.buf.Frames) {
		return errors.New("synth: seek position out of range")
	}
	s.pos = p
	return nil
}

const fullScale = math.MaxInt16
