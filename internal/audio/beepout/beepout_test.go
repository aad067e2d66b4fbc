package beepout

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

func TestSetVolume(t *testing.T) {
	tests := []struct {
		in     float64
		silent bool
		volume float64
	}{
		{1, false, 0},
		{0.5, false, -1},
		{0.25, false, -2},
		{0, true, 0},
		{-1, true, 0},
	}

	for _, tt := range tests {
		v := &effects.Volume{Base: 2}
		setVolume(v, tt.in)
		if v.Silent != tt.silent || math.Abs(v.Volume-tt.volume) > 1e-9 {
			t.Errorf("setVolume(%v) = silent %v volume %v, expected %v %v", tt.in, v.Silent, v.Volume, tt.silent, tt.volume)
		}
	}
}

func TestResampleKeepsMatchingRate(t *testing.T) {
	b := &Backend{rate: beep.SampleRate(44100)}
	buf := &synth.Buffer{SampleRate: 44100, Frames: make([]synth.Frame, 4)}
	s := buf.Streamer()
	if got := b.resample(buf, s); got != beep.Streamer(s) {
		t.Error("matching rates should not wrap the stream")
	}

	other := &synth.Buffer{SampleRate: 22050, Frames: make([]synth.Frame, 4)}
	if _, ok := b.resample(other, other.Streamer()).(*beep.Resampler); !ok {
		t.Error("a different rate should be resampled")
	}
}
