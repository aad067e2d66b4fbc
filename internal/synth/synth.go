// Package synth builds sound effects and the background music loop from
// sine, square and noise formulas. Nothing is loaded from disk.
//
// Every generator works on a mono float signal in [-1, 1], scales it down to
// the ceiling when it peaks above it, quantizes round-to-nearest to int16
// and duplicates it to both channels.
package synth

import (
	"math"
	"math/rand"
	"time"
)

// Default synthesis parameters.
const (
	DefaultSampleRate = 44100
	DefaultCeiling    = 0.9
)

// Synth generates buffers at a fixed sample rate. Noise generators draw from
// the synth's own random source, so output is reproducible for a seed.
type Synth struct {
	rate    int
	ceiling float64
	rng     *rand.Rand
}

// New creates a synthesizer. Non-positive rate or ceiling fall back to the
// defaults.
func New(sampleRate int, ceiling float64, seed int64) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if ceiling <= 0 || ceiling > 1 {
		ceiling = DefaultCeiling
	}
	return &Synth{
		rate:    sampleRate,
		ceiling: ceiling,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// SampleRate returns the output sample rate.
func (s *Synth) SampleRate() int {
	return s.rate
}

// samples converts a duration to a frame count, rounding to nearest.
func (s *Synth) samples(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(s.rate)))
}

// mono quantizes a mono signal into a stereo buffer.
func (s *Synth) mono(x []float64) *Buffer {
	s.limit(x)
	frames := make([]Frame, len(x))
	for i, v := range x {
		q := quantize(v)
		frames[i] = Frame{q, q}
	}
	return &Buffer{SampleRate: s.rate, Frames: frames}
}

// stereo quantizes separate channels into a buffer, limiting both channels by
// their common peak.
func (s *Synth) stereo(left, right []float64) *Buffer {
	peak := math.Max(peakOf(left), peakOf(right))
	if peak > s.ceiling {
		scale(left, s.ceiling/peak)
		scale(right, s.ceiling/peak)
	}
	frames := make([]Frame, len(left))
	for i := range left {
		frames[i] = Frame{quantize(left[i]), quantize(right[i])}
	}
	return &Buffer{SampleRate: s.rate, Frames: frames}
}

// limit scales x down in place so its peak does not exceed the ceiling.
func (s *Synth) limit(x []float64) {
	if peak := peakOf(x); peak > s.ceiling {
		scale(x, s.ceiling/peak)
	}
}

func quantize(v float64) int16 {
	q := math.Round(v * fullScale)
	if q > fullScale {
		q = fullScale
	}
	if q < -fullScale {
		q = -fullScale
	}
	return int16(q)
}

func peakOf(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

func scale(x []float64, k float64) {
	for i := range x {
		x[i] *= k
	}
}

// applyFades multiplies the first and last fadeLen samples by linear ramps.
// fadeLen is capped at half the signal so the ramps never overlap.
func applyFades(x []float64, fadeLen int) {
	if fadeLen > len(x)/2 {
		fadeLen = len(x) / 2
	}
	if fadeLen <= 0 {
		return
	}
	for i := 0; i < fadeLen; i++ {
		g := ramp(i, fadeLen)
		x[i] *= g
		x[len(x)-1-i] *= g
	}
}

// ramp returns the i-th of n evenly spaced values from 0 to 1 inclusive.
func ramp(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// linspace returns n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*ramp(i, n)
	}
	if n == 1 {
		out[0] = a
	}
	return out
}

// movingAverage is a centered box filter with zero padding, the same shape as
// a "same"-mode convolution with a normalized window.
func movingAverage(x []float64, window int) []float64 {
	if window <= 1 || len(x) == 0 {
		return x
	}
	out := make([]float64, len(x))
	back := window / 2
	for i := range x {
		sum := 0.0
		for k := i - back; k < i-back+window; k++ {
			if k >= 0 && k < len(x) {
				sum += x[k]
			}
		}
		out[i] = sum / float64(window)
	}
	return out
}
