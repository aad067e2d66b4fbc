package synth

import (
	"math"
	"time"
)

// Fade lengths as a fraction of the shaped segment.
const (
	toneFade = 0.1
	noteFade = 0.2
)

// Tone returns a sine wave with 10% linear fades on each side.
func (s *Synth) Tone(freq float64, d time.Duration, volume float64) *Buffer {
	x := s.sine(freq, s.samples(d))
	applyFades(x, int(float64(len(x))*toneFade))
	scale(x, volume)
	return s.mono(x)
}

// Sweep returns a sine whose frequency glides from start to end with
// logarithmic interpolation. The phase is integrated sample by sample so the
// glide has no discontinuities.
func (s *Synth) Sweep(start, end float64, d time.Duration, volume float64) *Buffer {
	phase := s.sweepPhase(start, end, s.samples(d))
	x := make([]float64, len(phase))
	for i, p := range phase {
		x[i] = math.Sin(p)
	}
	applyFades(x, int(float64(len(x))*toneFade))
	scale(x, volume)
	return s.mono(x)
}

// sweepPhase returns the accumulated phase of a log-interpolated glide.
func (s *Synth) sweepPhase(start, end float64, n int) []float64 {
	if n <= 0 || start <= 0 || end <= 0 {
		return nil
	}
	logs := linspace(math.Log(start), math.Log(end), n)
	phase := make([]float64, n)
	acc := 0.0
	for i, l := range logs {
		acc += 2 * math.Pi * math.Exp(l) / float64(s.rate)
		phase[i] = acc
	}
	return phase
}

// Arpeggio plays the frequencies one after another, each note a sine of
// perNote length with its own 20% fades.
func (s *Synth) Arpeggio(freqs []float64, perNote time.Duration, volume float64) *Buffer {
	n := s.samples(perNote)
	x := make([]float64, 0, n*len(freqs))
	for _, f := range freqs {
		note := s.sine(f, n)
		applyFades(note, int(float64(n)*noteFade))
		x = append(x, note...)
	}
	scale(x, volume)
	return s.mono(x)
}

// NoiseBurst returns white noise under an exponential decay envelope
// exp(-decay*t/d), softened by a 10-sample moving average.
func (s *Synth) NoiseBurst(d time.Duration, decay, volume float64) *Buffer {
	n := s.samples(d)
	env := linspace(0, decay, n)
	x := make([]float64, n)
	for i := range x {
		x[i] = (s.rng.Float64()*2 - 1) * math.Exp(-env[i])
	}
	x = movingAverage(x, 10)
	scale(x, volume)
	return s.mono(x)
}

// Chord sums sines at the given frequencies, divided by the component count,
// with 20% fades.
func (s *Synth) Chord(freqs []float64, d time.Duration, volume float64) *Buffer {
	n := s.samples(d)
	if len(freqs) == 0 {
		n = 0
	}
	x := make([]float64, n)
	for _, f := range freqs {
		for i, v := range s.sine(f, n) {
			x[i] += v
		}
	}
	if len(freqs) > 0 {
		scale(x, 1/float64(len(freqs)))
	}
	applyFades(x, int(float64(n)*noteFade))
	scale(x, volume)
	return s.mono(x)
}

// Beeps returns count square-wave beeps separated by silent gaps.
func (s *Synth) Beeps(freq float64, count int, beep, gap time.Duration, volume float64) *Buffer {
	bn, gn := s.samples(beep), s.samples(gap)
	if bn == 0 || count <= 0 {
		return s.mono(nil)
	}
	x := make([]float64, 0, count*bn+(count-1)*gn)
	for i := 0; i < count; i++ {
		if i > 0 {
			x = append(x, make([]float64, gn)...)
		}
		b := s.square(freq, bn)
		applyFades(b, int(float64(bn)*noteFade))
		x = append(x, b...)
	}
	scale(x, volume)
	return s.mono(x)
}

func (s *Synth) sine(freq float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(s.rate))
	}
	return x
}

func (s *Synth) square(freq float64, n int) []float64 {
	x := s.sine(freq, n)
	for i, v := range x {
		switch {
		case v > 0:
			x[i] = 1
		case v < 0:
			x[i] = -1
		}
	}
	return x
}
