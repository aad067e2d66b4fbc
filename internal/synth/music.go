package synth

import "math"

var (
	loopChords = [][]float64{
		{146.83, 220.00, 293.66}, // D minor
		{130.81, 196.00, 261.63}, // C minor
		{146.83, 220.00, 293.66}, // D minor
		{116.54, 174.61, 233.08}, // Bb major
	}
	loopBass = []float64{73.42, 73.42, 73.42, 58.27, 87.31, 73.42, 58.27, 87.31, 73.42} // D D D Bb F D Bb F D
)

// MusicLoop renders the background loop: a four-chord pad on the left, a bass
// line on both channels, square-wave arpeggios on the right, a noise whoosh
// every bar and a click on every beat. The result is normalized so its peak
// sits exactly at the ceiling.
func (s *Synth) MusicLoop(seconds, bpm float64) *Buffer {
	total := int(float64(s.rate) * seconds)
	if total <= 0 || bpm <= 0 {
		return s.mono(nil)
	}
	left := make([]float64, total)
	right := make([]float64, total)

	perBeat := int(60 / bpm * float64(s.rate))
	perChord := perBeat * 4

	for i, chord := range loopChords {
		start := i * perChord
		if start >= total {
			break
		}
		end := min(start+perChord, total)
		n := end - start

		pad := make([]float64, n)
		for _, f := range chord {
			for j := range pad {
				t := float64(j) / float64(s.rate)
				pad[j] += 0.15*math.Sin(2*math.Pi*f*t) +
					0.05*math.Sin(2*math.Pi*2*f*t) +
					0.05*math.Sin(2*math.Pi*1.01*f*t)
			}
		}
		for j := range pad {
			pad[j] = (pad[j] + (s.rng.Float64()*0.04 - 0.02)) / float64(len(chord))
			pad[j] *= padEnvelope(j, n, perChord)
			left[start+j] += pad[j] * 0.7
		}

		bass := loopBass[i%len(loopBass)]
		sweep := linspace(0.5, 1.0, n)
		for j := 0; j < n; j++ {
			t := float64(j) / float64(s.rate)
			v := 0.3*math.Sin(2*math.Pi*bass*t) +
				0.15*math.Sin(2*math.Pi*2*bass*t) +
				0.05*math.Sin(2*math.Pi*3*bass*t)
			v *= sweep[j] * bassEnvelope(j, perChord)
			left[start+j] += v * 0.5
			right[start+j] += v * 0.8
		}

		for k := 0; k < 8; k++ {
			bs := start + k*(perBeat/2)
			if bs >= total {
				continue
			}
			be := min(bs+perBeat/2, total)
			arp := s.square(chord[k%len(chord)], be-bs)
			scale(arp, 0.1)
			arp = movingAverage(arp, 5)
			arpEnvelope(arp)
			for j, v := range arp {
				right[bs+j] += v
			}
		}
	}

	for i := 0; i+1000 <= total && perBeat > 0; i += perBeat {
		if (i/perBeat)%4 == 0 {
			whoosh := s.whoosh(min(perBeat, total-i))
			for j, v := range whoosh {
				left[i+j] += v * 0.2
				right[i+j] += v * 0.2
			}
		}
		env := linspace(0, 10, 100)
		for j := 0; j < 100; j++ {
			v := (s.rng.Float64()*0.2 - 0.1) * math.Exp(-env[j]) * 0.1
			left[i+j] += v
			right[i+j] += v
		}
	}

	if peak := math.Max(peakOf(left), peakOf(right)); peak > 0 {
		scale(left, s.ceiling/peak)
		scale(right, s.ceiling/peak)
	}
	return s.stereo(left, right)
}

// whoosh is decaying noise through a one-pole low-pass whose cutoff closes
// over the length of the sound.
func (s *Synth) whoosh(n int) []float64 {
	env := linspace(0, 5, n)
	x := make([]float64, n)
	for j := range x {
		x[j] = (s.rng.Float64()*0.2 - 0.1) * math.Exp(-env[j])
		if j > 0 {
			cutoff := 0.1 + 0.8*(1-float64(j)/float64(n))
			x[j] = x[j]*cutoff + x[j-1]*(1-cutoff)
		}
	}
	return x
}

// padEnvelope: 10% attack, 20% decay to 0.7, sustain, 30% release to 0.2.
func padEnvelope(j, n, perChord int) float64 {
	attack := perChord / 10
	decay := perChord / 5
	release := perChord * 3 / 10
	switch {
	case n-release > 0 && j >= n-release:
		return 0.7 - 0.5*ramp(j-(n-release), release)
	case j < attack:
		return ramp(j, attack)
	case j < attack+decay:
		return 1 - 0.3*ramp(j-attack, decay)
	default:
		return 1
	}
}

// bassEnvelope: 5% attack, 30% decay to 0.3, full level afterwards.
func bassEnvelope(j, perChord int) float64 {
	attack := perChord / 20
	decay := perChord * 3 / 10
	switch {
	case j < attack:
		return ramp(j, attack)
	case j < attack+decay:
		return 1 - 0.7*ramp(j-attack, decay)
	default:
		return 1
	}
}

// arpEnvelope applies a 10% attack and a 70% release in place.
func arpEnvelope(x []float64) {
	n := len(x)
	attack := n / 10
	release := n * 7 / 10
	for j := 0; j < attack; j++ {
		x[j] *= ramp(j, attack)
	}
	for j := 0; j < release; j++ {
		x[n-release+j] *= 1 - ramp(j, release)
	}
}
