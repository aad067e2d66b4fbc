// Package beepout plays mixer output through the beep speaker.
package beepout

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

func init() {
	registry.Register("beep", "system speaker via gopxl/beep", func(opts registry.Options) (audio.Backend, error) {
		return New(opts.SampleRate)
	})
}

// Backend feeds one beep.Mixer into the speaker. Effects are added to the
// mixer as they are requested; the music loop sits behind its own volume
// control so it can be faded without touching effects.
type Backend struct {
	rate       beep.SampleRate
	mixer      *beep.Mixer
	loop       *beep.Ctrl
	loopVolume *effects.Volume
}

// New initializes the speaker with a 100ms buffer and starts the mixer.
func New(sampleRate int) (*Backend, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	b := &Backend{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
	speaker.Play(b.mixer)
	return b, nil
}

// Play adds a one-shot stream to the mixer.
func (b *Backend) Play(buf *synth.Buffer, volume float64) error {
	s := b.resample(buf, buf.Streamer())
	speaker.Lock()
	b.mixer.Add(withVolume(s, volume))
	speaker.Unlock()
	return nil
}

// StartLoop replaces the music loop.
func (b *Backend) StartLoop(buf *synth.Buffer, volume float64) error {
	vol := withVolume(b.resample(buf, beep.Loop(-1, buf.Streamer())), volume)
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Lock()
	b.detachLoop()
	b.loop, b.loopVolume = ctrl, vol
	b.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

// SetLoopVolume changes the music level.
func (b *Backend) SetLoopVolume(volume float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if b.loopVolume != nil {
		setVolume(b.loopVolume, volume)
	}
}

// StopLoop detaches the music stream.
func (b *Backend) StopLoop() {
	speaker.Lock()
	defer speaker.Unlock()
	b.detachLoop()
}

// detachLoop empties the loop control; the mixer drops a drained Ctrl on its
// next read. Callers hold the speaker lock.
func (b *Backend) detachLoop() {
	if b.loop != nil {
		b.loop.Streamer = nil
	}
	b.loop, b.loopVolume = nil, nil
}

// StopAll clears the mixer.
func (b *Backend) StopAll() {
	speaker.Lock()
	defer speaker.Unlock()
	b.mixer.Clear()
	b.loop, b.loopVolume = nil, nil
}

// Close stops output.
func (b *Backend) Close() error {
	b.StopAll()
	speaker.Clear()
	return nil
}

// resample converts streams rendered at another rate to the speaker rate.
func (b *Backend) resample(buf *synth.Buffer, s beep.Streamer) beep.Streamer {
	from := beep.SampleRate(buf.SampleRate)
	if from == b.rate {
		return s
	}
	return beep.Resample(4, from, b.rate, s)
}

func withVolume(s beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, volume)
	return v
}

// setVolume maps a linear [0, 1] level onto the logarithmic volume effect.
func setVolume(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(volume)
}
