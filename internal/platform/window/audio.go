package window

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	mixer "github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

func init() {
	registry.Register("ebiten", "ebiten audio context, for the window frontend", func(opts registry.Options) (mixer.Backend, error) {
		return NewAudio(opts.SampleRate), nil
	})
}

// Audio plays mixer output through the process-wide ebiten audio context.
// Players of finished one-shots are closed on the next Play.
type Audio struct {
	ctx *audio.Context

	mu      sync.Mutex
	playing []*audio.Player
	loop    *audio.Player
}

// NewAudio returns a backend on the current ebiten audio context, creating it
// at sampleRate if there is none yet.
func NewAudio(sampleRate int) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Audio{ctx: ctx}
}

func (a *Audio) checkRate(buf *synth.Buffer) error {
	if buf.SampleRate != a.ctx.SampleRate() {
		return fmt.Errorf("window: buffer rate %d does not match audio context rate %d", buf.SampleRate, a.ctx.SampleRate())
	}
	return nil
}

// Play starts a one-shot player.
func (a *Audio) Play(buf *synth.Buffer, volume float64) error {
	if err := a.checkRate(buf); err != nil {
		return err
	}
	p := a.ctx.NewPlayerFromBytes(buf.Bytes())
	p.SetVolume(volume)
	p.Play()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.reap()
	a.playing = append(a.playing, p)
	return nil
}

// reap closes drained players. Callers hold mu.
func (a *Audio) reap() {
	i := 0
	for i < len(a.playing) {
		if p := a.playing[i]; !p.IsPlaying() {
			p.Close()
			a.playing[i] = a.playing[len(a.playing)-1]
			a.playing = a.playing[:len(a.playing)-1]
			continue
		}
		i++
	}
}

// StartLoop replaces the music loop.
func (a *Audio) StartLoop(buf *synth.Buffer, volume float64) error {
	if err := a.checkRate(buf); err != nil {
		return err
	}
	data := buf.Bytes()
	p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data))))
	if err != nil {
		return fmt.Errorf("window: cannot create loop player: %w", err)
	}
	p.SetVolume(volume)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLoop()
	a.loop = p
	p.Play()
	return nil
}

// SetLoopVolume changes the music level.
func (a *Audio) SetLoopVolume(volume float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loop != nil {
		a.loop.SetVolume(volume)
	}
}

// StopLoop stops the music.
func (a *Audio) StopLoop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLoop()
}

func (a *Audio) stopLoop() {
	if a.loop != nil {
		a.loop.Close()
		a.loop = nil
	}
}

// StopAll stops every player.
func (a *Audio) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.playing {
		p.Close()
	}
	a.playing = nil
	a.stopLoop()
}

// Close stops playback. The ebiten context itself lives as long as the
// process.
func (a *Audio) Close() error {
	a.StopAll()
	return nil
}
