// Package otoout plays mixer output through an oto v2 context, one player per
// sound.
package otoout

import (
	"bytes"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

func init() {
	registry.Register("oto", "raw PCM via hajimehoshi/oto", func(opts registry.Options) (audio.Backend, error) {
		return New(opts.SampleRate)
	})
}

// pollInterval is how often finished one-shot players are reaped.
const pollInterval = 10 * time.Millisecond

// Backend owns the process-wide oto context.
type Backend struct {
	ctx   *oto.Context
	ready chan struct{}

	mu      sync.Mutex
	loop    oto.Player
	playing map[oto.Player]struct{}
}

// New opens a 16-bit stereo context.
func New(sampleRate int) (*Backend, error) {
	ctx, ready, err := oto.NewContext(sampleRate, 2, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, err
	}
	return &Backend{
		ctx:     ctx,
		ready:   ready,
		playing: make(map[oto.Player]struct{}),
	}, nil
}

func (b *Backend) isReady() bool {
	select {
	case <-b.ready:
		return true
	default:
		return false
	}
}

// Play starts a player for the buffer and reaps it on a goroutine once it
// has drained. Requests made before the device is ready are dropped.
func (b *Backend) Play(buf *synth.Buffer, volume float64) error {
	if !b.isReady() {
		return nil
	}
	p := b.ctx.NewPlayer(bytes.NewReader(buf.Bytes()))
	p.SetVolume(volume)

	b.mu.Lock()
	b.playing[p] = struct{}{}
	b.mu.Unlock()

	p.Play()
	go b.reap(p)
	return nil
}

func (b *Backend) reap(p oto.Player) {
	for p.IsPlaying() {
		time.Sleep(pollInterval)
	}
	b.mu.Lock()
	delete(b.playing, p)
	b.mu.Unlock()
	p.Close()
}

// StartLoop replaces the music player with one reading the buffer forever.
func (b *Backend) StartLoop(buf *synth.Buffer, volume float64) error {
	<-b.ready
	p := b.ctx.NewPlayer(&loopReader{data: buf.Bytes()})
	p.SetVolume(volume)

	b.mu.Lock()
	old := b.loop
	b.loop = p
	b.mu.Unlock()

	if old != nil {
		old.Close()
	}
	p.Play()
	return b.ctx.Err()
}

// SetLoopVolume changes the music level.
func (b *Backend) SetLoopVolume(volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loop != nil {
		b.loop.SetVolume(volume)
	}
}

// StopLoop closes the music player.
func (b *Backend) StopLoop() {
	b.mu.Lock()
	p := b.loop
	b.loop = nil
	b.mu.Unlock()
	if p != nil {
		p.Close()
	}
}

// StopAll pauses every one-shot player and closes the loop. Paused players
// stop reporting IsPlaying, so their reapers close them.
func (b *Backend) StopAll() {
	b.mu.Lock()
	for p := range b.playing {
		p.Pause()
	}
	b.mu.Unlock()
	b.StopLoop()
}

// Close stops everything and suspends the device.
func (b *Backend) Close() error {
	b.StopAll()
	if !b.isReady() {
		return nil
	}
	return b.ctx.Suspend()
}

// loopReader yields data endlessly.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		// An empty loop reads as silence.
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos = (r.pos + c) % len(r.data)
	}
	return n, nil
}
