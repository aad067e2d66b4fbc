package audio

import (
	"sync"

	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

// Backend is an audio output device. The mixer hands it finished buffers and
// volume levels; the backend owns actual playback. Implementations must not
// block the caller until playback completes.
type Backend interface {
	// Play starts a one-shot sound at the given volume.
	Play(buf *synth.Buffer, volume float64) error

	// StartLoop replaces the looping music stream.
	StartLoop(buf *synth.Buffer, volume float64) error

	// SetLoopVolume changes the level of the running loop.
	SetLoopVolume(volume float64)

	// StopLoop stops the music stream.
	StopLoop()

	// StopAll stops every sound, the loop included.
	StopAll()

	// Close releases the device.
	Close() error
}

// Null discards everything.
type Null struct{}

func (Null) Play(*synth.Buffer, float64) error      { return nil }
func (Null) StartLoop(*synth.Buffer, float64) error { return nil }
func (Null) SetLoopVolume(float64)                  {}
func (Null) StopLoop()                              {}
func (Null) StopAll()                               {}
func (Null) Close() error                           { return nil }

// PlayRequest is one recorded Play call.
type PlayRequest struct {
	Buffer *synth.Buffer
	Volume float64
}

// Recorder is a backend that remembers every request. It is used by tests.
type Recorder struct {
	mu          sync.Mutex
	Plays       []PlayRequest
	Loop        *synth.Buffer
	LoopPlaying bool
	LoopVolumes []float64
	StopAlls    int
	Closed      bool
}

// Play records a one-shot request.
func (r *Recorder) Play(buf *synth.Buffer, volume float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Plays = append(r.Plays, PlayRequest{Buffer: buf, Volume: volume})
	return nil
}

// StartLoop records the new loop.
func (r *Recorder) StartLoop(buf *synth.Buffer, volume float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Loop = buf
	r.LoopPlaying = true
	r.LoopVolumes = append(r.LoopVolumes, volume)
	return nil
}

// SetLoopVolume records a loop level change.
func (r *Recorder) SetLoopVolume(volume float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LoopVolumes = append(r.LoopVolumes, volume)
}

// StopLoop marks the loop stopped.
func (r *Recorder) StopLoop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LoopPlaying = false
}

// StopAll counts the call and stops the loop.
func (r *Recorder) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StopAlls++
	r.LoopPlaying = false
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Closed = true
	return nil
}

// LastLoopVolume returns the most recent loop level, or -1 if none was set.
func (r *Recorder) LastLoopVolume() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.LoopVolumes) == 0 {
		return -1
	}
	return r.LoopVolumes[len(r.LoopVolumes)-1]
}
