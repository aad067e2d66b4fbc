// Package audio mixes the synthesized sound bank onto a pluggable output
// backend: fire-and-forget effects, a looping music stream with separate
// volume, mute, and tick-driven music fades.
package audio

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

// Mixer owns the named buffers and the volume state. It is driven from the
// game loop goroutine only and never blocks on playback.
type Mixer struct {
	backend Backend
	logger  *log.Logger

	sounds map[string]*synth.Buffer
	music  *synth.Buffer

	sfxVolume    float64
	musicVolume  float64
	defaultSFX   float64
	defaultMusic float64
	muted        bool

	musicOn    bool
	musicLevel float64 // level currently applied to the loop
	fade       fade
	fadeLen    time.Duration
	fadeSteps  int
}

// NewMixer creates a mixer on top of backend. A nil logger discards messages.
func NewMixer(backend Backend, cfg config.AudioConfig, logger *log.Logger) *Mixer {
	if backend == nil {
		backend = Null{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	steps := cfg.FadeSteps
	if steps <= 0 {
		steps = 20
	}
	return &Mixer{
		backend:      backend,
		logger:       logger,
		sounds:       make(map[string]*synth.Buffer),
		sfxVolume:    core.ClampF(cfg.SFXVolume, 0, 1),
		musicVolume:  core.ClampF(cfg.MusicVolume, 0, 1),
		defaultSFX:   core.ClampF(cfg.SFXVolume, 0, 1),
		defaultMusic: core.ClampF(cfg.MusicVolume, 0, 1),
		fadeLen:      cfg.Fade(),
		fadeSteps:    steps,
	}
}

// Load registers every buffer of the bank.
func (m *Mixer) Load(b *Bank) {
	for name, buf := range b.Sounds {
		m.Register(name, buf)
	}
	if b.Music != nil {
		m.music = b.Music
	}
}

// Register adds or replaces a named effect.
func (m *Mixer) Register(name string, buf *synth.Buffer) {
	m.sounds[name] = buf
}

// Has reports whether a named effect is registered.
func (m *Mixer) Has(name string) bool {
	_, ok := m.sounds[name]
	return ok
}

// Play starts the named effect at the current effect volume.
// Unknown names are logged and ignored.
func (m *Mixer) Play(name string) {
	buf, ok := m.sounds[name]
	if !ok {
		m.logger.Warn("sound not found", "name", name)
		return
	}
	if m.sfxVolume <= 0 {
		return
	}
	if err := m.backend.Play(buf, m.sfxVolume); err != nil {
		m.logger.Warn("cannot play sound", "name", name, "error", err)
	}
}

// SetVolume sets the effect volume, clamped to [0, 1]. It affects effects
// started afterwards, not ones already queued on the backend.
func (m *Mixer) SetVolume(v float64) {
	m.sfxVolume = core.ClampF(v, 0, 1)
}

// Volume returns the effect volume.
func (m *Mixer) Volume() float64 {
	return m.sfxVolume
}

// SetMusicVolume sets the music volume, clamped to [0, 1]. A running loop
// follows immediately unless a fade is in progress, in which case the fade
// continues toward the new level.
func (m *Mixer) SetMusicVolume(v float64) {
	m.musicVolume = core.ClampF(v, 0, 1)
	if m.fade.active {
		m.fade.retarget(m.musicVolume)
		return
	}
	if m.musicOn {
		m.applyMusicLevel(m.musicVolume)
	}
}

// MusicVolume returns the target music volume.
func (m *Mixer) MusicVolume() float64 {
	return m.musicVolume
}

// MusicLevel returns the level currently applied to the loop.
func (m *Mixer) MusicLevel() float64 {
	return m.musicLevel
}

// SetMuted silences both effects and music, or restores the configured
// default levels.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	if muted {
		m.SetVolume(0)
		m.SetMusicVolume(0)
		return
	}
	m.SetVolume(m.defaultSFX)
	m.SetMusicVolume(m.defaultMusic)
}

// Muted reports whether the mixer is muted.
func (m *Mixer) Muted() bool {
	return m.muted
}

// StartMusic starts the loop at the music volume without a fade.
func (m *Mixer) StartMusic() {
	m.fade = fade{}
	m.startLoop(m.musicVolume)
}

// FadeInMusic starts the loop silent and raises it to the music volume in
// equal steps over d. A non-positive d uses the configured fade length.
func (m *Mixer) FadeInMusic(d time.Duration) {
	if !m.startLoop(0) {
		return
	}
	m.fade = newFade(fadeIn, m.musicVolume, m.fadeSteps, m.stepInterval(d))
}

// FadeOutMusic lowers the loop to silence in equal steps over d, then stops it.
func (m *Mixer) FadeOutMusic(d time.Duration) {
	if !m.musicOn {
		return
	}
	m.fade = newFade(fadeOut, m.musicLevel, m.fadeSteps, m.stepInterval(d))
}

// StopMusic stops the loop immediately.
func (m *Mixer) StopMusic() {
	m.fade = fade{}
	if m.musicOn {
		m.backend.StopLoop()
	}
	m.musicOn = false
	m.musicLevel = 0
}

// MusicPlaying reports whether the loop is running.
func (m *Mixer) MusicPlaying() bool {
	return m.musicOn
}

// Fading reports whether a music fade is in progress.
func (m *Mixer) Fading() bool {
	return m.fade.active
}

// Tick advances the music fade by elapsed game time. It is called once per
// game tick.
func (m *Mixer) Tick(dt time.Duration) {
	if !m.fade.active {
		return
	}
	for _, level := range m.fade.advance(dt) {
		m.applyMusicLevel(level)
	}
	if !m.fade.active && m.fade.dir == fadeOut {
		m.backend.StopLoop()
		m.musicOn = false
		m.fade = fade{}
	}
}

// StopAll stops every sound and the music.
func (m *Mixer) StopAll() {
	m.fade = fade{}
	m.musicOn = false
	m.musicLevel = 0
	m.backend.StopAll()
}

// Close stops playback and releases the backend.
func (m *Mixer) Close() error {
	m.StopAll()
	return m.backend.Close()
}

func (m *Mixer) startLoop(level float64) bool {
	if m.music == nil {
		m.logger.Debug("no music loaded")
		return false
	}
	if err := m.backend.StartLoop(m.music, level); err != nil {
		m.logger.Warn("cannot start music", "error", err)
		return false
	}
	m.musicOn = true
	m.musicLevel = level
	return true
}

func (m *Mixer) applyMusicLevel(level float64) {
	m.musicLevel = level
	m.backend.SetLoopVolume(level)
}

func (m *Mixer) stepInterval(d time.Duration) time.Duration {
	if d <= 0 {
		d = m.fadeLen
	}
	return d / time.Duration(m.fadeSteps)
}
