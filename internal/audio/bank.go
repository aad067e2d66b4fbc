package audio

import (
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

// Sound effect names.
const (
	SoundCorrect   = "correct"
	SoundWrong     = "wrong"
	SoundBomb      = "bomb"
	SoundMiss      = "miss"
	SoundSpawnBomb = "spawn_bomb"
	SoundGameOver  = "game_over"
	SoundPowerUp   = "powerup"
)

// Bank is the set of pre-rendered buffers loaded into a mixer.
// It is immutable once built and may be shared by many mixers.
type Bank struct {
	Sounds map[string]*synth.Buffer
	Music  *synth.Buffer
}

// SoundNames returns the effect names in a stable order.
func SoundNames() []string {
	return []string{
		SoundCorrect, SoundWrong, SoundBomb, SoundMiss,
		SoundSpawnBomb, SoundGameOver, SoundPowerUp,
	}
}

// NewBank renders every sound effect, and the music loop when withMusic is
// set. Headless sessions skip the music since rendering it takes a while.
func NewBank(s *synth.Synth, cfg config.AudioConfig, withMusic bool) *Bank {
	ms := time.Millisecond
	b := &Bank{
		Sounds: map[string]*synth.Buffer{
			SoundCorrect:   s.Arpeggio([]float64{440, 550, 660}, 80*ms, 0.7),
			SoundWrong:     s.Arpeggio([]float64{330, 277, 220}, 80*ms, 0.7),
			SoundBomb:      s.NoiseBurst(300*ms, 10, 0.7),
			SoundMiss:      s.Sweep(440, 220, 150*ms, 0.5),
			SoundSpawnBomb: s.Beeps(440, 2, 100*ms, 50*ms, 0.5),
			SoundGameOver:  s.Chord([]float64{220, 277, 330}, 500*ms, 0.5),
			SoundPowerUp:   s.Arpeggio([]float64{523, 659, 784}, 60*ms, 0.6),
		},
	}
	if withMusic {
		b.Music = s.MusicLoop(cfg.MusicSeconds, cfg.MusicBPM)
	}
	return b
}
