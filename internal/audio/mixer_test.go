package audio

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

func newTestMixer(t *testing.T) (*Mixer, *Recorder, *bytes.Buffer) {
	t.Helper()
	rec := &Recorder{}
	var logs bytes.Buffer
	m := NewMixer(rec, config.DefaultCatcherConfig().Audio, log.New(&logs))
	m.Register(SoundCorrect, &synth.Buffer{SampleRate: 44100, Frames: make([]synth.Frame, 10)})
	m.music = &synth.Buffer{SampleRate: 44100, Frames: make([]synth.Frame, 10)}
	return m, rec, &logs
}

func TestPlayKnownSound(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.Play(SoundCorrect)

	if len(rec.Plays) != 1 {
		t.Fatalf("expected 1 play, got %d", len(rec.Plays))
	}
	if rec.Plays[0].Volume != 0.4 {
		t.Errorf("play volume = %v, expected 0.4", rec.Plays[0].Volume)
	}
}

func TestPlayUnknownSoundIsLogged(t *testing.T) {
	m, rec, logs := newTestMixer(t)
	m.Play("kazoo")

	if len(rec.Plays) != 0 {
		t.Error("unknown sound should not reach the backend")
	}
	if !strings.Contains(logs.String(), "kazoo") {
		t.Errorf("unknown sound should be logged, got %q", logs.String())
	}
}

func TestVolumeAppliesToFuturePlays(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.Play(SoundCorrect)
	m.SetVolume(0.8)
	m.Play(SoundCorrect)
	m.SetVolume(7)

	if rec.Plays[0].Volume != 0.4 || rec.Plays[1].Volume != 0.8 {
		t.Errorf("volumes = %v, %v; expected 0.4, 0.8", rec.Plays[0].Volume, rec.Plays[1].Volume)
	}
	if m.Volume() != 1 {
		t.Errorf("volume should clamp to 1, got %v", m.Volume())
	}
}

func TestMuteRestoresDefaults(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.StartMusic()

	m.SetMuted(true)
	m.Play(SoundCorrect)
	if len(rec.Plays) != 0 {
		t.Error("muted mixer should not play effects")
	}
	if m.Volume() != 0 || m.MusicVolume() != 0 || rec.LastLoopVolume() != 0 {
		t.Error("mute should zero both volumes and the running loop")
	}

	m.SetVolume(0.9)
	m.SetMuted(false)
	if m.Volume() != 0.4 || m.MusicVolume() != 0.4 {
		t.Errorf("unmute should restore defaults, got %v / %v", m.Volume(), m.MusicVolume())
	}
	if rec.LastLoopVolume() != 0.4 {
		t.Errorf("loop volume after unmute = %v, expected 0.4", rec.LastLoopVolume())
	}
}

func TestFadeInSteps(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.FadeInMusic(2 * time.Second)

	if !rec.LoopPlaying || rec.LoopVolumes[0] != 0 {
		t.Fatal("fade in should start the loop silent")
	}

	tick := time.Second / 60
	for i := 0; i < 200 && m.Fading(); i++ {
		m.Tick(tick)
	}

	if m.Fading() {
		t.Fatal("fade should finish")
	}
	// initial level plus 20 steps
	if len(rec.LoopVolumes) != 21 {
		t.Errorf("expected 20 fade steps, got %d", len(rec.LoopVolumes)-1)
	}
	if math.Abs(m.MusicLevel()-0.4) > 1e-9 {
		t.Errorf("music level after fade in = %v, expected 0.4", m.MusicLevel())
	}
	for i := 1; i < len(rec.LoopVolumes); i++ {
		if rec.LoopVolumes[i] < rec.LoopVolumes[i-1] {
			t.Fatalf("fade in level dropped at step %d", i)
		}
	}
}

func TestFadeOutStopsMusic(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.StartMusic()
	m.FadeOutMusic(time.Second)

	m.Tick(500 * time.Millisecond)
	if !m.MusicPlaying() {
		t.Fatal("music should keep playing halfway through the fade")
	}
	if math.Abs(m.MusicLevel()-0.2) > 1e-9 {
		t.Errorf("level halfway = %v, expected 0.2", m.MusicLevel())
	}

	m.Tick(500 * time.Millisecond)
	if m.MusicPlaying() || rec.LoopPlaying {
		t.Error("fade out should stop the loop")
	}
}

func TestFadeWithoutMusicIsNoop(t *testing.T) {
	m := NewMixer(&Recorder{}, config.DefaultCatcherConfig().Audio, nil)
	m.FadeInMusic(time.Second)
	if m.Fading() || m.MusicPlaying() {
		t.Error("fade without a music buffer should do nothing")
	}
}

func TestCloseStopsEverything(t *testing.T) {
	m, rec, _ := newTestMixer(t)
	m.StartMusic()
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if !rec.Closed || rec.StopAlls != 1 || rec.LoopPlaying {
		t.Errorf("Close should stop all and close the backend: %+v", rec)
	}
}

func TestBankHasEverySound(t *testing.T) {
	s := synth.New(synth.DefaultSampleRate, synth.DefaultCeiling, 1)
	bank := NewBank(s, config.DefaultCatcherConfig().Audio, false)

	for _, name := range SoundNames() {
		buf, ok := bank.Sounds[name]
		if !ok {
			t.Errorf("bank is missing %q", name)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("sound %q is empty", name)
		}
	}
	if bank.Music != nil {
		t.Error("music should only be rendered on request")
	}

	m := NewMixer(Null{}, config.DefaultCatcherConfig().Audio, nil)
	m.Load(bank)
	if !m.Has(SoundGameOver) {
		t.Error("Load should register the bank")
	}
}
