package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

// withFlags sets global flags for one test.
func withFlags(t *testing.T, preset, audioName, level string) {
	t.Helper()
	oldPreset, oldAudio, oldLevel := flagPreset, flagAudio, flagLogLevel
	flagPreset, flagAudio, flagLogLevel = preset, audioName, level
	t.Cleanup(func() {
		flagPreset, flagAudio, flagLogLevel = oldPreset, oldAudio, oldLevel
	})
}

func TestBackendsRegistered(t *testing.T) {
	for _, name := range []string{"none", "beep", "oto", "ebiten"} {
		if !registry.Exists(name) {
			t.Errorf("backend %q is not registered", name)
		}
	}
}

func TestLoadConfigPresets(t *testing.T) {
	withFlags(t, "fixed", "", "info")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	withFlags(t, "impossible", "", "info")
	if _, err := loadConfig(); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	withFlags(t, "", "", "warn")
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if bytes.Contains(buf.Bytes(), []byte("hidden")) || !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("level not applied: %q", buf.String())
	}

	withFlags(t, "", "", "loud")
	if _, err := newLogger(&buf, "test"); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestOpenBackendFallsBack(t *testing.T) {
	withFlags(t, "", "no-such-device", "error")
	logger, _ := newLogger(&bytes.Buffer{}, "test")

	b := openBackend(44100, "beep", logger)
	if _, ok := b.(audio.Null); !ok {
		t.Errorf("unknown backend gave %T, expected audio.Null", b)
	}

	withFlags(t, "", "", "error")
	if _, ok := openBackend(44100, "none", logger).(audio.Null); !ok {
		t.Error("fallback name should be used when --audio is empty")
	}
	_, err := registry.Create("no-such-device", registry.Options{})
	if !errors.Is(err, registry.ErrUnknownBackend) {
		t.Errorf("Create() error = %v", err)
	}
}

func TestExportBank(t *testing.T) {
	ac := config.DefaultCatcherConfig().Audio
	bank := audio.NewBank(synth.New(ac.SampleRate, ac.Ceiling, 1), ac, false)
	dir := filepath.Join(t.TempDir(), "wav")

	if err := exportBank(bank, dir); err != nil {
		t.Fatalf("exportBank() failed: %v", err)
	}
	for _, name := range audio.SoundNames() {
		data, err := os.ReadFile(filepath.Join(dir, name+".wav"))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if len(data) < 44 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			t.Errorf("%s is not a WAV file", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "music.wav")); !os.IsNotExist(err) {
		t.Error("music.wav written for a bank without music")
	}
}
