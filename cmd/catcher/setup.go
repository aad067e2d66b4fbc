package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

const (
	defaultDBPath = "~/.catcher/scores.db"
	logFile       = "catcher.log"
)

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.CatcherConfig, error) {
	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("preset %s: %w", preset, err)
	}
	return cfg, nil
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.catcher/catcher.log for appending. The terminal
// frontend cannot log to stderr while it owns the screen.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".catcher")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// openStore opens the scores database. A failure is logged and the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openBackend creates the --audio backend, or fallback when the flag is
// empty. A backend that fails to open is replaced by the silent one.
func openBackend(sampleRate int, fallback string, logger *log.Logger) audio.Backend {
	name := flagAudio
	if name == "" {
		name = fallback
	}

	backend, err := registry.Create(name, registry.Options{SampleRate: sampleRate, Logger: logger})
	if err != nil {
		if errors.Is(err, registry.ErrUnknownBackend) {
			logger.Warn("unknown audio backend, sound disabled", "backend", name)
		} else {
			logger.Warn("audio backend unavailable, sound disabled", "backend", name, "error", err)
		}
		return audio.Null{}
	}
	logger.Debug("audio backend opened", "backend", name)
	return backend
}

// openMixer renders the sound bank and loads it into a mixer on top of the
// selected backend.
func openMixer(cfg config.AudioConfig, fallback string, logger *log.Logger) *audio.Mixer {
	backend := openBackend(cfg.SampleRate, fallback, logger)

	start := time.Now()
	bank := audio.NewBank(synth.New(cfg.SampleRate, cfg.Ceiling, seed()), cfg, true)
	logger.Debug("sound bank rendered", "took", time.Since(start).Round(time.Millisecond))

	mixer := audio.NewMixer(backend, cfg, logger)
	mixer.Load(bank)
	return mixer
}

// seed returns --seed, or the clock when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
