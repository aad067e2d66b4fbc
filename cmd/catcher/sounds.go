package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/wav"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/synth"
)

var (
	flagExport string
	flagPlay   string
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List, play or export the synthesized sounds",
	Long: `Show the sound bank and the audio backends.

With --export, every sound and the music loop are written as 16-bit
WAV files into the given directory. With --play, one sound is played
through the --audio backend (default beep).

Examples:
  catcher sounds
  catcher sounds --export ./wav
  catcher sounds --play correct --audio oto`,
	Args: cobra.NoArgs,
	RunE: runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagExport, "export", "", "Directory to write WAV files into")
	soundsCmd.Flags().StringVar(&flagPlay, "play", "", "Name of a sound to play")
}

func runSounds(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ac := cfg.Audio

	switch {
	case flagExport != "":
		bank := audio.NewBank(synth.New(ac.SampleRate, ac.Ceiling, seed()), ac, true)
		return exportBank(bank, flagExport)
	case flagPlay != "":
		return playSound(ac, flagPlay)
	}

	bank := audio.NewBank(synth.New(ac.SampleRate, ac.Ceiling, seed()), ac, false)
	fmt.Println("Sounds:")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %s\n", "Name", "Length", "Peak")
	for _, name := range audio.SoundNames() {
		buf := bank.Sounds[name]
		fmt.Printf("  %-12s  %-8s  %.2f\n", name, buf.Duration().Round(time.Millisecond), buf.Peak())
	}

	fmt.Println()
	fmt.Println("Audio backends:")
	fmt.Println()
	for _, b := range registry.List() {
		fmt.Printf("  %-8s  %s\n", b.Name, b.Description)
	}
	return nil
}

// exportBank writes one WAV per sound plus music.wav.
func exportBank(bank *audio.Bank, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sounds: create %s: %w", dir, err)
	}
	files := make(map[string]*synth.Buffer, len(bank.Sounds)+1)
	for name, buf := range bank.Sounds {
		files[name+".wav"] = buf
	}
	if bank.Music != nil {
		files["music.wav"] = bank.Music
	}
	for name, buf := range files {
		if err := writeWAV(filepath.Join(dir, name), buf); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %d files to %s\n", len(files), dir)
	return nil
}

func writeWAV(path string, buf *synth.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sounds: create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, buf.Streamer(), buf.Format()); err != nil {
		return fmt.Errorf("sounds: encode %s: %w", path, err)
	}
	return nil
}

// playSound plays one effect straight through the backend and waits for it
// to finish.
func playSound(ac config.AudioConfig, name string) error {
	logger, err := newLogger(os.Stderr, "catcher")
	if err != nil {
		return err
	}

	bank := audio.NewBank(synth.New(ac.SampleRate, ac.Ceiling, seed()), ac, false)
	buf, ok := bank.Sounds[name]
	if !ok {
		return fmt.Errorf("unknown sound %q", name)
	}

	backend := openBackend(ac.SampleRate, "beep", logger)
	defer backend.Close()

	if err := backend.Play(buf, ac.SFXVolume); err != nil {
		return fmt.Errorf("sounds: play %s: %w", name, err)
	}
	time.Sleep(buf.Duration() + 100*time.Millisecond)
	return nil
}
