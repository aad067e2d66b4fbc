package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
	"github.com/vovakirdan/fruit-catcher/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. Same keys as the terminal, and
the buttons can be clicked with the mouse.

Examples:
  catcher window
  catcher window --scale 1.5
  catcher window --audio none`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "catcher")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	mixer := openMixer(cfg.Audio, "ebiten", logger)
	defer mixer.Close()

	g := game.New(game.Options{
		Config: cfg,
		Audio:  mixer,
		Logger: logger,
		Best:   tui.LoadBest(store, logger),
	})

	logger.Info("opening window", "width", cfg.Playfield.Width, "height", cfg.Playfield.Height, "fps", flagFPS)
	return window.Run(window.Options{
		Game:   g,
		Store:  store,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  int(cfg.Playfield.Width),
			ScreenH:  int(cfg.Playfield.Height),
			TickRate: flagFPS,
			Seed:     seed(),
		},
		Scale: flagScale,
	})
}
