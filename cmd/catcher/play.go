package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  A/D, Left/Right  - Move the basket
  1/N              - Start normal mode
  2/U              - Start unlimited mode
  I                - How to play
  M                - Mute
  P                - Pause
  Esc              - Back
  Q/Ctrl+C         - Quit
  Mouse            - Click the buttons

Difficulty presets:
  easy   - More lives, slower fruit, wider basket
  normal - The default curve
  hard   - Fewer lives, faster fruit, more bombs
  fixed  - No progression

Logs are written to ~/.catcher/catcher.log.

Examples:
  catcher play
  catcher play --preset easy
  catcher play --audio oto
  catcher play --config ./my-catcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	f, err := openLogFile()
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := newLogger(f, "catcher")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	mixer := openMixer(cfg.Audio, "beep", logger)
	defer mixer.Close()

	g := game.New(game.Options{
		Config: cfg,
		Audio:  mixer,
		Logger: logger,
		Best:   tui.LoadBest(store, logger),
	})

	logger.Info("starting terminal game", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)
	return tui.Run(tui.Options{
		Game:   g,
		Store:  store,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed(),
		},
	})
}
