// catcher is a neon fruit catching arcade game for the terminal and the
// desktop.
//
// Usage:
//
//	catcher play             - Play in the terminal
//	catcher window           - Play in a desktop window
//	catcher serve            - Start SSH server for remote play
//	catcher scores [mode]    - Show high scores
//	catcher sounds           - List or export the sound bank
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.catcher/scores.db)
//	--config <path>      - Load a custom catcher.yaml
//	--preset <name>      - Difficulty preset: easy, normal, hard, fixed
//	--audio <backend>    - Audio backend (see 'catcher sounds')
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import audio backends to register them
	_ "github.com/vovakirdan/fruit-catcher/internal/audio/beepout"
	_ "github.com/vovakirdan/fruit-catcher/internal/audio/otoout"
	_ "github.com/vovakirdan/fruit-catcher/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagAudio    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Neon Fruit Catcher - catch the fruit, dodge the bombs",
	Long: `Neon Fruit Catcher is an arcade game: move the basket to catch
falling fruit and avoid the bombs.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  sounds   - List or export the synthesized sounds

Examples:
  catcher play
  catcher play --preset hard
  catcher window --audio ebiten
  catcher serve --ssh :2222
  catcher scores unlimited
  catcher sounds --export ./wav`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom catcher.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAudio, "audio", "", "Audio backend (default depends on the command)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(soundsCmd)
}
