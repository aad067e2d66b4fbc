package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

var (
	flagLimit int
	flagStats bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores. Without a mode on a terminal, opens the
interactive scoreboard; otherwise prints the top scores of the mode.

Examples:
  catcher scores
  catcher scores normal
  catcher scores unlimited --limit 20
  catcher scores --stats
  catcher scores unlimited --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print per-mode statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the mode (all modes without one)")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) == 1 {
		m, err := game.ParseMode(args[0])
		if err != nil {
			return err
		}
		mode = m.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(mode); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagStats:
		return printStats(store)
	}

	if mode == "" {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			return tui.RunScoreboard(store, w, h)
		}
		for _, m := range game.Modes {
			if err := printScores(store, m.String()); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	}
	return printScores(store, mode)
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-6s  %s\n",
			i+1, entry.Score, entry.Level,
			fmt.Sprintf("%.0fs", entry.Duration.Seconds()),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, m := range game.Modes {
		s, ok := stats[m.String()]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.0f  %s\n",
			s.Mode, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
