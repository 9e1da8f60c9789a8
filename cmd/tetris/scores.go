package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top 10 scores and statistics for a difficulty mode.
Without an argument, the configured difficulty is shown.

Examples:
  tetris scores
  tetris scores hard
  tetris scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	var mode string
	if len(args) == 1 {
		mode = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			fail(err)
		}
		mode = cfg.Mode()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening scores database: %w", err))
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(mode); err != nil {
			fail(err)
		}
		fmt.Printf("Cleared scores for %s\n", mode)
		return
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fail(err)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		if _, perr := config.ParsePreset(mode); perr != nil {
			fmt.Println()
			fmt.Println(perr)
		} else {
			fmt.Println()
			fmt.Printf("Play 'tetris play --difficulty %s' to set the first high score!\n", mode)
		}
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %s\n",
			i+1, r.Player, r.Score, r.Lines, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err != nil {
		fail(err)
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Total lines: %d\n",
		stats.Games, stats.Best, stats.Average, stats.TotalLines)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
}
