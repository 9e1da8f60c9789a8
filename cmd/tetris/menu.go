package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the menu with difficulty picker and high scores",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and
Enter to select. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Q               - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rc := terminalRuntime(cfg)
	difficulty := cfg.Difficulty

	for {
		res, err := tui.RunMenu(store, rc, difficulty)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		rc = res.Config
		difficulty = res.Difficulty

		switch res.Choice {
		case tui.ChoicePlay:
			gameCfg := cfg
			gameCfg.Difficulty = difficulty

			m, err := tui.RunGame(tui.Options{
				Store:   store,
				Logger:  logger,
				Config:  gameCfg,
				Runtime: rc,
			})
			if err != nil {
				logger.Error("game exited", "error", err)
				return
			}
			if !m.BackToMenu() {
				return
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH, string(difficulty))
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
