package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Long: `Start a game right away.

Default controls (change them in the config file):
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space            - Hard drop
  Up, X, W / Z     - Rotate clockwise / counter-clockwise
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Quit (while paused or after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy    - 800ms per row
  normal  - 500ms per row
  hard    - 250ms per row
  custom  - timing.fall_rate_ms from the config

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
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

	err = tui.Run(tui.Options{
		Store:   store,
		Logger:  logger,
		Config:  cfg,
		Runtime: terminalRuntime(cfg),
	})
	if err != nil {
		logger.Error("game exited", "error", err)
		fail(err)
	}
}
