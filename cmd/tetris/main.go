// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a single game
//	tetris menu              - Start the menu (play, high scores, quit)
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores for a difficulty
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Override the difficulty preset
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game that runs in the terminal or over SSH.

Available commands:
  play     - Play a single game
  menu     - Menu with difficulty picker and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores normal`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.tetris/tetris.log, stderr for serve)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
