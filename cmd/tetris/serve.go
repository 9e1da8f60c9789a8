package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host tetris over SSH",
	Long: `Run an SSH server where every connection gets the menu, a private game
and the shared leaderboard. Scores are saved under the SSH user name.

The host key is read from --host-key, or generated at ~/.tetris/host_key
on first start. Difficulty and controls come from the same config file and
flags as local play.

  tetris serve
  tetris serve --ssh :2222 --difficulty hard
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "host key file (generated when missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "minutes of inactivity before a session is dropped")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
		TickRate:    gameCfg.Timing.TickRate,
		Logger:      logger.WithPrefix("tetris-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail(fmt.Errorf("creating server: %w", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("tetris SSH server on %s (ctrl+c to stop)\n", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}
