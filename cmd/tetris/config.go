package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the config file search
order and command-line overrides. Redirect it to a file to start a custom
config:

  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fail(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail(err)
	}
}
