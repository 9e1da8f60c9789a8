package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			FallRateMS: 500,
			TickRate:   60,
		},
		Difficulty: DifficultyNormal,
		Controls: ControlsConfig{
			Left:      []string{"left", "a"},
			Right:     []string{"right", "d"},
			SoftDrop:  []string{"down", "s"},
			HardDrop:  []string{"space"},
			RotateCW:  []string{"x", "up", "w"},
			RotateCCW: []string{"z"},
			Hold:      []string{"c"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
