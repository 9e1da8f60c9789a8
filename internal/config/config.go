// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Board size limits. The spawn column plus the widest mask needs six columns
// and the vertical I piece needs four rows.
const (
	MinBoardWidth  = 6
	MinBoardHeight = 4
	MaxBoardWidth  = 40
	MaxBoardHeight = 40
	MaxTickRate    = 240
)

// Config contains all game configuration.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// BoardConfig defines the playing grid size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation timing.
type TimingConfig struct {
	FallRateMS int `yaml:"fall_rate_ms"` // used when difficulty is "custom"
	TickRate   int `yaml:"tick_rate"`    // simulation ticks per second
}

// ControlsConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("left", "ctrl+c", "space", "x").
type ControlsConfig struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	SoftDrop  []string `yaml:"soft_drop"`
	HardDrop  []string `yaml:"hard_drop"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Hold      []string `yaml:"hold"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// Bindings returns the controls keyed by action name, in display order.
func (c ControlsConfig) Bindings() []Binding {
	return []Binding{
		{"left", c.Left},
		{"right", c.Right},
		{"soft_drop", c.SoftDrop},
		{"hard_drop", c.HardDrop},
		{"rotate_cw", c.RotateCW},
		{"rotate_ccw", c.RotateCCW},
		{"hold", c.Hold},
		{"pause", c.Pause},
		{"restart", c.Restart},
		{"quit", c.Quit},
	}
}

// Binding is one named action and its keys.
type Binding struct {
	Action string
	Keys   []string
}

// FallRate returns the gravity interval for the configured difficulty.
func (c Config) FallRate() time.Duration {
	if c.Difficulty == DifficultyCustom {
		return time.Duration(c.Timing.FallRateMS) * time.Millisecond
	}
	return FallRateForPreset(c.Difficulty)
}

// Mode returns the name scores are grouped under.
func (c Config) Mode() string {
	return string(c.Difficulty)
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	b := c.Board
	if b.Width < MinBoardWidth || b.Width > MaxBoardWidth {
		return fmt.Errorf("%w: board width %d outside [%d, %d]", ErrInvalid, b.Width, MinBoardWidth, MaxBoardWidth)
	}
	if b.Height < MinBoardHeight || b.Height > MaxBoardHeight {
		return fmt.Errorf("%w: board height %d outside [%d, %d]", ErrInvalid, b.Height, MinBoardHeight, MaxBoardHeight)
	}
	if c.Timing.TickRate <= 0 || c.Timing.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate %d outside [1, %d]", ErrInvalid, c.Timing.TickRate, MaxTickRate)
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	if c.FallRate() <= 0 {
		return fmt.Errorf("%w: fall rate must be positive, got %dms", ErrInvalid, c.Timing.FallRateMS)
	}

	owner := make(map[string]string)
	for _, b := range c.Controls.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, b.Action)
		}
		for _, k := range b.Keys {
			if k == "" {
				return fmt.Errorf("%w: empty key name in %s", ErrInvalid, b.Action)
			}
			if prev, ok := owner[k]; ok && prev != b.Action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.Action)
			}
			owner[k] = b.Action
		}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
