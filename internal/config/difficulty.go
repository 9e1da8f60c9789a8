package config

import (
	"fmt"
	"time"
)

// DifficultyPreset is a named fall rate. Presets are fixed for the whole
// game; there is no progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // uses timing.fall_rate_ms
)

// Presets lists every preset in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// FallRateForPreset returns the gravity interval of a preset.
// Custom and unknown presets return zero.
func FallRateForPreset(p DifficultyPreset) time.Duration {
	switch p {
	case DifficultyEasy:
		return 800 * time.Millisecond
	case DifficultyNormal:
		return 500 * time.Millisecond
	case DifficultyHard:
		return 250 * time.Millisecond
	default:
		return 0
	}
}

// ParsePreset converts a name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or custom)", ErrInvalid, name)
}

// ApplyPreset switches cfg to the named preset.
func ApplyPreset(cfg *Config, name string) error {
	p, err := ParsePreset(name)
	if err != nil {
		return err
	}
	cfg.Difficulty = p
	return nil
}
