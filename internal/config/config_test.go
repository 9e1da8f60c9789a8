package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at an empty temp dir so
// Load only sees files the test creates.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	def := Default()
	if cfg.Board != def.Board || cfg.Timing != def.Timing || cfg.Difficulty != def.Difficulty {
		t.Errorf("embedded config %+v differs from Default() %+v", cfg, def)
	}
	for i, b := range cfg.Controls.Bindings() {
		want := def.Controls.Bindings()[i]
		if strings.Join(b.Keys, ",") != strings.Join(want.Keys, ",") {
			t.Errorf("%s keys = %v, expected %v", b.Action, b.Keys, want.Keys)
		}
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board = %dx%d, expected 10x20", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", FileName), "board:\n  width: 12\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("local config not used, width = %d", cfg.Board.Width)
	}

	writeFile(t, filepath.Join(dir, ".tetris", "configs", FileName), "board:\n  width: 14\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 14 {
		t.Errorf("user config should win over local, width = %d", cfg.Board.Width)
	}

	custom := filepath.Join(dir, "custom.yaml")
	writeFile(t, custom, "board:\n  width: 16\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error: %v", err)
	}
	if cfg.Board.Width != 16 {
		t.Errorf("custom path should win, width = %d", cfg.Board.Width)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	custom := filepath.Join(dir, "partial.yaml")
	writeFile(t, custom, "difficulty: hard\ncontrols:\n  hold: [h]\n")

	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Height != 20 || cfg.Timing.TickRate != 60 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
	if len(cfg.Controls.Hold) != 1 || cfg.Controls.Hold[0] != "h" {
		t.Errorf("hold keys = %v, expected [h]", cfg.Controls.Hold)
	}
	if len(cfg.Controls.Left) == 0 {
		t.Error("left keys should keep defaults")
	}
	if cfg.FallRate() != 250*time.Millisecond {
		t.Errorf("FallRate() = %v, expected 250ms", cfg.FallRate())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [1, 2\n")
	if _, err := Load(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  width: 3\n")
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"minimum board", func(c *Config) { c.Board = BoardConfig{Width: 6, Height: 4} }, true},
		{"too narrow", func(c *Config) { c.Board.Width = 5 }, false},
		{"too short", func(c *Config) { c.Board.Height = 3 }, false},
		{"too wide", func(c *Config) { c.Board.Width = 41 }, false},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }, false},
		{"unknown difficulty", func(c *Config) { c.Difficulty = "insane" }, false},
		{"custom with zero fall rate", func(c *Config) {
			c.Difficulty = DifficultyCustom
			c.Timing.FallRateMS = 0
		}, false},
		{"preset ignores fall rate", func(c *Config) { c.Timing.FallRateMS = 0 }, true},
		{"no hold keys", func(c *Config) { c.Controls.Hold = nil }, false},
		{"empty key name", func(c *Config) { c.Controls.Quit = []string{""} }, false},
		{"key bound twice", func(c *Config) { c.Controls.Hold = []string{"z"} }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestFallRate(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected time.Duration
	}{
		{DifficultyEasy, 800 * time.Millisecond},
		{DifficultyNormal, 500 * time.Millisecond},
		{DifficultyHard, 250 * time.Millisecond},
		{DifficultyCustom, 123 * time.Millisecond},
	}

	for _, tc := range tests {
		cfg := Default()
		cfg.Difficulty = tc.preset
		cfg.Timing.FallRateMS = 123
		if got := cfg.FallRate(); got != tc.expected {
			t.Errorf("FallRate(%s) = %v, expected %v", tc.preset, got, tc.expected)
		}
		if cfg.Mode() != string(tc.preset) {
			t.Errorf("Mode() = %q, expected %q", cfg.Mode(), tc.preset)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	if err := ApplyPreset(&cfg, "easy"); err != nil {
		t.Fatalf("ApplyPreset(easy) error: %v", err)
	}
	if cfg.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q, expected easy", cfg.Difficulty)
	}

	if err := ApplyPreset(&cfg, "nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ApplyPreset(nightmare) = %v, expected ErrInvalid", err)
	}
	if cfg.Difficulty != DifficultyEasy {
		t.Error("failed ApplyPreset should leave config untouched")
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{"difficulty: normal", "width: 10", "fall_rate_ms: 500", "rotate_ccw:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}
}
