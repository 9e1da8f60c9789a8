package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return got
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  MenuChoice
		quit  bool
	}{
		{"play", 0, ChoicePlay, false},
		{"scores", 1, ChoiceScores, false},
		{"quit", 2, ChoiceQuit, true},
		{"cursor stops at last item", 5, ChoiceQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
			for range tt.downs {
				m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
			}
			m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			if m.Selected() != tt.want {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.want)
			}
			if m.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, want %v", m.IsQuitting(), tt.quit)
			}
		})
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyHard)
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("Difficulty() = %s, want hard", m.Difficulty())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyCustom {
		t.Errorf("after right: %s, want custom", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("after second right: %s, want easy (wrap)", m.Difficulty())
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyCustom {
		t.Errorf("after left: %s, want custom (wrap)", m.Difficulty())
	}
}

func TestMenuQuitKey(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m = menuUpdate(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestMenuViewShowsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveScore(storage.Record{Mode: "normal", Player: "bob", Score: 70}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	view := NewMenuModel(store, testRuntime(), config.DifficultyNormal).View()
	for _, want := range []string{"T E T R I S", "Difficulty: < normal >", "Best: 70", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	view = NewMenuModel(store, testRuntime(), config.DifficultyEasy).View()
	if strings.Contains(view, "Best:") {
		t.Error("easy has no scores; best line should be hidden")
	}
}

func TestScoreboardModes(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24, "hard")
	if m.Mode() != "hard" {
		t.Fatalf("Mode() = %q, want hard", m.Mode())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != "custom" {
		t.Errorf("after tab: %q, want custom", m.Mode())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Mode() != "normal" {
		t.Errorf("after two shift+tab: %q, want normal", m.Mode())
	}

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardShowsStoredModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Record{
		{Mode: "normal", Player: "alice", Score: 90, Lines: 9},
		{Mode: "legacy", Player: "carol", Score: 10, Lines: 1},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, "normal")
	if got := len(m.modes); got != len(config.Presets())+1 {
		t.Errorf("got %d modes, want presets plus legacy", got)
	}
	if m.stats.Games != 1 || m.stats.Best != 90 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - NORMAL", "alice", "Modes", "legacy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24, "normal")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v, want back only", m.IsGoingBack(), m.IsQuitting())
	}
}
