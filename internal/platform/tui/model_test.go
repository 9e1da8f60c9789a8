package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state   core.GameState
	resets  int
	resized [2]int
	steps   []core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear() }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelHardDropOnTick(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)

	if got := m.State().Pieces; got != 1 {
		t.Errorf("Pieces = %d after hard drop, want 1", got)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &fakeGame{}
	m := NewModelWithGame(g, Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()

	m = update(t, m, runeKey("r"))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should not be queued while playing")
	}

	g.state.GameOver = true
	m = tick(t, m)
	m = update(t, m, runeKey("r"))
	if !m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be queued after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModelWithGame(&fakeGame{}, Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := NewModelWithGame(g, Options{Config: config.Default(), Runtime: testRuntime(), Embedded: true})
	m.Init()

	m = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m = tick(t, m)
	m = update(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if m.IsQuitting() {
		t.Error("embedded model should not quit on back")
	}
}

func TestModelBackQuitsStandalone(t *testing.T) {
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewModelWithGame(g, Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()
	m = tick(t, m)

	m = update(t, m, runeKey("b"))
	if !m.IsQuitting() {
		t.Error("standalone model should quit on back")
	}
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	g := &fakeGame{}
	m := NewModelWithGame(g, Options{Store: store, Config: cfg, Runtime: testRuntime(), Player: "alice"})
	m.Init()
	firstRun := m.RunID()

	g.state = core.GameState{Score: 120, Lines: 12, Pieces: 40, GameOver: true}
	for range 5 {
		m = tick(t, m)
	}

	scores, err := store.TopScores(cfg.Mode(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d records, want 1", len(scores))
	}
	got := scores[0]
	if got.RunID != firstRun || got.Player != "alice" || got.Score != 120 || got.Lines != 12 || got.Pieces != 40 {
		t.Errorf("saved record = %+v", got)
	}

	// Restart, then lose again.
	g.state = core.GameState{}
	m = tick(t, m)
	if m.RunID() == firstRun {
		t.Error("restart should start a new run")
	}
	g.state = core.GameState{Score: 30, Lines: 3, GameOver: true}
	m = tick(t, m)

	scores, err = store.TopScores(cfg.Mode(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d records after second game, want 2", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewModelWithGame(g, Options{Store: store, Config: config.Default(), Runtime: testRuntime()})
	m.Init()
	tick(t, m)

	all, err := store.AllScores(config.Default().Mode())
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("got %d records, want none for a zero score", len(all))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModelWithGame(g, Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
	if g.resized != [2]int{100, 40 - helpRows} {
		t.Errorf("Resize got %v, want [100 %d]", g.resized, 40-helpRows)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsGameAndHelp(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Runtime: testRuntime()})
	m.Init()
	m = tick(t, m)

	view := m.View()
	if !strings.Contains(view, "TETRIS") {
		t.Error("view should contain the game title")
	}
	if !strings.Contains(view, "hard drop") {
		t.Error("view should contain the help bar")
	}
}
