package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// Options carries the dependencies of a game model.
type Options struct {
	Store   *storage.Store // nil disables score saving
	Logger  *log.Logger    // nil discards log output
	Config  config.Config
	Runtime core.RuntimeConfig
	Player  string

	// Embedded models return to a parent menu on back instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	mode       string
	player     string
	runID      string
	keys       KeyMap
	help       help.Model
	embedded   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a model running a fresh game built from opts.Config.
func NewModel(opts Options) Model {
	return NewModelWithGame(tetris.New(opts.Config), opts)
}

// NewModelWithGame creates a model around an existing game.
func NewModelWithGame(game core.Game, opts Options) Model {
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = opts.Config.Timing.TickRate
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Player
	if player == "" {
		player = defaultPlayer()
	}

	m := Model{
		game:       game,
		store:      opts.Store,
		logger:     logger,
		config:     rc,
		mode:       opts.Config.Mode(),
		player:     player,
		runID:      uuid.NewString(),
		keys:       NewKeyMap(opts.Config.Controls),
		help:       help.New(),
		embedded:   opts.Embedded,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = rc.ScreenW
	m.screen = core.NewScreen(m.gameRuntime().ScreenW, m.gameRuntime().ScreenH)
	return m
}

// defaultPlayer names local players after the OS user.
func defaultPlayer() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "player"
}

// gameRuntime is the runtime config handed to the game: the terminal minus
// the help bar.
func (m Model) gameRuntime() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = max(rc.ScreenH-helpRows, 0)
	return rc
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameRuntime())
	m.logger.Debug("game started", "run", m.runID, "mode", m.mode, "player", m.player)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Snapshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen; the game in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rc := m.gameRuntime()
	m.screen.Resize(rc.ScreenW, rc.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(core.Resizer); ok {
		r.Resize(rc.ScreenW, rc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(rc)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A restart clears GameOver; the next run is a new record.
	if wasOver && !m.gameState.GameOver {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.logger.Debug("game restarted", "run", m.runID)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run. Failures are logged; play continues.
func (m Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over",
		"run", m.runID,
		"player", m.player,
		"mode", m.mode,
		"score", st.Score,
		"lines", st.Lines,
	)

	if m.store == nil || st.Score == 0 {
		return
	}

	_, err := m.store.SaveScore(storage.Record{
		RunID:  m.runID,
		Mode:   m.mode,
		Player: m.player,
		Score:  st.Score,
		Lines:  st.Lines,
		Pieces: st.Pieces,
	})
	switch {
	case errors.Is(err, storage.ErrDuplicateRun):
		m.logger.Debug("run already saved", "run", m.runID)
	case err != nil:
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text to
// ~/.tetris/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpLine := lipgloss.NewStyle().
		MaxWidth(m.config.ScreenW).
		Render(m.help.View(m.keys))

	return RenderScreen(m.screen) + "\n" + helpLine
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// Run starts a standalone game in the alternate screen.
func Run(opts Options) error {
	_, err := RunGame(opts)
	return err
}

// RunGame runs a game until the player quits or goes back, and returns the
// final model so callers can tell the two apart.
func RunGame(opts Options) (Model, error) {
	opts.Embedded = false
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := finalModel.(Model); ok {
		return m, nil
	}
	return model, nil
}
