package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionOptions carries the dependencies of a session.
type SessionOptions struct {
	Store   *storage.Store
	Logger  *log.Logger
	Config  config.Config
	Runtime core.RuntimeConfig
	Player  string
}

// SessionModel is the top-level model of an SSH connection. It moves
// between the menu, a game and the scoreboard inside one program, since a
// remote session cannot start a new tea.Program per screen the way the
// local CLI does.
type SessionModel struct {
	opts       SessionOptions
	sessionID  string
	logger     *log.Logger
	view       sessionView
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	id := uuid.NewString()
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With("session", id, "user", opts.Player)
	}

	return SessionModel{
		opts:      opts,
		sessionID: id,
		logger:    opts.Logger,
		menu:      NewMenuModel(opts.Store, opts.Runtime, opts.Config.Difficulty),
	}
}

// SessionID returns the unique identifier of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen. Window sizes are remembered so
// the next screen opens at the current size.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH = ws.Width, ws.Height
	}

	switch m.view {
	case viewGame:
		next, cmd := m.gameModel.Update(msg)
		if gm, ok := next.(Model); ok {
			m.gameModel = &gm
		}
		return m.leave(m.gameModel.BackToMenu(), m.gameModel.IsQuitting(), cmd)

	case viewScores:
		next, cmd := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
		return m.leave(m.scoreboard.IsGoingBack(), m.scoreboard.IsQuitting(), cmd)
	}

	return m.updateMenu(msg)
}

// leave handles a child screen asking to go back or quit. The child's own
// tea.Quit is dropped on back so the connection stays open.
func (m SessionModel) leave(back, quit bool, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case back:
		m.view = viewMenu
		m.gameModel, m.scoreboard = nil, nil
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime, m.menu.Difficulty())
		return m, m.menu.Init()
	case quit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		cfg := m.opts.Config
		cfg.Difficulty = m.menu.Difficulty()
		rc := m.opts.Runtime
		rc.Seed = time.Now().UnixNano()

		gm := NewModel(Options{
			Store:    m.opts.Store,
			Logger:   m.logger,
			Config:   cfg,
			Runtime:  rc,
			Player:   m.opts.Player,
			Embedded: true,
		})
		m.gameModel = &gm
		m.view = viewGame
		return m, m.gameModel.Init()

	case ChoiceScores:
		rc := m.opts.Runtime
		sb := NewScoreboardModel(m.opts.Store, rc.ScreenW, rc.ScreenH, string(m.menu.Difficulty()))
		m.scoreboard = &sb
		m.view = viewScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.view == viewGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.view == viewScores && m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
