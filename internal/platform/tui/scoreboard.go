package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	sidebarMinWidth = 80 // narrower terminals get mode tabs instead
	sidebarWidth    = 16
	maxScores       = 100
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = boardMutedStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up, Down           key.Binding
	NextMode, PrevMode key.Binding
	Back, Quit         key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()[:4], k.ShortHelp()[4:]}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(label, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	}
	return ScoreboardKeyMap{
		Up:       bind("↑/k", "scroll up", "up", "k"),
		Down:     bind("↓/j", "scroll down", "down", "j"),
		NextMode: bind("tab/→", "next mode", "tab", "right", "l"),
		PrevMode: bind("S-tab/←", "prev mode", "shift+tab", "left", "h"),
		Back:     bind("esc/b", "menu", "esc", "b"),
		Quit:     bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
// Scores are grouped by difficulty mode.
type ScoreboardModel struct {
	modes       []string
	modeCursor  int
	store       *storage.Store
	scores      []storage.Record
	stats       storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the given mode.
func NewScoreboardModel(store *storage.Store, width, height int, mode string) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		modes:       scoreModes(store),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= sidebarMinWidth,
	}
	for i, md := range m.modes {
		if md == mode {
			m.modeCursor = i
		}
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// scoreModes lists the presets followed by any other mode found in storage.
func scoreModes(store *storage.Store) []string {
	var modes []string
	seen := make(map[string]bool)
	for _, p := range config.Presets() {
		modes = append(modes, string(p))
		seen[string(p)] = true
	}
	if store == nil {
		return modes
	}
	stored, err := store.Modes()
	if err != nil {
		return modes
	}
	for _, md := range stored {
		if !seen[md] {
			modes = append(modes, md)
		}
	}
	return modes
}

// createTable creates a new table with columns sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}

	// Give spare room to the player column.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentMode returns the mode under the cursor.
func (m ScoreboardModel) currentMode() string {
	return m.modes[m.modeCursor]
}

// loadScores loads scores and stats for the current mode.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = storage.Stats{Mode: m.currentMode()}

	if m.store != nil {
		if scores, err := m.store.TopScores(m.currentMode(), maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(m.currentMode()); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= sidebarMinWidth
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES - " + strings.ToUpper(m.currentMode())
	header := centerText(boardTitleStyle.Render(title), m.width) + "\n" +
		centerText(m.statsLine(), m.width) + "\n\n"

	var body string
	scores := boardPanelStyle.Render(m.tableView())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.modeSidebar(), "  ", scores)
	} else {
		body = centerText(m.modeTabs(), m.width) + "\n\n" + scores
	}

	return header + body + "\n" + boardMutedStyle.Render(m.help.View(m.keys))
}

// statsLine summarizes the current mode.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st.Games == 0 {
		return boardStatsStyle.Render("no games played")
	}
	return boardStatsStyle.Render(fmt.Sprintf("games %d  best %d  avg %.0f  lines %d  last %s",
		st.Games, st.Best, st.Average, st.TotalLines, st.LastPlayed.Format("Jan 02")))
}

func (m ScoreboardModel) modeSidebar() string {
	lines := []string{"Modes", strings.Repeat("─", sidebarWidth-4)}
	for i, md := range m.modes {
		if i == m.modeCursor {
			lines = append(lines, boardTitleStyle.Render("▸ "+md))
		} else {
			lines = append(lines, "  "+md)
		}
	}
	return boardPanelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// modeTabs falls back to a single "< mode >" selector when the tabs
// do not fit.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, md := range m.modes {
		if i == m.modeCursor {
			tabs[i] = boardActiveStyle.Render(" " + md + " ")
		} else {
			tabs[i] = boardMutedStyle.Render(" " + md + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return "< " + m.currentMode() + " >"
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nClear some lines to set a high score!")
	}
	return m.table.View()
}

// Mode returns the mode currently shown.
func (m ScoreboardModel) Mode() string {
	return m.currentMode()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, mode string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, mode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
