package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceQuit}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets()
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	quitting   bool
	selected   MenuChoice
}

// NewMenuModel creates a new menu model with the cursor on Play and the
// difficulty selector on initial.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
	}
	for i, p := range config.Presets() {
		if p == initial {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := config.Presets()

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(presets) - 1) % len(presets)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(presets)

	case MenuActionSelect:
		m.selected = menuItems[m.cursor]
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")

	diff := m.Difficulty()
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", diff), m.width))
	b.WriteString("\n")
	if m.store != nil {
		if best, err := m.store.HighScore(string(diff)); err == nil && best > 0 {
			b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best: %d", best)), m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + item.String()
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Difficulty returns the preset under the difficulty selector.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets()[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: initial, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Difficulty: initial, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:     m.Selected(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	if m.IsQuitting() || result.Choice == ChoiceNone {
		result.Choice = ChoiceQuit
	}
	return result, nil
}
