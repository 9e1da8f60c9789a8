package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the in-game key bindings built from the controls config.
// It implements help.KeyMap.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Hold      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Back      key.Binding
	Snapshot  key.Binding
}

// keyAliases maps config key names to Bubble Tea key strings.
var keyAliases = map[string]string{
	"space": " ",
}

// keyLabels maps Bubble Tea key strings to help labels.
var keyLabels = map[string]string{
	" ":     "space",
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// NewKeyMap builds bindings from the configured controls.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left:      binding(c.Left, "move left"),
		Right:     binding(c.Right, "move right"),
		SoftDrop:  binding(c.SoftDrop, "soft drop"),
		HardDrop:  binding(c.HardDrop, "hard drop"),
		RotateCW:  binding(c.RotateCW, "rotate cw"),
		RotateCCW: binding(c.RotateCCW, "rotate ccw"),
		Hold:      binding(c.Hold, "hold"),
		Pause:     binding(c.Pause, "pause"),
		Restart:   binding(c.Restart, "restart"),
		Quit:      binding(c.Quit, "quit"),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, n := range names {
		k := n
		if alias, ok := keyAliases[n]; ok {
			k = alias
		}
		keys = append(keys, k)

		label := k
		if l, ok := keyLabels[k]; ok {
			label = l
		}
		labels = append(labels, label)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Hold, k.Pause, k.Quit}
}

// FullHelp returns every binding grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW, k.Hold},
		{k.Pause, k.Restart, k.Back, k.Snapshot, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	pairs := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.SoftDrop, core.ActionSoftDrop},
		{k.HardDrop, core.ActionHardDrop},
		{k.RotateCW, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.Hold, core.ActionHold},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.b) {
			return p.a
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
