package tetris

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// StateName describes what the player currently sees.
type StateName string

const (
	StatePlaying     StateName = "playing"
	StatePaused      StateName = "paused"
	StateGameOver    StateName = "game_over"
	StatePausedSmall StateName = "paused_small_window"
)

// Snapshot is a value copy of the game, used to compare runs and to inspect
// state without touching the engine.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lines  int
	Pieces int
	Board  []engine.Color
	Active engine.Piece
	Next   [engine.QueueSize]engine.PieceType
	Held   uint8 // 0 when empty, otherwise piece type + 1
	State  StateName
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.IsLost():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	e := g.engine
	return Snapshot{
		Tick:   g.tick,
		Score:  e.Score(),
		Lines:  e.Lines(),
		Pieces: e.Pieces(),
		Board:  slices.Clone(e.Board()),
		Active: e.Active(),
		Next:   e.NextPieces(),
		Held:   e.HeldCode(),
		State:  state,
	}
}
