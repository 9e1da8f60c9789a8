package engine

import (
	"math/rand"
	"time"
)

// State is the lifecycle state of a game.
type State uint8

const (
	StatePlaying State = iota
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Gameplay constants.
const (
	// DefaultFallRate is how long a piece hangs before gravity moves it one row.
	DefaultFallRate = 500 * time.Millisecond

	// QueueSize is the number of upcoming pieces shown to the player.
	QueueSize = 3

	// LineScore is awarded per cleared row.
	LineScore = 10

	// lossNudges is how many rows a blocked spawn is pushed up when the game
	// is lost, since there is no hidden buffer above the visible grid.
	lossNudges = 2
)

// Config holds construction parameters for a Game.
type Config struct {
	Width    int
	Height   int
	FallRate time.Duration // Zero means DefaultFallRate
	Rand     Rand          // Nil means a time-seeded math/rand source
}

// Game is the simulation state. It is not safe for concurrent use; the host
// serializes intents, updates and reads.
type Game struct {
	board *Board
	rng   Rand
	bag   *Bag
	next  [QueueSize]PieceType

	active Piece

	held    PieceType
	hasHeld bool
	canHold bool

	state    State
	score    int
	lines    int
	pieces   int
	elapsed  time.Duration
	fallRate time.Duration

	intents Intents

	activeCells []int
	groundCells []int
}

// New creates a game on a width x height board with default timing and a
// time-seeded random source.
func New(width, height int) *Game {
	return NewWithConfig(Config{Width: width, Height: height})
}

// NewWithConfig creates a game from cfg.
func NewWithConfig(cfg Config) *Game {
	if cfg.FallRate <= 0 {
		cfg.FallRate = DefaultFallRate
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		board:    NewBoard(cfg.Width, cfg.Height),
		rng:      cfg.Rand,
		fallRate: cfg.FallRate,
	}
	g.Restart()
	return g
}

// Restart reinitializes every entity and starts a fresh bag.
func (g *Game) Restart() {
	g.board.Reset()
	g.bag = NewBag(g.rng)
	for i := range g.next {
		g.next[i] = g.bag.Next()
	}
	g.active = Spawn(g.bag.Next())

	g.held = 0
	g.hasHeld = false
	g.canHold = true
	g.state = StatePlaying
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.elapsed = 0
	g.intents = Intents{}

	g.refreshRenderData()
}

// Update advances the simulation by elapsed time and applies the pending
// intents. The piece moves at most one column and, except for a hard drop,
// at most one row per call. Does nothing once the game is lost.
func (g *Game) Update(elapsed time.Duration) {
	if g.state == StateLost {
		return
	}

	g.elapsed += elapsed

	dy := 0
	if g.elapsed >= g.fallRate {
		g.elapsed -= g.fallRate
		dy = 1
	}

	in := g.intents
	g.intents = Intents{}

	if in.Hold {
		g.hold()
	}
	if in.Down && dy == 0 {
		dy = 1
	}
	if in.Drop {
		dy = g.board.Height()
	}

	if r := in.Rotation(); r != RotateNone {
		rotated := g.active.Rotated(r)
		if g.board.Fits(rotated.Mask(), rotated.X, rotated.Y) {
			g.active = rotated
		}
	}

	m := g.active.Mask()

	if dx := in.DeltaX(); dx != 0 && g.board.Fits(m, g.active.X+dx, g.active.Y) {
		g.active.X += dx
	}

	switch {
	case dy > 1:
		for range dy {
			if !g.board.Fits(m, g.active.X, g.active.Y+1) {
				break
			}
			g.active.Y++
		}
		g.settle()
	case dy == 1:
		// A piece that cannot fall was already resting on the previous tick,
		// so it locks now. The tick in between lets the player slide it.
		if g.board.Fits(m, g.active.X, g.active.Y+1) {
			g.active.Y++
		} else {
			g.settle()
		}
	}

	g.refreshRenderData()
}

// settle locks the active piece if it rests, then clears lines and checks
// whether the replacement piece can enter the board.
func (g *Game) settle() {
	if !g.fuse() {
		return
	}
	g.clearLines()
	g.checkLoss()
}

// fuse writes the resting active piece into the board and brings in the next
// piece. Returns false if the piece is not resting.
func (g *Game) fuse() bool {
	m := g.active.Mask()
	if !g.board.Rests(m, g.active.X, g.active.Y) {
		return false
	}

	g.board.Fuse(m, g.active.X, g.active.Y, g.active.Color())
	g.active = Spawn(g.popNext())
	g.canHold = true
	g.pieces++
	return true
}

// popNext takes the front of the queue and backfills it from the bag.
func (g *Game) popNext() PieceType {
	t := g.next[0]
	copy(g.next[:], g.next[1:])
	g.next[QueueSize-1] = g.bag.Next()
	return t
}

// clearLines removes full rows and awards LineScore for each.
func (g *Game) clearLines() {
	rows := g.board.FullRows()
	if len(rows) == 0 {
		return
	}
	g.score += len(rows) * LineScore
	g.lines += len(rows)
	g.board.ClearRows(rows)
}

// checkLoss ends the game when the freshly spawned piece overlaps the stack,
// nudging it upward so the renderer shows it above the blocked cells.
func (g *Game) checkLoss() {
	m := g.active.Mask()
	for range lossNudges {
		if g.board.Overlaps(m, g.active.X, g.active.Y) {
			g.active.Y--
			g.state = StateLost
		}
	}
}

// hold swaps the active piece with the held one, or stashes it and takes the
// next queued piece. Allowed once per locked piece.
func (g *Game) hold() {
	if !g.canHold {
		return
	}

	var incoming PieceType
	if g.hasHeld {
		incoming = g.held
	} else {
		incoming = g.popNext()
	}

	g.held = g.active.Type
	g.hasHeld = true
	g.canHold = false
	g.active = Spawn(incoming)
}

// refreshRenderData recomputes the active piece and ground preview indices.
func (g *Game) refreshRenderData() {
	g.activeCells = g.activeCells[:0]
	g.groundCells = g.groundCells[:0]

	m := g.active.Mask()
	m.Cells(g.active.X, g.active.Y, func(col, row int) bool {
		if col >= 0 && row >= 0 {
			g.activeCells = append(g.activeCells, g.board.Index(row, col))
		}
		return true
	})

	if g.state == StateLost {
		return
	}

	y := g.active.Y
	for g.board.Fits(m, g.active.X, y) {
		y++
	}
	y--

	// A piece that does not fit where it is (possible right after a hold onto
	// a crowded spawn) has no landing position.
	if y < g.active.Y {
		return
	}

	m.Cells(g.active.X, y, func(col, row int) bool {
		g.groundCells = append(g.groundCells, g.board.Index(row, col))
		return true
	})
}

// MoveLeft requests a one-column move left on the next update.
func (g *Game) MoveLeft() {
	g.intents.Left = true
}

// MoveRight requests a one-column move right on the next update.
func (g *Game) MoveRight() {
	g.intents.Right = true
}

// MoveDown requests a one-row soft drop on the next update.
func (g *Game) MoveDown() {
	g.intents.Down = true
}

// RotateClockwise requests a clockwise rotation on the next update.
func (g *Game) RotateClockwise() {
	g.intents.Clockwise = true
}

// RotateCounterClockwise requests a counter-clockwise rotation on the next update.
func (g *Game) RotateCounterClockwise() {
	g.intents.CounterClockwise = true
}

// Drop requests a hard drop on the next update.
func (g *Game) Drop() {
	g.intents.Drop = true
}

// Hold requests a hold swap on the next update.
func (g *Game) Hold() {
	g.intents.Hold = true
}

// Pending returns the intents queued for the next update.
func (g *Game) Pending() Intents {
	return g.intents
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.board.Width()
}

// Height returns the board height.
func (g *Game) Height() int {
	return g.board.Height()
}

// Board returns the row-major board colors. Callers must not modify it.
func (g *Game) Board() []Color {
	return g.board.Cells()
}

// NextPieces returns the upcoming pieces, soonest first.
func (g *Game) NextPieces() [QueueSize]PieceType {
	return g.next
}

// ActiveCells returns the board indices covered by the active piece,
// skipping cells above or left of the grid.
func (g *Game) ActiveCells() []int {
	return g.activeCells
}

// GroundCells returns the board indices where the active piece would land
// if dropped straight down. Empty once the game is lost.
func (g *Game) GroundCells() []int {
	return g.groundCells
}

// Active returns a copy of the falling piece.
func (g *Game) Active() Piece {
	return g.active
}

// ActiveColor returns the color of the falling piece.
func (g *Game) ActiveColor() Color {
	return g.active.Color()
}

// Held returns the held piece type, if any.
func (g *Game) Held() (PieceType, bool) {
	return g.held, g.hasHeld
}

// HeldCode returns 0 when nothing is held, otherwise the held type plus one.
func (g *Game) HeldCode() uint8 {
	if !g.hasHeld {
		return 0
	}
	return uint8(g.held) + 1
}

// CanHold reports whether a hold is currently allowed.
func (g *Game) CanHold() bool {
	return g.canHold
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// IsLost reports whether the game has ended.
func (g *Game) IsLost() bool {
	return g.state == StateLost
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of rows cleared since the last restart.
func (g *Game) Lines() int {
	return g.lines
}

// Pieces returns the number of pieces locked since the last restart.
func (g *Game) Pieces() int {
	return g.pieces
}
