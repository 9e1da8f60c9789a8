// Package tetris adapts the falling-block engine to the platform's Game
// interface: it maps input frames to engine intents, drives the engine at a
// fixed tick and draws it into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GameID identifies the game in storage and logs.
const GameID = "tetris"

// Game implements core.Game around one engine instance.
type Game struct {
	cfg    config.Config
	engine *engine.Game
	tick   uint64
	delta  time.Duration

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game using the given configuration. Call Reset before Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset builds a fresh engine seeded from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Timing.TickRate
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.engine = engine.NewWithConfig(engine.Config{
		Width:    g.cfg.Board.Width,
		Height:   g.cfg.Board.Height,
		FallRate: g.cfg.FallRate(),
		Rand:     rand.New(rand.NewSource(rc.Seed)),
	})
	g.delta = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen size without touching the game in progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := g.layoutSize()
	g.tooSmall = width < w || height < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// A window too small to show the board freezes the game.
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.engine.IsLost() {
		if in.Has(core.ActionRestart) {
			g.engine.Restart()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.engine.Update(g.delta)

	return core.StepResult{State: g.State()}
}

func (g *Game) applyInput(in core.InputFrame) {
	e := g.engine
	if in.Has(core.ActionLeft) {
		e.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		e.MoveRight()
	}
	if in.Has(core.ActionSoftDrop) {
		e.MoveDown()
	}
	if in.Has(core.ActionHardDrop) {
		e.Drop()
	}
	if in.Has(core.ActionRotateCW) {
		e.RotateClockwise()
	}
	if in.Has(core.ActionRotateCCW) {
		e.RotateCounterClockwise()
	}
	if in.Has(core.ActionHold) {
		e.Hold()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Pieces:   g.engine.Pieces(),
		GameOver: g.engine.IsLost(),
		Paused:   g.paused || g.tooSmall,
	}
}
