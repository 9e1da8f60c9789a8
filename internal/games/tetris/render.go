package tetris

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW      = 2  // screen columns per board cell
	panelW     = 12 // side panel width including borders
	panelGap   = 1
	titleRows  = 1
	previewH   = 2 // rows per piece preview
	holdBoxH   = previewH + 2
	statsBoxH  = 3*2 + 2
	nextBoxH   = engine.QueueSize*(previewH+1) - 1 + 2
	panelH     = nextBoxH + holdBoxH + statsBoxH
	blockGlyph = '█'
	ghostGlyph = '░'
	emptyGlyph = '·'
)

var pieceColors = [...]core.Color{
	engine.ColorNone:   core.ColorDefault,
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorRed:    core.ColorRed,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorOrange: core.ColorOrange,
}

type point struct{ x, y int }

// previews holds each piece in its flattest rotation, trimmed to the
// top-left corner, so every preview fits in previewH rows.
var previews = buildPreviews()

func buildPreviews() [engine.PieceCount][]point {
	var out [engine.PieceCount][]point
	for _, t := range engine.AllPieces {
		best := -1
		var cells []point
		for state := range engine.RotationStates {
			var pts []point
			minX, minY, maxY := engine.MaskSize, engine.MaskSize, -1
			engine.MaskOf(t, state).Cells(0, 0, func(x, y int) bool {
				pts = append(pts, point{x, y})
				minX, minY, maxY = min(minX, x), min(minY, y), max(maxY, y)
				return true
			})
			if h := maxY - minY + 1; best == -1 || h < best {
				best = h
				cells = cells[:0]
				for _, p := range pts {
					cells = append(cells, point{p.x - minX, p.y - minY})
				}
			}
		}
		out[t] = cells
	}
	return out
}

// layoutSize returns the screen area the game needs.
func (g *Game) layoutSize() (int, int) {
	boardW := g.cfg.Board.Width*cellW + 2
	boardH := g.cfg.Board.Height + 2
	return boardW + panelGap + panelW, titleRows + max(boardH, panelH)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.layoutSize()
	area := core.Centered(g.screenW, g.screenH, w, h)

	dst.DrawTextColor(area.X, area.Y, "TETRIS", core.ColorBrightYellow)
	mode := g.cfg.Mode()
	dst.DrawTextColor(area.Right()-utf8.RuneCountInString(mode), area.Y, mode, core.ColorGray)

	board := core.NewRect(area.X, area.Y+titleRows, g.cfg.Board.Width*cellW+2, g.cfg.Board.Height+2)
	g.renderBoard(dst, board)

	panel := core.NewRect(board.Right()+panelGap, board.Y, panelW, panelH)
	g.renderPanel(dst, panel)

	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the well, the settled cells, the ground preview and the
// falling piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inner()
	e := g.engine
	width := e.Width()

	cellAt := func(i int, glyph rune, c core.Color) {
		x := inner.X + (i%width)*cellW
		y := inner.Y + i/width
		for dx := range cellW {
			dst.SetColor(x+dx, y, glyph, c)
		}
	}

	for i, c := range e.Board() {
		if c == engine.ColorNone {
			x := inner.X + (i%width)*cellW
			dst.SetColor(x+1, inner.Y+i/width, emptyGlyph, core.ColorDim)
			continue
		}
		cellAt(i, blockGlyph, pieceColors[c])
	}

	active := pieceColors[e.ActiveColor()]
	for _, i := range e.GroundCells() {
		cellAt(i, ghostGlyph, active)
	}
	for _, i := range e.ActiveCells() {
		cellAt(i, blockGlyph, active)
	}
}

// renderPanel draws the next queue, the hold slot and the counters.
func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	e := g.engine

	next := core.NewRect(r.X, r.Y, r.W, nextBoxH)
	dst.DrawBox(next, core.ColorGray)
	dst.DrawTextColor(next.X+2, next.Y, " NEXT ", core.ColorWhite)
	for i, t := range e.NextPieces() {
		g.drawPreview(dst, next.X+2, next.Y+1+i*(previewH+1), t, core.ColorDefault)
	}

	hold := core.NewRect(r.X, next.Bottom(), r.W, holdBoxH)
	dst.DrawBox(hold, core.ColorGray)
	dst.DrawTextColor(hold.X+2, hold.Y, " HOLD ", core.ColorWhite)
	if t, ok := e.Held(); ok {
		override := core.ColorDefault
		if !e.CanHold() {
			override = core.ColorGray
		}
		g.drawPreview(dst, hold.X+2, hold.Y+1, t, override)
	}

	stats := core.NewRect(r.X, hold.Bottom(), r.W, statsBoxH)
	dst.DrawBox(stats, core.ColorGray)
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", e.Score()},
		{"LINES", e.Lines()},
		{"PIECES", e.Pieces()},
	}
	for i, row := range rows {
		y := stats.Y + 1 + i*2
		dst.DrawTextColor(stats.X+2, y, row.label, core.ColorGray)
		dst.DrawTextColor(stats.X+2, y+1, strconv.Itoa(row.value), core.ColorBrightWhite)
	}
}

// drawPreview draws a piece shape with its top-left at (x, y). A non-default
// override replaces the piece color.
func (g *Game) drawPreview(dst *core.Screen, x, y int, t engine.PieceType, override core.Color) {
	c := pieceColors[engine.ColorOf(t)]
	if override != core.ColorDefault {
		c = override
	}
	for _, p := range previews[t] {
		for dx := range cellW {
			dst.SetColor(x+p.x*cellW+dx, y+p.y, blockGlyph, c)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX := board.X + board.W/2
	centerY := board.Y + board.H/2

	switch {
	case g.engine.IsLost():
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			"Press R to restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
