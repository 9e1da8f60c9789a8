package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(m *Mask) int {
	n := 0
	for _, occupied := range m {
		if occupied {
			n++
		}
	}
	return n
}

func TestEveryMaskHasFourCells(t *testing.T) {
	for _, p := range AllPieces {
		for state := range RotationStates {
			assert.Equal(t, 4, countCells(MaskOf(p, state)), "piece %s state %d", p, state)
		}
	}
}

func TestOMaskIsRotationInvariant(t *testing.T) {
	first := *MaskOf(PieceO, 0)
	for state := 1; state < RotationStates; state++ {
		assert.Equal(t, first, *MaskOf(PieceO, state))
	}
}

func TestMaskOfWrapsState(t *testing.T) {
	assert.Same(t, MaskOf(PieceT, 0), MaskOf(PieceT, 4))
	assert.Same(t, MaskOf(PieceT, 3), MaskOf(PieceT, -1))
	assert.Same(t, MaskOf(PieceT, 1), MaskOf(PieceT, 9))
}

func TestPieceColors(t *testing.T) {
	expected := map[PieceType]Color{
		PieceI: ColorCyan,
		PieceO: ColorYellow,
		PieceT: ColorPurple,
		PieceS: ColorGreen,
		PieceZ: ColorRed,
		PieceJ: ColorBlue,
		PieceL: ColorOrange,
	}
	for p, c := range expected {
		assert.Equal(t, c, ColorOf(p), "piece %s", p)
	}
}

func TestUnknownPiecePanics(t *testing.T) {
	assert.Panics(t, func() { MaskOf(PieceType(PieceCount), 0) })
	assert.Panics(t, func() { ColorOf(PieceType(42)) })
	assert.Panics(t, func() { Spawn(PieceType(7)) })
}

func TestRotationStepsState(t *testing.T) {
	p := Spawn(PieceL)
	require.Equal(t, 0, p.State)

	cw := p.Rotated(RotateClockwise)
	assert.Equal(t, 3, cw.State)

	ccw := p.Rotated(RotateCounterClockwise)
	assert.Equal(t, 1, ccw.State)

	assert.Equal(t, p, cw.Rotated(RotateCounterClockwise))
	assert.Equal(t, p, p.Rotated(RotateNone))

	full := p
	for range RotationStates {
		full = full.Rotated(RotateClockwise)
	}
	assert.Equal(t, p, full)
}

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		piece PieceType
		x, y  int
	}{
		{PieceI, 3, 0},
		{PieceO, 3, 0},
		{PieceT, 3, -1},
		{PieceS, 3, 0},
		{PieceZ, 3, 0},
		{PieceJ, 4, 0},
		{PieceL, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.piece.String(), func(t *testing.T) {
			p := Spawn(tc.piece)
			assert.Equal(t, tc.x, p.X)
			assert.Equal(t, tc.y, p.Y)
			assert.Equal(t, 0, p.State)

			// Every spawn lands fully inside a standard board.
			b := NewBoard(10, 20)
			assert.True(t, b.Fits(p.Mask(), p.X, p.Y))
		})
	}
}

func TestMaskCellsStopsEarly(t *testing.T) {
	visited := 0
	MaskOf(PieceI, 1).Cells(0, 0, func(col, row int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}
