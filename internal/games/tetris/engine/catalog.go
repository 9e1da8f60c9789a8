// Package engine implements the falling-block simulation: the grid, the
// falling piece, the next queue, holding, scoring and loss detection.
// It has no rendering, input or storage dependencies; the platform drives it
// with elapsed time and discrete intents and reads back render data.
package engine

import "fmt"

// Color is the content of a board cell. Board cells and piece colors share
// this enumeration; ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// PieceType identifies one of the seven tetromino shapes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// AllPieces lists every piece type in catalog order.
var AllPieces = [PieceCount]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// String returns the one-letter name of the piece.
func (p PieceType) String() string {
	if int(p) >= PieceCount {
		return "?"
	}
	return string("IOTSZJL"[p])
}

// MaskSize is the side length of a piece mask.
const MaskSize = 4

// RotationStates is the number of rotation states every piece cycles through.
const RotationStates = 4

// Mask is a 4x4 row-major occupancy grid for one rotation state.
type Mask [MaskSize * MaskSize]bool

// At reports whether the mask occupies column x, row y.
func (m *Mask) At(x, y int) bool {
	return m[y*MaskSize+x]
}

// mask builds a Mask from a 0/1 literal.
func mask(bits [MaskSize * MaskSize]uint8) Mask {
	var m Mask
	for i, b := range bits {
		m[i] = b == 1
	}
	return m
}

var blockO = mask([16]uint8{
	0, 1, 1, 0,
	0, 1, 1, 0,
	0, 0, 0, 0,
	0, 0, 0, 0,
})

// rotations holds every rotation state of every piece.
// Clockwise rotation steps the state index down, counter-clockwise steps it up.
var rotations = [PieceCount][RotationStates]Mask{
	PieceI: {
		mask([16]uint8{
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 0,
		}),
		mask([16]uint8{
			0, 0, 0, 0,
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			0, 1, 0, 0,
			0, 1, 0, 0,
			0, 1, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
	},
	PieceO: {blockO, blockO, blockO, blockO},
	PieceT: {
		mask([16]uint8{
			0, 0, 0, 0,
			1, 1, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			1, 1, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			1, 1, 1, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			0, 1, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
	},
	PieceS: {
		mask([16]uint8{
			0, 1, 1, 0,
			1, 1, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			0, 1, 1, 0,
			0, 0, 1, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 0, 0,
			0, 1, 1, 0,
			1, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			1, 0, 0, 0,
			1, 1, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
	},
	PieceZ: {
		mask([16]uint8{
			1, 1, 0, 0,
			0, 1, 1, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 1, 0,
			0, 1, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 0, 0,
			1, 1, 0, 0,
			0, 1, 1, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 0, 0,
			1, 1, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 0,
		}),
	},
	PieceJ: {
		mask([16]uint8{
			0, 1, 0, 0,
			0, 1, 0, 0,
			1, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			1, 0, 0, 0,
			1, 1, 1, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 1, 1, 0,
			0, 1, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 0, 0,
			1, 1, 1, 0,
			0, 0, 1, 0,
			0, 0, 0, 0,
		}),
	},
	PieceL: {
		mask([16]uint8{
			0, 1, 0, 0,
			0, 1, 0, 0,
			0, 1, 1, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			1, 1, 1, 0,
			1, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			1, 1, 0, 0,
			0, 1, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
		}),
		mask([16]uint8{
			0, 0, 1, 0,
			1, 1, 1, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}),
	},
}

var pieceColors = [PieceCount]Color{
	PieceI: ColorCyan,
	PieceO: ColorYellow,
	PieceT: ColorPurple,
	PieceS: ColorGreen,
	PieceZ: ColorRed,
	PieceJ: ColorBlue,
	PieceL: ColorOrange,
}

// MaskOf returns the mask for a piece type in the given rotation state.
// The state is taken modulo RotationStates. Panics on an unknown piece type.
func MaskOf(t PieceType, state int) *Mask {
	mustPiece(t)
	return &rotations[t][wrapState(state)]
}

// ColorOf returns the fixed color of a piece type. Panics on an unknown piece type.
func ColorOf(t PieceType) Color {
	mustPiece(t)
	return pieceColors[t]
}

func mustPiece(t PieceType) {
	if int(t) >= PieceCount {
		panic(fmt.Sprintf("engine: unknown piece type %d", t))
	}
}

func wrapState(state int) int {
	state %= RotationStates
	if state < 0 {
		state += RotationStates
	}
	return state
}
