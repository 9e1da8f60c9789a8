package engine

// Piece is the falling piece: its type, rotation state and the board
// position of its mask's top-left corner. X and Y may lie outside the board;
// only occupied mask cells are ever checked against bounds.
type Piece struct {
	Type  PieceType
	State int
	X, Y  int
}

// Spawn places a fresh piece of type t at its centered spawn position.
// T spawns one row higher and J one column further right to compensate for
// where their masks sit inside the 4x4 box.
func Spawn(t PieceType) Piece {
	mustPiece(t)

	x, y := 3, 0
	switch t {
	case PieceT:
		y = -1
	case PieceJ:
		x = 4
	}
	return Piece{Type: t, X: x, Y: y}
}

// Mask returns the piece's current occupancy mask.
func (p Piece) Mask() *Mask {
	return MaskOf(p.Type, p.State)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	return ColorOf(p.Type)
}

// Rotated returns a copy of the piece turned one step in the given direction.
func (p Piece) Rotated(r Rotation) Piece {
	switch r {
	case RotateClockwise:
		p.State = wrapState(p.State - 1)
	case RotateCounterClockwise:
		p.State = wrapState(p.State + 1)
	}
	return p
}

// Cells calls fn with the board coordinates of every occupied mask cell,
// assuming the mask's top-left corner sits at (x, y). Iteration stops when
// fn returns false.
func (m *Mask) Cells(x, y int, fn func(col, row int) bool) {
	for my := range MaskSize {
		for mx := range MaskSize {
			if !m.At(mx, my) {
				continue
			}
			if !fn(x+mx, y+my) {
				return
			}
		}
	}
}
