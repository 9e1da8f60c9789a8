package engine

import "fmt"

// Board is the fixed-size playing grid, stored row-major with (0, 0) at the
// top-left corner.
type Board struct {
	width  int
	height int
	cells  []Color
}

// NewBoard creates an empty board. Panics on non-positive dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Index converts (row, col) into a row-major cell index.
// Panics when the coordinate is outside the grid.
func (b *Board) Index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("engine: cell (%d, %d) outside %dx%d board", row, col, b.width, b.height))
	}
	return row*b.width + col
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the color at (row, col).
func (b *Board) At(row, col int) Color {
	return b.cells[b.Index(row, col)]
}

// Set writes a color at (row, col).
func (b *Board) Set(row, col int, c Color) {
	b.cells[b.Index(row, col)] = c
}

// Cells returns the row-major cell slice. Callers must not modify it.
func (b *Board) Cells() []Color {
	return b.cells
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Fits reports whether a mask placed at (x, y) lies fully on the board and
// covers only empty cells.
func (b *Board) Fits(m *Mask, x, y int) bool {
	fits := true
	m.Cells(x, y, func(col, row int) bool {
		if !b.InBounds(row, col) || b.cells[row*b.width+col] != ColorNone {
			fits = false
		}
		return fits
	})
	return fits
}

// Overlaps reports whether any in-bounds cell of the mask at (x, y) is
// already occupied. Out-of-bounds cells are ignored.
func (b *Board) Overlaps(m *Mask, x, y int) bool {
	overlaps := false
	m.Cells(x, y, func(col, row int) bool {
		if b.InBounds(row, col) && b.cells[row*b.width+col] != ColorNone {
			overlaps = true
		}
		return !overlaps
	})
	return overlaps
}

// Rests reports whether a mask at (x, y) is supported: one of its cells is on
// the bottom row or sits directly above an occupied cell.
func (b *Board) Rests(m *Mask, x, y int) bool {
	rests := false
	m.Cells(x, y, func(col, row int) bool {
		if row == b.height-1 || b.At(row+1, col) != ColorNone {
			rests = true
		}
		return !rests
	})
	return rests
}

// Fuse writes color into every cell the mask covers at (x, y).
func (b *Board) Fuse(m *Mask, x, y int, c Color) {
	m.Cells(x, y, func(col, row int) bool {
		b.Set(row, col, c)
		return true
	})
}

// FullRows returns the indices of all completely filled rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for row := range b.height {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (b *Board) rowFull(row int) bool {
	start := row * b.width
	for _, c := range b.cells[start : start+b.width] {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// ClearRows removes each listed row by shifting every row above it down by
// one and emptying row 0. Rows are processed in the given order.
func (b *Board) ClearRows(rows []int) {
	for _, line := range rows {
		for row := line - 1; row >= 0; row-- {
			copy(b.cells[(row+1)*b.width:(row+2)*b.width], b.cells[row*b.width:(row+1)*b.width])
		}
		clear(b.cells[:b.width])
	}
}
