// Package board models a 9x9 Sudoku grid: given/solved cell state, the
// candidate digits still possible for each unsolved cell, and text I/O.
// Adapted from the teacher's internal/puzzle package.
package board

import (
	"fmt"
)

// Board holds the 81 cells of a Sudoku grid.
type Board struct {
	Grid [9][9]*Cell

	// unsolvedCounts holds, per digit, how many cells still need that
	// digit placed. Index 0 holds the total count of unsolved cells;
	// when it reaches 0 the board is completely solved.
	unsolvedCounts [10]int
}

// NewBoard returns an empty board with every cell holding all nine
// candidates.
func NewBoard() *Board {
	b := &Board{}
	for r := range 9 {
		for c := range 9 {
			b.Grid[r][c] = NewCell(r, c)
		}
	}

	for digit := range 10 {
		if digit == 0 {
			b.unsolvedCounts[digit] = 9 * 9
		} else {
			b.unsolvedCounts[digit] = 9
		}
	}
	return b
}

// IsSolved reports whether every cell has a placed value.
func (b *Board) IsSolved() bool {
	return b.unsolvedCounts[0] == 0
}

// IsDigitSolved reports whether every occurrence of digit has been placed.
func (b *Board) IsDigitSolved(digit int8) bool {
	return b.unsolvedCounts[digit] == 0
}

// GivenValue places an initial, immutable value into cell (r, c), as part
// of the puzzle's starting state.
func (b *Board) GivenValue(r, c int, val int8) {
	b.Grid[r][c].setGiven(val)
	b.updateUnsolvedCounts(r, c, val)
}

// PlaceValue places a solved value into cell (r, c). It returns false
// without modifying the board if the cell already holds that value, and
// fails fatally if the cell holds a conflicting value.
func (b *Board) PlaceValue(r, c int, val int8) bool {
	cell := b.Grid[r][c]
	if cell.IsSolved() {
		if cell.Value() != val {
			boardStateError(fmt.Sprintf("conflicting cell values %d and %d at (%d,%d)",
				cell.Value(), val, r, c))
		}
		return false
	}

	cell.PlaceValue(val)
	b.updateUnsolvedCounts(r, c, val)
	return true
}

func (b *Board) updateUnsolvedCounts(r, c int, val int8) {
	b.unsolvedCounts[0] = b.unsolvedCounts[0] - 1
	b.unsolvedCounts[val] = b.unsolvedCounts[val] - 1
	if b.unsolvedCounts[val] < 0 {
		boardStateError(fmt.Sprintf("too many instances of digit %d when placing cell (%d,%d)", val, r, c))
	}
}

// Clone returns a deep copy of b, useful for trying multiple solving
// strategies against independent copies of the same starting grid.
func (b *Board) Clone() *Board {
	cp := &Board{unsolvedCounts: b.unsolvedCounts}
	for r := range 9 {
		for c := range 9 {
			cp.Grid[r][c] = b.Grid[r][c].clone()
		}
	}
	return cp
}
