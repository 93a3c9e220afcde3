package board

import "github.com/kadenji/xcover/internal/set"

// Cell is a single Sudoku grid cell: either solved (holding a placed
// value) or unsolved (holding the set of digits still possible there).
type Cell struct {
	Row, Col int
	IsGiven  bool

	value      int8
	candidates *set.Set[int8]
}

// NewCell returns a fresh, unsolved cell at (r, c) with all nine
// candidates.
func NewCell(r, c int) *Cell {
	return &Cell{
		Row: r, Col: c,
		candidates: set.NewSet[int8](1, 2, 3, 4, 5, 6, 7, 8, 9),
	}
}

// IsSolved reports whether a value has been placed in this cell.
func (c *Cell) IsSolved() bool {
	return c.value > 0
}

// Value returns the placed value, or 0 if the cell is unsolved.
func (c *Cell) Value() int8 {
	return c.value
}

// PlaceValue places a solved value into the cell, clearing its
// candidates.
func (c *Cell) PlaceValue(val int8) {
	c.value = val
	c.candidates.Clear()
}

func (c *Cell) setGiven(val int8) {
	c.IsGiven = true
	c.PlaceValue(val)
}

// NumCandidates returns how many digits are still possible in this cell.
func (c *Cell) NumCandidates() int {
	return c.candidates.Size()
}

// CandidateValues returns the digits still possible in this cell.
func (c *Cell) CandidateValues() []int8 {
	return c.candidates.Values()
}

// HasCandidate reports whether val is still possible in this cell.
func (c *Cell) HasCandidate(val int8) bool {
	return c.candidates.Contains(val)
}

// RemoveCandidate removes val from this cell's remaining candidates.
func (c *Cell) RemoveCandidate(val int8) {
	c.candidates.Remove(val)
}

// Box returns the index (0-8) of the 3x3 box containing this cell, boxes
// numbered left-to-right, top-to-bottom.
func (c *Cell) Box() int {
	return (c.Row/3)*3 + c.Col/3
}

func (c *Cell) clone() *Cell {
	cp := &Cell{Row: c.Row, Col: c.Col, IsGiven: c.IsGiven, value: c.value}
	cp.candidates = set.NewSet(c.candidates.Values()...)
	return cp
}
