// Package sudoku encodes a 9x9 Sudoku grid as an exact cover problem and
// solves it with the dlx package. Adapted from the teacher repository's
// internal/solver.DancingLinks, generalized into a true external
// collaborator of dlx: it only ever consumes the dlx.Callback's
// map[int][]string projection, never a solver-internal row pointer.
//
// 324 columns: 81 cell constraints (RiCj, exactly one value per cell), 81
// row constraints (Ri#v, digit v appears exactly once in row i), 81 column
// constraints (Ci#v), and 81 box constraints (Bi#v). All are primary:
// Sudoku's formulation has no "at most one" constraints.
package sudoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kadenji/xcover/dlx"
	"github.com/kadenji/xcover/sudoku/board"
)

const (
	cellBase = 0
	rowBase  = 81
	colBase  = 162
	boxBase  = 243
	numCols  = 324
)

// ConstraintMatrix returns the fixed 324-column declaration shared by every
// Sudoku instance.
func ConstraintMatrix() []dlx.ColumnSpec {
	specs := make([]dlx.ColumnSpec, numCols)
	for i := range specs {
		specs[i] = dlx.ColumnSpec{Name: columnName(i), Primary: true}
	}
	return specs
}

func columnName(index int) string {
	switch {
	case index < rowBase:
		r, c := index/9, index%9
		return fmt.Sprintf("R%dC%d", r, c)
	case index < colBase:
		idx := index - rowBase
		return fmt.Sprintf("R%d#%d", idx/9, idx%9+1)
	case index < boxBase:
		idx := index - colBase
		return fmt.Sprintf("C%d#%d", idx/9, idx%9+1)
	default:
		idx := index - boxBase
		return fmt.Sprintf("B%d#%d", idx/9, idx%9+1)
	}
}

// Encoder builds and solves the exact-cover matrix for a single Board.
type Encoder struct {
	board  *board.Board
	matrix *dlx.Matrix
}

// NewEncoder builds the exact-cover matrix for a clone of b, leaving the
// caller's board untouched. Cells that already hold a value contribute
// exactly one row; unsolved cells contribute one row per remaining
// candidate, after a single candidate-elimination pass driven by the
// clone's given cells (see prefilter.go).
func NewEncoder(b *board.Board) (*Encoder, error) {
	b = b.Clone()
	eliminateGivenCandidates(b)

	m, err := dlx.NewMatrix(ConstraintMatrix())
	if err != nil {
		return nil, err
	}

	e := &Encoder{board: b, matrix: m}

	for r := range 9 {
		for c := range 9 {
			cell := b.Grid[r][c]
			if cell.IsSolved() {
				if err := e.addRow(r, c, cell.Value()); err != nil {
					return nil, err
				}
				continue
			}
			for _, v := range cell.CandidateValues() {
				if err := e.addRow(r, c, v); err != nil {
					return nil, err
				}
			}
		}
	}

	m.EndAdd()
	return e, nil
}

func (e *Encoder) addRow(r, c int, val int8) error {
	cols := []int{
		cellBase + r*9 + c,
		rowBase + r*9 + int(val-1),
		colBase + c*9 + int(val-1),
		boxBase + (r/3*3+c/3)*9 + int(val-1),
	}
	return e.matrix.AddSparseRow(cols, true)
}

// Solve runs Algorithm X with the min-size heuristic and returns a new
// Board holding the first solution found. The Board passed to NewEncoder,
// and the Encoder's own clone of it, are both left untouched, so Solve may
// be called more than once.
func (e *Encoder) Solve() (*board.Board, error) {
	result := e.board.Clone()

	s := dlx.NewSolver(e.matrix, func(sol map[int][]string) bool {
		for _, names := range sol {
			r, c, v, err := decodeCell(names)
			if err != nil {
				continue
			}
			if !result.Grid[r][c].IsSolved() {
				result.PlaceValue(r, c, v)
			}
		}
		return true
	}, true)

	if err := s.Solve(); err != nil {
		return nil, err
	}
	if !result.IsSolved() {
		return nil, fmt.Errorf("sudoku: no exact cover solution exists for this board")
	}
	return result, nil
}

// decodeCell recovers (row, col, value) from a solution row's column
// names, using the RiCj cell-constraint column (always present, since
// cell constraints are primary and every row covers exactly one).
func decodeCell(names []string) (r, c int, v int8, err error) {
	for _, name := range names {
		if !strings.HasPrefix(name, "R") || !strings.Contains(name, "C") {
			continue
		}
		var ri, ci int
		if _, scanErr := fmt.Sscanf(name, "R%dC%d", &ri, &ci); scanErr == nil {
			r, c = ri, ci
		}
	}
	for _, name := range names {
		if idx := strings.IndexByte(name, '#'); idx >= 0 && strings.HasPrefix(name, "R") && !strings.Contains(name, "C") {
			val, convErr := strconv.Atoi(name[idx+1:])
			if convErr == nil {
				v = int8(val)
			}
		}
	}
	if v == 0 {
		return 0, 0, 0, fmt.Errorf("sudoku: solution row missing a value column")
	}
	return r, c, v, nil
}
