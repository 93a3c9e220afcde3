// Package queens encodes the N-Queens problem as an exact cover problem
// and solves it with the dlx package, per spec.md §8 scenario 2/3 and
// original_source/nqueens.py.
//
// Columns: n rank primaries (Ri), n file primaries (Fj), 2n-1 diagonal
// secondaries (Ak), 2n-1 anti-diagonal secondaries (Bk). A queen at (i, j)
// covers exactly one rank, one file, one diagonal and one anti-diagonal;
// diagonals and anti-diagonals are secondary because not every diagonal
// needs to be occupied for a valid placement, only never shared.
package queens

import (
	"fmt"

	"github.com/kadenji/xcover/dlx"
)

// Columns builds the column declaration for an n*n board.
func Columns(n int) []dlx.ColumnSpec {
	specs := make([]dlx.ColumnSpec, 0, 6*n-2)
	for i := 0; i < n; i++ {
		specs = append(specs, dlx.ColumnSpec{Name: fmt.Sprintf("R%d", i), Primary: true})
	}
	for j := 0; j < n; j++ {
		specs = append(specs, dlx.ColumnSpec{Name: fmt.Sprintf("F%d", j), Primary: true})
	}
	for k := 0; k < 2*n-1; k++ {
		specs = append(specs, dlx.ColumnSpec{Name: fmt.Sprintf("A%d", k), Primary: false})
	}
	for k := 0; k < 2*n-1; k++ {
		specs = append(specs, dlx.ColumnSpec{Name: fmt.Sprintf("B%d", k), Primary: false})
	}
	return specs
}

// Row computes the sparse column-index list for placing a queen at (i, j)
// on an n*n board, in ascending order. Rank/file occupy [0, 2n); the
// diagonal index i+j occupies [2n, 4n-1); the anti-diagonal index
// n-1-i+j occupies [4n-1, 6n-2).
func Row(i, j, n int) []int {
	rank := i
	file := n + j
	diag := 2*n + (i + j)
	anti := 4*n - 1 + (n - 1 - i + j)
	return []int{rank, file, diag, anti}
}

// cellFromColumns decodes a solution row's column names back into an
// (i, j) board coordinate.
func cellFromColumns(names []string) (i, j int, err error) {
	haveRank, haveFile := false, false
	for _, name := range names {
		switch name[0] {
		case 'R':
			if _, err := fmt.Sscanf(name, "R%d", &i); err != nil {
				return 0, 0, fmt.Errorf("queens: malformed rank column %q", name)
			}
			haveRank = true
		case 'F':
			if _, err := fmt.Sscanf(name, "F%d", &j); err != nil {
				return 0, 0, fmt.Errorf("queens: malformed file column %q", name)
			}
			haveFile = true
		}
	}
	if !haveRank || !haveFile {
		return 0, 0, fmt.Errorf("queens: solution row missing rank/file column")
	}
	return i, j, nil
}

// Solve builds the n*n exact-cover matrix and searches for placements. If
// all is false, the search stops after the first solution found; if all is
// true, every solution is collected. Each returned solution is a slice of
// n (row, col) pairs.
func Solve(n int, all bool) ([][][2]int, error) {
	specs := Columns(n)
	m, err := dlx.NewMatrix(specs)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.AddSparseRow(Row(i, j, n), true); err != nil {
				return nil, err
			}
		}
	}
	m.EndAdd()

	var solutions [][][2]int
	var cbErr error
	s := dlx.NewSolver(m, func(sol map[int][]string) bool {
		placements := make([][2]int, 0, n)
		for _, names := range sol {
			i, j, err := cellFromColumns(names)
			if err != nil {
				cbErr = err
				return true
			}
			placements = append(placements, [2]int{i, j})
		}
		solutions = append(solutions, placements)
		return !all
	}, true)

	if err := s.Solve(); err != nil {
		return nil, err
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return solutions, nil
}
