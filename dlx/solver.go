package dlx

import "time"

// Callback is invoked once per complete exact-cover solution found during a
// search. It receives a read-only snapshot mapping each selected row's
// matrix-assigned index to the ordered list of column names that row
// covers. Returning true requests early termination of the search.
//
// The callback must not call any mutating method on the Matrix, and must
// deep-copy the slices in the map if it needs to retain them past its own
// invocation — the backing arrays are not reused, but the map itself is
// rebuilt fresh on each call so retaining it is safe; the warning concerns
// future defensive-copy discipline if this changes.
type Callback func(solution map[int][]string) bool

// Solver drives Algorithm X over a Matrix, dispatching complete solutions
// to a Callback. A Solver must not be shared between concurrently running
// searches; a Matrix must not be shared between two Solvers running at the
// same time either.
type Solver struct {
	matrix    *Matrix
	callback  Callback
	chooseMin bool

	stack []*node
	stop  bool
	stats *SearchStats // nil unless running under SolveWithStats
}

// NewSolver binds a Matrix, a result Callback, and the column-selection
// strategy (min-size heuristic when chooseMin is true, uniform random
// otherwise).
func NewSolver(m *Matrix, callback Callback, chooseMin bool) *Solver {
	return &Solver{matrix: m, callback: callback, chooseMin: chooseMin}
}

// Solve runs the search from an empty partial solution. When the search
// terminates early because the callback returned true, the Matrix is left
// fully restored to its pre-search state: every cover performed on the
// aborted branch is unwound before Solve returns, so the Matrix remains
// safe to reuse for a subsequent search.
func (s *Solver) Solve() error {
	s.stack = s.stack[:0]
	s.stop = false
	s.stats = nil
	return s.search(0)
}

// SolveWithStats runs the same search as Solve, additionally collecting
// node-visit, backtrack, and timing statistics. This is an ambient
// observability concern layered on top of the search, not a change to
// which solutions are found or in what order.
func (s *Solver) SolveWithStats() (*SearchStats, error) {
	s.stack = s.stack[:0]
	s.stop = false
	s.stats = &SearchStats{MatrixSize: s.matrix.matrixInfo()}

	start := time.Now()
	err := s.search(0)
	s.stats.TimeElapsed = time.Since(start)

	stats := s.stats
	s.stats = nil
	return stats, err
}

func (s *Solver) search(k int) error {
	if s.stats != nil {
		s.stats.NodesVisited++
	}

	if s.matrix.root.right == &s.matrix.root.node {
		solution := s.project(k)
		if s.stats != nil {
			s.stats.SolutionsFound++
		}
		if s.callback(solution) {
			s.stop = true
		}
		return nil
	}

	col, err := s.chooseColumn()
	if err != nil {
		return err
	}

	s.matrix.cover(col)

	if len(s.stack) <= k {
		s.stack = append(s.stack, nil)
	}

	for r := col.down; r != &col.node; r = r.down {
		s.stack[k] = r

		for j := r.right; j != r; j = j.right {
			s.matrix.cover(j.column)
		}

		if err := s.search(k + 1); err != nil {
			return err
		}

		// Unwind this row's covers unconditionally, whether we are
		// backtracking to try the next row or unwinding an aborted
		// search back to the top level: both cases require the exact
		// same LIFO-ordered uncover sequence.
		r = s.stack[k]
		for j := r.left; j != r; j = j.left {
			s.matrix.uncover(j.column)
		}

		if s.stats != nil {
			s.stats.BacktrackCount++
		}

		if s.stop {
			break
		}
	}

	s.matrix.uncover(col)
	return nil
}

func (s *Solver) chooseColumn() (*header, error) {
	if s.chooseMin {
		return s.matrix.MinColumn()
	}
	return s.matrix.RandomColumn()
}

// project builds the row-index -> column-name mapping for the first k
// entries of the partial-solution stack. The list for each row begins with
// the name of the column the row was selected to cover, followed by the
// names reached by walking right around that row's horizontal ring.
func (s *Solver) project(k int) map[int][]string {
	solution := make(map[int][]string, k)
	for depth := 0; depth < k && depth < len(s.stack); depth++ {
		r := s.stack[depth]
		names := []string{r.column.name}
		for n := r.right; n != r; n = n.right {
			names = append(names, n.column.name)
		}
		solution[r.row] = names
	}
	return solution
}
