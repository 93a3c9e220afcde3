package dlx

import "time"

// SearchStats tracks statistics about a single SolveWithStats run; Solve
// collects none.
// Modeled on dancing_links_util.go's DancingLinksStats, generalized off
// the Sudoku-specific naming.
type SearchStats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// MatrixInfo describes a Matrix's static shape, captured once before a
// search begins.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of non-zero entries
}

// matrixInfo walks every declared column's live size to report the
// matrix's shape. Called once per SolveWithStats run, not per node, so its
// O(columns) cost is negligible next to the search itself.
func (m *Matrix) matrixInfo() MatrixInfo {
	total := 0
	for _, h := range m.columns {
		total += h.size
	}
	info := MatrixInfo{Columns: m.ncols, Rows: m.nrows, TotalNodes: total}
	if m.ncols > 0 && m.nrows > 0 {
		info.Density = float64(total) / float64(m.ncols*m.nrows) * 100
	}
	return info
}
