package sudoku

import "github.com/kadenji/xcover/sudoku/board"

// eliminateGivenCandidates removes each given cell's value as a candidate
// from its row, column and box peers. This is a single pass (not the
// teacher's full iterative naked/hidden-single cascade) run once before
// building the exact-cover matrix, so the encoder emits fewer candidate
// rows for cells a given value already rules out.
//
// Adapted from internal/solver.Solver.eliminateCandidates in the teacher
// repository, stripped of the Group/House bookkeeping that exists there to
// support the fuller human-technique solver: the exact-cover search below
// doesn't need cached per-house candidate-location sets, only the reduced
// per-cell candidate sets.
func eliminateGivenCandidates(b *board.Board) {
	for r := range 9 {
		for c := range 9 {
			cell := b.Grid[r][c]
			if cell.IsGiven {
				eliminatePeers(b, r, c, cell.Value())
			}
		}
	}
}

func eliminatePeers(b *board.Board, r, c int, val int8) {
	boxRow, boxCol := (r/3)*3, (c/3)*3
	for i := range 9 {
		removeCandidateIfUnsolved(b, r, i, val)                    // row r
		removeCandidateIfUnsolved(b, i, c, val)                    // column c
		removeCandidateIfUnsolved(b, boxRow+i/3, boxCol+i%3, val)  // box
	}
}

func removeCandidateIfUnsolved(b *board.Board, r, c int, val int8) {
	cell := b.Grid[r][c]
	if !cell.IsSolved() {
		cell.RemoveCandidate(val)
	}
}
