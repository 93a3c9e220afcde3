// Package visual renders a snapshot of a dlx.Matrix as a dense grid, for
// debugging exact-cover problems. It mirrors the reference Python
// implementation's DLMatrix.__str__, which builds a numpy ndarray snapshot
// of the currently-live rows and columns; here the dense snapshot is a
// gonum mat.Dense, built from dlx's exported read-only inspection API.
//
// Rendering is read-only: it never calls a mutating Matrix method, so it is
// safe to call from inside a Solver callback to inspect a partially
// covered search state.
package visual

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kadenji/xcover/dlx"
	"gonum.org/v1/gonum/mat"
)

// Snapshot builds a dense 0/1 matrix of the currently-live rows and
// columns of m. Rows are ordered by ascending original row index; columns
// are ordered as dlx.Matrix.LiveColumnNames returns them (root ring order,
// then secondary columns). The returned column-name slice has the same
// length and order as the snapshot's columns.
func Snapshot(m *dlx.Matrix) (*mat.Dense, []string) {
	names := m.LiveColumnNames()
	colIndex := make(map[string]int, len(names))
	for i, n := range names {
		colIndex[n] = i
	}

	entries := m.LiveEntries()
	rowSet := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		rowSet[e.Row] = struct{}{}
	}
	rows := make([]int, 0, len(rowSet))
	for r := range rowSet {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	rowIndex := make(map[int]int, len(rows))
	for i, r := range rows {
		rowIndex[r] = i
	}

	dense := mat.NewDense(len(rows), len(names), nil)
	for _, e := range entries {
		dense.Set(rowIndex[e.Row], colIndex[e.Column], 1)
	}

	return dense, names
}

// Render returns a human-readable table of m's live rows and columns, with
// a header line of column names followed by one line per live row.
func Render(m *dlx.Matrix) string {
	dense, names := Snapshot(m)
	if len(names) == 0 {
		return "(empty matrix)"
	}

	var b strings.Builder
	b.WriteString(strings.Join(names, " "))
	b.WriteByte('\n')

	r, c := dense.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", len(names[j]), int(dense.At(i, j)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
