// Package dlx implements Knuth's Algorithm X over a toroidal Dancing Links
// sparse-matrix representation. It solves the exact cover problem: given a
// 0/1 incidence matrix whose columns are constraints and whose rows are
// choices, enumerate the subsets of rows such that every primary column is
// covered exactly once and every secondary column is covered at most once.
//
// The package has no I/O side effects and is not safe for concurrent use by
// two searches sharing the same Matrix.
package dlx

import "fmt"

// node is a single element of the four-way circular linked list: either a
// column header or a body cell representing a 1 in the incidence matrix.
type node struct {
	left, right, up, down *node
	column                *header
	row, col              int // row == -1 on column headers; the root keeps 0, 0
}

// header is a column node. It embeds node so that a *header can stand in
// anywhere a *node is expected (its own horizontal/vertical rings use the
// embedded node's pointers).
type header struct {
	node
	name    string
	size    int
	primary bool
}

// ColumnSpec declares a single column when building a Matrix. Name is an
// opaque label never parsed by dlx; Primary selects whether the column must
// be covered exactly once (true) or at most once (false).
type ColumnSpec struct {
	Name    string
	Primary bool
}

// Columns builds a ColumnSpec slice for n primary columns named C0..C{n-1},
// matching spec.md's "columns is an integer" construction form.
func Columns(n int) []ColumnSpec {
	specs := make([]ColumnSpec, n)
	for i := range specs {
		specs[i] = ColumnSpec{Name: fmt.Sprintf("C%d", i), Primary: true}
	}
	return specs
}

// Matrix owns every node ever allocated for it. All inter-node references
// are non-owning pointers whose validity is guaranteed by the Matrix's own
// lifetime; nothing is freed or reallocated once construction is complete.
type Matrix struct {
	root       *header
	columns    []*header // declaration order, primary and secondary alike
	nrows      int
	ncols      int
	finalized  bool
	randSource RandSource
}

// RandSource supplies uniform integers in [0, n) for RandomColumn. Tests may
// inject a deterministic source; the zero value falls back to a
// package-local math/rand source.
type RandSource func(n int) int

// NewMatrix constructs a Matrix from an explicit column declaration. It
// fails with ErrInvalidColumnSpec if specs is empty.
func NewMatrix(specs []ColumnSpec) (*Matrix, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no columns declared", ErrInvalidColumnSpec)
	}

	m := &Matrix{}
	m.root = &header{name: "root"}
	m.root.left = &m.root.node
	m.root.right = &m.root.node

	m.columns = make([]*header, len(specs))
	prev := m.root
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: column %d has empty name", ErrInvalidColumnSpec, i)
		}
		h := &header{name: spec.Name, primary: spec.Primary}
		h.up = &h.node
		h.down = &h.node
		h.left = &h.node
		h.right = &h.node
		h.column = h
		h.row, h.col = -1, i
		m.columns[i] = h
		m.ncols++

		if spec.Primary {
			prev.right = &h.node
			h.left = &prev.node
			prev = h
		}
	}
	prev.right = &m.root.node
	m.root.left = &prev.node

	return m, nil
}

// NewMatrixOfSize constructs a Matrix of n all-primary columns named
// C0..C{n-1}, matching spec.md's integer-argument construction form. It
// fails with ErrInvalidColumnSpec if n <= 0.
func NewMatrixOfSize(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: column count must be positive, got %d", ErrInvalidColumnSpec, n)
	}
	return NewMatrix(Columns(n))
}

// NumCols returns the declared column count (primary and secondary).
func (m *Matrix) NumCols() int { return m.ncols }

// NumRows returns the number of rows inserted so far.
func (m *Matrix) NumRows() int { return m.nrows }

// AddSparseRow inserts a row given as the column indices of its 1 entries.
// If alreadySorted is false, indices are sorted ascending before linking;
// rows are always linked in ascending column-index order regardless, since
// that ordering is required for the horizontal row-ring invariant.
//
// It fails with ErrBuilderClosed after EndAdd, or ErrIndexOutOfRange if any
// index is >= NumCols(). Duplicate indices within a single row produce
// undefined behavior, per spec.md §4.2.
func (m *Matrix) AddSparseRow(indices []int, alreadySorted bool) error {
	if m.finalized {
		return ErrBuilderClosed
	}

	sorted := indices
	if !alreadySorted {
		sorted = append([]int(nil), indices...)
		insertionSort(sorted)
	}

	for _, ind := range sorted {
		if ind < 0 || ind >= m.ncols {
			return fmt.Errorf("%w: index %d (ncols=%d)", ErrIndexOutOfRange, ind, m.ncols)
		}
	}

	var start, prev *node
	rowID := m.nrows
	for _, ind := range sorted {
		col := m.columns[ind]
		n := &node{row: rowID, col: ind, column: col}

		last := col.up
		last.down = n
		n.up = last
		n.down = &col.node
		col.up = n
		col.size++

		if prev != nil {
			prev.right = n
			n.left = prev
		} else {
			start = n
		}
		prev = n
	}

	if start != nil {
		prev.right = start
		start.left = prev
	}

	m.nrows++
	return nil
}

// EndAdd finalizes the matrix, rejecting any further AddSparseRow calls.
// It is idempotent.
func (m *Matrix) EndAdd() {
	m.finalized = true
}

// insertionSort sorts small row-index lists in place; exact-cover rows are
// typically a handful of columns wide, so this avoids the overhead of
// sort.Ints's interface-based comparator for the common case.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
