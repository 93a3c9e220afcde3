package dlx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixOfSize(t *testing.T) {
	m, err := NewMatrixOfSize(7)
	require.NoError(t, err)
	assert.Equal(t, 7, m.NumCols())
	assert.Equal(t, 0, m.NumRows())
}

func TestNewMatrixInvalidSpec(t *testing.T) {
	_, err := NewMatrixOfSize(0)
	assert.ErrorIs(t, err, ErrInvalidColumnSpec)

	_, err = NewMatrix(nil)
	assert.ErrorIs(t, err, ErrInvalidColumnSpec)

	_, err = NewMatrix([]ColumnSpec{{Name: "", Primary: true}})
	assert.ErrorIs(t, err, ErrInvalidColumnSpec)
}

func TestAddSparseRowIndexOutOfRange(t *testing.T) {
	m, err := NewMatrixOfSize(3)
	require.NoError(t, err)

	err = m.AddSparseRow([]int{0, 3}, false)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBuilderRejectsAfterClose(t *testing.T) {
	m, err := NewMatrixOfSize(3)
	require.NoError(t, err)

	m.EndAdd()
	err = m.AddSparseRow([]int{0}, false)
	assert.ErrorIs(t, err, ErrBuilderClosed)

	// Idempotent.
	m.EndAdd()
}

func TestAddSparseRowUnsortedMatchesSorted(t *testing.T) {
	m, err := NewMatrixOfSize(5)
	require.NoError(t, err)
	require.NoError(t, m.AddSparseRow([]int{4, 1, 3}, false))

	names := m.LiveColumnNames()
	sizes := map[string]int{}
	for _, n := range names {
		sizes[n] = m.ColumnSize(n)
	}
	assert.Equal(t, 1, sizes["C1"])
	assert.Equal(t, 1, sizes["C3"])
	assert.Equal(t, 1, sizes["C4"])
	assert.Equal(t, 0, sizes["C0"])
	assert.Equal(t, 0, sizes["C2"])
}

func TestEmptyRowIsLegal(t *testing.T) {
	m, err := NewMatrixOfSize(3)
	require.NoError(t, err)
	require.NoError(t, m.AddSparseRow(nil, true))
	assert.Equal(t, 1, m.NumRows())
	assert.Equal(t, 0, len(m.LiveEntries()))
}

func TestSecondaryColumnsNeverInRootRing(t *testing.T) {
	specs := []ColumnSpec{
		{Name: "P0", Primary: true},
		{Name: "S0", Primary: false},
		{Name: "P1", Primary: true},
	}
	m, err := NewMatrix(specs)
	require.NoError(t, err)

	var ringNames []string
	for col := m.root.right; col != &m.root.node; col = col.right {
		ringNames = append(ringNames, col.column.name)
	}
	assert.Equal(t, []string{"P0", "P1"}, ringNames)
}

// ringClosure walks direction dir from start and asserts it returns to
// start within bound steps, per spec.md's ring-closure invariant.
func ringClosure(t *testing.T, start *node, dir func(*node) *node, bound int) {
	t.Helper()
	n := dir(start)
	steps := 1
	for n != start {
		steps++
		require.LessOrEqual(t, steps, bound, "ring did not close within bound")
		n = dir(n)
	}
}

func TestRingClosureInvariant(t *testing.T) {
	m, err := NewMatrix(columnsABCDEFG())
	require.NoError(t, err)
	for _, row := range knuthRows() {
		require.NoError(t, m.AddSparseRow(row, true))
	}
	m.EndAdd()

	bound := (m.NumRows() + 2) * (m.NumCols() + 2)

	ringClosure(t, &m.root.node, func(n *node) *node { return n.right }, bound)
	ringClosure(t, &m.root.node, func(n *node) *node { return n.left }, bound)

	for _, h := range m.columns {
		ringClosure(t, &h.node, func(n *node) *node { return n.down }, bound)
		ringClosure(t, &h.node, func(n *node) *node { return n.up }, bound)
	}
}

func TestInverseLinksInvariant(t *testing.T) {
	m, err := NewMatrix(columnsABCDEFG())
	require.NoError(t, err)
	for _, row := range knuthRows() {
		require.NoError(t, m.AddSparseRow(row, true))
	}
	m.EndAdd()

	assertInverse := func(n *node) {
		assert.Same(t, n, n.right.left)
		assert.Same(t, n, n.left.right)
		assert.Same(t, n, n.down.up)
		assert.Same(t, n, n.up.down)
	}

	assertInverse(&m.root.node)
	for _, h := range m.columns {
		assertInverse(&h.node)
		for n := h.down; n != &h.node; n = n.down {
			assertInverse(n)
		}
	}
}

func TestSizeAccuracyInvariant(t *testing.T) {
	m, err := NewMatrix(columnsABCDEFG())
	require.NoError(t, err)
	for _, row := range knuthRows() {
		require.NoError(t, m.AddSparseRow(row, true))
	}
	m.EndAdd()

	for _, h := range m.columns {
		count := 0
		for n := h.down; n != &h.node; n = n.down {
			count++
		}
		assert.Equal(t, h.size, count, "header %s size mismatch", h.name)
	}
}

func TestCoverUncoverIsExactInverse(t *testing.T) {
	m, err := NewMatrix(columnsABCDEFG())
	require.NoError(t, err)
	for _, row := range knuthRows() {
		require.NoError(t, m.AddSparseRow(row, true))
	}
	m.EndAdd()

	before := snapshotLinks(m)

	target := m.columns[2] // column C
	m.cover(target)
	m.uncover(target)

	after := snapshotLinks(m)
	assert.Equal(t, before, after)
}

// snapshotLinks captures every node's four neighbor identities and every
// header's size, keyed by (row, col), so cover/uncover round-trips can be
// compared for bit-exact restoration without relying on pointer equality
// across separately built matrices.
func snapshotLinks(m *Matrix) map[[2]int][5]int {
	id := func(n *node) [2]int { return [2]int{n.row, n.col} }
	out := map[[2]int][5]int{}

	record := func(n *node) {
		key := id(n)
		size := -1
		if n.row == -1 {
			size = n.column.size
		}
		out[key] = [5]int{
			idIndex(id(n.up)),
			idIndex(id(n.down)),
			idIndex(id(n.left)),
			idIndex(id(n.right)),
			size,
		}
	}

	record(&m.root.node)
	for _, h := range m.columns {
		record(&h.node)
		for n := h.down; n != &h.node; n = n.down {
			record(n)
		}
	}
	return out
}

func idIndex(k [2]int) int { return k[0]*100000 + k[1] + 1 }

func columnsABCDEFG() []ColumnSpec {
	return Columns(7)
}

func knuthRows() [][]int {
	return [][]int{
		{2, 4, 5},
		{0, 3, 6},
		{1, 2, 5},
		{0, 3},
		{1, 6},
		{3, 4, 6},
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	m, err := NewMatrixOfSize(2)
	require.NoError(t, err)
	m.EndAdd()

	err = m.AddSparseRow([]int{0}, false)
	assert.True(t, errors.Is(err, ErrBuilderClosed))
}
