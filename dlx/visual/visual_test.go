package visual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadenji/xcover/dlx"
)

func buildFixture(t *testing.T) (*dlx.Matrix, int) {
	t.Helper()
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	specs := dlx.Columns(len(names))
	for i, n := range names {
		specs[i].Name = n
	}

	m, err := dlx.NewMatrix(specs)
	require.NoError(t, err)

	rows := [][]int{
		{2, 4, 5},
		{0, 3, 6},
		{1, 2, 5},
		{0, 3},
		{1, 6},
		{3, 4, 6},
	}
	entryCount := 0
	for _, row := range rows {
		require.NoError(t, m.AddSparseRow(row, true))
		entryCount += len(row)
	}
	m.EndAdd()
	return m, entryCount
}

func TestSnapshotRowCountMatchesInsertedRows(t *testing.T) {
	m, _ := buildFixture(t)

	dense, names := Snapshot(m)
	assert.Len(t, names, 7)

	r, c := dense.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 7, c)
}

func TestSnapshotHasOneEntryPerInsertedCell(t *testing.T) {
	m, entryCount := buildFixture(t)

	dense, _ := Snapshot(m)
	r, c := dense.Dims()

	ones := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if dense.At(i, j) == 1 {
				ones++
			}
		}
	}
	assert.Equal(t, entryCount, ones)
}

func TestRenderProducesHeaderAndOneLinePerRow(t *testing.T) {
	m, _ := buildFixture(t)

	out := Render(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+6)
	assert.Equal(t, "A B C D E F G", lines[0])
}

func TestRenderEmptyMatrixAtSolution(t *testing.T) {
	m, _ := buildFixture(t)

	s := dlx.NewSolver(m, func(sol map[int][]string) bool {
		// Every primary column is covered at a solution, and this fixture
		// declares no secondary columns, so nothing remains live.
		assert.Equal(t, "(empty matrix)", Render(m))
		return false
	}, true)
	require.NoError(t, s.Solve())
}
