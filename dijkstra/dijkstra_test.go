// Package dijkstra_test covers single-source distances on multigraphs,
// subset all-pairs tables (sequential and parallel) and path reconstruction.
package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// squareWithDiagonal is A—B—C—D—A (1 each) plus the diagonal A—C (5).
func squareWithDiagonal(t testing.TB) *core.Graph {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSingleSource_Validation(t *testing.T) {
	_, err := dijkstra.SingleSource(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := squareWithDiagonal(t)
	_, err = dijkstra.SingleSource(g, "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.SingleSource(g, "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestSingleSource_SquareWithDiagonal(t *testing.T) {
	res, err := dijkstra.SingleSource(squareWithDiagonal(t), "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 1}, res.Dist)
	assert.Equal(t, "", res.Prev["A"])
	assert.Equal(t, "A", res.Prev["B"])
	assert.Equal(t, "B", res.Prev["C"], "first relaxation wins the tie B vs D")
}

func TestSingleSource_ParallelEdgesCollapse(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge("A", "B", 3))
	}
	require.NoError(t, g.AddEdge("B", "C", 2))

	res, err := dijkstra.SingleSource(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Dist["C"])
}

func TestSingleSource_UnreachableIsInfinity(t *testing.T) {
	g := squareWithDiagonal(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))

	res, err := dijkstra.SingleSource(g, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, res.Dist["X"])
	assert.Equal(t, "", res.Prev["X"])

	_, err = dijkstra.ReconstructPath(res.Prev, "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 3. All pairs over a subset
// ------------------------------------------------------------------------

func TestSingleSource_DistanceOverflow(t *testing.T) {
	// A—B (MaxInt64−1) is the largest finite distance.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", math.MaxInt64-1))
	res, err := dijkstra.SingleSource(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), res.Dist["B"])

	// B—C (1) would make dist(C) collide with Infinity.
	require.NoError(t, g.AddEdge("B", "C", 1))
	_, err = dijkstra.SingleSource(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)

	_, err = dijkstra.ComputeAllPairs(context.Background(), g, []string{"A", "C"})
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
}

func TestComputeAllPairs_Subset(t *testing.T) {
	g := squareWithDiagonal(t)
	ap, err := dijkstra.ComputeAllPairs(context.Background(), g, []string{"A", "C"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, ap.Sources)
	assert.Equal(t, int64(2), ap.Cost["A"]["C"])
	assert.Equal(t, int64(2), ap.Cost["C"]["A"])
	assert.Equal(t, int64(0), ap.Cost["A"]["A"])
	assert.Len(t, ap.Cost["A"], 2, "cost rows only cover the subset")

	path, err := ap.Path("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = ap.Path("B", "C")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestComputeAllPairs_Unreachable(t *testing.T) {
	g := squareWithDiagonal(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))

	_, err := dijkstra.ComputeAllPairs(context.Background(), g, []string{"A", "X"})
	require.ErrorIs(t, err, dijkstra.ErrUnreachableVertex)
}

func TestComputeAllPairs_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.ComputeAllPairs(ctx, squareWithDiagonal(t), []string{"A", "C"})
	require.ErrorIs(t, err, context.Canceled)
}

// TestComputeAllPairs_ParallelMatchesSequential runs random connected graphs
// through both execution modes and checks that the tables are identical and
// that every reconstructed path sums to its table cost.
func TestComputeAllPairs_ParallelMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 25; trial++ {
		g, ids := randomConnected(t, r, 3+r.Intn(15), r.Intn(25))
		k := 2 + r.Intn(len(ids)-1)
		subset := ids[:k]

		seq, err := dijkstra.ComputeAllPairs(context.Background(), g, subset)
		require.NoError(t, err)
		par, err := dijkstra.ComputeAllPairs(context.Background(), g, subset, dijkstra.WithParallelism(4))
		require.NoError(t, err)
		require.Equal(t, seq.Cost, par.Cost, "trial %d", trial)
		require.Equal(t, seq.Prev, par.Prev, "trial %d", trial)

		for _, u := range subset {
			for _, v := range subset {
				path, err := seq.Path(u, v)
				require.NoError(t, err)
				require.Equal(t, u, path[0])
				require.Equal(t, v, path[len(path)-1])

				var sum int64
				for i := 0; i+1 < len(path); i++ {
					w, err := g.Weight(path[i], path[i+1])
					require.NoError(t, err)
					sum += w
				}
				require.Equal(t, seq.Cost[u][v], sum, "trial %d path %v", trial, path)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. ReconstructPath edge cases
// ------------------------------------------------------------------------

func TestReconstructPath(t *testing.T) {
	prev := map[string]string{"A": "", "B": "A", "C": "B"}

	path, err := dijkstra.ReconstructPath(prev, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = dijkstra.ReconstructPath(prev, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = dijkstra.ReconstructPath(prev, "A", "Q")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	cyclic := map[string]string{"A": "", "B": "C", "C": "B"}
	_, err = dijkstra.ReconstructPath(cyclic, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// randomConnected builds a spanning chain v0…v(n-1) plus m random extra
// edges with weights in [0,20).
func randomConnected(t testing.TB, r *rand.Rand, n, m int) (*core.Graph, []string) {
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], int64(r.Intn(20))))
	}
	for i := 0; i < m; i++ {
		u, v := ids[r.Intn(n)], ids[r.Intn(n)]
		require.NoError(t, g.AddEdge(u, v, int64(r.Intn(20))))
	}

	return g, ids
}
