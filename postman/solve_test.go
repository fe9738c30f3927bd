package postman_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/postman"
)

// SolveSuite exercises the end-to-end pipeline.
type SolveSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolveSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SolveSuite) graph(edges ...[3]any) *core.Graph {
	g := core.NewGraph()
	for _, e := range edges {
		s.Require().NoError(g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int))))
	}

	return g
}

// TestTriangle: already Eulerian, cost is the total weight.
func (s *SolveSuite) TestTriangle() {
	g := s.graph([3]any{"A", "B", 1}, [3]any{"B", "C", 1}, [3]any{"C", "A", 1})
	res, err := postman.Solve(s.ctx, g)
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C", "A"}, res.Circuit)
	s.Equal(int64(3), res.Cost)
	s.Empty(res.OddVertices)
	s.Empty(res.Pairing)
	s.Zero(res.MatchingCost)
}

// TestSquareWithDiagonal: odd {A,C}, matched via A→B→C.
func (s *SolveSuite) TestSquareWithDiagonal() {
	g := s.graph(
		[3]any{"A", "B", 1}, [3]any{"B", "C", 1}, [3]any{"C", "D", 1},
		[3]any{"D", "A", 1}, [3]any{"A", "C", 5},
	)
	res, err := postman.Solve(s.ctx, g)
	s.Require().NoError(err)

	s.Equal([]string{"A", "C"}, res.OddVertices)
	s.Equal(matching.Pairing{{U: "A", V: "C"}}, res.Pairing)
	s.Equal(int64(2), res.MatchingCost)
	s.Equal(int64(11), res.Cost)
	s.Equal([]string{"A", "B", "A", "C", "B", "C", "D", "A"}, res.Circuit)

	s.Equal(7, res.Augmented.EdgeCount())
	s.Equal(5, g.EdgeCount(), "input graph must stay untouched")
	for _, v := range res.Augmented.Vertices() {
		s.Zero(res.Augmented.Degree(v)%2, "vertex %s", v)
	}

	cost, err := postman.VerifyCircuit(g, res.Circuit)
	s.Require().NoError(err)
	s.Equal(res.Cost, cost)
}

func (s *SolveSuite) TestDisconnected() {
	g := s.graph(
		[3]any{"A", "B", 1}, [3]any{"B", "C", 1}, [3]any{"C", "A", 1},
		[3]any{"X", "Y", 1}, [3]any{"Y", "Z", 1}, [3]any{"Z", "X", 1},
	)
	res, err := postman.Solve(s.ctx, g)
	s.Nil(res)
	s.Require().ErrorIs(err, postman.ErrDisconnected)
	s.Equal("disconnected", postman.Reason(err))
	s.Contains(err.Error(), "2 components")
}

func (s *SolveSuite) TestEmptyAndIsolated() {
	res, err := postman.Solve(s.ctx, core.NewGraph())
	s.Require().NoError(err)
	s.Empty(res.Circuit)
	s.Zero(res.Cost)

	g := core.NewGraph()
	s.Require().NoError(g.AddVertex("X"))
	res, err = postman.Solve(s.ctx, g)
	s.Require().NoError(err)
	s.Equal([]string{"X"}, res.Circuit)
}

func (s *SolveSuite) TestIsolatedVertexDoesNotStartCircuit() {
	g := core.NewGraph()
	s.Require().NoError(g.AddVertex("Q"))
	s.Require().NoError(g.AddEdge("A", "B", 2))
	s.Require().NoError(g.AddEdge("B", "A", 2))

	res, err := postman.Solve(s.ctx, g)
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "A"}, res.Circuit)
	s.Equal(int64(4), res.Cost)
}

// TestPathGraph doubles every edge of a simple path.
func (s *SolveSuite) TestPathGraph() {
	g := s.graph([3]any{"A", "B", 2}, [3]any{"B", "C", 3})
	res, err := postman.Solve(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(int64(10), res.Cost)
	s.Equal([]string{"A", "B", "C", "B", "A"}, res.Circuit)
}

// TestCostOverflow: on a path every edge is walked twice, so the route
// costs 2·TotalWeight.
func (s *SolveSuite) TestCostOverflow() {
	// two edges of MaxInt64/2+1 are rejected while loading
	g := core.NewGraph()
	s.Require().NoError(g.AddEdge("A", "B", math.MaxInt64/2+1))
	s.Require().ErrorIs(g.AddEdge("B", "C", math.MaxInt64/2+1), core.ErrWeightOverflow)

	// total 2⁶² fits, the doubled route does not
	g = core.NewGraph()
	s.Require().NoError(g.AddEdge("A", "B", 1<<61))
	s.Require().NoError(g.AddEdge("B", "C", 1<<61))
	res, err := postman.Solve(s.ctx, g)
	s.Nil(res)
	s.Require().ErrorIs(err, postman.ErrCostOverflow)

	// one less per edge and the route is representable
	g = core.NewGraph()
	s.Require().NoError(g.AddEdge("A", "B", 1<<61-1))
	s.Require().NoError(g.AddEdge("B", "C", 1<<61-1))
	res, err = postman.Solve(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(int64(1<<63-4), res.Cost)
	walk, err := postman.VerifyCircuit(g, res.Circuit)
	s.Require().NoError(err)
	s.Equal(res.Cost, walk)
}

func (s *SolveSuite) TestMaxOddVertices() {
	g := s.graph([3]any{"A", "B", 1}, [3]any{"C", "B", 1}, [3]any{"D", "B", 1}, [3]any{"E", "B", 1})
	_, err := postman.Solve(s.ctx, g, postman.WithMaxOddVertices(2))
	s.Require().ErrorIs(err, postman.ErrTooManyOddVertices)

	res, err := postman.Solve(s.ctx, g, postman.WithMaxOddVertices(4))
	s.Require().NoError(err)
	s.Equal(int64(8), res.Cost)
}

func (s *SolveSuite) TestCancelledContext() {
	g := s.graph([3]any{"A", "B", 1}, [3]any{"B", "C", 1})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := postman.Solve(ctx, g)
	s.Require().ErrorIs(err, context.Canceled)
}

func (s *SolveSuite) TestNilGraph() {
	_, err := postman.Solve(s.ctx, nil)
	s.Require().ErrorIs(err, postman.ErrNilGraph)
}

func (s *SolveSuite) TestLogsStages() {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := s.graph([3]any{"A", "B", 1}, [3]any{"B", "C", 1})

	_, err := postman.Solve(s.ctx, g, postman.WithLogger(logger))
	s.Require().NoError(err)
	s.Contains(buf.String(), "found odd-degree vertices")
	s.Contains(buf.String(), "minimum matching")
	s.Contains(buf.String(), "augmented graph")
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// pairWeight makes the weight a function of the pair so that repeated
// insertions never hit the overwrite quirk; the walk cost then equals the
// reported cost exactly.
func pairWeight(u, v int) int64 {
	if v < u {
		u, v = v, u
	}

	return int64((u*7+v*13)%17 + 1)
}

// TestSolve_RandomGraphs checks the solver invariants on random connected
// multigraphs under every strategy/parallelism combination.
func TestSolve_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for trial := 0; trial < 40; trial++ {
		n := 2 + r.Intn(9)
		g := core.NewGraph()
		name := func(i int) string { return fmt.Sprintf("v%d", i) }
		for i := 1; i < n; i++ {
			j := r.Intn(i)
			require.NoError(t, g.AddEdge(name(j), name(i), pairWeight(i, j)))
		}
		for k := r.Intn(2 * n); k > 0; k-- {
			u, v := r.Intn(n), r.Intn(n)
			require.NoError(t, g.AddEdge(name(u), name(v), pairWeight(u, v)))
		}

		ref, err := postman.Solve(context.Background(), g)
		require.NoError(t, err, "trial %d", trial)
		require.Len(t, ref.Circuit, ref.Augmented.EdgeCount()+1)
		require.Equal(t, ref.Circuit[0], ref.Circuit[len(ref.Circuit)-1])
		require.Equal(t, g.TotalWeight()+ref.MatchingCost, ref.Cost)

		cost, err := postman.VerifyCircuit(g, ref.Circuit)
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, ref.Cost, cost, "trial %d", trial)

		alt, err := postman.Solve(context.Background(), g,
			postman.WithStrategy(matching.Bitmask), postman.WithParallelism(3))
		require.NoError(t, err)
		require.Equal(t, ref.Circuit, alt.Circuit, "trial %d", trial)
		require.Equal(t, ref.Cost, alt.Cost)
	}
}
