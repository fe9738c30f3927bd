package postman_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/builder"
	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/postman"
)

func mustBuild(t testing.TB, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	return g
}

func TestSolve_BuilderFixtures(t *testing.T) {
	ids := []builder.BuilderOption{builder.WithExcelColumnIDs()}

	tests := []struct {
		name     string
		g        *core.Graph
		wantCost int64
		wantOdd  int
	}{
		{"cycle is Eulerian", mustBuild(t, ids, builder.Cycle(6)), 6, 0},
		{"path walked twice", mustBuild(t, ids, builder.Path(5)), 8, 2},
		{"star leaves paired", mustBuild(t, ids, builder.Star(5)), 8, 4},
		{"3x3 grid", mustBuild(t, nil, builder.Grid(3, 3)), 16, 4},
		{"K4", mustBuild(t, ids, builder.Complete(4)), 8, 4},
		{"parallel pair", mustBuild(t, ids, builder.Path(2), builder.Parallel(0, 1, 1)), 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := postman.Solve(context.Background(), tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCost, res.Cost)
			assert.Len(t, res.OddVertices, tc.wantOdd)

			walk, err := postman.VerifyCircuit(tc.g, res.Circuit)
			require.NoError(t, err)
			assert.Equal(t, res.Cost, walk)
		})
	}
}

func TestSolve_RandomConnectedFixtures(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g := mustBuild(t,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 20)},
			builder.RandomConnected(10, 0.25),
		)

		res, err := postman.Solve(context.Background(), g, postman.WithStrategy(matching.Bitmask))
		require.NoError(t, err, "seed %d", seed)
		assert.Empty(t, res.Augmented.OddDegreeVertices())

		walk, err := postman.VerifyCircuit(g, res.Circuit)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, res.Cost, walk, "seed %d", seed)
	}
}

func benchmarkSolve(b *testing.B, g *core.Graph, opts ...postman.Option) {
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := postman.Solve(ctx, g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Grid5x5(b *testing.B) {
	benchmarkSolve(b, mustBuild(b, nil, builder.Grid(5, 5)), postman.WithStrategy(matching.Bitmask))
}

func BenchmarkSolve_K10Exhaustive(b *testing.B) {
	benchmarkSolve(b, mustBuild(b, nil, builder.Complete(10)))
}

func BenchmarkSolve_K10Bitmask(b *testing.B) {
	benchmarkSolve(b, mustBuild(b, nil, builder.Complete(10)), postman.WithStrategy(matching.Bitmask))
}

func BenchmarkSolve_Random18Parallel(b *testing.B) {
	g := mustBuild(b,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 50)},
		builder.RandomConnected(18, 0.1),
	)
	benchmarkSolve(b, g, postman.WithStrategy(matching.Bitmask), postman.WithParallelism(4))
}
