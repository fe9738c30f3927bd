package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/graphio"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/postman"
)

type solveOpts struct {
	solverFlags
	json   bool
	verify bool
}

func newSolveCmd(g *globals) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the minimum-cost closed walk covering every edge",
		Long: `Solve loads a graph (.json, .toml, .yaml) and prints the total cost and
the closed walk. Odd-degree vertices are paired by a minimum-weight perfect
matching and the shortest paths between partners are walked twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.apply(cmd, g.cfg)
			if cmd.Flags().Changed("verify") {
				cfg.Verify = opts.verify
			}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, opts.json)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "re-check the circuit against the input graph")

	return cmd
}

func runSolve(ctx context.Context, out io.Writer, path string, cfg Config, asJSON bool) error {
	logger := loggerFromContext(ctx)

	g, res, err := solveFile(ctx, path, cfg)
	if err != nil {
		return err
	}

	if cfg.Verify {
		walk, err := postman.VerifyCircuit(g, res.Circuit)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if walk != res.Cost {
			logger.Warn("walk cost differs from reported cost; a pair was added with different weights",
				"walk", walk, "cost", res.Cost)
		}
		logger.Debug("circuit verified", "steps", len(res.Circuit)-1)
	}

	if asJSON {
		return graphio.WriteJSON(out, res)
	}
	printResult(out, res)
	if cfg.Verify {
		printSuccess(out, "circuit verified")
	}
	return nil
}

// solveFile loads path and runs the solver configured by cfg.
func solveFile(ctx context.Context, path string, cfg Config) (*core.Graph, *postman.Result, error) {
	logger := loggerFromContext(ctx)

	strategy, err := matching.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, nil, err
	}

	g, err := graphio.ImportFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded graph", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	prog := newProgress(logger)
	res, err := postman.Solve(ctx, g,
		postman.WithLogger(logger),
		postman.WithStrategy(strategy),
		postman.WithParallelism(cfg.Parallel),
		postman.WithMaxOddVertices(cfg.MaxOdd),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Solved %d edges", g.EdgeCount()))

	return g, res, nil
}
