package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/graphio"
)

type renderOpts struct {
	solverFlags
	output string
}

func newRenderCmd(g *globals) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the graph with the solver's duplicated edges (DOT or SVG)",
		Long: `Render solves the graph and writes it as Graphviz DOT or SVG, chosen by
the output extension. Edges walked twice are dashed; odd-degree vertices are
filled and the circuit start has a double outline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.apply(cmd, g.cfg)
			return runRender(cmd, args[0], cfg, opts.output)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg); defaults to <input>.svg")

	return cmd
}

func runRender(cmd *cobra.Command, input string, cfg Config, output string) error {
	ctx := cmd.Context()
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}

	g, res, err := solveFile(ctx, input, cfg)
	if err != nil {
		return err
	}

	data, err := renderAs(ctx, graphio.ToDOT(g, res), filepath.Ext(output))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered cost %s", StyleNumber.Render(fmt.Sprint(res.Cost)))
	printFile(out, output)
	return nil
}

func renderAs(ctx context.Context, dot, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".dot", ".gv":
		return []byte(dot), nil
	case ".svg":
		return graphio.RenderSVG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .dot or .svg)", ext)
	}
}
