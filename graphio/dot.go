package graphio

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/postman"
)

// ToDOT renders g as an undirected Graphviz document.
//
// Every edge instance of g becomes one solid edge labelled with its weight.
// When res is non-nil, the copies the solver added (res.Augmented minus g)
// are drawn dashed, odd-degree vertices are filled, and the circuit start
// is drawn with a double outline.
func ToDOT(g *core.Graph, res *postman.Result) string {
	var buf bytes.Buffer
	buf.WriteString("graph postman {\n")
	buf.WriteString("  node [shape=circle fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\" fontsize=10];\n")

	odd := make(map[string]bool)
	start := ""
	if res != nil {
		for _, v := range res.OddVertices {
			odd[v] = true
		}
		if len(res.Circuit) > 0 {
			start = res.Circuit[0]
		}
	}

	for _, v := range g.Vertices() {
		var attrs []string
		if odd[v] {
			attrs = append(attrs, "style=filled", `fillcolor="#f4d06f"`)
		}
		if v == start {
			attrs = append(attrs, "shape=doublecircle")
		}
		fmt.Fprintf(&buf, "  %s", quote(v))
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, " [%s]", strings.Join(attrs, " "))
		}
		buf.WriteString(";\n")
	}

	original := make(map[[2]string]int)
	for _, e := range g.Edges() {
		original[[2]string{e.U, e.V}] = e.Count
		for range e.Count {
			fmt.Fprintf(&buf, "  %s -- %s [label=%s];\n", quote(e.U), quote(e.V), quote(strconv.FormatInt(e.Weight, 10)))
		}
	}

	if res != nil && res.Augmented != nil && res.Augmented != g {
		for _, e := range res.Augmented.Edges() {
			extra := e.Count - original[[2]string{e.U, e.V}]
			for range extra {
				fmt.Fprintf(&buf, "  %s -- %s [label=%s style=dashed color=\"#c0392b\"];\n",
					quote(e.U), quote(e.V), quote(strconv.FormatInt(e.Weight, 10)))
			}
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

func quote(s string) string {
	return strconv.Quote(s)
}

// RenderSVG lays out a DOT document with the embedded Graphviz engine and
// returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("graphio: init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("graphio: parse dot: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("graphio: render svg: %w", err)
	}

	return buf.Bytes(), nil
}
