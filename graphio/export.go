package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/postman"
)

// PairJSON is one matched odd-vertex pair in JSON output.
type PairJSON struct {
	U string `json:"u"`
	V string `json:"v"`
}

// ResultJSON is the machine-readable form of a postman.Result.
type ResultJSON struct {
	Cost         int64      `json:"cost"`
	Circuit      []string   `json:"circuit"`
	OddVertices  []string   `json:"odd_vertices"`
	Matching     []PairJSON `json:"matching"`
	MatchingCost int64      `json:"matching_cost"`
}

// NewResultJSON converts res; nil slices become empty arrays.
func NewResultJSON(res *postman.Result) ResultJSON {
	out := ResultJSON{
		Cost:         res.Cost,
		Circuit:      append([]string{}, res.Circuit...),
		OddVertices:  append([]string{}, res.OddVertices...),
		Matching:     make([]PairJSON, 0, len(res.Pairing)),
		MatchingCost: res.MatchingCost,
	}
	for _, p := range res.Pairing {
		out.Matching = append(out.Matching, PairJSON{U: p.U, V: p.V})
	}

	return out
}

// WriteJSON writes res as indented JSON followed by a newline.
func WriteJSON(w io.Writer, res *postman.Result) error {
	if res == nil {
		return fmt.Errorf("graphio: nil result")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewResultJSON(res)); err != nil {
		return fmt.Errorf("graphio: encode result: %w", err)
	}

	return nil
}

// graphJSON is the ReadJSON input shape.
type graphJSON struct {
	Vertices []string `json:"vertices"`
	Edges    [][3]any `json:"edges"`
}

// WriteGraphJSON writes g in the format ReadJSON accepts: every vertex in
// insertion order, then one [u, v, w] triple per edge instance. Reading the
// output back yields the same vertex order, multiplicities and weights.
func WriteGraphJSON(w io.Writer, g *core.Graph) error {
	doc := graphJSON{Vertices: g.Vertices(), Edges: make([][3]any, 0, g.EdgeCount())}
	for _, e := range g.Edges() {
		for range e.Count {
			doc.Edges = append(doc.Edges, [3]any{e.U, e.V, e.Weight})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode graph: %w", err)
	}

	return nil
}
