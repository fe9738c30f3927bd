// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/postman/core"

// Components partitions the positive-degree vertices of g into connected
// components. Components are ordered by their first vertex in insertion
// order; each lists its vertices in BFS order. Isolated vertices are
// omitted: they never constrain a closed edge walk.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool)
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] || g.Degree(v) == 0 {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
