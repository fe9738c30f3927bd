package dijkstra

import "fmt"

// ReconstructPath walks prev backwards from v until it reaches u and
// returns the vertices in u → v order. ReconstructPath(prev, u, u) is [u].
//
// A missing or empty predecessor before reaching u yields ErrNoPath; so does
// a predecessor chain longer than len(prev), which can only be a cycle.
//
// Complexity: O(path length).
func ReconstructPath(prev map[string]string, u, v string) ([]string, error) {
	path := []string{v}
	cur := v
	for cur != u {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q → %q breaks at %q", ErrNoPath, u, v, cur)
		}
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle between %q and %q", ErrNoPath, u, v)
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
