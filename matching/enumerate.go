package matching

import "fmt"

// EachPairing streams every perfect pairing of nodes to fn, in enumeration
// order: the first remaining node is paired with each later node in turn,
// and the rest is enumerated recursively. Returning false from fn stops the
// enumeration.
//
// The Pairing passed to fn is reused between calls; copy it to keep it.
//
// Errors: ErrOddMatchingSize.
// Complexity: (n−1)!! pairings, O(n) work each.
func EachPairing(nodes []string, fn func(Pairing) bool) error {
	if len(nodes)%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddMatchingSize, len(nodes))
	}
	rest := append([]string(nil), nodes...)
	buf := make(Pairing, 0, len(nodes)/2)
	enumerate(rest, buf, fn)

	return nil
}

// enumerate returns false once fn asked to stop.
func enumerate(rest []string, acc Pairing, fn func(Pairing) bool) bool {
	if len(rest) == 0 {
		return fn(acc)
	}
	first := rest[0]
	for i := 1; i < len(rest); i++ {
		remaining := make([]string, 0, len(rest)-2)
		remaining = append(remaining, rest[1:i]...)
		remaining = append(remaining, rest[i+1:]...)
		if !enumerate(remaining, append(acc, Pair{U: first, V: rest[i]}), fn) {
			return false
		}
	}

	return true
}

// AllPerfectPairings collects every perfect pairing of nodes.
// For [1 2 3 4] the result is [(1,2)(3,4)] [(1,3)(2,4)] [(1,4)(2,3)].
//
// Only tractable for small n; see EachPairing.
func AllPerfectPairings(nodes []string) ([]Pairing, error) {
	var out []Pairing
	err := EachPairing(nodes, func(p Pairing) bool {
		out = append(out, append(Pairing(nil), p...))
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
