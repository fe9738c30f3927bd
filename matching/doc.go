// Package matching computes an exact minimum-weight perfect matching over
// the (small, even-sized) set of odd-degree vertices.
//
// Two strategies share one contract:
//
//   - Exhaustive: enumerate all (n−1)!! pairings (EachPairing) and keep the
//     first one with minimal total cost.
//   - Bitmask: subset DP in O(2ⁿ·n), bounded by MaxDPNodes. It is built to
//     return the very same pairing as Exhaustive, ties included.
//
// Costs come from a CostTable (cost[u][v]); an absent entry is
// ErrMissingCost rather than an implicit zero.
//
// Neither strategy scales to large n. Callers that cannot bound the number
// of odd vertices should cap it before calling (postman.WithMaxOddVertices).
package matching
