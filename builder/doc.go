// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from
// composable constructors.
//
//   - Constructors: Cycle, Path, Star, Wheel, Complete, Grid, RandomConnected
//     and Parallel (extra copies of an existing pair).
//   - Vertex IDs (IDFn): DefaultIDFn ("0","1",…), ExcelColumnIDFn ("A",…,"Z","AA",…)
//     and SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Edge weights (WeightFn): constant (default 1) or uniform integers in
//     [min,max] drawn from a seeded RNG.
//
// Same options, seed and constructor order ⇒ identical graph, including
// vertex insertion order, so the postman solver's output is reproducible
// on generated inputs.
//
// Option constructors panic on meaningless values (nil functions, empty
// ranges); constructors themselves return sentinel errors.
package builder
