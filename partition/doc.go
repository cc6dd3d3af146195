// Package partition enumerates bounded integer partitions: tuples whose
// components sum to a target, each bounded below by a per-component lower
// bound and above by a shared upper bound.
//
// What
//
//   - Generate(target, lowerBounds, upper) returns every tuple t of length
//     len(lowerBounds) with lowerBounds[i] ≤ t[i] ≤ upper and Σt[i] == target.
//   - Realised as the Cartesian product of per-component ranges, filtered by
//     the sum constraint — no combinatorial identity is assumed.
//
// Why
//
//   - The DP pathway enumerator (package enumerate) calls this densely: once
//     per reactant-length split it needs to assemble a reaction-set from
//     sub-pathways of varying lengths. Keeping the combinatorics isolated
//     here keeps that caller's logic readable and keeps this arithmetic
//     independently testable against the fixtures in the design literature.
//
// Determinism
//
//	Enumeration order is the natural odometer order (last component fastest),
//	which is not part of the contract — callers deduplicate downstream and
//	must not rely on ordering.
//
// Complexity
//
//	O((upper − min(lowerBounds) + 1)^len(lowerBounds)) in the worst case,
//	which is why callers only invoke Generate for arities already bounded
//	by graph pre-pruning (at most 4 non-seed reactants survive pruning).
package partition
