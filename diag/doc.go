// Package diag implements structural invariant checks for a completed (or
// in-progress) enumeration, loosely grounded in the teacher's dfs package
// but reduced to plain set/map membership and count checks: no traversal
// state is kept, and violations are reported as descriptive errors rather
// than sentinel values.
//
// Each Verify function corresponds to one property: a reaction-set's length
// invariant, its precursor closure, cycle-table exclusivity, scope
// soundness, lower-bound consistency, and graph pre-pruning. They return
// nil when the property holds and a descriptive error identifying the
// first violation found otherwise.
//
// These checks are O(table size) or worse and are meant for tests, fuzzing,
// and package enumerate's optional WithDiagnostics(true) mode — not for
// every production run.
package diag
