// Package pathway implements the pathway table T and the (identically
// shaped) cyclic-pathway table C described by the core specification: a
// mapping from metabolite to length to the distinct reaction-sets of that
// length which produce it.
//
// What
//
//   - Table stores, per (metabolite, length), a deduplicated set of
//     reaction-sets (each an unordered set of reaction IDs).
//   - SeedEntry installs the length-0 sentinel a seed metabolite carries
//     instead of any reaction-set entries.
//   - Insert reports whether the reaction-set was new, so callers never
//     need a separate membership check before inserting.
//
// Why a flat keyed map instead of nested maps-of-maps-of-lists
//
//	The original design notes flag the nested-map-of-list shape as O(n)
//	per insertion (index-lookup-with-fallback on a Go slice, or a Python
//	list, is linear). Table instead keys a single map by (metabolite,
//	length) and stores a set of canonical keys — each key a sorted,
//	comma-joined tuple of reaction IDs — giving O(1) amortized membership
//	tests and insertion, with identical observable semantics.
//
// Concurrency
//
//	A Table belongs to exactly one enumeration run (see package enumerate)
//	and is not safe for concurrent mutation; concurrent reads after the
//	enumeration completes are safe.
package pathway
