package pathway

import (
	"sort"
	"strings"
)

// key identifies one (metabolite, length) bucket of the table.
type key struct {
	metabolite string
	length     int
}

// Table is the pathway table T (or the cyclic table C, which shares the
// same shape — spec §3).
type Table struct {
	// buckets maps (metabolite, length) to the set of canonical reaction-set
	// keys already recorded for that bucket.
	buckets map[key]map[string][]string

	// seeds marks metabolites that carry the length-0 sentinel entry instead
	// of ordinary reaction-set entries.
	seeds map[string]struct{}

	// known indexes every metabolite that has ever had an entry recorded,
	// letting Known answer in O(1) without scanning buckets (used by the
	// enumerator's explosion guard, spec §4.4 step 6).
	known map[string]struct{}
}

// NewTable constructs an empty pathway table.
func NewTable() *Table {
	return &Table{
		buckets: make(map[key]map[string][]string),
		seeds:   make(map[string]struct{}),
		known:   make(map[string]struct{}),
	}
}

// canonicalKey returns a stable, order-independent string key for a
// reaction-set: its members sorted and comma-joined. Two reaction-sets with
// the same members, regardless of insertion order, produce the same key.
func canonicalKey(reactions []string) string {
	sorted := make([]string, len(reactions))
	copy(sorted, reactions)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// SeedEntry installs the length-0 sentinel for a seed metabolite (spec §3:
// "T[s][0] = {∅-sentinel}. Seeds carry exactly one length-0 entry and no
// other length entries."). Calling SeedEntry more than once for the same
// metabolite is a no-op.
func (t *Table) SeedEntry(metabolite string) {
	t.seeds[metabolite] = struct{}{}
	t.known[metabolite] = struct{}{}
}

// IsSeed reports whether metabolite was installed via SeedEntry.
func (t *Table) IsSeed(metabolite string) bool {
	_, ok := t.seeds[metabolite]
	return ok
}

// Insert adds reactions (a reaction-set of the given metabolite, whose
// length is len(reactions)) to the table. It reports whether the set was
// new (true) or already present (false, a no-op).
//
// Complexity: O(k log k) for the canonical key plus O(1) amortized map
// operations, where k = len(reactions).
func (t *Table) Insert(metabolite string, reactions []string) bool {
	length := len(reactions)
	k := key{metabolite: metabolite, length: length}
	bucket, ok := t.buckets[k]
	if !ok {
		bucket = make(map[string][]string)
		t.buckets[k] = bucket
	}

	ck := canonicalKey(reactions)
	if _, dup := bucket[ck]; dup {
		return false
	}

	stored := make([]string, length)
	copy(stored, reactions)
	bucket[ck] = stored
	t.known[metabolite] = struct{}{}

	return true
}

// Known reports whether metabolite has ever had any entry recorded, seed or
// otherwise, in O(1).
func (t *Table) Known(metabolite string) bool {
	_, ok := t.known[metabolite]
	return ok
}

// Has reports whether metabolite has any recorded entries of the given
// length (spec §4.4.a step 1: "require T[a][k−1] to exist").
func (t *Table) Has(metabolite string, length int) bool {
	if t.seeds != nil {
		if _, isSeed := t.seeds[metabolite]; isSeed && length == 0 {
			return true
		}
	}
	bucket, ok := t.buckets[key{metabolite: metabolite, length: length}]
	return ok && len(bucket) > 0
}

// Entries returns every reaction-set recorded for (metabolite, length), in
// no particular order. The returned slices are owned by the caller; Table
// never hands back its internal storage.
func (t *Table) Entries(metabolite string, length int) [][]string {
	bucket, ok := t.buckets[key{metabolite: metabolite, length: length}]
	if !ok {
		return nil
	}

	out := make([][]string, 0, len(bucket))
	for _, reactions := range bucket {
		cp := make([]string, len(reactions))
		copy(cp, reactions)
		out = append(out, cp)
	}

	return out
}

// Count returns the number of distinct reaction-sets recorded for
// (metabolite, length); used by the explosion guard (spec §4.4 step 6).
func (t *Table) Count(metabolite string, length int) int {
	return len(t.buckets[key{metabolite: metabolite, length: length}])
}

// Lengths returns the sorted list of lengths for which metabolite has any
// recorded entries (excluding the seed sentinel).
func (t *Table) Lengths(metabolite string) []int {
	var lengths []int
	for k, bucket := range t.buckets {
		if k.metabolite == metabolite && len(bucket) > 0 {
			lengths = append(lengths, k.length)
		}
	}
	sort.Ints(lengths)

	return lengths
}

// Metabolites returns every metabolite with at least one recorded entry
// (seed or otherwise), sorted.
func (t *Table) Metabolites() []string {
	seen := make(map[string]struct{})
	for k, bucket := range t.buckets {
		if len(bucket) > 0 {
			seen[k.metabolite] = struct{}{}
		}
	}
	for m := range t.seeds {
		seen[m] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// MinLength returns the smallest length with at least one recorded entry
// for metabolite, and whether any entry exists at all (spec §8.7's
// "min { k : T[m][k] ≠ ∅ }").
func (t *Table) MinLength(metabolite string) (int, bool) {
	lengths := t.Lengths(metabolite)
	if len(lengths) == 0 {
		return 0, false
	}
	return lengths[0], true
}
