package enumerate

// combinations returns every subset of items of exactly size k, in the
// order itertools.combinations would produce them: indices advance like an
// odometer with a strictly-increasing constraint per position.
func combinations(items []string, k int) [][]string {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]string{{}}
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]string
	for {
		subset := make([]string, k)
		for i, v := range idx {
			subset[i] = items[v]
		}
		out = append(out, subset)

		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			break
		}
		idx[pos]++
		for i := pos + 1; i < k; i++ {
			idx[i] = idx[i-1] + 1
		}
	}

	return out
}

// cartesianProduct returns every way to pick exactly one element from each
// slot in slots, preserving slot order. An empty slots list yields a single
// empty combination; any empty slot yields no combinations at all.
func cartesianProduct(slots [][][]string) [][][]string {
	result := [][][]string{{}}
	for _, slot := range slots {
		if len(slot) == 0 {
			return nil
		}
		var next [][][]string
		for _, prefix := range result {
			for _, choice := range slot {
				combo := make([][]string, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = choice
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
