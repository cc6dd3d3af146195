package partition

// Generate returns every tuple t of length len(lowerBounds) such that
// lowerBounds[i] ≤ t[i] ≤ upper for every i and the components sum to
// target.
//
// Generate never mutates lowerBounds. If any component's range
// [lowerBounds[i], upper] is empty (lowerBounds[i] > upper) the result is
// nil, since no tuple can be formed.
//
// Complexity: O(∏(upper−lowerBounds[i]+1)) to enumerate the Cartesian
// product, O(1) extra per candidate to test the sum.
func Generate(target int, lowerBounds []int, upper int) [][]int {
	arity := len(lowerBounds)
	if arity == 0 {
		if target == 0 {
			return [][]int{{}}
		}
		return nil
	}

	spans := make([]int, arity) // spans[i] = number of values component i can take
	for i, lb := range lowerBounds {
		span := upper - lb + 1
		if span <= 0 {
			return nil
		}
		spans[i] = span
	}

	var result [][]int
	current := make([]int, arity)
	for i, lb := range lowerBounds {
		current[i] = lb
	}

	for {
		sum := 0
		for _, v := range current {
			sum += v
		}
		if sum == target {
			tuple := make([]int, arity)
			copy(tuple, current)
			result = append(result, tuple)
		}

		// odometer increment: rightmost component fastest, like digits of
		// a mixed-radix counter.
		pos := arity - 1
		for pos >= 0 {
			current[pos]++
			if current[pos] <= upper {
				break
			}
			current[pos] = lowerBounds[pos]
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return result
}
