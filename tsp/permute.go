package tsp

import "math"

// nextPermutation rearranges p into the lexicographically next permutation
// and reports whether one existed. On false, p is left in its last
// (descending) arrangement. Only the relative order of values matters.
//
// Complexity: O(len(p)) worst case, amortized O(1).
func nextPermutation(p []int) bool {
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	// Reverse the descending suffix into ascending order.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// SearchSpace returns the number of candidate routes the exact solver scores
// for n locations, (n−1)!. ok is false when n < 2 or the count does not fit
// in an int64 (n > 21).
//
// Complexity: O(n).
func SearchSpace(n int) (count int64, ok bool) {
	if n < 2 {
		return 0, false
	}
	count = 1
	var k int64
	for k = 2; k < int64(n); k++ {
		if count > math.MaxInt64/k {
			return 0, false
		}
		count *= k
	}

	return count, true
}
