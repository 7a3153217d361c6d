package permutations

import "cmp"

// Next rearranges s into its lexicographic successor.
// It returns false and leaves s unchanged if s is already in descending order.
func Next[T cmp.Ordered](s []T) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// smallest element right of i that is still greater than s[i]
	j := i + 1
	for k := i + 2; k < len(s); k++ {
		if s[k] > s[i] && s[k] < s[j] {
			j = k
		}
	}
	s[i], s[j] = s[j], s[i]

	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return true
}
