package permutations

import (
	"cmp"
	"iter"
	"slices"
)

// All yields every ordering of values in lexicographic order. Each yielded slice is a fresh copy.
func All[T cmp.Ordered](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		s := slices.Clone(values)
		slices.Sort(s)
		for {
			if !yield(slices.Clone(s)) {
				return
			}
			if !Next(s) {
				return
			}
		}
	}
}
