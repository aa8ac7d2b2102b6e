package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// ArgSort returns the permutation that sorts s in ascending order.
// The input slice is left untouched.
func ArgSort[T constraints.Ordered](s []T) (perm []int) {
	perm = make([]int, len(s))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return s[perm[i]] < s[perm[j]]
	})
	return
}

// Permute returns a new slice whose i-th element is s[perm[i]].
func Permute[V any](s []V, perm []int) (r []V) {
	if len(s) != len(perm) {
		panic("cannot Permute: s and perm of different lengths")
	}
	r = make([]V, len(s))
	for i, p := range perm {
		r[i] = s[p]
	}
	return
}

// IsStrictlyIncreasing returns true if s[i-1] < s[i] for all i.
func IsStrictlyIncreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}
