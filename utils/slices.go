package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is the set of types on which arithmetic helpers operate.
type Number interface {
	constraints.Integer | constraints.Float
}

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// MaxSlice returns the largest element of s, and the zero value if s is empty.
func MaxSlice[V constraints.Ordered](s []V) (max V) {
	if len(s) == 0 {
		return
	}
	max = s[0]
	for _, si := range s[1:] {
		if si > max {
			max = si
		}
	}
	return
}

// ToFloat64Slice returns a new slice containing the elements of s cast to float64.
func ToFloat64Slice[V Number](s []V) (f []float64) {
	f = make([]float64, len(s))
	for i := range s {
		f[i] = float64(s[i])
	}
	return
}

// IsInSlice checks if x is in slice.
func IsInSlice[V comparable](x V, slice []V) bool {
	for i := range slice {
		if slice[i] == x {
			return true
		}
	}
	return false
}
