package utils

import "golang.org/x/exp/rand"

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sample draws one element uniformly. The slice must not be empty.
func Sample[T any](rng *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("sampling from an empty slice")
	}
	return items[rng.Intn(len(items))]
}
