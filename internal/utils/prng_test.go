package utils

import (
	"reflect"
	"testing"
)

func TestShuffleDeterministic(t *testing.T) {
	perm := func(seed int64) []int {
		xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		NewPRNGService(seed).Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		return xs
	}
	a, b := perm(7), perm(7)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected same permutation for the same seed, got %v and %v", a, b)
	}
}
