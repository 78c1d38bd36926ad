package shuffle

import "math/rand/v2"

// Slice returns a shuffled copy of items. The input is left untouched.
func Slice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Identity returns a copy of items in their original order.
func Identity[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
