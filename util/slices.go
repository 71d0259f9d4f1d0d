package util

func CloneSliceFunc[T any](slice []T, copy func(T) T) (out []T) {
	if slice == nil {
		return nil
	}

	out = make([]T, 0, len(slice))
	for _, item := range slice {
		out = append(out, copy(item))
	}

	return out
}

// GrowSlice returns slice with capacity at least capacity, copying the
// contents when reallocation is needed. A capacity at or below the current
// one is a no-op.
func GrowSlice[T any](slice []T, capacity int) []T {
	if capacity <= cap(slice) {
		return slice
	}

	out := make([]T, len(slice), capacity)
	copy(out, slice)
	return out
}
