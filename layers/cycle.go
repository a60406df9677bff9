// Package layers implements repetition of comma separated property lists
// against the number of layers defined by a primary list.
package layers

// IndexFor returns index into a list of m values for the i-th layer. Shorter
// lists repeat, empty list has no index and caller applies its own default.
func IndexFor(i, m int) (int, bool) {
	if m <= 0 || i < 0 {
		return 0, false
	}
	return i % m, true
}

// Cycle returns value for the i-th layer.
func Cycle[T any](values []T, i int) (T, bool) {
	idx, ok := IndexFor(i, len(values))
	if !ok {
		var zero T
		return zero, false
	}
	return values[idx], true
}

// CycleOr returns value for the i-th layer or def when there are no values.
func CycleOr[T any](values []T, i int, def T) T {
	if v, ok := Cycle(values, i); ok {
		return v
	}
	return def
}
