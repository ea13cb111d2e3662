package pgm

import "iter"

// Count advances seq to exhaustion and returns the number of items.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

// First returns the first item of seq, if any. The rest is not consumed.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T

	return zero, false
}

// Map yields fn(v) for every v of seq, lazily.
// Restarting the result restarts seq; no item is buffered.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields the items of seq for which keep returns true, lazily.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// IDs yields the identifier of every element of seq.
func IDs[T Element](seq iter.Seq[T]) iter.Seq[string] {
	return Map(seq, func(e T) string { return e.ID() })
}

// ValidPropertyKey reports whether key may be set on an element of kind.
// Empty keys and "id" are rejected everywhere; "label" is rejected on edges.
func ValidPropertyKey(kind ElementKind, key string) bool {
	if key == "" || key == KeyID {
		return false
	}

	return !(kind == EdgeKind && key == KeyLabel)
}
