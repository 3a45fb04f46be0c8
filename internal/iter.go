package internal

import (
	"iter"
)

// Concat yields each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Pointers yields a pointer to each element of the slice, so callers can
// share table entries without copying them.
func Pointers[T any](slice []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range slice {
			if !yield(&slice[n]) {
				return
			}
		}
	}
}
