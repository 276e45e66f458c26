package Go_Collections

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison between two values of the same type.
// It returns a negative number if a<b, 0 if a==b and a positive number if a>b.
// A Comparator is supplied once at construction and never changes afterwards.
type Comparator[T any] func(a, b T) int

// Default comparator using natural ordering.
func Default[T constraints.Ordered](a, b T) int {
	if a == b {
		return 0
	} else if a > b {
		return 1
	}
	return -1
}

// Less reports whether a orders strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Equal reports whether c considers a and b the same element.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// Gods adapts c to the untyped comparator used by the gods containers. Both
// arguments must hold a T.
func (c Comparator[T]) Gods() utils.Comparator {
	return func(a, b interface{}) int {
		return c(a.(T), b.(T))
	}
}

// OrDefault returns c, or Default when c is nil.
func OrDefault[T constraints.Ordered](c Comparator[T]) Comparator[T] {
	if c == nil {
		return Default[T]
	}
	return c
}

// Equality is a Comparator for containers that only search, never order: it
// returns 0 for equal values and -1 otherwise.
func Equality[T comparable](a, b T) int {
	if a == b {
		return 0
	}
	return -1
}
