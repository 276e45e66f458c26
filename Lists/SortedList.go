package Lists

import (
	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

type item[T any] struct {
	v   T
	cmp Go_Collections.Comparator[T]
}

func (a item[T]) Less(b llrb.Item) bool {
	return a.cmp(a.v, b.(item[T]).v) < 0
}

// SortedList keeps its elements in ascending order. Equal elements are all
// kept. It is stored in a left-leaning red-black tree, so Insert and Remove
// take O(log n) rather than a linear scan.
type SortedList[T any] struct {
	Go_Collections.Emitter[T]
	t   *llrb.LLRB
	cmp Go_Collections.Comparator[T]
}

func NewSorted[T constraints.Ordered](vs ...T) *SortedList[T] {
	return NewSortedWith[T](Go_Collections.Default[T], vs...)
}

func NewSortedWith[T any](cmp Go_Collections.Comparator[T], vs ...T) *SortedList[T] {
	u := &SortedList[T]{t: llrb.New(), cmp: cmp}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

func (u *SortedList[T]) wrap(v T) item[T] {
	return item[T]{v, u.cmp}
}

func (u *SortedList[T]) Len() int {
	return u.t.Len()
}

func (u *SortedList[T]) Empty() bool {
	return u.t.Len() == 0
}

// Insert v at its sorted position.
func (u *SortedList[T]) Insert(v T) bool {
	if Go_Collections.IsNil(v) {
		return false
	}
	u.t.InsertNoReplace(u.wrap(v))
	u.Emit(Go_Collections.EventInsert, v)
	return true
}

// Remove one element equal to v.
func (u *SortedList[T]) Remove(v T) (T, bool) {
	if Go_Collections.IsNil(v) {
		return *new(T), false
	}
	if r := u.t.Delete(u.wrap(v)); r != nil {
		u.Emit(Go_Collections.EventRemove, r.(item[T]).v)
		return r.(item[T]).v, true
	}
	return *new(T), false
}

func (u *SortedList[T]) Contains(v T) bool {
	return !Go_Collections.IsNil(v) && u.t.Has(u.wrap(v))
}

// Find returns a stored element equal to key.
func (u *SortedList[T]) Find(key T) (T, bool) {
	if Go_Collections.IsNil(key) {
		return *new(T), false
	}
	if r := u.t.Get(u.wrap(key)); r != nil {
		return r.(item[T]).v, true
	}
	return *new(T), false
}

// Front is the smallest element.
func (u *SortedList[T]) Front() (T, bool) {
	return unwrap[T](u.t.Min())
}

// Back is the largest element.
func (u *SortedList[T]) Back() (T, bool) {
	return unwrap[T](u.t.Max())
}

func unwrap[T any](i llrb.Item) (T, bool) {
	if i == nil {
		return *new(T), false
	}
	return i.(item[T]).v, true
}

// Array of the elements in ascending order.
func (u *SortedList[T]) Array() []T {
	out := make([]T, 0, u.t.Len())
	if m := u.t.Min(); m != nil {
		u.t.AscendGreaterOrEqual(m, func(i llrb.Item) bool {
			out = append(out, i.(item[T]).v)
			return true
		})
	}
	return out
}

// Reverse array of the elements, in descending order.
func (u *SortedList[T]) Reverse() []T {
	out := make([]T, 0, u.t.Len())
	if m := u.t.Max(); m != nil {
		u.t.DescendLessOrEqual(m, func(i llrb.Item) bool {
			out = append(out, i.(item[T]).v)
			return true
		})
	}
	return out
}

func (u *SortedList[T]) Clear() {
	u.t = llrb.New()
}
