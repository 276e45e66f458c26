package Lists

import (
	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Positions understood by List.Insert.
const (
	Front = 0
	Back  = -1
)

// List is a doubly linked list notifying EventInsert and EventRemove.
// Nil elements are never stored.
type List[T any] struct {
	Go_Collections.Emitter[T]
	l   *doublylinkedlist.List
	cmp Go_Collections.Comparator[T]
}

// New list of comparable elements, appending vs in order.
func New[T comparable](vs ...T) *List[T] {
	return NewWith[T](Go_Collections.Equality[T], vs...)
}

// NewWith uses cmp to search for elements.
func NewWith[T any](cmp Go_Collections.Comparator[T], vs ...T) *List[T] {
	u := &List[T]{l: doublylinkedlist.New(), cmp: cmp}
	for _, v := range vs {
		u.Insert(v, Back)
	}
	return u
}

func (u *List[T]) Len() int {
	return u.l.Size()
}

func (u *List[T]) Empty() bool {
	return u.l.Empty()
}

// Insert v before position idx. Front and Back are the two ends; positions
// past the end append.
// Time: O(idx)
func (u *List[T]) Insert(v T, idx int) bool {
	if Go_Collections.IsNil(v) {
		return false
	}
	switch {
	case idx == Front:
		u.l.Prepend(v)
	case idx < 0 || idx >= u.l.Size():
		u.l.Append(v)
	default:
		u.l.Insert(idx, v)
	}
	u.Emit(Go_Collections.EventInsert, v)
	return true
}

// Remove the first element equal to v and return it.
// Time: O(n)
func (u *List[T]) Remove(v T) (T, bool) {
	if Go_Collections.IsNil(v) {
		return *new(T), false
	}
	if i := u.indexOf(v); i >= 0 {
		return u.RemoveAt(i)
	}
	return *new(T), false
}

// RemoveAt removes the element at position idx, Back being the last one.
func (u *List[T]) RemoveAt(idx int) (T, bool) {
	if idx == Back {
		idx = u.l.Size() - 1
	}
	v, ok := u.l.Get(idx)
	if !ok {
		return *new(T), false
	}
	u.l.Remove(idx)
	u.Emit(Go_Collections.EventRemove, v.(T))
	return v.(T), true
}

// At returns the element at position idx.
func (u *List[T]) At(idx int) (T, bool) {
	if v, ok := u.l.Get(idx); ok {
		return v.(T), true
	}
	return *new(T), false
}

func (u *List[T]) First() (T, bool) {
	return u.At(0)
}

func (u *List[T]) Last() (T, bool) {
	return u.At(u.l.Size() - 1)
}

// Find returns the stored element equal to key. Useful when cmp only looks at
// part of T.
func (u *List[T]) Find(key T) (T, bool) {
	if Go_Collections.IsNil(key) {
		return *new(T), false
	}
	return u.At(u.indexOf(key))
}

func (u *List[T]) Contains(v T) bool {
	return !Go_Collections.IsNil(v) && u.indexOf(v) >= 0
}

func (u *List[T]) indexOf(v T) int {
	for it := u.l.Iterator(); it.Next(); {
		if u.cmp(it.Value().(T), v) == 0 {
			return it.Index()
		}
	}
	return -1
}

// Array of the elements front to back.
func (u *List[T]) Array() []T {
	out := make([]T, 0, u.l.Size())
	for it := u.l.Iterator(); it.Next(); {
		out = append(out, it.Value().(T))
	}
	return out
}

// Reverse array of the elements, back to front.
func (u *List[T]) Reverse() []T {
	out := make([]T, 0, u.l.Size())
	it := u.l.Iterator()
	for it.End(); it.Prev(); {
		out = append(out, it.Value().(T))
	}
	return out
}

// Iterator returns a closure giving the elements front to back; valid turns
// false once exhausted. The list must not be modified during the iteration.
func (u *List[T]) Iterator() func() (T, bool) {
	it := u.l.Iterator()
	return func() (T, bool) {
		if it.Next() {
			return it.Value().(T), true
		}
		return *new(T), false
	}
}

func (u *List[T]) Clear() {
	u.l.Clear()
}
