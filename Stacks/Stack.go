package Stacks

import (
	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Stack is a LIFO container that notifies EventAdd on Push and EventRemove on
// a successful Pop.
type Stack[T any] struct {
	Go_Collections.Emitter[T]
	s   *linkedliststack.Stack
	cmp Go_Collections.Comparator[T]
}

func New[T comparable]() *Stack[T] {
	return NewWith[T](Go_Collections.Equality[T])
}

// NewWith uses cmp for Contains.
func NewWith[T any](cmp Go_Collections.Comparator[T]) *Stack[T] {
	return &Stack[T]{s: linkedliststack.New(), cmp: cmp}
}

func (u *Stack[T]) Push(v T) {
	u.s.Push(v)
	u.Emit(Go_Collections.EventAdd, v)
}

// Pop the top element. The bool is false when the stack is empty.
func (u *Stack[T]) Pop() (T, bool) {
	v, ok := u.s.Pop()
	if !ok {
		return *new(T), false
	}
	u.Emit(Go_Collections.EventRemove, v.(T))
	return v.(T), true
}

// Top returns the top element without removing it.
func (u *Stack[T]) Top() (T, bool) {
	if v, ok := u.s.Peek(); ok {
		return v.(T), true
	}
	return *new(T), false
}

func (u *Stack[T]) Len() int {
	return u.s.Size()
}

func (u *Stack[T]) Empty() bool {
	return u.s.Empty()
}

func (u *Stack[T]) Clear() {
	u.s.Clear()
}

// Contains is a linear search from the top.
func (u *Stack[T]) Contains(v T) bool {
	for it := u.s.Iterator(); it.Next(); {
		if u.cmp(it.Value().(T), v) == 0 {
			return true
		}
	}
	return false
}

// Values from top to bottom.
func (u *Stack[T]) Values() []T {
	out := make([]T, 0, u.s.Size())
	for it := u.s.Iterator(); it.Next(); {
		out = append(out, it.Value().(T))
	}
	return out
}
