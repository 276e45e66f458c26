package Queues

import (
	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// LinkedQueue is a FIFO queue on a doubly linked list that notifies listeners
// of EventAdd, EventRemove and EventEject; Drain notifies the listeners
// registered with OnDrain.
type LinkedQueue[T any] struct {
	Go_Collections.Emitter[T]
	drained Go_Collections.Emitter[[]T]
	l       *doublylinkedlist.List
	cmp     Go_Collections.Comparator[T]
}

// MakeLinkedQueue for comparable items, compared with ==.
func MakeLinkedQueue[T comparable]() *LinkedQueue[T] {
	return MakeLinkedQueueWith[T](Go_Collections.Equality[T])
}

// MakeLinkedQueueWith uses cmp for Contains and Eject.
func MakeLinkedQueueWith[T any](cmp Go_Collections.Comparator[T]) *LinkedQueue[T] {
	return &LinkedQueue[T]{l: doublylinkedlist.New(), cmp: cmp}
}

// OnDrain registers l to receive the items removed by Drain.
func (this *LinkedQueue[T]) OnDrain(l Go_Collections.Listener[[]T]) {
	this.drained.On(Go_Collections.EventDrain, l)
}

func (this *LinkedQueue[T]) Len() int {
	return this.l.Size()
}

func (this *LinkedQueue[T]) Empty() bool {
	return this.l.Empty()
}

// Enqueue item at the back.
func (this *LinkedQueue[T]) Enqueue(item T) {
	this.l.Append(item)
	this.Emit(Go_Collections.EventAdd, item)
}

// Push is Enqueue.
func (this *LinkedQueue[T]) Push(item T) {
	this.Enqueue(item)
}

// Dequeue the front item. The bool is false when the queue is empty.
func (this *LinkedQueue[T]) Dequeue() (T, bool) {
	v, ok := this.l.Get(0)
	if !ok {
		return *new(T), false
	}
	this.l.Remove(0)
	this.Emit(Go_Collections.EventRemove, v.(T))
	return v.(T), true
}

func (this *LinkedQueue[T]) Pop() (T, error) {
	if v, ok := this.Dequeue(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

// Peek returns the front item, or the zero value when empty.
func (this *LinkedQueue[T]) Peek() T {
	v, _ := this.Front()
	return v
}

func (this *LinkedQueue[T]) Front() (T, bool) {
	return this.at(0)
}

func (this *LinkedQueue[T]) End() (T, bool) {
	return this.at(this.l.Size() - 1)
}

func (this *LinkedQueue[T]) at(i int) (T, bool) {
	if v, ok := this.l.Get(i); ok {
		return v.(T), true
	}
	return *new(T), false
}

// Drain removes every item and returns them in FIFO order.
func (this *LinkedQueue[T]) Drain() []T {
	out := this.Values()
	this.l.Clear()
	this.drained.Emit(Go_Collections.EventDrain, out)
	return out
}

// Eject removes the first item equal to item. Returns whether one was found.
// Time: O(n)
func (this *LinkedQueue[T]) Eject(item T) bool {
	if i := this.indexOf(item); i >= 0 {
		v, _ := this.l.Get(i)
		this.l.Remove(i)
		this.Emit(Go_Collections.EventEject, v.(T))
		return true
	}
	return false
}

// Contains is a linear search with the queue's comparator.
func (this *LinkedQueue[T]) Contains(item T) bool {
	return this.indexOf(item) >= 0
}

func (this *LinkedQueue[T]) indexOf(item T) int {
	for it := this.l.Iterator(); it.Next(); {
		if this.cmp(it.Value().(T), item) == 0 {
			return it.Index()
		}
	}
	return -1
}

// Values in FIFO order.
func (this *LinkedQueue[T]) Values() []T {
	out := make([]T, 0, this.l.Size())
	for it := this.l.Iterator(); it.Next(); {
		out = append(out, it.Value().(T))
	}
	return out
}

func (this *LinkedQueue[T]) Clear() {
	this.l.Clear()
}
