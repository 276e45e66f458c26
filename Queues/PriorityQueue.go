package Queues

import (
	Go_Collections "github.com/g-m-twostay/go-collections"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"golang.org/x/exp/constraints"
)

// PriorityQueue dequeues the smallest item according to its comparator first.
// Items comparing equal leave in no particular order.
type PriorityQueue[T any] struct {
	Go_Collections.Emitter[T]
	q *priorityqueue.Queue
}

func MakePriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return MakePriorityQueueWith[T](Go_Collections.Default[T])
}

func MakePriorityQueueWith[T any](cmp Go_Collections.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{q: priorityqueue.NewWith(cmp.Gods())}
}

// Enqueue item.
// Time: O(log n)
func (this *PriorityQueue[T]) Enqueue(item T) {
	this.q.Enqueue(item)
	this.Emit(Go_Collections.EventAdd, item)
}

func (this *PriorityQueue[T]) Push(item T) {
	this.Enqueue(item)
}

// Dequeue the smallest item.
// Time: O(log n)
func (this *PriorityQueue[T]) Dequeue() (T, bool) {
	v, ok := this.q.Dequeue()
	if !ok {
		return *new(T), false
	}
	this.Emit(Go_Collections.EventRemove, v.(T))
	return v.(T), true
}

func (this *PriorityQueue[T]) Pop() (T, error) {
	if v, ok := this.Dequeue(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (this *PriorityQueue[T]) Peek() T {
	if v, ok := this.q.Peek(); ok {
		return v.(T)
	}
	return *new(T)
}

func (this *PriorityQueue[T]) Empty() bool {
	return this.q.Empty()
}

func (this *PriorityQueue[T]) Len() int {
	return this.q.Size()
}

func (this *PriorityQueue[T]) Clear() {
	this.q.Clear()
}
