package Queues

import Go_Collections "github.com/g-m-twostay/go-collections"

// Deque is a double ended LinkedQueue. With a positive maxSize it is bounded:
// pushing onto a full Deque first evicts the front item, whichever end the new
// item goes to.
type Deque[T any] struct {
	LinkedQueue[T]
	maxSize int
}

// MakeDeque bounded by maxSize, 0 or less meaning unbounded.
func MakeDeque[T comparable](maxSize int) *Deque[T] {
	return MakeDequeWith[T](maxSize, Go_Collections.Equality[T])
}

func MakeDequeWith[T any](maxSize int, cmp Go_Collections.Comparator[T]) *Deque[T] {
	return &Deque[T]{*MakeLinkedQueueWith(cmp), max(maxSize, 0)}
}

func (this *Deque[T]) MaxSize() int {
	return this.maxSize
}

func (this *Deque[T]) overflow() bool {
	return this.maxSize > 0 && this.l.Size() >= this.maxSize
}

func (this *Deque[T]) Enqueue(item T) {
	if this.overflow() {
		this.Dequeue()
	}
	this.LinkedQueue.Enqueue(item)
}

func (this *Deque[T]) Push(item T) {
	this.Enqueue(item)
}

func (this *Deque[T]) PushBack(item T) {
	this.Enqueue(item)
}

func (this *Deque[T]) PushFront(item T) {
	if this.overflow() {
		this.Dequeue()
	}
	this.l.Prepend(item)
	this.Emit(Go_Collections.EventAdd, item)
}

func (this *Deque[T]) PeekFront() (T, bool) {
	return this.Front()
}

func (this *Deque[T]) PeekBack() (T, bool) {
	return this.End()
}

func (this *Deque[T]) PopFront() (T, bool) {
	return this.Dequeue()
}

func (this *Deque[T]) PopBack() (T, bool) {
	last := this.l.Size() - 1
	v, ok := this.l.Get(last)
	if !ok {
		return *new(T), false
	}
	this.l.Remove(last)
	this.Emit(Go_Collections.EventRemove, v.(T))
	return v.(T), true
}
