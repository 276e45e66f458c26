package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice. It is the scratch queue used
// by the breadth first operations of the trees.
type ArrayQueue[T any] interface {
	Queue[T]
	//Drain removes every pending item and returns them in FIFO order.
	Drain() []T
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
