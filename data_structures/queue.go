package data_structures

import "github.com/samber/mo"

// Queue is a FIFO container. It tracks no size.
type Queue[T any] interface {
	Arrayable[T]
	Enqueue(T)
	Dequeue() T
	TryDequeue() mo.Option[T]
}

// NumberQueue is the float64 specialisation of Queue.
type NumberQueue = Queue[float64]

type linkedQueue[T any] struct {
	head frame[T]
}

func NewQueue[T any]() Queue[T] {
	return &linkedQueue[T]{
		head: newLastFrame[T](),
	}
}

func NewNumberQueue() NumberQueue {
	return NewQueue[float64]()
}

// Enqueue walks the whole chain to reach the tail, so it costs O(n). No
// tail reference is kept.
func (q *linkedQueue[T]) Enqueue(e T) {
	q.head = q.head.push(e)
}

func (q *linkedQueue[T]) Dequeue() T {
	val := q.head.value()
	q.head = q.head.next()
	return val
}

func (q *linkedQueue[T]) TryDequeue() mo.Option[T] {
	prevHead := q.head
	val := q.Dequeue()
	if q.head == prevHead {
		return mo.None[T]()
	}
	return mo.Some(val)
}

func (q *linkedQueue[T]) ToSlice() []T {
	return dump(q.head)
}
