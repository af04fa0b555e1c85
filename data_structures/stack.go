package data_structures

import "github.com/samber/mo"

// Stack is a LIFO container. Reads on an empty stack return the zero value
// of T; use TryPop/TryPeek when the zero value is a legitimate element.
type Stack[T any] interface {
	Arrayable[T]
	Push(value T)
	Pop() T
	Peek() T
	TryPop() mo.Option[T]
	TryPeek() mo.Option[T]
	Size() int
	IsEmpty() bool
}

type linkedStack[T any] struct {
	head frame[T]
	size int
}

func NewStack[T any]() Stack[T] {
	return &linkedStack[T]{
		head: newLastFrame[T](),
	}
}

func (s *linkedStack[T]) Push(value T) {
	s.head = newValueFrame[T](value, s.head)
	s.size++
}

func (s *linkedStack[T]) Pop() T {
	prevHead := s.head
	s.head = s.head.next()
	// only the sentinel is its own successor
	if s.head != prevHead {
		s.size--
	}
	return prevHead.value()
}

func (s *linkedStack[T]) Peek() T {
	return s.head.value()
}

func (s *linkedStack[T]) TryPop() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.Pop())
}

func (s *linkedStack[T]) TryPeek() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.Peek())
}

func (s *linkedStack[T]) Size() int {
	return s.size
}

func (s *linkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

// ToSlice dumps the stack from top to bottom.
func (s *linkedStack[T]) ToSlice() []T {
	return dump(s.head)
}
