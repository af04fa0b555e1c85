package data_structures

// List is an append-only chain. There is no removal.
type List[T any] interface {
	Arrayable[T]
	Push(value T)
}

type NumberList = List[float64]

type appendList[T any] struct {
	head frame[T]
}

func NewList[T any]() List[T] {
	return &appendList[T]{
		head: newLastFrame[T](),
	}
}

func NewNumberList() NumberList {
	return NewList[float64]()
}

func (l *appendList[T]) Push(value T) {
	l.head = l.head.push(value)
}

func (l *appendList[T]) ToSlice() []T {
	return dump(l.head)
}
