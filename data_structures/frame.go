package data_structures

// frame is one link of a sentinel-terminated chain. A chain always ends in
// exactly one lastFrame, so none of the operations below need a nil check.
type frame[T any] interface {
	value() T
	next() frame[T]
	// push appends value at the logical end of the chain starting at this
	// frame and returns the (possibly new) start of that chain.
	push(value T) frame[T]
	appendTo(dst []T) []T
}

type valueFrame[T any] struct {
	val  T
	succ frame[T]
}

func newValueFrame[T any](value T, succ frame[T]) *valueFrame[T] {
	return &valueFrame[T]{
		val:  value,
		succ: succ,
	}
}

func (f *valueFrame[T]) value() T {
	return f.val
}

func (f *valueFrame[T]) next() frame[T] {
	return f.succ
}

func (f *valueFrame[T]) push(value T) frame[T] {
	f.succ = f.succ.push(value)
	return f
}

func (f *valueFrame[T]) appendTo(dst []T) []T {
	return f.succ.appendTo(append(dst, f.val))
}

// lastFrame is the sentinel. Its successor is itself and its value is the
// zero value of T.
type lastFrame[T any] struct {
	zeroVal T
}

func newLastFrame[T any]() *lastFrame[T] {
	return &lastFrame[T]{}
}

func (f *lastFrame[T]) value() T {
	return f.zeroVal
}

func (f *lastFrame[T]) next() frame[T] {
	return f
}

func (f *lastFrame[T]) push(value T) frame[T] {
	return newValueFrame[T](value, newLastFrame[T]())
}

func (f *lastFrame[T]) appendTo(dst []T) []T {
	return dst
}

func dump[T any](head frame[T]) []T {
	return head.appendTo(make([]T, 0))
}
