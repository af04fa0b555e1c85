package data_structures

// Arrayable is implemented by every container that can dump its elements,
// in head-first order, into a fresh slice.
type Arrayable[T any] interface {
	ToSlice() []T
}

// Dump collects the dumps of several containers, one slice per container.
func Dump[T any](containers ...Arrayable[T]) [][]T {
	dumps := make([][]T, len(containers))
	for i, c := range containers {
		dumps[i] = c.ToSlice()
	}
	return dumps
}
