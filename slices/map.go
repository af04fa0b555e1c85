package slices

import "github.com/samber/lo"

func ToMap[K comparable, T, V any](s []T, makeElem func(T) (K, V)) map[K]V {
	return lo.SliceToMap(s, makeElem)
}

func Map[T, V any](s []T, transformElem func(T) V) []V {
	return lo.Map(s, func(elem T, _ int) V {
		return transformElem(elem)
	})
}

func Reduce[A, T any](s []T, initial A, f func(acc A, value T) A) A {
	return lo.Reduce(s, func(acc A, value T, _ int) A {
		return f(acc, value)
	}, initial)
}
