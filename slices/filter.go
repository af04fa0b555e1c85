package slices

import "github.com/samber/lo"

func Filter[T any](s []T, keep func(T) bool) []T {
	return lo.Filter(s, func(elem T, _ int) bool {
		return keep(elem)
	})
}

func Reject[T any](s []T, drop func(T) bool) []T {
	return lo.Reject(s, func(elem T, _ int) bool {
		return drop(elem)
	})
}
