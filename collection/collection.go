// Package collection iterates over ordered slices and string-keyed
// dictionaries with the same callback shapes. Dictionary entries are always
// visited in ascending key order.
package collection

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type Dictionary[T any] map[string]T

// Iteratee receives the element, its index and the whole slice.
type Iteratee[T, R any] func(value T, index int, collection []T) R

// EntryIteratee receives the value, its key and the whole dictionary.
type EntryIteratee[T, R any] func(value T, key string, collection Dictionary[T]) R

func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

// ForEach stops as soon as iteratee returns true.
func ForEach[T any](s []T, iteratee Iteratee[T, bool]) {
	for i, v := range s {
		if iteratee(v, i, s) {
			return
		}
	}
}

func ForEachEntry[T any](d Dictionary[T], iteratee EntryIteratee[T, bool]) {
	for _, k := range SortedKeys(d) {
		if iteratee(d[k], k, d) {
			return
		}
	}
}

// Every is true for an empty slice and stops at the first false.
func Every[T any](s []T, iteratee Iteratee[T, bool]) bool {
	for i, v := range s {
		if !iteratee(v, i, s) {
			return false
		}
	}
	return true
}

func EveryEntry[T any](d Dictionary[T], iteratee EntryIteratee[T, bool]) bool {
	for _, k := range SortedKeys(d) {
		if !iteratee(d[k], k, d) {
			return false
		}
	}
	return true
}

func Filter[T any](s []T, iteratee Iteratee[T, bool]) []T {
	return lo.Filter(s, func(v T, i int) bool {
		return iteratee(v, i, s)
	})
}

func FilterEntries[T any](d Dictionary[T], iteratee EntryIteratee[T, bool]) Dictionary[T] {
	res := make(Dictionary[T])
	for _, k := range SortedKeys(d) {
		if iteratee(d[k], k, d) {
			res[k] = d[k]
		}
	}
	return res
}

func Map[T, R any](s []T, iteratee Iteratee[T, R]) []R {
	return lo.Map(s, func(v T, i int) R {
		return iteratee(v, i, s)
	})
}

// MapEntries returns the results in key order.
func MapEntries[T, R any](d Dictionary[T], iteratee EntryIteratee[T, R]) []R {
	return lo.Map(SortedKeys(d), func(k string, _ int) R {
		return iteratee(d[k], k, d)
	})
}

func Reduce[T, R any](s []T, iteratee func(acc R, value T, index int, collection []T) R, accumulator R) R {
	return lo.Reduce(s, func(acc R, v T, i int) R {
		return iteratee(acc, v, i, s)
	}, accumulator)
}

func ReduceEntries[T, R any](d Dictionary[T], iteratee func(acc R, value T, key string, collection Dictionary[T]) R, accumulator R) R {
	return lo.Reduce(SortedKeys(d), func(acc R, k string, _ int) R {
		return iteratee(acc, d[k], k, d)
	}, accumulator)
}
