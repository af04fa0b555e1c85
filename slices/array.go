package slices

import (
	"github.com/samber/lo"
)

// Predicate is the iteratee shape shared by the index-aware helpers.
type Predicate[T any] func(value T, index int, collection []T) bool

// optionalInt returns the first optional argument, or def when none was
// passed.
func optionalInt(args []int, def int) int {
	return lo.FirstOr(args, def)
}

func clamp(i, low, high int) int {
	if i < low {
		return low
	}
	if i > high {
		return high
	}
	return i
}

// Chunk splits s into groups of size (default 1). The last group holds the
// remainder.
func Chunk[T any](s []T, size ...int) [][]T {
	n := optionalInt(size, 1)
	if n < 1 {
		return [][]T{}
	}
	return lo.Chunk(s, n)
}

// Compact drops falsey elements: the zero value, and NaN for floats.
func Compact[T comparable](s []T) []T {
	var zeroVal T
	return lo.Filter(s, func(v T, _ int) bool {
		// v != v only holds for NaN
		return v != zeroVal && v == v
	})
}

func Head[T any](s []T) T {
	return lo.FirstOrEmpty(s)
}

func Initial[T any](s []T) []T {
	return lo.DropRight(s, 1)
}

func Last[T any](s []T) T {
	return lo.LastOrEmpty(s)
}

// Drop removes count (default 1) elements from the beginning.
func Drop[T any](s []T, count ...int) []T {
	return lo.Drop(s, clamp(optionalInt(count, 1), 0, len(s)))
}

// DropRight removes count (default 1) elements from the end.
func DropRight[T any](s []T, count ...int) []T {
	return lo.DropRight(s, clamp(optionalInt(count, 1), 0, len(s)))
}

func DropWhile[T any](s []T, predicate Predicate[T]) []T {
	i := 0
	for i < len(s) && predicate(s[i], i, s) {
		i++
	}
	return Slice(s, i)
}

func DropRightWhile[T any](s []T, predicate Predicate[T]) []T {
	i := len(s) - 1
	for i >= 0 && predicate(s[i], i, s) {
		i--
	}
	return Slice(s, 0, i+1)
}

// Fill overwrites s[start:end] with value in place and returns s. start
// defaults to 0 and end to len(s).
func Fill[T any](s []T, value T, bounds ...int) []T {
	start, end := boundsOf(len(s), bounds)
	for i := start; i < end; i++ {
		s[i] = value
	}
	return s
}

// FindIndex returns the index of the first element at or after fromIndex
// (default 0) that satisfies predicate, or -1.
func FindIndex[T any](s []T, predicate Predicate[T], fromIndex ...int) int {
	for i := clamp(optionalInt(fromIndex, 0), 0, len(s)); i < len(s); i++ {
		if predicate(s[i], i, s) {
			return i
		}
	}
	return -1
}

// FindLastIndex scans backwards from fromIndex (default len(s)-1) down to
// and including index 0.
func FindLastIndex[T any](s []T, predicate Predicate[T], fromIndex ...int) int {
	for i := clamp(optionalInt(fromIndex, len(s)-1), -1, len(s)-1); i >= 0; i-- {
		if predicate(s[i], i, s) {
			return i
		}
	}
	return -1
}

// Nth returns the element at n (default 0). Negative n counts from the end.
// Out of range yields the zero value.
func Nth[T any](s []T, n ...int) T {
	v, err := lo.Nth(s, optionalInt(n, 0))
	if err != nil {
		var zeroVal T
		return zeroVal
	}
	return v
}

// Zip groups the i-th elements of every input. The result is as long as the
// longest input; missing slots hold the zero value.
func Zip[T any](arrays ...[]T) [][]T {
	size := lo.Max(lo.Map(arrays, func(a []T, _ int) int { return len(a) }))
	result := make([][]T, size)
	for i := range result {
		result[i] = make([]T, len(arrays))
		for j, a := range arrays {
			if i < len(a) {
				result[i][j] = a[i]
			}
		}
	}
	return result
}

// Slice copies s[start:end]. Negative bounds count from the end and every
// bound is clamped to the slice.
func Slice[T any](s []T, bounds ...int) []T {
	start, end := boundsOf(len(s), bounds)
	if start >= end {
		return []T{}
	}
	res := make([]T, end-start)
	copy(res, s[start:end])
	return res
}

func boundsOf(length int, bounds []int) (int, int) {
	start, end := 0, length
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}
	return clamp(start, 0, length), clamp(end, 0, length)
}
