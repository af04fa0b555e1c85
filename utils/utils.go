package utils

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func AddNumbers[N Number](x, y N) N {
	return x + y
}

func AddStrings(x, y string) string {
	return x + y
}

// Identity returns its argument unchanged.
func Identity[T any](value T) T {
	return value
}

// Constant returns a function that always yields value.
func Constant[T any](value T) func() T {
	return func() T {
		return value
	}
}

// Noop accepts any arguments and does nothing.
func Noop(...any) {}

// Times invokes iteratee with 0..n-1 and collects the results. A
// non-positive n yields an empty slice.
func Times[T any](n int, iteratee func(i int) T) []T {
	if n <= 0 {
		return []T{}
	}
	return lo.Times(n, iteratee)
}

// Ary wraps fn so that at most n arguments (default: all of them) are
// forwarded to it.
func Ary[R any](fn func(args ...any) R, n ...int) func(args ...any) R {
	if len(n) == 0 || n[0] < 0 {
		return fn
	}
	limit := n[0]
	return func(args ...any) R {
		if len(args) > limit {
			args = args[:limit]
		}
		return fn(args...)
	}
}

func ConditionalPick[T any](cond bool, onTrue T, onFalse T) T {
	return lo.Ternary(cond, onTrue, onFalse)
}

// ProcessWithErrors runs funcs in order and stops at the first error.
func ProcessWithErrors(funcs ...func() error) error {
	for _, f := range funcs {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}
