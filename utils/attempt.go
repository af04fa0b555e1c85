package utils

import (
	"github.com/dlshle/golodash/errors"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Attempt calls fn with args. A panic inside fn does not propagate; it is
// returned as an Err holding a *errors.TrackableError.
func Attempt[T any](fn func(args ...any) T, args ...any) mo.Result[T] {
	return AttemptE(func() (T, error) {
		return fn(args...), nil
	})
}

// AttemptE is Attempt for functions that already report errors. Returned
// errors and panics both end up as Err.
func AttemptE[T any](fn func() (T, error)) mo.Result[T] {
	var (
		res T
		err error
	)
	panicked, ok := lo.TryWithErrorValue(func() error {
		res, err = fn()
		return nil
	})
	if !ok {
		return mo.Err[T](errors.Recovered(panicked))
	}
	if err != nil {
		return mo.Err[T](err)
	}
	return mo.Ok(res)
}
