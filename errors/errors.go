package errors

import (
	"errors"
	"fmt"
	"strings"
)

type MultiError interface {
	List() []error
	Size() int
	Add(error)
	Error() string
	ErrorOrNil() error
}

func NewMultiError() MultiError {
	return &multiError{
		errors: make([]error, 0),
	}
}

func MultiErrorWith(err error) MultiError {
	return &multiError{
		errors: []error{err},
	}
}

type multiError struct {
	errors []error
}

func (e *multiError) Size() int {
	return len(e.errors)
}

func (e *multiError) List() []error {
	return e.errors
}

// Add ignores nil errors.
func (e *multiError) Add(err error) {
	if err == nil {
		return
	}
	e.errors = append(e.errors, err)
}

func (e *multiError) Error() string {
	var builder strings.Builder
	for _, err := range e.errors {
		builder.WriteString(err.Error())
		builder.WriteRune('\n')
	}
	return builder.String()
}

// ErrorOrNil returns nil when nothing was collected, so callers can return it
// directly.
func (e *multiError) ErrorOrNil() error {
	if len(e.errors) == 0 {
		return nil
	}
	return e
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

// Is and As are re-exported so callers only need this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// Recovered turns a value obtained from recover() into a TrackableError.
// error values are kept as the cause; anything else is formatted.
func Recovered(v any) *TrackableError {
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", v)
	}
	return newTrackableErr(err, stacktraceWithDepth(32, 1))
}
