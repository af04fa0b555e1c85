package utils

import (
	"io"
	"strings"
	"testing"

	"github.com/dlshle/golodash/errors"
	"github.com/dlshle/golodash/test_utils"
)

func TestUtils(t *testing.T) {
	test_utils.NewGroup("utils", "").Cases(
		test_utils.New("add", func() {
			test_utils.AssertEquals(AddNumbers(1, 2), 3)
			test_utils.AssertEquals(AddNumbers(1.5, 2), 3.5)
			test_utils.AssertEquals(AddStrings("a", "b"), "ab")
		}),
		test_utils.New("identity and constant", func() {
			test_utils.AssertEquals(Identity(42), 42)
			test_utils.AssertEquals(Identity("x"), "x")
			f := Constant("c")
			test_utils.AssertEquals(f(), "c")
			test_utils.AssertEquals(f(), "c")
		}),
		test_utils.New("noop accepts anything", func() {
			test_utils.AssertNoPanic(func() {
				Noop()
				Noop(1, "two", nil)
			})
		}),
		test_utils.New("times", func() {
			test_utils.AssertSliceEquals(Times(3, func(i int) int { return i * i }), []int{0, 1, 4})
			test_utils.AssertSliceEquals(Times(0, Identity[int]), []int{})
			test_utils.AssertSliceEquals(Times(-2, Identity[int]), []int{})
		}),
		test_utils.New("ary caps forwarded arguments", func() {
			count := func(args ...any) int { return len(args) }
			test_utils.AssertEquals(Ary(count, 2)(1, 2, 3), 2)
			test_utils.AssertEquals(Ary(count, 2)(1), 1)
			test_utils.AssertEquals(Ary(count)(1, 2, 3), 3)
		}),
		test_utils.New("conditional pick", func() {
			test_utils.AssertEquals(ConditionalPick(true, 1, 2), 1)
			test_utils.AssertEquals(ConditionalPick(false, 1, 2), 2)
		}),
		test_utils.New("process with errors stops at the first error", func() {
			calls := 0
			err := ProcessWithErrors(
				func() error { calls++; return nil },
				func() error { calls++; return io.EOF },
				func() error { calls++; return nil },
			)
			test_utils.AssertEquals(err, io.EOF)
			test_utils.AssertEquals(calls, 2)
		}),
	).Do(t)
}

func TestAttempt(t *testing.T) {
	test_utils.NewGroup("attempt", "").Cases(
		test_utils.New("returns the result", func() {
			res := Attempt(func(args ...any) string {
				parts := make([]string, len(args))
				for i, a := range args {
					parts[i] = a.(string)
				}
				return strings.Join(parts, "-")
			}, "a", "b")
			test_utils.AssertTrue(res.IsOk())
			test_utils.AssertEquals(res.MustGet(), "a-b")
		}),
		test_utils.New("returns the panic as an error", func() {
			res := Attempt(func(args ...any) int {
				panic("boom")
			})
			test_utils.AssertTrue(res.IsError())
			var tracked *errors.TrackableError
			test_utils.AssertTrue(errors.As(res.Error(), &tracked))
			test_utils.AssertEquals(tracked.Message(), "panic: boom")
		}),
		test_utils.New("panicking with an error keeps it as cause", func() {
			res := Attempt(func(args ...any) int {
				panic(io.ErrClosedPipe)
			})
			test_utils.AssertTrue(errors.Is(res.Error(), io.ErrClosedPipe))
		}),
		test_utils.New("attempt e passes returned errors through", func() {
			res := AttemptE(func() (int, error) { return 0, io.EOF })
			test_utils.AssertEquals(res.Error(), io.EOF)
			ok := AttemptE(func() (int, error) { return 7, nil })
			test_utils.AssertEquals(ok.OrElse(0), 7)
		}),
	).Do(t)
}
