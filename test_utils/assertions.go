package test_utils

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	assertionFailureError = "assertion failure: "
)

func fail(format string, args ...any) {
	panic(assertionFailureError + fmt.Sprintf(format, args...))
}

func AssertNil(val interface{}) {
	if val == nil {
		return
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		if v.IsNil() {
			return
		}
	}
	fail("value %v isn't nil", val)
}

func AssertNonNil(val interface{}) {
	if val == nil {
		fail("value is nil")
	}
}

func AssertTrue(val bool) {
	if !val {
		fail("value isn't true")
	}
}

func AssertFalse(val bool) {
	if val {
		fail("value isn't false")
	}
}

func AssertPanic(cb func()) {
	defer func() {
		if recovered := recover(); recovered == nil {
			fail("no panic value is recovered")
		}
	}()
	cb()
}

func AssertNoPanic(cb func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fail("unexpected panic: %v", recovered)
		}
	}()
	cb()
}

func AssertEquals[T comparable](l T, r T) {
	if l != r {
		fail("%v and %v are not equal", l, r)
	}
}

func AssertNotEquals[T comparable](l T, r T) {
	if l == r {
		fail("%v and %v are equal", l, r)
	}
}

// AssertSliceEquals checks length and element-wise equality. nil and empty
// slices are considered equal.
func AssertSliceEquals[T comparable](l []T, r []T) {
	if len(l) != len(r) {
		fail("%v and %v have different lengths (%d != %d)", l, r, len(l), len(r))
	}
	for i := range l {
		if l[i] != r[i] {
			fail("%v and %v differ at index %d (%v != %v)", l, r, i, l[i], r[i])
		}
	}
}

func AssertDeepEquals(l interface{}, r interface{}) {
	if !reflect.DeepEqual(l, r) {
		fail("%#v and %#v are not deeply equal", l, r)
	}
}

func AssertStringContains(s string, sub string) {
	if !strings.Contains(s, sub) {
		fail("%q does not contain %q", s, sub)
	}
}

func isAssertionFailurePanic(recovered interface{}) bool {
	if panicString, ok := recovered.(string); ok {
		return strings.HasPrefix(panicString, assertionFailureError)
	}
	return false
}
