package test_utils

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

type assertion struct {
	head         *assertion
	id           string
	description  string
	assertion    func()
	shouldAssert bool
	next         *assertion
	numRuns      int
}

type Assertable interface {
	Then(id string, assertion func()) Assertable                                    // next
	ThenWithDescription(id string, description string, assertion func()) Assertable // next
	Operation(id string, action func()) Assertable                                   // setup step, not asserted
	Cases(cases ...*assertion) Assertable
	WithMultipleRuns(numRuns int) Assertable
	Do(t *testing.T)
}

func New(id string, assertionCase func()) *assertion {
	return NewWithDescription(id, "", assertionCase)
}

func NewWithDescription(id string, description string, assertionCase func()) *assertion {
	a := &assertion{
		id:           id,
		description:  description,
		assertion:    assertionCase,
		shouldAssert: true,
	}
	a.head = a
	return a
}

func NewGroup(id string, description string) Assertable {
	a := &assertion{
		id:          id,
		description: description,
	}
	a.head = a
	return a
}

func (a *assertion) WithMultipleRuns(numRuns int) Assertable {
	if numRuns < 1 {
		numRuns = 1
	}
	a.numRuns = numRuns
	return a
}

func (a *assertion) Operation(id string, action func()) Assertable {
	a.next = &assertion{
		head:      a.head,
		id:        id,
		assertion: action,
	}
	return a.next
}

func (a *assertion) Then(id string, assertionCase func()) Assertable {
	return a.ThenWithDescription(id, "", assertionCase)
}

func (a *assertion) ThenWithDescription(id string, description string, assertionCase func()) Assertable {
	a.next = &assertion{
		head:         a.head,
		id:           id,
		description:  description,
		assertion:    assertionCase,
		shouldAssert: true,
	}
	return a.next
}

func (a *assertion) Cases(cases ...*assertion) Assertable {
	curr := a
	for _, c := range cases {
		if c != nil {
			curr.next = c
			c.head = curr.head
			curr = c
		}
	}
	return curr
}

func getIndentations(level int) string {
	return strings.Repeat(" ", level)
}

// Do walks the chain from its head. Group nodes (no assertion) only indent
// the log output, operations run unchecked, and cases run as subtests.
func (a *assertion) Do(t *testing.T) {
	t.Helper()
	startTime := time.Now()
	indent := 0
	for curr := a.head; curr != nil; curr = curr.next {
		switch {
		case curr.assertion == nil:
			t.Logf("%sRunning group %s%s", getIndentations(indent), curr.id, getDescription(curr))
			indent += 2
		case !curr.shouldAssert:
			t.Logf("%sRunning operation %s%s", getIndentations(indent), curr.id, getDescription(curr))
			curr.assertion()
		default:
			doAssertion(t, indent, curr)
		}
	}
	t.Log("All test finished, overall runtime: ", time.Since(startTime))
}

func doAssertion(t *testing.T, indent int, node *assertion) {
	runs := node.numRuns
	if runs < 1 {
		runs = 1
	}
	t.Run(node.id, func(t *testing.T) {
		succeeded := 0
		for i := 0; i < runs; i++ {
			if doAssertCase(t, indent, node.id, node.assertion) {
				succeeded++
			}
		}
		if runs > 1 {
			t.Logf("%sMultiple case success rate report: (%d/%d)", getIndentations(indent), succeeded, runs)
		}
	})
}

func doAssertCase(t *testing.T, indent int, id string, assertion func()) (res bool) {
	res = true
	defer func() {
		if recovered := recover(); recovered != nil {
			res = false
			errorMessage := fmt.Sprintf("%v", recovered)
			if !isAssertionFailurePanic(recovered) {
				errorMessage = fmt.Sprintf("panic recovered: %v, call stack trace:\n%s", recovered, getCallers())
			}
			t.Errorf("%s❌ %s failed", getIndentations(indent), id)
			t.Error(colorRed + errorMessage + colorReset)
			return
		}
		t.Logf("%s✅ %s passed", getIndentations(indent), id)
	}()
	assertion()
	return
}

func getCallers() string {
	var b strings.Builder
	for i := 0; ; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		b.WriteString(fmt.Sprintf("%s%v:%v\n", getIndentations(i*2), file, line))
	}
	return b.String()
}

func getDescription(a *assertion) string {
	if a.description == "" {
		return ""
	}
	return "[" + a.description + "]"
}
