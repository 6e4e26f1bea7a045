package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/favorites-qa/favorites-contract-tests/logging"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework's equivalent of *testing.T. It implements require.TestingT, so
// the assert and require packages can be used with it directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger logging.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	knownIssue  string
	errors      []error
}

func Run(
	filter func(TestID) bool,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.env.results.add(TestResult{
			TestID:     c.id,
			Errors:     c.errors,
			Failed:     c.failed,
			KnownIssue: c.knownIssue,
		})
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	switch {
	case c1.skipped:
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	case c1.knownIssue != "":
		c.env.testLogger.TestKnownIssue(id, c1.knownIssue, c1.failed, c1.debugLogger.Output())
	default:
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// ExpectFailure marks the rest of the test as covering a known defect in the service under
// test. If the test then fails, the failure is reported as a known issue instead of counting
// against the run; if it passes, the run reports the issue as possibly fixed. Failures that
// happened before the call are not excused.
func (c *Context) ExpectFailure(reason string) {
	if c.failed {
		return
	}
	c.knownIssue = reason
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}

// reformatError drops testify's "Error Trace" block, which only ever points into this
// package's helpers.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	out := make([]string, 0, len(lines))
	inTrace := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Error Trace:") {
			inTrace = true
			continue
		}
		if inTrace {
			if strings.HasPrefix(trimmed, "Error:") || strings.HasPrefix(trimmed, "Messages:") ||
				strings.HasPrefix(trimmed, "Test:") {
				inTrace = false
			} else {
				continue
			}
		}
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return err
	}
	return errors.New(strings.Join(out, "\n"))
}
