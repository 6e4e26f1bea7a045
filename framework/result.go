package framework

import (
	"fmt"
	"strings"
)

type Results struct {
	Tests       []TestResult
	Failures    []TestResult
	KnownIssues []TestResult
	Fixed       []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Failed     bool
	KnownIssue string
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	switch {
	case result.Failed && result.KnownIssue != "":
		r.KnownIssues = append(r.KnownIssues, result)
	case result.Failed:
		r.Failures = append(r.Failures, result)
	case result.KnownIssue != "":
		r.Fixed = append(r.Fixed, result)
	}
}

// OK is true if no test failed, not counting failures that were declared as known issues.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest. The receiver's path is never shared with the result.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
