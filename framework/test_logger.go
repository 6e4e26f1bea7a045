package framework

import "github.com/favorites-qa/favorites-contract-tests/logging"

type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput logging.CapturedOutput)
	TestSkipped(id TestID, reason string)
	TestKnownIssue(id TestID, reason string, reproduced bool, debugOutput logging.CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                                          {}
func (n nullTestLogger) TestError(TestID, error)                                     {}
func (n nullTestLogger) TestFinished(TestID, bool, logging.CapturedOutput)           {}
func (n nullTestLogger) TestSkipped(TestID, string)                                  {}
func (n nullTestLogger) TestKnownIssue(TestID, string, bool, logging.CapturedOutput) {}
