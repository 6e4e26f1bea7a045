package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/favorites-qa/favorites-contract-tests/framework"
	"github.com/favorites-qa/favorites-contract-tests/logging"
)

var (
	failedColor     = color.New(color.FgRed, color.Bold)
	knownIssueColor = color.New(color.FgYellow)
	skippedColor    = color.New(color.FgCyan)
	passedColor     = color.New(color.FgGreen, color.Bold)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput logging.CapturedOutput) {
	if failed {
		failedColor.Fprintf(c.Out, "  FAILED: %s\n", id)
	}
	c.dumpDebugOutput(failed, debugOutput)
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedColor.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		skippedColor.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (c *ConsoleTestLogger) TestKnownIssue(
	id framework.TestID,
	reason string,
	reproduced bool,
	debugOutput logging.CapturedOutput,
) {
	if reproduced {
		knownIssueColor.Fprintf(c.Out, "  KNOWN ISSUE: %s (%s)\n", id, reason)
	} else {
		knownIssueColor.Fprintf(c.Out, "  PASSED DESPITE KNOWN ISSUE, MAY BE FIXED: %s (%s)\n", id, reason)
	}
	c.dumpDebugOutput(reproduced, debugOutput)
}

func (c *ConsoleTestLogger) dumpDebugOutput(failed bool, debugOutput logging.CapturedOutput) {
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

// PrintResults writes the summary of a test run.
func PrintResults(out io.Writer, results framework.Results) {
	for _, r := range results.KnownIssues {
		knownIssueColor.Fprintf(out, "Known issue: %s (%s)\n", r.TestID, r.KnownIssue)
	}
	for _, r := range results.Fixed {
		knownIssueColor.Fprintf(out, "Known issue did not reproduce: %s (%s)\n", r.TestID, r.KnownIssue)
	}
	if results.OK() {
		passedColor.Fprintln(out, "All tests passed")
		return
	}
	failedColor.Fprintf(out, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s\n", f.TestID)
	}
}
