package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favorites-qa/favorites-contract-tests/logging"
)

type loggedEvent struct {
	kind       string
	id         string
	reproduced bool
}

type eventLogger struct {
	events []loggedEvent
}

func (l *eventLogger) TestStarted(id TestID) {
	l.events = append(l.events, loggedEvent{kind: "started", id: id.String()})
}

func (l *eventLogger) TestError(id TestID, err error) {
	l.events = append(l.events, loggedEvent{kind: "error", id: id.String()})
}

func (l *eventLogger) TestFinished(id TestID, failed bool, debugOutput logging.CapturedOutput) {
	kind := "passed"
	if failed {
		kind = "failed"
	}
	l.events = append(l.events, loggedEvent{kind: kind, id: id.String()})
}

func (l *eventLogger) TestSkipped(id TestID, reason string) {
	l.events = append(l.events, loggedEvent{kind: "skipped", id: id.String()})
}

func (l *eventLogger) TestKnownIssue(id TestID, reason string, reproduced bool, debugOutput logging.CapturedOutput) {
	l.events = append(l.events, loggedEvent{kind: "known issue", id: id.String(), reproduced: reproduced})
}

func (l *eventLogger) final(id string) loggedEvent {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].id == id && l.events[i].kind != "error" {
			return l.events[i]
		}
	}
	return loggedEvent{}
}

func TestPassingAndFailingTests(t *testing.T) {
	logger := &eventLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) {
			assert.Equal(c, 1, 2)
		})
		c.Run("fails now", func(c *Context) {
			require.Fail(c, "stop")
			c.Errorf("not reached")
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 2)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	assert.Len(t, results.Failures[1].Errors, 1)
	assert.Equal(t, "passed", logger.final("passes").kind)
	assert.Equal(t, "failed", logger.final("fails now").kind)
}

func TestPanicIsReportedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("oops"))
		})
	})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: oops")
}

func TestSkip(t *testing.T) {
	logger := &eventLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not today")
			c.Errorf("not reached")
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, "skipped", logger.final("skipped").kind)
}

func TestExpectFailure(t *testing.T) {
	logger := &eventLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("reproduced", func(c *Context) {
			c.ExpectFailure("typo")
			require.Fail(c, "still broken")
		})
		c.Run("fixed", func(c *Context) {
			c.ExpectFailure("typo")
		})
	})

	assert.True(t, results.OK())
	require.Len(t, results.KnownIssues, 1)
	assert.Equal(t, "reproduced", results.KnownIssues[0].TestID.String())
	assert.Equal(t, "typo", results.KnownIssues[0].KnownIssue)
	require.Len(t, results.Fixed, 1)
	assert.Equal(t, "fixed", results.Fixed[0].TestID.String())

	assert.Equal(t, loggedEvent{kind: "known issue", id: "reproduced", reproduced: true}, logger.final("reproduced"))
	assert.Equal(t, loggedEvent{kind: "known issue", id: "fixed"}, logger.final("fixed"))
}

func TestExpectFailureDoesNotExcuseEarlierFailures(t *testing.T) {
	logger := &eventLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("wrong status", func(c *Context) {
			assert.Equal(c, 400, 200)
			c.ExpectFailure("typo")
			require.Fail(c, "message differs")
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "wrong status", results.Failures[0].TestID.String())
	assert.Empty(t, results.KnownIssues)
	assert.Equal(t, "failed", logger.final("wrong status").kind)
}

func TestFilterExcludesTests(t *testing.T) {
	logger := &eventLogger{}
	ran := false
	Run(func(id TestID) bool { return id.String() != "b" }, logger, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) { ran = true })
	})
	assert.False(t, ran)
	assert.Equal(t, "skipped", logger.final("b").kind)
}

func TestNestedIDs(t *testing.T) {
	var inner []string
	Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("one", func(c *Context) { inner = append(inner, c.ID().String()) })
			c.Run("two", func(c *Context) { inner = append(inner, c.ID().String()) })
		})
	})
	assert.Equal(t, []string{"group/one", "group/two"}, inner)
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	var captured logging.CapturedOutput
	logger := &captureLogger{eventLogger: &eventLogger{}, output: &captured}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("value %d", 1)
			c.DebugLogger().Printf("value %d", 2)
		})
	})
	require.Len(t, captured, 2)
	assert.Equal(t, "value 2", captured[1].Message)
}

type captureLogger struct {
	*eventLogger
	output *logging.CapturedOutput
}

func (l *captureLogger) TestFinished(id TestID, failed bool, debugOutput logging.CapturedOutput) {
	*l.output = debugOutput
}

func TestReformatErrorDropsTrace(t *testing.T) {
	err := errors.New("\n\tError Trace:\tapi.go:12\n\t            \tother.go:3\n\tError:      \tNot equal\n\tMessages:   \tbad")
	assert.Equal(t, "Error:      \tNot equal\nMessages:   \tbad", reformatError(err).Error())
	assert.Equal(t, "plain", reformatError(errors.New("plain")).Error())
}

func TestIDPlusDoesNotShareBackingArray(t *testing.T) {
	base := TestID{Path: make([]string, 1, 4)}
	base.Path[0] = "root"
	a := base.Plus("a")
	b := base.Plus("b")
	assert.Equal(t, "root/a", a.String())
	assert.Equal(t, "root/b", b.String())
}
