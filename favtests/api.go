package favtests

import (
	"context"
	"time"

	"github.com/favorites-qa/favorites-contract-tests/framework"
	"github.com/favorites-qa/favorites-contract-tests/placeapi"
	"github.com/favorites-qa/favorites-contract-tests/spectable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const DefaultTokenExpiryWait = time.Second * 3

// Params configures a test run.
type Params struct {
	Catalog spectable.Catalog

	// Table holds the validation cases. If it is nil, spectable.DefaultTable is used.
	Table spectable.Table

	// TokenExpiryWait is how long the expired-token test waits after a token is issued before
	// using it. It must be longer than the service's token TTL.
	TokenExpiryWait time.Duration

	RequestTimeout time.Duration
}

type environment struct {
	params Params
	client *placeapi.Client
}

// T represents a test or subtest in the favorites test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with debug logging that is only shown when it is wanted.
// Those features are provided by the lower-level framework package.
//
// It also provides functionality that is specific to this endpoint: issuing credentials,
// submitting drafts, and checking responses. Every T has its own client whose request log goes
// to the test's debug output.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it
// were a *testing.T. The request methods also fail the test immediately if the request could not
// be made at all.
type T struct {
	context *framework.Context
	env     *environment
	client  *placeapi.Client
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context: context,
		env:     env,
		client:  env.client.WithLogger(context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// KnownIssue declares that the rest of this test covers a known defect of the service. It has
// no effect if the test has already failed.
func (t *T) KnownIssue(reason string) {
	t.context.ExpectFailure(reason)
}

func (t *T) Catalog() spectable.Catalog {
	return t.env.params.Catalog
}

// NewCredential asks the service for a fresh token. Credentials are never shared between tests.
func (t *T) NewCredential() placeapi.Credential {
	cred, err := t.client.IssueToken(context.Background())
	require.NoError(t, err, "could not obtain a token")
	return cred
}

// AwaitCredentialExpiry blocks until the credential is old enough to have expired.
func (t *T) AwaitCredentialExpiry(cred placeapi.Credential) {
	wait := t.env.params.TokenExpiryWait
	t.Debug("Waiting until token is %s old", wait)
	require.NoError(t, placeapi.AwaitExpiry(context.Background(), cred, wait))
}

// Submit sends a draft. The test fails immediately on a transport error or a 5xx status.
func (t *T) Submit(draft placeapi.PlaceDraft, cred placeapi.Credential) *placeapi.Response {
	resp, err := t.client.Submit(context.Background(), draft, cred)
	require.NoError(t, err)
	return resp
}

// RequireStatus fails the test immediately if the response has a different status.
func (t *T) RequireStatus(resp *placeapi.Response, status int) {
	if resp.StatusCode != status {
		require.Fail(t, "unexpected response status",
			"expected HTTP %d but got %s", status, resp)
	}
}

// RequireErrorMentioning checks that the response has an error message containing every one of
// the fragments, and returns the message.
func (t *T) RequireErrorMentioning(resp *placeapi.Response, fragments ...string) string {
	message, ok := resp.ErrorMessage()
	if !ok {
		require.Fail(t, "response has no error message", "body was: %s", string(resp.Body))
	}
	for _, f := range fragments {
		assert.Contains(t, message, f, "error message does not mention %q", f)
	}
	return message
}

// RequireRecordEchoing checks that a successful response describes a new place with the values
// of the draft, and returns it.
func (t *T) RequireRecordEchoing(resp *placeapi.Response, draft placeapi.PlaceDraft) placeapi.PlaceRecord {
	rec, err := resp.Record()
	require.NoError(t, err)

	assert.False(t, rec.ID.IsNull(), "record has no id")
	assert.NotEmpty(t, rec.CreatedAt, "record has no created_at")

	if draft.Title.IsDefined() {
		assert.Equal(t, draft.Title.StringValue(), rec.Title, "title was not echoed")
	}
	for _, c := range []struct {
		field placeapi.Field
		value float64
	}{
		{placeapi.FieldLat, rec.Lat},
		{placeapi.FieldLon, rec.Lon},
	} {
		if sent := draft.Get(c.field); sent.IsDefined() {
			expected, ok := spectable.ParseCoordinate(sent.StringValue())
			require.True(t, ok, "accepted %s %q is not a number", c.field, sent.StringValue())
			assert.Equal(t, expected, c.value, "%s was not echoed", c.field)
		}
	}

	if draft.Color.IsDefined() {
		assert.Equal(t, draft.Color.StringValue(), rec.Color.StringValue(), "color was not echoed")
	} else {
		assert.True(t, resp.Field(string(placeapi.FieldColor)).Exists(), "record has no color key")
		assert.False(t, rec.Color.IsDefined(), "color should be null when not submitted")
	}
	return rec
}
