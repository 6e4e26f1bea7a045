package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

func readParams(t *testing.T, env map[string]string, args ...string) (commandParams, bool, string) {
	t.Helper()
	var p commandParams
	var errOut bytes.Buffer
	ok := p.Read(append([]string{"favorites-contract-tests", "-env-file", ""}, args...), envFrom(env), &errOut)
	return p, ok, errOut.String()
}

func TestDefaults(t *testing.T) {
	p, ok, _ := readParams(t, nil)
	require.True(t, ok)
	assert.Equal(t, defaultServiceURL, p.serviceURL)
	assert.Equal(t, "ru", p.locale)
	assert.Equal(t, time.Duration(0), p.tokenExpiryWait)
	assert.Equal(t, defaultRequestTimeout, p.requestTimeout)
	assert.False(t, p.filters.MustMatch.IsDefined())
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	p, ok, _ := readParams(t, map[string]string{
		envServiceURL:      "http://localhost:8000",
		envLocale:          "en",
		envTokenExpiryWait: "5s",
		envRequestTimeout:  "1s",
	})
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", p.serviceURL)
	assert.Equal(t, "en", p.locale)
	assert.Equal(t, time.Second*5, p.tokenExpiryWait)
	assert.Equal(t, time.Second, p.requestTimeout)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	p, ok, _ := readParams(t, map[string]string{envServiceURL: "http://localhost:8000"},
		"-url", "http://localhost:9000", "-run", "validation", "-skip", "expired", "-debug")
	require.True(t, ok)
	assert.Equal(t, "http://localhost:9000", p.serviceURL)
	assert.True(t, p.filters.MustMatch.IsDefined())
	assert.True(t, p.filters.MustNotMatch.IsDefined())
	assert.True(t, p.debug)
}

func TestExpiryWaitFlag(t *testing.T) {
	p, ok, _ := readParams(t, map[string]string{envTokenExpiryWait: "5s"}, "-token-expiry-wait", "4s")
	require.True(t, ok)
	assert.Equal(t, time.Second*4, p.tokenExpiryWait)
}

func TestInvalidEnvironmentValue(t *testing.T) {
	_, ok, errOut := readParams(t, map[string]string{envTokenExpiryWait: "soon"})
	assert.False(t, ok)
	assert.Contains(t, errOut, envTokenExpiryWait)
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FAVORITES_BASE_URL=http://from-file:1234\nFAVORITES_LOCALE=en\n"), 0o600))

	var p commandParams
	var errOut bytes.Buffer
	ok := p.Read([]string{"x", "-env-file", path}, envFrom(map[string]string{envLocale: "ru"}), &errOut)
	require.True(t, ok, errOut.String())
	assert.Equal(t, "http://from-file:1234", p.serviceURL)
	assert.Equal(t, "ru", p.locale)
}

func TestMissingEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	var p commandParams
	ok := p.Read([]string{"x", "-env-file", path}, envFrom(nil), &bytes.Buffer{})
	assert.False(t, ok)

	// the default file name is optional
	p = commandParams{}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()
	assert.True(t, p.Read([]string{"x"}, envFrom(nil), &bytes.Buffer{}))
}

func TestBadFlag(t *testing.T) {
	_, ok, _ := readParams(t, nil, "-run", "(")
	assert.False(t, ok)
}
