package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/favorites-qa/favorites-contract-tests/framework"
)

const (
	defaultServiceURL     = "https://regions-test.2gis.com"
	defaultLocale         = "ru"
	defaultEnvFile        = ".env"
	defaultRequestTimeout = time.Second * 10

	envServiceURL      = "FAVORITES_BASE_URL"
	envLocale          = "FAVORITES_LOCALE"
	envTokenExpiryWait = "FAVORITES_TOKEN_EXPIRY_WAIT"
	envRequestTimeout  = "FAVORITES_REQUEST_TIMEOUT"
)

type commandParams struct {
	serviceURL      string
	locale          string
	tokenExpiryWait time.Duration
	requestTimeout  time.Duration
	casesFile       string
	envFile         string
	filters         framework.RegexFilters
	debug           bool
	debugAll        bool
	noColor         bool
}

// Read parses the command line. Settings that also have an environment variable take their
// default from the process environment, then from the env file; a flag always wins.
func (c *commandParams) Read(args []string, lookupEnv func(string) (string, bool), errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.serviceURL, "url", defaultServiceURL, "base URL of the service under test ($"+envServiceURL+")")
	fs.StringVar(&c.locale, "locale", defaultLocale, "language of the service's error messages: ru or en ($"+envLocale+")")
	fs.DurationVar(&c.tokenExpiryWait, "token-expiry-wait", 0,
		"how long to let a token age before expecting it to be rejected; must exceed the service's token TTL, 3s if unset ($"+envTokenExpiryWait+")")
	fs.DurationVar(&c.requestTimeout, "request-timeout", defaultRequestTimeout,
		"timeout for each request to the service ($"+envRequestTimeout+")")
	fs.StringVar(&c.casesFile, "cases", "", "YAML file with extra validation cases")
	fs.StringVar(&c.envFile, "env-file", defaultEnvFile, "file to read environment defaults from, if it exists")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run, one element per level as in go test -run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}

	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	fileEnv, err := readEnvFile(c.envFile, setFlags["env-file"])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	lookup := func(name string) (string, bool) {
		if v, ok := lookupEnv(name); ok {
			return v, true
		}
		v, ok := fileEnv[name]
		return v, ok
	}

	for flagName, envName := range map[string]string{
		"url":               envServiceURL,
		"locale":            envLocale,
		"token-expiry-wait": envTokenExpiryWait,
		"request-timeout":   envRequestTimeout,
	} {
		if setFlags[flagName] {
			continue
		}
		value, ok := lookup(envName)
		if !ok || value == "" {
			continue
		}
		if err := fs.Set(flagName, value); err != nil {
			fmt.Fprintf(errOut, "invalid value for %s: %s\n", envName, err)
			return false
		}
	}

	if c.serviceURL == "" {
		fmt.Fprintln(errOut, "-url is required")
		fs.Usage()
		return false
	}
	if c.tokenExpiryWait < 0 || c.requestTimeout < 0 {
		fmt.Fprintln(errOut, "durations must not be negative")
		return false
	}
	return true
}

// readEnvFile returns the variables in the given file. A missing file is only an error if the
// file was named explicitly.
func readEnvFile(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read env file %s: %w", path, err)
	}
	return values, nil
}
