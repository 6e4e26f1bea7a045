package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/favorites-qa/favorites-contract-tests/favtests"
	"github.com/favorites-qa/favorites-contract-tests/framework"
	"github.com/favorites-qa/favorites-contract-tests/logging"
	"github.com/favorites-qa/favorites-contract-tests/spectable"
)

const statusQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args, os.LookupEnv, os.Stderr) {
		os.Exit(2)
	}
	if params.noColor {
		color.NoColor = true
	}

	catalog, err := spectable.CatalogFor(params.locale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	table := spectable.DefaultTable(catalog)
	if params.casesFile != "" {
		extra, err := spectable.LoadCases(params.casesFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		table = append(table, extra...)
	}

	mainDebugLogger := logging.NullLogger()
	if params.debugAll {
		mainDebugLogger = logging.NewConsoleLogger(os.Stdout, params.noColor)
	}

	harness, err := framework.NewTestHarness(
		params.serviceURL,
		&http.Client{Timeout: params.requestTimeout},
		statusQueryTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	suiteParams := favtests.Params{
		Catalog:        catalog,
		Table:          table,
		RequestTimeout: params.requestTimeout,
	}
	if params.tokenExpiryWait > 0 {
		suiteParams.TokenExpiryWait = params.tokenExpiryWait
	}
	results, err := favtests.RunTestSuite(harness, suiteParams, params.filters.AsFilter, testLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot run test suite: %s\n", err)
		os.Exit(2)
	}

	fmt.Println()
	PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
