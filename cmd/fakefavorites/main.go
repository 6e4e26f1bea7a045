// Command fakefavorites serves the favorites endpoints locally, so that the contract tests can
// be tried without access to the real deployment:
//
//	go run ./cmd/fakefavorites -port 8000
//	go run . -url http://localhost:8000 -token-expiry-wait 3s
package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/favorites-qa/favorites-contract-tests/fakeservice"
	"github.com/favorites-qa/favorites-contract-tests/logging"
	"github.com/favorites-qa/favorites-contract-tests/spectable"
)

func main() {
	var port int
	var locale string
	var tokenTTL time.Duration
	var quirks bool
	var noColor bool

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.IntVar(&port, "port", 8000, "port to listen on")
	fs.StringVar(&locale, "locale", "ru", "language of error messages: ru or en")
	fs.DurationVar(&tokenTTL, "token-ttl", fakeservice.DefaultTokenTTL, "lifetime of issued tokens")
	fs.BoolVar(&quirks, "quirks", true, "reproduce the known defects of the deployed service")
	fs.BoolVar(&noColor, "no-color", false, "disable colored log output")
	_ = fs.Parse(os.Args[1:])

	catalog, err := spectable.CatalogFor(locale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewConsoleLogger(os.Stderr, noColor)
	opts := fakeservice.Options{
		Catalog:  catalog,
		TokenTTL: tokenTTL,
		Logger:   logger,
	}
	if quirks {
		opts.Quirks = spectable.ObservedQuirks
	}
	service := fakeservice.New(opts)

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           service.Handler(),
		ReadHeaderTimeout: time.Second * 10,
	}
	logger.Printf("Listening on port %d", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
