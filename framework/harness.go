package framework

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/favorites-qa/favorites-contract-tests/logging"
)

const serviceProbeInterval = time.Millisecond * 100

// TestHarness holds what every test needs to reach the service under test: its base URL and
// the HTTP client to use. It is passed explicitly to the test suite.
type TestHarness struct {
	serviceBaseURL string
	httpClient     *http.Client
	logger         logging.Logger
}

// NewTestHarness creates a TestHarness instance, and verifies that the service under test is
// reachable by sending requests to its base URL until one gets any HTTP response or the
// timeout elapses. The status code of that response does not matter, since the service is not
// required to serve anything at its root.
func NewTestHarness(
	serviceBaseURL string,
	httpClient *http.Client,
	statusQueryTimeout time.Duration,
	debugLogger logging.Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = logging.NullLogger()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if startupOutput == nil {
		startupOutput = io.Discard
	}

	u, err := url.Parse(serviceBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL %q: %w", serviceBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("service URL must be an absolute http or https URL, got %q", serviceBaseURL)
	}

	h := &TestHarness{
		serviceBaseURL: strings.TrimSuffix(serviceBaseURL, "/"),
		httpClient:     httpClient,
		logger:         debugLogger,
	}

	if err := h.awaitService(statusQueryTimeout, startupOutput); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *TestHarness) ServiceBaseURL() string {
	return h.serviceBaseURL
}

func (h *TestHarness) HTTPClient() *http.Client {
	return h.httpClient
}

func (h *TestHarness) Logger() logging.Logger {
	return h.logger
}

func (h *TestHarness) awaitService(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to service at %s", h.serviceBaseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		status, err := h.probe(deadline)
		if err == nil {
			fmt.Fprintln(output)
			h.logger.Printf("Service responded to probe with status %d", status)
			return nil
		}
		h.logger.Printf("Service probe failed: %s", err)
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(serviceProbeInterval)
	}
}

// probe sends one HEAD request, which is abandoned if the service has not answered by the
// deadline.
func (h *TestHarness) probe(deadline time.Time) (int, error) {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.serviceBaseURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
