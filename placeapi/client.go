package placeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/favorites-qa/favorites-contract-tests/logging"
)

const (
	TokensPath    = "/v1/auth/tokens"
	FavoritesPath = "/v1/favorites"
	TokenCookie   = "token"

	requestIDHeader = "X-Request-ID"
	formContentType = "application/x-www-form-urlencoded"
)

// ErrNoTokenCookie means that the token endpoint answered without setting the token cookie.
var ErrNoTokenCookie = errors.New("token endpoint did not set a token cookie")

// UnexpectedStatusError is returned for responses that no contract covers, such as any 5xx
// status, so that the test reporting it fails instead of interpreting the body.
type UnexpectedStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s %s returned unexpected HTTP status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Config is everything a Client needs. There are no package-level defaults for the base URL
// or the HTTP client.
type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         logging.Logger
}

// Client issues credentials and submits place drafts to one deployment of the service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute, got %q", cfg.BaseURL)
	}
	c := &Client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:     cfg.HTTPClient,
		requestTimeout: cfg.RequestTimeout,
		logger:         cfg.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = logging.NullLogger()
	}
	return c, nil
}

// WithLogger returns a copy of the client that writes its debug output to another logger.
func (c *Client) WithLogger(logger logging.Logger) *Client {
	c1 := *c
	if logger == nil {
		logger = logging.NullLogger()
	}
	c1.logger = logger
	return &c1
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// IssueToken asks the service for a new credential.
func (c *Client) IssueToken(ctx context.Context) (Credential, error) {
	resp, err := c.post(ctx, TokensPath, nil, Credential{})
	if err != nil {
		return Credential{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Credential{}, &UnexpectedStatusError{
			Method:     http.MethodPost,
			URL:        c.baseURL + TokensPath,
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}
	for _, cookie := range resp.Cookies {
		if cookie.Name == TokenCookie && cookie.Value != "" {
			c.logger.Printf("Issued token %s", cookie.Value)
			return Credential{Token: cookie.Value, IssuedAt: resp.ReceivedAt}, nil
		}
	}
	return Credential{}, ErrNoTokenCookie
}

// Submit sends one create-favorite request. Any response below 500 is returned as-is for the
// caller to check; transport failures and 5xx responses are returned as errors. There are no
// retries.
func (c *Client) Submit(ctx context.Context, draft PlaceDraft, cred Credential) (*Response, error) {
	form, err := draft.Form()
	if err != nil {
		return nil, err
	}
	resp, err := c.post(ctx, FavoritesPath, form, cred)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 500 {
		return nil, &UnexpectedStatusError{
			Method:     http.MethodPost,
			URL:        c.baseURL + FavoritesPath,
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, cred Credential) (*Response, error) {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	target := c.baseURL + path
	encoded := form.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", formContentType)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	if cred.IsDefined() {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: cred.Token})
	}

	c.logger.Printf("Request %s: %s", requestID, curlCommand(target, form, cred, requestID))
	started := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", target, err)
	}
	defer func() { _ = httpResp.Body.Close() }()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %w", target, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Cookies:    httpResp.Cookies(),
		Body:       body,
		RequestID:  requestID,
		ReceivedAt: time.Now(),
	}
	c.logger.Printf("Response %s after %s: %s", requestID, resp.ReceivedAt.Sub(started).Round(time.Millisecond), resp)
	return resp, nil
}
