// Package provider retrieves the bicycle helmet dataset over HTTP.
// It issues a single GET request against the configured dataset URL,
// enforces the configured timeout and response size cap, and returns
// the raw JavaScript body for the dataset package to parse.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/velosafe/helmetscan/pkg/config"
	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/verbose"
	"github.com/velosafe/helmetscan/pkg/warnings"
)

// Fallback values used when a Client is built from a partially
// populated config, for example in tests. Normal runs always receive
// a fully resolved config from config.LoadConfig.
const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "helmetscan/1.0"
	defaultMaxBytes  = 10 << 20
)

// Client fetches the raw dataset document from a single HTTP endpoint.
//
// The zero value is not usable; construct instances with NewClient.
type Client struct {
	url        string
	userAgent  string
	maxBytes   int64
	timeout    time.Duration
	httpClient *http.Client
}

// FetchDatasetFunc is the function signature for dataset retrieval.
//
// Parameters:
//   - ctx: Context for cancellation control (e.g., SIGINT handling)
//   - cfg: Resolved configuration carrying URL, timeout, and limits
//
// Returns:
//   - string: The raw response body as served by the endpoint
//   - error: Any error that occurred during retrieval
type FetchDatasetFunc func(ctx context.Context, cfg *config.Config) (string, error)

// FetchDataset is the default dataset retrieval function.
//
// This variable holds the implementation used for dataset retrieval
// throughout the application. It can be replaced with a mock
// implementation for testing.
var FetchDataset FetchDatasetFunc = fetchDataset

// fetchDataset builds a client from the config and performs one fetch.
func fetchDataset(ctx context.Context, cfg *config.Config) (string, error) {
	return NewClient(cfg).Fetch(ctx)
}

// NewClient creates a dataset client from the resolved configuration.
//
// Zero or missing config values fall back to package defaults so that
// a hand-built config in tests still yields a working client.
//
// Parameters:
//   - cfg: Resolved configuration (dataset URL, timeout, user agent, size cap)
//
// Returns:
//   - *Client: A client ready to fetch the configured endpoint
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &Client{
		url:       cfg.DatasetURL,
		userAgent: userAgent,
		maxBytes:  maxBytes,
		timeout:   timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the dataset document from the configured URL.
//
// It performs the following operations:
// 1. Issues a GET request with the configured User-Agent header
// 2. Rejects responses with status codes of 400 or higher
// 3. Reads the body up to the configured size cap
// 4. Emits verbose diagnostics for the request and response
//
// Context cancellation (for example from an interrupt handler)
// surfaces through the returned error chain, so callers can detect it
// with errors.Is(err, context.Canceled).
//
// Parameters:
//   - ctx: Context for cancellation control
//
// Returns:
//   - string: The raw response body
//   - error: A FetchError describing what went wrong, or nil
func (c *Client) Fetch(ctx context.Context) (string, error) {
	verbose.FetchStarted(c.url, c.timeout)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", errors.NewFetchError(c.url, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/javascript, text/javascript;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewFetchError(c.url, 0, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			warnings.Warnf("failed to close response body: %v\n", closeErr)
		}
	}()

	if resp.StatusCode >= 400 {
		return "", errors.NewFetchError(c.url, resp.StatusCode, nil)
	}

	// Read one byte past the cap so oversized bodies are detectable
	// without buffering the whole response.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", errors.NewFetchError(c.url, 0, fmt.Errorf("reading response body: %w", err))
	}
	if int64(len(body)) > c.maxBytes {
		return "", errors.NewFetchError(c.url, 0, fmt.Errorf("response exceeds the response limit of %d bytes", c.maxBytes))
	}

	verbose.FetchCompleted(c.url, len(body), time.Since(start))
	verbose.DatasetPreview(string(body))

	return string(body), nil
}

// URL returns the endpoint this client fetches from.
func (c *Client) URL() string {
	return c.url
}
