// ABOUTME: HTTP client for fetching feed documents with retry, backoff and rate limiting
// ABOUTME: Retries transport errors and 5xx answers with exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"rss-it-library/core/interfaces"
	"rss-it-library/pkg/config"
)

const (
	defaultMaxRetries = 3
	defaultUserAgent  = "RSSIt/1.0"
	acceptFeeds       = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.8"
)

// Options configures a StandardHTTPClient
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int

	// RateLimit is the sustained request rate per second; 0 disables limiting
	RateLimit float64
	RateBurst int
}

// StandardHTTPClient implements the HTTPClient interface on net/http
type StandardHTTPClient struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	limiter    *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout and default settings
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewHTTPClient(Options{Timeout: timeout})
}

// NewHTTPClient creates a new HTTP client from options
func NewHTTPClient(opts Options) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
	}

	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.maxRetries < 1 {
		c.maxRetries = defaultMaxRetries
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return c
}

// NewFromConfig creates a client from the http section of the configuration
func NewFromConfig(cfg config.HTTPConfig) *StandardHTTPClient {
	return NewHTTPClient(Options{
		Timeout:    cfg.Timeout,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	})
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptFeeds)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)

		// Keep the last 5xx answer for the caller; close the ones we retry past
		if attempt < c.maxRetries-1 {
			resp.Body.Close()
			resp = nil
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
