// ABOUTME: Main client for the RSS-It library providing feed validation and parsing
// ABOUTME: Offers a clean API for using core functionality without FFI or HTTP dependencies

package rssit

import (
	"context"
	"io"
	"strings"
	"sync"

	"rss-it-library/core/domain"
	"rss-it-library/core/feed"
	"rss-it-library/core/interfaces"
)

// Client is the main entry point for the RSS-It library
type Client struct {
	feedService *feed.FeedService
	deps        interfaces.Dependencies
	config      Config

	mu      sync.RWMutex
	closed  bool
	closers []io.Closer
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	config.withDefaultDependencies()

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	feedService := feed.NewFeedServiceWithOptions(deps, feed.Options{
		Concurrency:       config.Concurrency,
		ValidationTimeout: config.ValidationTimeout,
		MaxBodyBytes:      config.MaxBodyBytes,
		CacheTTL:          config.CacheTTL,
	})

	return &Client{
		feedService: feedService,
		deps:        deps,
		config:      config,
	}, nil
}

// own registers a resource released by Close
func (c *Client) own(resource interface{}) {
	if closer, ok := resource.(io.Closer); ok && closer != nil {
		c.closers = append(c.closers, closer)
	}
}

// Close waits for in-flight calls and releases owned resources.
// Calls made after Close report ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	return firstErr
}

// Validate reports whether url serves a parseable feed
func (c *Client) Validate(ctx context.Context, url string) *domain.ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		detail := closedDetail(url)
		return &domain.ValidationResult{URL: strings.TrimSpace(url), Error: &detail}
	}

	return c.feedService.ValidateFeed(ctx, url)
}

// ParseFeeds fetches and parses a batch of feeds
func (c *Client) ParseFeeds(ctx context.Context, urls []string) *domain.ParseResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return &domain.ParseResult{
			Status: domain.ParseStatusError,
			Feeds:  []*domain.Feed{},
			Errors: []domain.ErrorDetail{closedDetail("")},
		}
	}

	return c.feedService.ParseFeeds(ctx, urls)
}

// ParseSourceFeeds is ParseFeeds without conversion: each feed is returned as
// gofeed decoded it, with markup and original date strings intact
func (c *Client) ParseSourceFeeds(ctx context.Context, urls []string) *feed.SourceResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return &feed.SourceResult{
			Status: domain.ParseStatusError,
			Feeds:  []feed.SourceFeed{},
			Errors: []domain.ErrorDetail{closedDetail("")},
		}
	}

	return c.feedService.ParseSourceFeeds(ctx, urls)
}

// ParseFeed fetches and parses a single feed
func (c *Client) ParseFeed(ctx context.Context, url string) (*domain.Feed, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	return c.feedService.ParseFeed(ctx, strings.TrimSpace(url))
}

// Logger returns the logger the client reports through
func (c *Client) Logger() interfaces.Logger {
	return c.config.Logger
}

func closeQuietly(resource interface{}) {
	if closer, ok := resource.(io.Closer); ok && closer != nil {
		_ = closer.Close()
	}
}
