// ABOUTME: Feed service handles RSS/Atom/JSON feed fetching, validation and caching
// ABOUTME: Provides business logic for feed operations independent of the FFI and HTTP layers

package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"rss-it-library/core/domain"
	coreerrors "rss-it-library/core/errors"
	"rss-it-library/core/interfaces"
)

const (
	DefaultConcurrency       = 8
	DefaultValidationTimeout = 15 * time.Second
	DefaultMaxBodyBytes      = 10 << 20
	DefaultCacheTTL          = 15 * time.Minute

	cacheKeyPrefix       = "feed:"
	sourceCacheKeyPrefix = "source:"
)

// Options tunes the feed service
type Options struct {
	// Concurrency is the maximum number of feeds fetched at once
	Concurrency int

	// ValidationTimeout bounds a single ValidateFeed call
	ValidationTimeout time.Duration

	// MaxBodyBytes caps the size of a downloaded document
	MaxBodyBytes int64

	// CacheTTL is how long a parsed feed stays cached
	CacheTTL time.Duration
}

// DefaultOptions returns the options used when none are supplied
func DefaultOptions() Options {
	return Options{
		Concurrency:       DefaultConcurrency,
		ValidationTimeout: DefaultValidationTimeout,
		MaxBodyBytes:      DefaultMaxBodyBytes,
		CacheTTL:          DefaultCacheTTL,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Concurrency <= 0 {
		o.Concurrency = d.Concurrency
	}
	if o.ValidationTimeout <= 0 {
		o.ValidationTimeout = d.ValidationTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = d.MaxBodyBytes
	}
	if o.CacheTTL < 0 {
		o.CacheTTL = d.CacheTTL
	}
	return o
}

// FeedService handles feed parsing and management
type FeedService struct {
	deps   interfaces.Dependencies
	opts   Options
	logger interfaces.Logger
}

// NewFeedService creates a new feed service instance with default options
func NewFeedService(deps interfaces.Dependencies) *FeedService {
	return NewFeedServiceWithOptions(deps, DefaultOptions())
}

// NewFeedServiceWithOptions creates a new feed service instance.
// Zero-valued options fall back to their defaults; a zero CacheTTL stores entries without expiry.
func NewFeedServiceWithOptions(deps interfaces.Dependencies, opts Options) *FeedService {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &FeedService{
		deps:   deps,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Options returns the effective options of the service
func (s *FeedService) Options() Options {
	return s.opts
}

// ValidateFeed reports whether feedURL serves a document that parses as a feed
func (s *FeedService) ValidateFeed(ctx context.Context, feedURL string) *domain.ValidationResult {
	trimmed := strings.TrimSpace(feedURL)
	result := &domain.ValidationResult{URL: trimmed}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ValidationTimeout)
	defer cancel()

	if _, err := s.ParseFeed(ctx, trimmed); err != nil {
		detail := coreerrors.Detail(err, trimmed)
		result.Error = &detail

		s.logger.Debug("Feed validation failed", map[string]interface{}{
			"url":   trimmed,
			"kind":  detail.Kind.String(),
			"error": detail.Message,
		})
		return result
	}

	result.Valid = true
	return result
}

// ParseFeed fetches and parses a single feed, consulting the cache first
func (s *FeedService) ParseFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if err := checkURL(feedURL); err != nil {
		return nil, err
	}

	var cached domain.Feed
	if s.loadCached(ctx, cacheKeyPrefix+feedURL, feedURL, &cached) {
		return &cached, nil
	}

	parsed, err := s.fetchDocument(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed := convertFeed(feedURL, parsed)

	s.logger.Debug("Feed parsed", map[string]interface{}{
		"url":   feedURL,
		"type":  feed.FeedType,
		"items": feed.ItemCount(),
	})

	s.storeCached(ctx, cacheKeyPrefix+feedURL, feedURL, feed)

	return feed, nil
}

// ParseFeeds fetches the given feeds concurrently and aggregates feeds and failures in input order.
// A failing feed never cancels the others.
func (s *FeedService) ParseFeeds(ctx context.Context, urls []string) *domain.ParseResult {
	result := &domain.ParseResult{
		Status: domain.ParseStatusError,
		Feeds:  make([]*domain.Feed, 0, len(urls)),
		Errors: make([]domain.ErrorDetail, 0),
	}

	if len(urls) == 0 {
		result.Errors = append(result.Errors, emptyRequestDetail())
		return result
	}

	feeds := make([]*domain.Feed, len(urls))
	failures := s.fanOut(ctx, urls, func(ctx context.Context, i int, feedURL string) error {
		feed, err := s.ParseFeed(ctx, feedURL)
		feeds[i] = feed
		return err
	})

	for i := range urls {
		if feeds[i] != nil {
			result.Feeds = append(result.Feeds, feeds[i])
		}
		if failures[i] != nil {
			result.Errors = append(result.Errors, *failures[i])
		}
	}

	result.Status = domain.StatusFor(len(result.Feeds), len(result.Errors))

	s.logger.Debug("Parsed feed batch", map[string]interface{}{
		"requested": len(urls),
		"feeds":     len(result.Feeds),
		"errors":    len(result.Errors),
		"status":    result.Status.String(),
	})

	return result
}

func emptyRequestDetail() domain.ErrorDetail {
	return domain.NewErrorDetail(domain.ErrorKindValidation, "no feed URLs supplied", "")
}

// fanOut calls parse for every non-blank URL, at most Concurrency at a time, and
// returns the failure recorded for each index (nil where parse succeeded).
// Blank entries fail validation without being fetched.
func (s *FeedService) fanOut(ctx context.Context, urls []string, parse func(ctx context.Context, i int, feedURL string) error) []*domain.ErrorDetail {
	failures := make([]*domain.ErrorDetail, len(urls))

	group := new(errgroup.Group)
	group.SetLimit(s.opts.Concurrency)

	for i, candidate := range urls {
		feedURL := strings.TrimSpace(candidate)
		if feedURL == "" {
			failures[i] = &domain.ErrorDetail{
				Kind:    domain.ErrorKindValidation,
				Message: "feed URL is empty",
				URL:     candidate,
			}
			continue
		}

		group.Go(func() error {
			if err := parse(ctx, i, feedURL); err != nil {
				detail := coreerrors.Detail(err, feedURL)
				failures[i] = &detail

				s.logger.Warn("Failed to parse feed", map[string]interface{}{
					"url":   feedURL,
					"kind":  detail.Kind.String(),
					"error": err.Error(),
				})
			}
			return nil
		})
	}

	// Workers never return an error
	_ = group.Wait()

	return failures
}

// checkURL rejects empty and non-http(s) URLs
func checkURL(feedURL string) error {
	if strings.TrimSpace(feedURL) == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "feed URL is empty"}
	}

	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &coreerrors.ValidationError{Field: "url", Message: "invalid feed URL"}
	}

	return nil
}

// fetch downloads a feed document, enforcing a success status and the body size cap
func (s *FeedService) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("fetch %s: HTTP client not configured", feedURL)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.FetchError{URL: feedURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, coreerrors.WrapError(err, "read feed body")
	}

	if int64(len(body)) > s.opts.MaxBodyBytes {
		return nil, &coreerrors.ParseError{
			URL:   feedURL,
			Cause: fmt.Errorf("document exceeds %d bytes", s.opts.MaxBodyBytes),
		}
	}

	return body, nil
}

// fetchDocument downloads and decodes the feed at feedURL
func (s *FeedService) fetchDocument(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := s.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return parseDocument(body, feedURL)
}

// parseDocument decodes an RSS, Atom or JSON feed document
func parseDocument(content []byte, feedURL string) (*gofeed.Feed, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &coreerrors.ParseError{URL: feedURL, Cause: fmt.Errorf("empty document")}
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &coreerrors.ParseError{URL: feedURL, Cause: err}
	}

	return parsed, nil
}

// loadCached decodes the cache entry at key into dst. Misses, cache failures and
// undecodable entries report false.
func (s *FeedService) loadCached(ctx context.Context, key, feedURL string, dst interface{}) bool {
	if s.deps.Cache == nil {
		return false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.logger.Warn("Cache lookup failed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		}
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return false
	}

	s.logger.Debug("Feed served from cache", map[string]interface{}{"url": feedURL, "key": key})
	return true
}

// storeCached stores value in cache, logging and ignoring failures
func (s *FeedService) storeCached(ctx context.Context, key, feedURL string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode feed for cache", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		s.logger.Warn("Failed to cache feed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
	}
}
