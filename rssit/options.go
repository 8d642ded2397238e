// ABOUTME: Configuration options for the RSS-It library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package rssit

import (
	"time"

	"rss-it-library/core/feed"
	"rss-it-library/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Cache stores parsed feeds; left nil, an in-memory cache is used unless caching was disabled
	Cache interfaces.Cache

	// HTTPClient fetches feed documents; left nil, DefaultHTTPClient is used
	HTTPClient interfaces.HTTPClient

	// Logger receives library diagnostics
	Logger interfaces.Logger

	// Feed service tuning
	Concurrency       int
	ValidationTimeout time.Duration
	MaxBodyBytes      int64
	CacheTTL          time.Duration

	cacheDisabled bool
}

// WithCache sets a custom cache implementation; nil disables caching
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		c.cacheDisabled = cache == nil
		return nil
	}
}

// WithoutCache disables caching
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		c.cacheDisabled = true
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithConcurrency sets how many feeds are fetched at once
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "concurrency must be at least 1").
				WithContext("concurrency", n)
		}
		c.Concurrency = n
		return nil
	}
}

// WithValidationTimeout bounds a single Validate call
func WithValidationTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "validation timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.ValidationTimeout = timeout
		return nil
	}
}

// WithMaxBodyBytes caps the size of a downloaded feed document
func WithMaxBodyBytes(n int64) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "max body bytes must be positive").
				WithContext("max_body_bytes", n)
		}
		c.MaxBodyBytes = n
		return nil
	}
}

// WithCacheTTL sets how long parsed feeds stay cached; 0 keeps them until evicted
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.CacheTTL = ttl
		return nil
	}
}

// defaultConfig returns the default client configuration. The cache and HTTP
// client are filled in by withDefaultDependencies once the options have run.
func defaultConfig() Config {
	opts := feed.DefaultOptions()
	return Config{
		Logger:            QuietLogger(),
		Concurrency:       opts.Concurrency,
		ValidationTimeout: opts.ValidationTimeout,
		MaxBodyBytes:      opts.MaxBodyBytes,
		CacheTTL:          opts.CacheTTL,
	}
}

// withDefaultDependencies builds the dependencies no option supplied
func (c *Config) withDefaultDependencies() {
	if c.HTTPClient == nil {
		c.HTTPClient = DefaultHTTPClient()
	}
	if c.Cache == nil && !c.cacheDisabled {
		c.Cache = DefaultMemoryCache()
	}
	if c.Logger == nil {
		c.Logger = QuietLogger()
	}
}
