// ABOUTME: Default implementations for library dependencies
// ABOUTME: Builds caches, HTTP client and logger from configuration

package rssit

import (
	"fmt"
	"time"

	"rss-it-library/core/interfaces"
	"rss-it-library/infrastructure/cache/memory"
	"rss-it-library/infrastructure/cache/redis"
	"rss-it-library/infrastructure/cache/sqlite"
	httpInfra "rss-it-library/infrastructure/http/standard"
	"rss-it-library/infrastructure/logger/structured"
	"rss-it-library/pkg/config"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(20 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache with the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// NewCacheFromConfig builds the cache backend selected by cfg.Type.
// A nil cache with a nil error means caching is disabled.
func NewCacheFromConfig(cfg config.CacheConfig) (interfaces.Cache, error) {
	switch cfg.Type {
	case config.CacheTypeNone:
		return nil, nil
	case config.CacheTypeMemory, "":
		return memory.NewMemoryCache(), nil
	case config.CacheTypeRedis:
		cache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return cache, nil
	case config.CacheTypeSQLite:
		cache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return cache, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// NewClientFromConfig builds a client whose cache, HTTP client and logger follow cfg
func NewClientFromConfig(cfg *config.Config, extra ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid configuration").WithCause(err)
	}

	logger, err := structured.NewFromConfig(cfg.Log)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "create logger").WithCause(err)
	}

	cache, err := NewCacheFromConfig(cfg.Cache)
	if err != nil {
		logger.Close()
		return nil, NewError(ErrorTypeConfiguration, "create cache").WithCause(err).
			WithContext("type", cfg.Cache.Type)
	}

	options := []Option{
		WithLogger(logger),
		WithHTTPClient(httpInfra.NewFromConfig(cfg.HTTP)),
		WithoutCache(),
		WithConcurrency(cfg.Parser.Concurrency),
		WithValidationTimeout(cfg.Parser.ValidationTimeout),
		WithMaxBodyBytes(cfg.Parser.MaxBodyBytes),
		WithCacheTTL(cfg.Cache.TTL),
	}
	if cache != nil {
		options = append(options, WithCache(cache))
	}
	options = append(options, extra...)

	client, err := NewClient(options...)
	if err != nil {
		closeQuietly(cache)
		logger.Close()
		return nil, err
	}

	client.own(cache)
	client.own(logger)

	logger.Info("RSS-It client initialised", map[string]interface{}{
		"cache":       cfg.Cache.Type,
		"concurrency": cfg.Parser.Concurrency,
	})

	return client, nil
}
