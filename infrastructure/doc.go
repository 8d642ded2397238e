// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache on github.com/patrickmn/go-cache
// - cache/redis: Redis cache on github.com/redis/go-redis/v9
// - cache/sqlite: On-disk cache on github.com/mattn/go-sqlite3
// - http/standard: net/http client with retries and an outbound rate limit
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "feed:https://example.com/rss", data, 15*time.Minute)
//	value, err := cache.Get(ctx, "feed:https://example.com/rss")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Transport errors and 5xx answers are retried with exponential backoff:
//
//	client := standard.NewStandardHTTPClient(20 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com/rss")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
package infrastructure
