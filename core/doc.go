// Package core contains the feed validation and parsing logic of RSS-It.
// It has no knowledge of the FFI surface, the HTTP server or any concrete
// cache or logging library.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed, FeedItem and the result types returned to callers
// - feed: Fetching, parsing and batch fan-out
// - errors: Typed errors and their classification into error kinds
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "rss-it-library/core/feed"
//	    "rss-it-library/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	feedService := feed.NewFeedService(deps)
//
//	result := feedService.ParseFeeds(ctx, []string{
//	    "https://example.com/feed.rss",
//	})
//	for _, detail := range result.Errors {
//	    fmt.Println(detail)
//	}
package core
