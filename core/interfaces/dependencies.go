// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the feed service

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores parsed feeds between calls; nil disables caching
	Cache Cache

	// HTTPClient fetches feed documents
	HTTPClient HTTPClient

	// Logger provides structured logging; nil disables logging
	Logger Logger
}
