// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Provides the HTTP endpoint for batch feed parsing

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"rss-it-library/api/dto/mappers"
	"rss-it-library/api/dto/responses"
	"rss-it-library/core/domain"
)

// FeedClient is the subset of the library client the handlers need
type FeedClient interface {
	Validate(ctx context.Context, url string) *domain.ValidationResult
	ParseFeeds(ctx context.Context, urls []string) *domain.ParseResult
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	client FeedClient
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(client FeedClient) *FeedHandler {
	return &FeedHandler{client: client}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parseFeeds",
		Method:      http.MethodPost,
		Path:        "/parse",
		Summary:     "Parse multiple feeds",
		Description: "Fetches and parses RSS, Atom and JSON feeds concurrently. Per-feed failures are reported alongside the parsed feeds.",
		Tags:        []string{"Feeds"},
	}, h.ParseFeeds)
}

// ParseFeedsInput defines the input for the ParseFeeds operation
type ParseFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" maxItems:"100" doc:"Feed URLs to fetch"`
	}
}

// ParseFeedsOutput defines the output for the ParseFeeds operation
type ParseFeedsOutput struct {
	Body responses.ParseFeedsResponse
}

// ParseFeeds handles the POST /parse endpoint
func (h *FeedHandler) ParseFeeds(ctx context.Context, input *ParseFeedsInput) (*ParseFeedsOutput, error) {
	result := h.client.ParseFeeds(ctx, input.Body.URLs)

	// A single error without a URL means the request itself was rejected
	if result.Status == domain.ParseStatusError && len(result.Errors) == 1 && result.Errors[0].URL == "" {
		return nil, toHumaError(result.Errors[0])
	}

	return &ParseFeedsOutput{Body: mappers.ParseResultToResponse(result)}, nil
}
