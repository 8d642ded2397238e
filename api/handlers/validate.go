// ABOUTME: Validation handler for checking whether a URL serves a feed
// ABOUTME: Fetches and parses the document, reporting the failure category when it is not a feed

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"rss-it-library/api/dto/mappers"
	"rss-it-library/api/dto/responses"
	"rss-it-library/core/domain"
)

// ValidateHandler handles feed validation
type ValidateHandler struct {
	client FeedClient
}

// NewValidateHandler creates a new validation handler
func NewValidateHandler(client FeedClient) *ValidateHandler {
	return &ValidateHandler{client: client}
}

// RegisterRoutes registers validation routes
func (h *ValidateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validateFeed",
		Method:      http.MethodPost,
		Path:        "/validate",
		Summary:     "Validate a feed URL",
		Description: "Checks whether the URL serves a document that parses as an RSS, Atom or JSON feed",
		Tags:        []string{"Validation"},
	}, h.ValidateFeed)
}

// ValidateInput defines the input for feed validation
type ValidateInput struct {
	Body struct {
		URL string `json:"url" doc:"Feed URL to validate"`
	}
}

// ValidateOutput defines the output for feed validation
type ValidateOutput struct {
	Body responses.ValidateFeedResponse
}

// ValidateFeed handles the POST /validate endpoint.
// An invalid feed is a successful answer; only an unavailable service is an HTTP error.
func (h *ValidateHandler) ValidateFeed(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	result := h.client.Validate(ctx, input.Body.URL)

	if result.Error != nil && result.Error.Kind == domain.ErrorKindInternal {
		return nil, toHumaError(*result.Error)
	}

	return &ValidateOutput{Body: mappers.ValidationResultToResponse(result)}, nil
}
