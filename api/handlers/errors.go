// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts request-level error details to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"rss-it-library/core/domain"
)

// toHumaError converts a request-level error detail to a Huma HTTP error
func toHumaError(d domain.ErrorDetail) error {
	switch d.Kind {
	case domain.ErrorKindValidation:
		return huma.Error400BadRequest(d.Message)
	case domain.ErrorKindInternal:
		return huma.Error503ServiceUnavailable(d.Message)
	case domain.ErrorKindNetwork:
		return huma.Error502BadGateway(d.Message)
	default:
		return huma.Error500InternalServerError(d.Message)
	}
}
