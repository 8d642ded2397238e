// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies failures into the error kinds reported across the FFI boundary

package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	neturl "net/url"

	"rss-it-library/core/domain"
)

// ValidationError represents a rejected input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a feed endpoint that answered with a non-success status
type FetchError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// ParseError represents a document that could not be read as a feed
type ParseError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("parse %s: not a feed", e.URL)
	}
	return fmt.Sprintf("parse %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Classify maps an error produced while validating or fetching a feed to an ErrorKind.
// Cancellation and deadlines count as network failures.
func Classify(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrorKindUnknown
	}

	if IsValidation(err) {
		return domain.ErrorKindValidation
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrorKindNetwork
	}

	if IsFetch(err) {
		return domain.ErrorKindNetwork
	}

	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return domain.ErrorKindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrorKindNetwork
	}

	return domain.ErrorKindParsing
}

// Message returns the caller-facing message for err.
// Validation errors report only their message, without the field prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}

// Detail builds an ErrorDetail for err attributed to url
func Detail(err error, url string) domain.ErrorDetail {
	return domain.NewErrorDetail(Classify(err), Message(err), url)
}
