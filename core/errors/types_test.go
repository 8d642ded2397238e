package errors

import (
	"context"
	"errors"
	"fmt"
	neturl "net/url"
	"testing"

	"rss-it-library/core/domain"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "feed URL is empty",
	}

	expected := "validation error on field 'url': feed URL is empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{URL: "https://example.com/rss", StatusCode: 503}

	expected := "fetch https://example.com/rss: unexpected status 503"
	if err.Error() != expected {
		t.Errorf("FetchError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestParseError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("Failed to detect feed type")
	err := &ParseError{URL: "https://example.com", Cause: cause}

	if err.Error() != "parse https://example.com: Failed to detect feed type" {
		t.Errorf("ParseError.Error() = %v", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}

	empty := &ParseError{URL: "https://example.com"}
	if empty.Error() != "parse https://example.com: not a feed" {
		t.Errorf("ParseError.Error() without cause = %v", empty.Error())
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &ValidationError{Field: "url", Message: "bad"})
	if !IsValidation(wrapped) {
		t.Error("IsValidation should see through wrapping")
	}
	if IsFetch(wrapped) || IsParse(wrapped) {
		t.Error("IsFetch/IsParse should be false for a validation error")
	}

	if !IsFetch(WrapError(&FetchError{StatusCode: 404}, "get feed")) {
		t.Error("IsFetch should see through WrapError")
	}
	if !IsParse(&ParseError{}) {
		t.Error("IsParse should return true for ParseError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	original := errors.New("original error")
	wrapped := WrapError(original, "additional context")

	if wrapped.Error() != "additional context: original error" {
		t.Errorf("WrapError() = %v", wrapped.Error())
	}
	if !errors.Is(wrapped, original) {
		t.Error("wrapped error should match the original with errors.Is")
	}
}

type netErrorStub struct {
	timeout bool
}

func (n netErrorStub) Error() string   { return "stub" }
func (n netErrorStub) Timeout() bool   { return n.timeout }
func (n netErrorStub) Temporary() bool { return false }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domain.ErrorKind
	}{
		{name: "nil", err: nil, expected: domain.ErrorKindUnknown},
		{name: "validation", err: &ValidationError{Field: "url", Message: "empty"}, expected: domain.ErrorKindValidation},
		{name: "deadline exceeded", err: context.DeadlineExceeded, expected: domain.ErrorKindNetwork},
		{name: "canceled wrapped", err: fmt.Errorf("get: %w", context.Canceled), expected: domain.ErrorKindNetwork},
		{
			name:     "url error",
			err:      &neturl.Error{Op: "Get", URL: "https://example.com", Err: errors.New("connection refused")},
			expected: domain.ErrorKindNetwork,
		},
		{name: "net error", err: netErrorStub{timeout: true}, expected: domain.ErrorKindNetwork},
		{name: "http status", err: &FetchError{URL: "https://example.com", StatusCode: 500}, expected: domain.ErrorKindNetwork},
		{name: "parse failure", err: &ParseError{Cause: errors.New("Failed to detect feed type")}, expected: domain.ErrorKindParsing},
		{name: "default parsing", err: errors.New("parse failure"), expected: domain.ErrorKindParsing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestMessageAndDetail(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}

	validation := &ValidationError{Field: "url", Message: "feed URL is empty"}
	if Message(validation) != "feed URL is empty" {
		t.Errorf("Message() = %q", Message(validation))
	}

	detail := Detail(validation, "  ")
	if detail.Kind != domain.ErrorKindValidation || detail.Message != "feed URL is empty" || detail.URL != "" {
		t.Errorf("Detail() = %+v", detail)
	}

	detail = Detail(&FetchError{URL: "https://example.com", StatusCode: 404}, "https://example.com")
	if detail.Kind != domain.ErrorKindNetwork || detail.URL != "https://example.com" {
		t.Errorf("Detail() = %+v", detail)
	}
}
