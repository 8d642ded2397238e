// ABOUTME: Result models for feed validation and batch parsing
// ABOUTME: Carries per-URL error details and the aggregate status of a batch

package domain

import "strings"

// ErrorKind categorises a failure reported to callers
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindValidation
	ErrorKindNetwork
	ErrorKindParsing
	ErrorKindSerialization
	ErrorKindInternal
)

var errorKindNames = map[ErrorKind]string{
	ErrorKindUnknown:       "unknown",
	ErrorKindValidation:    "validation",
	ErrorKindNetwork:       "network",
	ErrorKindParsing:       "parsing",
	ErrorKindSerialization: "serialization",
	ErrorKindInternal:      "internal",
}

// String returns the lower-case name of the kind
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return errorKindNames[ErrorKindUnknown]
}

// ErrorDetail describes a single failure, optionally tied to a feed URL
type ErrorDetail struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	URL     string    `json:"url,omitempty"`
}

// NewErrorDetail creates an ErrorDetail with trimmed message and URL
func NewErrorDetail(kind ErrorKind, message, url string) ErrorDetail {
	return ErrorDetail{
		Kind:    kind,
		Message: strings.TrimSpace(message),
		URL:     strings.TrimSpace(url),
	}
}

// String renders the detail for text-based callers
func (d ErrorDetail) String() string {
	if d.URL == "" {
		return d.Kind.String() + ": " + d.Message
	}
	return d.Kind.String() + ": " + d.URL + ": " + d.Message
}

// ParseStatus is the aggregate outcome of a batch parse
type ParseStatus int

const (
	// ParseStatusSuccess means every requested feed parsed
	ParseStatusSuccess ParseStatus = iota
	// ParseStatusPartial means at least one feed parsed and at least one failed
	ParseStatusPartial
	// ParseStatusError means no feed parsed
	ParseStatusError
)

// String returns the lower-case name of the status
func (s ParseStatus) String() string {
	switch s {
	case ParseStatusSuccess:
		return "success"
	case ParseStatusPartial:
		return "partial"
	default:
		return "error"
	}
}

// StatusFor derives the batch status from the number of parsed feeds and errors
func StatusFor(feeds, errs int) ParseStatus {
	switch {
	case feeds == 0:
		return ParseStatusError
	case errs == 0:
		return ParseStatusSuccess
	default:
		return ParseStatusPartial
	}
}

// ParseResult is the outcome of parsing a batch of feed URLs
type ParseResult struct {
	Status ParseStatus
	Feeds  []*Feed
	Errors []ErrorDetail
}

// ValidationResult is the outcome of validating a single feed URL
type ValidationResult struct {
	URL   string
	Valid bool
	Error *ErrorDetail
}
