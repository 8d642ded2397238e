// ABOUTME: Message types exchanged over the native interface
// ABOUTME: Field numbers and enum values are part of the wire contract and must not change

package wire

// ErrorKind categorises a failure
type ErrorKind int32

const (
	ErrorKindUnknown       ErrorKind = 0
	ErrorKindValidation    ErrorKind = 1
	ErrorKindNetwork       ErrorKind = 2
	ErrorKindParsing       ErrorKind = 3
	ErrorKindSerialization ErrorKind = 4
	ErrorKindInternal      ErrorKind = 5
)

// ParseFeedsStatus is the aggregate outcome of a parse request
type ParseFeedsStatus int32

const (
	ParseFeedsStatusSuccess ParseFeedsStatus = 0
	ParseFeedsStatusPartial ParseFeedsStatus = 1
	ParseFeedsStatusError   ParseFeedsStatus = 2
)

// Message is implemented by every wire message
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// ErrorDetail describes a single failure
type ErrorDetail struct {
	Kind    ErrorKind // 1
	Message string    // 2
	URL     string    // 3
}

// ValidateFeedRequest asks whether a URL serves a feed
type ValidateFeedRequest struct {
	URL string // 1
}

// ValidateFeedResponse answers a ValidateFeedRequest
type ValidateFeedResponse struct {
	Valid bool         // 1
	Error *ErrorDetail // 2
}

// ParseFeedsRequest lists the feeds to fetch
type ParseFeedsRequest struct {
	URLs []string // 1
}

// FeedItem is one entry of a parsed feed. Nil optional fields are absent on the wire.
type FeedItem struct {
	Title       string  // 1
	Description *string // 2
	Link        *string // 3
	Image       *string // 4
	Published   *string // 5, RFC3339
}

// Feed is a parsed feed
type Feed struct {
	URL         string      // 1
	Title       string      // 2
	Description *string     // 3
	Image       *string     // 4
	Items       []*FeedItem // 5
}

// ParseFeedsResponse answers a ParseFeedsRequest
type ParseFeedsResponse struct {
	Status     ParseFeedsStatus // 1
	Feeds      []*Feed          // 2
	Errors     []*ErrorDetail   // 3
	FatalError *ErrorDetail     // 4
}

// String returns a pointer to s, for optional fields
func String(s string) *string {
	return &s
}

// StringValue dereferences an optional field, returning "" when absent
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
