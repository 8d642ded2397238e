// ABOUTME: Binary entry points exchanging framed protobuf messages
// ABOUTME: Every failure is reported inside the response; nothing panics across the boundary

package bridge

import (
	"context"
	"fmt"

	"rss-it-library/core/domain"
	"rss-it-library/pkg/wire"
)

// Validate decodes a ValidateFeedRequest and returns a framed ValidateFeedResponse
func Validate(data []byte) []byte {
	var req wire.ValidateFeedRequest
	if err := req.Unmarshal(data); err != nil {
		return encode(&wire.ValidateFeedResponse{
			Error: detail(domain.ErrorKindSerialization, fmt.Sprintf("decode validate request: %v", err), ""),
		}, validateFallback(""))
	}

	client, _, err := shared.get()
	if err != nil {
		return encode(&wire.ValidateFeedResponse{
			Error: detail(domain.ErrorKindInternal, err.Error(), req.URL),
		}, validateFallback(req.URL))
	}

	result := client.Validate(context.Background(), req.URL)
	return encode(toValidateResponse(result), validateFallback(req.URL))
}

// Parse decodes a ParseFeedsRequest and returns a framed ParseFeedsResponse.
// The whole batch runs under the configured parse timeout.
func Parse(data []byte) []byte {
	var req wire.ParseFeedsRequest
	if err := req.Unmarshal(data); err != nil {
		return encode(&wire.ParseFeedsResponse{
			Status:     wire.ParseFeedsStatusError,
			FatalError: detail(domain.ErrorKindSerialization, fmt.Sprintf("decode parse request: %v", err), ""),
		}, parseFallback)
	}

	client, timeout, err := shared.get()
	if err != nil {
		return encode(&wire.ParseFeedsResponse{
			Status:     wire.ParseFeedsStatusError,
			FatalError: detail(domain.ErrorKindInternal, err.Error(), ""),
		}, parseFallback)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := client.ParseFeeds(ctx, req.URLs)
	return encode(toParseResponse(result), parseFallback)
}

func detail(kind domain.ErrorKind, message, url string) *wire.ErrorDetail {
	return toWireDetail(domain.NewErrorDetail(kind, message, url))
}

func validateFallback(url string) func(error) wire.Message {
	return func(err error) wire.Message {
		return &wire.ValidateFeedResponse{
			Error: detail(domain.ErrorKindInternal, fmt.Sprintf("encode validate response: %v", err), url),
		}
	}
}

func parseFallback(err error) wire.Message {
	return &wire.ParseFeedsResponse{
		Status:     wire.ParseFeedsStatusError,
		FatalError: detail(domain.ErrorKindInternal, fmt.Sprintf("encode parse response: %v", err), ""),
	}
}

// encode frames msg. When msg cannot be encoded the fallback is framed instead,
// and when that fails too the frame carries an empty payload.
func encode(msg wire.Message, fallback func(error) wire.Message) []byte {
	framed, err := wire.Encode(msg)
	if err == nil {
		return framed
	}

	if fb := fallback(err); fb != nil {
		if framed, fbErr := wire.Encode(fb); fbErr == nil {
			return framed
		}
	}

	empty, _ := wire.Frame(nil)
	return empty
}
