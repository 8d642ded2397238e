// ABOUTME: Text entry points of the legacy native interface
// ABOUTME: Feeds are returned in gofeed's JSON shape instead of protobuf messages

package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"rss-it-library/core/domain"
)

// LegacyFeed pairs a requested URL with the feed in gofeed's JSON shape
type LegacyFeed struct {
	URL  string       `json:"url"`
	Feed *gofeed.Feed `json:"feed"`
}

// LegacyResponse is the JSON document returned by ParseJSON
type LegacyResponse struct {
	Status string       `json:"status"`
	Errors []string     `json:"errors"`
	Data   []LegacyFeed `json:"data"`
}

type legacyRequest struct {
	URLs []string `json:"urls"`
}

// ValidateURL reports whether url serves a parseable feed
func ValidateURL(url string) bool {
	client, _, err := shared.get()
	if err != nil {
		return false
	}
	return client.Validate(context.Background(), url).Valid
}

// ParseJSON parses the feeds listed in input, either {"urls": [...]} or a bare
// JSON array, and returns a LegacyResponse document
func ParseJSON(input string) string {
	urls, err := decodeLegacyRequest(input)
	if err != nil {
		return encodeLegacy(legacyError(fmt.Sprintf("decode parse request: %v", err)))
	}

	client, timeout, err := shared.get()
	if err != nil {
		return encodeLegacy(legacyError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := client.ParseSourceFeeds(ctx, urls)

	resp := &LegacyResponse{
		Status: result.Status.String(),
		Errors: make([]string, 0, len(result.Errors)),
		Data:   make([]LegacyFeed, 0, len(result.Feeds)),
	}
	for _, d := range result.Errors {
		resp.Errors = append(resp.Errors, d.String())
	}
	for _, f := range result.Feeds {
		resp.Data = append(resp.Data, LegacyFeed{URL: f.URL, Feed: f.Feed})
	}

	return encodeLegacy(resp)
}

func decodeLegacyRequest(input string) ([]string, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(trimmed), &urls); err != nil {
			return nil, err
		}
		return urls, nil
	}

	var req legacyRequest
	if err := json.Unmarshal([]byte(trimmed), &req); err != nil {
		return nil, err
	}
	return req.URLs, nil
}

func legacyError(message string) *LegacyResponse {
	return &LegacyResponse{
		Status: domain.ParseStatusError.String(),
		Errors: []string{message},
		Data:   []LegacyFeed{},
	}
}

func encodeLegacy(resp *LegacyResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		data, _ = json.Marshal(legacyError(fmt.Sprintf("encode parse response: %v", err)))
	}
	return string(data)
}
