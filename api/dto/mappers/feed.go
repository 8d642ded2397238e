// ABOUTME: Mappers converting domain results to API response DTOs
// ABOUTME: Keeps the HTTP shape independent of the domain model

package mappers

import (
	"time"

	"rss-it-library/api/dto/responses"
	"rss-it-library/core/domain"
)

// ErrorDetailToResponse converts a domain error detail
func ErrorDetailToResponse(d domain.ErrorDetail) responses.ErrorResponse {
	return responses.ErrorResponse{
		Kind:    d.Kind.String(),
		Message: d.Message,
		URL:     d.URL,
	}
}

// FeedItemToResponse converts a domain feed item
func FeedItemToResponse(item *domain.FeedItem) responses.FeedItemResponse {
	return responses.FeedItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Image:       item.Image,
		Published:   item.PublishedRFC3339(),
		Author:      item.Author,
		Categories:  item.Categories,
	}
}

// FeedToResponse converts a domain feed
func FeedToResponse(feed *domain.Feed) responses.FeedResponse {
	if feed == nil {
		return responses.FeedResponse{Items: []responses.FeedItemResponse{}}
	}

	resp := responses.FeedResponse{
		URL:         feed.URL,
		Title:       feed.Title,
		Description: feed.Description,
		Image:       feed.Image,
		Link:        feed.Link,
		Language:    feed.Language,
		FeedType:    feed.FeedType,
		Items:       make([]responses.FeedItemResponse, 0, len(feed.Items)),
	}

	if feed.LastUpdated != nil && !feed.LastUpdated.IsZero() {
		resp.LastUpdated = feed.LastUpdated.Format(time.RFC3339)
	}

	for i := range feed.Items {
		resp.Items = append(resp.Items, FeedItemToResponse(&feed.Items[i]))
	}

	return resp
}

// ParseResultToResponse converts a batch parse result
func ParseResultToResponse(result *domain.ParseResult) responses.ParseFeedsResponse {
	resp := responses.ParseFeedsResponse{
		Status: result.Status.String(),
		Feeds:  make([]responses.FeedResponse, 0, len(result.Feeds)),
		Errors: make([]responses.ErrorResponse, 0, len(result.Errors)),
	}

	for _, feed := range result.Feeds {
		resp.Feeds = append(resp.Feeds, FeedToResponse(feed))
	}
	for _, d := range result.Errors {
		resp.Errors = append(resp.Errors, ErrorDetailToResponse(d))
	}

	return resp
}

// ValidationResultToResponse converts a validation result
func ValidationResultToResponse(result *domain.ValidationResult) responses.ValidateFeedResponse {
	resp := responses.ValidateFeedResponse{
		URL:   result.URL,
		Valid: result.Valid,
	}
	if result.Error != nil {
		e := ErrorDetailToResponse(*result.Error)
		resp.Error = &e
	}
	return resp
}
