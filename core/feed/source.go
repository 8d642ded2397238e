// ABOUTME: Source feeds are documents exactly as gofeed decoded them, before conversion
// ABOUTME: Serves callers that consume gofeed's own JSON shape instead of the domain model

package feed

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"

	"rss-it-library/core/domain"
)

// SourceFeed pairs a requested URL with its decoded document
type SourceFeed struct {
	URL  string
	Feed *gofeed.Feed
}

// SourceResult is the outcome of ParseSourceFeeds
type SourceResult struct {
	Status domain.ParseStatus
	Feeds  []SourceFeed
	Errors []domain.ErrorDetail
}

// ParseSourceFeed fetches and decodes a single feed without converting it.
// Titles keep their markup and dates their original text.
func (s *FeedService) ParseSourceFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := checkURL(feedURL); err != nil {
		return nil, err
	}

	var cached gofeed.Feed
	if s.loadCached(ctx, sourceCacheKeyPrefix+feedURL, feedURL, &cached) {
		return &cached, nil
	}

	parsed, err := s.fetchDocument(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	s.storeCached(ctx, sourceCacheKeyPrefix+feedURL, feedURL, parsed)

	return parsed, nil
}

// ParseSourceFeeds is ParseFeeds for unconverted documents. Ordering, failure
// reporting and the status rule are the same.
func (s *FeedService) ParseSourceFeeds(ctx context.Context, urls []string) *SourceResult {
	result := &SourceResult{
		Status: domain.ParseStatusError,
		Feeds:  make([]SourceFeed, 0, len(urls)),
		Errors: make([]domain.ErrorDetail, 0),
	}

	if len(urls) == 0 {
		result.Errors = append(result.Errors, emptyRequestDetail())
		return result
	}

	feeds := make([]*gofeed.Feed, len(urls))
	failures := s.fanOut(ctx, urls, func(ctx context.Context, i int, feedURL string) error {
		feed, err := s.ParseSourceFeed(ctx, feedURL)
		feeds[i] = feed
		return err
	})

	for i, candidate := range urls {
		if feeds[i] != nil {
			result.Feeds = append(result.Feeds, SourceFeed{URL: strings.TrimSpace(candidate), Feed: feeds[i]})
		}
		if failures[i] != nil {
			result.Errors = append(result.Errors, *failures[i])
		}
	}

	result.Status = domain.StatusFor(len(result.Feeds), len(result.Errors))
	return result
}
