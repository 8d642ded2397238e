// ABOUTME: Conversion from gofeed documents to domain feeds
// ABOUTME: Cleans text fields and resolves image and date fallbacks

package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"rss-it-library/core/domain"
	"rss-it-library/pkg/utils/html"
	timeutil "rss-it-library/pkg/utils/time"
)

// convertFeed converts a parsed gofeed document into a domain feed.
// URL is always the requested URL, not the document's self link.
func convertFeed(feedURL string, parsed *gofeed.Feed) *domain.Feed {
	if parsed == nil {
		return &domain.Feed{URL: feedURL, Items: []domain.FeedItem{}}
	}

	feed := &domain.Feed{
		URL:         feedURL,
		Title:       html.CleanString(parsed.Title),
		Description: html.CleanString(parsed.Description),
		Image:       feedImage(parsed),
		Link:        parsed.Link,
		Language:    parsed.Language,
		FeedType:    detectFeedType(parsed),
		LastUpdated: timeutil.FirstParsed(
			[]*time.Time{parsed.UpdatedParsed, parsed.PublishedParsed},
			parsed.Updated, parsed.Published,
		),
		Items: make([]domain.FeedItem, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		feed.Items = append(feed.Items, convertItem(item))
	}

	return feed
}

// convertItem converts a gofeed item to a domain item
func convertItem(item *gofeed.Item) domain.FeedItem {
	feedItem := domain.FeedItem{
		ID:          item.GUID,
		Title:       html.CleanString(item.Title),
		Description: html.CleanString(item.Description),
		Link:        strings.TrimSpace(item.Link),
		Image:       itemImage(item),
		Published: timeutil.FirstParsed(
			[]*time.Time{item.PublishedParsed, item.UpdatedParsed},
			item.Published, item.Updated,
		),
		Categories: item.Categories,
	}

	if feedItem.ID == "" {
		feedItem.ID = feedItem.Link
	}

	if item.Author != nil && item.Author.Name != "" {
		feedItem.Author = item.Author.Name
	} else if item.ITunesExt != nil && item.ITunesExt.Author != "" {
		feedItem.Author = item.ITunesExt.Author
	}

	return feedItem
}

// feedImage returns the channel image, falling back to the iTunes artwork
func feedImage(parsed *gofeed.Feed) string {
	if parsed.Image != nil && parsed.Image.URL != "" {
		return parsed.Image.URL
	}
	if parsed.ITunesExt != nil && parsed.ITunesExt.Image != "" {
		return parsed.ITunesExt.Image
	}
	return ""
}

// itemImage finds an item image.
// Priority: item image, first image enclosure, iTunes image.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}

	return ""
}

// detectFeedType reports podcast for feeds with iTunes metadata or media enclosures,
// otherwise the document format gofeed detected
func detectFeedType(parsed *gofeed.Feed) string {
	if parsed.ITunesExt != nil {
		return domain.FeedTypePodcast
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		for _, enc := range item.Enclosures {
			if enc != nil && (strings.HasPrefix(enc.Type, "audio/") || strings.HasPrefix(enc.Type, "video/")) {
				return domain.FeedTypePodcast
			}
		}
	}

	switch parsed.FeedType {
	case "atom":
		return domain.FeedTypeAtom
	case "json":
		return domain.FeedTypeJSON
	default:
		return domain.FeedTypeRSS
	}
}
