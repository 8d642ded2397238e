// ABOUTME: FeedItem domain model represents an individual entry within a feed
// ABOUTME: Optional fields are empty strings or nil when the source did not provide them

package domain

import "time"

// FeedItem represents an individual item/entry in a feed
type FeedItem struct {
	// ID is the entry GUID, falling back to its link
	ID string `json:"id,omitempty"`

	// Title is the cleaned entry headline
	Title string `json:"title"`

	// Description is the cleaned entry summary
	Description string `json:"description,omitempty"`

	// Link is the URL to the full article
	Link string `json:"link,omitempty"`

	// Image is the entry artwork URL
	Image string `json:"image,omitempty"`

	// Published is when the item was published, nil when the feed gave no usable date
	Published *time.Time `json:"published,omitempty"`

	Author     string   `json:"author,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// PublishedRFC3339 returns the publication time formatted as RFC3339, or "" when unknown
func (fi *FeedItem) PublishedRFC3339() string {
	if fi.Published == nil || fi.Published.IsZero() {
		return ""
	}
	return fi.Published.Format(time.RFC3339)
}
