// ABOUTME: Feed domain model represents a parsed RSS/Atom/JSON feed with its metadata
// ABOUTME: Feed types distinguish podcasts from plain RSS, Atom and JSON feeds

package domain

import "time"

// Feed types reported in Feed.FeedType
const (
	FeedTypeRSS     = "rss"
	FeedTypeAtom    = "atom"
	FeedTypeJSON    = "json"
	FeedTypePodcast = "podcast"
)

// Feed represents an RSS, Atom or JSON feed
type Feed struct {
	// URL is the feed URL exactly as it was requested
	URL string `json:"url"`

	// Title is the cleaned, human-readable title of the feed
	Title string `json:"title"`

	// Description is the cleaned feed description, empty when the feed has none
	Description string `json:"description,omitempty"`

	// Image is the feed artwork URL, empty when the feed has none
	Image string `json:"image,omitempty"`

	// Items contains the feed entries in document order
	Items []FeedItem `json:"items"`

	// Additional metadata fields
	Link        string     `json:"link,omitempty"`        // Website link
	Language    string     `json:"language,omitempty"`    // Feed language (e.g., "en-US")
	FeedType    string     `json:"feedType,omitempty"`    // rss, atom, json or podcast
	LastUpdated *time.Time `json:"lastUpdated,omitempty"` // Last update reported by the feed
}

// ItemCount returns the number of entries in the feed
func (f *Feed) ItemCount() int {
	if f == nil {
		return 0
	}
	return len(f.Items)
}
