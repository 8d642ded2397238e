// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Defines the JSON shape of parsed feeds, validation results and errors

package responses

// ErrorResponse describes a single failure
type ErrorResponse struct {
	Kind    string `json:"kind" doc:"Error category: validation, network, parsing, serialization or internal"`
	Message string `json:"message" doc:"Human-readable description"`
	URL     string `json:"url,omitempty" doc:"Feed URL the error refers to"`
}

// FeedItemResponse represents a single feed entry
type FeedItemResponse struct {
	ID          string   `json:"id,omitempty" doc:"Entry GUID or link"`
	Title       string   `json:"title" doc:"Cleaned entry title"`
	Description string   `json:"description,omitempty" doc:"Cleaned entry summary"`
	Link        string   `json:"link,omitempty" doc:"Entry URL"`
	Image       string   `json:"image,omitempty" doc:"Entry image URL"`
	Published   string   `json:"published,omitempty" doc:"Publication time in RFC3339"`
	Author      string   `json:"author,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// FeedResponse represents a parsed feed
type FeedResponse struct {
	URL         string             `json:"url" doc:"Feed URL as requested"`
	Title       string             `json:"title" doc:"Cleaned feed title"`
	Description string             `json:"description,omitempty" doc:"Cleaned feed description"`
	Image       string             `json:"image,omitempty" doc:"Feed artwork URL"`
	Link        string             `json:"link,omitempty" doc:"Website URL"`
	Language    string             `json:"language,omitempty"`
	FeedType    string             `json:"feedType,omitempty" doc:"rss, atom, json or podcast"`
	LastUpdated string             `json:"lastUpdated,omitempty" doc:"Last update time in RFC3339"`
	Items       []FeedItemResponse `json:"items"`
}

// ParseFeedsResponse is the body of POST /parse
type ParseFeedsResponse struct {
	Status string          `json:"status" enum:"success,partial,error" doc:"Aggregate outcome of the batch"`
	Feeds  []FeedResponse  `json:"feeds"`
	Errors []ErrorResponse `json:"errors"`
}

// ValidateFeedResponse is the body of POST /validate
type ValidateFeedResponse struct {
	URL   string         `json:"url"`
	Valid bool           `json:"valid"`
	Error *ErrorResponse `json:"error,omitempty"`
}
