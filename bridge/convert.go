// ABOUTME: Conversion from domain results to wire messages
// ABOUTME: Empty optional strings are left absent on the wire

package bridge

import (
	"rss-it-library/core/domain"
	"rss-it-library/pkg/wire"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return wire.String(s)
}

func toWireDetail(d domain.ErrorDetail) *wire.ErrorDetail {
	return &wire.ErrorDetail{
		Kind:    wire.ErrorKind(d.Kind),
		Message: d.Message,
		URL:     d.URL,
	}
}

func toWireStatus(s domain.ParseStatus) wire.ParseFeedsStatus {
	switch s {
	case domain.ParseStatusSuccess:
		return wire.ParseFeedsStatusSuccess
	case domain.ParseStatusPartial:
		return wire.ParseFeedsStatusPartial
	default:
		return wire.ParseFeedsStatusError
	}
}

func toWireFeed(f *domain.Feed) *wire.Feed {
	out := &wire.Feed{
		URL:         f.URL,
		Title:       f.Title,
		Description: optional(f.Description),
		Image:       optional(f.Image),
		Items:       make([]*wire.FeedItem, 0, len(f.Items)),
	}

	for i := range f.Items {
		item := &f.Items[i]
		out.Items = append(out.Items, &wire.FeedItem{
			Title:       item.Title,
			Description: optional(item.Description),
			Link:        optional(item.Link),
			Image:       optional(item.Image),
			Published:   optional(item.PublishedRFC3339()),
		})
	}

	return out
}

func toValidateResponse(r *domain.ValidationResult) *wire.ValidateFeedResponse {
	resp := &wire.ValidateFeedResponse{Valid: r.Valid}
	if r.Error != nil {
		resp.Error = toWireDetail(*r.Error)
	}
	return resp
}

func toParseResponse(r *domain.ParseResult) *wire.ParseFeedsResponse {
	resp := &wire.ParseFeedsResponse{
		Status: toWireStatus(r.Status),
		Feeds:  make([]*wire.Feed, 0, len(r.Feeds)),
		Errors: make([]*wire.ErrorDetail, 0, len(r.Errors)),
	}
	for _, f := range r.Feeds {
		resp.Feeds = append(resp.Feeds, toWireFeed(f))
	}
	for _, d := range r.Errors {
		resp.Errors = append(resp.Errors, toWireDetail(d))
	}
	return resp
}
