// ABOUTME: Protocol Buffers encoding and decoding for wire messages
// ABOUTME: Unknown fields are skipped and strings are forced to valid UTF-8 on encode

package wire

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxPayloadSize is the largest payload a frame can describe
const MaxPayloadSize = math.MaxUint32

// ErrPayloadTooLarge is returned when an encoded message cannot be framed
var ErrPayloadTooLarge = errors.New("wire: payload exceeds frame limit")

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	return appendStringAlways(b, num, s)
}

func appendStringAlways(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, strings.ToValidUTF8(s, "\uFFFD"))
}

func appendOptionalString(b []byte, num protowire.Number, s *string) []byte {
	if s == nil {
		return b
	}
	return appendStringAlways(b, num, *s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, m []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

func checkSize(b []byte) ([]byte, error) {
	if uint64(len(b)) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}
	return b, nil
}

// fieldFunc consumes the value of a known field. It reports false when the wire
// type does not match, in which case the field is skipped as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (n int, known bool, err error)

// decodeFields walks every field of a message, skipping unknown ones
func decodeFields(msg string, b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%s: %w", msg, protowire.ParseError(n))
		}
		b = b[n:]

		n, known, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("%s: field %d: %w", msg, num, err)
		}
		if !known {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%s: field %d: %w", msg, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte) (string, int, bool, error) {
	if typ != protowire.BytesType {
		return "", 0, false, nil
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", n, true, nil
	}
	if !utf8.ValidString(v) {
		return "", 0, true, errors.New("invalid UTF-8")
	}
	return v, n, true, nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, bool) {
	if typ != protowire.VarintType {
		return 0, 0, false
	}
	v, n := protowire.ConsumeVarint(b)
	return v, n, true
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, bool) {
	if typ != protowire.BytesType {
		return nil, 0, false
	}
	v, n := protowire.ConsumeBytes(b)
	return v, n, true
}

// Marshal encodes the message
func (m *ErrorDetail) Marshal() ([]byte, error) {
	return checkSize(m.appendTo(nil))
}

func (m *ErrorDetail) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendVarint(b, 1, uint64(int64(m.Kind)))
	b = appendString(b, 2, m.Message)
	b = appendString(b, 3, m.URL)
	return b
}

// Unmarshal decodes the message, replacing its contents
func (m *ErrorDetail) Unmarshal(data []byte) error {
	*m = ErrorDetail{}
	return decodeFields("ErrorDetail", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			v, n, ok := consumeVarint(typ, b)
			m.Kind = ErrorKind(int32(v))
			return n, ok, nil
		case 2:
			v, n, ok, err := consumeString(typ, b)
			m.Message = v
			return n, ok, err
		case 3:
			v, n, ok, err := consumeString(typ, b)
			m.URL = v
			return n, ok, err
		}
		return 0, false, nil
	})
}

// Marshal encodes the message
func (m *ValidateFeedRequest) Marshal() ([]byte, error) {
	return checkSize(appendString(nil, 1, m.URL))
}

// Unmarshal decodes the message, replacing its contents
func (m *ValidateFeedRequest) Unmarshal(data []byte) error {
	*m = ValidateFeedRequest{}
	return decodeFields("ValidateFeedRequest", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == 1 {
			v, n, ok, err := consumeString(typ, b)
			m.URL = v
			return n, ok, err
		}
		return 0, false, nil
	})
}

// Marshal encodes the message
func (m *ValidateFeedResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendBool(b, 1, m.Valid)
	if m.Error != nil {
		b = appendMessage(b, 2, m.Error.appendTo(nil))
	}
	return checkSize(b)
}

// Unmarshal decodes the message, replacing its contents
func (m *ValidateFeedResponse) Unmarshal(data []byte) error {
	*m = ValidateFeedResponse{}
	return decodeFields("ValidateFeedResponse", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			v, n, ok := consumeVarint(typ, b)
			m.Valid = protowire.DecodeBool(v)
			return n, ok, nil
		case 2:
			v, n, ok := consumeBytes(typ, b)
			if !ok || n < 0 {
				return n, ok, nil
			}
			m.Error = &ErrorDetail{}
			return n, true, m.Error.Unmarshal(v)
		}
		return 0, false, nil
	})
}

// Marshal encodes the message
func (m *ParseFeedsRequest) Marshal() ([]byte, error) {
	var b []byte
	for _, u := range m.URLs {
		b = appendStringAlways(b, 1, u)
	}
	return checkSize(b)
}

// Unmarshal decodes the message, replacing its contents
func (m *ParseFeedsRequest) Unmarshal(data []byte) error {
	*m = ParseFeedsRequest{}
	return decodeFields("ParseFeedsRequest", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == 1 {
			v, n, ok, err := consumeString(typ, b)
			if ok && n >= 0 && err == nil {
				m.URLs = append(m.URLs, v)
			}
			return n, ok, err
		}
		return 0, false, nil
	})
}

// Marshal encodes the message
func (m *FeedItem) Marshal() ([]byte, error) {
	return checkSize(m.appendTo(nil))
}

func (m *FeedItem) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Title)
	b = appendOptionalString(b, 2, m.Description)
	b = appendOptionalString(b, 3, m.Link)
	b = appendOptionalString(b, 4, m.Image)
	b = appendOptionalString(b, 5, m.Published)
	return b
}

// Unmarshal decodes the message, replacing its contents
func (m *FeedItem) Unmarshal(data []byte) error {
	*m = FeedItem{}
	return decodeFields("FeedItem", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var target **string
		switch num {
		case 1:
			v, n, ok, err := consumeString(typ, b)
			m.Title = v
			return n, ok, err
		case 2:
			target = &m.Description
		case 3:
			target = &m.Link
		case 4:
			target = &m.Image
		case 5:
			target = &m.Published
		default:
			return 0, false, nil
		}

		v, n, ok, err := consumeString(typ, b)
		if ok && n >= 0 && err == nil {
			*target = String(v)
		}
		return n, ok, err
	})
}

// Marshal encodes the message
func (m *Feed) Marshal() ([]byte, error) {
	return checkSize(m.appendTo(nil))
}

func (m *Feed) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.URL)
	b = appendString(b, 2, m.Title)
	b = appendOptionalString(b, 3, m.Description)
	b = appendOptionalString(b, 4, m.Image)
	for _, item := range m.Items {
		b = appendMessage(b, 5, item.appendTo(nil))
	}
	return b
}

// Unmarshal decodes the message, replacing its contents
func (m *Feed) Unmarshal(data []byte) error {
	*m = Feed{}
	return decodeFields("Feed", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case 1:
			v, n, ok, err := consumeString(typ, b)
			m.URL = v
			return n, ok, err
		case 2:
			v, n, ok, err := consumeString(typ, b)
			m.Title = v
			return n, ok, err
		case 3, 4:
			v, n, ok, err := consumeString(typ, b)
			if ok && n >= 0 && err == nil {
				if num == 3 {
					m.Description = String(v)
				} else {
					m.Image = String(v)
				}
			}
			return n, ok, err
		case 5:
			v, n, ok := consumeBytes(typ, b)
			if !ok || n < 0 {
				return n, ok, nil
			}
			item := &FeedItem{}
			if err := item.Unmarshal(v); err != nil {
				return n, true, err
			}
			m.Items = append(m.Items, item)
			return n, true, nil
		}
		return 0, false, nil
	})
}

// Marshal encodes the message
func (m *ParseFeedsResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, uint64(int64(m.Status)))
	for _, feed := range m.Feeds {
		b = appendMessage(b, 2, feed.appendTo(nil))
	}
	for _, detail := range m.Errors {
		b = appendMessage(b, 3, detail.appendTo(nil))
	}
	if m.FatalError != nil {
		b = appendMessage(b, 4, m.FatalError.appendTo(nil))
	}
	return checkSize(b)
}

// Unmarshal decodes the message, replacing its contents
func (m *ParseFeedsResponse) Unmarshal(data []byte) error {
	*m = ParseFeedsResponse{}
	return decodeFields("ParseFeedsResponse", data, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == 1 {
			v, n, ok := consumeVarint(typ, b)
			m.Status = ParseFeedsStatus(int32(v))
			return n, ok, nil
		}
		if num < 2 || num > 4 {
			return 0, false, nil
		}

		v, n, ok := consumeBytes(typ, b)
		if !ok || n < 0 {
			return n, ok, nil
		}

		switch num {
		case 2:
			feed := &Feed{}
			if err := feed.Unmarshal(v); err != nil {
				return n, true, err
			}
			m.Feeds = append(m.Feeds, feed)
		case 3:
			detail := &ErrorDetail{}
			if err := detail.Unmarshal(v); err != nil {
				return n, true, err
			}
			m.Errors = append(m.Errors, detail)
		case 4:
			m.FatalError = &ErrorDetail{}
			if err := m.FatalError.Unmarshal(v); err != nil {
				return n, true, err
			}
		}
		return n, true, nil
	})
}
