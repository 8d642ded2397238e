// ABOUTME: Length-prefixed framing for buffers handed to the host
// ABOUTME: A frame is a uint32 little-endian payload length followed by the payload

package wire

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of the length prefix
const HeaderSize = 4

// Frame prefixes payload with its length
func Frame(payload []byte) ([]byte, error) {
	if uint64(len(payload)) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[:HeaderSize], uint32(len(payload)))
	copy(out[HeaderSize:], payload)
	return out, nil
}

// Unframe returns the payload of a frame. Trailing bytes after the payload are rejected.
func Unframe(buf []byte) ([]byte, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("wire: frame shorter than header: %d bytes", len(buf))
	}

	size := binary.LittleEndian.Uint32(buf[:HeaderSize])
	if uint64(len(buf)-HeaderSize) != uint64(size) {
		return nil, fmt.Errorf("wire: frame declares %d payload bytes, has %d", size, len(buf)-HeaderSize)
	}

	return buf[HeaderSize:], nil
}

// Encode marshals msg and frames the result
func Encode(msg Message) ([]byte, error) {
	payload, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	return Frame(payload)
}
