// Package wire implements the binary messages exchanged with the host
// application over the native interface.
//
// Messages use the Protocol Buffers (proto3) encoding and are encoded and
// decoded field by field with protowire. Responses crossing the boundary are
// framed with a 4-byte little-endian length prefix.
package wire
