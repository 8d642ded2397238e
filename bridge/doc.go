// Package bridge implements the byte- and string-level entry points behind
// the exported native symbols.
//
// It holds one process-wide rssit.Client built lazily from configuration and
// converts between wire messages, the legacy JSON documents and the domain
// model. It contains no cgo so that it can be tested directly.
package bridge
