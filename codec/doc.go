// Package codec decodes and encodes DNS messages to and from their
// RFC 1035 wire layout. All functions operate on caller-supplied buffers,
// keep no state between calls, and report failures as returned errors
// from the closed set in errors.go.
//
// The name codec is the base primitive: it classifies length bytes into
// labels, compression pointers, the root terminator, and the RFC-reserved
// band, and it never follows pointers itself. ResolveName layers pointer
// chasing on top with an explicit depth budget and cycle detection.
package codec
