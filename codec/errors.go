package codec

import "errors"

// The closed error set shared by the codec, wireref, and builder packages.
// Decode failures never mutate caller state; encode failures may leave a
// partially written destination buffer that the caller must discard.
var (
	// ErrInvalidHeaderLength reports a buffer shorter than the fixed
	// 12-byte header where a header is required.
	ErrInvalidHeaderLength = errors.New("dns header must be at least 12 bytes")

	// ErrInsufficientData reports a read or write that would exceed the
	// buffer bounds.
	ErrInsufficientData = errors.New("insufficient data to decode dns message")

	// ErrInvalidDomainName reports a malformed domain name: an attempt to
	// encode a Reserved element, or a text label longer than 63 bytes.
	ErrInvalidDomainName = errors.New("invalid domain name format")

	// ErrCapacityExceeded reports a message whose cardinality exceeds the
	// wireref package's fixed container capacities.
	ErrCapacityExceeded = errors.New("fixed decode capacity exceeded")

	// ErrPointerLoop reports a compression pointer chain that revisits an
	// offset or exceeds the resolution depth budget.
	ErrPointerLoop = errors.New("compression pointer loop detected")
)
