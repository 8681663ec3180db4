// Package wireref is the zero-copy twin of the codec package. It scans a
// DNS message once and records, per entry, only a start offset and a
// total wire length inside fixed-capacity containers, deferring field
// materialization until a caller asks for it.
//
// All offsets are 16-bit, matching the 65535-byte ceiling of the wire
// format. Ref values stay meaningful only while the originating buffer is
// unchanged and in scope; nothing here extends the buffer's lifetime.
// Exceeding a container capacity is a hard decode failure
// (codec.ErrCapacityExceeded), never a silent truncation.
package wireref
