package domain

// HeaderWireLength is the fixed size of the DNS message header.
const HeaderWireLength = 12

// MaxMessageLength is the 16-bit ceiling the wire format implies.
const MaxMessageLength = 65535

// Header is the fixed 12-byte DNS message header. The four counts state
// how many entries each section holds; nothing enforces that they match
// the sections actually present.
type Header struct {
	ID      uint16
	Flags   Flags
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// WireLength returns the header's wire size, always 12.
func (h Header) WireLength() int {
	return HeaderWireLength
}
