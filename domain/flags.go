package domain

// OpCode is the 4-bit operation code in the DNS header flags word.
type OpCode uint8

// DNS OpCode constants (RFC 1035, RFC 3425, RFC 2136, RFC 6891).
const (
	OpCodeQuery  OpCode = 0 // QUERY - standard query
	OpCodeIQuery OpCode = 1 // IQUERY - inverse query (obsolete)
	OpCodeStatus OpCode = 2 // STATUS - server status request
	OpCodeNotify OpCode = 4 // NOTIFY - zone change notification
	OpCodeUpdate OpCode = 5 // UPDATE - dynamic update
)

var opCodeNames = map[OpCode]string{
	OpCodeQuery:  "QUERY",
	OpCodeIQuery: "IQUERY",
	OpCodeStatus: "STATUS",
	OpCodeNotify: "NOTIFY",
	OpCodeUpdate: "UPDATE",
}

// String returns the textual representation of the OpCode.
func (o OpCode) String() string {
	if s, ok := opCodeNames[o]; ok {
		return s
	}
	return unknownValue(uint16(o))
}

// Flag bit positions within the 16-bit flags word. The word is laid out as
//
//	 0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15
//	QR |   OpCode  |AA|TC|RD|RA|   Z    |   RCODE
//
// with QR as the most significant bit. The three Z bits are reserved by
// RFC 1035 and kept as a single field rather than decomposed into the
// later AD/CD extension bits.
const (
	flagQR     uint16 = 1 << 15
	flagAA     uint16 = 1 << 10
	flagTC     uint16 = 1 << 9
	flagRD     uint16 = 1 << 8
	flagRA     uint16 = 1 << 7
	opCodeBits        = 11 // shift for the 4-bit opcode
	zBits             = 4  // shift for the 3 reserved bits
)

// Flags is the decomposed DNS header flags word.
type Flags struct {
	// QR is true for responses, false for queries.
	QR bool
	// OpCode is the 4-bit operation code.
	OpCode OpCode
	// AA marks an authoritative answer.
	AA bool
	// TC marks a truncated message.
	TC bool
	// RD asks the server to pursue the query recursively.
	RD bool
	// RA signals that recursion is available.
	RA bool
	// Z holds the 3 reserved bits between RA and RCODE.
	Z uint8
	// RCode is the 4-bit response code.
	RCode RCode
}

// FlagsFromUint16 decomposes a 16-bit flags word into a Flags value.
func FlagsFromUint16(v uint16) Flags {
	return Flags{
		QR:     v&flagQR != 0,
		OpCode: OpCode(v >> opCodeBits & 0x0F),
		AA:     v&flagAA != 0,
		TC:     v&flagTC != 0,
		RD:     v&flagRD != 0,
		RA:     v&flagRA != 0,
		Z:      uint8(v >> zBits & 0x07),
		RCode:  RCode(v & 0x0F),
	}
}

// Uint16 packs the Flags back into the 16-bit wire representation.
// It is the exact inverse of FlagsFromUint16.
func (f Flags) Uint16() uint16 {
	var v uint16
	if f.QR {
		v |= flagQR
	}
	v |= uint16(f.OpCode&0x0F) << opCodeBits
	if f.AA {
		v |= flagAA
	}
	if f.TC {
		v |= flagTC
	}
	if f.RD {
		v |= flagRD
	}
	if f.RA {
		v |= flagRA
	}
	v |= uint16(f.Z&0x07) << zBits
	v |= uint16(f.RCode) & 0x0F
	return v
}
