package codec

import (
	"encoding/binary"

	"github.com/haukened/dnswire/domain"
)

// DecodeHeader parses the fixed 12-byte header from the start of buf and
// returns it with the number of bytes consumed. Buffers shorter than 12
// bytes fail with ErrInvalidHeaderLength.
func DecodeHeader(buf []byte) (domain.Header, int, error) {
	if len(buf) < domain.HeaderWireLength {
		return domain.Header{}, 0, ErrInvalidHeaderLength
	}

	h := domain.Header{
		ID:      binary.BigEndian.Uint16(buf[0:2]),
		Flags:   domain.FlagsFromUint16(binary.BigEndian.Uint16(buf[2:4])),
		QDCount: binary.BigEndian.Uint16(buf[4:6]),
		ANCount: binary.BigEndian.Uint16(buf[6:8]),
		NSCount: binary.BigEndian.Uint16(buf[8:10]),
		ARCount: binary.BigEndian.Uint16(buf[10:12]),
	}
	return h, domain.HeaderWireLength, nil
}

// EncodeHeader writes the header into buf and returns the number of bytes
// written. It performs no validation of count-vs-section consistency.
func EncodeHeader(h domain.Header, buf []byte) (int, error) {
	if len(buf) < domain.HeaderWireLength {
		return 0, ErrInvalidHeaderLength
	}

	binary.BigEndian.PutUint16(buf[0:2], h.ID)
	binary.BigEndian.PutUint16(buf[2:4], h.Flags.Uint16())
	binary.BigEndian.PutUint16(buf[4:6], h.QDCount)
	binary.BigEndian.PutUint16(buf[6:8], h.ANCount)
	binary.BigEndian.PutUint16(buf[8:10], h.NSCount)
	binary.BigEndian.PutUint16(buf[10:12], h.ARCount)
	return domain.HeaderWireLength, nil
}

// DecodeFlags parses a 2-byte flags word from the start of buf.
func DecodeFlags(buf []byte) (domain.Flags, int, error) {
	if len(buf) < 2 {
		return domain.Flags{}, 0, ErrInsufficientData
	}
	return domain.FlagsFromUint16(binary.BigEndian.Uint16(buf[0:2])), 2, nil
}

// EncodeFlags writes the 2-byte flags word into buf.
func EncodeFlags(f domain.Flags, buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, ErrInsufficientData
	}
	binary.BigEndian.PutUint16(buf[0:2], f.Uint16())
	return 2, nil
}
