package codec

import (
	"encoding/binary"

	"github.com/haukened/dnswire/domain"
)

// Name element length-byte bands (RFC 1035 section 4.1.4).
const (
	pointerMask = 0xC0 // top two bits 11
	reservedLow = 64   // start of the reserved band 64..191
)

// DecodeName scans one domain name starting at off and returns its
// elements plus the number of wire bytes consumed.
//
// The scan stops at the first root or pointer element. Pointers are
// returned as raw 14-bit values and never followed; resolving them means
// re-entering this decoder at the pointer's absolute offset (see
// ResolveName). Length bytes in the reserved band 64..191 consume only
// their marker byte.
func DecodeName(buf []byte, off int) (domain.Name, int, error) {
	var name domain.Name
	n := 0

	for {
		if off+n >= len(buf) {
			return nil, 0, ErrInsufficientData
		}

		length := int(buf[off+n])
		n++

		switch {
		case length == 0:
			name = append(name, domain.RootElement())
			return name, n, nil

		case length >= pointerMask:
			if off+n >= len(buf) {
				return nil, 0, ErrInsufficientData
			}
			ptr := binary.BigEndian.Uint16(buf[off+n-1:off+n+1]) & 0x3FFF
			n++
			name = append(name, domain.PointerElement(ptr))
			return name, n, nil

		case length >= reservedLow:
			// Reserved band: one marker byte, no payload.
			name = append(name, domain.ReservedElement())

		default:
			if off+n+length > len(buf) {
				return nil, 0, ErrInsufficientData
			}
			name = append(name, domain.LabelElement(buf[off+n:off+n+length]))
			n += length
		}
	}
}

// EncodeName writes the name's elements into buf and returns the number
// of bytes written. Reserved elements have no canonical byte form and
// fail with ErrInvalidDomainName.
func EncodeName(name domain.Name, buf []byte) (int, error) {
	n := 0

	for _, e := range name {
		switch e.Kind {
		case domain.KindLabel:
			if n+1+len(e.Data) > len(buf) {
				return 0, ErrInsufficientData
			}
			buf[n] = byte(len(e.Data))
			copy(buf[n+1:], e.Data)
			n += 1 + len(e.Data)

		case domain.KindPointer:
			if n+2 > len(buf) {
				return 0, ErrInsufficientData
			}
			buf[n] = pointerMask | byte(e.Pointer>>8)
			buf[n+1] = byte(e.Pointer)
			n += 2

		case domain.KindRoot:
			if n+1 > len(buf) {
				return 0, ErrInsufficientData
			}
			buf[n] = 0
			n++

		default:
			return 0, ErrInvalidDomainName
		}
	}

	return n, nil
}
