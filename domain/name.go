package domain

import (
	"fmt"
	"strings"
)

// NameElementKind classifies one element of a domain name's wire form by
// the top two bits of its length byte.
type NameElementKind uint8

const (
	// KindLabel is a length-prefixed label, length 1-63 (top bits 00).
	KindLabel NameElementKind = iota
	// KindPointer is a 2-byte compression pointer (top bits 11).
	KindPointer
	// KindRoot is the single zero byte terminating a name.
	KindRoot
	// KindReserved covers length bytes 64-191 (top bits 01 or 10),
	// reserved by RFC 1035 and carrying no payload.
	KindReserved
)

// String returns a short name for the kind.
func (k NameElementKind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindPointer:
		return "pointer"
	case KindRoot:
		return "root"
	case KindReserved:
		return "reserved"
	default:
		return unknownValue(uint16(k))
	}
}

// MaxLabelLength is the longest label RFC 1035 permits.
const MaxLabelLength = 63

// NameElement is one element of a domain name in wire order. Exactly one
// of the payload fields is meaningful, selected by Kind: Data for labels,
// Pointer for compression pointers.
type NameElement struct {
	Kind    NameElementKind
	Data    []byte
	Pointer uint16
}

// LabelElement constructs a label element over the given payload bytes.
// The payload is referenced, not copied.
func LabelElement(data []byte) NameElement {
	return NameElement{Kind: KindLabel, Data: data}
}

// PointerElement constructs a compression pointer element. Only the low
// 14 bits of offset are representable on the wire.
func PointerElement(offset uint16) NameElement {
	return NameElement{Kind: KindPointer, Pointer: offset & 0x3FFF}
}

// RootElement constructs the zero-length terminator element.
func RootElement() NameElement {
	return NameElement{Kind: KindRoot}
}

// ReservedElement constructs an element for the RFC-reserved length band.
func ReservedElement() NameElement {
	return NameElement{Kind: KindReserved}
}

// WireLength returns the number of wire bytes this element occupies.
func (e NameElement) WireLength() int {
	switch e.Kind {
	case KindLabel:
		return 1 + len(e.Data)
	case KindPointer:
		return 2
	default: // root and reserved are a single marker byte
		return 1
	}
}

// Name is an ordered sequence of name elements. A well-formed name
// terminates exactly once, at its first root or pointer element.
type Name []NameElement

// WireLength returns the total number of wire bytes the name occupies.
func (n Name) WireLength() int {
	total := 0
	for _, e := range n {
		total += e.WireLength()
	}
	return total
}

// String renders the name for display: labels joined by dots, a
// terminating pointer as "@<offset>". It does not resolve pointers.
func (n Name) String() string {
	var b strings.Builder
	for i, e := range n {
		switch e.Kind {
		case KindLabel:
			if i > 0 {
				b.WriteByte('.')
			}
			b.Write(e.Data)
		case KindPointer:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprintf(&b, "@%d", e.Pointer)
		}
	}
	return b.String()
}
