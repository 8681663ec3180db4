package wireref

import (
	"encoding/binary"

	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/domain"
)

// nameWireLength measures the wire footprint of the name at off without
// recording elements. Pointers are classified and skipped, never
// dereferenced, so the cost is bounded by the name's own bytes.
func nameWireLength(buf []byte, off int) (int, error) {
	pos := off

	for {
		if pos >= len(buf) {
			return 0, codec.ErrInsufficientData
		}

		length := int(buf[pos])
		pos++

		switch Classify(byte(length)) {
		case domain.KindRoot:
			return pos - off, nil
		case domain.KindPointer:
			if pos >= len(buf) {
				return 0, codec.ErrInsufficientData
			}
			return pos + 1 - off, nil
		case domain.KindReserved:
			continue
		default:
			if pos+length > len(buf) {
				return 0, codec.ErrInsufficientData
			}
			pos += length
		}
	}
}

// questionWireLength measures one question entry at off: name + 4 bytes.
func questionWireLength(buf []byte, off int) (int, error) {
	nameLen, err := nameWireLength(buf, off)
	if err != nil {
		return 0, err
	}
	if off+nameLen+4 > len(buf) {
		return 0, codec.ErrInsufficientData
	}
	return nameLen + 4, nil
}

// recordWireLength measures one resource record at off. The name's length
// must be known before the 2-byte RDLENGTH can be located after the 8
// fixed type/class/ttl bytes that follow it.
func recordWireLength(buf []byte, off int) (int, error) {
	nameLen, err := nameWireLength(buf, off)
	if err != nil {
		return 0, err
	}

	fixed := off + nameLen
	if fixed+10 > len(buf) {
		return 0, codec.ErrInsufficientData
	}

	rdlength := int(binary.BigEndian.Uint16(buf[fixed+8 : fixed+10]))
	if fixed+10+rdlength > len(buf) {
		return 0, codec.ErrInsufficientData
	}

	return nameLen + 10 + rdlength, nil
}

// nameRefAt records the element refs of the name at off.
func nameRefAt(buf []byte, off int) (NameRef, error) {
	var ref NameRef
	pos := off

	for {
		if pos >= len(buf) {
			return NameRef{}, codec.ErrInsufficientData
		}

		b := buf[pos]
		kind := Classify(b)

		if int(ref.Count) >= MaxNameElements {
			return NameRef{}, codec.ErrCapacityExceeded
		}
		ref.Elements[ref.Count] = NameElementRef{Kind: kind, Offset: uint16(pos)}
		ref.Count++

		switch kind {
		case domain.KindRoot:
			ref.End = uint16(pos + 1)
			return ref, nil
		case domain.KindPointer:
			if pos+1 >= len(buf) {
				return NameRef{}, codec.ErrInsufficientData
			}
			ref.End = uint16(pos + 2)
			return ref, nil
		case domain.KindReserved:
			pos++
		default:
			if pos+1+int(b) > len(buf) {
				return NameRef{}, codec.ErrInsufficientData
			}
			pos += 1 + int(b)
		}
	}
}

// recordSectionRefAt records count record refs starting at *off,
// advancing it past the section.
func recordSectionRefAt(buf []byte, off *int, count uint16) (RecordSectionRef, error) {
	if count > MaxRecords {
		return RecordSectionRef{}, codec.ErrCapacityExceeded
	}

	var section RecordSectionRef
	for i := 0; i < int(count); i++ {
		length, err := recordWireLength(buf, *off)
		if err != nil {
			return RecordSectionRef{}, err
		}
		name, err := nameRefAt(buf, *off)
		if err != nil {
			return RecordSectionRef{}, err
		}
		section.Records[i] = RecordRef{Name: name, Len: uint16(length)}
		*off += length
	}

	section.Count = uint8(count)
	section.End = uint16(*off)
	return section, nil
}

// DecodeMessageRef scans buf once and returns offset/length refs for every
// entry, allocating nothing beyond the fixed-size MessageRef itself.
//
// Counts beyond the fixed capacities (MaxQuestions questions, MaxRecords
// records per section, MaxNameElements elements per name) fail with
// codec.ErrCapacityExceeded; so do buffers longer than the 65535-byte
// ceiling the 16-bit offsets can address.
func DecodeMessageRef(buf []byte) (MessageRef, error) {
	if len(buf) > domain.MaxMessageLength {
		return MessageRef{}, codec.ErrCapacityExceeded
	}

	header, _, err := codec.DecodeHeader(buf)
	if err != nil {
		return MessageRef{}, err
	}

	if header.QDCount > MaxQuestions {
		return MessageRef{}, codec.ErrCapacityExceeded
	}

	var msg MessageRef
	off := domain.HeaderWireLength

	for i := 0; i < int(header.QDCount); i++ {
		length, err := questionWireLength(buf, off)
		if err != nil {
			return MessageRef{}, err
		}
		msg.Question.Questions[i] = QuestionRef{Offset: uint16(off), Len: uint16(length)}
		off += length
	}
	msg.Question.Count = uint8(header.QDCount)
	msg.Question.End = uint16(off)

	if msg.Answer, err = recordSectionRefAt(buf, &off, header.ANCount); err != nil {
		return MessageRef{}, err
	}
	if msg.Authority, err = recordSectionRefAt(buf, &off, header.NSCount); err != nil {
		return MessageRef{}, err
	}
	if msg.Additional, err = recordSectionRefAt(buf, &off, header.ARCount); err != nil {
		return MessageRef{}, err
	}

	return msg, nil
}
