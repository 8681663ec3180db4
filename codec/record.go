package codec

import (
	"encoding/binary"

	"github.com/haukened/dnswire/domain"
)

// DecodeResourceRecord parses one resource record starting at off and
// returns it with the number of wire bytes consumed.
//
// A pointer inside the record's name terminates only the name, never the
// record: the 10 fixed bytes and the RDATA always follow the name's end
// offset directly.
func DecodeResourceRecord(buf []byte, off int) (domain.ResourceRecord, int, error) {
	name, n, err := DecodeName(buf, off)
	if err != nil {
		return domain.ResourceRecord{}, 0, err
	}

	if off+n+10 > len(buf) {
		return domain.ResourceRecord{}, 0, ErrInsufficientData
	}

	fixed := buf[off+n:]
	rdlength := binary.BigEndian.Uint16(fixed[8:10])

	if off+n+10+int(rdlength) > len(buf) {
		return domain.ResourceRecord{}, 0, ErrInsufficientData
	}

	r := domain.ResourceRecord{
		Name:     name,
		Type:     domain.RRType(binary.BigEndian.Uint16(fixed[0:2])),
		Class:    domain.RRClass(binary.BigEndian.Uint16(fixed[2:4])),
		TTL:      binary.BigEndian.Uint32(fixed[4:8]),
		RDLength: rdlength,
		Data:     buf[off+n+10 : off+n+10+int(rdlength)],
	}
	return r, n + 10 + int(rdlength), nil
}

// DecodeResourceRecords parses count records starting at off. A count of
// zero yields an empty section with zero bytes consumed.
func DecodeResourceRecords(buf []byte, off int, count uint16) ([]domain.ResourceRecord, int, error) {
	if count == 0 {
		return nil, 0, nil
	}

	records := make([]domain.ResourceRecord, 0, count)
	n := 0

	for i := uint16(0); i < count; i++ {
		r, rn, err := DecodeResourceRecord(buf, off+n)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, r)
		n += rn
	}

	return records, n, nil
}

// EncodeResourceRecord writes one record into buf and returns the number
// of bytes written. The RDLENGTH field is taken from len(Data), not the
// RDLength field, so the two cannot disagree on the wire.
func EncodeResourceRecord(r domain.ResourceRecord, buf []byte) (int, error) {
	n, err := EncodeName(r.Name, buf)
	if err != nil {
		return 0, err
	}

	if n+10+len(r.Data) > len(buf) {
		return 0, ErrInsufficientData
	}

	binary.BigEndian.PutUint16(buf[n:n+2], uint16(r.Type))
	binary.BigEndian.PutUint16(buf[n+2:n+4], uint16(r.Class))
	binary.BigEndian.PutUint32(buf[n+4:n+8], r.TTL)
	binary.BigEndian.PutUint16(buf[n+8:n+10], uint16(len(r.Data)))
	copy(buf[n+10:], r.Data)
	return n + 10 + len(r.Data), nil
}

// EncodeResourceRecords writes every record into buf in order and returns
// the total number of bytes written.
func EncodeResourceRecords(records []domain.ResourceRecord, buf []byte) (int, error) {
	n := 0
	for _, r := range records {
		rn, err := EncodeResourceRecord(r, buf[n:])
		if err != nil {
			return 0, err
		}
		n += rn
	}
	return n, nil
}
