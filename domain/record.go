package domain

// ResourceRecord is one entry of an answer, authority, or additional
// section. Data holds the RDATA bytes uninterpreted; record-type-specific
// decoding is out of scope for this module.
type ResourceRecord struct {
	Name     Name
	Type     RRType
	Class    RRClass
	TTL      uint32
	RDLength uint16
	Data     []byte
}

// WireLength returns the number of wire bytes the record occupies:
// name + 10 fixed bytes + RDATA.
func (r ResourceRecord) WireLength() int {
	return r.Name.WireLength() + 10 + len(r.Data)
}
