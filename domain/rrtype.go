package domain

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See the IANA DNS Parameters registry for assigned codes.
type RRType uint16

// DNS resource record type constants.
const (
	RRTypeA      RRType = 1   // A - IPv4 address
	RRTypeNS     RRType = 2   // NS - name server
	RRTypeCNAME  RRType = 5   // CNAME - canonical name
	RRTypeSOA    RRType = 6   // SOA - start of authority
	RRTypePTR    RRType = 12  // PTR - pointer
	RRTypeMX     RRType = 15  // MX - mail exchange
	RRTypeTXT    RRType = 16  // TXT - text
	RRTypeAAAA   RRType = 28  // AAAA - IPv6 address
	RRTypeSRV    RRType = 33  // SRV - service
	RRTypeNAPTR  RRType = 35  // NAPTR - naming authority pointer
	RRTypeOPT    RRType = 41  // OPT - EDNS option
	RRTypeDS     RRType = 43  // DS - delegation signer
	RRTypeRRSIG  RRType = 46  // RRSIG - resource record signature
	RRTypeNSEC   RRType = 47  // NSEC - next secure
	RRTypeDNSKEY RRType = 48  // DNSKEY - DNS key
	RRTypeTLSA   RRType = 52  // TLSA - TLS association
	RRTypeSVCB   RRType = 64  // SVCB - service binding
	RRTypeHTTPS  RRType = 65  // HTTPS - HTTPS binding
	RRTypeANY    RRType = 255 // ANY - any type (query only)
	RRTypeCAA    RRType = 257 // CAA - certification authority authorization
)

var rrTypeNames = map[RRType]string{
	RRTypeA:      "A",
	RRTypeNS:     "NS",
	RRTypeCNAME:  "CNAME",
	RRTypeSOA:    "SOA",
	RRTypePTR:    "PTR",
	RRTypeMX:     "MX",
	RRTypeTXT:    "TXT",
	RRTypeAAAA:   "AAAA",
	RRTypeSRV:    "SRV",
	RRTypeNAPTR:  "NAPTR",
	RRTypeOPT:    "OPT",
	RRTypeDS:     "DS",
	RRTypeRRSIG:  "RRSIG",
	RRTypeNSEC:   "NSEC",
	RRTypeDNSKEY: "DNSKEY",
	RRTypeTLSA:   "TLSA",
	RRTypeSVCB:   "SVCB",
	RRTypeHTTPS:  "HTTPS",
	RRTypeANY:    "ANY",
	RRTypeCAA:    "CAA",
}

var rrTypeValues = invert(rrTypeNames)

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	if s, ok := rrTypeNames[t]; ok {
		return s
	}
	return unknownValue(uint16(t))
}

// ParseRRType converts a record type string to its RRType value.
// Unknown names yield 0.
func ParseRRType(s string) RRType {
	return rrTypeValues[s]
}
