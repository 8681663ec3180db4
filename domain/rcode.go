package domain

import "fmt"

// RCode represents a DNS response code indicating the result of a query.
type RCode uint8

// DNS response code constants (RFC 1035, RFC 2136).
const (
	RCodeNoError  RCode = 0  // NOERROR - no error condition
	RCodeFormErr  RCode = 1  // FORMERR - format error
	RCodeServFail RCode = 2  // SERVFAIL - server failure
	RCodeNXDomain RCode = 3  // NXDOMAIN - name does not exist
	RCodeNotImp   RCode = 4  // NOTIMP - not implemented
	RCodeRefused  RCode = 5  // REFUSED - query refused
	RCodeYXDomain RCode = 6  // YXDOMAIN - name exists when it should not
	RCodeYXRRSet  RCode = 7  // YXRRSET - RR set exists when it should not
	RCodeNXRRSet  RCode = 8  // NXRRSET - RR set does not exist
	RCodeNotAuth  RCode = 9  // NOTAUTH - server not authoritative
	RCodeNotZone  RCode = 10 // NOTZONE - name not contained in zone
)

var rcodeNames = map[RCode]string{
	RCodeNoError:  "NOERROR",
	RCodeFormErr:  "FORMERR",
	RCodeServFail: "SERVFAIL",
	RCodeNXDomain: "NXDOMAIN",
	RCodeNotImp:   "NOTIMP",
	RCodeRefused:  "REFUSED",
	RCodeYXDomain: "YXDOMAIN",
	RCodeYXRRSet:  "YXRRSET",
	RCodeNXRRSet:  "NXRRSET",
	RCodeNotAuth:  "NOTAUTH",
	RCodeNotZone:  "NOTZONE",
}

var rcodeValues = invert(rcodeNames)

// IsValid returns true if the RCode is within the supported range.
func (r RCode) IsValid() bool {
	_, ok := rcodeNames[r]
	return ok
}

// String returns the textual representation of the RCode.
// For unknown codes, it returns "UNKNOWN(<value>)".
func (r RCode) String() string {
	if s, ok := rcodeNames[r]; ok {
		return s
	}
	return unknownValue(uint16(r))
}

// ParseRCode converts a response code name to its RCode value.
// Unknown names yield NOERROR.
func ParseRCode(s string) RCode {
	return rcodeValues[s]
}

// invert builds the name-to-value table from a value-to-name table.
func invert[V comparable](m map[V]string) map[string]V {
	out := make(map[string]V, len(m))
	for v, s := range m {
		out[s] = v
	}
	return out
}

func unknownValue(v uint16) string {
	return fmt.Sprintf("UNKNOWN(%d)", v)
}
