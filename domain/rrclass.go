package domain

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS resource record class constants.
const (
	RRClassIN   RRClass = 1   // IN - Internet
	RRClassCH   RRClass = 3   // CH - Chaos
	RRClassHS   RRClass = 4   // HS - Hesiod
	RRClassNONE RRClass = 254 // NONE - no class
	RRClassANY  RRClass = 255 // ANY - any class (query only)
)

var rrClassNames = map[RRClass]string{
	RRClassIN:   "IN",
	RRClassCH:   "CH",
	RRClassHS:   "HS",
	RRClassNONE: "NONE",
	RRClassANY:  "ANY",
}

var rrClassValues = invert(rrClassNames)

// IsValid returns true if the RRClass is one of the supported classes.
func (c RRClass) IsValid() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	if s, ok := rrClassNames[c]; ok {
		return s
	}
	return unknownValue(uint16(c))
}

// ParseRRClass converts a class name to its RRClass value.
// Unknown names yield 0.
func ParseRRClass(s string) RRClass {
	return rrClassValues[s]
}
