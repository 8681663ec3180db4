package domain

// Question is one entry of the question section: a name followed by a
// 16-bit type and a 16-bit class.
type Question struct {
	Name  Name
	Type  RRType
	Class RRClass
}

// WireLength returns the number of wire bytes the question occupies.
func (q Question) WireLength() int {
	return q.Name.WireLength() + 4
}
