package domain

// Message is a fully materialized DNS message: header plus the four
// ordered sections.
type Message struct {
	Header     Header
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// WireLength returns the exact number of bytes the encoded message
// occupies, summing the header and every section entry.
func (m Message) WireLength() int {
	total := m.Header.WireLength()
	for _, q := range m.Questions {
		total += q.WireLength()
	}
	for _, sec := range [][]ResourceRecord{m.Answers, m.Authority, m.Additional} {
		for _, r := range sec {
			total += r.WireLength()
		}
	}
	return total
}
