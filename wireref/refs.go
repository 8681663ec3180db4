package wireref

import (
	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/domain"
)

// Fixed container capacities, sized for common message cardinalities.
// They trade RFC-unbounded counts for allocation-free, fixed-size refs.
const (
	// MaxQuestions is the question section capacity.
	MaxQuestions = 5
	// MaxRecords is the per-section resource record capacity.
	MaxRecords = 10
	// MaxNameElements is the per-name element capacity.
	MaxNameElements = 10
)

// Classify reports the name element kind encoded by a length byte.
// It inspects only the byte itself, not the bytes that follow.
func Classify(b byte) domain.NameElementKind {
	switch {
	case b == 0:
		return domain.KindRoot
	case b&0xC0 == 0xC0:
		return domain.KindPointer
	case b <= domain.MaxLabelLength:
		return domain.KindLabel
	default:
		return domain.KindReserved
	}
}

// NameElementRef locates one name element: its kind and the offset of its
// first byte from the message start.
type NameElementRef struct {
	Kind   domain.NameElementKind
	Offset uint16
}

// NameRef locates a whole domain name as a fixed-capacity sequence of
// element refs plus the offset one past the name's last wire byte.
type NameRef struct {
	Elements [MaxNameElements]NameElementRef
	Count    uint8
	End      uint16
}

// Offset returns the offset of the name's first byte. An empty ref
// reports offset 0.
func (n *NameRef) Offset() uint16 {
	if n.Count == 0 {
		return 0
	}
	return n.Elements[0].Offset
}

// Slice returns the valid element refs.
func (n *NameRef) Slice() []NameElementRef {
	return n.Elements[:n.Count]
}

// HeaderRef locates the header: always offset 0, length 12.
type HeaderRef struct{}

// Offset returns 0, the header's fixed position.
func (HeaderRef) Offset() uint16 { return 0 }

// End returns the offset one past the header.
func (HeaderRef) End() uint16 { return domain.HeaderWireLength }

// Decode materializes the header from the original message buffer.
func (HeaderRef) Decode(buf []byte) (domain.Header, error) {
	h, _, err := codec.DecodeHeader(buf)
	return h, err
}

// QuestionRef locates one question entry: offset of its first name byte
// and its total wire length (name + type + class).
type QuestionRef struct {
	Offset uint16
	Len    uint16
}

// End returns the offset one past the question's last byte.
func (q QuestionRef) End() uint16 { return q.Offset + q.Len }

// Decode materializes the question from the original message buffer.
func (q QuestionRef) Decode(buf []byte) (domain.Question, error) {
	question, _, err := codec.DecodeQuestion(buf, int(q.Offset))
	return question, err
}

// QuestionSectionRef locates the question section, up to MaxQuestions
// entries.
type QuestionSectionRef struct {
	Questions [MaxQuestions]QuestionRef
	Count     uint8
	End       uint16
}

// Slice returns the valid question refs.
func (s *QuestionSectionRef) Slice() []QuestionRef {
	return s.Questions[:s.Count]
}

// RecordRef locates one resource record: its name's element refs and the
// record's total wire length (name + 10 fixed bytes + RDATA).
type RecordRef struct {
	Name NameRef
	Len  uint16
}

// Offset returns the offset of the record's first byte.
func (r *RecordRef) Offset() uint16 { return r.Name.Offset() }

// End returns the offset one past the record's last byte.
func (r *RecordRef) End() uint16 { return r.Name.Offset() + r.Len }

// Decode materializes the record from the original message buffer.
func (r *RecordRef) Decode(buf []byte) (domain.ResourceRecord, error) {
	record, _, err := codec.DecodeResourceRecord(buf, int(r.Offset()))
	return record, err
}

// RecordSectionRef locates one record section, up to MaxRecords entries.
type RecordSectionRef struct {
	Records [MaxRecords]RecordRef
	Count   uint8
	End     uint16
}

// Slice returns the valid record refs.
func (s *RecordSectionRef) Slice() []RecordRef {
	return s.Records[:s.Count]
}

// decode materializes every record in the section.
func (s *RecordSectionRef) decode(buf []byte) ([]domain.ResourceRecord, error) {
	if s.Count == 0 {
		return nil, nil
	}
	records := make([]domain.ResourceRecord, 0, s.Count)
	for i := range s.Slice() {
		r, err := s.Records[i].Decode(buf)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// MessageRef locates every entry of a decoded message without copying any
// of it. The buffer it was decoded from must outlive all accesses.
type MessageRef struct {
	Header     HeaderRef
	Question   QuestionSectionRef
	Answer     RecordSectionRef
	Authority  RecordSectionRef
	Additional RecordSectionRef
}

// Decode materializes the complete message from the original buffer.
// Field for field, the result equals codec.DecodeMessage over the same
// bytes. Callers that need only part of the message can instead decode
// individual entry refs at no cost for the rest.
func (m *MessageRef) Decode(buf []byte) (domain.Message, error) {
	header, err := m.Header.Decode(buf)
	if err != nil {
		return domain.Message{}, err
	}

	var questions []domain.Question
	if m.Question.Count > 0 {
		questions = make([]domain.Question, 0, m.Question.Count)
		for _, q := range m.Question.Slice() {
			question, err := q.Decode(buf)
			if err != nil {
				return domain.Message{}, err
			}
			questions = append(questions, question)
		}
	}

	answers, err := m.Answer.decode(buf)
	if err != nil {
		return domain.Message{}, err
	}
	authority, err := m.Authority.decode(buf)
	if err != nil {
		return domain.Message{}, err
	}
	additional, err := m.Additional.decode(buf)
	if err != nil {
		return domain.Message{}, err
	}

	return domain.Message{
		Header:     header,
		Questions:  questions,
		Answers:    answers,
		Authority:  authority,
		Additional: additional,
	}, nil
}
