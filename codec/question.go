package codec

import (
	"encoding/binary"

	"github.com/haukened/dnswire/domain"
)

// DecodeQuestion parses one question entry starting at off and returns it
// with the number of wire bytes consumed.
func DecodeQuestion(buf []byte, off int) (domain.Question, int, error) {
	name, n, err := DecodeName(buf, off)
	if err != nil {
		return domain.Question{}, 0, err
	}

	if off+n+4 > len(buf) {
		return domain.Question{}, 0, ErrInsufficientData
	}

	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(buf[off+n : off+n+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(buf[off+n+2 : off+n+4])),
	}
	return q, n + 4, nil
}

// DecodeQuestions parses count question entries starting at off. A count
// of zero yields an empty section with zero bytes consumed.
func DecodeQuestions(buf []byte, off int, count uint16) ([]domain.Question, int, error) {
	if count == 0 {
		return nil, 0, nil
	}

	questions := make([]domain.Question, 0, count)
	n := 0

	for i := uint16(0); i < count; i++ {
		q, qn, err := DecodeQuestion(buf, off+n)
		if err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
		n += qn
	}

	return questions, n, nil
}

// EncodeQuestion writes one question entry into buf and returns the
// number of bytes written.
func EncodeQuestion(q domain.Question, buf []byte) (int, error) {
	n, err := EncodeName(q.Name, buf)
	if err != nil {
		return 0, err
	}

	if n+4 > len(buf) {
		return 0, ErrInsufficientData
	}

	binary.BigEndian.PutUint16(buf[n:n+2], uint16(q.Type))
	binary.BigEndian.PutUint16(buf[n+2:n+4], uint16(q.Class))
	return n + 4, nil
}

// EncodeQuestions writes every question entry into buf in order and
// returns the total number of bytes written.
func EncodeQuestions(questions []domain.Question, buf []byte) (int, error) {
	n := 0
	for _, q := range questions {
		qn, err := EncodeQuestion(q, buf[n:])
		if err != nil {
			return 0, err
		}
		n += qn
	}
	return n, nil
}
