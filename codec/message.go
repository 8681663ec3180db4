package codec

import "github.com/haukened/dnswire/domain"

// DecodeMessage parses a complete DNS message: header, then question,
// answer, authority, and additional sections in fixed order. Each section
// advances and bounds-checks independently, so a truncated buffer fails
// at the first overrunning entry rather than via an upfront length check.
func DecodeMessage(buf []byte) (domain.Message, error) {
	header, off, err := DecodeHeader(buf)
	if err != nil {
		return domain.Message{}, err
	}

	questions, n, err := DecodeQuestions(buf, off, header.QDCount)
	if err != nil {
		return domain.Message{}, err
	}
	off += n

	answers, n, err := DecodeResourceRecords(buf, off, header.ANCount)
	if err != nil {
		return domain.Message{}, err
	}
	off += n

	authority, n, err := DecodeResourceRecords(buf, off, header.NSCount)
	if err != nil {
		return domain.Message{}, err
	}
	off += n

	additional, _, err := DecodeResourceRecords(buf, off, header.ARCount)
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

// EncodeMessage serializes the message into a freshly allocated buffer.
// The exact total length is computed up front so the buffer is allocated
// once, then truncated to the bytes actually written.
func EncodeMessage(m domain.Message) ([]byte, error) {
	buf := make([]byte, m.WireLength())
	off := 0

	n, err := EncodeHeader(m.Header, buf)
	if err != nil {
		return nil, err
	}
	off += n

	n, err = EncodeQuestions(m.Questions, buf[off:])
	if err != nil {
		return nil, err
	}
	off += n

	for _, sec := range [][]domain.ResourceRecord{m.Answers, m.Authority, m.Additional} {
		n, err = EncodeResourceRecords(sec, buf[off:])
		if err != nil {
			return nil, err
		}
		off += n
	}

	return buf[:off], nil
}
