// Package builder provides fluent construction of DNS messages from text
// names and typed fields, producing wire bytes directly or through a
// round-trip validated path.
package builder

import (
	"encoding/binary"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/idna"

	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/common/log"
	"github.com/haukened/dnswire/domain"
)

// nameCacheSize bounds the per-builder memo of encoded names. Messages
// repeat the same owner name across sections, so even a small cache
// covers the common case.
const nameCacheSize = 64

type question struct {
	name  string
	qtype domain.RRType
	class domain.RRClass
}

type record struct {
	name  string
	rtype domain.RRType
	class domain.RRClass
	ttl   uint32
	rdata []byte
}

// Builder accumulates a logical DNS message. Names are dot-separated
// text, not pre-encoded elements; RDATA is opaque bytes. Construct with
// NewQuery or NewResponse, chain the section methods, then call Encode
// or Build.
type Builder struct {
	id         uint16
	flags      domain.Flags
	questions  []question
	answers    []record
	authority  []record
	additional []record
	names      *lru.Cache[string, []byte]
	logger     log.Logger
}

// NewQuery returns a builder preset for a standard query: recursion
// desired, all other flags at their RFC-conventional defaults.
func NewQuery(id uint16) *Builder {
	return newBuilder(id, false)
}

// NewResponse returns a builder preset for a response, with the same
// defaults as NewQuery plus the response bit.
func NewResponse(id uint16) *Builder {
	return newBuilder(id, true)
}

func newBuilder(id uint16, response bool) *Builder {
	names, _ := lru.New[string, []byte](nameCacheSize)
	return &Builder{
		id: id,
		flags: domain.Flags{
			QR:     response,
			OpCode: domain.OpCodeQuery,
			RD:     true,
			RCode:  domain.RCodeNoError,
		},
		names:  names,
		logger: log.Nop(),
	}
}

// ID overrides the message id.
func (b *Builder) ID(id uint16) *Builder {
	b.id = id
	return b
}

// Flags replaces the whole flags word.
func (b *Builder) Flags(f domain.Flags) *Builder {
	b.flags = f
	return b
}

// Logger sets a logger for debug traces of the encode pass.
func (b *Builder) Logger(l log.Logger) *Builder {
	b.logger = l
	return b
}

// Question appends an entry to the question section.
func (b *Builder) Question(name string, qtype domain.RRType, class domain.RRClass) *Builder {
	b.questions = append(b.questions, question{name: name, qtype: qtype, class: class})
	return b
}

// Answer appends a record to the answer section.
func (b *Builder) Answer(name string, rtype domain.RRType, class domain.RRClass, ttl uint32, rdata []byte) *Builder {
	b.answers = append(b.answers, record{name, rtype, class, ttl, rdata})
	return b
}

// Authority appends a record to the authority section.
func (b *Builder) Authority(name string, rtype domain.RRType, class domain.RRClass, ttl uint32, rdata []byte) *Builder {
	b.authority = append(b.authority, record{name, rtype, class, ttl, rdata})
	return b
}

// Additional appends a record to the additional section.
func (b *Builder) Additional(name string, rtype domain.RRType, class domain.RRClass, ttl uint32, rdata []byte) *Builder {
	b.additional = append(b.additional, record{name, rtype, class, ttl, rdata})
	return b
}

// Encode serializes the message in one pass: header, then every section
// in fixed order, into a buffer sized from the entries' encoded-name
// lengths. This is the fast, unvalidated path.
func (b *Builder) Encode() ([]byte, error) {
	total := domain.HeaderWireLength
	for _, q := range b.questions {
		name, err := b.encodeTextName(q.name)
		if err != nil {
			return nil, err
		}
		total += len(name) + 4
	}
	for _, sec := range [][]record{b.answers, b.authority, b.additional} {
		for _, r := range sec {
			name, err := b.encodeTextName(r.name)
			if err != nil {
				return nil, err
			}
			total += len(name) + 10 + len(r.rdata)
		}
	}

	buf := make([]byte, total)
	header := domain.Header{
		ID:      b.id,
		Flags:   b.flags,
		QDCount: uint16(len(b.questions)),
		ANCount: uint16(len(b.answers)),
		NSCount: uint16(len(b.authority)),
		ARCount: uint16(len(b.additional)),
	}

	off, err := codec.EncodeHeader(header, buf)
	if err != nil {
		return nil, err
	}
	b.logger.Debug(map[string]any{
		"id": b.id, "qd": header.QDCount, "an": header.ANCount,
		"ns": header.NSCount, "ar": header.ARCount,
	}, "wrote message header")

	for _, q := range b.questions {
		name, err := b.encodeTextName(q.name)
		if err != nil {
			return nil, err
		}
		off += copy(buf[off:], name)
		binary.BigEndian.PutUint16(buf[off:off+2], uint16(q.qtype))
		binary.BigEndian.PutUint16(buf[off+2:off+4], uint16(q.class))
		off += 4
	}

	for _, sec := range [][]record{b.answers, b.authority, b.additional} {
		for _, r := range sec {
			name, err := b.encodeTextName(r.name)
			if err != nil {
				return nil, err
			}
			off += copy(buf[off:], name)
			binary.BigEndian.PutUint16(buf[off:off+2], uint16(r.rtype))
			binary.BigEndian.PutUint16(buf[off+2:off+4], uint16(r.class))
			binary.BigEndian.PutUint32(buf[off+4:off+8], r.ttl)
			binary.BigEndian.PutUint16(buf[off+8:off+10], uint16(len(r.rdata)))
			off += 10
			off += copy(buf[off:], r.rdata)
		}
	}

	b.logger.Debug(map[string]any{"size": off}, "encoded message")
	return buf[:off], nil
}

// Build encodes the message and then re-decodes the freshly written bytes
// through the message codec, returning both the materialized message and
// its backing buffer. Anything the builder produces must also decode
// through the same path used for arbitrary wire input; this trades one
// extra decode pass for that guarantee.
func (b *Builder) Build() (domain.Message, []byte, error) {
	buf, err := b.Encode()
	if err != nil {
		return domain.Message{}, nil, err
	}
	msg, err := codec.DecodeMessage(buf)
	if err != nil {
		return domain.Message{}, nil, err
	}
	return msg, buf, nil
}

// encodeTextName converts a dot-separated text name to its wire bytes:
// empty segments are dropped (collapsing leading, trailing, and doubled
// dots), labels longer than 63 bytes fail, and a terminating root byte is
// always appended. Results are memoized per builder.
func (b *Builder) encodeTextName(name string) ([]byte, error) {
	if cached, ok := b.names.Get(name); ok {
		return cached, nil
	}

	ascii, err := asciiName(name)
	if err != nil {
		return nil, err
	}

	encoded := make([]byte, 0, len(ascii)+2)
	for start := 0; start < len(ascii); {
		end := start
		for end < len(ascii) && ascii[end] != '.' {
			end++
		}
		if label := ascii[start:end]; len(label) > 0 {
			if len(label) > domain.MaxLabelLength {
				return nil, codec.ErrInvalidDomainName
			}
			encoded = append(encoded, byte(len(label)))
			encoded = append(encoded, label...)
		}
		start = end + 1
	}
	encoded = append(encoded, 0)

	b.names.Add(name, encoded)
	return encoded, nil
}

// asciiName applies IDNA conversion to internationalized names; plain
// ASCII names pass through untouched so the dot-collapsing rules above
// stay authoritative for them.
func asciiName(name string) (string, error) {
	ascii := true
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return name, nil
	}
	converted, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", codec.ErrInvalidDomainName
	}
	return converted, nil
}
