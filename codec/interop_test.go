package codec_test

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/domain"
)

// These tests cross-check the codec against miekg/dns, the de facto
// reference implementation for the Go ecosystem.

func TestDecodeMessageAcceptsMiekgOutput(t *testing.T) {
	m := new(dns.Msg)
	m.SetQuestion("example.com.", dns.TypeAAAA)
	m.Id = 0x1234

	wire, err := m.Pack()
	require.NoError(t, err)

	msg, err := codec.DecodeMessage(wire)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), msg.Header.ID)
	assert.True(t, msg.Header.Flags.RD)
	assert.Equal(t, uint16(1), msg.Header.QDCount)
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "example.com", msg.Questions[0].Name.String())
	assert.Equal(t, domain.RRTypeAAAA, msg.Questions[0].Type)
	assert.Equal(t, domain.RRClassIN, msg.Questions[0].Class)
}

func TestMiekgAcceptsEncodeMessageOutput(t *testing.T) {
	name := domain.Name{
		domain.LabelElement([]byte("example")),
		domain.LabelElement([]byte("com")),
		domain.RootElement(),
	}
	msg := domain.Message{
		Header: domain.Header{
			ID:      7,
			Flags:   domain.Flags{QR: true, RD: true, RA: true},
			QDCount: 1,
			ANCount: 1,
		},
		Questions: []domain.Question{{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN}},
		Answers: []domain.ResourceRecord{{
			Name:     name,
			Type:     domain.RRTypeA,
			Class:    domain.RRClassIN,
			TTL:      3600,
			RDLength: 4,
			Data:     []byte{192, 0, 2, 1},
		}},
	}

	wire, err := codec.EncodeMessage(msg)
	require.NoError(t, err)

	var parsed dns.Msg
	require.NoError(t, parsed.Unpack(wire))
	assert.Equal(t, uint16(7), parsed.Id)
	assert.True(t, parsed.Response)
	assert.True(t, parsed.RecursionDesired)
	assert.True(t, parsed.RecursionAvailable)
	require.Len(t, parsed.Question, 1)
	assert.Equal(t, "example.com.", parsed.Question[0].Name)
	require.Len(t, parsed.Answer, 1)

	a, ok := parsed.Answer[0].(*dns.A)
	require.True(t, ok)
	assert.Equal(t, "example.com.", a.Hdr.Name)
	assert.Equal(t, uint32(3600), a.Hdr.Ttl)
	assert.True(t, a.A.Equal(net.IPv4(192, 0, 2, 1)))
}
