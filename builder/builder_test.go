package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dnswire/codec"
	"github.com/haukened/dnswire/domain"
)

// sampleQuery is the canonical 29-byte query: id=1, RD set, one question
// for example.com A IN.
func sampleQuery() []byte {
	return []byte{
		0x00, 0x01,
		0x01, 0x00,
		0x00, 0x01,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01,
		0x00, 0x01,
	}
}

func TestEncodeReproducesSampleQuery(t *testing.T) {
	got, err := NewQuery(1).
		Question("example.com", domain.RRTypeA, domain.RRClassIN).
		Encode()
	require.NoError(t, err)
	assert.Equal(t, sampleQuery(), got)
}

func TestBuildReproducesSampleQuery(t *testing.T) {
	msg, buf, err := NewQuery(1).
		Question("example.com", domain.RRTypeA, domain.RRClassIN).
		Build()
	require.NoError(t, err)
	assert.Equal(t, sampleQuery(), buf)
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "example.com", msg.Questions[0].Name.String())
	assert.Equal(t, domain.RRTypeA, msg.Questions[0].Type)
	assert.Equal(t, domain.RRClassIN, msg.Questions[0].Class)
}

func TestBuildResponseRoundTrip(t *testing.T) {
	msg, _, err := NewResponse(99).
		Question("example.com", domain.RRTypeA, domain.RRClassIN).
		Answer("example.com", domain.RRTypeA, domain.RRClassIN, 3600, []byte{93, 184, 216, 34}).
		Answer("example.com", domain.RRTypeA, domain.RRClassIN, 3600, []byte{93, 184, 216, 35}).
		Authority("com", domain.RRTypeNS, domain.RRClassIN, 86400, []byte{0}).
		Additional("ns.com", domain.RRTypeA, domain.RRClassIN, 86400, []byte{192, 0, 2, 9}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, uint16(99), msg.Header.ID)
	assert.True(t, msg.Header.Flags.QR)
	assert.True(t, msg.Header.Flags.RD)
	assert.Equal(t, uint16(1), msg.Header.QDCount)
	assert.Equal(t, uint16(2), msg.Header.ANCount)
	assert.Equal(t, uint16(1), msg.Header.NSCount)
	assert.Equal(t, uint16(1), msg.Header.ARCount)

	require.Len(t, msg.Answers, 2)
	assert.Equal(t, "example.com", msg.Answers[0].Name.String())
	assert.Equal(t, uint32(3600), msg.Answers[0].TTL)
	assert.Equal(t, []byte{93, 184, 216, 34}, msg.Answers[0].Data)
	assert.Equal(t, []byte{93, 184, 216, 35}, msg.Answers[1].Data)

	require.Len(t, msg.Authority, 1)
	assert.Equal(t, "com", msg.Authority[0].Name.String())
	assert.Equal(t, uint32(86400), msg.Authority[0].TTL)

	require.Len(t, msg.Additional, 1)
	assert.Equal(t, "ns.com", msg.Additional[0].Name.String())
}

func TestQueryAndResponseDefaults(t *testing.T) {
	msg, _, err := NewQuery(1).Build()
	require.NoError(t, err)
	assert.False(t, msg.Header.Flags.QR)
	assert.True(t, msg.Header.Flags.RD)
	assert.Equal(t, domain.OpCodeQuery, msg.Header.Flags.OpCode)
	assert.False(t, msg.Header.Flags.AA)
	assert.Equal(t, domain.RCodeNoError, msg.Header.Flags.RCode)

	msg, _, err = NewResponse(1).Build()
	require.NoError(t, err)
	assert.True(t, msg.Header.Flags.QR)
	assert.True(t, msg.Header.Flags.RD)
}

func TestFlagsAndIDOverride(t *testing.T) {
	f := domain.Flags{QR: true, AA: true, RCode: domain.RCodeNXDomain}
	msg, _, err := NewQuery(1).ID(0xBEEF).Flags(f).Build()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), msg.Header.ID)
	assert.Equal(t, f, msg.Header.Flags)
}

func TestNameDotCollapsing(t *testing.T) {
	// leading, trailing, and doubled dots all collapse
	for _, name := range []string{"example.com.", ".example.com", "example..com"} {
		got, err := NewQuery(1).Question(name, domain.RRTypeA, domain.RRClassIN).Encode()
		require.NoError(t, err, name)
		assert.Equal(t, sampleQuery(), got, name)
	}
}

func TestEmptyNameEncodesRootOnly(t *testing.T) {
	msg, _, err := NewQuery(1).Question("", domain.RRTypeA, domain.RRClassIN).Build()
	require.NoError(t, err)
	require.Len(t, msg.Questions, 1)
	require.Len(t, msg.Questions[0].Name, 1)
	assert.Equal(t, domain.KindRoot, msg.Questions[0].Name[0].Kind)
}

func TestOversizedLabelFails(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := NewQuery(1).
		Question(string(long)+".com", domain.RRTypeA, domain.RRClassIN).
		Encode()
	assert.ErrorIs(t, err, codec.ErrInvalidDomainName)
}

func TestIDNANameConversion(t *testing.T) {
	got, err := NewQuery(1).
		Question("bücher.example", domain.RRTypeA, domain.RRClassIN).
		Encode()
	require.NoError(t, err)

	msg, err := codec.DecodeMessage(got)
	require.NoError(t, err)
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "xn--bcher-kva.example", msg.Questions[0].Name.String())
}

func TestRepeatedNamesHitTheCache(t *testing.T) {
	b := NewQuery(1)
	for i := 0; i < 10; i++ {
		b.Answer("example.com", domain.RRTypeA, domain.RRClassIN, 60, []byte{192, 0, 2, byte(i)})
	}
	buf, err := b.Encode()
	require.NoError(t, err)

	msg, err := codec.DecodeMessage(buf)
	require.NoError(t, err)
	require.Len(t, msg.Answers, 10)
	for i, r := range msg.Answers {
		assert.Equal(t, "example.com", r.Name.String(), "answer %d", i)
	}
}
