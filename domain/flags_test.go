package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsBitPositions(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Flags
	}{
		{name: "zero word", word: 0x0000, want: Flags{}},
		{name: "QR is bit 15", word: 0x8000, want: Flags{QR: true}},
		{name: "opcode occupies bits 11-14", word: 0x7800, want: Flags{OpCode: 0x0F}},
		{name: "opcode status", word: 0x1000, want: Flags{OpCode: OpCodeStatus}},
		{name: "AA is bit 10", word: 0x0400, want: Flags{AA: true}},
		{name: "TC is bit 9", word: 0x0200, want: Flags{TC: true}},
		{name: "RD is bit 8", word: 0x0100, want: Flags{RD: true}},
		{name: "RA is bit 7", word: 0x0080, want: Flags{RA: true}},
		{name: "Z occupies bits 4-6", word: 0x0070, want: Flags{Z: 0x07}},
		{name: "rcode occupies bits 0-3", word: 0x000F, want: Flags{RCode: 0x0F}},
		{name: "rcode nxdomain", word: 0x0003, want: Flags{RCode: RCodeNXDomain}},
		{
			name: "typical response word",
			word: 0x8583,
			want: Flags{QR: true, AA: true, RD: true, RA: true, RCode: RCodeNXDomain},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlagsFromUint16(tt.word)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.word, got.Uint16())
		})
	}
}

func TestFlagsUint16MasksOversizedFields(t *testing.T) {
	f := Flags{OpCode: 0x1F, Z: 0xFF, RCode: 0x0F}
	got := f.Uint16()
	assert.Equal(t, uint16(0x7800), got&0x7800)
	assert.Equal(t, uint16(0x0070), got&0x0070)
	assert.Equal(t, uint16(0x000F), got&0x000F)
	// nothing may leak into the single-bit flags
	assert.Zero(t, got&(0x8000|0x0400|0x0200|0x0100|0x0080))
}

func TestFlagsRoundTripExhaustiveBits(t *testing.T) {
	// every single-bit word must survive a decompose/pack cycle untouched
	for bit := 0; bit < 16; bit++ {
		word := uint16(1) << bit
		assert.Equal(t, word, FlagsFromUint16(word).Uint16(), "bit %d", bit)
	}
}

func TestOpCodeString(t *testing.T) {
	assert.Equal(t, "QUERY", OpCodeQuery.String())
	assert.Equal(t, "NOTIFY", OpCodeNotify.String())
	assert.Equal(t, "UNKNOWN(3)", OpCode(3).String())
}
