package codec

import "testing"

func BenchmarkDecodeMessage(b *testing.B) {
	buf := sampleQuery()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeMessage(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeMessage(b *testing.B) {
	msg, err := DecodeMessage(sampleQuery())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeMessage(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeName(b *testing.B) {
	buf := sampleQuery()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := DecodeName(buf, 12); err != nil {
			b.Fatal(err)
		}
	}
}
