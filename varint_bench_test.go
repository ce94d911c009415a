package mqtt311

import "testing"

func BenchmarkEncodeRemainingLength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = EncodeRemainingLength(268435455)
	}
}

func BenchmarkDecodeRemainingLength(b *testing.B) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0x7F}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeRemainingLength(newReader(buf))
	}
}
