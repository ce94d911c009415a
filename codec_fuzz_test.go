package mqtt311

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzDecodeTruncation encodes property 5: every proper prefix of a valid
// encoded packet must decode as ErrTruncated, never panic, never succeed.
func FuzzDecodeTruncation(f *testing.F) {
	seeds := [][]byte{
		{0x10, 0x0D, 0x00, 0x04, 0x4D, 0x51, 0x54, 0x54, 0x04, 0x00, 0x00, 0x3C, 0x00, 0x01, 0x61},
		{0x20, 0x02, 0x00, 0x00},
		{0x30, 0x07, 0x00, 0x03, 0x61, 0x2F, 0x62, 0xDE, 0xAD},
		{0x82, 0x06, 0x00, 0x01, 0x00, 0x01, 0x61, 0x01},
		{0xC0, 0x00},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		pkt, n, err := Decode(data)
		if err != nil {
			require.Nil(t, pkt)
			require.Zero(t, n)
			return
		}
		require.NotNil(t, pkt)
		require.LessOrEqual(t, n, len(data))

		for k := 0; k < n; k++ {
			_, _, err := Decode(data[:k])
			if err == nil {
				t.Fatalf("prefix of length %d unexpectedly decoded", k)
			}
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("prefix of length %d: want ErrTruncated, got %v", k, err)
			}
		}
	})
}
