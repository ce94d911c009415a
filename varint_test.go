package mqtt311

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRemainingLength(t *testing.T) {
	tests := []struct {
		name     string
		input    uint32
		expected []byte
		wantErr  error
	}{
		{name: "zero", input: 0, expected: []byte{0x00}},
		{name: "max_single_byte", input: 127, expected: []byte{0x7F}},
		{name: "min_two_byte", input: 128, expected: []byte{0x80, 0x01}},
		{name: "max_two_byte", input: 16383, expected: []byte{0xFF, 0x7F}},
		{name: "min_three_byte", input: 16384, expected: []byte{0x80, 0x80, 0x01}},
		{name: "max_three_byte", input: 2097151, expected: []byte{0xFF, 0xFF, 0x7F}},
		{name: "min_four_byte", input: 2097152, expected: []byte{0x80, 0x80, 0x80, 0x01}},
		{name: "max_four_byte_max_value", input: 268435455, expected: []byte{0xFF, 0xFF, 0xFF, 0x7F}},
		{name: "too_large", input: 268435456, wantErr: ErrPayloadTooLarge},
		{name: "way_too_large", input: 4294967295, wantErr: ErrPayloadTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeRemainingLength(tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, len(tc.expected), SizeRemainingLength(tc.input))
		})
	}
}

func TestDecodeRemainingLength(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    uint32
		wantErr error
	}{
		{name: "zero", input: []byte{0x00}, want: 0},
		{name: "max_single_byte", input: []byte{0x7F}, want: 127},
		{name: "min_two_byte", input: []byte{0x80, 0x01}, want: 128},
		{name: "max_four_byte_max_value", input: []byte{0xFF, 0xFF, 0xFF, 0x7F}, want: 268435455},
		{name: "malformed_vlq_five_continuation_bytes", input: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, wantErr: ErrMalformedLength},
		{name: "truncated_mid_continuation", input: []byte{0x80}, wantErr: ErrTruncated},
		{name: "empty", input: []byte{}, wantErr: ErrTruncated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRemainingLength(newReader(tc.input))
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRemainingLengthRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455} {
		encoded, err := EncodeRemainingLength(v)
		require.NoError(t, err)
		decoded, err := DecodeRemainingLength(newReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func FuzzRemainingLengthRoundTrip(f *testing.F) {
	for _, seed := range []uint32{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455, 268435456, 4294967295} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, value uint32) {
		encoded, err := EncodeRemainingLength(value)
		if value > MaxRemainingLength {
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPayloadTooLarge)
			return
		}
		require.NoError(t, err)
		assert.LessOrEqual(t, len(encoded), 4)
		assert.GreaterOrEqual(t, len(encoded), 1)

		decoded, err := DecodeRemainingLength(newReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	})
}
