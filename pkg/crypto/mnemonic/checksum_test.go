package mnemonic

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntropy(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestChecksumBits(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		data := testEntropy(size)
		bits, n := ChecksumBits(data)

		assert.Equal(t, uint(size*8/32), n, "%d bytes", size)

		sum := stdsha256.Sum256(data)
		assert.Equal(t, sum[0]>>(8-n), bits, "%d bytes", size)
	}
}

func TestChecksumBitsPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { ChecksumBits(make([]byte, 17)) })
	assert.Panics(t, func() { AppendChecksum(make([]byte, 40)) })
}

func TestAppendChecksum(t *testing.T) {
	tests := []struct {
		entropy  string
		combined string
	}{
		{"00000000000000000000000000000000", "0000000000000000000000000000000030"},
		{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f80"},
		{"ffffffffffffffffffffffffffffffff", "ffffffffffffffffffffffffffffffff50"},
		{"000102030405060708090a0b0c0d0e0f10111213", "000102030405060708090a0b0c0d0e0f10111213e0"},
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"000000000000000000000000000000000000000000000000000000000000000066",
		},
	}

	for _, tt := range tests {
		t.Run(tt.entropy, func(t *testing.T) {
			data, err := hex.DecodeString(tt.entropy)
			require.NoError(t, err)

			combined := AppendChecksum(data)
			assert.Equal(t, tt.combined, hex.EncodeToString(combined))
			assert.Len(t, combined, len(data)+1)
		})
	}
}

func TestAppendChecksumGrowsInPlace(t *testing.T) {
	buf := make([]byte, 16, 17)
	combined := AppendChecksum(buf)

	require.Len(t, combined, 17)
	assert.Same(t, &buf[0], &combined[0])
}

func TestCombinedBitLen(t *testing.T) {
	tests := []struct {
		size     int
		checksum int
		combined int
		words    int
	}{
		{16, 4, 132, 12},
		{20, 5, 165, 15},
		{24, 6, 198, 18},
		{28, 7, 231, 21},
		{32, 8, 264, 24},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.checksum, ChecksumBitLen(tt.size))
		assert.Equal(t, tt.combined, CombinedBitLen(tt.size))
		assert.Zero(t, CombinedBitLen(tt.size)%BitsPerWord)
		assert.Equal(t, tt.words, CombinedBitLen(tt.size)/BitsPerWord)
	}
}
