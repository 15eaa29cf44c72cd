package mnemonic

import (
	"fmt"

	"github.com/Davincible/seedphrase/pkg/crypto/bitstream"
	"github.com/Davincible/seedphrase/pkg/crypto/entropy"
	"github.com/Davincible/seedphrase/pkg/crypto/sha256"
)

// ChecksumBitLen returns the checksum length in bits for entropyLen bytes.
func ChecksumBitLen(entropyLen int) int {
	return entropyLen * 8 / 32
}

// CombinedBitLen returns the bit length of entropy plus checksum.
func CombinedBitLen(entropyLen int) int {
	return entropyLen*8 + ChecksumBitLen(entropyLen)
}

// ChecksumBits returns the leading ChecksumBitLen(len(data)) bits of
// SHA-256(data), right aligned, together with their count.
//
// data must have a length in entropy.ValidSizes.
func ChecksumBits(data []byte) (byte, uint) {
	if !entropy.ValidSize(len(data)) {
		panic(fmt.Sprintf("mnemonic: cannot checksum %d bytes of entropy", len(data)))
	}

	n := uint(ChecksumBitLen(len(data)))
	sum := sha256.Sum256(data)
	return sum[0] >> (8 - n), n
}

// AppendChecksum appends the checksum bits of data directly after its last
// bit and returns the grown slice, in the manner of append: data's backing
// array is reused when it has room. The result holds
// CombinedBitLen(len(data)) meaningful bits; the unused low bits of its last
// byte are zero.
func AppendChecksum(data []byte) []byte {
	bits, n := ChecksumBits(data)

	w := bitstream.NewWriter(data, len(data)*8)
	w.WriteBits(uint32(bits), n)
	return w.Bytes()
}
