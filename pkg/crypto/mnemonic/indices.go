package mnemonic

import (
	"fmt"

	"github.com/Davincible/seedphrase/pkg/crypto/bitstream"
)

// BitsPerWord is the width of one word index.
const BitsPerWord = 11

// ExtractIndices splits the first bitLen bits of stream into 11-bit word
// indices, most significant bit first. bitLen must be a multiple of
// BitsPerWord; streams built by AppendChecksum always are.
func ExtractIndices(stream []byte, bitLen int) []uint16 {
	if bitLen%BitsPerWord != 0 {
		panic(fmt.Sprintf("mnemonic: bit length %d is not a multiple of %d", bitLen, BitsPerWord))
	}

	r := bitstream.NewReader(stream, bitLen)
	indices := make([]uint16, bitLen/BitsPerWord)
	for i := range indices {
		indices[i] = uint16(r.ReadBits(BitsPerWord))
	}
	return indices
}

// JoinIndices concatenates 11-bit indices back into a packed bitstream. It
// is the inverse of ExtractIndices.
func JoinIndices(indices []uint16) []byte {
	w := bitstream.NewWriter(make([]byte, 0, (len(indices)*BitsPerWord+7)/8), 0)
	for _, index := range indices {
		w.WriteBits(uint32(index), BitsPerWord)
	}
	return w.Bytes()
}
