// Package entropy produces and holds the random seed material a mnemonic is
// derived from.
package entropy

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Davincible/seedphrase/pkg/secure"
)

var (
	// ErrInvalidSize is returned for a byte count outside ValidSizes.
	ErrInvalidSize = errors.New("invalid entropy size")

	// ErrGenerationFailure is returned when the random source cannot fill the
	// buffer. It is never retried.
	ErrGenerationFailure = errors.New("failed to generate entropy")
)

const (
	MinSize = 16
	MaxSize = 32
)

// ValidSizes lists the supported entropy lengths in bytes (128 to 256 bits in
// 32-bit steps).
var ValidSizes = []int{16, 20, 24, 28, 32}

// Entropy is an immutable block of seed material.
type Entropy struct {
	data *secure.SecureBytes
}

// ValidSize reports whether size is one of ValidSizes.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize && size%4 == 0
}

// Generate reads exactly size bytes from random. The size is checked before
// anything is read from random.
func Generate(random io.Reader, size int) (*Entropy, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d bytes, must be one of %v", ErrInvalidSize, size, ValidSizes)
	}

	buf := make([]byte, size)
	defer secure.Zero(buf)

	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, err)
	}

	return &Entropy{data: secure.FromBytes(buf)}, nil
}

// FromBytes copies caller-supplied entropy.
func FromBytes(b []byte) (*Entropy, error) {
	if !ValidSize(len(b)) {
		return nil, fmt.Errorf("%w: %d bytes, must be one of %v", ErrInvalidSize, len(b), ValidSizes)
	}
	return &Entropy{data: secure.FromBytes(b)}, nil
}

// FromHex decodes hex-encoded entropy.
func FromHex(s string) (*Entropy, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid entropy hex: %w", err)
	}
	defer secure.Zero(b)
	return FromBytes(b)
}

// SizeForWordCount maps a mnemonic length to its entropy size in bytes.
func SizeForWordCount(words int) (int, error) {
	switch words {
	case 12, 15, 18, 21, 24:
		// words*11 = bits + bits/32, so bits = words*11*32/33.
		return words * 11 * 32 / 33 / 8, nil
	default:
		return 0, fmt.Errorf("%w: no entropy size for %d words", ErrInvalidSize, words)
	}
}

// Bytes returns a copy of the entropy.
func (e *Entropy) Bytes() []byte {
	return e.data.Get()
}

// Len returns the entropy length in bytes.
func (e *Entropy) Len() int {
	return e.data.Len()
}

// BitLen returns the entropy length in bits.
func (e *Entropy) BitLen() int {
	return e.Len() * 8
}

// ChecksumBitLen returns the number of checksum bits a mnemonic of this
// entropy carries.
func (e *Entropy) ChecksumBitLen() int {
	return e.BitLen() / 32
}

// WordCount returns the number of mnemonic words this entropy encodes to.
func (e *Entropy) WordCount() int {
	return (e.BitLen() + e.ChecksumBitLen()) / 11
}

// Hex renders the entropy as lowercase hex, for diagnostics.
func (e *Entropy) Hex() string {
	b := e.Bytes()
	defer secure.Zero(b)
	return hex.EncodeToString(b)
}

// Wipe zeroes the entropy. The value must not be used afterwards.
func (e *Entropy) Wipe() {
	e.data.Destroy()
}
