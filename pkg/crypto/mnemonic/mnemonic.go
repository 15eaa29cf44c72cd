// Package mnemonic derives BIP-39 recovery phrases from entropy and decodes
// them back.
package mnemonic

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Davincible/seedphrase/pkg/crypto/entropy"
	"github.com/Davincible/seedphrase/pkg/crypto/sha256"
	"github.com/Davincible/seedphrase/pkg/secure"
)

// Mnemonic is a phrase whose words and checksum have been verified.
type Mnemonic struct {
	words []string
}

// Derivation records every stage of turning entropy into a phrase.
type Derivation struct {
	Entropy        []byte
	Checksum       byte
	ChecksumBits   uint
	Combined       []byte
	CombinedBitLen int
	Indices        []uint16
	Phrase         string
}

// Derive runs the full pipeline: checksum, 11-bit split, word lookup.
func Derive(e *entropy.Entropy, list *Wordlist) (*Derivation, error) {
	raw := e.Bytes()
	defer secure.Zero(raw)

	// Room for the checksum byte so AppendChecksum extends in place.
	data := make([]byte, len(raw), len(raw)+1)
	copy(data, raw)

	combined := AppendChecksum(data)
	bitLen := CombinedBitLen(len(raw))

	n := uint(ChecksumBitLen(len(raw)))
	checksum := combined[len(raw)] >> (8 - n)

	indices := ExtractIndices(combined, bitLen)
	phrase, err := Assemble(indices, list)
	if err != nil {
		secure.Zero(combined)
		return nil, err
	}

	return &Derivation{
		Entropy:        combined[:len(raw):len(raw)],
		Checksum:       checksum,
		ChecksumBits:   n,
		Combined:       combined,
		CombinedBitLen: bitLen,
		Indices:        indices,
		Phrase:         phrase,
	}, nil
}

// Wipe zeroes the secret material held by d.
func (d *Derivation) Wipe() {
	secure.Zero(d.Combined)
	clear(d.Indices)
	d.Checksum = 0
	d.Phrase = ""
}

// FromWords decodes words and keeps them only if the checksum holds.
func FromWords(words string) (*Mnemonic, error) {
	fields := strings.Fields(words)

	data, err := EntropyFromMnemonic(words, English)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic phrase: %w", err)
	}
	secure.Zero(data)

	return &Mnemonic{
		words: fields,
	}, nil
}

func (m *Mnemonic) Words() string {
	return strings.Join(m.words, " ")
}

func (m *Mnemonic) WordCount() int {
	return len(m.words)
}

func (m *Mnemonic) Entropy() ([]byte, error) {
	data, err := EntropyFromMnemonic(m.Words(), English)
	if err != nil {
		return nil, fmt.Errorf("failed to get entropy from mnemonic: %w", err)
	}
	return data, nil
}

// ChecksumMnemonic returns a short fingerprint of the entropy behind mnemonic:
// the hex of the first four bytes of its SHA-256.
func ChecksumMnemonic(mnemonic string) (string, error) {
	data, err := EntropyFromMnemonic(mnemonic, English)
	if err != nil {
		return "", fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer secure.Zero(data)

	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:4]), nil
}

func ValidateWordCount(count int) bool {
	validCounts := []int{12, 15, 18, 21, 24}
	for _, valid := range validCounts {
		if count == valid {
			return true
		}
	}
	return false
}

func EntropyBitsFromWordCount(wordCount int) (int, error) {
	switch wordCount {
	case 12:
		return 128, nil
	case 15:
		return 160, nil
	case 18:
		return 192, nil
	case 21:
		return 224, nil
	case 24:
		return 256, nil
	default:
		return 0, fmt.Errorf("invalid word count: %d", wordCount)
	}
}
