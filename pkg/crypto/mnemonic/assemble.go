package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/Davincible/seedphrase/pkg/secure"
)

var (
	ErrInvalidWord      = errors.New("word is not a member of the wordlist")
	ErrInvalidWordCount = errors.New("mnemonic must have 12, 15, 18, 21, or 24 words")
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
)

// Assemble maps indices through list and joins the words with single spaces.
func Assemble(indices []uint16, list *Wordlist) (string, error) {
	words := make([]string, len(indices))
	for i, index := range indices {
		word, err := list.Word(index)
		if err != nil {
			return "", fmt.Errorf("word %d: %w", i+1, err)
		}
		words[i] = word
	}
	return strings.Join(words, " "), nil
}

// DecodeWords maps each word to its index in list. Every unknown word is
// reported, not only the first.
func DecodeWords(words []string, list *Wordlist) ([]uint16, error) {
	var merr *multierror.Error

	indices := make([]uint16, len(words))
	for i, word := range words {
		index, ok := list.Index(word)
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: word %d %q", ErrInvalidWord, i+1, word))
			continue
		}
		indices[i] = index
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return indices, nil
}

// EntropyFromMnemonic recovers the entropy encoded by phrase and checks its
// checksum.
func EntropyFromMnemonic(phrase string, list *Wordlist) ([]byte, error) {
	words := strings.Fields(phrase)
	if !ValidateWordCount(len(words)) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, len(words))
	}

	indices, err := DecodeWords(words, list)
	if err != nil {
		return nil, err
	}

	combined := JoinIndices(indices)
	defer secure.Zero(combined)

	bitLen := len(indices) * BitsPerWord
	entropyLen := bitLen * 32 / 33 / 8

	data := make([]byte, entropyLen, entropyLen+1)
	copy(data, combined)

	expected := AppendChecksum(data)
	defer secure.Zero(expected)

	if !secure.ConstantTimeCompare(expected, combined) {
		return nil, ErrChecksumMismatch
	}

	result := make([]byte, entropyLen)
	copy(result, expected)
	return result, nil
}
