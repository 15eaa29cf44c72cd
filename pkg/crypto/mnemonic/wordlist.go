package mnemonic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordlistSize is the number of words an 11-bit index can address.
const WordlistSize = 1 << BitsPerWord

var (
	ErrWordlistSize    = errors.New("wordlist must contain exactly 2048 words")
	ErrIndexOutOfRange = errors.New("word index out of range")
)

// English is the BIP-39 English wordlist.
var English = mustWordlist(wordlists.English)

// Wordlist is a read-only, ordered dictionary mapping 11-bit indices to words.
type Wordlist struct {
	words []string
	index map[string]uint16
}

// NewWordlist copies words into a Wordlist. The content is not checked beyond
// its length; for duplicated words Index reports the first position.
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: got %d", ErrWordlistSize, len(words))
	}

	wl := &Wordlist{
		words: slices.Clone(words),
		index: make(map[string]uint16, len(words)),
	}
	for i, word := range wl.words {
		if _, exists := wl.index[word]; !exists {
			wl.index[word] = uint16(i)
		}
	}
	return wl, nil
}

func mustWordlist(words []string) *Wordlist {
	wl, err := NewWordlist(words)
	if err != nil {
		panic(err)
	}
	return wl
}

func (wl *Wordlist) Len() int {
	return len(wl.words)
}

// Word returns the word at index.
func (wl *Wordlist) Word(index uint16) (string, error) {
	if int(index) >= len(wl.words) {
		return "", fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, len(wl.words))
	}
	return wl.words[index], nil
}

// Index returns the position of word, if present.
func (wl *Wordlist) Index(word string) (uint16, bool) {
	i, ok := wl.index[word]
	return i, ok
}
