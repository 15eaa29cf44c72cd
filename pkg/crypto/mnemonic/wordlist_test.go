package mnemonic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39/wordlists"
)

func TestEnglishWordlist(t *testing.T) {
	require.Equal(t, WordlistSize, English.Len())

	tests := []struct {
		index uint16
		word  string
	}{
		{0, "abandon"},
		{3, "about"},
		{2047, "zoo"},
	}
	for _, tt := range tests {
		word, err := English.Word(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.word, word)

		index, ok := English.Index(tt.word)
		assert.True(t, ok)
		assert.Equal(t, tt.index, index)
	}

	for i, word := range wordlists.English {
		index, ok := English.Index(word)
		require.True(t, ok, word)
		require.Equal(t, uint16(i), index)
	}

	_, ok := English.Index("notaword")
	assert.False(t, ok)
}

func TestWordlistBounds(t *testing.T) {
	_, err := English.Word(WordlistSize)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = English.Word(0xffff)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewWordlist(t *testing.T) {
	_, err := NewWordlist([]string{"one", "two"})
	assert.ErrorIs(t, err, ErrWordlistSize)

	words := make([]string, WordlistSize)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	words[10] = words[5]

	wl, err := NewWordlist(words)
	require.NoError(t, err)

	index, ok := wl.Index("w0005")
	assert.True(t, ok)
	assert.Equal(t, uint16(5), index)

	// The list keeps its own copy.
	words[0] = "changed"
	word, err := wl.Word(0)
	require.NoError(t, err)
	assert.Equal(t, "w0000", word)
}
