package entropy

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader records how many bytes were requested from it.
type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		wantWords int
		wantError bool
	}{
		{"16 bytes", 16, 12, false},
		{"20 bytes", 20, 15, false},
		{"24 bytes", 24, 18, false},
		{"28 bytes", 28, 21, false},
		{"32 bytes", 32, 24, false},
		{"Invalid: 0 bytes", 0, 0, true},
		{"Invalid: 15 bytes", 15, 0, true},
		{"Invalid: 17 bytes", 17, 0, true},
		{"Invalid: 33 bytes", 33, 0, true},
		{"Invalid: 64 bytes", 64, 0, true},
		{"Invalid: negative", -16, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingReader{r: rand.Reader}
			e, err := Generate(src, tt.size)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidSize)
				assert.Nil(t, e)
				assert.Zero(t, src.read, "no randomness may be consumed for an invalid size")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.size, e.Len())
			assert.Equal(t, tt.size, src.read)
			assert.Equal(t, tt.size*8, e.BitLen())
			assert.Equal(t, tt.size*8/32, e.ChecksumBitLen())
			assert.Equal(t, tt.wantWords, e.WordCount())
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, 32)

	e, err := Generate(bytes.NewReader(seed), 20)
	require.NoError(t, err)
	assert.Equal(t, seed[:20], e.Bytes())
	assert.Equal(t, "5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a", e.Hex())
}

func TestGenerateFailure(t *testing.T) {
	t.Run("reader error", func(t *testing.T) {
		e, err := Generate(failingReader{}, 16)
		assert.ErrorIs(t, err, ErrGenerationFailure)
		assert.Contains(t, err.Error(), "entropy source unavailable")
		assert.Nil(t, e)
	})

	t.Run("short read", func(t *testing.T) {
		e, err := Generate(bytes.NewReader(make([]byte, 10)), 16)
		assert.ErrorIs(t, err, ErrGenerationFailure)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Nil(t, e)
	})
}

func TestFromBytes(t *testing.T) {
	raw := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}

	e, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", e.Hex())

	// Entropy keeps its own copy.
	raw[0] = 0xff
	assert.Equal(t, byte(0x00), e.Bytes()[0])

	out := e.Bytes()
	out[1] = 0xff
	assert.Equal(t, byte(0x01), e.Bytes()[1])

	_, err = FromBytes(make([]byte, 18))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFromHex(t *testing.T) {
	e, err := FromHex("  7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f\n")
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x7f}, 16), e.Bytes())

	_, err = FromHex("zz")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSize)

	_, err = FromHex("00ff")
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSizeForWordCount(t *testing.T) {
	for words, size := range map[int]int{12: 16, 15: 20, 18: 24, 21: 28, 24: 32} {
		got, err := SizeForWordCount(words)
		require.NoError(t, err)
		assert.Equal(t, size, got, "%d words", words)
	}

	for _, words := range []int{0, 11, 13, 25, 48} {
		_, err := SizeForWordCount(words)
		assert.ErrorIs(t, err, ErrInvalidSize, "%d words", words)
	}
}

func TestWipe(t *testing.T) {
	e, err := FromBytes(bytes.Repeat([]byte{0xab}, 32))
	require.NoError(t, err)

	e.Wipe()
	assert.Zero(t, e.Len())
	assert.Empty(t, e.Bytes())
}

func TestValidSize(t *testing.T) {
	for size := -4; size <= MaxSize+8; size++ {
		assert.Equal(t, slices.Contains(ValidSizes, size), ValidSize(size), "size %d", size)
	}
	assert.Equal(t, MinSize, ValidSizes[0])
	assert.Equal(t, MaxSize, ValidSizes[len(ValidSizes)-1])
}
