package bitstream

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadBits(t *testing.T) {
	t.Run("across byte boundaries", func(t *testing.T) {
		// 1010_1010 1100_1100 1111_0000
		r := NewReader([]byte{0xAA, 0xCC, 0xF0}, 24)

		assert.Equal(t, uint32(0b101), r.ReadBits(3))
		assert.Equal(t, uint32(0b01010_110), r.ReadBits(8))
		assert.Equal(t, uint32(0b01100_1111_0), r.ReadBits(10))
		assert.Equal(t, 21, r.Offset())
		assert.Equal(t, 3, r.Remaining())
		assert.Equal(t, uint32(0b000), r.ReadBits(3))
		assert.Zero(t, r.Remaining())
	})

	t.Run("eleven bit chunks", func(t *testing.T) {
		// 0x00 0x20 -> first 11 bits 0000_0000_001 = 1.
		r := NewReader([]byte{0x00, 0x20, 0xFF, 0xE0}, 32)
		assert.Equal(t, uint32(1), r.ReadBits(11))
		// Next 11 bits: 00000 111_111 -> 0b00000111111 = 63.
		assert.Equal(t, uint32(63), r.ReadBits(11))
	})

	t.Run("full width", func(t *testing.T) {
		r := NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 32)
		assert.Equal(t, uint32(0xDEADBEEF), r.ReadBits(32))
	})

	t.Run("zero bits", func(t *testing.T) {
		r := NewReader([]byte{0xFF}, 8)
		assert.Zero(t, r.ReadBits(0))
		assert.Zero(t, r.Offset())
	})

	t.Run("bit length shorter than data", func(t *testing.T) {
		r := NewReader([]byte{0xFF, 0xFF}, 12)
		assert.Equal(t, uint32(0xFFF), r.ReadBits(12))
		assert.Panics(t, func() { r.ReadBits(1) })
	})
}

func TestReaderPanics(t *testing.T) {
	assert.Panics(t, func() { NewReader([]byte{0x00}, 9) })
	assert.Panics(t, func() { NewReader([]byte{0x00}, -1) })
	assert.Panics(t, func() { NewReader(make([]byte, 8), 64).ReadBits(33) })
	assert.Panics(t, func() { NewReader([]byte{0x00}, 8).ReadBits(9) })
}

func TestWriterWriteBits(t *testing.T) {
	w := NewWriter(nil, 0)
	w.WriteBits(0b101, 3)
	w.WriteBits(0b01010_110, 8)
	w.WriteBits(0b01100_1111_0, 10)
	w.WriteBits(0, 3)

	assert.Equal(t, 24, w.BitLen())
	if diff := cmp.Diff([]byte{0xAA, 0xCC, 0xF0}, w.Bytes()); diff != "" {
		t.Fatalf("unexpected bytes (-want +got):\n%s", diff)
	}
}

func TestWriterPartialTail(t *testing.T) {
	w := NewWriter(nil, 0)
	w.WriteBits(0x7FF, 11)

	assert.Equal(t, 11, w.BitLen())
	assert.Equal(t, []byte{0xFF, 0xE0}, w.Bytes())
}

func TestWriterAppendsToExisting(t *testing.T) {
	buf := make([]byte, 2, 3)
	buf[0], buf[1] = 0x12, 0x3F

	// Resume after 12 bits; the stale low nibble of buf[1] must be cleared.
	w := NewWriter(buf, 12)
	w.WriteBits(0xA, 4)
	w.WriteBits(0xB, 4)

	assert.Equal(t, 20, w.BitLen())
	assert.Equal(t, []byte{0x12, 0x3A, 0xB0}, w.Bytes())
}

func TestWriterPanics(t *testing.T) {
	assert.Panics(t, func() { NewWriter(nil, 0).WriteBits(0b100, 2) })
	assert.Panics(t, func() { NewWriter(nil, 0).WriteBits(0, 33) })
	assert.Panics(t, func() { NewWriter([]byte{0}, 9) })
	assert.NotPanics(t, func() { NewWriter(nil, 0).WriteBits(0xFFFFFFFF, 32) })
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(39))

	for _, width := range []uint{1, 3, 7, 8, 11, 13, 16, 32} {
		values := make([]uint32, 40)
		w := NewWriter(nil, 0)
		for i := range values {
			v := rng.Uint32()
			if width < 32 {
				v &= 1<<width - 1
			}
			values[i] = v
			w.WriteBits(v, width)
		}
		require.Equal(t, len(values)*int(width), w.BitLen())

		r := NewReader(w.Bytes(), w.BitLen())
		got := make([]uint32, len(values))
		for i := range got {
			got[i] = r.ReadBits(width)
		}
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("width %d: round trip mismatch (-want +got):\n%s", width, diff)
		}
	}
}
