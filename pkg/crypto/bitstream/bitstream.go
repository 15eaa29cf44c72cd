// Package bitstream reads and writes fixed-width unsigned values from a byte
// slice, most significant bit first, without regard to byte alignment.
package bitstream

import "fmt"

// MaxWidth is the widest value ReadBits and WriteBits handle in one call.
const MaxWidth = 32

// Reader is a cursor over a bitstream. The cursor is a byte index plus a bit
// offset within that byte, counted from the most significant bit.
type Reader struct {
	data   []byte
	nBits  int
	byteAt int
	bitAt  uint
}

// NewReader returns a Reader over the first nBits bits of data.
func NewReader(data []byte, nBits int) *Reader {
	if nBits < 0 || nBits > len(data)*8 {
		panic(fmt.Sprintf("bitstream: bit length %d does not fit in %d bytes", nBits, len(data)))
	}
	return &Reader{data: data, nBits: nBits}
}

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() int {
	return r.byteAt*8 + int(r.bitAt)
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.nBits - r.Offset()
}

// ReadBits consumes the next n bits and returns them as an unsigned value,
// the first bit read becoming the most significant.
func (r *Reader) ReadBits(n uint) uint32 {
	if n > MaxWidth {
		panic(fmt.Sprintf("bitstream: cannot read %d bits at once", n))
	}
	if int(n) > r.Remaining() {
		panic(fmt.Sprintf(
			"bitstream: attempted to read %d bits with only %d remaining", n, r.Remaining(),
		))
	}

	var v uint32
	for n > 0 {
		// Take as many bits as the current byte still holds, up to n.
		avail := 8 - r.bitAt
		take := min(avail, n)

		shift := avail - take
		chunk := (uint32(r.data[r.byteAt]) >> shift) & (1<<take - 1)
		v = v<<take | chunk

		r.bitAt += take
		if r.bitAt == 8 {
			r.byteAt++
			r.bitAt = 0
		}
		n -= take
	}
	return v
}

// Writer accumulates fixed-width values into a packed bitstream.
type Writer struct {
	data  []byte
	nBits int
}

// NewWriter returns a Writer that appends after the first nBits bits of buf,
// reusing buf's storage. Bits of buf beyond nBits are cleared. Passing nil, 0
// starts an empty stream.
func NewWriter(buf []byte, nBits int) *Writer {
	if nBits < 0 || nBits > len(buf)*8 {
		panic(fmt.Sprintf("bitstream: bit length %d does not fit in %d bytes", nBits, len(buf)))
	}
	data := buf[:(nBits+7)/8]
	if r := nBits % 8; r != 0 {
		data[len(data)-1] &^= byte(0xFF) >> r
	}
	return &Writer{data: data, nBits: nBits}
}

// WriteBits appends the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n uint) {
	if n > MaxWidth {
		panic(fmt.Sprintf("bitstream: cannot write %d bits at once", n))
	}
	if n < MaxWidth && v>>n != 0 {
		panic(fmt.Sprintf("bitstream: value %d does not fit in %d bits", v, n))
	}

	for n > 0 {
		bitAt := uint(w.nBits % 8)
		if bitAt == 0 {
			w.data = append(w.data, 0)
		}

		free := 8 - bitAt
		take := min(free, n)

		chunk := (v >> (n - take)) & (1<<take - 1)
		w.data[len(w.data)-1] |= byte(chunk << (free - take))

		w.nBits += int(take)
		n -= take
	}
}

// Bytes returns the packed stream. Unused low bits of the last byte are zero.
func (w *Writer) Bytes() []byte {
	return w.data
}

// BitLen returns the number of bits written.
func (w *Writer) BitLen() int {
	return w.nBits
}
