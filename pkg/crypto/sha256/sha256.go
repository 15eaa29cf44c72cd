// Package sha256 is a streaming SHA-256 (FIPS 180-4) implementation.
//
// A Digest represents exactly one hash computation. It accepts any number of
// writes and is consumed by Finalize; touching it afterwards panics. Hash
// several streams by creating one Digest per stream.
package sha256

import (
	"encoding/binary"
	"errors"
)

// ErrFinalized is the panic value raised when a Digest is used after Finalize.
var ErrFinalized = errors.New("sha256: digest used after Finalize")

// Digest holds the state of one in-progress SHA-256 computation.
// It is not safe for concurrent use.
type Digest struct {
	state [8]uint32
	buf   [BlockSize]byte
	nbuf  int
	total uint64
	done  bool
}

// New returns an empty Digest.
func New() *Digest {
	return &Digest{state: initState}
}

// Write appends p to the hashed stream. It always returns len(p), nil so a
// Digest can be the destination of io.Copy.
func (d *Digest) Write(p []byte) (int, error) {
	if d.done {
		panic(ErrFinalized)
	}

	n := len(p)
	d.total += uint64(n)

	// Top up a block left partially filled by an earlier call.
	if d.nbuf > 0 {
		c := copy(d.buf[d.nbuf:], p)
		d.nbuf += c
		p = p[c:]
		if d.nbuf < BlockSize {
			return n, nil
		}
		compress(&d.state, d.buf[:])
		d.nbuf = 0
	}

	for len(p) >= BlockSize {
		compress(&d.state, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

// Len returns the number of bytes written so far.
func (d *Digest) Len() uint64 {
	return d.total
}

// Finalize pads the stream, processes the final block(s) and returns the
// digest. The Digest cannot be used again.
func (d *Digest) Finalize() [Size]byte {
	if d.done {
		panic(ErrFinalized)
	}
	d.done = true

	bitLen := d.total << 3

	d.buf[d.nbuf] = 0x80
	d.nbuf++

	// No room left for the length field: pad out this block and start another.
	if d.nbuf > lengthOffset {
		clear(d.buf[d.nbuf:])
		compress(&d.state, d.buf[:])
		d.nbuf = 0
	}

	clear(d.buf[d.nbuf:lengthOffset])
	binary.BigEndian.PutUint64(d.buf[lengthOffset:], bitLen)
	compress(&d.state, d.buf[:])

	var out [Size]byte
	for i, word := range d.state {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}

	// Wipe buffered message bytes and the chaining state.
	clear(d.buf[:])
	d.state = [8]uint32{}
	return out
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	return d.Finalize()
}
