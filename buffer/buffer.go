// Package buffer implements a growable byte container with a dedicated read
// cursor, amortized-doubling growth, and an explicit zero-wipe primitive
// required before releasing any buffer that transitively held key material.
// It underlies the secure-key-handler's encrypted envelope assembly and
// parsing.
package buffer

import (
	"encoding/binary"
	"encoding/hex"

	"cardano-go-sdk/sdkerr"
)

// Buffer owns a heap region with (data, size, capacity) plus a read cursor.
// The zero value is an empty, usable Buffer.
type Buffer struct {
	data   []byte
	cursor int
}

// New returns an empty Buffer with capacity pre-allocated.
func New(capacityHint int) *Buffer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Buffer{data: make([]byte, 0, capacityHint)}
}

// FromBytes wraps an existing slice for reading; the cursor starts at 0.
// The slice is copied so later mutation of the caller's slice cannot alter
// the Buffer's contents out from under a concurrent reader.
func FromBytes(b []byte) *Buffer {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Buffer{data: cp}
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's full contents. The caller must not mutate the
// returned slice if the Buffer is still in use.
func (b *Buffer) Bytes() []byte { return b.data }

// Cursor returns the current read-cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SeekTo repositions the read cursor to an absolute offset.
func (b *Buffer) SeekTo(offset int) error {
	if offset < 0 || offset > len(b.data) {
		return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "SeekTo", "offset out of range")
	}
	b.cursor = offset
	return nil
}

// Write appends bytes, growing capacity by amortized doubling.
func (b *Buffer) Write(p []byte) {
	b.data = append(b.data, p...)
}

// Read consumes n bytes from the cursor and advances it. It fails with
// OutOfBoundsRead if fewer than n bytes remain.
func (b *Buffer) Read(n int) ([]byte, error) {
	if n < 0 || b.cursor+n > len(b.data) {
		return nil, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "Read", "short read")
	}
	out := b.data[b.cursor : b.cursor+n]
	b.cursor += n
	return out, nil
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.cursor }

// CopyTo copies the buffer's contents into dest, failing with
// InsufficientBufferSize if dest is too small.
func (b *Buffer) CopyTo(dest []byte) error {
	if len(dest) < len(b.data) {
		return sdkerr.New(sdkerr.CodeInsufficientBufferSize, "CopyTo", "destination too small")
	}
	copy(dest, b.data)
	return nil
}

// SetSize truncates or zero-extends the buffer to exactly n bytes.
func (b *Buffer) SetSize(n int) {
	switch {
	case n <= len(b.data):
		b.data = b.data[:n]
	default:
		grown := make([]byte, n)
		copy(grown, b.data)
		b.data = grown
	}
	if b.cursor > len(b.data) {
		b.cursor = len(b.data)
	}
}

// Memzero overwrites the entire backing array with zeros in place. Required
// before releasing any buffer that transitively held key material.
func (b *Buffer) Memzero() {
	full := b.data[:cap(b.data)]
	for i := range full {
		full[i] = 0
	}
}

// ToHex renders the stored bytes as a lowercase hex string.
func (b *Buffer) ToHex() string { return hex.EncodeToString(b.data) }

// FromHex replaces the buffer's contents by decoding s.
func (b *Buffer) FromHex(s string) error {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return sdkerr.Wrap(sdkerr.CodeDecoding, "FromHex", "invalid hex", err)
	}
	b.data = decoded
	b.cursor = 0
	return nil
}

//---------------------------------------------------------------------
// Fixed-width integer encoders/decoders
//---------------------------------------------------------------------

// WriteUint16BE appends v big-endian.
func (b *Buffer) WriteUint16BE(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint32BE appends v big-endian.
func (b *Buffer) WriteUint32BE(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint64BE appends v big-endian.
func (b *Buffer) WriteUint64BE(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint16LE appends v little-endian.
func (b *Buffer) WriteUint16LE(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint32LE appends v little-endian.
func (b *Buffer) WriteUint32LE(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint64LE appends v little-endian.
func (b *Buffer) WriteUint64LE(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.Write(tmp[:])
}

// ReadUint16BE consumes 2 bytes and decodes big-endian.
func (b *Buffer) ReadUint16BE() (uint16, error) {
	p, err := b.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// ReadUint32BE consumes 4 bytes and decodes big-endian.
func (b *Buffer) ReadUint32BE() (uint32, error) {
	p, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// ReadUint64BE consumes 8 bytes and decodes big-endian.
func (b *Buffer) ReadUint64BE() (uint64, error) {
	p, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// ReadUint16LE consumes 2 bytes and decodes little-endian.
func (b *Buffer) ReadUint16LE() (uint16, error) {
	p, err := b.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadUint32LE consumes 4 bytes and decodes little-endian.
func (b *Buffer) ReadUint32LE() (uint32, error) {
	p, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadUint64LE consumes 8 bytes and decodes little-endian.
func (b *Buffer) ReadUint64LE() (uint64, error) {
	p, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// Wipe zero-wipes p in place. Exported so callers holding raw key-material
// slices outside of a Buffer (stack scratch, scalar material) can reuse the
// same zero-on-release discipline.
func Wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
