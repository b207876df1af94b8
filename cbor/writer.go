package cbor

import (
	"bytes"
	"math"
	"sort"

	"cardano-go-sdk/sdkerr"
)

// Writer accumulates a deterministic RFC 8949 encoding. All containers are
// written with definite lengths; map keys are sorted by their encoded bytes
// in ascending lexicographic order, matching RFC 8949 §4.2's core
// deterministic encoding.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated encoding. The Writer remains usable after
// this call.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len reports how many bytes have been written so far.
func (w *Writer) Len() int { return w.buf.Len() }

func (w *Writer) writeHead(major uint8, value uint64) {
	m := major << 5
	switch {
	case value < 24:
		w.buf.WriteByte(m | uint8(value))
	case value <= 0xff:
		w.buf.WriteByte(m | 24)
		w.buf.WriteByte(uint8(value))
	case value <= 0xffff:
		w.buf.WriteByte(m | 25)
		w.buf.WriteByte(uint8(value >> 8))
		w.buf.WriteByte(uint8(value))
	case value <= 0xffffffff:
		w.buf.WriteByte(m | 26)
		for shift := 24; shift >= 0; shift -= 8 {
			w.buf.WriteByte(uint8(value >> uint(shift)))
		}
	default:
		w.buf.WriteByte(m | 27)
		for shift := 56; shift >= 0; shift -= 8 {
			w.buf.WriteByte(uint8(value >> uint(shift)))
		}
	}
}

// WriteUint writes an unsigned-integer item (major type 0).
func (w *Writer) WriteUint(v uint64) {
	w.writeHead(majorUnsigned, v)
}

// WriteInt writes a signed-integer item, choosing major type 0 or 1 per
// RFC 8949 §3.1.
func (w *Writer) WriteInt(v int64) {
	if v >= 0 {
		w.writeHead(majorUnsigned, uint64(v))
		return
	}
	w.writeHead(majorNegative, uint64(-1-v))
}

// WriteBool writes a boolean simple value.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(majorSimple<<5 | simpleTrue)
	} else {
		w.buf.WriteByte(majorSimple<<5 | simpleFalse)
	}
}

// WriteNull writes the null simple value.
func (w *Writer) WriteNull() {
	w.buf.WriteByte(majorSimple<<5 | simpleNull)
}

// WriteUndefined writes the undefined simple value.
func (w *Writer) WriteUndefined() {
	w.buf.WriteByte(majorSimple<<5 | simpleUndefined)
}

// WriteDouble writes v as an IEEE 754 binary64, never emitting half/single
// floats on output: this codec fixes float width at double precision
// rather than using shortest-form floats, matching deterministic encoding.
func (w *Writer) WriteDouble(v float64) {
	bits := math.Float64bits(v)
	w.buf.WriteByte(majorSimple<<5 | simpleDouble)
	for shift := 56; shift >= 0; shift -= 8 {
		w.buf.WriteByte(uint8(bits >> uint(shift)))
	}
}

// WriteByteString writes a definite-length byte string.
func (w *Writer) WriteByteString(b []byte) {
	w.writeHead(majorBytes, uint64(len(b)))
	w.buf.Write(b)
}

// WriteTextString writes a definite-length UTF-8 text string.
func (w *Writer) WriteTextString(s string) {
	w.writeHead(majorText, uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteStartArray writes a definite-length array head for n elements; the
// caller must follow with exactly n item writes.
func (w *Writer) WriteStartArray(n int64) {
	w.writeHead(majorArray, uint64(n))
}

// WriteStartMap writes a definite-length map head for n pairs. Prefer
// WriteSortedMap for emitting the pairs themselves so key ordering stays
// canonical.
func (w *Writer) WriteStartMap(n int64) {
	w.writeHead(majorMap, uint64(n))
}

// WriteTag writes a major-type-6 tag head; the caller must follow with the
// tagged item itself.
func (w *Writer) WriteTag(tag uint64) {
	w.writeHead(majorTag, tag)
}

// WriteRawEncoded appends already-encoded bytes verbatim, used by the
// cbor_cache passthrough mechanism to re-emit
// Plutus data and redeemers byte-for-byte without re-serializing them.
func (w *Writer) WriteRawEncoded(encoded []byte) {
	w.buf.Write(encoded)
}

// MapEntry is one key/value pair of pre-encoded CBOR bytes, used by
// WriteSortedMap to emit a canonically-ordered map.
type MapEntry struct {
	Key   []byte
	Value []byte
}

// WriteSortedMap writes a definite-length map head followed by entries
// sorted ascending by their encoded key bytes, per RFC 8949 §4.2's core
// deterministic encoding rule. Duplicate keys are rejected.
func WriteSortedMap(w *Writer, entries []MapEntry) error {
	sorted := make([]MapEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1].Key, sorted[i].Key) {
			return sdkerr.New(sdkerr.CodeInvalidArgument, "WriteSortedMap", "duplicate map key")
		}
	}
	w.WriteStartMap(int64(len(sorted)))
	for _, e := range sorted {
		w.WriteRawEncoded(e.Key)
		w.WriteRawEncoded(e.Value)
	}
	return nil
}

// WriteSet writes a tag-258 array, the ledger's canonical encoding for
// mathematical sets.
func WriteSet(w *Writer, elements [][]byte) {
	w.WriteTag(TagSet)
	w.WriteStartArray(int64(len(elements)))
	for _, e := range elements {
		w.WriteRawEncoded(e)
	}
}

// EncodeItem is a convenience for building one self-contained encoded item,
// most often used to produce the []byte a MapEntry.Key/Value or WriteSet
// element expects.
func EncodeItem(fn func(w *Writer)) []byte {
	w := NewWriter()
	fn(w)
	return w.Bytes()
}
