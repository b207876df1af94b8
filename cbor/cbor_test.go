package cbor

import (
	"bytes"
	"testing"
)

func TestUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 23, 24, 255, 256, 65535, 65536, 1 << 32, 1<<64 - 1} {
		w := NewWriter()
		w.WriteUint(v)
		r := NewReader(w.Bytes())
		if r.PeekState() != StateUnsignedInt {
			t.Fatalf("PeekState=%v want UnsignedInt for %d", r.PeekState(), v)
		}
		got, err := r.ReadUint()
		if err != nil {
			t.Fatalf("ReadUint(%d) failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("ReadUint=%d want %d", got, v)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, -24, -25, 23, -1000000, 1000000} {
		w := NewWriter()
		w.WriteInt(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadInt()
		if err != nil {
			t.Fatalf("ReadInt(%d) failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("ReadInt=%d want %d", got, v)
		}
	}
}

func TestBoolNullUndefinedRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteNull()
	w.WriteUndefined()
	r := NewReader(w.Bytes())
	if b, err := r.ReadBool(); err != nil || b != true {
		t.Fatalf("ReadBool#1=%v,%v want true,nil", b, err)
	}
	if b, err := r.ReadBool(); err != nil || b != false {
		t.Fatalf("ReadBool#2=%v,%v want false,nil", b, err)
	}
	if err := r.ReadNull(); err != nil {
		t.Fatalf("ReadNull failed: %v", err)
	}
	if err := r.ReadUndefined(); err != nil {
		t.Fatalf("ReadUndefined failed: %v", err)
	}
}

func TestByteStringRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 40)
	w := NewWriter()
	w.WriteByteString(payload)
	r := NewReader(w.Bytes())
	got, err := r.ReadByteString()
	if err != nil {
		t.Fatalf("ReadByteString failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadByteString mismatch")
	}
}

func TestTextStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteTextString("hello ledger")
	r := NewReader(w.Bytes())
	got, err := r.ReadTextString()
	if err != nil {
		t.Fatalf("ReadTextString failed: %v", err)
	}
	if got != "hello ledger" {
		t.Fatalf("ReadTextString=%q", got)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteStartArray(3)
	w.WriteUint(1)
	w.WriteUint(2)
	w.WriteUint(3)
	r := NewReader(w.Bytes())
	n, err := r.ReadStartArray()
	if err != nil || n != 3 {
		t.Fatalf("ReadStartArray=%d,%v want 3,nil", n, err)
	}
	for i := uint64(1); i <= 3; i++ {
		got, err := r.ReadUint()
		if err != nil || got != i {
			t.Fatalf("element %d: got=%d err=%v", i, got, err)
		}
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("ReadEndArray failed: %v", err)
	}
}

func TestArrayElementCountMismatchRejected(t *testing.T) {
	w := NewWriter()
	w.WriteStartArray(2)
	w.WriteUint(1)
	w.WriteUint(2)
	r := NewReader(w.Bytes())
	if _, err := r.ReadStartArray(); err != nil {
		t.Fatalf("ReadStartArray failed: %v", err)
	}
	if _, err := r.ReadUint(); err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	if err := r.ReadEndArray(); err == nil {
		t.Fatalf("expected ReadEndArray to fail before all elements consumed")
	}
}

func TestSortedMapCanonicalOrdering(t *testing.T) {
	entries := []MapEntry{
		{Key: EncodeItem(func(w *Writer) { w.WriteUint(2) }), Value: EncodeItem(func(w *Writer) { w.WriteTextString("b") })},
		{Key: EncodeItem(func(w *Writer) { w.WriteUint(0) }), Value: EncodeItem(func(w *Writer) { w.WriteTextString("a") })},
		{Key: EncodeItem(func(w *Writer) { w.WriteUint(1) }), Value: EncodeItem(func(w *Writer) { w.WriteTextString("c") })},
	}
	w := NewWriter()
	if err := WriteSortedMap(w, entries); err != nil {
		t.Fatalf("WriteSortedMap failed: %v", err)
	}
	r := NewReader(w.Bytes())
	n, err := r.ReadStartMap()
	if err != nil || n != 3 {
		t.Fatalf("ReadStartMap=%d,%v want 3,nil", n, err)
	}
	wantKeys := []uint64{0, 1, 2}
	wantVals := []string{"a", "c", "b"}
	for i := 0; i < 3; i++ {
		k, err := r.ReadUint()
		if err != nil || k != wantKeys[i] {
			t.Fatalf("key[%d]=%d,%v want %d", i, k, err, wantKeys[i])
		}
		v, err := r.ReadTextString()
		if err != nil || v != wantVals[i] {
			t.Fatalf("value[%d]=%q,%v want %q", i, v, err, wantVals[i])
		}
	}
	if err := r.ReadEndMap(); err != nil {
		t.Fatalf("ReadEndMap failed: %v", err)
	}
}

func TestSortedMapRejectsDuplicateKeys(t *testing.T) {
	entries := []MapEntry{
		{Key: EncodeItem(func(w *Writer) { w.WriteUint(1) }), Value: EncodeItem(func(w *Writer) { w.WriteTextString("a") })},
		{Key: EncodeItem(func(w *Writer) { w.WriteUint(1) }), Value: EncodeItem(func(w *Writer) { w.WriteTextString("b") })},
	}
	if err := WriteSortedMap(NewWriter(), entries); err == nil {
		t.Fatalf("expected duplicate-key rejection")
	}
}

func TestTagAndSetRoundTrip(t *testing.T) {
	w := NewWriter()
	WriteSet(w, [][]byte{
		EncodeItem(func(w *Writer) { w.WriteUint(1) }),
		EncodeItem(func(w *Writer) { w.WriteUint(2) }),
	})
	r := NewReader(w.Bytes())
	tag, err := r.ReadTag()
	if err != nil || tag != TagSet {
		t.Fatalf("ReadTag=%d,%v want %d,nil", tag, err, TagSet)
	}
	n, err := r.ReadStartArray()
	if err != nil || n != 2 {
		t.Fatalf("ReadStartArray=%d,%v want 2,nil", n, err)
	}
	if v, err := r.ReadUint(); err != nil || v != 1 {
		t.Fatalf("element 0=%d,%v", v, err)
	}
	if v, err := r.ReadUint(); err != nil || v != 2 {
		t.Fatalf("element 1=%d,%v", v, err)
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("ReadEndArray failed: %v", err)
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteDouble(3.14159)
	r := NewReader(w.Bytes())
	got, err := r.ReadDouble()
	if err != nil {
		t.Fatalf("ReadDouble failed: %v", err)
	}
	if got != 3.14159 {
		t.Fatalf("ReadDouble=%v want 3.14159", got)
	}
}

func TestReadEncodedValuePassthrough(t *testing.T) {
	inner := NewWriter()
	inner.WriteStartArray(2)
	inner.WriteUint(7)
	inner.WriteTextString("x")
	encoded := inner.Bytes()

	outer := NewWriter()
	outer.WriteStartArray(2)
	outer.WriteUint(1)
	outer.WriteRawEncoded(encoded)
	r := NewReader(outer.Bytes())
	if _, err := r.ReadStartArray(); err != nil {
		t.Fatalf("ReadStartArray failed: %v", err)
	}
	if _, err := r.ReadUint(); err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	raw, err := r.ReadEncodedValue()
	if err != nil {
		t.Fatalf("ReadEncodedValue failed: %v", err)
	}
	if !bytes.Equal(raw, encoded) {
		t.Fatalf("ReadEncodedValue mismatch: got %x want %x", raw, encoded)
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("ReadEndArray failed: %v", err)
	}
}

func TestOutOfBoundsReadRejected(t *testing.T) {
	r := NewReader([]byte{0x18}) // additional-info 24 but no following byte
	if _, err := r.ReadUint(); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
}

func TestEndOfDataState(t *testing.T) {
	r := NewReader(nil)
	if r.PeekState() != StateEndOfData {
		t.Fatalf("PeekState=%v want EndOfData", r.PeekState())
	}
}

func TestCloneIndependentCursor(t *testing.T) {
	w := NewWriter()
	w.WriteUint(1)
	w.WriteUint(2)
	r := NewReader(w.Bytes())
	if _, err := r.ReadUint(); err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	clone := r.Clone()
	if _, err := clone.ReadUint(); err != nil {
		t.Fatalf("clone ReadUint failed: %v", err)
	}
	if got, err := r.ReadUint(); err != nil || got != 2 {
		t.Fatalf("original reader should be unaffected by clone reads: got=%d err=%v", got, err)
	}
}
