package buffer

import (
	"bytes"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := New(0)
	b.Write([]byte("hello"))
	b.WriteUint32BE(0xdeadbeef)
	got, err := b.Read(5)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Fatalf("Read=%q want %q", got, "hello")
	}
	v, err := b.ReadUint32BE()
	if err != nil {
		t.Fatalf("ReadUint32BE failed: %v", err)
	}
	if v != 0xdeadbeef {
		t.Fatalf("ReadUint32BE=%x want %x", v, 0xdeadbeef)
	}
}

func TestReadPastEndFails(t *testing.T) {
	b := New(0)
	b.Write([]byte{1, 2, 3})
	if _, err := b.Read(4); err == nil {
		t.Fatalf("expected OutOfBoundsRead")
	}
}

func TestCopyToInsufficientSize(t *testing.T) {
	b := New(0)
	b.Write([]byte{1, 2, 3, 4})
	if err := b.CopyTo(make([]byte, 2)); err == nil {
		t.Fatalf("expected InsufficientBufferSize")
	}
}

func TestHexRoundTrip(t *testing.T) {
	b := New(0)
	b.Write([]byte{0xde, 0xad, 0xbe, 0xef})
	hexStr := b.ToHex()
	if hexStr != "deadbeef" {
		t.Fatalf("ToHex=%q want deadbeef", hexStr)
	}
	b2 := New(0)
	if err := b2.FromHex(hexStr); err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if !bytes.Equal(b2.Bytes(), b.Bytes()) {
		t.Fatalf("FromHex round-trip mismatch")
	}
}

func TestMemzero(t *testing.T) {
	b := New(0)
	b.Write([]byte{1, 2, 3, 4})
	b.Memzero()
	for _, v := range b.Bytes() {
		if v != 0 {
			t.Fatalf("Memzero left non-zero byte")
		}
	}
}

func TestSetSizeTruncateAndExtend(t *testing.T) {
	b := New(0)
	b.Write([]byte{1, 2, 3, 4, 5})
	b.SetSize(2)
	if !bytes.Equal(b.Bytes(), []byte{1, 2}) {
		t.Fatalf("truncate failed: %v", b.Bytes())
	}
	b.SetSize(4)
	if !bytes.Equal(b.Bytes(), []byte{1, 2, 0, 0}) {
		t.Fatalf("zero-extend failed: %v", b.Bytes())
	}
}
