package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func TestTransactionOutputSimpleRoundTrip(t *testing.T) {
	addr := bytes.Repeat([]byte{1}, 29)
	out := NewTransactionOutput(addr, NewCoinOnlyValue(1_500_000), nil, nil)
	w := cbor.NewWriter()
	if err := out.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransactionOutput(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionOutput: %v", err)
	}
	if !bytes.Equal(got.Address, addr) || got.Value.Coin != 1_500_000 {
		t.Fatalf("got %+v", got)
	}
	if got.Datum != nil || got.ScriptRef != nil {
		t.Fatalf("expected nil optional fields, got %+v", got)
	}
}

func TestTransactionOutputWithDatumAndScriptRef(t *testing.T) {
	addr := bytes.Repeat([]byte{2}, 29)
	datum := NewInlineDatum(NewPlutusDataInt(7))
	scriptRef := []byte{0xca, 0xfe}
	out := NewTransactionOutput(addr, NewCoinOnlyValue(5_000_000), &datum, scriptRef)
	w := cbor.NewWriter()
	if err := out.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransactionOutput(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionOutput: %v", err)
	}
	if got.Datum == nil || got.Datum.Kind != DatumInline || got.Datum.Inline.Int != 7 {
		t.Fatalf("datum mismatch: %+v", got.Datum)
	}
	if !bytes.Equal(got.ScriptRef, scriptRef) {
		t.Fatalf("scriptRef mismatch: %x", got.ScriptRef)
	}
}

func TestUTxOConstructor(t *testing.T) {
	txID := bytes.Repeat([]byte{3}, 32)
	in, err := NewTransactionInput(txID, 0)
	if err != nil {
		t.Fatalf("NewTransactionInput: %v", err)
	}
	out := NewTransactionOutput(bytes.Repeat([]byte{4}, 29), NewCoinOnlyValue(1), nil, nil)
	u := NewUTxO(in, out)
	if u.Input.Index != 0 || u.Output.Value.Coin != 1 {
		t.Fatalf("got %+v", u)
	}
}
