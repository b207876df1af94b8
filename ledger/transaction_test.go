package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func sampleTransaction(t *testing.T) Transaction {
	t.Helper()
	body := sampleBody(t)
	v, _ := NewVKeyWitness(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 64))
	ws := WitnessSet{VKeyWitnesses: []VKeyWitness{v}}
	return NewTransaction(body, ws, true, nil)
}

func TestTransactionEncodeDecodeRoundTrip(t *testing.T) {
	tx := sampleTransaction(t)
	w := cbor.NewWriter()
	if err := tx.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransaction(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	if got.IsValid != true || got.AuxiliaryData != nil {
		t.Fatalf("got %+v", got)
	}
	if len(got.WitnessSet.VKeyWitnesses) != 1 {
		t.Fatalf("witness set mismatch: %+v", got.WitnessSet)
	}
}

func TestTransactionWithAuxiliaryData(t *testing.T) {
	tx := sampleTransaction(t)
	tx.AuxiliaryData = cbor.EncodeItem(func(w *cbor.Writer) { w.WriteTextString("metadata") })
	w := cbor.NewWriter()
	if err := tx.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransaction(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	if !bytes.Equal(got.AuxiliaryData, tx.AuxiliaryData) {
		t.Fatalf("auxiliary data mismatch: %x vs %x", got.AuxiliaryData, tx.AuxiliaryData)
	}
}

func TestTransactionIdStableAcrossDecodeReencode(t *testing.T) {
	tx := sampleTransaction(t)
	id1, err := tx.Id()
	if err != nil {
		t.Fatalf("Id: %v", err)
	}

	w := cbor.NewWriter()
	if err := tx.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := DecodeTransaction(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	id2, err := decoded.Id()
	if err != nil {
		t.Fatalf("Id: %v", err)
	}
	if !id1.Equal(id2) {
		t.Fatalf("transaction id changed across decode/re-encode: %x vs %x", id1.Bytes(), id2.Bytes())
	}
}
