package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func TestVKeyWitnessRoundTrip(t *testing.T) {
	pub := bytes.Repeat([]byte{1}, 32)
	sig := bytes.Repeat([]byte{2}, 64)
	v, err := NewVKeyWitness(pub, sig)
	if err != nil {
		t.Fatalf("NewVKeyWitness: %v", err)
	}
	w := cbor.NewWriter()
	v.Encode(w)
	got, err := DecodeVKeyWitness(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeVKeyWitness: %v", err)
	}
	if got.PublicKey != v.PublicKey || got.Signature != v.Signature {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}

func TestNewVKeyWitnessRejectsBadLengths(t *testing.T) {
	if _, err := NewVKeyWitness(make([]byte, 31), make([]byte, 64)); err == nil {
		t.Fatal("expected error for short public key")
	}
	if _, err := NewVKeyWitness(make([]byte, 32), make([]byte, 63)); err == nil {
		t.Fatal("expected error for short signature")
	}
}

func TestWitnessSetEncodeDecodeOmitsEmptyComponents(t *testing.T) {
	v1, _ := NewVKeyWitness(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 64))
	v2, _ := NewVKeyWitness(bytes.Repeat([]byte{3}, 32), bytes.Repeat([]byte{4}, 64))
	ws := WitnessSet{
		VKeyWitnesses: []VKeyWitness{v2, v1}, // intentionally unsorted
		PlutusData:    []PlutusData{NewPlutusDataInt(1)},
		Redeemers:     []Redeemer{NewRedeemer(RedeemerSpend, 0, NewPlutusDataInt(0), ExecutionUnits{})},
	}
	w := cbor.NewWriter()
	if err := ws.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeWitnessSet(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeWitnessSet: %v", err)
	}
	if len(got.VKeyWitnesses) != 2 {
		t.Fatalf("expected 2 vkey witnesses, got %d", len(got.VKeyWitnesses))
	}
	if bytes.Compare(vkeyWitnessEncoded(got.VKeyWitnesses[0]), vkeyWitnessEncoded(got.VKeyWitnesses[1])) > 0 {
		t.Fatalf("vkey witnesses were not written in sorted encoded-byte order")
	}
	if len(got.PlutusData) != 1 || got.PlutusData[0].Int != 1 {
		t.Fatalf("plutus data mismatch: %+v", got.PlutusData)
	}
	if len(got.Redeemers) != 1 {
		t.Fatalf("redeemers mismatch: %+v", got.Redeemers)
	}
	if len(got.NativeScripts) != 0 || len(got.PlutusScripts) != 0 {
		t.Fatalf("expected empty script components to stay empty")
	}
}

func TestWitnessSetPreservesOpaqueScripts(t *testing.T) {
	ws := WitnessSet{
		NativeScripts: [][]byte{cbor.EncodeItem(func(w *cbor.Writer) { w.WriteStartArray(0) })},
		PlutusScripts: [][]byte{{0xde, 0xad, 0xbe, 0xef}},
	}
	w := cbor.NewWriter()
	if err := ws.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeWitnessSet(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeWitnessSet: %v", err)
	}
	if len(got.NativeScripts) != 1 || len(got.PlutusScripts) != 1 {
		t.Fatalf("got %+v", got)
	}
	if !bytes.Equal(got.PlutusScripts[0], []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("plutus script mismatch: %x", got.PlutusScripts[0])
	}
}
