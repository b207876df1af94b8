package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func TestRedeemerRoundTrip(t *testing.T) {
	rd := NewRedeemer(RedeemerSpend, 0, NewPlutusDataInt(7), ExecutionUnits{Memory: 100, CPU: 200})
	w := cbor.NewWriter()
	if err := rd.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeRedeemer(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeRedeemer: %v", err)
	}
	if got.Tag != RedeemerSpend || got.Index != 0 || got.Data.Int != 7 || got.ExUnits.Memory != 100 {
		t.Fatalf("got %+v", got)
	}
	if !got.HasCborCache() {
		t.Fatal("expected cborCache to be populated on decode")
	}
}

func TestRedeemerSetRoundTrip(t *testing.T) {
	rds := []Redeemer{
		NewRedeemer(RedeemerMint, 1, NewPlutusDataInt(1), ExecutionUnits{}),
		NewRedeemer(RedeemerSpend, 0, NewPlutusDataInt(2), ExecutionUnits{}),
	}
	w := cbor.NewWriter()
	if err := EncodeRedeemerSet(w, rds); err != nil {
		t.Fatalf("EncodeRedeemerSet: %v", err)
	}
	got, err := DecodeRedeemerSet(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeRedeemerSet: %v", err)
	}
	if len(got) != 2 || got[0].Tag != RedeemerMint || got[1].Tag != RedeemerSpend {
		t.Fatalf("got %+v", got)
	}
}

func TestRedeemerCborCacheSurvivesRoundTrip(t *testing.T) {
	rd := NewRedeemer(RedeemerVote, 2, NewPlutusDataBytes([]byte{1, 2, 3}), ExecutionUnits{Memory: 1, CPU: 1})
	w := cbor.NewWriter()
	if err := rd.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := DecodeRedeemer(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeRedeemer: %v", err)
	}
	out := cbor.NewWriter()
	if err := decoded.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), w.Bytes()) {
		t.Fatalf("expected verbatim re-encode via cborCache")
	}
	decoded.ClearCborCache()
	if decoded.HasCborCache() {
		t.Fatal("expected ClearCborCache to drop the cache")
	}
}
