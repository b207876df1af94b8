package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func sampleBody(t *testing.T) TransactionBody {
	t.Helper()
	in, err := NewTransactionInput(bytes.Repeat([]byte{1}, 32), 0)
	if err != nil {
		t.Fatalf("NewTransactionInput: %v", err)
	}
	out := NewTransactionOutput(bytes.Repeat([]byte{2}, 29), NewCoinOnlyValue(1_000_000), nil, nil)
	ttl := uint64(999)
	return TransactionBody{
		Inputs:  []TransactionInput{in},
		Outputs: []TransactionOutput{out},
		Fee:     170_000,
		TTL:     &ttl,
	}
}

func TestTransactionBodyBasicRoundTrip(t *testing.T) {
	b := sampleBody(t)
	w := cbor.NewWriter()
	if err := b.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransactionBody(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionBody: %v", err)
	}
	if got.Fee != b.Fee || got.TTL == nil || *got.TTL != *b.TTL {
		t.Fatalf("got %+v", got)
	}
	if len(got.Inputs) != 1 || len(got.Outputs) != 1 {
		t.Fatalf("got %+v", got)
	}
	if !got.HasCborCache() {
		t.Fatal("expected cborCache to be populated on decode")
	}
}

func TestTransactionBodyMintMapRoundTrip(t *testing.T) {
	b := sampleBody(t)
	var policy PolicyID
	copy(policy[:], bytes.Repeat([]byte{7}, PolicyIDSize))
	b.Mint = map[PolicyID]map[AssetName]int64{
		policy: {AssetName("token"): 100, AssetName("other"): -50},
	}
	w := cbor.NewWriter()
	if err := b.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeTransactionBody(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionBody: %v", err)
	}
	assets, ok := got.Mint[policy]
	if !ok {
		t.Fatalf("missing policy in decoded mint map: %+v", got.Mint)
	}
	if assets[AssetName("token")] != 100 || assets[AssetName("other")] != -50 {
		t.Fatalf("got %+v", assets)
	}
}

func TestTransactionBodyCborCacheSurvivesVerbatim(t *testing.T) {
	b := sampleBody(t)
	w := cbor.NewWriter()
	if err := b.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := DecodeTransactionBody(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionBody: %v", err)
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

func TestTransactionBodySkipsUnrecognizedKeysAndPreservesBytes(t *testing.T) {
	// Hand-build a body map with an extra, unmodeled key (19 = voting
	// procedures) alongside the three mandatory fields, and check it
	// still decodes and round-trips byte-for-byte via cborCache.
	w := cbor.NewWriter()
	entries := []cbor.MapEntry{
		{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(0) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				in, _ := NewTransactionInput(bytes.Repeat([]byte{9}, 32), 0)
				EncodeInputSet(w, []TransactionInput{in})
			}),
		},
		{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(1) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				w.WriteStartArray(0)
			}),
		},
		{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(2) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(100) }),
		},
		{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(19) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteStartArray(0) }),
		},
	}
	if err := cbor.WriteSortedMap(w, entries); err != nil {
		t.Fatalf("WriteSortedMap: %v", err)
	}
	raw := w.Bytes()

	got, err := DecodeTransactionBody(cbor.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeTransactionBody: %v", err)
	}
	out := cbor.NewWriter()
	if err := got.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), raw) {
		t.Fatalf("expected cborCache verbatim replay including unrecognized key")
	}
}
