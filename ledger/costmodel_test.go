package ledger

import (
	"testing"

	"cardano-go-sdk/cbor"
)

func TestCostModelRoundTrip(t *testing.T) {
	cm := CostModel{Version: PlutusV2, Costs: []int64{1, -2, 3}}
	w := cbor.NewWriter()
	cm.Encode(w)
	got, err := DecodeCostModel(cbor.NewReader(w.Bytes()), PlutusV2)
	if err != nil {
		t.Fatalf("DecodeCostModel: %v", err)
	}
	if len(got.Costs) != 3 || got.Costs[1] != -2 {
		t.Fatalf("got %+v", got)
	}
}

func TestCostModelsMapRoundTrip(t *testing.T) {
	m := NewCostModelsMap()
	m.Set(PlutusV1, CostModel{Costs: []int64{1, 2}})
	m.Set(PlutusV2, CostModel{Costs: []int64{3, 4, 5}})

	w := cbor.NewWriter()
	if err := m.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeCostModelsMap(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeCostModelsMap: %v", err)
	}
	v1, ok := got.Get(PlutusV1)
	if !ok || len(v1.Costs) != 2 {
		t.Fatalf("PlutusV1 model missing or wrong: %+v", v1)
	}
	v2, ok := got.Get(PlutusV2)
	if !ok || len(v2.Costs) != 3 {
		t.Fatalf("PlutusV2 model missing or wrong: %+v", v2)
	}
}

func TestGetLanguageViewsEncodingWrapsV1KeyAndValueAsByteStrings(t *testing.T) {
	m := NewCostModelsMap()
	m.Set(PlutusV1, CostModel{Costs: []int64{1, 2}})
	m.Set(PlutusV2, CostModel{Costs: []int64{3, 4, 5}})

	encoded := m.GetLanguageViewsEncoding()
	r := cbor.NewReader(encoded)
	n, err := r.ReadStartMap()
	if err != nil {
		t.Fatalf("ReadStartMap: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}

	seenV1, seenV2 := false, false
	for i := int64(0); i < n; i++ {
		keyIsByteString := r.PeekState() == cbor.StateByteString
		var version uint64
		if keyIsByteString {
			raw, err := r.ReadByteString()
			if err != nil {
				t.Fatalf("ReadByteString (key): %v", err)
			}
			version, err = cbor.NewReader(raw).ReadUint()
			if err != nil {
				t.Fatalf("decode wrapped key: %v", err)
			}
		} else {
			version, err = r.ReadUint()
			if err != nil {
				t.Fatalf("ReadUint (key): %v", err)
			}
		}

		valueIsByteString := r.PeekState() == cbor.StateByteString
		switch PlutusLanguageVersion(version) {
		case PlutusV1:
			seenV1 = true
			if !keyIsByteString {
				t.Fatalf("PlutusV1 key must be byte-string wrapped")
			}
			if !valueIsByteString {
				t.Fatalf("PlutusV1 value must be byte-string wrapped")
			}
			raw, err := r.ReadByteString()
			if err != nil {
				t.Fatalf("ReadByteString (value): %v", err)
			}
			vn, err := cbor.NewReader(raw).ReadStartArray()
			if err != nil || vn != 2 {
				t.Fatalf("unexpected V1 value payload: %d %v", vn, err)
			}
		case PlutusV2:
			seenV2 = true
			if keyIsByteString {
				t.Fatalf("PlutusV2 key must not be byte-string wrapped")
			}
			if valueIsByteString {
				t.Fatalf("PlutusV2 value must not be byte-string wrapped")
			}
			vn, err := r.ReadStartArray()
			if err != nil || vn != 3 {
				t.Fatalf("unexpected V2 value payload: %d %v", vn, err)
			}
		default:
			t.Fatalf("unexpected version %d", version)
		}
	}
	if !seenV1 || !seenV2 {
		t.Fatalf("expected both PlutusV1 and PlutusV2 entries, seenV1=%v seenV2=%v", seenV1, seenV2)
	}

	if err := cbor.ValidateEndMap(r, "test"); err != nil {
		t.Fatalf("ValidateEndMap: %v", err)
	}
}
