package ledger

import (
	"sort"

	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// PlutusLanguageVersion selects which cost-model shape applies.
type PlutusLanguageVersion uint64

const (
	PlutusV1 PlutusLanguageVersion = 0
	PlutusV2 PlutusLanguageVersion = 1
	PlutusV3 PlutusLanguageVersion = 2
)

// CostModel is an ordered vector of machine-step costs for one language
// version. The vector length is fixed per version by the ledger's protocol
// parameters; this package does not hardcode N since it varies by era.
type CostModel struct {
	Version PlutusLanguageVersion
	Costs   []int64
}

// Encode writes the cost vector as a CBOR array of signed integers.
func (c CostModel) Encode(w *cbor.Writer) {
	w.WriteStartArray(int64(len(c.Costs)))
	for _, v := range c.Costs {
		w.WriteInt(v)
	}
}

// DecodeCostModel reads a cost vector of the given declared length.
func DecodeCostModel(r *cbor.Reader, version PlutusLanguageVersion) (CostModel, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return CostModel{}, err
	}
	if n < 0 {
		return CostModel{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeCostModel", "indefinite cost model arrays are not supported")
	}
	costs := make([]int64, n)
	for i := range costs {
		v, err := r.ReadInt()
		if err != nil {
			return CostModel{}, err
		}
		costs[i] = v
	}
	if err := cbor.ValidateEndArray(r, "DecodeCostModel"); err != nil {
		return CostModel{}, err
	}
	return CostModel{Version: version, Costs: costs}, nil
}

// CostModelsMap maps a language version to its cost model, at most one
// entry per version.
type CostModelsMap struct {
	models map[PlutusLanguageVersion]CostModel
}

// NewCostModelsMap builds an empty map.
func NewCostModelsMap() *CostModelsMap {
	return &CostModelsMap{models: make(map[PlutusLanguageVersion]CostModel)}
}

// Set inserts or replaces the cost model for version.
func (m *CostModelsMap) Set(version PlutusLanguageVersion, model CostModel) {
	model.Version = version
	m.models[version] = model
}

// Get returns the cost model for version, if present.
func (m *CostModelsMap) Get(version PlutusLanguageVersion) (CostModel, bool) {
	cm, ok := m.models[version]
	return cm, ok
}

func (m *CostModelsMap) sortedVersions() []PlutusLanguageVersion {
	versions := make([]PlutusLanguageVersion, 0, len(m.models))
	for v := range m.models {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions
}

// Encode writes the map as a canonically-sorted `{version: costs}` map, keyed
// by the uint-encoded version (which already sorts consistently with the
// encoded-bytes ordering rule for small non-negative integers).
func (m *CostModelsMap) Encode(w *cbor.Writer) error {
	entries := make([]cbor.MapEntry, 0, len(m.models))
	for _, v := range m.sortedVersions() {
		cm := m.models[v]
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(uint64(v)) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) { cm.Encode(w) }),
		})
	}
	return cbor.WriteSortedMap(w, entries)
}

// DecodeCostModelsMap reads a CostModelsMap written by Encode.
func DecodeCostModelsMap(r *cbor.Reader) (*CostModelsMap, error) {
	n, err := r.ReadStartMap()
	if err != nil {
		return nil, err
	}
	m := NewCostModelsMap()
	if n < 0 {
		return nil, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeCostModelsMap", "indefinite maps are not supported")
	}
	for i := int64(0); i < n; i++ {
		v, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		cm, err := DecodeCostModel(r, PlutusLanguageVersion(v))
		if err != nil {
			return nil, err
		}
		m.Set(PlutusLanguageVersion(v), cm)
	}
	if err := cbor.ValidateEndMap(r, "DecodeCostModelsMap"); err != nil {
		return nil, err
	}
	return m, nil
}

// GetLanguageViewsEncoding emits the special, version-specific CBOR used
// for script-data-hash computation. This differs from the generic map
// encoder: PlutusV1's language-tag key and cost-model value are each
// wrapped in a byte string of their own re-encoded form (the historical
// wire quirk the ledger's script-integrity hash depends on), while V2+
// keys and values use their plain encodings directly. Implementers must
// treat this as a distinct encoder path rather than reusing Encode.
func (m *CostModelsMap) GetLanguageViewsEncoding() []byte {
	entries := make([]cbor.MapEntry, 0, len(m.models))
	for _, v := range m.sortedVersions() {
		cm := m.models[v]
		var keyBytes, valueBytes []byte
		if v == PlutusV1 {
			innerKey := cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(uint64(v)) })
			keyBytes = cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString(innerKey) })
			innerValue := cbor.EncodeItem(func(w *cbor.Writer) { cm.Encode(w) })
			valueBytes = cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString(innerValue) })
		} else {
			keyBytes = cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(uint64(v)) })
			valueBytes = cbor.EncodeItem(func(w *cbor.Writer) { cm.Encode(w) })
		}
		entries = append(entries, cbor.MapEntry{Key: keyBytes, Value: valueBytes})
	}
	w := cbor.NewWriter()
	_ = cbor.WriteSortedMap(w, entries)
	return w.Bytes()
}
