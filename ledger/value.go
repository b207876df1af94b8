package ledger

import (
	"bytes"
	"sort"

	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// PolicyIDSize and AssetNameMaxSize bound the multi-asset key shapes the
// Conway ledger permits.
const (
	PolicyIDSize     = 28
	AssetNameMaxSize = 32
)

// PolicyID identifies a minting policy script by its 28-byte hash.
type PolicyID [PolicyIDSize]byte

// AssetName is a free-form asset label, up to 32 bytes. It is not
// necessarily valid UTF-8 (the ledger treats it as an opaque byte string),
// but Go's string type holds arbitrary bytes, so it doubles as a
// comparable map key without a wrapper.
type AssetName string

// Value is ADA (Coin, in lovelace) plus an optional multi-asset bundle,
// serialized either as a bare coin or as `[coin, multiasset]`.
type Value struct {
	Coin       uint64
	MultiAsset map[PolicyID]map[AssetName]uint64
}

// NewCoinOnlyValue builds a Value with no multi-asset bundle.
func NewCoinOnlyValue(coin uint64) Value {
	return Value{Coin: coin}
}

// Encode writes the bare-coin or [coin, multiasset] form depending on
// whether MultiAsset has any entries.
func (v Value) Encode(w *cbor.Writer) error {
	if len(v.MultiAsset) == 0 {
		w.WriteUint(v.Coin)
		return nil
	}
	w.WriteStartArray(2)
	w.WriteUint(v.Coin)
	return encodeMultiAsset(w, v.MultiAsset)
}

func encodeMultiAsset(w *cbor.Writer, ma map[PolicyID]map[AssetName]uint64) error {
	policies := make([]PolicyID, 0, len(ma))
	for p := range ma {
		policies = append(policies, p)
	}
	sort.Slice(policies, func(i, j int) bool { return bytes.Compare(policies[i][:], policies[j][:]) < 0 })

	entries := make([]cbor.MapEntry, 0, len(policies))
	for _, p := range policies {
		assets := ma[p]
		names := make([]AssetName, 0, len(assets))
		for n := range assets {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

		assetEntries := make([]cbor.MapEntry, 0, len(names))
		for _, n := range names {
			assetEntries = append(assetEntries, cbor.MapEntry{
				Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString([]byte(n)) }),
				Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(assets[n]) }),
			})
		}
		assetMapBytes := cbor.EncodeItem(func(w *cbor.Writer) {
			if err := cbor.WriteSortedMap(w, assetEntries); err != nil {
				panic(err) // asset names within one policy are deduplicated by the map key type
			}
		})
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString(p[:]) }),
			Value: assetMapBytes,
		})
	}
	return cbor.WriteSortedMap(w, entries)
}

// DecodeValue reads a Value written by Encode.
func DecodeValue(r *cbor.Reader) (Value, error) {
	switch r.PeekState() {
	case cbor.StateUnsignedInt:
		coin, err := r.ReadUint()
		if err != nil {
			return Value{}, err
		}
		return NewCoinOnlyValue(coin), nil
	case cbor.StateStartArray:
		if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeValue"); err != nil {
			return Value{}, err
		}
		coin, err := r.ReadUint()
		if err != nil {
			return Value{}, err
		}
		ma, err := decodeMultiAsset(r)
		if err != nil {
			return Value{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeValue"); err != nil {
			return Value{}, err
		}
		return Value{Coin: coin, MultiAsset: ma}, nil
	default:
		return Value{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeValue", "expected uint or 2-element array")
	}
}

func decodeMultiAsset(r *cbor.Reader) (map[PolicyID]map[AssetName]uint64, error) {
	if _, err := r.ReadStartMap(); err != nil {
		return nil, err
	}
	out := make(map[PolicyID]map[AssetName]uint64)
	for r.PeekState() != cbor.StateEndMap {
		policyBytes, err := cbor.ValidateByteStringOfSize(r, PolicyIDSize, "decodeMultiAsset")
		if err != nil {
			return nil, err
		}
		var policy PolicyID
		copy(policy[:], policyBytes)

		if _, err := r.ReadStartMap(); err != nil {
			return nil, err
		}
		assets := make(map[AssetName]uint64)
		for r.PeekState() != cbor.StateEndMap {
			nameBytes, err := r.ReadByteString()
			if err != nil {
				return nil, err
			}
			if len(nameBytes) > AssetNameMaxSize {
				return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "decodeMultiAsset", "asset name exceeds maximum size")
			}
			amount, err := r.ReadUint()
			if err != nil {
				return nil, err
			}
			assets[AssetName(nameBytes)] = amount
		}
		if err := cbor.ValidateEndMap(r, "decodeMultiAsset"); err != nil {
			return nil, err
		}
		out[policy] = assets
	}
	if err := cbor.ValidateEndMap(r, "decodeMultiAsset"); err != nil {
		return nil, err
	}
	return out, nil
}
