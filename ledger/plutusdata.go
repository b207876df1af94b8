package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// PlutusDataKind tags the variant of a PlutusData value: a tagged-union
// discipline applied to the Plutus Data CDDL.
type PlutusDataKind int

const (
	PlutusDataConstr PlutusDataKind = iota
	PlutusDataMap
	PlutusDataList
	PlutusDataInt
	PlutusDataBytes
)

// plutusConstrTagBase/AltTagBase follow the Plutus Data CDDL's compact
// constructor-tag ranges (121..127 for alt 0..6, 1280..1400 for alt 7..127,
// tag 102 with an explicit index for anything beyond that).
const (
	plutusConstrTagBase    = 121
	plutusConstrTagBaseEnd = 127
	plutusConstrTagWide    = 1280
	plutusConstrTagWideEnd = 1400
	plutusConstrTagGeneral = 102
)

// PlutusData is the Plutus Data structure carried by datums and redeemers.
// Because script authors may produce non-canonical encodings (e.g.
// non-minimal integers), the value returned by DecodePlutusData retains its
// original bytes in cborCache and re-emits them verbatim until a mutator
// clears the cache; the items nested inside it carry no cache of their own.
type PlutusData struct {
	Kind  PlutusDataKind
	Alt   uint64 // valid when Kind == PlutusDataConstr
	Int   int64
	Bytes []byte
	List  []PlutusData
	Map   []PlutusDataMapEntry

	cborCache []byte
}

// PlutusDataMapEntry is one key/value pair of a Plutus Data map; Plutus
// data maps are not required to be sorted, so entries are kept in their
// original, arbitrary order.
type PlutusDataMapEntry struct {
	Key   PlutusData
	Value PlutusData
}

// NewPlutusDataInt builds an integer-kind PlutusData.
func NewPlutusDataInt(v int64) PlutusData { return PlutusData{Kind: PlutusDataInt, Int: v} }

// NewPlutusDataBytes builds a bytestring-kind PlutusData.
func NewPlutusDataBytes(b []byte) PlutusData {
	out := make([]byte, len(b))
	copy(out, b)
	return PlutusData{Kind: PlutusDataBytes, Bytes: out}
}

// NewPlutusDataList builds a list-kind PlutusData.
func NewPlutusDataList(items []PlutusData) PlutusData {
	return PlutusData{Kind: PlutusDataList, List: items}
}

// NewPlutusDataMap builds a map-kind PlutusData, preserving entry order.
func NewPlutusDataMap(entries []PlutusDataMapEntry) PlutusData {
	return PlutusData{Kind: PlutusDataMap, Map: entries}
}

// NewPlutusDataConstr builds a constructor-kind PlutusData.
func NewPlutusDataConstr(alt uint64, fields []PlutusData) PlutusData {
	return PlutusData{Kind: PlutusDataConstr, Alt: alt, List: fields}
}

// ClearCborCache drops this value's captured bytes, forcing the next
// Encode to canonically re-emit. Callers that mutate a PlutusData held
// inside a decoded Redeemer must also clear the Redeemer's cache; Datum
// keeps no cache of its own.
func (d *PlutusData) ClearCborCache() { d.cborCache = nil }

// HasCborCache reports whether d carries captured source bytes.
func (d PlutusData) HasCborCache() bool { return d.cborCache != nil }

// Encode writes d, replaying cborCache verbatim if present.
func (d PlutusData) Encode(w *cbor.Writer) error {
	if d.cborCache != nil {
		w.WriteRawEncoded(d.cborCache)
		return nil
	}
	return d.encodeCanonical(w)
}

func (d PlutusData) encodeCanonical(w *cbor.Writer) error {
	switch d.Kind {
	case PlutusDataInt:
		w.WriteInt(d.Int)
		return nil
	case PlutusDataBytes:
		w.WriteByteString(d.Bytes)
		return nil
	case PlutusDataList:
		w.WriteStartArray(int64(len(d.List)))
		for _, item := range d.List {
			if err := item.encodeCanonical(w); err != nil {
				return err
			}
		}
		return nil
	case PlutusDataMap:
		w.WriteStartMap(int64(len(d.Map)))
		for _, e := range d.Map {
			if err := e.Key.encodeCanonical(w); err != nil {
				return err
			}
			if err := e.Value.encodeCanonical(w); err != nil {
				return err
			}
		}
		return nil
	case PlutusDataConstr:
		tag, wide := constrTagFor(d.Alt)
		w.WriteTag(tag)
		if wide {
			w.WriteStartArray(2)
			w.WriteUint(d.Alt)
			w.WriteStartArray(int64(len(d.List)))
			for _, item := range d.List {
				if err := item.encodeCanonical(w); err != nil {
					return err
				}
			}
			return nil
		}
		w.WriteStartArray(int64(len(d.List)))
		for _, item := range d.List {
			if err := item.encodeCanonical(w); err != nil {
				return err
			}
		}
		return nil
	default:
		return sdkerr.New(sdkerr.CodeInvalidDatumType, "PlutusData.Encode", "unknown kind")
	}
}

func constrTagFor(alt uint64) (tag uint64, generalForm bool) {
	switch {
	case alt <= plutusConstrTagBaseEnd-plutusConstrTagBase:
		return plutusConstrTagBase + alt, false
	case alt <= plutusConstrTagWideEnd-plutusConstrTagWide+(plutusConstrTagBaseEnd-plutusConstrTagBase+1):
		return plutusConstrTagWide + (alt - (plutusConstrTagBaseEnd - plutusConstrTagBase + 1)), false
	default:
		return plutusConstrTagGeneral, true
	}
}

// DecodePlutusData reads a PlutusData item and retains its source bytes in
// cborCache so a verbatim re-encode round-trips exactly, including
// non-canonical input.
func DecodePlutusData(r *cbor.Reader) (PlutusData, error) {
	cloneForCache := r.Clone()
	raw, err := cloneForCache.ReadEncodedValue()
	if err != nil {
		return PlutusData{}, err
	}
	d, err := decodePlutusDataValue(r)
	if err != nil {
		return PlutusData{}, err
	}
	d.cborCache = raw
	return d, nil
}

func decodePlutusDataValue(r *cbor.Reader) (PlutusData, error) {
	switch r.PeekState() {
	case cbor.StateUnsignedInt, cbor.StateNegativeInt:
		v, err := r.ReadInt()
		if err != nil {
			return PlutusData{}, err
		}
		return NewPlutusDataInt(v), nil
	case cbor.StateByteString:
		b, err := r.ReadByteString()
		if err != nil {
			return PlutusData{}, err
		}
		return NewPlutusDataBytes(b), nil
	case cbor.StateStartArray:
		if _, err := r.ReadStartArray(); err != nil {
			return PlutusData{}, err
		}
		var items []PlutusData
		for r.PeekState() != cbor.StateEndArray {
			item, err := decodePlutusDataValue(r)
			if err != nil {
				return PlutusData{}, err
			}
			items = append(items, item)
		}
		if err := cbor.ValidateEndArray(r, "DecodePlutusData"); err != nil {
			return PlutusData{}, err
		}
		return NewPlutusDataList(items), nil
	case cbor.StateStartMap:
		if _, err := r.ReadStartMap(); err != nil {
			return PlutusData{}, err
		}
		var entries []PlutusDataMapEntry
		for r.PeekState() != cbor.StateEndMap {
			k, err := decodePlutusDataValue(r)
			if err != nil {
				return PlutusData{}, err
			}
			v, err := decodePlutusDataValue(r)
			if err != nil {
				return PlutusData{}, err
			}
			entries = append(entries, PlutusDataMapEntry{Key: k, Value: v})
		}
		if err := cbor.ValidateEndMap(r, "DecodePlutusData"); err != nil {
			return PlutusData{}, err
		}
		return NewPlutusDataMap(entries), nil
	case cbor.StateTag:
		tag, err := r.ReadTag()
		if err != nil {
			return PlutusData{}, err
		}
		if tag == plutusConstrTagGeneral {
			if err := cbor.ValidateArrayOfNElements(r, 2, "DecodePlutusData"); err != nil {
				return PlutusData{}, err
			}
			alt, err := r.ReadUint()
			if err != nil {
				return PlutusData{}, err
			}
			fields, err := decodePlutusDataFieldList(r)
			if err != nil {
				return PlutusData{}, err
			}
			if err := cbor.ValidateEndArray(r, "DecodePlutusData"); err != nil {
				return PlutusData{}, err
			}
			return NewPlutusDataConstr(alt, fields), nil
		}
		alt, ok := altFromConstrTag(tag)
		if !ok {
			return PlutusData{}, sdkerr.New(sdkerr.CodeInvalidDatumType, "DecodePlutusData", "unrecognized constructor tag")
		}
		fields, err := decodePlutusDataFieldList(r)
		if err != nil {
			return PlutusData{}, err
		}
		return NewPlutusDataConstr(alt, fields), nil
	default:
		return PlutusData{}, sdkerr.New(sdkerr.CodeInvalidDatumType, "DecodePlutusData", "unexpected item for plutus data")
	}
}

func decodePlutusDataFieldList(r *cbor.Reader) ([]PlutusData, error) {
	if _, err := r.ReadStartArray(); err != nil {
		return nil, err
	}
	var items []PlutusData
	for r.PeekState() != cbor.StateEndArray {
		item, err := decodePlutusDataValue(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cbor.ValidateEndArray(r, "DecodePlutusData"); err != nil {
		return nil, err
	}
	return items, nil
}

func altFromConstrTag(tag uint64) (uint64, bool) {
	if tag >= plutusConstrTagBase && tag <= plutusConstrTagBaseEnd {
		return tag - plutusConstrTagBase, true
	}
	if tag >= plutusConstrTagWide && tag <= plutusConstrTagWideEnd {
		return tag - plutusConstrTagWide + (plutusConstrTagBaseEnd - plutusConstrTagBase + 1), true
	}
	return 0, false
}
