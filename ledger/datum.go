package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// DatumKind tags whether a transaction output's datum is a hash reference
// or data embedded inline.
type DatumKind int

const (
	DatumHash DatumKind = iota
	DatumInline
)

// tagEncodedCbor is RFC 8949's "self-described CBOR item embedded as a byte
// string" tag, used by the ledger to wrap an inline datum's Plutus Data
// encoding.
const tagEncodedCbor = 24

// Datum is a transaction output's optional datum: either a 32-byte hash of
// off-chain data, or Plutus Data carried inline.
type Datum struct {
	Kind   DatumKind
	Hash   Blake2bHash
	Inline PlutusData
}

// NewDatumHash builds a hash-kind Datum.
func NewDatumHash(hash Blake2bHash) (Datum, error) {
	if len(hash.bytes) != 32 {
		return Datum{}, sdkerr.New(sdkerr.CodeInvalidBlake2bHashSize, "NewDatumHash", "datum hash must be 32 bytes")
	}
	return Datum{Kind: DatumHash, Hash: hash}, nil
}

// NewInlineDatum builds an inline-data-kind Datum.
func NewInlineDatum(data PlutusData) Datum {
	return Datum{Kind: DatumInline, Inline: data}
}

// Encode writes `[0, hash]` or `[1, tag(24, bytes(encoded_data))]`.
func (d Datum) Encode(w *cbor.Writer) error {
	w.WriteStartArray(2)
	switch d.Kind {
	case DatumHash:
		w.WriteUint(0)
		writeHashBytes(w, d.Hash)
		return nil
	case DatumInline:
		w.WriteUint(1)
		inner := cbor.EncodeItem(func(w *cbor.Writer) {
			if err := d.Inline.Encode(w); err != nil {
				panic(err)
			}
		})
		w.WriteTag(tagEncodedCbor)
		w.WriteByteString(inner)
		return nil
	default:
		return sdkerr.New(sdkerr.CodeInvalidDatumType, "Datum.Encode", "unknown datum kind")
	}
}

// DecodeDatum reads a Datum written by Encode.
func DecodeDatum(r *cbor.Reader) (Datum, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeDatum"); err != nil {
		return Datum{}, err
	}
	kind, err := r.ReadUint()
	if err != nil {
		return Datum{}, err
	}
	switch kind {
	case 0:
		hash, err := readHashOfSize(r, 32, "DecodeDatum")
		if err != nil {
			return Datum{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeDatum"); err != nil {
			return Datum{}, err
		}
		return NewDatumHash(hash)
	case 1:
		if err := cbor.ValidateTag(r, tagEncodedCbor, "DecodeDatum"); err != nil {
			return Datum{}, err
		}
		raw, err := r.ReadByteString()
		if err != nil {
			return Datum{}, err
		}
		inner := cbor.NewReader(raw)
		data, err := DecodePlutusData(inner)
		if err != nil {
			return Datum{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeDatum"); err != nil {
			return Datum{}, err
		}
		return NewInlineDatum(data), nil
	default:
		return Datum{}, sdkerr.New(sdkerr.CodeInvalidDatumType, "DecodeDatum", "datum kind must be 0 or 1")
	}
}
