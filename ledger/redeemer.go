package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// RedeemerTag selects which kind of script purpose a redeemer justifies.
type RedeemerTag uint64

const (
	RedeemerSpend RedeemerTag = iota
	RedeemerMint
	RedeemerCert
	RedeemerReward
	RedeemerVote
	RedeemerPropose
)

// Redeemer carries the Plutus Data argument a script purpose is invoked
// with, plus its execution-unit budget. Like PlutusData, a decoded
// redeemer retains its source bytes and re-emits them verbatim until a
// mutator clears the cache.
type Redeemer struct {
	Tag     RedeemerTag
	Index   uint64
	Data    PlutusData
	ExUnits ExecutionUnits

	cborCache []byte
}

// NewRedeemer builds a Redeemer from its semantic fields.
func NewRedeemer(tag RedeemerTag, index uint64, data PlutusData, exUnits ExecutionUnits) Redeemer {
	return Redeemer{Tag: tag, Index: index, Data: data, ExUnits: exUnits}
}

// ClearCborCache drops r's captured bytes, forcing a fresh canonical emit.
func (r *Redeemer) ClearCborCache() { r.cborCache = nil }

// HasCborCache reports whether r carries captured source bytes.
func (r Redeemer) HasCborCache() bool { return r.cborCache != nil }

// Encode writes `[tag, index, data, exUnits]`, replaying cborCache
// verbatim if present.
func (rd Redeemer) Encode(w *cbor.Writer) error {
	if rd.cborCache != nil {
		w.WriteRawEncoded(rd.cborCache)
		return nil
	}
	w.WriteStartArray(4)
	w.WriteUint(uint64(rd.Tag))
	w.WriteUint(rd.Index)
	if err := rd.Data.Encode(w); err != nil {
		return err
	}
	rd.ExUnits.Encode(w)
	return nil
}

// DecodeRedeemer reads a Redeemer written by Encode, capturing its source
// bytes into cborCache.
func DecodeRedeemer(r *cbor.Reader) (Redeemer, error) {
	cloneForCache := r.Clone()
	raw, err := cloneForCache.ReadEncodedValue()
	if err != nil {
		return Redeemer{}, err
	}
	if err := cbor.ValidateArrayOfNElements(r, 4, "DecodeRedeemer"); err != nil {
		return Redeemer{}, err
	}
	tag, err := r.ReadUint()
	if err != nil {
		return Redeemer{}, err
	}
	if tag > uint64(RedeemerPropose) {
		return Redeemer{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeRedeemer", "unknown redeemer tag")
	}
	idx, err := r.ReadUint()
	if err != nil {
		return Redeemer{}, err
	}
	data, err := DecodePlutusData(r)
	if err != nil {
		return Redeemer{}, err
	}
	exUnits, err := DecodeExecutionUnits(r)
	if err != nil {
		return Redeemer{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeRedeemer"); err != nil {
		return Redeemer{}, err
	}
	return Redeemer{Tag: RedeemerTag(tag), Index: idx, Data: data, ExUnits: exUnits, cborCache: raw}, nil
}

// EncodeRedeemerSet writes the redeemer list as a definite-length array;
// unlike inputs, the Conway redeemer map key is (tag, index), which this
// SDK leaves ordering-stable (insertion order) rather than re-sorting,
// since resorting would disturb any cborCache the caller has not cleared.
func EncodeRedeemerSet(w *cbor.Writer, redeemers []Redeemer) error {
	w.WriteStartArray(int64(len(redeemers)))
	for _, rd := range redeemers {
		if err := rd.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRedeemerSet reads a redeemer array written by EncodeRedeemerSet.
func DecodeRedeemerSet(r *cbor.Reader) ([]Redeemer, error) {
	if _, err := r.ReadStartArray(); err != nil {
		return nil, err
	}
	var out []Redeemer
	for r.PeekState() != cbor.StateEndArray {
		rd, err := DecodeRedeemer(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := cbor.ValidateEndArray(r, "DecodeRedeemerSet"); err != nil {
		return nil, err
	}
	return out, nil
}
