package ledger

import (
	"bytes"
	"sort"

	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// VKeyWitness pairs a public key with the Ed25519 signature it produced
// over a transaction id.
type VKeyWitness struct {
	PublicKey [32]byte
	Signature [64]byte
}

// NewVKeyWitness validates the public key and signature lengths.
func NewVKeyWitness(pubKey, sig []byte) (VKeyWitness, error) {
	if len(pubKey) != 32 {
		return VKeyWitness{}, sdkerr.New(sdkerr.CodeInvalidEd25519PublicKeySize, "NewVKeyWitness", "public key must be 32 bytes")
	}
	if len(sig) != 64 {
		return VKeyWitness{}, sdkerr.New(sdkerr.CodeGeneric, "NewVKeyWitness", "signature must be 64 bytes")
	}
	var w VKeyWitness
	copy(w.PublicKey[:], pubKey)
	copy(w.Signature[:], sig)
	return w, nil
}

// Encode writes `[ publicKey, signature ]`.
func (v VKeyWitness) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	w.WriteByteString(v.PublicKey[:])
	w.WriteByteString(v.Signature[:])
}

// DecodeVKeyWitness reads a VKeyWitness written by Encode.
func DecodeVKeyWitness(r *cbor.Reader) (VKeyWitness, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeVKeyWitness"); err != nil {
		return VKeyWitness{}, err
	}
	pub, err := cbor.ValidateByteStringOfSize(r, 32, "DecodeVKeyWitness")
	if err != nil {
		return VKeyWitness{}, err
	}
	sig, err := cbor.ValidateByteStringOfSize(r, 64, "DecodeVKeyWitness")
	if err != nil {
		return VKeyWitness{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeVKeyWitness"); err != nil {
		return VKeyWitness{}, err
	}
	return NewVKeyWitness(pub, sig)
}

// vkeyWitnessEncoded is the comparator basis for set-sorting vkey
// witnesses: the encoded bytes of each element
func vkeyWitnessEncoded(v VKeyWitness) []byte {
	w := cbor.NewWriter()
	v.Encode(w)
	return w.Bytes()
}

func sortVKeyWitnesses(ws []VKeyWitness) {
	sort.Slice(ws, func(i, j int) bool {
		return bytes.Compare(vkeyWitnessEncoded(ws[i]), vkeyWitnessEncoded(ws[j])) < 0
	})
}

// WitnessSet bundles every witness component a transaction may carry. Only
// vkey witnesses, redeemers, and Plutus data are modeled here; native
// scripts (key 1) and Plutus V1 scripts (key 3) are out of this SDK's core
// scope (they are opaque bytes to a client-side signer) but are retained
// verbatim when present. Other keys, such as bootstrap witnesses (2) and
// Plutus V2/V3 scripts (6, 7), are skipped on decode and are not re-emitted
// by Encode.
type WitnessSet struct {
	VKeyWitnesses []VKeyWitness
	PlutusData    []PlutusData
	Redeemers     []Redeemer
	NativeScripts [][]byte
	PlutusScripts [][]byte
}

const (
	witnessSetKeyVKey          = 0
	witnessSetKeyNativeScripts = 1
	witnessSetKeyPlutusData    = 4
	witnessSetKeyRedeemers     = 5
	witnessSetKeyPlutusScripts = 3
)

// Encode writes the witness set as a map keyed by component type, omitting
// empty components, per the Conway-era witness-set CDDL.
func (ws WitnessSet) Encode(w *cbor.Writer) error {
	var entries []cbor.MapEntry
	if len(ws.VKeyWitnesses) > 0 {
		sorted := make([]VKeyWitness, len(ws.VKeyWitnesses))
		copy(sorted, ws.VKeyWitnesses)
		sortVKeyWitnesses(sorted)
		val := cbor.EncodeItem(func(w *cbor.Writer) {
			elements := make([][]byte, len(sorted))
			for i, v := range sorted {
				elements[i] = cbor.EncodeItem(func(w *cbor.Writer) { v.Encode(w) })
			}
			cbor.WriteSet(w, elements)
		})
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(witnessSetKeyVKey) }),
			Value: val,
		})
	}
	if len(ws.NativeScripts) > 0 {
		entries = append(entries, cbor.MapEntry{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(witnessSetKeyNativeScripts) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				w.WriteStartArray(int64(len(ws.NativeScripts)))
				for _, s := range ws.NativeScripts {
					w.WriteRawEncoded(s)
				}
			}),
		})
	}
	if len(ws.PlutusScripts) > 0 {
		entries = append(entries, cbor.MapEntry{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(witnessSetKeyPlutusScripts) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				w.WriteStartArray(int64(len(ws.PlutusScripts)))
				for _, s := range ws.PlutusScripts {
					w.WriteByteString(s)
				}
			}),
		})
	}
	if len(ws.PlutusData) > 0 {
		entries = append(entries, cbor.MapEntry{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(witnessSetKeyPlutusData) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				elements := make([][]byte, len(ws.PlutusData))
				for i, d := range ws.PlutusData {
					elements[i] = cbor.EncodeItem(func(w *cbor.Writer) {
						if err := d.Encode(w); err != nil {
							panic(err)
						}
					})
				}
				cbor.WriteSet(w, elements)
			}),
		})
	}
	if len(ws.Redeemers) > 0 {
		entries = append(entries, cbor.MapEntry{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(witnessSetKeyRedeemers) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				if err := EncodeRedeemerSet(w, ws.Redeemers); err != nil {
					panic(err)
				}
			}),
		})
	}
	return cbor.WriteSortedMap(w, entries)
}

// DecodeWitnessSet reads a WitnessSet written by Encode.
func DecodeWitnessSet(r *cbor.Reader) (WitnessSet, error) {
	n, err := r.ReadStartMap()
	if err != nil {
		return WitnessSet{}, err
	}
	if n < 0 {
		return WitnessSet{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeWitnessSet", "indefinite witness-set maps are not supported")
	}
	var ws WitnessSet
	for i := int64(0); i < n; i++ {
		key, err := r.ReadUint()
		if err != nil {
			return WitnessSet{}, err
		}
		switch key {
		case witnessSetKeyVKey:
			if err := cbor.ValidateTag(r, cbor.TagSet, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
			if _, err := r.ReadStartArray(); err != nil {
				return WitnessSet{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				v, err := DecodeVKeyWitness(r)
				if err != nil {
					return WitnessSet{}, err
				}
				ws.VKeyWitnesses = append(ws.VKeyWitnesses, v)
			}
			if err := cbor.ValidateEndArray(r, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
		case witnessSetKeyNativeScripts:
			if _, err := r.ReadStartArray(); err != nil {
				return WitnessSet{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				raw, err := r.ReadEncodedValue()
				if err != nil {
					return WitnessSet{}, err
				}
				ws.NativeScripts = append(ws.NativeScripts, raw)
			}
			if err := cbor.ValidateEndArray(r, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
		case witnessSetKeyPlutusScripts:
			if _, err := r.ReadStartArray(); err != nil {
				return WitnessSet{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				s, err := r.ReadByteString()
				if err != nil {
					return WitnessSet{}, err
				}
				ws.PlutusScripts = append(ws.PlutusScripts, s)
			}
			if err := cbor.ValidateEndArray(r, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
		case witnessSetKeyPlutusData:
			if err := cbor.ValidateTag(r, cbor.TagSet, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
			if _, err := r.ReadStartArray(); err != nil {
				return WitnessSet{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				d, err := DecodePlutusData(r)
				if err != nil {
					return WitnessSet{}, err
				}
				ws.PlutusData = append(ws.PlutusData, d)
			}
			if err := cbor.ValidateEndArray(r, "DecodeWitnessSet"); err != nil {
				return WitnessSet{}, err
			}
		case witnessSetKeyRedeemers:
			rds, err := DecodeRedeemerSet(r)
			if err != nil {
				return WitnessSet{}, err
			}
			ws.Redeemers = rds
		default:
			if _, err := r.ReadEncodedValue(); err != nil {
				return WitnessSet{}, err
			}
		}
	}
	if err := cbor.ValidateEndMap(r, "DecodeWitnessSet"); err != nil {
		return WitnessSet{}, err
	}
	return ws, nil
}
