package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

const (
	txBodyKeyInputs          = 0
	txBodyKeyOutputs         = 1
	txBodyKeyFee             = 2
	txBodyKeyTTL             = 3
	txBodyKeyCerts           = 4
	txBodyKeyWithdrawals     = 5
	txBodyKeyAuxDataHash     = 7
	txBodyKeyValidityStart   = 8
	txBodyKeyMint            = 9
	txBodyKeyScriptDataHash  = 11
	txBodyKeyCollateral      = 13
	txBodyKeyRequiredSigners = 14
	txBodyKeyNetworkID       = 15
	txBodyKeyCollateralRet   = 16
	txBodyKeyTotalCollateral = 17
	txBodyKeyRefInputs       = 18
	txBodyKeyVotingProcs     = 19
	txBodyKeyProposalProcs   = 20
)

// TransactionBody is the signed portion of a transaction. Like PlutusData
// and Redeemer, a body decoded from input bytes
// retains those bytes in cborCache so Transaction.Id stays stable across
// decode→re-encode, even if this package's field order or optional-key
// omission policy would otherwise differ from the source encoder's.
type TransactionBody struct {
	Inputs            []TransactionInput
	Outputs           []TransactionOutput
	Fee               uint64
	TTL               *uint64
	Certificates      []Certificate
	Withdrawals       map[string]uint64 // reward-address bytes (as a string map key) -> amount
	AuxiliaryDataHash *Blake2bHash
	ValidityStart     *uint64
	Mint              map[PolicyID]map[AssetName]int64
	ScriptDataHash    *Blake2bHash
	Collateral        []TransactionInput
	RequiredSigners   []Blake2bHash
	NetworkID         *uint64
	CollateralReturn  *TransactionOutput
	TotalCollateral   *uint64
	ReferenceInputs   []TransactionInput

	cborCache []byte
}

// ClearCborCache drops the body's captured bytes, forcing Encode to emit a
// fresh canonical serialization. This must be called by every body
// mutator.
func (b *TransactionBody) ClearCborCache() { b.cborCache = nil }

// HasCborCache reports whether b carries captured source bytes.
func (b TransactionBody) HasCborCache() bool { return b.cborCache != nil }

// Encode writes the body map, replaying cborCache verbatim if present.
func (b TransactionBody) Encode(w *cbor.Writer) error {
	if b.cborCache != nil {
		w.WriteRawEncoded(b.cborCache)
		return nil
	}
	var entries []cbor.MapEntry
	add := func(key uint64, encode func(w *cbor.Writer)) {
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(key) }),
			Value: cbor.EncodeItem(encode),
		})
	}
	add(txBodyKeyInputs, func(w *cbor.Writer) { EncodeInputSet(w, b.Inputs) })
	add(txBodyKeyOutputs, func(w *cbor.Writer) {
		w.WriteStartArray(int64(len(b.Outputs)))
		for _, o := range b.Outputs {
			if err := o.Encode(w); err != nil {
				panic(err)
			}
		}
	})
	add(txBodyKeyFee, func(w *cbor.Writer) { w.WriteUint(b.Fee) })
	if b.TTL != nil {
		add(txBodyKeyTTL, func(w *cbor.Writer) { w.WriteUint(*b.TTL) })
	}
	if len(b.Certificates) > 0 {
		add(txBodyKeyCerts, func(w *cbor.Writer) {
			w.WriteStartArray(int64(len(b.Certificates)))
			for _, c := range b.Certificates {
				if err := c.Encode(w); err != nil {
					panic(err)
				}
			}
		})
	}
	if len(b.Withdrawals) > 0 {
		add(txBodyKeyWithdrawals, func(w *cbor.Writer) {
			entries := make([]cbor.MapEntry, 0, len(b.Withdrawals))
			for addr, amt := range b.Withdrawals {
				entries = append(entries, cbor.MapEntry{
					Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString([]byte(addr)) }),
					Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(amt) }),
				})
			}
			if err := cbor.WriteSortedMap(w, entries); err != nil {
				panic(err)
			}
		})
	}
	if b.AuxiliaryDataHash != nil {
		add(txBodyKeyAuxDataHash, func(w *cbor.Writer) { writeHashBytes(w, *b.AuxiliaryDataHash) })
	}
	if b.ValidityStart != nil {
		add(txBodyKeyValidityStart, func(w *cbor.Writer) { w.WriteUint(*b.ValidityStart) })
	}
	if len(b.Mint) > 0 {
		add(txBodyKeyMint, func(w *cbor.Writer) { encodeMintMap(w, b.Mint) })
	}
	if b.ScriptDataHash != nil {
		add(txBodyKeyScriptDataHash, func(w *cbor.Writer) { writeHashBytes(w, *b.ScriptDataHash) })
	}
	if len(b.Collateral) > 0 {
		add(txBodyKeyCollateral, func(w *cbor.Writer) { EncodeInputSet(w, b.Collateral) })
	}
	if len(b.RequiredSigners) > 0 {
		add(txBodyKeyRequiredSigners, func(w *cbor.Writer) {
			sorted := append([]Blake2bHash{}, b.RequiredSigners...)
			sortHashes(sorted)
			elements := make([][]byte, len(sorted))
			for i, h := range sorted {
				elements[i] = cbor.EncodeItem(func(w *cbor.Writer) { writeHashBytes(w, h) })
			}
			cbor.WriteSet(w, elements)
		})
	}
	if b.NetworkID != nil {
		add(txBodyKeyNetworkID, func(w *cbor.Writer) { w.WriteUint(*b.NetworkID) })
	}
	if b.CollateralReturn != nil {
		add(txBodyKeyCollateralRet, func(w *cbor.Writer) {
			if err := b.CollateralReturn.Encode(w); err != nil {
				panic(err)
			}
		})
	}
	if b.TotalCollateral != nil {
		add(txBodyKeyTotalCollateral, func(w *cbor.Writer) { w.WriteUint(*b.TotalCollateral) })
	}
	if len(b.ReferenceInputs) > 0 {
		add(txBodyKeyRefInputs, func(w *cbor.Writer) { EncodeInputSet(w, b.ReferenceInputs) })
	}
	return cbor.WriteSortedMap(w, entries)
}

func encodeMintMap(w *cbor.Writer, mint map[PolicyID]map[AssetName]int64) {
	policies := make([]PolicyID, 0, len(mint))
	for p := range mint {
		policies = append(policies, p)
	}
	sortPolicyIDs(policies)
	entries := make([]cbor.MapEntry, 0, len(policies))
	for _, p := range policies {
		assets := mint[p]
		names := make([]AssetName, 0, len(assets))
		for n := range assets {
			names = append(names, n)
		}
		sortAssetNames(names)
		assetEntries := make([]cbor.MapEntry, 0, len(names))
		for _, n := range names {
			assetEntries = append(assetEntries, cbor.MapEntry{
				Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString([]byte(n)) }),
				Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteInt(assets[n]) }),
			})
		}
		assetMapBytes := cbor.EncodeItem(func(w *cbor.Writer) {
			if err := cbor.WriteSortedMap(w, assetEntries); err != nil {
				panic(err)
			}
		})
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString(p[:]) }),
			Value: assetMapBytes,
		})
	}
	if err := cbor.WriteSortedMap(w, entries); err != nil {
		panic(err)
	}
}

func decodeMintMap(r *cbor.Reader) (map[PolicyID]map[AssetName]int64, error) {
	if _, err := r.ReadStartMap(); err != nil {
		return nil, err
	}
	out := make(map[PolicyID]map[AssetName]int64)
	for r.PeekState() != cbor.StateEndMap {
		policyBytes, err := cbor.ValidateByteStringOfSize(r, PolicyIDSize, "decodeMintMap")
		if err != nil {
			return nil, err
		}
		var policy PolicyID
		copy(policy[:], policyBytes)
		if _, err := r.ReadStartMap(); err != nil {
			return nil, err
		}
		assets := make(map[AssetName]int64)
		for r.PeekState() != cbor.StateEndMap {
			nameBytes, err := r.ReadByteString()
			if err != nil {
				return nil, err
			}
			if len(nameBytes) > AssetNameMaxSize {
				return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "decodeMintMap", "asset name exceeds maximum size")
			}
			amt, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			assets[AssetName(nameBytes)] = amt
		}
		if err := cbor.ValidateEndMap(r, "decodeMintMap"); err != nil {
			return nil, err
		}
		out[policy] = assets
	}
	if err := cbor.ValidateEndMap(r, "decodeMintMap"); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeTransactionBody reads a TransactionBody written by Encode, keeping
// the source bytes in cborCache so Transaction.Id is stable across
// decode→re-encode.
func DecodeTransactionBody(r *cbor.Reader) (TransactionBody, error) {
	cloneForCache := r.Clone()
	raw, err := cloneForCache.ReadEncodedValue()
	if err != nil {
		return TransactionBody{}, err
	}
	if _, err := r.ReadStartMap(); err != nil {
		return TransactionBody{}, err
	}
	var b TransactionBody
	for r.PeekState() != cbor.StateEndMap {
		key, err := r.ReadUint()
		if err != nil {
			return TransactionBody{}, err
		}
		switch key {
		case txBodyKeyInputs:
			in, err := DecodeInputSet(r)
			if err != nil {
				return TransactionBody{}, err
			}
			b.Inputs = in
		case txBodyKeyOutputs:
			if _, err := r.ReadStartArray(); err != nil {
				return TransactionBody{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				o, err := DecodeTransactionOutput(r)
				if err != nil {
					return TransactionBody{}, err
				}
				b.Outputs = append(b.Outputs, o)
			}
			if err := cbor.ValidateEndArray(r, "DecodeTransactionBody"); err != nil {
				return TransactionBody{}, err
			}
		case txBodyKeyFee:
			fee, err := r.ReadUint()
			if err != nil {
				return TransactionBody{}, err
			}
			b.Fee = fee
		case txBodyKeyTTL:
			v, err := r.ReadUint()
			if err != nil {
				return TransactionBody{}, err
			}
			b.TTL = &v
		case txBodyKeyCerts:
			if _, err := r.ReadStartArray(); err != nil {
				return TransactionBody{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				c, err := DecodeCertificate(r)
				if err != nil {
					return TransactionBody{}, err
				}
				b.Certificates = append(b.Certificates, c)
			}
			if err := cbor.ValidateEndArray(r, "DecodeTransactionBody"); err != nil {
				return TransactionBody{}, err
			}
		case txBodyKeyWithdrawals:
			if _, err := r.ReadStartMap(); err != nil {
				return TransactionBody{}, err
			}
			b.Withdrawals = make(map[string]uint64)
			for r.PeekState() != cbor.StateEndMap {
				addr, err := r.ReadByteString()
				if err != nil {
					return TransactionBody{}, err
				}
				amt, err := r.ReadUint()
				if err != nil {
					return TransactionBody{}, err
				}
				b.Withdrawals[string(addr)] = amt
			}
			if err := cbor.ValidateEndMap(r, "DecodeTransactionBody"); err != nil {
				return TransactionBody{}, err
			}
		case txBodyKeyAuxDataHash:
			h, err := readHashOfSize(r, 32, "DecodeTransactionBody")
			if err != nil {
				return TransactionBody{}, err
			}
			b.AuxiliaryDataHash = &h
		case txBodyKeyValidityStart:
			v, err := r.ReadUint()
			if err != nil {
				return TransactionBody{}, err
			}
			b.ValidityStart = &v
		case txBodyKeyMint:
			m, err := decodeMintMap(r)
			if err != nil {
				return TransactionBody{}, err
			}
			b.Mint = m
		case txBodyKeyScriptDataHash:
			h, err := readHashOfSize(r, 32, "DecodeTransactionBody")
			if err != nil {
				return TransactionBody{}, err
			}
			b.ScriptDataHash = &h
		case txBodyKeyCollateral:
			in, err := DecodeInputSet(r)
			if err != nil {
				return TransactionBody{}, err
			}
			b.Collateral = in
		case txBodyKeyRequiredSigners:
			if err := cbor.ValidateTag(r, cbor.TagSet, "DecodeTransactionBody"); err != nil {
				return TransactionBody{}, err
			}
			if _, err := r.ReadStartArray(); err != nil {
				return TransactionBody{}, err
			}
			for r.PeekState() != cbor.StateEndArray {
				h, err := readHashOfSize(r, 28, "DecodeTransactionBody")
				if err != nil {
					return TransactionBody{}, err
				}
				b.RequiredSigners = append(b.RequiredSigners, h)
			}
			if err := cbor.ValidateEndArray(r, "DecodeTransactionBody"); err != nil {
				return TransactionBody{}, err
			}
		case txBodyKeyNetworkID:
			v, err := r.ReadUint()
			if err != nil {
				return TransactionBody{}, err
			}
			b.NetworkID = &v
		case txBodyKeyCollateralRet:
			o, err := DecodeTransactionOutput(r)
			if err != nil {
				return TransactionBody{}, err
			}
			b.CollateralReturn = &o
		case txBodyKeyTotalCollateral:
			v, err := r.ReadUint()
			if err != nil {
				return TransactionBody{}, err
			}
			b.TotalCollateral = &v
		case txBodyKeyRefInputs:
			in, err := DecodeInputSet(r)
			if err != nil {
				return TransactionBody{}, err
			}
			b.ReferenceInputs = in
		default:
			// Voting/proposal procedures and any future key this SDK does
			// not yet model locally are skipped, not rejected, so decode →
			// re-encode of bodies carrying them still round-trips via cborCache.
			if _, err := r.ReadEncodedValue(); err != nil {
				return TransactionBody{}, err
			}
		}
	}
	if err := cbor.ValidateEndMap(r, "DecodeTransactionBody"); err != nil {
		return TransactionBody{}, err
	}
	b.cborCache = raw
	return b, nil
}
