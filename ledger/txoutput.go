package ledger

import "cardano-go-sdk/cbor"

const (
	txOutKeyAddress   = 0
	txOutKeyValue     = 1
	txOutKeyDatum     = 2
	txOutKeyScriptRef = 3
)

// tagScriptRefWrapper is the tag the ledger wraps a script-reference byte
// string in, mirroring the inline-datum tag-24 convention.
const tagScriptRefWrapper = 24

// TransactionOutput is a Babbage/Conway-era map-based output: an address,
// a value, and optionally a datum and a reference script.
// Address is carried as raw bytes rather than address.ShelleyAddress to
// keep ledger free of a dependency on the address package; callers that
// need the structured form decode it themselves via address.DecodeShelleyAddressBytes.
type TransactionOutput struct {
	Address   []byte
	Value     Value
	Datum     *Datum
	ScriptRef []byte // raw reference-script bytes, or nil
}

// NewTransactionOutput builds an output from its semantic fields.
func NewTransactionOutput(address []byte, value Value, datum *Datum, scriptRef []byte) TransactionOutput {
	return TransactionOutput{Address: address, Value: value, Datum: datum, ScriptRef: scriptRef}
}

// Encode writes the map-based output form.
func (o TransactionOutput) Encode(w *cbor.Writer) error {
	var entries []cbor.MapEntry
	entries = append(entries, cbor.MapEntry{
		Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(txOutKeyAddress) }),
		Value: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteByteString(o.Address) }),
	})
	entries = append(entries, cbor.MapEntry{
		Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(txOutKeyValue) }),
		Value: cbor.EncodeItem(func(w *cbor.Writer) {
			if err := o.Value.Encode(w); err != nil {
				panic(err)
			}
		}),
	})
	if o.Datum != nil {
		valBytes := cbor.EncodeItem(func(w *cbor.Writer) {
			if err := o.Datum.Encode(w); err != nil {
				panic(err)
			}
		})
		entries = append(entries, cbor.MapEntry{
			Key:   cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(txOutKeyDatum) }),
			Value: valBytes,
		})
	}
	if o.ScriptRef != nil {
		entries = append(entries, cbor.MapEntry{
			Key: cbor.EncodeItem(func(w *cbor.Writer) { w.WriteUint(txOutKeyScriptRef) }),
			Value: cbor.EncodeItem(func(w *cbor.Writer) {
				w.WriteTag(tagScriptRefWrapper)
				w.WriteByteString(o.ScriptRef)
			}),
		})
	}
	return cbor.WriteSortedMap(w, entries)
}

// DecodeTransactionOutput reads a TransactionOutput written by Encode.
func DecodeTransactionOutput(r *cbor.Reader) (TransactionOutput, error) {
	if _, err := r.ReadStartMap(); err != nil {
		return TransactionOutput{}, err
	}
	var out TransactionOutput
	for r.PeekState() != cbor.StateEndMap {
		key, err := r.ReadUint()
		if err != nil {
			return TransactionOutput{}, err
		}
		switch key {
		case txOutKeyAddress:
			addr, err := r.ReadByteString()
			if err != nil {
				return TransactionOutput{}, err
			}
			out.Address = addr
		case txOutKeyValue:
			v, err := DecodeValue(r)
			if err != nil {
				return TransactionOutput{}, err
			}
			out.Value = v
		case txOutKeyDatum:
			d, err := DecodeDatum(r)
			if err != nil {
				return TransactionOutput{}, err
			}
			out.Datum = &d
		case txOutKeyScriptRef:
			if err := cbor.ValidateTag(r, tagScriptRefWrapper, "DecodeTransactionOutput"); err != nil {
				return TransactionOutput{}, err
			}
			s, err := r.ReadByteString()
			if err != nil {
				return TransactionOutput{}, err
			}
			out.ScriptRef = s
		default:
			if _, err := r.ReadEncodedValue(); err != nil {
				return TransactionOutput{}, err
			}
		}
	}
	if err := cbor.ValidateEndMap(r, "DecodeTransactionOutput"); err != nil {
		return TransactionOutput{}, err
	}
	return out, nil
}

// UTxO pairs an input with the output it produced.
type UTxO struct {
	Input  TransactionInput
	Output TransactionOutput
}

// NewUTxO builds a UTxO from its input and output.
func NewUTxO(input TransactionInput, output TransactionOutput) UTxO {
	return UTxO{Input: input, Output: output}
}
