package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/cryptofacade"
)

// Transaction bundles a body, its witness set, the validity flag Babbage
// introduced for script-failure-tolerant submission, and optional
// auxiliary data.
type Transaction struct {
	Body           TransactionBody
	WitnessSet     WitnessSet
	IsValid        bool
	AuxiliaryData  []byte // raw, opaque metadata bytes, or nil
}

// NewTransaction builds a Transaction from its components.
func NewTransaction(body TransactionBody, witnessSet WitnessSet, isValid bool, auxData []byte) Transaction {
	return Transaction{Body: body, WitnessSet: witnessSet, IsValid: isValid, AuxiliaryData: auxData}
}

// Id computes the transaction id as Blake2b-256 over the canonical
// encoding of the body alone. If the body carries a cborCache (because it
// was decoded from input bytes), those exact bytes are hashed; otherwise
// the body is freshly, canonically re-encoded. This keeps the id stable
// across decode→re-encode cycles of any canonically-produced input.
func (t Transaction) Id() (Blake2bHash, error) {
	bodyBytes := cbor.EncodeItem(func(w *cbor.Writer) {
		if err := t.Body.Encode(w); err != nil {
			panic(err)
		}
	})
	sum, err := cryptofacade.Blake2b256Sum(bodyBytes)
	if err != nil {
		return Blake2bHash{}, err
	}
	return NewBlake2bHash(sum)
}

// Encode writes `[ body, witnessSet, isValid, auxiliaryData ]`, the
// Babbage-onward four-element transaction wrapper.
func (t Transaction) Encode(w *cbor.Writer) error {
	w.WriteStartArray(4)
	if err := t.Body.Encode(w); err != nil {
		return err
	}
	if err := t.WitnessSet.Encode(w); err != nil {
		return err
	}
	w.WriteBool(t.IsValid)
	if t.AuxiliaryData != nil {
		w.WriteRawEncoded(t.AuxiliaryData)
	} else {
		w.WriteNull()
	}
	return nil
}

// DecodeTransaction reads a Transaction written by Encode.
func DecodeTransaction(r *cbor.Reader) (Transaction, error) {
	if err := cbor.ValidateArrayOfNElements(r, 4, "DecodeTransaction"); err != nil {
		return Transaction{}, err
	}
	body, err := DecodeTransactionBody(r)
	if err != nil {
		return Transaction{}, err
	}
	ws, err := DecodeWitnessSet(r)
	if err != nil {
		return Transaction{}, err
	}
	isValid, err := r.ReadBool()
	if err != nil {
		return Transaction{}, err
	}
	var auxData []byte
	if r.PeekState() == cbor.StateNull {
		if err := r.ReadNull(); err != nil {
			return Transaction{}, err
		}
	} else {
		raw, err := r.ReadEncodedValue()
		if err != nil {
			return Transaction{}, err
		}
		auxData = raw
	}
	if err := cbor.ValidateEndArray(r, "DecodeTransaction"); err != nil {
		return Transaction{}, err
	}
	return NewTransaction(body, ws, isValid, auxData), nil
}
