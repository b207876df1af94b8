package ledger

import (
	"bytes"

	"cardano-go-sdk/cbor"
)

// TransactionInput references a UTxO by its producing transaction's hash
// and output index. Ordering is lexicographic by (txId, index).
type TransactionInput struct {
	TxID  Blake2bHash
	Index uint64
}

// NewTransactionInput builds an input from a 32-byte transaction hash.
func NewTransactionInput(txID []byte, index uint64) (TransactionInput, error) {
	h, err := NewBlake2bHash(txID)
	if err != nil {
		return TransactionInput{}, err
	}
	return TransactionInput{TxID: h, Index: index}, nil
}

// Encode writes `[ txId, index ]`.
func (in TransactionInput) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	writeHashBytes(w, in.TxID)
	w.WriteUint(in.Index)
}

// DecodeTransactionInput reads a TransactionInput written by Encode.
func DecodeTransactionInput(r *cbor.Reader) (TransactionInput, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeTransactionInput"); err != nil {
		return TransactionInput{}, err
	}
	txID, err := readHashOfSize(r, 32, "DecodeTransactionInput")
	if err != nil {
		return TransactionInput{}, err
	}
	idx, err := r.ReadUint()
	if err != nil {
		return TransactionInput{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeTransactionInput"); err != nil {
		return TransactionInput{}, err
	}
	return TransactionInput{TxID: txID, Index: idx}, nil
}

// Compare orders two inputs lexicographically by (txId, index), the
// comparator the ledger's sorted input sets must use.
func (in TransactionInput) Compare(other TransactionInput) int {
	if c := bytes.Compare(in.TxID.bytes, other.TxID.bytes); c != 0 {
		return c
	}
	switch {
	case in.Index < other.Index:
		return -1
	case in.Index > other.Index:
		return 1
	default:
		return 0
	}
}

// EncodeInputSet writes a tag-258 sorted set of inputs.
// Sorting uses Compare, not encoded-byte order, since the CBOR encoding of
// TxID||index already preserves that ordering for fixed-width fields.
func EncodeInputSet(w *cbor.Writer, inputs []TransactionInput) {
	sorted := make([]TransactionInput, len(inputs))
	copy(sorted, inputs)
	sortInputs(sorted)
	elements := make([][]byte, len(sorted))
	for i, in := range sorted {
		elements[i] = cbor.EncodeItem(func(w *cbor.Writer) { in.Encode(w) })
	}
	cbor.WriteSet(w, elements)
}

func sortInputs(inputs []TransactionInput) {
	for i := 1; i < len(inputs); i++ {
		for j := i; j > 0 && inputs[j-1].Compare(inputs[j]) > 0; j-- {
			inputs[j-1], inputs[j] = inputs[j], inputs[j-1]
		}
	}
}

// DecodeInputSet reads a tag-258 array of inputs.
func DecodeInputSet(r *cbor.Reader) ([]TransactionInput, error) {
	if err := cbor.ValidateTag(r, cbor.TagSet, "DecodeInputSet"); err != nil {
		return nil, err
	}
	if _, err := r.ReadStartArray(); err != nil {
		return nil, err
	}
	var out []TransactionInput
	for r.PeekState() != cbor.StateEndArray {
		in, err := DecodeTransactionInput(r)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := cbor.ValidateEndArray(r, "DecodeInputSet"); err != nil {
		return nil, err
	}
	return out, nil
}
