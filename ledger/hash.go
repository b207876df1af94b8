// Package ledger implements the Conway-era transaction object model:
// transaction, body, witness set, inputs/outputs, value+multi-asset,
// certificates, governance actions, protocol parameters, cost models,
// Plutus data, redeemers, and UTxO, all bound to the cbor package for
// canonical encode/decode.
package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/encoding"
	"cardano-go-sdk/sdkerr"
)

// Blake2bHash is a raw hash whose length must match one of the declared
// size classes {28, 32, 64}.
type Blake2bHash struct {
	bytes []byte
}

var validHashSizes = map[int]bool{28: true, 32: true, 64: true}

// NewBlake2bHash validates b's length against the declared size classes.
func NewBlake2bHash(b []byte) (Blake2bHash, error) {
	if !validHashSizes[len(b)] {
		return Blake2bHash{}, sdkerr.New(sdkerr.CodeInvalidBlake2bHashSize, "NewBlake2bHash", "hash length must be 28, 32, or 64 bytes")
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Blake2bHash{bytes: out}, nil
}

// Bytes returns the raw hash bytes.
func (h Blake2bHash) Bytes() []byte { return h.bytes }

// Hex renders the hash as lowercase hex.
func (h Blake2bHash) Hex() string { return encoding.HexEncode(h.bytes) }

// Equal reports byte-for-byte equality.
func (h Blake2bHash) Equal(other Blake2bHash) bool {
	if len(h.bytes) != len(other.bytes) {
		return false
	}
	for i := range h.bytes {
		if h.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

func writeHashBytes(w *cbor.Writer, h Blake2bHash) { w.WriteByteString(h.bytes) }

func readHashOfSize(r *cbor.Reader, size int, op string) (Blake2bHash, error) {
	b, err := cbor.ValidateByteStringOfSize(r, size, op)
	if err != nil {
		return Blake2bHash{}, err
	}
	return NewBlake2bHash(b)
}
