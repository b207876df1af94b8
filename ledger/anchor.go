package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// AnchorMaxURLBytes is the UTF-8 byte-length ceiling:
// "URL length in (0,128]".
const AnchorMaxURLBytes = 128

// Anchor pairs a governance-metadata URL with the Blake2b-256 hash of its
// content.
type Anchor struct {
	URL  string
	Hash Blake2bHash
}

// NewAnchor validates url's length and hash's size class.
func NewAnchor(url string, hash Blake2bHash) (Anchor, error) {
	if len(url) == 0 || len(url) > AnchorMaxURLBytes {
		return Anchor{}, sdkerr.New(sdkerr.CodeInvalidUrl, "NewAnchor", "url must be 1..128 UTF-8 bytes")
	}
	if len(hash.bytes) != 32 {
		return Anchor{}, sdkerr.New(sdkerr.CodeInvalidBlake2bHashSize, "NewAnchor", "anchor hash must be 32 bytes")
	}
	return Anchor{URL: url, Hash: hash}, nil
}

// Encode writes `[ url, hash ]`, per S4.
func (a Anchor) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	w.WriteTextString(a.URL)
	writeHashBytes(w, a.Hash)
}

// DecodeAnchor reads an Anchor written by Encode.
func DecodeAnchor(r *cbor.Reader) (Anchor, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeAnchor"); err != nil {
		return Anchor{}, err
	}
	url, err := cbor.ValidateTextStringOfMaxSize(r, AnchorMaxURLBytes, "DecodeAnchor")
	if err != nil {
		return Anchor{}, err
	}
	hash, err := readHashOfSize(r, 32, "DecodeAnchor")
	if err != nil {
		return Anchor{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeAnchor"); err != nil {
		return Anchor{}, err
	}
	return NewAnchor(url, hash)
}
