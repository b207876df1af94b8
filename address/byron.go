package address

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/cryptofacade"
	"cardano-go-sdk/encoding"
	"cardano-go-sdk/sdkerr"
)

// EncodeByronRaw wraps addressContent (the CBOR-encoded AddressContent
// payload: address root, attributes, address type) in Byron's outer
// envelope — `[tag(24, bytes(addressContent)), crc32(addressContent)]` —
// and renders it as Base58 "Base58... used by Byron
// addresses" and §4.B. Building addressContent itself (the root hash chain
// over spending data) is a transaction-builder concern outside this SDK's
// core Non-goals.
func EncodeByronRaw(addressContent []byte) (string, error) {
	w := cbor.NewWriter()
	w.WriteStartArray(2)
	w.WriteTag(24)
	w.WriteByteString(addressContent)
	w.WriteUint(uint64(cryptofacade.CRC32(addressContent)))
	return encoding.Base58Encode(w.Bytes()), nil
}

// DecodeByronRaw reverses EncodeByronRaw, verifying the CRC-32 trailer and
// returning the inner addressContent bytes.
func DecodeByronRaw(s string) ([]byte, error) {
	raw, err := encoding.Base58Decode(s)
	if err != nil {
		return nil, err
	}
	r := cbor.NewReader(raw)
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeByronRaw"); err != nil {
		return nil, err
	}
	if err := cbor.ValidateTag(r, 24, "DecodeByronRaw"); err != nil {
		return nil, err
	}
	content, err := r.ReadByteString()
	if err != nil {
		return nil, err
	}
	crc, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeByronRaw"); err != nil {
		return nil, err
	}
	if uint32(crc) != cryptofacade.CRC32(content) {
		return nil, sdkerr.New(sdkerr.CodeChecksumMismatch, "DecodeByronRaw", "CRC-32 mismatch")
	}
	return content, nil
}
