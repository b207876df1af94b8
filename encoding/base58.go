package encoding

import (
	"github.com/mr-tron/base58"

	"cardano-go-sdk/sdkerr"
)

// Base58Encode renders b using the standard Bitcoin/Base58 alphabet, used by
// Byron-era addresses.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode parses a standard-alphabet Base58 string back to bytes.
func Base58Decode(s string) ([]byte, error) {
	out, err := base58.Decode(s)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeDecoding, "Base58Decode", "invalid base58 string", err)
	}
	return out, nil
}
