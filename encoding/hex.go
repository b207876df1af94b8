// Package encoding implements the hex, Base58 and Bech32 codecs used
// throughout the address, identifier and key-stack layers.
package encoding

import (
	"encoding/hex"
	"strings"

	"cardano-go-sdk/sdkerr"
)

// HexEncode renders b as lowercase hex, pairs of ASCII digits.
func HexEncode(b []byte) string { return hex.EncodeToString(b) }

// HexDecode parses a case-insensitive hex string back to bytes. Length
// prediction is exact: len(out) == len(s)/2, and len(s) must be even.
func HexDecode(s string) ([]byte, error) {
	out, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeDecoding, "HexDecode", "invalid hex string", err)
	}
	return out, nil
}

// HexEncodedLength returns the exact length of the hex encoding of n bytes.
func HexEncodedLength(n int) int { return n * 2 }
