package encoding

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"cardano-go-sdk/sdkerr"
)

// Bech32EncodedLength computes the exact encoded length: hrp_len + 1
// ('1' separator) + ceil(data_len*8/5) (5-bit groups) + 6 (checksum). No
// witness-version byte is added here — this SDK encodes raw payloads, not
// segwit programs.
func Bech32EncodedLength(hrpLen, dataLen int) int {
	fiveBitGroups := (dataLen*8 + 4) / 5
	return hrpLen + 1 + fiveBitGroups + 6
}

// Bech32Encode encodes hrp/data as plain Bech32 (BIP-173, not Bech32m), the
// form used by every Cardano Bech32 identifier in this SDK.
func Bech32Encode(hrp string, data []byte) (string, error) {
	five, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", sdkerr.Wrap(sdkerr.CodeEncoding, "Bech32Encode", "bit conversion failed", err)
	}
	out, err := bech32.Encode(hrp, five)
	if err != nil {
		return "", sdkerr.Wrap(sdkerr.CodeEncoding, "Bech32Encode", "checksum encode failed", err)
	}
	return out, nil
}

// Bech32Decode validates and decodes a Bech32 string:
// single-case hrp+data, exactly one '1' separator (the last occurrence),
// valid BCH checksum, and (on the 5-to-8-bit conversion) no non-zero
// trailing/leftover bits. Any violation fails with InvalidAddressFormat.
func Bech32Decode(s string) (hrp string, data []byte, err error) {
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return "", nil, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "Bech32Decode", "mixed-case bech32 string")
	}
	if strings.LastIndexByte(s, '1') < 0 {
		return "", nil, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "Bech32Decode", "missing separator")
	}
	h, five, decErr := bech32.DecodeNoLimit(s)
	if decErr != nil {
		return "", nil, sdkerr.Wrap(sdkerr.CodeInvalidAddressFormat, "Bech32Decode", "checksum or separator invalid", decErr)
	}
	eight, convErr := bech32.ConvertBits(five, 5, 8, false)
	if convErr != nil {
		return "", nil, sdkerr.Wrap(sdkerr.CodeInvalidAddressFormat, "Bech32Decode", "non-canonical padding bits", convErr)
	}
	return h, eight, nil
}
