package address

import (
	"cardano-go-sdk/encoding"
	"cardano-go-sdk/sdkerr"
)

// drepGovKeyType is the high nibble of a CIP-129 DRep header: 0 selects the
// DRep governance-key-type (the only one this SDK emits).
const drepGovKeyType = 0

// DRepID is a DRep's credential, shared with the generic Credential type so
// the same 28-byte hash produces identical bytes across credential,
// address, and identifier encoders.
type DRepID struct {
	Credential Credential
}

// NewDRepID wraps a credential as a DRep identifier.
func NewDRepID(cred Credential) DRepID { return DRepID{Credential: cred} }

// Encode always emits the CIP-129 form: HRP "drep", 1-byte header (low
// nibble = credential_type+2, high nibble = governance-key-type) + 28-byte
// hash.
func (d DRepID) Encode() (string, error) {
	header := byte(drepGovKeyType)<<4 | (byte(d.Credential.Kind) + 2)
	payload := append([]byte{header}, d.Credential.Hash[:]...)
	return encoding.Bech32Encode("drep", payload)
}

// DecodeDRepID accepts either CIP-105 (28-byte legacy payload, HRP selects
// key vs. script) or CIP-129 (29-byte header+hash, HRP always "drep").
func DecodeDRepID(s string) (DRepID, error) {
	hrp, payload, err := encoding.Bech32Decode(s)
	if err != nil {
		return DRepID{}, err
	}
	switch len(payload) {
	case CredentialHashSize: // CIP-105
		var kind CredentialKind
		switch hrp {
		case "drep":
			kind = KeyHash
		case "drep_script":
			kind = ScriptHash
		default:
			return DRepID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeDRepID", "unrecognized CIP-105 HRP")
		}
		cred, err := NewCredential(kind, payload)
		if err != nil {
			return DRepID{}, err
		}
		return NewDRepID(cred), nil

	case CredentialHashSize + 1: // CIP-129
		if hrp != "drep" {
			return DRepID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeDRepID", "CIP-129 DRep HRP must be \"drep\"")
		}
		header := payload[0]
		govKeyType := header >> 4
		credTypeNibble := header & 0x0f
		if govKeyType != drepGovKeyType {
			return DRepID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeDRepID", "unsupported governance-key-type")
		}
		if credTypeNibble < 2 || credTypeNibble > 3 {
			return DRepID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeDRepID", "invalid credential-type nibble")
		}
		kind := KeyHash
		if credTypeNibble == 3 {
			kind = ScriptHash
		}
		cred, err := NewCredential(kind, payload[1:])
		if err != nil {
			return DRepID{}, err
		}
		return NewDRepID(cred), nil

	default:
		return DRepID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeDRepID", "payload must be 28 or 29 bytes")
	}
}
