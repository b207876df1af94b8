// Package address implements the Shelley/Byron/reward/enterprise address
// family and the CIP-5/CIP-105/CIP-129 Bech32 identifier conventions,
// including DRep IDs and governance-action IDs. The same 28-byte
// credential hash must produce identical bytes across the credential,
// address, and identifier encoders, so Credential is the single shared
// type everything else here builds on.
package address

import (
	"cardano-go-sdk/sdkerr"
)

// Network selects the 4-bit network tag carried in a Shelley address header
// and the Bech32 HRP suffix used throughout this package.
type Network uint8

const (
	Testnet Network = 0
	Mainnet Network = 1
)

// CredentialKind distinguishes a key-hash credential from a script-hash
// credential Credential entity.
type CredentialKind uint8

const (
	KeyHash CredentialKind = iota
	ScriptHash
)

// CredentialHashSize is the fixed Blake2b-224 hash size backing every
// credential.
const CredentialHashSize = 28

// Credential is a {type, 28-byte hash} pair, shared verbatim by address
// payment/stake parts and by DRep identifiers.
type Credential struct {
	Kind CredentialKind
	Hash [CredentialHashSize]byte
}

// NewCredential builds a Credential from a 28-byte hash.
func NewCredential(kind CredentialKind, hash []byte) (Credential, error) {
	if len(hash) != CredentialHashSize {
		return Credential{}, sdkerr.New(sdkerr.CodeInvalidArgument, "NewCredential", "credential hash must be 28 bytes")
	}
	var c Credential
	c.Kind = kind
	copy(c.Hash[:], hash)
	return c, nil
}
