package address

import (
	"cardano-go-sdk/encoding"
	"cardano-go-sdk/sdkerr"
)

// GovernanceActionHashSize is the transaction-hash half of a governance
// action id.
const GovernanceActionHashSize = 32

// GovernanceActionID identifies a governance action by the hash of the
// transaction that proposed it plus its index within that transaction's
// list of proposals. The CBOR form carries a full u64 index; the Bech32
// form (CIP-129) truncates it to one byte.
type GovernanceActionID struct {
	TxHash [GovernanceActionHashSize]byte
	Index  uint64
}

// NewGovernanceActionID builds an id from a 32-byte transaction hash and an
// index.
func NewGovernanceActionID(txHash []byte, index uint64) (GovernanceActionID, error) {
	if len(txHash) != GovernanceActionHashSize {
		return GovernanceActionID{}, sdkerr.New(sdkerr.CodeInvalidArgument, "NewGovernanceActionID", "tx hash must be 32 bytes")
	}
	var id GovernanceActionID
	copy(id.TxHash[:], txHash)
	id.Index = index
	return id, nil
}

// Encode renders the id as Bech32 (HRP "gov_action"). An index that does
// not fit in one byte is rejected with InvalidArgument rather than
// silently truncated.
func (g GovernanceActionID) Encode() (string, error) {
	if g.Index >= 256 {
		return "", sdkerr.New(sdkerr.CodeInvalidArgument, "GovernanceActionID.Encode", "index does not fit in the one-byte Bech32 form")
	}
	payload := append(append([]byte{}, g.TxHash[:]...), byte(g.Index))
	return encoding.Bech32Encode("gov_action", payload)
}

// DecodeGovernanceActionID parses a Bech32-encoded governance action id.
func DecodeGovernanceActionID(s string) (GovernanceActionID, error) {
	hrp, payload, err := encoding.Bech32Decode(s)
	if err != nil {
		return GovernanceActionID{}, err
	}
	if hrp != "gov_action" {
		return GovernanceActionID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeGovernanceActionID", "unexpected HRP")
	}
	if len(payload) != GovernanceActionHashSize+1 {
		return GovernanceActionID{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeGovernanceActionID", "payload must be 33 bytes")
	}
	return NewGovernanceActionID(payload[:GovernanceActionHashSize], uint64(payload[GovernanceActionHashSize]))
}
