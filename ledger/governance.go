package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// DRepKind tags a DRep's variant. Abstain and NoConfidence carry no
// credential; KeyHash and ScriptHash do.
type DRepKind uint64

const (
	DRepKeyHash DRepKind = iota
	DRepScriptHash
	DRepAbstain
	DRepNoConfidence
)

// DRep is a delegation representative reference as it appears inside a
// certificate or vote procedure, distinct from but byte-compatible with
// address.DRepID's Bech32-facing credential.
type DRep struct {
	Kind       DRepKind
	Credential Blake2bHash // present iff Kind ∈ {DRepKeyHash, DRepScriptHash}
}

// NewDRepFromCredential builds a KeyHash/ScriptHash DRep from a 28-byte hash.
func NewDRepFromCredential(kind DRepKind, credHash []byte) (DRep, error) {
	if kind != DRepKeyHash && kind != DRepScriptHash {
		return DRep{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "NewDRepFromCredential", "kind must be KeyHash or ScriptHash")
	}
	h, err := NewBlake2bHash(credHash)
	if err != nil {
		return DRep{}, err
	}
	if len(h.bytes) != 28 {
		return DRep{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "NewDRepFromCredential", "credential hash must be 28 bytes")
	}
	return DRep{Kind: kind, Credential: h}, nil
}

// NewAbstainDRep builds the credential-less Abstain DRep.
func NewAbstainDRep() DRep { return DRep{Kind: DRepAbstain} }

// NewNoConfidenceDRep builds the credential-less NoConfidence DRep.
func NewNoConfidenceDRep() DRep { return DRep{Kind: DRepNoConfidence} }

// Encode writes `[kind]` or `[kind, credentialHash]`.
func (d DRep) Encode(w *cbor.Writer) {
	switch d.Kind {
	case DRepKeyHash, DRepScriptHash:
		w.WriteStartArray(2)
		w.WriteUint(uint64(d.Kind))
		w.WriteByteString(d.Credential.bytes)
	default:
		w.WriteStartArray(1)
		w.WriteUint(uint64(d.Kind))
	}
}

// DecodeDRep reads a DRep written by Encode.
func DecodeDRep(r *cbor.Reader) (DRep, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return DRep{}, err
	}
	kind, err := r.ReadUint()
	if err != nil {
		return DRep{}, err
	}
	switch DRepKind(kind) {
	case DRepKeyHash, DRepScriptHash:
		if n != 2 {
			return DRep{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeDRep", "expected 2-element array for credentialed DRep")
		}
		credBytes, err := cbor.ValidateByteStringOfSize(r, 28, "DecodeDRep")
		if err != nil {
			return DRep{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeDRep"); err != nil {
			return DRep{}, err
		}
		return NewDRepFromCredential(DRepKind(kind), credBytes)
	case DRepAbstain, DRepNoConfidence:
		if n != 1 {
			return DRep{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "DecodeDRep", "expected 1-element array for abstain/no-confidence DRep")
		}
		if err := cbor.ValidateEndArray(r, "DecodeDRep"); err != nil {
			return DRep{}, err
		}
		return DRep{Kind: DRepKind(kind)}, nil
	default:
		return DRep{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "DecodeDRep", "unknown DRep kind")
	}
}

// VoterKind selects which of the five governance-voter roles cast a vote
//.
type VoterKind uint64

const (
	VoterConstitutionalCommitteeKeyHash VoterKind = iota
	VoterConstitutionalCommitteeScriptHash
	VoterDRepKeyHash
	VoterDRepScriptHash
	VoterStakePoolKeyHash
)

// Voter identifies who cast a governance vote.
type Voter struct {
	Kind       VoterKind
	Credential Blake2bHash // 28-byte key or script hash
}

// NewVoter builds a Voter from its kind and 28-byte credential hash.
func NewVoter(kind VoterKind, credHash []byte) (Voter, error) {
	if kind > VoterStakePoolKeyHash {
		return Voter{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "NewVoter", "unknown voter kind")
	}
	h, err := NewBlake2bHash(credHash)
	if err != nil {
		return Voter{}, err
	}
	if len(h.bytes) != 28 {
		return Voter{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "NewVoter", "credential hash must be 28 bytes")
	}
	return Voter{Kind: kind, Credential: h}, nil
}

// Encode writes `[kind, credentialHash]`.
func (v Voter) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	w.WriteUint(uint64(v.Kind))
	w.WriteByteString(v.Credential.bytes)
}

// DecodeVoter reads a Voter written by Encode.
func DecodeVoter(r *cbor.Reader) (Voter, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeVoter"); err != nil {
		return Voter{}, err
	}
	kind, err := r.ReadUint()
	if err != nil {
		return Voter{}, err
	}
	credBytes, err := cbor.ValidateByteStringOfSize(r, 28, "DecodeVoter")
	if err != nil {
		return Voter{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeVoter"); err != nil {
		return Voter{}, err
	}
	return NewVoter(VoterKind(kind), credBytes)
}

// GovernanceActionID mirrors address.GovernanceActionID's shape on the
// ledger-internal, CBOR-facing side: a full u64 index travels on the wire
// here, unlike the Bech32 form's one-byte truncation.
type GovernanceActionID struct {
	TxHash Blake2bHash
	Index  uint64
}

// NewGovernanceActionID builds a ledger-side governance action id.
func NewGovernanceActionID(txHash []byte, index uint64) (GovernanceActionID, error) {
	h, err := NewBlake2bHash(txHash)
	if err != nil {
		return GovernanceActionID{}, err
	}
	if len(h.bytes) != 32 {
		return GovernanceActionID{}, sdkerr.New(sdkerr.CodeInvalidArgument, "NewGovernanceActionID", "tx hash must be 32 bytes")
	}
	return GovernanceActionID{TxHash: h, Index: index}, nil
}

// Encode writes `[ txHash, index ]`.
func (g GovernanceActionID) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	writeHashBytes(w, g.TxHash)
	w.WriteUint(g.Index)
}

// DecodeGovernanceActionID reads a GovernanceActionID written by Encode.
func DecodeGovernanceActionID(r *cbor.Reader) (GovernanceActionID, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeGovernanceActionID"); err != nil {
		return GovernanceActionID{}, err
	}
	hash, err := readHashOfSize(r, 32, "DecodeGovernanceActionID")
	if err != nil {
		return GovernanceActionID{}, err
	}
	idx, err := r.ReadUint()
	if err != nil {
		return GovernanceActionID{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeGovernanceActionID"); err != nil {
		return GovernanceActionID{}, err
	}
	return NewGovernanceActionID(hash.bytes, idx)
}
