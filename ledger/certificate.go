package ledger

import (
	"cardano-go-sdk/cbor"
	"cardano-go-sdk/sdkerr"
)

// CertificateKind tags a certificate's variant per the Conway-era
// certificate CDDL. This SDK models the representative subset a
// client-side transaction builder actually issues: stake (de)registration
// and delegation, and the Conway governance certificates (DRep
// (de)registration/update, vote delegation). Pool registration/retirement
// and genesis/MIR certificates are operator-side concerns outside this
// SDK's scope.
type CertificateKind uint64

const (
	CertStakeRegistration CertificateKind = 0
	CertStakeDeregistration CertificateKind = 1
	CertStakeDelegation CertificateKind = 2
	CertVoteDelegation CertificateKind = 9
	CertDRepRegistration CertificateKind = 16
	CertDRepDeregistration CertificateKind = 17
	CertDRepUpdate CertificateKind = 18
)

// Certificate is a tagged union over the certificate kinds above. Only the
// fields relevant to Kind are meaningful; construction helpers enforce
// that invariant.
type Certificate struct {
	Kind       CertificateKind
	Credential Credential3

	PoolKeyHash Blake2bHash   // CertStakeDelegation
	DRep        DRep          // CertVoteDelegation
	Deposit     uint64        // CertStakeRegistration/Deregistration (Conway carries an explicit deposit)
	Anchor      *Anchor       // CertDRepRegistration/Update, optional
}

// Credential3 mirrors address.Credential's shape without importing the
// address package, avoiding a dependency cycle (ledger is lower-level than
// address in this module's layering, even though both describe
// credentials) while keeping the same {kind, 28-byte hash} contract.
type Credential3 struct {
	IsScript bool
	Hash     Blake2bHash
}

// NewCredential3 builds a ledger-side credential from a 28-byte hash.
func NewCredential3(isScript bool, hash []byte) (Credential3, error) {
	h, err := NewBlake2bHash(hash)
	if err != nil {
		return Credential3{}, err
	}
	if len(h.bytes) != 28 {
		return Credential3{}, sdkerr.New(sdkerr.CodeInvalidCredentialType, "NewCredential3", "credential hash must be 28 bytes")
	}
	return Credential3{IsScript: isScript, Hash: h}, nil
}

func (c Credential3) encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	if c.IsScript {
		w.WriteUint(1)
	} else {
		w.WriteUint(0)
	}
	w.WriteByteString(c.Hash.bytes)
}

func decodeCredential3(r *cbor.Reader) (Credential3, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "decodeCredential3"); err != nil {
		return Credential3{}, err
	}
	kind, err := r.ReadUint()
	if err != nil {
		return Credential3{}, err
	}
	hash, err := cbor.ValidateByteStringOfSize(r, 28, "decodeCredential3")
	if err != nil {
		return Credential3{}, err
	}
	if err := cbor.ValidateEndArray(r, "decodeCredential3"); err != nil {
		return Credential3{}, err
	}
	return NewCredential3(kind == 1, hash)
}

// NewStakeRegistration builds a Conway stake-registration certificate
// (`[0, credential, deposit]`).
func NewStakeRegistration(cred Credential3, deposit uint64) Certificate {
	return Certificate{Kind: CertStakeRegistration, Credential: cred, Deposit: deposit}
}

// NewStakeDeregistration builds a Conway stake-deregistration certificate.
func NewStakeDeregistration(cred Credential3, deposit uint64) Certificate {
	return Certificate{Kind: CertStakeDeregistration, Credential: cred, Deposit: deposit}
}

// NewStakeDelegation builds a stake-delegation certificate
// (`[2, credential, poolKeyHash]`).
func NewStakeDelegation(cred Credential3, poolKeyHash Blake2bHash) Certificate {
	return Certificate{Kind: CertStakeDelegation, Credential: cred, PoolKeyHash: poolKeyHash}
}

// NewVoteDelegation builds a vote-delegation certificate
// (`[9, credential, drep]`).
func NewVoteDelegation(cred Credential3, drep DRep) Certificate {
	return Certificate{Kind: CertVoteDelegation, Credential: cred, DRep: drep}
}

// NewDRepRegistration builds a DRep-registration certificate
// (`[16, credential, deposit, anchor?]`).
func NewDRepRegistration(cred Credential3, deposit uint64, anchor *Anchor) Certificate {
	return Certificate{Kind: CertDRepRegistration, Credential: cred, Deposit: deposit, Anchor: anchor}
}

// NewDRepDeregistration builds a DRep-deregistration certificate.
func NewDRepDeregistration(cred Credential3, deposit uint64) Certificate {
	return Certificate{Kind: CertDRepDeregistration, Credential: cred, Deposit: deposit}
}

// NewDRepUpdate builds a DRep-update certificate.
func NewDRepUpdate(cred Credential3, anchor *Anchor) Certificate {
	return Certificate{Kind: CertDRepUpdate, Credential: cred, Anchor: anchor}
}

// Encode writes the certificate array form appropriate to Kind.
func (c Certificate) Encode(w *cbor.Writer) error {
	switch c.Kind {
	case CertStakeRegistration, CertStakeDeregistration:
		w.WriteStartArray(3)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		w.WriteUint(c.Deposit)
		return nil
	case CertStakeDelegation:
		w.WriteStartArray(3)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		w.WriteByteString(c.PoolKeyHash.bytes)
		return nil
	case CertVoteDelegation:
		w.WriteStartArray(3)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		c.DRep.Encode(w)
		return nil
	case CertDRepRegistration:
		n := int64(3)
		if c.Anchor != nil {
			n = 4
		}
		w.WriteStartArray(n)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		w.WriteUint(c.Deposit)
		if c.Anchor != nil {
			c.Anchor.Encode(w)
		}
		return nil
	case CertDRepDeregistration:
		w.WriteStartArray(3)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		w.WriteUint(c.Deposit)
		return nil
	case CertDRepUpdate:
		n := int64(2)
		if c.Anchor != nil {
			n = 3
		}
		w.WriteStartArray(n)
		w.WriteUint(uint64(c.Kind))
		c.Credential.encode(w)
		if c.Anchor != nil {
			c.Anchor.Encode(w)
		}
		return nil
	default:
		return sdkerr.New(sdkerr.CodeNotImplemented, "Certificate.Encode", "unsupported certificate kind")
	}
}

// DecodeCertificate reads a Certificate written by Encode.
func DecodeCertificate(r *cbor.Reader) (Certificate, error) {
	n, err := r.ReadStartArray()
	if err != nil {
		return Certificate{}, err
	}
	kind, err := r.ReadUint()
	if err != nil {
		return Certificate{}, err
	}
	switch CertificateKind(kind) {
	case CertStakeRegistration, CertStakeDeregistration:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		deposit, err := r.ReadUint()
		if err != nil {
			return Certificate{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return Certificate{Kind: CertificateKind(kind), Credential: cred, Deposit: deposit}, nil
	case CertStakeDelegation:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		poolHash, err := readHashOfSize(r, 28, "DecodeCertificate")
		if err != nil {
			return Certificate{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return NewStakeDelegation(cred, poolHash), nil
	case CertVoteDelegation:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		drep, err := DecodeDRep(r)
		if err != nil {
			return Certificate{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return NewVoteDelegation(cred, drep), nil
	case CertDRepRegistration:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		deposit, err := r.ReadUint()
		if err != nil {
			return Certificate{}, err
		}
		var anchor *Anchor
		if n == 4 {
			a, err := DecodeAnchor(r)
			if err != nil {
				return Certificate{}, err
			}
			anchor = &a
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return NewDRepRegistration(cred, deposit, anchor), nil
	case CertDRepDeregistration:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		deposit, err := r.ReadUint()
		if err != nil {
			return Certificate{}, err
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return NewDRepDeregistration(cred, deposit), nil
	case CertDRepUpdate:
		cred, err := decodeCredential3(r)
		if err != nil {
			return Certificate{}, err
		}
		var anchor *Anchor
		if n == 3 {
			a, err := DecodeAnchor(r)
			if err != nil {
				return Certificate{}, err
			}
			anchor = &a
		}
		if err := cbor.ValidateEndArray(r, "DecodeCertificate"); err != nil {
			return Certificate{}, err
		}
		return NewDRepUpdate(cred, anchor), nil
	default:
		return Certificate{}, sdkerr.New(sdkerr.CodeNotImplemented, "DecodeCertificate", "unsupported certificate kind")
	}
}
