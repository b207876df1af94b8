// Package ed25519ext implements the extended Ed25519 key class: a
// 64-byte scalar+IV key produced by BIP32-Ed25519 derivation, signed
// with a procedure that must match byte-for-byte since
// the signature is ledger-consensus-observable. Verification is standard
// Ed25519 and does not distinguish this key class from ed25519key's normal
// 32-byte-seed keys.
package ed25519ext

import (
	"filippo.io/edwards25519"
	"github.com/sirupsen/logrus"

	"cardano-go-sdk/cryptofacade"
	"cardano-go-sdk/sdkerr"
)

// pkgLogger is this package's diagnostic sink. It never receives scalars,
// IVs, signatures, or message contents, only message sizes.
var pkgLogger = logrus.New()

// SetLogger overrides this package's logger, letting an embedding
// application redirect signing diagnostics.
func SetLogger(l *logrus.Logger) { pkgLogger = l }

// PrivateKey is the 64-byte scalar (kL, 32 bytes) plus IV (kR, 32 bytes)
// produced by bip32.ExtendedKey.ScalarAndIV.
type PrivateKey [64]byte

func (k PrivateKey) scalar() []byte { return k[:32] }
func (k PrivateKey) iv() []byte     { return k[32:64] }

// PublicKey computes A = scalar_mult_base_noclamp(scalar), step 1 of the
// signing procedure and also the key's standalone public key.
func PublicKey(k PrivateKey) ([32]byte, error) {
	a, err := cryptofacade.ScalarMultBaseNoClamp(k.scalar())
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], a)
	return out, nil
}

// Sign implements the extended Ed25519 signing procedure's six steps.
func Sign(k PrivateKey, msg []byte) ([64]byte, error) {
	var sig [64]byte

	a, err := cryptofacade.ScalarMultBaseNoClamp(k.scalar())
	if err != nil {
		return sig, err
	}

	nonceWide := cryptofacade.SHA512Sum(concat(k.iv(), msg))
	nonce, err := cryptofacade.ReduceWideScalarModL(nonceWide)
	if err != nil {
		return sig, err
	}

	r, err := cryptofacade.ScalarMultBaseNoClamp(nonce.Bytes())
	if err != nil {
		return sig, err
	}

	challengeWide := cryptofacade.SHA512Sum(concat(r, a, msg))
	h, err := cryptofacade.ReduceWideScalarModL(challengeWide)
	if err != nil {
		return sig, err
	}

	kl, err := cryptofacade.ReduceScalarModL(k.scalar())
	if err != nil {
		return sig, err
	}

	s := new(edwards25519.Scalar).MultiplyAdd(h, kl, nonce)

	copy(sig[:32], r)
	copy(sig[32:], s.Bytes())
	pkgLogger.WithField("msg_len", len(msg)).Debug("extended ed25519 signature produced")
	return sig, nil
}

// Verify checks sig over msg against pub using standard Ed25519
// verification.
func Verify(pub [32]byte, msg, sig []byte) bool {
	return cryptofacade.Ed25519Verify(pub[:], msg, sig)
}

// FromScalarAndIV builds a PrivateKey from a raw 64-byte scalar+IV slice,
// e.g. bip32.ExtendedKey.ScalarAndIV[:].
func FromScalarAndIV(b []byte) (PrivateKey, error) {
	if len(b) != 64 {
		return PrivateKey{}, sdkerr.New(sdkerr.CodeInvalidEd25519PrivateKeySize, "FromScalarAndIV", "extended key must be 64 bytes")
	}
	var k PrivateKey
	copy(k[:], b)
	return k, nil
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
