// Package ed25519key wraps the "normal" Ed25519 key class: a 32-byte
// seed, signed and verified via stdlib crypto/ed25519's
// crypto_sign_detached-equivalent API.
package ed25519key

import (
	"github.com/sirupsen/logrus"

	"cardano-go-sdk/cryptofacade"
)

// pkgLogger is this package's diagnostic sink. It never receives seeds,
// signatures, or message contents, only message sizes.
var pkgLogger = logrus.New()

// SetLogger overrides this package's logger, letting an embedding
// application redirect signing diagnostics.
func SetLogger(l *logrus.Logger) { pkgLogger = l }

// PrivateKey is a 32-byte Ed25519 seed.
type PrivateKey [32]byte

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey [32]byte

// KeyPairFromSeed derives the (private, public) pair from a 32-byte seed.
// The returned PrivateKey is the seed itself, matching crypto_sign_seed_keypair;
// Sign re-expands it on each call rather than caching the 64-byte expanded form.
func KeyPairFromSeed(seed [32]byte) (PrivateKey, PublicKey, error) {
	_, pub, err := cryptofacade.Ed25519KeyPairFromSeed(seed[:])
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	var pubk PublicKey
	copy(pubk[:], pub)
	return PrivateKey(seed), pubk, nil
}

// Sign produces a detached 64-byte signature over msg.
func Sign(seed PrivateKey, msg []byte) ([]byte, error) {
	priv, _, err := cryptofacade.Ed25519KeyPairFromSeed(seed[:])
	if err != nil {
		return nil, err
	}
	sig, err := cryptofacade.Ed25519SignDetached(priv, msg)
	if err != nil {
		return nil, err
	}
	pkgLogger.WithField("msg_len", len(msg)).Debug("ed25519 signature produced")
	return sig, nil
}

// Verify checks sig over msg against pub.
func Verify(pub PublicKey, msg, sig []byte) bool {
	return cryptofacade.Ed25519Verify(pub[:], msg, sig)
}
