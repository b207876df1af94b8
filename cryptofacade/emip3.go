package cryptofacade

import (
	"golang.org/x/crypto/chacha20poly1305"

	"cardano-go-sdk/sdkerr"
)

// EMIP3Iterations is the fixed PBKDF2-HMAC-SHA-512 iteration count used by
// the EMIP-3 envelope.
const EMIP3Iterations = 19162

const (
	emip3SaltSize  = 32
	emip3KeySize   = 32
	emip3NonceSize = 12
	// PBKDF2 derives 64 bytes total: 32-byte cipher key + 12-byte nonce + an
	// unused 20-byte tail.
	emip3DerivedKeyLen = 64
)

// EMIP3Encrypt implements the EMIP-3 at-rest encryption envelope:
// salt with 32 random bytes, derive a 64-byte key via PBKDF2-HMAC-SHA-512
// (19162 iterations), split into a 32-byte cipher key and 12-byte nonce, run
// ChaCha20-Poly1305, and emit salt || ciphertext || tag. The unused tail of
// the derived key is discarded, not appended to the envelope.
func EMIP3Encrypt(plaintext, passphrase []byte) ([]byte, error) {
	salt, err := RandomBytes(emip3SaltSize)
	if err != nil {
		return nil, err
	}
	cipherKey, nonce := emip3DeriveKeyAndNonce(passphrase, salt)
	aead, err := chacha20poly1305.New(cipherKey)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "EMIP3Encrypt", "aead init failed", err)
	}
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	out := make([]byte, 0, emip3SaltSize+len(sealed))
	out = append(out, salt...)
	out = append(out, sealed...)
	pkgLogger.WithField("envelope_len", len(out)).Debug("EMIP-3 envelope encrypted")
	return out, nil
}

// EMIP3Decrypt is the inverse of EMIP3Encrypt. It fails with
// InvalidPassphrase on authentication-tag mismatch (wrong passphrase or
// corrupted ciphertext).
func EMIP3Decrypt(envelope, passphrase []byte) ([]byte, error) {
	if len(envelope) < emip3SaltSize+chacha20poly1305.Overhead {
		return nil, sdkerr.New(sdkerr.CodeDecoding, "EMIP3Decrypt", "envelope too short")
	}
	salt := envelope[:emip3SaltSize]
	sealed := envelope[emip3SaltSize:]
	cipherKey, nonce := emip3DeriveKeyAndNonce(passphrase, salt)
	aead, err := chacha20poly1305.New(cipherKey)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "EMIP3Decrypt", "aead init failed", err)
	}
	plaintext, openErr := aead.Open(nil, nonce, sealed, nil)
	if openErr != nil {
		pkgLogger.WithField("envelope_len", len(envelope)).Warn("EMIP-3 envelope authentication failed")
		return nil, sdkerr.Wrap(sdkerr.CodeInvalidPassphrase, "EMIP3Decrypt", "authentication failed", openErr)
	}
	pkgLogger.WithField("envelope_len", len(envelope)).Debug("EMIP-3 envelope decrypted")
	return plaintext, nil
}

func emip3DeriveKeyAndNonce(passphrase, salt []byte) (cipherKey, nonce []byte) {
	derived := PBKDF2HMACSHA512(passphrase, salt, EMIP3Iterations, emip3DerivedKeyLen)
	defer Wipe(derived)
	cipherKey = make([]byte, emip3KeySize)
	nonce = make([]byte, emip3NonceSize)
	copy(cipherKey, derived[:emip3KeySize])
	copy(nonce, derived[emip3KeySize:emip3KeySize+emip3NonceSize])
	return cipherKey, nonce
}

// Wipe zero-wipes p in place (re-exported here so EMIP-3 callers don't need
// to import the buffer package just for this).
func Wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
