// Package cryptofacade is a thin, language-neutral wrapper over: Blake2b,
// SHA-256, HMAC-SHA-512, PBKDF2-HMAC-SHA-512, CRC-32, Ed25519
// sign/verify/keypair-from-seed, scalar-mult-base (no-clamp), and the
// ChaCha20-Poly1305 AEAD used by the EMIP-3 envelope. Every primitive is
// delegated to a vetted library (stdlib or golang.org/x/crypto); this
// package only adds the error-taxonomy wrap requires.
package cryptofacade

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"hash/crc32"
	"io"

	"filippo.io/edwards25519"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"

	"cardano-go-sdk/sdkerr"
)

// pkgLogger is this package's diagnostic sink. It never receives key
// material, passphrases, or plaintext EMIP-3 payloads, only operation
// names and sizes. It discards everything until SetLogger installs another
// logger.
var pkgLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// SetLogger overrides this package's logger, letting an embedding
// application redirect EMIP-3 and scalar-arithmetic diagnostics.
func SetLogger(l *logrus.Logger) { pkgLogger = l }

//---------------------------------------------------------------------
// Blake2b
//---------------------------------------------------------------------

// Blake2b224, Blake2b256 and Blake2b512 are the permitted output sizes
// for a "Blake2b hash" entity.
const (
	Blake2b224Size = 28
	Blake2b256Size = 32
	Blake2b512Size = 64
)

// Blake2b224Sum returns the 28-byte Blake2b digest of data.
func Blake2b224Sum(data []byte) ([]byte, error) { return blake2bSum(data, Blake2b224Size) }

// Blake2b256Sum returns the 32-byte Blake2b digest of data.
func Blake2b256Sum(data []byte) ([]byte, error) { return blake2bSum(data, Blake2b256Size) }

// Blake2b512Sum returns the 64-byte Blake2b digest of data.
func Blake2b512Sum(data []byte) ([]byte, error) { return blake2bSum(data, Blake2b512Size) }

func blake2bSum(data []byte, size int) ([]byte, error) {
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "blake2bSum", "init failed", err)
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// NewBlake2bStream returns a streaming Blake2b hasher for the given output
// size (one of Blake2b224Size/256/512), for callers that hash incrementally.
func NewBlake2bStream(size int) (hash.Hash, error) {
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeInvalidBlake2bHashSize, "NewBlake2bStream", "unsupported size", err)
	}
	return h, nil
}

//---------------------------------------------------------------------
// SHA-256
//---------------------------------------------------------------------

// SHA256Sum returns the SHA-256 digest of data, used by BIP-39's checksum.
func SHA256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA512Sum returns the unkeyed SHA-512 digest of data, used by the
// extended Ed25519 signing procedure's nonce and challenge hashes, which
// hash plain concatenated byte strings rather than HMAC.
func SHA512Sum(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

//---------------------------------------------------------------------
// HMAC-SHA-512
//---------------------------------------------------------------------

// NewHMACSHA512 returns a streaming HMAC-SHA-512 hasher keyed by key.
func NewHMACSHA512(key []byte) hash.Hash {
	return hmac.New(sha512.New, key)
}

// HMACSHA512Sum computes one-shot HMAC-SHA-512(key, data), used by BIP-32
// child derivation.
func HMACSHA512Sum(key, data []byte) []byte {
	h := NewHMACSHA512(key)
	h.Write(data)
	return h.Sum(nil)
}

//---------------------------------------------------------------------
// PBKDF2-HMAC-SHA-512
//---------------------------------------------------------------------

// PBKDF2HMACSHA512 derives outLen bytes from password/salt using the
// caller-supplied iteration count. Used by BIP-32 root derivation (4096
// iterations) and the EMIP-3 envelope (19162 iterations).
func PBKDF2HMACSHA512(password, salt []byte, iterations, outLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, outLen, sha512.New)
}

//---------------------------------------------------------------------
// CRC-32
//---------------------------------------------------------------------

// CRC32 computes the IEEE CRC-32 checksum used by the secure-key-handler's
// serialized envelope.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

//---------------------------------------------------------------------
// Ed25519 (normal path)
//---------------------------------------------------------------------

// Ed25519KeyPairFromSeed derives the (private, public) pair from a 32-byte
// seed via crypto/ed25519's standard expansion.
func Ed25519KeyPairFromSeed(seed []byte) (priv ed25519.PrivateKey, pub ed25519.PublicKey, err error) {
	if len(seed) != ed25519.SeedSize {
		return nil, nil, sdkerr.New(sdkerr.CodeInvalidEd25519PrivateKeySize, "Ed25519KeyPairFromSeed", "seed must be 32 bytes")
	}
	priv = ed25519.NewKeyFromSeed(seed)
	pub = priv.Public().(ed25519.PublicKey)
	return priv, pub, nil
}

// Ed25519SignDetached signs msg with priv, returning a 64-byte signature.
func Ed25519SignDetached(priv ed25519.PrivateKey, msg []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, sdkerr.New(sdkerr.CodeInvalidEd25519PrivateKeySize, "Ed25519SignDetached", "private key must be 64 bytes")
	}
	return ed25519.Sign(priv, msg), nil
}

// Ed25519Verify verifies sig over msg against pub. It does not distinguish
// between the normal and extended key classes.
func Ed25519Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}

//---------------------------------------------------------------------
// Scalar-mult-base (no clamp)
//---------------------------------------------------------------------

// ScalarMultBaseNoClamp computes scalar*G without the standard Ed25519
// clamping step, used to derive the public key of an extended (BIP32-Ed25519)
// private key. scalar is the 32-byte little-endian
// scalar half of the extended key; it need not already be reduced mod the
// curve order L — multiplication by the base point only depends on the
// scalar's residue mod L, so widening it into a 64-byte little-endian
// integer and reducing via SetUniformBytes yields the identical point that a
// raw, unreduced ladder multiplication (e.g. libsodium's
// crypto_scalarmult_ed25519_base_noclamp) would produce.
func ScalarMultBaseNoClamp(scalar []byte) ([]byte, error) {
	s, err := reduceScalar(scalar)
	if err != nil {
		return nil, err
	}
	point := new(edwards25519.Point).ScalarBaseMult(s)
	return point.Bytes(), nil
}

// reduceScalar widens a <=32-byte little-endian scalar into the 64-byte
// input SetUniformBytes expects and reduces it mod L.
func reduceScalar(scalar []byte) (*edwards25519.Scalar, error) {
	if len(scalar) == 0 || len(scalar) > 32 {
		return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "reduceScalar", "scalar must be 1..32 bytes")
	}
	wide := make([]byte, 64)
	copy(wide, scalar)
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "reduceScalar", "scalar reduction failed", err)
	}
	return s, nil
}

// ReduceScalarModL exposes the scalar-mod-L reduction for the extended
// Ed25519 signing procedure, which needs the same
// reduced scalar in curve-arithmetic form for MultiplyAdd.
func ReduceScalarModL(scalar []byte) (*edwards25519.Scalar, error) {
	return reduceScalar(scalar)
}

// ReduceWideScalarModL reduces a full 64-byte little-endian integer (e.g. a
// SHA-512 digest) mod L, used for the nonce and challenge hash in extended
// Ed25519 signing.
func ReduceWideScalarModL(wide []byte) (*edwards25519.Scalar, error) {
	if len(wide) != 64 {
		return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "ReduceWideScalarModL", "input must be 64 bytes")
	}
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "ReduceWideScalarModL", "scalar reduction failed", err)
	}
	return s, nil
}

// PointAdd adds two compressed Edwards25519 points, used by BIP32-Ed25519
// soft public-key derivation to tweak a parent public key without its
// private scalar.
func PointAdd(a, b []byte) ([]byte, error) {
	pa, err := new(edwards25519.Point).SetBytes(a)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeInvalidBip32PublicKeySize, "PointAdd", "invalid point a", err)
	}
	pb, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeInvalidBip32PublicKeySize, "PointAdd", "invalid point b", err)
	}
	sum := new(edwards25519.Point).Add(pa, pb)
	return sum.Bytes(), nil
}

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, sdkerr.Wrap(sdkerr.CodeGeneric, "RandomBytes", "RNG read failed", err)
	}
	return b, nil
}
