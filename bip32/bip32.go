// Package bip32 implements the Cardano variant of BIP32-Ed25519: a
// 96-byte root key (64-byte extended Ed25519 scalar+IV, then a 32-byte
// chain code) derived from BIP39 entropy, and hardened/soft
// child derivation following the non-linear keyspace construction from
// Khovratovich & Law's "BIP32-Ed25519" (as implemented by the wider Cardano
// tooling ecosystem, not by any single upstream Go library — there is no
// pack dependency for this exact derivation, so it is hand-rolled here on
// top of the cryptofacade primitives and documented per step below).
package bip32

import (
	"encoding/binary"
	"math/big"

	"github.com/sirupsen/logrus"

	"cardano-go-sdk/cryptofacade"
	"cardano-go-sdk/sdkerr"
)

// pkgLogger is this package's diagnostic sink. It never receives scalars,
// chain codes, or other key material, only derivation-path components.
var pkgLogger = logrus.New()

// SetLogger overrides this package's logger, letting an embedding
// application redirect derivation diagnostics.
func SetLogger(l *logrus.Logger) { pkgLogger = l }

const (
	// RootKeySize is the 64-byte scalar+IV plus 32-byte chain code.
	RootKeySize = 96
	scalarSize  = 32
	ivSize      = 32
	chainSize   = 32

	// HardenedOffset marks the start of the hardened index range (2^31).
	HardenedOffset uint32 = 1 << 31

	pbkdf2Iterations = 4096
)

// ExtendedKey is a 96-byte BIP32-Ed25519 node: scalar (kL), IV (kR), and
// chain code.
type ExtendedKey struct {
	ScalarAndIV [64]byte // kL (32) || kR (32); kL is the signing scalar
	ChainCode   [32]byte
}

// Bytes packs the key back into the 96-byte wire form.
func (k ExtendedKey) Bytes() []byte {
	out := make([]byte, RootKeySize)
	copy(out[:64], k.ScalarAndIV[:])
	copy(out[64:], k.ChainCode[:])
	return out
}

// ExtendedKeyFromBytes unpacks a 96-byte root or derived key.
func ExtendedKeyFromBytes(b []byte) (ExtendedKey, error) {
	if len(b) != RootKeySize {
		return ExtendedKey{}, sdkerr.New(sdkerr.CodeInvalidBip32PrivateKeySize, "ExtendedKeyFromBytes", "key must be 96 bytes")
	}
	var k ExtendedKey
	copy(k.ScalarAndIV[:], b[:64])
	copy(k.ChainCode[:], b[64:])
	return k, nil
}

func (k ExtendedKey) scalar() []byte { return k.ScalarAndIV[:scalarSize] }
func (k ExtendedKey) iv() []byte     { return k.ScalarAndIV[scalarSize:] }

// PublicKey is a 32-byte compressed Edwards25519 point.
type PublicKey [32]byte

// ExtendedPublicKey is a public key plus the chain code needed to continue
// soft derivation without the private scalar.
type ExtendedPublicKey struct {
	PublicKey PublicKey
	ChainCode [32]byte
}

// RootKeyFromEntropy derives the 96-byte root key from BIP39 entropy and an
// optional password: PBKDF2-HMAC-SHA-512(password,
// entropy, 4096, 96) followed by scalar clamping.
func RootKeyFromEntropy(entropy, password []byte) (ExtendedKey, error) {
	derived := cryptofacade.PBKDF2HMACSHA512(password, entropy, pbkdf2Iterations, RootKeySize)
	defer cryptofacade.Wipe(derived)
	clampScalar(derived[:scalarSize])
	pkgLogger.Debug("bip32 root key derived")
	return ExtendedKeyFromBytes(derived)
}

// clampScalar applies the Ed25519 clamping bits in place: clear bits 0,1,2
// of byte 0; clear bits 5,6,7 of byte 31; set bit 6 of byte 31.
func clampScalar(scalar []byte) {
	scalar[0] &^= 0b00000111
	scalar[31] &^= 0b11100000
	scalar[31] |= 0b01000000
}

// PublicKeyOf returns the public key corresponding to k's signing scalar.
func PublicKeyOf(k ExtendedKey) (PublicKey, error) {
	p, err := cryptofacade.ScalarMultBaseNoClamp(k.scalar())
	if err != nil {
		return PublicKey{}, err
	}
	var pk PublicKey
	copy(pk[:], p)
	return pk, nil
}

// IsHardened reports whether index falls in the hardened range (>= 2^31).
func IsHardened(index uint32) bool { return index >= HardenedOffset }

// Harden returns index with the hardened bit set, for building derivation
// paths like m/1852'/1815'/0'.
func Harden(index uint32) uint32 { return index | HardenedOffset }

//---------------------------------------------------------------------
// Private child derivation
//---------------------------------------------------------------------

// DeriveChildPrivate derives one private child node from parent at the
// given index, following the Cardano SLIP-0010-ed25519 construction.
// Hardened indices (>= 2^31) use the parent's private scalar+IV; soft
// indices use the parent's public key.
func DeriveChildPrivate(parent ExtendedKey, index uint32) (ExtendedKey, error) {
	idxBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(idxBuf, index)

	var zData, iData []byte
	if IsHardened(index) {
		zData = concatBytes([]byte{0x00}, parent.scalar(), parent.iv(), idxBuf)
		iData = concatBytes([]byte{0x01}, parent.scalar(), parent.iv(), idxBuf)
	} else {
		pub, err := PublicKeyOf(parent)
		if err != nil {
			return ExtendedKey{}, err
		}
		zData = concatBytes([]byte{0x02}, pub[:], idxBuf)
		iData = concatBytes([]byte{0x03}, pub[:], idxBuf)
	}

	z := cryptofacade.HMACSHA512Sum(parent.ChainCode[:], zData)
	i := cryptofacade.HMACSHA512Sum(parent.ChainCode[:], iData)
	defer cryptofacade.Wipe(z)
	defer cryptofacade.Wipe(i)

	zl := z[:28]
	zr := z[32:64]

	newScalar := add28Mul8(parent.scalar(), zl)
	newIV := add256Mod2to256(parent.iv(), zr)

	var child ExtendedKey
	copy(child.ScalarAndIV[:32], newScalar)
	copy(child.ScalarAndIV[32:], newIV)
	copy(child.ChainCode[:], i[32:64])
	return child, nil
}

//---------------------------------------------------------------------
// Public-only (soft) child derivation
//---------------------------------------------------------------------

// DeriveChildPublic derives a soft child's extended public key without
// requiring the parent's private scalar. Hardened indices fail with
// InvalidBip32DerivationIndex.
func DeriveChildPublic(parent ExtendedPublicKey, index uint32) (ExtendedPublicKey, error) {
	if IsHardened(index) {
		return ExtendedPublicKey{}, sdkerr.New(sdkerr.CodeInvalidBip32DerivationIndex, "DeriveChildPublic", "cannot derive hardened index from a public key")
	}
	idxBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(idxBuf, index)

	zData := concatBytes([]byte{0x02}, parent.PublicKey[:], idxBuf)
	iData := concatBytes([]byte{0x03}, parent.PublicKey[:], idxBuf)

	z := cryptofacade.HMACSHA512Sum(parent.ChainCode[:], zData)
	i := cryptofacade.HMACSHA512Sum(parent.ChainCode[:], iData)
	defer cryptofacade.Wipe(z)

	zl := z[:28]
	tweakScalar := mul8(zl) // 8*zl as a scalar, to be multiplied by the base point
	tweakPoint, err := cryptofacade.ScalarMultBaseNoClamp(tweakScalar)
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	newPoint, err := cryptofacade.PointAdd(parent.PublicKey[:], tweakPoint)
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	var out ExtendedPublicKey
	copy(out.PublicKey[:], newPoint)
	copy(out.ChainCode[:], i[32:64])
	return out, nil
}

//---------------------------------------------------------------------
// Path helpers
//---------------------------------------------------------------------

// DeriveAccountPath walks the 3 hardened components m/purpose'/coin_type'/
// account' from the root key.
func DeriveAccountPath(root ExtendedKey, purpose, coinType, account uint32) (ExtendedKey, error) {
	k, err := DeriveChildPrivate(root, Harden(purpose))
	if err != nil {
		return ExtendedKey{}, err
	}
	k, err = DeriveChildPrivate(k, Harden(coinType))
	if err != nil {
		return ExtendedKey{}, err
	}
	child, err := DeriveChildPrivate(k, Harden(account))
	if err != nil {
		return ExtendedKey{}, err
	}
	pkgLogger.WithFields(logrus.Fields{"purpose": purpose, "coin_type": coinType, "account": account}).Debug("account path derived")
	return child, nil
}

// DeriveAddressPath walks the 2 soft components /role/index from an
// account key.
func DeriveAddressPath(account ExtendedKey, role, index uint32) (ExtendedKey, error) {
	if IsHardened(role) || IsHardened(index) {
		return ExtendedKey{}, sdkerr.New(sdkerr.CodeInvalidBip32DerivationIndex, "DeriveAddressPath", "address path components must be soft")
	}
	k, err := DeriveChildPrivate(account, role)
	if err != nil {
		return ExtendedKey{}, err
	}
	return DeriveChildPrivate(k, index)
}

// ExtendedAccountPublicKey derives the account node and returns its public
// key + chain code, for the secure-key-handler's
// bip32_get_extended_account_public_key operation.
func ExtendedAccountPublicKey(root ExtendedKey, purpose, coinType, account uint32) (ExtendedPublicKey, error) {
	acct, err := DeriveAccountPath(root, purpose, coinType, account)
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	pub, err := PublicKeyOf(acct)
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	return ExtendedPublicKey{PublicKey: pub, ChainCode: acct.ChainCode}, nil
}

//---------------------------------------------------------------------
// Little-endian 256-bit arithmetic helpers
//---------------------------------------------------------------------

// leToBigInt interprets b as a little-endian unsigned integer.
func leToBigInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(rev)
}

// bigIntToLE32 renders v as a 32-byte little-endian integer, wrapping mod
// 2^256.
func bigIntToLE32(v *big.Int) []byte {
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	v = new(big.Int).Mod(v, mod)
	be := v.Bytes()
	out := make([]byte, 32)
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	if len(be) > 32 {
		// Mod 2^256 guarantees this cannot happen; guard anyway.
		copy(out, make([]byte, 32))
	}
	return out
}

// add256Mod2to256 adds two 32-byte little-endian integers mod 2^256.
func add256Mod2to256(x, y []byte) []byte {
	sum := new(big.Int).Add(leToBigInt(x), leToBigInt(y))
	return bigIntToLE32(sum)
}

// mul8 multiplies a (<=28-byte) little-endian integer by 8 (left shift 3).
func mul8(zl []byte) []byte {
	v := new(big.Int).Lsh(leToBigInt(zl), 3)
	return bigIntToLE32(v)
}

// add28Mul8 computes x + 8*zl mod 2^256, the left-side tweak in the
// non-linear keyspace derivation (zl is the first 28 bytes of Z).
func add28Mul8(x, zl []byte) []byte {
	sum := new(big.Int).Add(leToBigInt(x), leToBigInt(mul8(zl)))
	return bigIntToLE32(sum)
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
