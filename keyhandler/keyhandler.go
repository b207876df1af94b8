// Package keyhandler implements the secure-key-handler facade: a
// polymorphic signer over a BIP32 seed or a bare Ed25519 private key,
// backed by an EMIP-3 encrypted at-rest envelope with a versioned,
// CRC-32-checked serialization layout and a caller-supplied passphrase
// callback.
package keyhandler

import (
	"github.com/sirupsen/logrus"

	"cardano-go-sdk/bip32"
	"cardano-go-sdk/buffer"
	"cardano-go-sdk/cryptofacade"
	"cardano-go-sdk/ed25519ext"
	"cardano-go-sdk/ed25519key"
	"cardano-go-sdk/ledger"
	"cardano-go-sdk/sdkerr"
)

// Kind selects which key-material shape a Handler wraps.
type Kind uint8

const (
	KindEd25519 Kind = 0
	KindBip32   Kind = 1
)

// Envelope magic/version/field widths for the serialized, encrypted form.
const (
	envelopeMagic        uint32 = 0x0A0A0A0A
	envelopeFormatVer    byte   = 0x01
	envelopeHeaderSize           = 4 + 1 + 1 + 4 // magic, version, type, ciphertext length
	envelopeCRCSize              = 4
)

// PassphraseCallback acquires a passphrase synchronously: it writes into
// out (up to len(out) bytes) and returns the number of bytes written.
// Returning a length ≤0 or >len(out) fails the calling operation with
// InvalidPassphrase.
type PassphraseCallback func(out []byte) int

// DerivationPath locates a signing key under a BIP32 handler's root: the
// standard CIP-1852 5-level path (purpose'/coinType'/account'/role/index).
type DerivationPath struct {
	Purpose  uint32
	CoinType uint32
	Account  uint32
	Role     uint32
	Index    uint32
}

// Handler is the secure-key-handler facade. Exactly one of rootKey (BIP32)
// or ed25519Seed (Ed25519) is meaningful, selected by Kind. Key material is
// held in plaintext only for the handler's lifetime; callers that need
// at-rest protection use Serialize/Deserialize, which never keep decrypted
// bytes beyond one operation.
type Handler struct {
	kind        Kind
	rootKey     bip32.ExtendedKey
	ed25519Seed [32]byte
	log         *logrus.Logger
}

// NewBip32Handler builds a handler wrapping a BIP32 root key.
func NewBip32Handler(root bip32.ExtendedKey) *Handler {
	return &Handler{kind: KindBip32, rootKey: root, log: logrus.StandardLogger()}
}

// NewEd25519Handler builds a handler wrapping a bare Ed25519 seed.
func NewEd25519Handler(seed [32]byte) *Handler {
	return &Handler{kind: KindEd25519, ed25519Seed: seed, log: logrus.StandardLogger()}
}

// WithLogger overrides the handler's logger (defaults to logrus's standard
// logger). Never logs key material, passphrases, or signatures.
func (h *Handler) WithLogger(lg *logrus.Logger) *Handler {
	h.log = lg
	return h
}

// Kind reports which key-material shape this handler wraps.
func (h *Handler) Kind() Kind { return h.kind }

// Bip32GetExtendedAccountPublicKey derives the extended public key for an
// account-level path.
func (h *Handler) Bip32GetExtendedAccountPublicKey(purpose, coinType, account uint32) (bip32.ExtendedPublicKey, error) {
	if h.kind != KindBip32 {
		return bip32.ExtendedPublicKey{}, sdkerr.New(sdkerr.CodeInvalidArgument, "Bip32GetExtendedAccountPublicKey", "handler is not a BIP32 handler")
	}
	return bip32.ExtendedAccountPublicKey(h.rootKey, purpose, coinType, account)
}

// Ed25519GetPublicKey returns the handler's Ed25519 public key.
func (h *Handler) Ed25519GetPublicKey() (ed25519key.PublicKey, error) {
	if h.kind != KindEd25519 {
		return ed25519key.PublicKey{}, sdkerr.New(sdkerr.CodeInvalidArgument, "Ed25519GetPublicKey", "handler is not an Ed25519 handler")
	}
	_, pub, err := ed25519key.KeyPairFromSeed(h.ed25519Seed)
	return pub, err
}

// Bip32SignTransaction computes tx.Id(), derives each requested path's
// child private key, signs the id bytes with the extended Ed25519
// procedure, and returns a canonical vkey-witness set.
func (h *Handler) Bip32SignTransaction(tx ledger.Transaction, paths []DerivationPath) (ledger.WitnessSet, error) {
	if h.kind != KindBip32 {
		return ledger.WitnessSet{}, sdkerr.New(sdkerr.CodeInvalidArgument, "Bip32SignTransaction", "handler is not a BIP32 handler")
	}
	txID, err := tx.Id()
	if err != nil {
		return ledger.WitnessSet{}, err
	}
	witnesses := make([]ledger.VKeyWitness, 0, len(paths))
	for _, p := range paths {
		account, err := bip32.DeriveAccountPath(h.rootKey, p.Purpose, p.CoinType, p.Account)
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		child, err := bip32.DeriveAddressPath(account, p.Role, p.Index)
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		extKey, err := ed25519ext.FromScalarAndIV(child.Bytes()[:64])
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		pub, err := ed25519ext.PublicKey(extKey)
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		sig, err := ed25519ext.Sign(extKey, txID.Bytes())
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		w, err := ledger.NewVKeyWitness(pub[:], sig[:])
		if err != nil {
			return ledger.WitnessSet{}, err
		}
		witnesses = append(witnesses, w)
	}
	h.log.WithField("witnesses", len(witnesses)).Debug("bip32 transaction signed")
	return ledger.WitnessSet{VKeyWitnesses: witnesses}, nil
}

// Ed25519SignTransaction computes tx.Id(), signs it with the handler's
// normal Ed25519 key, and returns a single-witness vkey-witness set.
func (h *Handler) Ed25519SignTransaction(tx ledger.Transaction) (ledger.WitnessSet, error) {
	if h.kind != KindEd25519 {
		return ledger.WitnessSet{}, sdkerr.New(sdkerr.CodeInvalidArgument, "Ed25519SignTransaction", "handler is not an Ed25519 handler")
	}
	txID, err := tx.Id()
	if err != nil {
		return ledger.WitnessSet{}, err
	}
	priv, pub, err := ed25519key.KeyPairFromSeed(h.ed25519Seed)
	if err != nil {
		return ledger.WitnessSet{}, err
	}
	sig, err := ed25519key.Sign(priv, txID.Bytes())
	if err != nil {
		return ledger.WitnessSet{}, err
	}
	w, err := ledger.NewVKeyWitness(pub[:], sig)
	if err != nil {
		return ledger.WitnessSet{}, err
	}
	h.log.Debug("ed25519 transaction signed")
	return ledger.WitnessSet{VKeyWitnesses: []ledger.VKeyWitness{w}}, nil
}

// secretBytes returns the raw key material this handler encrypts at rest:
// the 96-byte BIP32 root key bytes, or the 32-byte Ed25519 seed.
func (h *Handler) secretBytes() []byte {
	if h.kind == KindBip32 {
		return h.rootKey.Bytes()
	}
	out := make([]byte, 32)
	copy(out, h.ed25519Seed[:])
	return out
}

// Serialize encrypts the handler's key material with EMIP-3 under
// passphrase and wraps it in the bit-exact envelope:
// magic(4) | version(1) | type(1) | ciphertext length(4) | ciphertext |
// crc32(4), all network (big-endian) byte order.
func (h *Handler) Serialize(passphrase []byte) ([]byte, error) {
	ciphertext, err := cryptofacade.EMIP3Encrypt(h.secretBytes(), passphrase)
	if err != nil {
		return nil, err
	}
	buf := buffer.New(envelopeHeaderSize + len(ciphertext) + envelopeCRCSize)
	buf.WriteUint32BE(envelopeMagic)
	buf.Write([]byte{envelopeFormatVer, byte(h.kind)})
	buf.WriteUint32BE(uint32(len(ciphertext)))
	buf.Write(ciphertext)
	buf.WriteUint32BE(cryptofacade.CRC32(buf.Bytes()))
	h.log.WithField("kind", h.kind).Debug("handler serialized")
	return buf.Bytes(), nil
}

// Deserialize parses the envelope layout, verifies its CRC-32, decrypts
// the ciphertext via a caller-supplied passphrase callback, and rebuilds
// the handler. It fails with InvalidMagic, Decoding (bad version/type), or
// ChecksumMismatch
func Deserialize(data []byte, cb PassphraseCallback) (*Handler, error) {
	if len(data) < envelopeHeaderSize+envelopeCRCSize {
		return nil, sdkerr.New(sdkerr.CodeDecoding, "Deserialize", "envelope too short")
	}
	buf := buffer.FromBytes(data)
	magic, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if magic != envelopeMagic {
		return nil, sdkerr.New(sdkerr.CodeInvalidMagic, "Deserialize", "bad envelope magic")
	}
	versionAndKind, err := buf.Read(2)
	if err != nil {
		return nil, err
	}
	if versionAndKind[0] != envelopeFormatVer {
		return nil, sdkerr.New(sdkerr.CodeDecoding, "Deserialize", "unsupported envelope version")
	}
	kind := Kind(versionAndKind[1])
	if kind != KindEd25519 && kind != KindBip32 {
		return nil, sdkerr.New(sdkerr.CodeDecoding, "Deserialize", "unknown handler type")
	}
	ctLen, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	end := envelopeHeaderSize + int(ctLen)
	if len(data) != end+envelopeCRCSize {
		return nil, sdkerr.New(sdkerr.CodeDecoding, "Deserialize", "ciphertext length does not match envelope size")
	}
	ciphertext, err := buf.Read(int(ctLen))
	if err != nil {
		return nil, err
	}
	wantCRC, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	gotCRC := cryptofacade.CRC32(buf.Bytes()[:end])
	if wantCRC != gotCRC {
		return nil, sdkerr.New(sdkerr.CodeChecksumMismatch, "Deserialize", "envelope CRC-32 mismatch")
	}
	passphrase := make([]byte, 256)
	n := cb(passphrase)
	if n <= 0 || n > len(passphrase) {
		return nil, sdkerr.New(sdkerr.CodeInvalidPassphrase, "Deserialize", "passphrase callback returned an invalid length")
	}
	passphrase = passphrase[:n]
	defer cryptofacade.Wipe(passphrase)

	plaintext, err := cryptofacade.EMIP3Decrypt(ciphertext, passphrase)
	if err != nil {
		return nil, err
	}
	defer cryptofacade.Wipe(plaintext)

	logrus.StandardLogger().WithField("kind", kind).Debug("handler deserialized")
	switch kind {
	case KindBip32:
		root, err := bip32.ExtendedKeyFromBytes(plaintext)
		if err != nil {
			return nil, err
		}
		return NewBip32Handler(root), nil
	default:
		if len(plaintext) != 32 {
			return nil, sdkerr.New(sdkerr.CodeInvalidEd25519PrivateKeySize, "Deserialize", "decrypted Ed25519 seed must be 32 bytes")
		}
		var seed [32]byte
		copy(seed[:], plaintext)
		return NewEd25519Handler(seed), nil
	}
}
