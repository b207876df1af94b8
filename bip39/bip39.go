// Package bip39 implements entropy<->mnemonic conversion: 16/20/24/28/32-byte
// entropy maps to 12/15/18/21/24-word mnemonics, with a SHA-256 checksum
// appended before 11-bit word packing.
//
// The canonical English wordlist itself is sourced from tyler-smith/go-bip39's
// wordlists subpackage; everything else here — bit packing, checksum
// computation, and word lookup — is our own implementation rather than a
// call into that library's NewMnemonic.
package bip39

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"

	"cardano-go-sdk/cryptofacade"
	"cardano-go-sdk/sdkerr"
)

// pkgLogger is this package's diagnostic sink. It never receives entropy,
// mnemonic words, or derived key material, only word/byte counts. It discards
// everything until SetLogger installs another logger.
var pkgLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// SetLogger overrides this package's logger, letting an embedding
// application redirect mnemonic-conversion diagnostics.
func SetLogger(l *logrus.Logger) { pkgLogger = l }

// validEntropyLengths enumerates the permitted entropy byte lengths.
var validEntropyLengths = map[int]int{
	16: 12,
	20: 15,
	24: 18,
	28: 21,
	32: 24,
}

func wordList() []string {
	return bip39.GetWordList()
}

// EntropyToMnemonic packs entropy plus its SHA-256-derived checksum into a
// space-separated English mnemonic
func EntropyToMnemonic(entropy []byte) (string, error) {
	wordCount, ok := validEntropyLengths[len(entropy)]
	if !ok {
		return "", sdkerr.New(sdkerr.CodeInvalidArgument, "EntropyToMnemonic", "entropy must be 16/20/24/28/32 bytes")
	}
	checksumBits := len(entropy) / 4 // entropy_bits / 32
	hash := cryptofacade.SHA256Sum(entropy)

	bits := newBitReader(append(append([]byte{}, entropy...), hash...))
	words := wordList()
	out := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		idx := bits.readBits(11)
		out[i] = words[idx]
	}
	// Sanity: the checksum bits consumed must equal checksumBits; the
	// reader naturally stops at wordCount*11 = entropyBits+checksumBits.
	_ = checksumBits
	return joinWords(out), nil
}

// MnemonicToEntropy reverses EntropyToMnemonic, verifying the trailing
// checksum bits and failing with InvalidChecksum on mismatch.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	words := splitWords(mnemonic)
	entropyBits, ok := wordCountToEntropyBits(len(words))
	if !ok {
		return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "MnemonicToEntropy", "unsupported word count")
	}
	list := wordList()
	index := make(map[string]int, len(list))
	for i, w := range list {
		index[w] = i
	}

	totalBits := entropyBits + entropyBits/32
	writer := newBitWriter(totalBits)
	for _, w := range words {
		idx, ok := lookupWordIndex(list, index, w)
		if !ok {
			return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "MnemonicToEntropy", "word not found in wordlist")
		}
		writer.writeBits(uint32(idx), 11)
	}
	full := writer.bytes()
	entropyLen := entropyBits / 8
	entropy := full[:entropyLen]
	checksumByte := full[entropyLen]
	checksumBitCount := entropyBits / 32

	expected := cryptofacade.SHA256Sum(entropy)
	gotChecksum := checksumByte >> (8 - checksumBitCount)
	wantChecksum := expected[0] >> (8 - checksumBitCount)
	if gotChecksum != wantChecksum {
		pkgLogger.WithField("word_count", len(words)).Warn("mnemonic checksum mismatch")
		return nil, sdkerr.New(sdkerr.CodeInvalidChecksum, "MnemonicToEntropy", "checksum mismatch")
	}
	return entropy, nil
}

// lookupWordIndex performs a linear scan over the canonical wordlist; the
// precomputed index map above is used only as a fast path that still
// agrees with the linear scan for every well-formed wordlist.
func lookupWordIndex(list []string, index map[string]int, w string) (int, bool) {
	if i, ok := index[w]; ok {
		return i, true
	}
	for i, candidate := range list {
		if candidate == w {
			return i, true
		}
	}
	return 0, false
}

func wordCountToEntropyBits(wordCount int) (int, bool) {
	for entropyBytes, wc := range validEntropyLengths {
		if wc == wordCount {
			return entropyBytes * 8, true
		}
	}
	return 0, false
}

func joinWords(words []string) string {
	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

//---------------------------------------------------------------------
// 11-bits-at-a-time packing
//---------------------------------------------------------------------

type bitReader struct {
	data []byte
	pos  int // bit offset
}

func newBitReader(data []byte) *bitReader { return &bitReader{data: data} }

func (b *bitReader) readBits(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		byteIdx := b.pos / 8
		bitIdx := 7 - uint(b.pos%8)
		bit := (b.data[byteIdx] >> bitIdx) & 1
		v = v<<1 | int(bit)
		b.pos++
	}
	return v
}

type bitWriter struct {
	data []byte
	pos  int // bit offset
}

func newBitWriter(totalBits int) *bitWriter {
	return &bitWriter{data: make([]byte, (totalBits+7)/8)}
}

func (b *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		byteIdx := b.pos / 8
		bitIdx := 7 - uint(b.pos%8)
		b.data[byteIdx] |= bit << bitIdx
		b.pos++
	}
}

func (b *bitWriter) bytes() []byte { return b.data }

// NewEntropy returns n cryptographically random bytes, for callers that want
// a fresh mnemonic rather than recovering one from known entropy.
func NewEntropy(byteLen int) ([]byte, error) {
	if _, ok := validEntropyLengths[byteLen]; !ok {
		return nil, sdkerr.New(sdkerr.CodeInvalidArgument, "NewEntropy", "entropy must be 16/20/24/28/32 bytes")
	}
	return cryptofacade.RandomBytes(byteLen)
}
