package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestMnemonicRoundTripFixture(t *testing.T) {
	entropy, err := hex.DecodeString("00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatalf("hex decode failed: %v", err)
	}
	if len(entropy) != 16 {
		t.Fatalf("fixture entropy length=%d want 16", len(entropy))
	}

	mnemonic, err := EntropyToMnemonic(entropy)
	if err != nil {
		t.Fatalf("EntropyToMnemonic failed: %v", err)
	}
	words := strings.Fields(mnemonic)
	if len(words) != 12 {
		t.Fatalf("word count=%d want 12", len(words))
	}

	recovered, err := MnemonicToEntropy(mnemonic)
	if err != nil {
		t.Fatalf("MnemonicToEntropy failed: %v", err)
	}
	if !bytes.Equal(recovered, entropy) {
		t.Fatalf("recovered entropy=%x want %x", recovered, entropy)
	}
}

func TestMnemonicToEntropyRejectsBadChecksum(t *testing.T) {
	entropy, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	mnemonic, err := EntropyToMnemonic(entropy)
	if err != nil {
		t.Fatalf("EntropyToMnemonic failed: %v", err)
	}
	words := strings.Fields(mnemonic)
	list := wordList()
	// Swap the last word for a different one to corrupt the checksum bits
	// while preserving a valid word count.
	for _, w := range list {
		if w != words[len(words)-1] {
			words[len(words)-1] = w
			break
		}
	}
	if _, err := MnemonicToEntropy(strings.Join(words, " ")); err == nil {
		t.Fatalf("expected checksum mismatch error")
	}
}

func TestAllEntropyLengths(t *testing.T) {
	for byteLen, wordCount := range validEntropyLengths {
		entropy := bytes.Repeat([]byte{0x42}, byteLen)
		mnemonic, err := EntropyToMnemonic(entropy)
		if err != nil {
			t.Fatalf("EntropyToMnemonic(%d bytes) failed: %v", byteLen, err)
		}
		if got := len(strings.Fields(mnemonic)); got != wordCount {
			t.Fatalf("word count=%d want %d for %d-byte entropy", got, wordCount, byteLen)
		}
		recovered, err := MnemonicToEntropy(mnemonic)
		if err != nil {
			t.Fatalf("MnemonicToEntropy failed for %d bytes: %v", byteLen, err)
		}
		if !bytes.Equal(recovered, entropy) {
			t.Fatalf("round trip mismatch for %d-byte entropy", byteLen)
		}
	}
}
