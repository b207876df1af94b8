package cryptofacade

import (
	"bytes"
	"testing"
)

func TestBlake2bSizes(t *testing.T) {
	for _, size := range []int{Blake2b224Size, Blake2b256Size, Blake2b512Size} {
		h, err := blake2bSum([]byte("hello"), size)
		if err != nil {
			t.Fatalf("blake2bSum(%d) failed: %v", size, err)
		}
		if len(h) != size {
			t.Fatalf("digest length=%d want %d", len(h), size)
		}
	}
}

func TestEd25519SignVerify(t *testing.T) {
	seed, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	priv, pub, err := Ed25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("Ed25519KeyPairFromSeed failed: %v", err)
	}
	msg := []byte("hello ledger")
	sig, err := Ed25519SignDetached(priv, msg)
	if err != nil {
		t.Fatalf("Ed25519SignDetached failed: %v", err)
	}
	if !Ed25519Verify(pub, msg, sig) {
		t.Fatalf("signature failed to verify")
	}
	if Ed25519Verify(pub, []byte("tampered"), sig) {
		t.Fatalf("signature verified over the wrong message")
	}
}

func TestEMIP3RoundTrip(t *testing.T) {
	plaintext := []byte("super secret extended private key bytes")
	envelope, err := EMIP3Encrypt(plaintext, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("EMIP3Encrypt failed: %v", err)
	}
	decrypted, err := EMIP3Decrypt(envelope, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("EMIP3Decrypt failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("decrypted=%q want %q", decrypted, plaintext)
	}
}

func TestEMIP3WrongPassphraseFails(t *testing.T) {
	envelope, err := EMIP3Encrypt([]byte("payload"), []byte("pw1"))
	if err != nil {
		t.Fatalf("EMIP3Encrypt failed: %v", err)
	}
	if _, err := EMIP3Decrypt(envelope, []byte("pw2")); err == nil {
		t.Fatalf("expected decrypt failure with wrong passphrase")
	}
}

func TestScalarMultBaseNoClampIsDeterministic(t *testing.T) {
	scalar := bytes.Repeat([]byte{0x07}, 32)
	p1, err := ScalarMultBaseNoClamp(scalar)
	if err != nil {
		t.Fatalf("ScalarMultBaseNoClamp failed: %v", err)
	}
	p2, err := ScalarMultBaseNoClamp(scalar)
	if err != nil {
		t.Fatalf("ScalarMultBaseNoClamp failed: %v", err)
	}
	if !bytes.Equal(p1, p2) || len(p1) != 32 {
		t.Fatalf("scalar mult not deterministic or wrong length: %x / %x", p1, p2)
	}
}
