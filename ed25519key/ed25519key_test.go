package ed25519key

import "testing"

func TestKeyPairSignVerify(t *testing.T) {
	var seed PrivateKey
	for i := range seed {
		seed[i] = byte(i)
	}
	priv, pub, err := KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed failed: %v", err)
	}
	msg := []byte("transaction body hash")
	sig, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !Verify(pub, msg, sig) {
		t.Fatalf("signature failed to verify")
	}
	if Verify(pub, []byte("other message"), sig) {
		t.Fatalf("signature verified over the wrong message")
	}
}
