package ed25519ext

import "testing"

func TestSignVerifyRoundTrip(t *testing.T) {
	var priv PrivateKey
	for i := range priv {
		priv[i] = byte(i + 1)
	}
	pub, err := PublicKey(priv)
	if err != nil {
		t.Fatalf("PublicKey failed: %v", err)
	}
	msg := []byte("transaction body hash")
	sig, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !Verify(pub, msg, sig[:]) {
		t.Fatalf("signature failed to verify")
	}
	if Verify(pub, []byte("tampered"), sig[:]) {
		t.Fatalf("signature verified over the wrong message")
	}
}

func TestSignIsDeterministic(t *testing.T) {
	var priv PrivateKey
	for i := range priv {
		priv[i] = byte(200 - i)
	}
	msg := []byte("deterministic signing")
	sig1, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	sig2, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if sig1 != sig2 {
		t.Fatalf("signatures differ across identical calls: %x vs %x", sig1, sig2)
	}
}

func TestFromScalarAndIVRejectsWrongSize(t *testing.T) {
	if _, err := FromScalarAndIV(make([]byte, 63)); err == nil {
		t.Fatalf("expected error for undersized input")
	}
}
