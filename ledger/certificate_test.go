package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func mustCred3(t *testing.T, isScript bool, b byte) Credential3 {
	t.Helper()
	c, err := NewCredential3(isScript, bytes.Repeat([]byte{b}, 28))
	if err != nil {
		t.Fatalf("NewCredential3: %v", err)
	}
	return c
}

func roundTripCert(t *testing.T, c Certificate) Certificate {
	t.Helper()
	w := cbor.NewWriter()
	if err := c.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeCertificate(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeCertificate: %v", err)
	}
	return got
}

func TestStakeRegistrationRoundTrip(t *testing.T) {
	cred := mustCred3(t, false, 1)
	c := NewStakeRegistration(cred, 2_000_000)
	got := roundTripCert(t, c)
	if got.Kind != CertStakeRegistration || got.Deposit != 2_000_000 || got.Credential.Hash.bytes == nil {
		t.Fatalf("got %+v", got)
	}
}

func TestStakeDeregistrationRoundTrip(t *testing.T) {
	cred := mustCred3(t, true, 2)
	c := NewStakeDeregistration(cred, 2_000_000)
	got := roundTripCert(t, c)
	if got.Kind != CertStakeDeregistration || !got.Credential.IsScript {
		t.Fatalf("got %+v", got)
	}
}

func TestStakeDelegationRoundTrip(t *testing.T) {
	cred := mustCred3(t, false, 3)
	poolHash, err := NewBlake2bHash(bytes.Repeat([]byte{4}, 28))
	if err != nil {
		t.Fatalf("NewBlake2bHash: %v", err)
	}
	c := NewStakeDelegation(cred, poolHash)
	got := roundTripCert(t, c)
	if got.Kind != CertStakeDelegation || !bytes.Equal(got.PoolKeyHash.bytes, poolHash.bytes) {
		t.Fatalf("got %+v", got)
	}
}

func TestVoteDelegationRoundTrip(t *testing.T) {
	cred := mustCred3(t, false, 5)
	drep := NewAbstainDRep()
	c := NewVoteDelegation(cred, drep)
	got := roundTripCert(t, c)
	if got.Kind != CertVoteDelegation || got.DRep.Kind != DRepAbstain {
		t.Fatalf("got %+v", got)
	}
}

func TestDRepRegistrationWithAndWithoutAnchor(t *testing.T) {
	cred := mustCred3(t, false, 6)

	withoutAnchor := NewDRepRegistration(cred, 500_000_000, nil)
	got := roundTripCert(t, withoutAnchor)
	if got.Kind != CertDRepRegistration || got.Anchor != nil {
		t.Fatalf("got %+v", got)
	}

	hash, err := NewBlake2bHash(bytes.Repeat([]byte{8}, 32))
	if err != nil {
		t.Fatalf("NewBlake2bHash: %v", err)
	}
	anchor, err := NewAnchor("https://example.com/drep.json", hash)
	if err != nil {
		t.Fatalf("NewAnchor: %v", err)
	}
	withAnchor := NewDRepRegistration(cred, 500_000_000, &anchor)
	got2 := roundTripCert(t, withAnchor)
	if got2.Anchor == nil || got2.Anchor.URL != anchor.URL {
		t.Fatalf("got %+v", got2)
	}
}

func TestDRepDeregistrationRoundTrip(t *testing.T) {
	cred := mustCred3(t, false, 9)
	c := NewDRepDeregistration(cred, 500_000_000)
	got := roundTripCert(t, c)
	if got.Kind != CertDRepDeregistration || got.Deposit != 500_000_000 {
		t.Fatalf("got %+v", got)
	}
}

func TestDRepUpdateWithAndWithoutAnchor(t *testing.T) {
	cred := mustCred3(t, false, 10)

	withoutAnchor := NewDRepUpdate(cred, nil)
	got := roundTripCert(t, withoutAnchor)
	if got.Kind != CertDRepUpdate || got.Anchor != nil {
		t.Fatalf("got %+v", got)
	}

	hash, err := NewBlake2bHash(bytes.Repeat([]byte{11}, 32))
	if err != nil {
		t.Fatalf("NewBlake2bHash: %v", err)
	}
	anchor, err := NewAnchor("https://example.com/update.json", hash)
	if err != nil {
		t.Fatalf("NewAnchor: %v", err)
	}
	withAnchor := NewDRepUpdate(cred, &anchor)
	got2 := roundTripCert(t, withAnchor)
	if got2.Anchor == nil || got2.Anchor.URL != anchor.URL {
		t.Fatalf("got %+v", got2)
	}
}
