package ledger

import (
	"bytes"
	"testing"

	"cardano-go-sdk/cbor"
)

func TestDRepCredentialedRoundTrip(t *testing.T) {
	hash := bytes.Repeat([]byte{9}, 28)
	d, err := NewDRepFromCredential(DRepKeyHash, hash)
	if err != nil {
		t.Fatalf("NewDRepFromCredential: %v", err)
	}
	w := cbor.NewWriter()
	d.Encode(w)
	got, err := DecodeDRep(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeDRep: %v", err)
	}
	if got.Kind != DRepKeyHash || !bytes.Equal(got.Credential.bytes, hash) {
		t.Fatalf("got %+v", got)
	}
}

func TestDRepAbstainNoConfidenceRoundTrip(t *testing.T) {
	for _, d := range []DRep{NewAbstainDRep(), NewNoConfidenceDRep()} {
		w := cbor.NewWriter()
		d.Encode(w)
		got, err := DecodeDRep(cbor.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("DecodeDRep: %v", err)
		}
		if got.Kind != d.Kind {
			t.Fatalf("got %+v, want %+v", got, d)
		}
	}
}

func TestVoterRoundTrip(t *testing.T) {
	hash := bytes.Repeat([]byte{7}, 28)
	v, err := NewVoter(VoterDRepKeyHash, hash)
	if err != nil {
		t.Fatalf("NewVoter: %v", err)
	}
	w := cbor.NewWriter()
	v.Encode(w)
	got, err := DecodeVoter(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeVoter: %v", err)
	}
	if got.Kind != VoterDRepKeyHash || !bytes.Equal(got.Credential.bytes, hash) {
		t.Fatalf("got %+v", got)
	}
}

func TestGovernanceActionIDRoundTrip(t *testing.T) {
	txHash := bytes.Repeat([]byte{3}, 32)
	g, err := NewGovernanceActionID(txHash, 9999)
	if err != nil {
		t.Fatalf("NewGovernanceActionID: %v", err)
	}
	w := cbor.NewWriter()
	g.Encode(w)
	got, err := DecodeGovernanceActionID(cbor.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeGovernanceActionID: %v", err)
	}
	if got.Index != 9999 || !bytes.Equal(got.TxHash.bytes, txHash) {
		t.Fatalf("got %+v", got)
	}
}
