package address

import (
	"cardano-go-sdk/encoding"
	"cardano-go-sdk/sdkerr"
)

// shelleyKind is the 4-bit address-type nibble from CIP-19.
type shelleyKind uint8

const (
	kindBaseKeyKey       shelleyKind = 0
	kindBaseScriptKey    shelleyKind = 1
	kindBaseKeyScript    shelleyKind = 2
	kindBaseScriptScript shelleyKind = 3
	kindPointerKey       shelleyKind = 4
	kindPointerScript    shelleyKind = 5
	kindEnterpriseKey    shelleyKind = 6
	kindEnterpriseScript shelleyKind = 7
	kindRewardKey        shelleyKind = 14
	kindRewardScript     shelleyKind = 15
)

// Pointer references a stake delegation certificate by its on-chain
// location, used by pointer addresses (CIP-19 address types 4/5).
type Pointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

// ShelleyAddress is a base, pointer, enterprise, or reward address. Exactly
// one of the following shapes holds: Payment only (enterprise); Payment +
// Stake (base); Payment + Ptr (pointer); Stake only (reward).
type ShelleyAddress struct {
	Network Network
	Payment *Credential
	Stake   *Credential
	Ptr     *Pointer
}

// NewEnterpriseAddress builds a payment-only address.
func NewEnterpriseAddress(network Network, payment Credential) ShelleyAddress {
	return ShelleyAddress{Network: network, Payment: &payment}
}

// NewBaseAddress builds a payment+stake-credential address.
func NewBaseAddress(network Network, payment, stake Credential) ShelleyAddress {
	return ShelleyAddress{Network: network, Payment: &payment, Stake: &stake}
}

// NewPointerAddress builds a payment-credential + certificate-pointer
// address.
func NewPointerAddress(network Network, payment Credential, ptr Pointer) ShelleyAddress {
	return ShelleyAddress{Network: network, Payment: &payment, Ptr: &ptr}
}

// NewRewardAddress builds a stake-only (reward account) address.
func NewRewardAddress(network Network, stake Credential) ShelleyAddress {
	return ShelleyAddress{Network: network, Stake: &stake}
}

func (a ShelleyAddress) kind() (shelleyKind, error) {
	switch {
	case a.Stake != nil && a.Payment == nil && a.Ptr == nil:
		if a.Stake.Kind == KeyHash {
			return kindRewardKey, nil
		}
		return kindRewardScript, nil
	case a.Payment != nil && a.Stake != nil && a.Ptr == nil:
		switch {
		case a.Payment.Kind == KeyHash && a.Stake.Kind == KeyHash:
			return kindBaseKeyKey, nil
		case a.Payment.Kind == ScriptHash && a.Stake.Kind == KeyHash:
			return kindBaseScriptKey, nil
		case a.Payment.Kind == KeyHash && a.Stake.Kind == ScriptHash:
			return kindBaseKeyScript, nil
		default:
			return kindBaseScriptScript, nil
		}
	case a.Payment != nil && a.Ptr != nil && a.Stake == nil:
		if a.Payment.Kind == KeyHash {
			return kindPointerKey, nil
		}
		return kindPointerScript, nil
	case a.Payment != nil && a.Stake == nil && a.Ptr == nil:
		if a.Payment.Kind == KeyHash {
			return kindEnterpriseKey, nil
		}
		return kindEnterpriseScript, nil
	default:
		return 0, sdkerr.New(sdkerr.CodeInvalidArgument, "ShelleyAddress.kind", "ambiguous address shape")
	}
}

// Bytes renders the address's raw (pre-Bech32) header+payload encoding.
func (a ShelleyAddress) Bytes() ([]byte, error) {
	k, err := a.kind()
	if err != nil {
		return nil, err
	}
	header := byte(k)<<4 | byte(a.Network)
	out := []byte{header}
	switch k {
	case kindRewardKey, kindRewardScript:
		out = append(out, a.Stake.Hash[:]...)
	case kindBaseKeyKey, kindBaseScriptKey, kindBaseKeyScript, kindBaseScriptScript:
		out = append(out, a.Payment.Hash[:]...)
		out = append(out, a.Stake.Hash[:]...)
	case kindPointerKey, kindPointerScript:
		out = append(out, a.Payment.Hash[:]...)
		out = append(out, encodeVariableLengthUint(a.Ptr.Slot)...)
		out = append(out, encodeVariableLengthUint(a.Ptr.TxIndex)...)
		out = append(out, encodeVariableLengthUint(a.Ptr.CertIndex)...)
	case kindEnterpriseKey, kindEnterpriseScript:
		out = append(out, a.Payment.Hash[:]...)
	}
	return out, nil
}

// bech32HRP returns the HRP for this address's kind/network, per CIP-5.
func (a ShelleyAddress) bech32HRP() (string, error) {
	k, err := a.kind()
	if err != nil {
		return "", err
	}
	reward := k == kindRewardKey || k == kindRewardScript
	switch {
	case reward && a.Network == Mainnet:
		return "stake", nil
	case reward:
		return "stake_test", nil
	case a.Network == Mainnet:
		return "addr", nil
	default:
		return "addr_test", nil
	}
}

// Encode renders the address as Bech32 (CIP-5).
func (a ShelleyAddress) Encode() (string, error) {
	hrp, err := a.bech32HRP()
	if err != nil {
		return "", err
	}
	raw, err := a.Bytes()
	if err != nil {
		return "", err
	}
	return encoding.Bech32Encode(hrp, raw)
}

// DecodeShelleyAddress parses a Bech32-encoded Shelley address.
func DecodeShelleyAddress(s string) (ShelleyAddress, error) {
	_, raw, err := encoding.Bech32Decode(s)
	if err != nil {
		return ShelleyAddress{}, err
	}
	return DecodeShelleyAddressBytes(raw)
}

// DecodeShelleyAddressBytes parses the raw header+payload encoding produced
// by Bytes.
func DecodeShelleyAddressBytes(raw []byte) (ShelleyAddress, error) {
	if len(raw) < 1 {
		return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "empty payload")
	}
	header := raw[0]
	k := shelleyKind(header >> 4)
	network := Network(header & 0x0f)
	body := raw[1:]

	credFromHash := func(kind CredentialKind, hash []byte) (Credential, error) {
		return NewCredential(kind, hash)
	}

	switch k {
	case kindRewardKey, kindRewardScript:
		if len(body) != CredentialHashSize {
			return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "reward address wrong length")
		}
		kind := KeyHash
		if k == kindRewardScript {
			kind = ScriptHash
		}
		cred, err := credFromHash(kind, body)
		if err != nil {
			return ShelleyAddress{}, err
		}
		return NewRewardAddress(network, cred), nil

	case kindEnterpriseKey, kindEnterpriseScript:
		if len(body) != CredentialHashSize {
			return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "enterprise address wrong length")
		}
		kind := KeyHash
		if k == kindEnterpriseScript {
			kind = ScriptHash
		}
		cred, err := credFromHash(kind, body)
		if err != nil {
			return ShelleyAddress{}, err
		}
		return NewEnterpriseAddress(network, cred), nil

	case kindBaseKeyKey, kindBaseScriptKey, kindBaseKeyScript, kindBaseScriptScript:
		if len(body) != CredentialHashSize*2 {
			return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "base address wrong length")
		}
		paymentKind, stakeKind := KeyHash, KeyHash
		if k == kindBaseScriptKey || k == kindBaseScriptScript {
			paymentKind = ScriptHash
		}
		if k == kindBaseKeyScript || k == kindBaseScriptScript {
			stakeKind = ScriptHash
		}
		payment, err := credFromHash(paymentKind, body[:CredentialHashSize])
		if err != nil {
			return ShelleyAddress{}, err
		}
		stake, err := credFromHash(stakeKind, body[CredentialHashSize:])
		if err != nil {
			return ShelleyAddress{}, err
		}
		return NewBaseAddress(network, payment, stake), nil

	case kindPointerKey, kindPointerScript:
		if len(body) < CredentialHashSize {
			return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "pointer address too short")
		}
		kind := KeyHash
		if k == kindPointerScript {
			kind = ScriptHash
		}
		payment, err := credFromHash(kind, body[:CredentialHashSize])
		if err != nil {
			return ShelleyAddress{}, err
		}
		rest := body[CredentialHashSize:]
		slot, rest, err := decodeVariableLengthUint(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		txIndex, rest, err := decodeVariableLengthUint(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		certIndex, rest, err := decodeVariableLengthUint(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		if len(rest) != 0 {
			return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "trailing bytes after pointer")
		}
		return NewPointerAddress(network, payment, Pointer{Slot: slot, TxIndex: txIndex, CertIndex: certIndex}), nil

	default:
		return ShelleyAddress{}, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "DecodeShelleyAddressBytes", "unsupported address type nibble")
	}
}

// encodeVariableLengthUint renders v using CIP-19's base-128 variable-length
// encoding: 7 payload bits per byte, big-endian chunk order, continuation
// bit (0x80) set on every byte but the last.
func encodeVariableLengthUint(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var chunks []byte
	for v > 0 {
		chunks = append(chunks, byte(v&0x7f))
		v >>= 7
	}
	out := make([]byte, len(chunks))
	for i, c := range chunks {
		b := c
		if i != len(chunks)-1 {
			b |= 0x80
		}
		out[len(chunks)-1-i] = b
	}
	return out
}

// decodeVariableLengthUint reverses encodeVariableLengthUint, returning the
// decoded value and the remaining unconsumed bytes.
func decodeVariableLengthUint(b []byte) (uint64, []byte, error) {
	var v uint64
	for i, c := range b {
		v = v<<7 | uint64(c&0x7f)
		if c&0x80 == 0 {
			return v, b[i+1:], nil
		}
	}
	return 0, nil, sdkerr.New(sdkerr.CodeInvalidAddressFormat, "decodeVariableLengthUint", "truncated variable-length integer")
}
