// Package sdkerr defines the typed error taxonomy shared by every package in
// this module. It encodes each error kind as a Go sentinel code so
// callers can branch with errors.Is instead of matching strings, while still
// carrying the validator/operation name that produced the failure (the
// "last_error" diagnostic text of the original design, attached per error
// instead of mutated on a shared object).
package sdkerr

import "fmt"

// Code identifies the taxonomy bucket an Error belongs to.
type Code int

const (
	// Input-shape errors.
	CodePointerIsNull Code = iota
	CodeInvalidArgument
	CodeInsufficientBufferSize
	CodeOutOfBoundsRead

	// Format errors.
	CodeDecoding
	CodeEncoding
	CodeInvalidCborValue
	CodeInvalidAddressFormat
	CodeInvalidChecksum
	CodeChecksumMismatch
	CodeInvalidMagic

	// Semantic errors.
	CodeInvalidBlake2bHashSize
	CodeInvalidBip32PrivateKeySize
	CodeInvalidBip32PublicKeySize
	CodeInvalidBip32DerivationIndex
	CodeInvalidEd25519PrivateKeySize
	CodeInvalidEd25519PublicKeySize
	CodeInvalidCredentialType
	CodeInvalidDatumType
	CodeInvalidUrl
	CodeInvalidPassphrase

	// Resource errors.
	CodeMemoryAllocationFailed
	CodeGeneric

	// Control errors.
	CodeNotImplemented
)

var codeNames = map[Code]string{
	CodePointerIsNull:                "PointerIsNull",
	CodeInvalidArgument:              "InvalidArgument",
	CodeInsufficientBufferSize:       "InsufficientBufferSize",
	CodeOutOfBoundsRead:              "OutOfBoundsRead",
	CodeDecoding:                     "Decoding",
	CodeEncoding:                     "Encoding",
	CodeInvalidCborValue:             "InvalidCborValue",
	CodeInvalidAddressFormat:         "InvalidAddressFormat",
	CodeInvalidChecksum:              "InvalidChecksum",
	CodeChecksumMismatch:             "ChecksumMismatch",
	CodeInvalidMagic:                 "InvalidMagic",
	CodeInvalidBlake2bHashSize:       "InvalidBlake2bHashSize",
	CodeInvalidBip32PrivateKeySize:   "InvalidBip32PrivateKeySize",
	CodeInvalidBip32PublicKeySize:    "InvalidBip32PublicKeySize",
	CodeInvalidBip32DerivationIndex:  "InvalidBip32DerivationIndex",
	CodeInvalidEd25519PrivateKeySize: "InvalidEd25519PrivateKeySize",
	CodeInvalidEd25519PublicKeySize:  "InvalidEd25519PublicKeySize",
	CodeInvalidCredentialType:        "InvalidCredentialType",
	CodeInvalidDatumType:             "InvalidDatumType",
	CodeInvalidUrl:                   "InvalidUrl",
	CodeInvalidPassphrase:            "InvalidPassphrase",
	CodeMemoryAllocationFailed:       "MemoryAllocationFailed",
	CodeGeneric:                      "Generic",
	CodeNotImplemented:               "NotImplemented",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Unknown"
}

// Error is the concrete error type returned by every package in this module.
type Error struct {
	Code    Code
	Op      string // validator/operation name, e.g. "validate_array_of_n_elements"
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Code, so callers can
// write errors.Is(err, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New builds an *Error. op should name the operation/validator that failed,
// mirroring the validator-name prefix convention used throughout this
// module's error messages.
func New(code Code, op, message string) *Error {
	return &Error{Code: code, Op: op, Message: message}
}

// Wrap builds an *Error that also carries a lower-level cause.
func Wrap(code Code, op, message string, err error) *Error {
	return &Error{Code: code, Op: op, Message: message, Err: err}
}

// sentinel is a zero-payload *Error used purely as an errors.Is() target.
func sentinel(c Code) *Error { return &Error{Code: c} }

// Sentinels for the codes callers most commonly branch on.
var (
	ErrOutOfBoundsRead       = sentinel(CodeOutOfBoundsRead)
	ErrInsufficientBuffer    = sentinel(CodeInsufficientBufferSize)
	ErrDecoding              = sentinel(CodeDecoding)
	ErrInvalidChecksum       = sentinel(CodeInvalidChecksum)
	ErrChecksumMismatch      = sentinel(CodeChecksumMismatch)
	ErrInvalidMagic          = sentinel(CodeInvalidMagic)
	ErrInvalidPassphrase     = sentinel(CodeInvalidPassphrase)
	ErrInvalidAddressFormat  = sentinel(CodeInvalidAddressFormat)
	ErrInvalidArgument       = sentinel(CodeInvalidArgument)
	ErrNotImplemented        = sentinel(CodeNotImplemented)
	ErrInvalidBip32DerivIdx  = sentinel(CodeInvalidBip32DerivationIndex)
	ErrInvalidCredentialType = sentinel(CodeInvalidCredentialType)
)
