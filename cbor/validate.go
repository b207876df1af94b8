package cbor

import "cardano-go-sdk/sdkerr"

// ValidateArrayOfNElements reads an array head and asserts it declares
// exactly n elements, rejecting indefinite-length arrays where a fixed
// arity is expected (e.g. transaction body tuples).
func ValidateArrayOfNElements(r *Reader, n int64, op string) error {
	declared, err := r.ReadStartArray()
	if err != nil {
		return err
	}
	if declared != n {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, op, "array length mismatch")
	}
	return nil
}

// ValidateEndArray closes an array opened by ValidateArrayOfNElements or
// ReadStartArray, surfacing a consistent operation name on mismatch.
func ValidateEndArray(r *Reader, op string) error {
	if err := r.ReadEndArray(); err != nil {
		return sdkerr.Wrap(sdkerr.CodeInvalidCborValue, op, "array not fully consumed", err)
	}
	return nil
}

// ValidateEndMap closes a map opened by ReadStartMap.
func ValidateEndMap(r *Reader, op string) error {
	if err := r.ReadEndMap(); err != nil {
		return sdkerr.Wrap(sdkerr.CodeInvalidCborValue, op, "map not fully consumed", err)
	}
	return nil
}

// ValidateUintInRange reads an unsigned integer and asserts min <= v <= max.
func ValidateUintInRange(r *Reader, min, max uint64, op string) (uint64, error) {
	v, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, sdkerr.New(sdkerr.CodeInvalidArgument, op, "value out of range")
	}
	return v, nil
}

// ValidateByteStringOfSize reads a byte string and asserts its length is
// exactly size (e.g. a 32-byte hash or a 28-byte credential).
func ValidateByteStringOfSize(r *Reader, size int, op string) ([]byte, error) {
	b, err := r.ReadByteString()
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, sdkerr.New(sdkerr.CodeInvalidArgument, op, "byte string has wrong size")
	}
	return b, nil
}

// ValidateTextStringOfMaxSize reads a text string and asserts it does not
// exceed maxSize bytes (e.g. metadata string length limits).
func ValidateTextStringOfMaxSize(r *Reader, maxSize int, op string) (string, error) {
	s, err := r.ReadTextString()
	if err != nil {
		return "", err
	}
	if len(s) > maxSize {
		return "", sdkerr.New(sdkerr.CodeInvalidArgument, op, "text string exceeds maximum size")
	}
	return s, nil
}

// ValidateTag reads a tag and asserts it equals want.
func ValidateTag(r *Reader, want uint64, op string) error {
	got, err := r.ReadTag()
	if err != nil {
		return err
	}
	if got != want {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, op, "unexpected tag")
	}
	return nil
}
