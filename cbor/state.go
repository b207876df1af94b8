// Package cbor implements a streaming, deterministic RFC 8949 reader and
// writer: definite-vs-indefinite length handling, tag semantics, and the
// ledger's canonical/sorted-map encoding rules. It is the single source of
// truth for on-wire encoding used by the ledger object model.
//
// No third-party CBOR library is used here: this codec is a bespoke
// streaming contract (PeekState over a cursor, ReadEncodedValue byte-exact
// passthrough for the cbor-cache mechanism, canonical sort-by-encoded-bytes
// map emission) that generic marshal/unmarshal packages do not expose in
// this shape — see DESIGN.md.
package cbor

// State is the tagged cursor state returned by Reader.PeekState.
type State int

const (
	StateUnsignedInt State = iota
	StateNegativeInt
	StateByteString
	StateTextString
	StateStartArray
	StateEndArray
	StateStartMap
	StateEndMap
	StateTag
	StateBoolean
	StateNull
	StateUndefined
	StateHalfFloat
	StateSingleFloat
	StateDoubleFloat
	StateEndOfData
	StateError
)

func (s State) String() string {
	switch s {
	case StateUnsignedInt:
		return "UnsignedInt"
	case StateNegativeInt:
		return "NegativeInt"
	case StateByteString:
		return "ByteString"
	case StateTextString:
		return "TextString"
	case StateStartArray:
		return "StartArray"
	case StateEndArray:
		return "EndArray"
	case StateStartMap:
		return "StartMap"
	case StateEndMap:
		return "EndMap"
	case StateTag:
		return "Tag"
	case StateBoolean:
		return "Boolean"
	case StateNull:
		return "Null"
	case StateUndefined:
		return "Undefined"
	case StateHalfFloat:
		return "HalfFloat"
	case StateSingleFloat:
		return "SingleFloat"
	case StateDoubleFloat:
		return "DoubleFloat"
	case StateEndOfData:
		return "EndOfData"
	default:
		return "Error"
	}
}

// Major CBOR types (RFC 8949 §3.1).
const (
	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorText     = 3
	majorArray    = 4
	majorMap      = 5
	majorTag      = 6
	majorSimple   = 7
)

const (
	addlIndefinite = 31
	breakByte      = 0xff
)

// Set and rational tags the ledger cares about.
const (
	TagSet      = 258
	TagRational = 30
)

// Simple-value codes under major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleHalf      = 25
	simpleSingle    = 26
	simpleDouble    = 27
)
