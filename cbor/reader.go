package cbor

import (
	"math"

	"cardano-go-sdk/sdkerr"
)

// containerKind distinguishes array/map frames on the nesting stack so
// ReadEndArray/ReadEndMap can validate they close the right kind of
// container and, for definite containers, the declared element count.
type containerKind int

const (
	kindArray containerKind = iota
	kindMap
)

type frame struct {
	kind       containerKind
	indefinite bool
	declared   int64 // element count for arrays, pair count for maps
	seen       int64 // items consumed so far (a map's key and value each count once)
}

// Reader is a non-suspending, single-threaded cursor over a byte slice.
// It never buffers I/O and is restartable via Clone.
type Reader struct {
	buf    []byte
	pos    int
	frames []frame
}

// NewReader wraps buf for reading starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Clone duplicates the cursor position; subsequent reads on either copy do
// not affect the other.
func (r *Reader) Clone() *Reader {
	frames := make([]frame, len(r.frames))
	copy(frames, r.frames)
	return &Reader{buf: r.buf, pos: r.pos, frames: frames}
}

// Pos returns the current byte offset, useful for ReadEncodedValue-style
// byte-range capture by callers that need more than one item at a time.
func (r *Reader) Pos() int { return r.pos }

func (r *Reader) remaining() int { return len(r.buf) - r.pos }

func (r *Reader) peekByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "peekByte", "no data remaining")
	}
	return r.buf[r.pos], nil
}

// head describes a decoded major-type head without consuming the
// following bytes (which vary by major type).
type head struct {
	major uint8
	addl  uint8
	value uint64
	width int // total bytes consumed by the head itself
}

func (r *Reader) decodeHead() (head, error) {
	if r.remaining() < 1 {
		return head{}, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "decodeHead", "no data remaining")
	}
	b := r.buf[r.pos]
	major := b >> 5
	addl := b & 0x1f
	h := head{major: major, addl: addl, width: 1}
	switch {
	case addl < 24:
		h.value = uint64(addl)
	case addl == 24:
		if r.remaining() < 2 {
			return head{}, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "decodeHead", "truncated 1-byte length")
		}
		h.value = uint64(r.buf[r.pos+1])
		h.width = 2
	case addl == 25:
		if r.remaining() < 3 {
			return head{}, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "decodeHead", "truncated 2-byte length")
		}
		h.value = uint64(r.buf[r.pos+1])<<8 | uint64(r.buf[r.pos+2])
		h.width = 3
	case addl == 26:
		if r.remaining() < 5 {
			return head{}, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "decodeHead", "truncated 4-byte length")
		}
		for i := 0; i < 4; i++ {
			h.value = h.value<<8 | uint64(r.buf[r.pos+1+i])
		}
		h.width = 5
	case addl == 27:
		if r.remaining() < 9 {
			return head{}, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "decodeHead", "truncated 8-byte length")
		}
		for i := 0; i < 8; i++ {
			h.value = h.value<<8 | uint64(r.buf[r.pos+1+i])
		}
		h.width = 9
	case addl == addlIndefinite:
		h.width = 1
	default:
		return head{}, sdkerr.New(sdkerr.CodeInvalidCborValue, "decodeHead", "reserved additional-info value")
	}
	return h, nil
}

// PeekState classifies the next item without consuming it.
func (r *Reader) PeekState() State {
	if len(r.frames) > 0 {
		top := r.frames[len(r.frames)-1]
		if r.remaining() >= 1 && r.buf[r.pos] == breakByte && top.indefinite {
			if top.kind == kindArray {
				return StateEndArray
			}
			return StateEndMap
		}
		if !top.indefinite {
			if top.kind == kindArray && top.seen >= top.declared {
				return StateEndArray
			}
			if top.kind == kindMap && top.seen >= top.declared*2 {
				return StateEndMap
			}
		}
	}
	if r.remaining() == 0 {
		return StateEndOfData
	}
	h, err := r.decodeHead()
	if err != nil {
		return StateError
	}
	switch h.major {
	case majorUnsigned:
		return StateUnsignedInt
	case majorNegative:
		return StateNegativeInt
	case majorBytes:
		return StateByteString
	case majorText:
		return StateTextString
	case majorArray:
		return StateStartArray
	case majorMap:
		return StateStartMap
	case majorTag:
		return StateTag
	case majorSimple:
		switch h.addl {
		case simpleFalse, simpleTrue:
			return StateBoolean
		case simpleNull:
			return StateNull
		case simpleUndefined:
			return StateUndefined
		case simpleHalf:
			return StateHalfFloat
		case simpleSingle:
			return StateSingleFloat
		case simpleDouble:
			return StateDoubleFloat
		default:
			return StateError
		}
	default:
		return StateError
	}
}

func (r *Reader) pushFrame(kind containerKind, declaredLen int64) {
	r.frames = append(r.frames, frame{kind: kind, indefinite: declaredLen < 0, declared: declaredLen})
}

func (r *Reader) bumpParent() {
	if len(r.frames) == 0 {
		return
	}
	r.frames[len(r.frames)-1].seen++
}

//---------------------------------------------------------------------
// Scalar reads
//---------------------------------------------------------------------

// ReadUint consumes one unsigned-integer item.
func (r *Reader) ReadUint() (uint64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	if h.major != majorUnsigned {
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadUint", "expected unsigned integer")
	}
	r.pos += h.width
	r.bumpParent()
	return h.value, nil
}

// ReadInt consumes one signed-integer item (major type 0 or 1).
func (r *Reader) ReadInt() (int64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	switch h.major {
	case majorUnsigned:
		if h.value > math.MaxInt64 {
			return 0, sdkerr.New(sdkerr.CodeDecoding, "ReadInt", "unsigned value overflows int64")
		}
		r.pos += h.width
		r.bumpParent()
		return int64(h.value), nil
	case majorNegative:
		if h.value > math.MaxInt64 {
			return 0, sdkerr.New(sdkerr.CodeDecoding, "ReadInt", "negative value overflows int64")
		}
		r.pos += h.width
		r.bumpParent()
		return -1 - int64(h.value), nil
	default:
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadInt", "expected integer")
	}
}

// ReadBool consumes one boolean simple value.
func (r *Reader) ReadBool() (bool, error) {
	h, err := r.decodeHead()
	if err != nil {
		return false, err
	}
	if h.major != majorSimple || (h.addl != simpleFalse && h.addl != simpleTrue) {
		return false, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadBool", "expected boolean")
	}
	r.pos += h.width
	r.bumpParent()
	return h.addl == simpleTrue, nil
}

// ReadNull consumes a null simple value.
func (r *Reader) ReadNull() error {
	h, err := r.decodeHead()
	if err != nil {
		return err
	}
	if h.major != majorSimple || h.addl != simpleNull {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadNull", "expected null")
	}
	r.pos += h.width
	r.bumpParent()
	return nil
}

// ReadUndefined consumes an undefined simple value.
func (r *Reader) ReadUndefined() error {
	h, err := r.decodeHead()
	if err != nil {
		return err
	}
	if h.major != majorSimple || h.addl != simpleUndefined {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadUndefined", "expected undefined")
	}
	r.pos += h.width
	r.bumpParent()
	return nil
}

// ReadDouble consumes a half/single/double-precision float item and widens
// it to float64.
func (r *Reader) ReadDouble() (float64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	if h.major != majorSimple {
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadDouble", "expected float")
	}
	switch h.addl {
	// decodeHead has already read the 2/4/8-byte float payload into h.value
	// and counted it in h.width.
	case simpleHalf:
		r.pos += h.width
		r.bumpParent()
		return float64(halfToFloat32(uint16(h.value))), nil
	case simpleSingle:
		r.pos += h.width
		r.bumpParent()
		return float64(math.Float32frombits(uint32(h.value))), nil
	case simpleDouble:
		r.pos += h.width
		r.bumpParent()
		return math.Float64frombits(h.value), nil
	default:
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadDouble", "expected float")
	}
}

//---------------------------------------------------------------------
// Strings
//---------------------------------------------------------------------

// ReadByteString consumes a definite or indefinite byte string. Indefinite
// chunks are concatenated; a chunk that is itself indefinite is rejected.
func (r *Reader) ReadByteString() ([]byte, error) {
	out, err := r.readStringMajor(majorBytes)
	if err != nil {
		return nil, err
	}
	r.bumpParent()
	return out, nil
}

// ReadTextString consumes a definite or indefinite UTF-8 text string.
func (r *Reader) ReadTextString() (string, error) {
	out, err := r.readStringMajor(majorText)
	if err != nil {
		return "", err
	}
	r.bumpParent()
	return string(out), nil
}

func (r *Reader) readStringMajor(major uint8) ([]byte, error) {
	h, err := r.decodeHead()
	if err != nil {
		return nil, err
	}
	if h.major != major {
		return nil, sdkerr.New(sdkerr.CodeInvalidCborValue, "readStringMajor", "unexpected major type")
	}
	if h.addl != addlIndefinite {
		start := r.pos + h.width
		end := start + int(h.value)
		if end > len(r.buf) || end < start {
			return nil, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "readStringMajor", "truncated string")
		}
		out := make([]byte, h.value)
		copy(out, r.buf[start:end])
		r.pos = end
		return out, nil
	}
	// Indefinite: concatenate definite chunks until the break byte.
	r.pos += h.width
	var out []byte
	for {
		if r.remaining() < 1 {
			return nil, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "readStringMajor", "unterminated indefinite string")
		}
		if r.buf[r.pos] == breakByte {
			r.pos++
			return out, nil
		}
		ch, err := r.decodeHead()
		if err != nil {
			return nil, err
		}
		if ch.major != major || ch.addl == addlIndefinite {
			return nil, sdkerr.New(sdkerr.CodeInvalidCborValue, "readStringMajor", "nested indefinite chunk not permitted")
		}
		start := r.pos + ch.width
		end := start + int(ch.value)
		if end > len(r.buf) || end < start {
			return nil, sdkerr.New(sdkerr.CodeOutOfBoundsRead, "readStringMajor", "truncated chunk")
		}
		out = append(out, r.buf[start:end]...)
		r.pos = end
	}
}

//---------------------------------------------------------------------
// Containers
//---------------------------------------------------------------------

// ReadStartArray consumes an array head and returns its declared length, or
// -1 for an indefinite array.
func (r *Reader) ReadStartArray() (int64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	if h.major != majorArray {
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadStartArray", "expected array")
	}
	r.pos += h.width
	declared := int64(-1)
	if h.addl != addlIndefinite {
		declared = int64(h.value)
	}
	r.bumpParent()
	r.pushFrame(kindArray, declared)
	return declared, nil
}

// ReadEndArray consumes the break marker for an indefinite array, or
// validates that a definite array's element count was fully consumed.
func (r *Reader) ReadEndArray() error {
	if len(r.frames) == 0 || r.frames[len(r.frames)-1].kind != kindArray {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndArray", "not inside an array")
	}
	top := r.frames[len(r.frames)-1]
	if top.indefinite {
		if r.remaining() < 1 || r.buf[r.pos] != breakByte {
			return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndArray", "expected break byte")
		}
		r.pos++
	} else if top.seen != top.declared {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndArray", "element count mismatch")
	}
	r.frames = r.frames[:len(r.frames)-1]
	return nil
}

// ReadStartMap consumes a map head and returns its declared pair count, or
// -1 for an indefinite map.
func (r *Reader) ReadStartMap() (int64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	if h.major != majorMap {
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadStartMap", "expected map")
	}
	r.pos += h.width
	declared := int64(-1)
	if h.addl != addlIndefinite {
		declared = int64(h.value)
	}
	r.bumpParent()
	r.pushFrame(kindMap, declared)
	return declared, nil
}

// ReadEndMap mirrors ReadEndArray for maps. Note: for definite maps, "seen"
// counts key+value items together, so callers must call bumpParent-producing
// reads for both the key and the value of each pair (this happens naturally
// since each is a normal Read* call).
func (r *Reader) ReadEndMap() error {
	if len(r.frames) == 0 || r.frames[len(r.frames)-1].kind != kindMap {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndMap", "not inside a map")
	}
	top := r.frames[len(r.frames)-1]
	if top.indefinite {
		if r.remaining() < 1 || r.buf[r.pos] != breakByte {
			return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndMap", "expected break byte")
		}
		r.pos++
	} else if top.seen != top.declared*2 {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadEndMap", "pair count mismatch")
	}
	r.frames = r.frames[:len(r.frames)-1]
	return nil
}

// ReadTag consumes the major-type-6 head; the subsequent item is the tagged
// value and must be read by the caller with a separate call.
func (r *Reader) ReadTag() (uint64, error) {
	h, err := r.decodeHead()
	if err != nil {
		return 0, err
	}
	if h.major != majorTag {
		return 0, sdkerr.New(sdkerr.CodeInvalidCborValue, "ReadTag", "expected tag")
	}
	r.pos += h.width
	r.bumpParent()
	return h.value, nil
}

//---------------------------------------------------------------------
// Raw passthrough (cbor_cache mechanism)
//---------------------------------------------------------------------

// ReadEncodedValue consumes one complete item, including all nested
// children, and returns its raw bytes verbatim. This backs the cbor_cache
// mechanism on redeemers and Plutus data.
func (r *Reader) ReadEncodedValue() ([]byte, error) {
	start := r.pos
	if err := r.skipValue(); err != nil {
		return nil, err
	}
	out := make([]byte, r.pos-start)
	copy(out, r.buf[start:r.pos])
	r.bumpParent()
	return out, nil
}

// skipValue advances the cursor past one complete item without tracking it
// in the frame stack (ReadEncodedValue's own bumpParent call handles the
// enclosing frame once the whole item has been skipped).
func (r *Reader) skipValue() error {
	if r.remaining() < 1 {
		return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "no data remaining")
	}
	if r.buf[r.pos] == breakByte {
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "skipValue", "unexpected break byte")
	}
	h, err := r.decodeHead()
	if err != nil {
		return err
	}
	switch h.major {
	case majorUnsigned, majorNegative:
		r.pos += h.width
		return nil
	case majorSimple:
		// For floats the head width already includes the 2/4/8-byte payload.
		r.pos += h.width
		return nil
	case majorBytes, majorText:
		if h.addl != addlIndefinite {
			r.pos += h.width + int(h.value)
			if r.pos > len(r.buf) {
				return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "truncated string")
			}
			return nil
		}
		r.pos += h.width
		for {
			if r.remaining() < 1 {
				return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "unterminated indefinite string")
			}
			if r.buf[r.pos] == breakByte {
				r.pos++
				return nil
			}
			ch, err := r.decodeHead()
			if err != nil {
				return err
			}
			if ch.major != h.major || ch.addl == addlIndefinite {
				return sdkerr.New(sdkerr.CodeInvalidCborValue, "skipValue", "nested indefinite chunk")
			}
			r.pos += ch.width + int(ch.value)
			if r.pos > len(r.buf) {
				return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "truncated chunk")
			}
		}
	case majorArray:
		r.pos += h.width
		if h.addl != addlIndefinite {
			for i := uint64(0); i < h.value; i++ {
				if err := r.skipValue(); err != nil {
					return err
				}
			}
			return nil
		}
		for {
			if r.remaining() < 1 {
				return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "unterminated indefinite array")
			}
			if r.buf[r.pos] == breakByte {
				r.pos++
				return nil
			}
			if err := r.skipValue(); err != nil {
				return err
			}
		}
	case majorMap:
		r.pos += h.width
		if h.addl != addlIndefinite {
			for i := uint64(0); i < h.value*2; i++ {
				if err := r.skipValue(); err != nil {
					return err
				}
			}
			return nil
		}
		for {
			if r.remaining() < 1 {
				return sdkerr.New(sdkerr.CodeOutOfBoundsRead, "skipValue", "unterminated indefinite map")
			}
			if r.buf[r.pos] == breakByte {
				r.pos++
				return nil
			}
			if err := r.skipValue(); err != nil {
				return err
			}
			if err := r.skipValue(); err != nil {
				return err
			}
		}
	case majorTag:
		r.pos += h.width
		return r.skipValue()
	default:
		return sdkerr.New(sdkerr.CodeInvalidCborValue, "skipValue", "unknown major type")
	}
}

// halfToFloat32 widens an IEEE 754 binary16 value to binary32.
func halfToFloat32(bits uint16) float32 {
	sign := uint32(bits>>15) & 0x1
	exp := uint32(bits>>10) & 0x1f
	frac := uint32(bits) & 0x3ff
	var outExp, outFrac uint32
	switch {
	case exp == 0:
		if frac == 0 {
			outExp, outFrac = 0, 0
		} else {
			// Subnormal half -> normalize into single precision.
			for frac&0x400 == 0 {
				frac <<= 1
				exp--
			}
			exp++
			frac &= 0x3ff
			outExp = exp - 15 + 127
			outFrac = frac << 13
		}
	case exp == 0x1f:
		outExp = 0xff
		outFrac = frac << 13
	default:
		outExp = exp - 15 + 127
		outFrac = frac << 13
	}
	bits32 := sign<<31 | outExp<<23 | outFrac
	return math.Float32frombits(bits32)
}
