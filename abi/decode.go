package abi

import (
	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/u256"
)

// DecodeFunc decodes one value starting at data[0], returning the value,
// the number of bytes consumed from data's head region, and an error.
// It is this package's stand-in for the original source's per-type
// abi_decode<T> specialization: a first-class function instead of a
// template instantiation.
type DecodeFunc func(data []byte) (Value, int, error)

func need(data []byte, n int) error {
	if len(data) < n {
		return ErrDataTooShort
	}
	return nil
}

// DecodeUint decodes a 32-byte unsigned word.
func DecodeUint(data []byte) (Value, int, error) {
	if err := need(data, WordSize); err != nil {
		return Value{}, 0, err
	}
	var w [32]byte
	copy(w[:], data[:WordSize])
	return Uint(u256.FromBytes(w)), WordSize, nil
}

// DecodeBool decodes a 32-byte boolean word: zero is false, anything
// else is true (the original source does not reject non-canonical
// encodings such as 0x02).
func DecodeBool(data []byte) (Value, int, error) {
	if err := need(data, WordSize); err != nil {
		return Value{}, 0, err
	}
	nonzero := false
	for _, b := range data[:WordSize] {
		if b != 0 {
			nonzero = true
			break
		}
	}
	return Bool(nonzero), WordSize, nil
}

// DecodeAddress decodes a 32-byte right-aligned address word.
func DecodeAddress(data []byte) (Value, int, error) {
	if err := need(data, WordSize); err != nil {
		return Value{}, 0, err
	}
	var w [32]byte
	copy(w[:], data[:WordSize])
	return Addr(evmtype.AddressFromWord(w)), WordSize, nil
}

// DecodeIntWidth returns a DecodeFunc for the narrow-scope signed
// integer encoding at the given byte width (spec §4.3): only the low
// `width` bytes of the word are consulted, taken as-is without sign
// extension, and widened into an int64.
func DecodeIntWidth(width int) DecodeFunc {
	return func(data []byte) (Value, int, error) {
		if err := need(data, WordSize); err != nil {
			return Value{}, 0, err
		}
		var bits uint64
		for i := 0; i < width && i < 8; i++ {
			bits |= uint64(data[WordSize-1-i]) << (8 * uint(i))
		}
		return Int(width, int64(bits)), WordSize, nil
	}
}

// DecodeString decodes a string's intrinsic (offset-free) encoding: a
// length word followed by the zero-padded payload.
func DecodeString(data []byte) (Value, int, error) {
	b, n, err := decodeBytesLike(data)
	if err != nil {
		return Value{}, 0, err
	}
	return Str(string(b)), n, nil
}

// DecodeBytesValue decodes a bytes value's intrinsic (offset-free)
// encoding.
func DecodeBytesValue(data []byte) (Value, int, error) {
	b, n, err := decodeBytesLike(data)
	if err != nil {
		return Value{}, 0, err
	}
	return BytesValue(b), n, nil
}

func decodeBytesLike(data []byte) ([]byte, int, error) {
	lv, _, err := DecodeUint(data)
	if err != nil {
		return nil, 0, err
	}
	length := int(lv.AsUint().ToUint32())
	total := WordSize + padTo32(length)
	if err := need(data, total); err != nil {
		return nil, 0, err
	}
	out := make([]byte, length)
	copy(out, data[WordSize:WordSize+length])
	return out, total, nil
}

// DecodeAll decodes exactly one value with decode and requires that it
// consume the entire buffer, returning ErrTrailingData otherwise (spec
// §7). This is the counterpart to the original source's
// abi_decode_all<T>.
func DecodeAll(decode DecodeFunc, data []byte) (Value, error) {
	v, n, err := decode(data)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, ErrTrailingData
	}
	return v, nil
}

// DecodeVector decodes a length-prefixed homogeneous vector using
// elemDecode for each element. elemDynamic must match the element
// type's IsDynamic() (there being no values yet to ask). Offsets for
// dynamic elements are relative to the start of the element head region,
// i.e. after the length word (spec §4.3), matching the encode side. The
// returned consumed count covers only the head region (the length word
// plus one word per element), not any tail bytes referenced by offset —
// callers decoding a vector embedded in a larger tuple/vector tail
// account for the tail length themselves. DecodeVectorAll discards this
// count.
func DecodeVector(elemDecode DecodeFunc, elemDynamic bool, data []byte) ([]Value, int, error) {
	lv, _, err := DecodeUint(data)
	if err != nil {
		return nil, 0, err
	}
	n := int(lv.AsUint().ToUint32())
	headSize := WordSize + n*WordSize
	if err := need(data, headSize); err != nil {
		return nil, 0, err
	}
	elemHead := data[WordSize:]
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		headSlot := elemHead[i*WordSize : (i+1)*WordSize]
		if elemDynamic {
			ov, _, err := DecodeUint(headSlot)
			if err != nil {
				return nil, 0, err
			}
			off := int(ov.AsUint().ToUint32())
			if err := need(elemHead, off); err != nil {
				return nil, 0, err
			}
			ev, _, err := elemDecode(elemHead[off:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = ev
		} else {
			ev, _, err := elemDecode(headSlot)
			if err != nil {
				return nil, 0, err
			}
			out[i] = ev
		}
	}
	return out, headSize, nil
}

// DecodeVectorAll decodes a vector occupying the whole buffer. Unlike
// DecodeAll it does not require that the head region alone span the
// buffer; it accepts any trailing content reachable only through the
// per-element offsets, matching the original source's
// abi_decode_vector_all, which performs no trailing-byte check at all.
func DecodeVectorAll(elemDecode DecodeFunc, elemDynamic bool, data []byte) ([]Value, error) {
	vals, _, err := DecodeVector(elemDecode, elemDynamic, data)
	return vals, err
}

// TupleField describes one element of a tuple being decoded: its
// decoder and whether it is dynamic.
type TupleField struct {
	Decode  DecodeFunc
	Dynamic bool
}

// DecodeTuple decodes a heterogeneous fixed-arity sequence using the
// standard head/tail rule: static fields decode in place in the head;
// dynamic fields are referenced by an offset word relative to the start
// of data. Returns the consumed head size, mirroring DecodeVector.
func DecodeTuple(fields []TupleField, data []byte) ([]Value, int, error) {
	headSize := len(fields) * WordSize
	if err := need(data, headSize); err != nil {
		return nil, 0, err
	}
	out := make([]Value, len(fields))
	for i, f := range fields {
		slot := data[i*WordSize : (i+1)*WordSize]
		if f.Dynamic {
			ov, _, err := DecodeUint(slot)
			if err != nil {
				return nil, 0, err
			}
			off := int(ov.AsUint().ToUint32())
			if err := need(data, off); err != nil {
				return nil, 0, err
			}
			v, _, err := f.Decode(data[off:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
		} else {
			v, _, err := f.Decode(slot)
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
		}
	}
	return out, headSize, nil
}
