package abi

// Encode returns v's intrinsic ABI encoding: for a static value, exactly
// one 32-byte word; for a dynamic value (string/bytes/vector, or a tuple
// containing one), its own self-contained head/tail region with no
// outer offset wrapper — the offset wrapper is added by whichever
// container (tuple, vector, or the wire calling convention) holds v, not
// by Encode itself. This mirrors the original source's abi_encode<T>,
// which never prepends an offset for its own return value.
func Encode(v Value) []byte {
	switch v.kind {
	case KindUint:
		b := v.u.Bytes()
		return append([]byte(nil), b[:]...)
	case KindInt:
		return encodeInt(v.i, v.iw)
	case KindBool:
		out := make([]byte, WordSize)
		if v.b {
			out[WordSize-1] = 1
		}
		return out
	case KindAddress:
		w := v.addr.Word()
		return append([]byte(nil), w[:]...)
	case KindString:
		return encodeBytesLike([]byte(v.str))
	case KindBytes:
		return encodeBytesLike(v.byts)
	case KindTuple:
		return encodeSequence(v.tuple, 0)
	case KindVector:
		return encodeVectorBody(v.vec)
	default:
		panic("abi: Encode: unknown kind")
	}
}

// encodeInt implements the deliberately narrow-scope signed encoding
// documented in spec §4.3: the value's two's-complement bit pattern
// occupies only the low `width` bytes of the 32-byte word; the
// remaining leading bytes are zeroed rather than sign-extended.
func encodeInt(v int64, width int) []byte {
	out := make([]byte, WordSize)
	bits := uint64(v)
	for i := 0; i < width && i < 8; i++ {
		out[WordSize-1-i] = byte(bits >> (8 * uint(i)))
	}
	return out
}

// encodeBytesLike implements the shared string/bytes encoding: a
// 32-byte big-endian length, then the payload zero-padded to a multiple
// of 32 bytes.
func encodeBytesLike(b []byte) []byte {
	lenBytes := Encode(UintFromUint64(uint64(len(b))))
	out := make([]byte, 0, WordSize+padTo32(len(b)))
	out = append(out, lenBytes...)
	out = append(out, b...)
	for len(out) < WordSize+padTo32(len(b)) {
		out = append(out, 0)
	}
	return out
}

// encodeSequence encodes a heterogeneous element list using tuple head/tail
// rules: headBytesOffset is the size, in bytes, of any head region that
// precedes this sequence's own head in the overall encoding (0 for a
// top-level tuple; nonzero when a tuple is itself embedded, which this
// package does not need today but keeps the arithmetic honest).
func encodeSequence(elems []Value, headBytesOffset int) []byte {
	headSize := len(elems) * WordSize
	head := make([]byte, 0, headSize)
	var tail []byte
	for _, e := range elems {
		if e.IsDynamic() {
			offset := headBytesOffset + headSize + len(tail)
			head = append(head, Encode(UintFromUint64(uint64(offset)))...)
			tail = append(tail, Encode(e)...)
		} else {
			head = append(head, Encode(e)...)
		}
	}
	return append(head, tail...)
}

// encodeVectorBody encodes a vector's length word followed by its
// element head/tail region, where dynamic element offsets are measured
// relative to the start of the element head region, i.e. after the
// length word (spec §4.3), exactly like encodeSequence's headBytesOffset
// of 0 for a top-level tuple.
func encodeVectorBody(elems []Value) []byte {
	n := len(elems)
	out := Encode(UintFromUint64(uint64(n)))
	headSize := n * WordSize
	var tail []byte
	for _, e := range elems {
		if e.IsDynamic() {
			offset := headSize + len(tail)
			out = append(out, Encode(UintFromUint64(uint64(offset)))...)
			tail = append(tail, Encode(e)...)
		} else {
			out = append(out, Encode(e)...)
		}
	}
	return append(out, tail...)
}

// EncodeTuple is a convenience wrapper for Encode(Tuple(elems...)).
func EncodeTuple(elems ...Value) []byte { return Encode(Tuple(elems...)) }

// EncodeVector is a convenience wrapper for Encode(Vector(elems...)).
func EncodeVector(elems ...Value) []byte { return Encode(Vector(elems...)) }
