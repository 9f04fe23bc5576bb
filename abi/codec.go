// Package abi implements the canonical EVM ABI encoder/decoder: the
// head/tail layout for static and dynamic values, used both for the
// contract's wire calling convention (spec §6.2) and for ad-hoc
// encoding of return/log/outbound-call payloads.
//
// The original C++ source dispatches encode/decode through template
// specialization per Go type; Go has no equivalent, so this package
// uses a small tagged union (Value, tagged by Kind) plus a trait-like
// split between static and dynamic kinds, per the redesign note in
// spec §9.
package abi

import (
	"fmt"

	"github.com/example/contractlib/evmtype"
	"github.com/example/contractlib/u256"
)

// WordSize is the width of one ABI head/tail slot.
const WordSize = 32

// Kind identifies the ABI type tag carried by a Value.
type Kind int

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindString
	KindBytes
	KindTuple
	KindVector
)

// Value is a tagged ABI value. Construct one with the Kind-specific
// constructors (Uint, Int, Bool, ...) rather than the struct literal.
type Value struct {
	kind Kind

	u    u256.U256
	i    int64
	iw   int // byte width for KindInt, 1/2/4/8
	b    bool
	addr evmtype.Address
	str  string
	byts []byte

	tuple []Value

	vec         []Value
	vecDynamic  bool // true if vector elements are dynamic (string/bytes/vector)
}

// Kind reports the value's ABI type tag.
func (v Value) Kind() Kind { return v.kind }

// Uint wraps an unsigned integer of any width up to 256 bits; all
// unsigned widths share the same big-endian zero-padded encoding
// (spec §4.3), so width is not tracked.
func Uint(u u256.U256) Value { return Value{kind: KindUint, u: u} }

// UintFromUint64 is a convenience constructor for native Go integers.
func UintFromUint64(v uint64) Value { return Uint(u256.FromUint64(v)) }

// Int wraps a signed integer of the given byte width (1, 2, 4, or 8),
// using the deliberately narrow-scope encoding documented in spec §4.3:
// it round-trips only through Int/DecodeIntWidth at the same width, not
// through a full 256-bit signed decode.
func Int(width int, v int64) Value { return Value{kind: KindInt, i: v, iw: width} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Addr wraps an Address.
func Addr(a evmtype.Address) Value { return Value{kind: KindAddress, addr: a} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// BytesValue wraps a byte string.
func BytesValue(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, byts: cp}
}

// Tuple wraps a heterogeneous, fixed-arity sequence of values.
func Tuple(elems ...Value) Value { return Value{kind: KindTuple, tuple: elems} }

// Vector wraps a homogeneous, variable-length sequence of values. All
// elements must share the same dynamic-ness; Vector infers it from the
// first element (an empty vector needs VectorOfKind instead, since there
// is no element to infer from).
func Vector(elems ...Value) Value {
	dynamic := false
	if len(elems) > 0 {
		dynamic = elems[0].IsDynamic()
	}
	return Value{kind: KindVector, vec: elems, vecDynamic: dynamic}
}

// VectorOfKind wraps a (possibly empty) homogeneous vector, with the
// element dynamic-ness given explicitly.
func VectorOfKind(elemDynamic bool, elems ...Value) Value {
	return Value{kind: KindVector, vec: elems, vecDynamic: elemDynamic}
}

// IsDynamic reports whether v's encoding is dynamic (tail-resident,
// referenced from the head by a 32-byte offset) or static (inline in
// the head). Per spec §4.3: string/bytes/vector are dynamic; tuples are
// dynamic iff any element is dynamic; everything else is static.
func (v Value) IsDynamic() bool {
	switch v.kind {
	case KindString, KindBytes, KindVector:
		return true
	case KindTuple:
		for _, e := range v.tuple {
			if e.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AsUint returns the wrapped unsigned integer, panicking if v is not a
// KindUint value. Callers that don't control v's provenance should
// check Kind() first.
func (v Value) AsUint() u256.U256 {
	v.mustKind(KindUint)
	return v.u
}

func (v Value) AsInt() (value int64, width int) {
	v.mustKind(KindInt)
	return v.i, v.iw
}

func (v Value) AsBool() bool {
	v.mustKind(KindBool)
	return v.b
}

func (v Value) AsAddress() evmtype.Address {
	v.mustKind(KindAddress)
	return v.addr
}

func (v Value) AsString() string {
	v.mustKind(KindString)
	return v.str
}

func (v Value) AsBytes() []byte {
	v.mustKind(KindBytes)
	return v.byts
}

func (v Value) AsTuple() []Value {
	v.mustKind(KindTuple)
	return v.tuple
}

func (v Value) AsVector() []Value {
	v.mustKind(KindVector)
	return v.vec
}

func (v Value) mustKind(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("abi: Value is kind %d, not %d", v.kind, k))
	}
}

func padTo32(n int) int {
	if n%WordSize == 0 {
		return n
	}
	return n + (WordSize - n%WordSize)
}
